// Copyright 2025 The Notescout Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package agent

import (
	"context"
	"encoding/json"
	"math"
	"sort"

	"github.com/alloy-org/notescout/ai"
	"github.com/alloy-org/notescout/core"
)

// Final-score weights over the judge's 0-10 dimension scores. Title
// relevance and coherence dominate.
const (
	weightTitleRelevance = 0.25
	weightCoherence      = 0.25
	weightDensityScore   = 0.15
	weightCriteriaMatch  = 0.15
	weightTagAlignment   = 0.10
	weightRecency        = 0.10

	matchBonusPerHit = 0.1
	matchBonusCap    = 5
)

// judgeScore mirrors one entry of the scoring prompt's response array.
type judgeScore struct {
	UUID           string  `json:"uuid"`
	Coherence      float64 `json:"coherence"`
	TitleRelevance float64 `json:"titleRelevance"`
	KeywordDensity float64 `json:"keywordDensity"`
	CriteriaMatch  float64 `json:"criteriaMatch"`
	TagAlignment   float64 `json:"tagAlignment"`
	Recency        float64 `json:"recency"`
	Reasoning      string  `json:"reasoning"`
}

// score sends the whole pool to the judge in one batched call and blends
// the returned dimension scores into final scores. Candidates the judge
// did not score are dropped rather than aborting the search; a fully
// unusable response yields an empty ranking. Transport errors propagate.
func (a *Agent) score(ctx context.Context, query string, criteria core.UserCriteria, candidates []*core.Candidate) ([]*core.Candidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	prompt := buildScoringPrompt(query, criteria, candidates)
	raw, err := a.judge.Complete(ctx, prompt, ai.WithJSONResponse())
	if err != nil {
		return nil, err
	}

	entries, err := parseScoreEntries(raw)
	if err != nil {
		a.logger.Warn("unusable scoring response, dropping candidate pool", "err", err)
		return nil, nil
	}

	byUUID := make(map[string]judgeScore, len(entries))
	for _, entry := range entries {
		byUUID[entry.UUID] = entry
	}

	scored := make([]*core.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		entry, ok := byUUID[candidate.UUID]
		if !ok {
			a.logger.Debug("judge left candidate unscored", "uuid", candidate.UUID)
			continue
		}
		applyScore(candidate, entry)
		scored = append(scored, candidate)
	}

	sortByScore(scored)
	a.logger.Debug("candidates scored", "submitted", len(candidates), "scored", len(scored))
	return scored, nil
}

// applyScore blends the judge's dimensions with the heuristic match
// bonus. The final score is rounded to one decimal and clamped to 10.
func applyScore(candidate *core.Candidate, entry judgeScore) {
	weighted := entry.TitleRelevance*weightTitleRelevance +
		entry.Coherence*weightCoherence +
		entry.KeywordDensity*weightDensityScore +
		entry.CriteriaMatch*weightCriteriaMatch +
		entry.TagAlignment*weightTagAlignment +
		entry.Recency*weightRecency

	matches := candidate.MatchCount
	if matches > matchBonusCap {
		matches = matchBonusCap
	}
	bonus := float64(matches) * matchBonusPerHit

	final := math.Round((weighted+bonus)*10) / 10
	if final > 10 {
		final = 10
	}

	candidate.FinalScore = final
	candidate.Reasoning = entry.Reasoning
	candidate.Breakdown = &core.ScoreBreakdown{
		Coherence:      entry.Coherence,
		TitleRelevance: entry.TitleRelevance,
		KeywordDensity: entry.KeywordDensity,
		CriteriaMatch:  entry.CriteriaMatch,
		TagAlignment:   entry.TagAlignment,
		Recency:        entry.Recency,
		MatchBonus:     bonus,
	}
}

// sortByScore orders candidates by final score, newest first on ties.
func sortByScore(candidates []*core.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].FinalScore != candidates[j].FinalScore {
			return candidates[i].FinalScore > candidates[j].FinalScore
		}
		return candidates[i].Updated.After(candidates[j].Updated)
	})
}

// parseScoreEntries parses the scoring response, coercing the shapes
// smaller models produce: a bare object becomes a one-element array, and
// a wrapper object has its first list-valued field unwrapped.
func parseScoreEntries(raw string) ([]judgeScore, error) {
	text := extractJSON(raw)

	var list []judgeScore
	if err := json.Unmarshal([]byte(text), &list); err == nil {
		return list, nil
	}

	var single judgeScore
	if err := json.Unmarshal([]byte(text), &single); err == nil && single.UUID != "" {
		return []judgeScore{single}, nil
	}

	var wrapper struct {
		Results    []judgeScore `json:"results"`
		Candidates []judgeScore `json:"candidates"`
		Scores     []judgeScore `json:"scores"`
		Notes      []judgeScore `json:"notes"`
	}
	if err := json.Unmarshal([]byte(text), &wrapper); err == nil {
		for _, unwrapped := range [][]judgeScore{
			wrapper.Results, wrapper.Candidates, wrapper.Scores, wrapper.Notes,
		} {
			if len(unwrapped) > 0 {
				return unwrapped, nil
			}
		}
	}

	return nil, ErrMalformedResponse
}
