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
	"regexp"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alloy-org/notescout/core"
	"github.com/alloy-org/notescout/corpus"
)

var urlPattern = regexp.MustCompile(`https?://[^\s)>\]"']+`)

// Pre-rank weights used to pick the deep-analysis subset. Title hits
// dominate; the capped match count and recency only break near-ties.
const (
	preRankPrimaryHit   = 3.0
	preRankSecondaryHit = 1.5
	preRankPerMatch     = 0.5
	preRankMatchCap     = 5
	preRankTagBoost     = 2.0
	preRankRecencyDays  = 90
)

// confirmResult carries both the candidates that passed every hard
// requirement and the full analyzed subset, so the scorer can fall back
// to partial matches when nothing passes outright.
type confirmResult struct {
	valid    []*core.Candidate
	analyzed []*core.Candidate
	skipped  bool
}

// confirm verifies hard requirements against the strongest candidates.
// Without hard requirements the pre-ranked subset passes through
// untouched. Deep analysis fetches attachments, images, and full
// (untruncated) content as each active check demands, with bounded
// concurrency.
func (a *Agent) confirm(ctx context.Context, pool *collection, criteria core.UserCriteria) (*confirmResult, error) {
	subset := preRank(pool.candidates, criteria, a.limits.DeepAnalysisLimit)
	if !criteria.HasHardRequirements() {
		return &confirmResult{valid: subset, analyzed: subset, skipped: true}, nil
	}

	var analyzed atomic.Int64
	tasks := make([]func() error, 0, len(subset))
	for _, candidate := range subset {
		handle := pool.handle(candidate.UUID)
		if handle == nil {
			continue
		}
		candidate, handle := candidate, handle
		tasks = append(tasks, func() error {
			if err := a.analyzeCandidate(ctx, candidate, handle, criteria); err != nil {
				a.logger.Warn("deep analysis failed", "uuid", candidate.UUID, "err", err)
				return nil
			}
			analyzed.Add(1)
			return nil
		})
	}
	if err := runLimited(a.limits.FetchConcurrency, tasks); err != nil {
		return nil, err
	}

	if int(analyzed.Load()) != len(subset) {
		a.logger.Warn("deep analysis incomplete",
			"submitted", len(subset), "analyzed", analyzed.Load())
		if a.strict {
			return nil, ErrAnalysisMismatch
		}
	}

	valid := make([]*core.Candidate, 0, len(subset))
	for _, candidate := range subset {
		if candidate.Checks != nil && passesHardRequirements(candidate.Checks, criteria) {
			valid = append(valid, candidate)
		}
	}

	a.logger.Debug("criteria confirmed",
		"analyzed", len(subset), "valid", len(valid))
	return &confirmResult{valid: valid, analyzed: subset}, nil
}

// analyzeCandidate populates the candidate's check map, fetching only
// what the active requirements need.
func (a *Agent) analyzeCandidate(ctx context.Context, candidate *core.Candidate, handle corpus.Note, criteria core.UserCriteria) error {
	checks := &core.CandidateChecks{}

	if criteria.Booleans.ContainsPDF {
		attachments, err := handle.Attachments(ctx)
		if err != nil {
			return err
		}
		for _, attachment := range attachments {
			if isPDF(attachment) {
				checks.HasPDF = true
				break
			}
		}
	}

	if criteria.Booleans.ContainsImage {
		images, err := handle.Images(ctx)
		if err != nil {
			return err
		}
		checks.HasImage = len(images) > 0
	}

	if criteria.Booleans.ContainsURL || criteria.ExactPhrase != "" {
		// Full content, not the truncated preview: a phrase or URL
		// past the preview cap still counts.
		content, err := handle.Content(ctx)
		if err != nil {
			return err
		}
		urls := urlPattern.FindAllString(content, -1)
		checks.URLCount = len(urls)
		checks.HasURL = len(urls) > 0
		if criteria.ExactPhrase != "" {
			checks.HasExactPhrase = strings.Contains(
				strings.ToLower(content), strings.ToLower(criteria.ExactPhrase))
		}
	}

	if len(criteria.Tags.MustHave) > 0 {
		missing := core.MissingTags(candidate.Tags, criteria.Tags.MustHave)
		checks.HasRequiredTags = len(missing) == 0
		checks.MissingTags = missing
	}

	candidate.Checks = checks
	return nil
}

// passesHardRequirements reports whether every active requirement holds.
func passesHardRequirements(checks *core.CandidateChecks, criteria core.UserCriteria) bool {
	if criteria.Booleans.ContainsPDF && !checks.HasPDF {
		return false
	}
	if criteria.Booleans.ContainsImage && !checks.HasImage {
		return false
	}
	if criteria.Booleans.ContainsURL && !checks.HasURL {
		return false
	}
	if criteria.ExactPhrase != "" && !checks.HasExactPhrase {
		return false
	}
	if len(criteria.Tags.MustHave) > 0 && !checks.HasRequiredTags {
		return false
	}
	return true
}

func isPDF(attachment corpus.Attachment) bool {
	if strings.Contains(strings.ToLower(attachment.Type), "pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(attachment.Name), ".pdf")
}

// preRank orders candidates by cheap metadata signals and returns the
// top slice for deep analysis. The input order is left untouched.
func preRank(candidates []*core.Candidate, criteria core.UserCriteria, limit int) []*core.Candidate {
	ranked := make([]*core.Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return preRankScore(ranked[i], criteria) > preRankScore(ranked[j], criteria)
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func preRankScore(candidate *core.Candidate, criteria core.UserCriteria) float64 {
	name := strings.ToLower(candidate.Name)

	var score float64
	for _, keyword := range criteria.PrimaryKeywords {
		if strings.Contains(name, strings.ToLower(keyword)) {
			score += preRankPrimaryHit
		}
	}
	for _, keyword := range criteria.SecondaryKeywords {
		if strings.Contains(name, strings.ToLower(keyword)) {
			score += preRankSecondaryHit
		}
	}

	matches := candidate.MatchCount
	if matches > preRankMatchCap {
		matches = preRankMatchCap
	}
	score += float64(matches) * preRankPerMatch

	if candidate.TagBoost > 1.0 {
		score += preRankTagBoost
	}

	if age := time.Since(candidate.Updated); age >= 0 {
		window := preRankRecencyDays * 24 * time.Hour
		if age < window {
			score += 1.0 - age.Hours()/window.Hours()
		}
	}

	return score
}
