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
	"strings"

	"github.com/alloy-org/notescout/ai"
	"github.com/alloy-org/notescout/core"
)

// poorMatchMarker in a candidate's reasoning flags it for pruning even
// when its numeric score clears the floor.
const poorMatchMarker = "poor match"

const (
	actionAccept           = "accept"
	actionRetryBroader     = "retry_broader"
	actionInsufficientData = "insufficient_data"
)

// verdict is the outcome of the sanity check. The retry controller reads
// it; the verdict itself never escalates anything.
type verdict struct {
	confident  bool
	action     string
	confidence float64
	reason     string
}

func (v verdict) wantsRetry() bool {
	return !v.confident && v.action == actionRetryBroader
}

// prune drops candidates scoring below the floor or whose reasoning
// contains the poor-match marker. Pruning never empties the list: when
// every candidate would fall, the original list survives so a weak
// answer beats no answer.
func (a *Agent) prune(candidates []*core.Candidate) []*core.Candidate {
	kept := make([]*core.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.FinalScore < a.limits.ScoreFloor {
			continue
		}
		if strings.Contains(strings.ToLower(candidate.Reasoning), poorMatchMarker) {
			continue
		}
		kept = append(kept, candidate)
	}
	if len(kept) == 0 {
		return candidates
	}
	return kept
}

// sanityCheck inspects the top result. A score at or above the
// auto-accept threshold is accepted without a judge call; otherwise the
// judge gives a second opinion. Judge failures degrade to "not
// confident" rather than failing the search.
func (a *Agent) sanityCheck(ctx context.Context, query string, criteria core.UserCriteria, ranked []*core.Candidate) verdict {
	if len(ranked) == 0 {
		return verdict{action: actionRetryBroader, reason: "no scored candidates"}
	}

	top := ranked[0]
	if top.FinalScore >= a.limits.AutoAcceptScore {
		a.logger.Debug("top result auto-accepted", "uuid", top.UUID, "score", top.FinalScore)
		return verdict{
			confident:  true,
			action:     actionAccept,
			confidence: top.FinalScore / 10,
			reason:     "top result scored above the acceptance threshold",
		}
	}

	raw, err := a.judge.Complete(ctx, buildSanityPrompt(query, criteria, top), ai.WithJSONResponse())
	if err != nil {
		a.logger.Warn("sanity check failed, keeping results without confidence", "err", err)
		return verdict{action: actionInsufficientData, confidence: top.FinalScore / 10, reason: "sanity check unavailable"}
	}

	var response struct {
		Confident  bool    `json:"confident"`
		Action     string  `json:"action"`
		Confidence float64 `json:"confidence"`
		Reason     string  `json:"reason"`
	}
	if err := decodeJSON(raw, &response); err != nil {
		a.logger.Warn("unparseable sanity response, keeping results without confidence", "err", err)
		return verdict{action: actionInsufficientData, confidence: top.FinalScore / 10, reason: "sanity check unavailable"}
	}

	result := verdict{
		confident:  response.Confident,
		action:     strings.ToLower(strings.TrimSpace(response.Action)),
		confidence: response.Confidence,
		reason:     strings.TrimSpace(response.Reason),
	}
	if result.confidence <= 0 {
		result.confidence = top.FinalScore / 10
	}
	a.logger.Debug("sanity check complete",
		"confident", result.confident, "action", result.action, "confidence", result.confidence)
	return result
}
