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

// Limits bundles the pipeline's tunable caps and thresholds. Zero values
// are replaced with the defaults, so callers only set what they change.
type Limits struct {
	// PerKeywordCap is the maximum number of notes a single query combo
	// may contribute. A combo that hits the cap is treated as too broad
	// and its keyword is excluded from later combos within the pass.
	PerKeywordCap int

	// MinCandidateTarget is the pool size below which collection
	// escalates to wider query combos and secondary keywords.
	MinCandidateTarget int

	// FullTextFloor is the pool size below which collection falls back
	// to full-text search over note bodies.
	FullTextFloor int

	// QueryFanOut bounds how many corpus queries run concurrently.
	QueryFanOut int

	// ContentFetchLimit is how many top candidates get their body
	// content fetched for density analysis.
	ContentFetchLimit int

	// BodyContentLimit caps the stored body preview, in bytes.
	BodyContentLimit int

	// DeepAnalysisLimit is how many pre-ranked candidates undergo deep
	// criteria confirmation.
	DeepAnalysisLimit int

	// FetchConcurrency bounds concurrent per-note fetches during
	// confirmation.
	FetchConcurrency int

	// ScoreFloor is the final score below which candidates are pruned
	// before the sanity check.
	ScoreFloor float64

	// AutoAcceptScore is the top score at or above which results are
	// accepted without consulting the judge.
	AutoAcceptScore float64

	// MaxRetries is the broadened-search retry budget per Search call.
	// Zero disables retries; negative values select the default.
	MaxRetries int

	// ExtractAttempts is how many times criteria extraction is tried
	// before Search gives up.
	ExtractAttempts int
}

// DefaultLimits returns the production caps and thresholds.
func DefaultLimits() Limits {
	return Limits{
		PerKeywordCap:      25,
		MinCandidateTarget: 10,
		FullTextFloor:      5,
		QueryFanOut:        5,
		ContentFetchLimit:  20,
		BodyContentLimit:   2000,
		DeepAnalysisLimit:  30,
		FetchConcurrency:   4,
		ScoreFloor:         5.0,
		AutoAcceptScore:    8.0,
		MaxRetries:         1,
		ExtractAttempts:    3,
	}
}

// withDefaults fills zero-valued fields with their defaults.
func (l Limits) withDefaults() Limits {
	defaults := DefaultLimits()
	if l.PerKeywordCap <= 0 {
		l.PerKeywordCap = defaults.PerKeywordCap
	}
	if l.MinCandidateTarget <= 0 {
		l.MinCandidateTarget = defaults.MinCandidateTarget
	}
	if l.FullTextFloor <= 0 {
		l.FullTextFloor = defaults.FullTextFloor
	}
	if l.QueryFanOut <= 0 {
		l.QueryFanOut = defaults.QueryFanOut
	}
	if l.ContentFetchLimit <= 0 {
		l.ContentFetchLimit = defaults.ContentFetchLimit
	}
	if l.BodyContentLimit <= 0 {
		l.BodyContentLimit = defaults.BodyContentLimit
	}
	if l.DeepAnalysisLimit <= 0 {
		l.DeepAnalysisLimit = defaults.DeepAnalysisLimit
	}
	if l.FetchConcurrency <= 0 {
		l.FetchConcurrency = defaults.FetchConcurrency
	}
	if l.ScoreFloor <= 0 {
		l.ScoreFloor = defaults.ScoreFloor
	}
	if l.AutoAcceptScore <= 0 {
		l.AutoAcceptScore = defaults.AutoAcceptScore
	}
	if l.MaxRetries < 0 {
		l.MaxRetries = defaults.MaxRetries
	}
	if l.ExtractAttempts <= 0 {
		l.ExtractAttempts = defaults.ExtractAttempts
	}
	return l
}
