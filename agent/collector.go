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
	"sort"

	"github.com/alloy-org/notescout/core"
)

// collect gathers candidate notes for the criteria under the given
// strategy. Title searches run first, escalating to wider combos,
// secondary keywords, and finally full-text search whenever the pool
// stays too small. Survivors of the date filter are ordered by
// pre-content score, the top slice gets its body content fetched, and
// the pool is returned sorted by keyword density.
func (a *Agent) collect(ctx context.Context, criteria core.UserCriteria, strategy Strategy) (*collection, error) {
	state := newCollectState()

	primaryCombos := queryCombos(criteria.PrimaryKeywords, strategy)
	if err := a.runTitleQueries(ctx, state, primaryCombos, weightPrimary, criteria.Tags.Preferred); err != nil {
		return nil, err
	}

	// An all-keywords query that under-delivers widens to pairs before
	// touching secondary keywords.
	if strategy == StrategyFirstPass && state.size() < a.limits.MinCandidateTarget &&
		len(criteria.PrimaryKeywords) >= 2 {
		pairCombos := queryCombos(criteria.PrimaryKeywords, StrategyKeywordPairs)
		if err := a.runTitleQueries(ctx, state, pairCombos, weightPrimary, criteria.Tags.Preferred); err != nil {
			return nil, err
		}
	}

	if state.size() < a.limits.MinCandidateTarget && len(criteria.SecondaryKeywords) > 0 {
		secondaryCombos := queryCombos(criteria.SecondaryKeywords, strategy)
		if err := a.runTitleQueries(ctx, state, secondaryCombos, weightSecondary, criteria.Tags.Preferred); err != nil {
			return nil, err
		}
	}

	if state.size() < a.limits.FullTextFloor {
		if err := a.runFullTextQueries(ctx, state, criteria.PrimaryKeywords, weightPrimary*fullTextScale, criteria.Tags.Preferred); err != nil {
			return nil, err
		}
		if state.size() < a.limits.FullTextFloor {
			if err := a.runFullTextQueries(ctx, state, criteria.SecondaryKeywords, weightSecondary*fullTextScale, criteria.Tags.Preferred); err != nil {
				return nil, err
			}
		}
	}

	pool := state.collection()
	pool.candidates = filterByDate(pool.candidates, criteria.DateFilter)
	a.logger.Debug("candidates collected",
		"strategy", strategy.String(), "count", len(pool.candidates))

	// Content is fetched only for the strongest slice; the rest keep
	// zero density and sort to the back.
	sort.SliceStable(pool.candidates, func(i, j int) bool {
		return pool.candidates[i].PreContentScore > pool.candidates[j].PreContentScore
	})
	fetchable := pool.candidates
	if len(fetchable) > a.limits.ContentFetchLimit {
		fetchable = fetchable[:a.limits.ContentFetchLimit]
	}
	if err := a.fetchContents(ctx, pool, fetchable); err != nil {
		return nil, err
	}

	for _, candidate := range pool.candidates {
		candidate.KeywordDensity = keywordDensity(candidate.BodyContent,
			criteria.PrimaryKeywords, criteria.SecondaryKeywords)
	}

	sort.SliceStable(pool.candidates, func(i, j int) bool {
		left, right := pool.candidates[i], pool.candidates[j]
		if left.KeywordDensity != right.KeywordDensity {
			return left.KeywordDensity > right.KeywordDensity
		}
		return left.Updated.After(right.Updated)
	})

	return pool, nil
}

// runTitleQueries fans title searches out over the pool, window by
// window so the maxed-out exclusions from one window apply to the next.
func (a *Agent) runTitleQueries(ctx context.Context, state *collectState, queries []string, weight float64, preferredTag string) error {
	for start := 0; start < len(queries); start += a.limits.QueryFanOut {
		end := start + a.limits.QueryFanOut
		if end > len(queries) {
			end = len(queries)
		}

		var tasks []func() error
		for _, query := range queries[start:end] {
			if state.excluded(query) {
				a.logger.Debug("skipping query containing maxed-out keyword", "query", query)
				continue
			}
			query := query
			tasks = append(tasks, func() error {
				notes, err := a.store.FilterNotes(ctx, query, "")
				if err != nil {
					return err
				}
				if len(notes) >= a.limits.PerKeywordCap {
					a.logger.Debug("query hit per-keyword cap", "query", query, "hits", len(notes))
					notes = notes[:a.limits.PerKeywordCap]
					state.markMaxed(query)
				}
				for _, note := range notes {
					state.upsert(note, weight, preferredTag)
				}
				return nil
			})
		}
		if err := runLimited(a.limits.QueryFanOut, tasks); err != nil {
			return err
		}
	}
	return nil
}

// runFullTextQueries searches note bodies for each keyword. Full-text
// hits carry reduced weight and the same per-keyword cap.
func (a *Agent) runFullTextQueries(ctx context.Context, state *collectState, keywords []string, weight float64, preferredTag string) error {
	var tasks []func() error
	for _, keyword := range keywords {
		if state.excluded(keyword) {
			a.logger.Debug("skipping full-text query containing maxed-out keyword", "query", keyword)
			continue
		}
		keyword := keyword
		tasks = append(tasks, func() error {
			notes, err := a.store.SearchNotes(ctx, keyword)
			if err != nil {
				return err
			}
			if len(notes) > a.limits.PerKeywordCap {
				notes = notes[:a.limits.PerKeywordCap]
			}
			for _, note := range notes {
				state.upsert(note, weight, preferredTag)
			}
			return nil
		})
	}
	return runLimited(a.limits.QueryFanOut, tasks)
}

// fetchContents loads and truncates body content for the given
// candidates. Fetch failures degrade the candidate (no content, zero
// density) instead of failing the search.
func (a *Agent) fetchContents(ctx context.Context, pool *collection, candidates []*core.Candidate) error {
	var tasks []func() error
	for _, candidate := range candidates {
		if candidate.ContentFetched {
			continue
		}
		handle := pool.handle(candidate.UUID)
		if handle == nil {
			continue
		}
		candidate := candidate
		tasks = append(tasks, func() error {
			content, err := handle.Content(ctx)
			if err != nil {
				a.logger.Warn("content fetch failed", "uuid", candidate.UUID, "err", err)
				return nil
			}
			candidate.OriginalContentLength = len(content)
			candidate.BodyContent = truncateContent(content, a.limits.BodyContentLimit)
			candidate.ContentFetched = true
			return nil
		})
	}
	return runLimited(a.limits.QueryFanOut, tasks)
}
