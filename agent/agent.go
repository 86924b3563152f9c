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
	"fmt"
	"log/slog"

	"github.com/alloy-org/notescout/ai"
	"github.com/alloy-org/notescout/core"
	"github.com/alloy-org/notescout/corpus"
)

// Agent runs the note search pipeline against a store and a judge.
// An Agent is safe for concurrent use; all per-search state lives in the
// run, never on the Agent.
type Agent struct {
	store  corpus.Store
	judge  ai.Judge
	models []string
	limits Limits
	strict bool
	logger *slog.Logger
}

// Option configures an Agent.
type Option func(*Agent) error

// WithLogger sets the logger used by the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Agent) error {
		a.logger = logger
		return nil
	}
}

// WithLimits overrides the pipeline caps and thresholds. Zero-valued
// fields keep their defaults.
func WithLimits(limits Limits) Option {
	return func(a *Agent) error {
		a.limits = limits.withDefaults()
		return nil
	}
}

// WithPreferredModels sets the model rotation used for criteria
// extraction retries.
func WithPreferredModels(models []string) Option {
	return func(a *Agent) error {
		a.models = models
		return nil
	}
}

// WithStrictChecks makes an incomplete deep analysis a hard error
// instead of a logged degradation.
func WithStrictChecks() Option {
	return func(a *Agent) error {
		a.strict = true
		return nil
	}
}

// New creates a search agent over the given note store and judge.
func New(store corpus.Store, judge ai.Judge, opts ...Option) (*Agent, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if judge == nil {
		return nil, ErrJudgeRequired
	}

	agent := &Agent{
		store:  store,
		judge:  judge,
		limits: DefaultLimits(),
		logger: slog.Default().With("component", "search-agent"),
	}
	for _, opt := range opts {
		if err := opt(agent); err != nil {
			return nil, err
		}
	}
	return agent, nil
}

// SearchOptions adjust a single Search call.
type SearchOptions struct {
	// Overrides take precedence over judge-extracted criteria, field by
	// field.
	Overrides *core.CriteriaOverrides

	// Progress, when set, receives phase updates during the search.
	Progress ProgressFunc

	// PublishSummary writes the result set into a summary note.
	PublishSummary bool
}

// searchRun is the per-call state of one Search: the resolved criteria,
// the retry budget, and the candidates accumulated across attempts.
type searchRun struct {
	query    string
	criteria core.UserCriteria
	progress ProgressFunc

	strategy    Strategy
	retriesLeft int

	// merged accumulates scored candidates across attempts by uuid,
	// keeping the best-scoring instance of each.
	merged map[string]*core.Candidate
}

// escalate moves the run to the broadened strategy if budget remains.
func (r *searchRun) escalate() bool {
	if r.retriesLeft <= 0 || r.strategy != StrategyFirstPass {
		return false
	}
	r.retriesLeft--
	r.strategy = StrategyIndividual
	return true
}

// absorb merges scored candidates into the run, best score wins per
// uuid.
func (r *searchRun) absorb(scored []*core.Candidate) {
	for _, candidate := range scored {
		existing, ok := r.merged[candidate.UUID]
		if !ok || candidate.FinalScore > existing.FinalScore {
			r.merged[candidate.UUID] = candidate
		}
	}
}

// ranked returns the accumulated candidates ordered by final score.
func (r *searchRun) ranked() []*core.Candidate {
	list := make([]*core.Candidate, 0, len(r.merged))
	for _, candidate := range r.merged {
		list = append(list, candidate)
	}
	sortByScore(list)
	return list
}

// Search runs the full pipeline for a query. It returns an error only
// for criteria extraction failure, collaborator transport failure, or
// context cancellation; "nothing found" is expressed in the result.
func (a *Agent) Search(ctx context.Context, query string, opts *SearchOptions) (*core.SearchResult, error) {
	if opts == nil {
		opts = &SearchOptions{}
	}
	progress := opts.Progress
	if progress == nil {
		progress = nopProgress
	}

	run := &searchRun{
		query:       query,
		progress:    progress,
		strategy:    StrategyFirstPass,
		retriesLeft: a.limits.MaxRetries,
		merged:      make(map[string]*core.Candidate),
	}

	progress("Analyzing your request...")
	criteria, err := a.analyze(ctx, query, opts.Overrides)
	if err != nil {
		return nil, err
	}
	run.criteria = criteria

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		progress(fmt.Sprintf("Collecting candidate notes (%s)...", run.strategy))
		pool, err := a.collect(ctx, criteria, run.strategy)
		if err != nil {
			return nil, err
		}

		if len(pool.candidates) == 0 {
			if run.escalate() {
				a.logger.Info("no candidates found, retrying broader", "strategy", run.strategy.String())
				continue
			}
			return a.finish(ctx, run, opts, verdict{
				action: actionInsufficientData,
				reason: "no candidate notes matched the keywords",
			})
		}

		progress("Checking requirements...")
		confirmed, err := a.confirm(ctx, pool, criteria)
		if err != nil {
			return nil, err
		}
		scorable := confirmed.valid
		if len(scorable) == 0 {
			// Nothing passed outright; score the partial matches so
			// the caller still gets the closest notes.
			a.logger.Info("no candidate met every hard requirement, scoring partial matches")
			scorable = confirmed.analyzed
		}

		progress("Scoring candidates...")
		scored, err := a.score(ctx, run.query, criteria, scorable)
		if err != nil {
			return nil, err
		}
		run.absorb(a.prune(scored))

		progress("Double-checking results...")
		result := a.sanityCheck(ctx, run.query, criteria, run.ranked())
		if result.wantsRetry() && run.escalate() {
			a.logger.Info("judge suggested a broader search", "reason", result.reason)
			continue
		}

		return a.finish(ctx, run, opts, result)
	}
}

// finish converts the accumulated run state into the final result,
// assigning ranks, trimming to the requested count, and publishing the
// summary note when asked. Summary publication failure is logged, never
// fatal.
func (a *Agent) finish(ctx context.Context, run *searchRun, opts *SearchOptions, result verdict) (*core.SearchResult, error) {
	ranked := run.ranked()
	if len(ranked) == 0 {
		return &core.SearchResult{
			Found:      false,
			Message:    "No matching notes found.",
			Suggestion: "Try different keywords, or fewer of them.",
		}, nil
	}

	count := run.criteria.ResultCount
	if count < 1 {
		count = core.DefaultResultCount
	}
	if len(ranked) > count {
		ranked = ranked[:count]
	}

	notes := make([]core.RankedNote, 0, len(ranked))
	for i, candidate := range ranked {
		candidate.Rank = i + 1
		notes = append(notes, candidate.Ranked())
	}

	search := &core.SearchResult{
		Found:      result.confident,
		Confidence: result.confidence,
		Notes:      notes,
	}
	if result.confident {
		search.Message = fmt.Sprintf("Found %d matching notes.", len(notes))
	} else {
		search.Message = fmt.Sprintf("Found %d notes, but they may not fully match your request.", len(notes))
		search.Suggestion = result.reason
	}

	if opts.PublishSummary {
		run.progress("Publishing summary note...")
		ref, err := a.publish(ctx, run.query, run.criteria, notes)
		if err != nil {
			a.logger.Warn("summary note publication failed", "err", err)
		} else {
			search.SummaryNote = ref
		}
	}

	a.logger.Info("search complete",
		"found", search.Found, "notes", len(search.Notes), "confidence", search.Confidence)
	return search, nil
}
