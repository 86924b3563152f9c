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


// Package notescout wires the note store, the LLM judge, and the search
// agent into one handle. Callers that need finer control can assemble
// the pieces from the subpackages themselves.
package notescout

import (
	"context"
	"log/slog"

	"github.com/alloy-org/notescout/agent"
	"github.com/alloy-org/notescout/ai"
	"github.com/alloy-org/notescout/ai/openai"
	"github.com/alloy-org/notescout/core"
	"github.com/alloy-org/notescout/corpus"
	"github.com/alloy-org/notescout/corpus/badger"
)

// Scout is an opened note database plus a configured search agent.
type Scout struct {
	store  *badger.Store
	judge  ai.Judge
	agent  *agent.Agent
	logger *slog.Logger
}

// ScoutOption configures a Scout.
type ScoutOption func(*scoutOptions)

type scoutOptions struct {
	aiConfig  *ai.Config
	limits    agent.Limits
	setLimits bool
	strict    bool
}

// WithAIConfig overrides the judge configuration.
func WithAIConfig(config *ai.Config) ScoutOption {
	return func(o *scoutOptions) {
		o.aiConfig = config
	}
}

// WithLimits overrides the pipeline caps and thresholds.
func WithLimits(limits agent.Limits) ScoutOption {
	return func(o *scoutOptions) {
		o.limits = limits
		o.setLimits = true
	}
}

// WithStrictChecks makes an incomplete deep analysis a hard error.
func WithStrictChecks() ScoutOption {
	return func(o *scoutOptions) {
		o.strict = true
	}
}

// Open opens (or creates) the note database at filePath and builds the
// search agent on top of it.
func Open(filePath string, opts ...ScoutOption) (*Scout, error) {
	options := &scoutOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if err := options.aiConfig.Validate(); err != nil {
		return nil, err
	}

	store, err := badger.Open(filePath)
	if err != nil {
		return nil, err
	}

	judge, err := openai.NewJudge(options.aiConfig)
	if err != nil {
		store.Close()
		return nil, err
	}

	agentOpts := []agent.Option{
		agent.WithPreferredModels(options.aiConfig.PreferredModels),
	}
	if options.setLimits {
		agentOpts = append(agentOpts, agent.WithLimits(options.limits))
	}
	if options.strict {
		agentOpts = append(agentOpts, agent.WithStrictChecks())
	}

	searcher, err := agent.New(store, judge, agentOpts...)
	if err != nil {
		store.Close()
		return nil, err
	}

	return &Scout{
		store:  store,
		judge:  judge,
		agent:  searcher,
		logger: slog.Default(),
	}, nil
}

// Close closes the underlying database.
func (s *Scout) Close() error {
	if err := s.store.Close(); err != nil {
		s.logger.Error("error closing note store", "err", err)
		return err
	}
	return nil
}

// Search runs the full pipeline for a natural-language query.
func (s *Scout) Search(ctx context.Context, query string, opts *agent.SearchOptions) (*core.SearchResult, error) {
	return s.agent.Search(ctx, query, opts)
}

// Store exposes the underlying note store for seeding and maintenance.
func (s *Scout) Store() corpus.Store {
	return s.store
}
