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


package openai

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alloy-org/notescout/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Judge implements ai.Judge over OpenAI-compatible chat APIs.
type Judge struct {
	client llms.Model
	config *ai.Config
	logger *slog.Logger
}

// newJudge is an internal constructor that returns the concrete type.
func newJudge(config *ai.Config) (*Judge, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.DefaultModel()),
	)
	if err != nil {
		return nil, err
	}

	return &Judge{
		client: client,
		config: config,
		logger: slog.Default().With("component", "openai-judge"),
	}, nil
}

// NewJudge creates a judge backed by an OpenAI-compatible API.
//
// Returns ai.Judge interface (not *Judge) to enforce abstraction.
func NewJudge(config *ai.Config) (ai.Judge, error) {
	return newJudge(config)
}

// Complete sends a prompt and returns the response text. Every attempt
// runs under the configured timeout; transport failures are retried with
// exponential backoff before the error is surfaced. JSON-mode responses
// are stripped of markdown fences and passed through common-issue repair
// before being returned.
func (j *Judge) Complete(ctx context.Context, prompt string, opts ...ai.CallOption) (string, error) {
	options := ai.ApplyCallOptions(opts...)

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	callOpts := []llms.CallOption{llms.WithTemperature(0.0)}
	if options.Model != "" {
		callOpts = append(callOpts, llms.WithModel(options.Model))
	}
	if options.JSONResponse {
		callOpts = append(callOpts, llms.WithJSONMode())
	}

	var response *llms.ContentResponse
	err := RetryWithBackoff(ctx, func() error {
		callCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
		defer cancel()

		var genErr error
		response, genErr = j.client.GenerateContent(callCtx, content, callOpts...)
		return genErr
	}, j.config.MaxTransportRetries, j.config.RetryBaseDelay)
	if err != nil {
		j.logger.Error("failed to generate content", "model", options.Model, "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		j.logger.Debug("no choices returned from model")
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(response.Choices[0].Content)
	if options.JSONResponse {
		text = stripCodeFences(text)
		text = repairJSON(text)
	}
	return text, nil
}
