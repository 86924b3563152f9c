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


package ai

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for judge providers.
type Config struct {
	// Host is the base URL for the OpenAI-compatible chat API.
	// Example: "http://localhost:11434/v1" for a local server.
	Host string

	// Token is the API token. Local OpenAI-compatible services that do
	// not require authentication can leave the default.
	Token string

	// PreferredModels lists model identifiers in preference order. The
	// first entry is the default; later entries are fallbacks when a
	// model produces an invalid extraction.
	PreferredModels []string

	// Timeout bounds every judge call. A timeout surfaces as an
	// ordinary error, not a distinct cancellation signal.
	Timeout time.Duration

	// MaxTransportRetries is the number of attempts for a failing
	// transport call before the error is surfaced.
	MaxTransportRetries int

	// RetryBaseDelay is the base delay for exponential backoff between
	// transport retries.
	RetryBaseDelay time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithHost sets the judge service host URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.Host = host
	}
}

// WithToken sets the API token.
func WithToken(token string) ConfigOption {
	return func(c *Config) {
		c.Token = token
	}
}

// WithPreferredModels sets the model preference order.
func WithPreferredModels(models ...string) ConfigOption {
	return func(c *Config) {
		c.PreferredModels = models
	}
}

// WithTimeout sets the per-call deadline.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithTransportRetries sets the transport retry budget and backoff base.
func WithTransportRetries(attempts int, baseDelay time.Duration) ConfigOption {
	return func(c *Config) {
		c.MaxTransportRetries = attempts
		c.RetryBaseDelay = baseDelay
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services.
func DefaultConfig() *Config {
	return &Config{
		Host:                "http://localhost:11434/v1",
		Token:               "none",
		PreferredModels:     []string{"qwen2.5:7b", "llama3.1:8b"},
		Timeout:             30 * time.Second,
		MaxTransportRetries: 3,
		RetryBaseDelay:      500 * time.Millisecond,
	}
}

// NewConfig creates a Config with default values and applies the provided
// options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// DefaultModel returns the first preferred model, or "" when none is set.
func (c *Config) DefaultModel() string {
	if len(c.PreferredModels) == 0 {
		return ""
	}
	return c.PreferredModels[0]
}

// Normalize ensures the configuration is in canonical form. It adds the
// /v1 suffix to the host if missing, which OpenAI-compatible APIs
// (Ollama, LocalAI, vLLM, etc.) require.
func (c *Config) Normalize() {
	if c.Host != "" && !strings.HasSuffix(c.Host, "/v1") {
		c.Host = strings.TrimSuffix(c.Host, "/")
		c.Host = c.Host + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.Host == "" {
		return errors.New("ai config: Host is required")
	}
	if len(c.PreferredModels) == 0 {
		return errors.New("ai config: at least one preferred model is required")
	}
	if c.Timeout <= 0 {
		return errors.New("ai config: Timeout must be positive")
	}
	if c.MaxTransportRetries < 1 {
		return errors.New("ai config: MaxTransportRetries must be at least 1")
	}
	return nil
}
