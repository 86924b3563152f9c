package mock

import (
	"context"
	"sync"

	"github.com/alloy-org/notescout/ai"
)

// Call records one judge invocation for test assertions.
type Call struct {
	Prompt  string
	Options ai.CallOptions
}

// Judge is a test double for ai.Judge. It allows custom behavior
// injection via the CompleteFunc field and records every call.
type Judge struct {
	// CompleteFunc is called by Complete if set. If nil, Complete
	// returns "{}" so JSON consumers parse an empty object.
	CompleteFunc func(ctx context.Context, prompt string, opts ai.CallOptions) (string, error)

	mu    sync.Mutex
	calls []Call
}

var _ ai.Judge = (*Judge)(nil)

// NewJudge creates a mock judge with default behavior.
// Note: returns the concrete type so tests can inspect recorded calls.
func NewJudge() *Judge {
	return &Judge{}
}

// Complete records the call and delegates to CompleteFunc when set.
func (m *Judge) Complete(ctx context.Context, prompt string, opts ...ai.CallOption) (string, error) {
	options := ai.ApplyCallOptions(opts...)

	m.mu.Lock()
	m.calls = append(m.calls, Call{Prompt: prompt, Options: options})
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt, options)
	}
	return "{}", nil
}

// Calls returns a copy of the recorded calls.
func (m *Judge) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns the number of times Complete was called.
func (m *Judge) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Reset clears the recorded calls and the custom function.
func (m *Judge) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.CompleteFunc = nil
}
