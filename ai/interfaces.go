package ai

import "context"

// Judge sends a prompt to an LLM and returns the raw response text.
// The judge is the semantic authority of the search pipeline: it extracts
// criteria from queries, scores candidates, and gives second opinions.
// Implementations must be thread-safe for concurrent use.
type Judge interface {
	// Complete sends a prompt and returns the model's response text.
	// When WithJSONResponse is set, the model is instructed to emit JSON
	// and the response is cleaned of code fences before being returned;
	// callers still parse it themselves. Returns an error on transport
	// failure or timeout.
	Complete(ctx context.Context, prompt string, opts ...CallOption) (string, error)
}

// CallOptions holds per-call judge settings.
type CallOptions struct {
	// Model overrides the configured default model for this call.
	Model string

	// JSONResponse asks the model for a JSON-mode completion.
	JSONResponse bool
}

// CallOption configures a single judge call.
type CallOption func(*CallOptions)

// WithModel overrides the model used for this call.
func WithModel(model string) CallOption {
	return func(o *CallOptions) {
		o.Model = model
	}
}

// WithJSONResponse requests a JSON-mode completion.
func WithJSONResponse() CallOption {
	return func(o *CallOptions) {
		o.JSONResponse = true
	}
}

// ApplyCallOptions folds options into a CallOptions value.
func ApplyCallOptions(opts ...CallOption) CallOptions {
	var options CallOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
