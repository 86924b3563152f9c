// Package mock provides a test double implementation of ai.Judge.
//
// The mock judge records every call and lets tests script responses via
// the CompleteFunc field, typically by switching on the prompt content:
//
//	judge := mock.NewJudge()
//	judge.CompleteFunc = func(ctx context.Context, prompt string, opts ai.CallOptions) (string, error) {
//	    if strings.Contains(prompt, "Extract") {
//	        return `{"primaryKeywords": ["sandwich"]}`, nil
//	    }
//	    return "{}", nil
//	}
//
// With no CompleteFunc set, Complete returns "{}" so JSON consumers see
// an empty object rather than a parse failure.
package mock
