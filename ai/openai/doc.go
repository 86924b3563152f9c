// Package openai implements the judge over OpenAI-compatible chat APIs
// (OpenAI, Ollama, LocalAI, vLLM). Calls run at temperature 0, under a
// per-call timeout, with transport-level retries and exponential backoff.
// JSON-mode responses are cleaned of code fences and passed through a
// best-effort repair for common formatting defects before being returned.
package openai
