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


// Package ai defines the judge abstraction used by the search pipeline.
//
// The pipeline depends on a single interface:
//
//   - Judge: sends a prompt, optionally in JSON mode and with a per-call
//     model override, and returns the response text.
//
// Keeping the contract this narrow means the agent never sees wire
// formats, streaming, or API-key handling; those belong to the
// implementations.
//
// # Implementation Packages
//
//   - ai/openai: production implementation over OpenAI-compatible APIs,
//     with per-call timeouts and transport-level retries
//   - ai/mock: scripted test double for unit testing without an LLM
//
// Production constructors return the Judge interface to enforce
// abstraction; mock constructors return concrete types so tests can
// inspect recorded calls and inject behavior.
package ai
