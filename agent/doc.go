// Package agent implements the multi-phase note search pipeline: query
// analysis, candidate collection, criteria confirmation, scoring, and a
// sanity check with a bounded retry loop. The agent coordinates a note
// store (corpus.Store) and an LLM judge (ai.Judge); all ranking policy
// lives here, while the collaborators stay dumb.
package agent
