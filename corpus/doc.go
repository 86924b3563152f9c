// Package corpus defines the note corpus contracts the search agent
// depends on: two retrieval primitives (title-oriented FilterNotes and
// full-text SearchNotes), note handles with lazy content/attachment/image
// accessors, and note creation for publishing summaries.
//
// The agent treats these primitives as opaque and "good enough"; it never
// sees how a backend indexes or ranks. The corpus/badger subpackage
// provides the BadgerDB-backed implementation used by the CLI and tests.
//
// Record serialization uses MUS format; the serializers are generated by
// cmd/musgen (run `go generate ./corpus`).
package corpus
