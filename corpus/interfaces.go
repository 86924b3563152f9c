package corpus

import (
	"context"
	"time"
)

// Attachment describes a file attached to a note.
type Attachment struct {
	Type string
	Name string
}

// Image describes an image embedded in a note.
type Image struct {
	URL string
}

// Note is a handle to one note in the corpus. Metadata accessors are
// cheap; Content, Attachments and Images may hit storage and take a
// context.
type Note interface {
	// UUID returns the note's immutable identifier.
	UUID() string

	// Name returns the note title.
	Name() string

	// Tags returns the note's tags.
	Tags() []string

	// Created returns the creation timestamp.
	Created() time.Time

	// Updated returns the last-update timestamp.
	Updated() time.Time

	// Content returns the full note body as markdown.
	Content(ctx context.Context) (string, error)

	// Attachments returns the note's file attachments.
	Attachments(ctx context.Context) ([]Attachment, error)

	// Images returns the note's embedded images.
	Images(ctx context.Context) ([]Image, error)
}

// Store provides the corpus query primitives and note mutation the search
// agent depends on. Implementations must be thread-safe.
type Store interface {
	// FilterNotes performs an exact/substring title-oriented search,
	// optionally scoped to notes satisfying the given tag. An empty tag
	// means no scoping.
	FilterNotes(ctx context.Context, query, tag string) ([]Note, error)

	// SearchNotes performs a broader full-text search over note bodies.
	SearchNotes(ctx context.Context, query string) ([]Note, error)

	// CreateNote creates an empty note with the given title and tags
	// and returns its uuid.
	CreateNote(ctx context.Context, name string, tags []string) (string, error)

	// ReplaceNoteContent replaces the body of an existing note.
	// Returns ErrNotFound if the note doesn't exist.
	ReplaceNoteContent(ctx context.Context, uuid, markdown string) error

	// Close closes the store and releases resources.
	Close() error
}
