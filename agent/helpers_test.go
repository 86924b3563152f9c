package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alloy-org/notescout/corpus"
)

// fakeNote is a canned corpus.Note.
type fakeNote struct {
	id          string
	name        string
	tags        []string
	created     time.Time
	updated     time.Time
	content     string
	attachments []corpus.Attachment
	images      []corpus.Image
	contentErr  error
}

var _ corpus.Note = (*fakeNote)(nil)

func (n *fakeNote) UUID() string       { return n.id }
func (n *fakeNote) Name() string       { return n.name }
func (n *fakeNote) Tags() []string     { return n.tags }
func (n *fakeNote) Created() time.Time { return n.created }
func (n *fakeNote) Updated() time.Time { return n.updated }

func (n *fakeNote) Content(context.Context) (string, error) {
	return n.content, n.contentErr
}

func (n *fakeNote) Attachments(context.Context) ([]corpus.Attachment, error) {
	return n.attachments, nil
}

func (n *fakeNote) Images(context.Context) ([]corpus.Image, error) {
	return n.images, nil
}

// fakeStore is a scripted corpus.Store keyed by exact query strings.
type fakeStore struct {
	mu sync.Mutex

	filterResults map[string][]corpus.Note
	searchResults map[string][]corpus.Note

	filterQueries []string
	searchQueries []string

	createdNames map[string][]string
	contents     map[string]string
}

var _ corpus.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		filterResults: make(map[string][]corpus.Note),
		searchResults: make(map[string][]corpus.Note),
		createdNames:  make(map[string][]string),
		contents:      make(map[string]string),
	}
}

func (s *fakeStore) FilterNotes(_ context.Context, query, _ string) ([]corpus.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filterQueries = append(s.filterQueries, query)
	return s.filterResults[query], nil
}

func (s *fakeStore) SearchNotes(_ context.Context, query string) ([]corpus.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQueries = append(s.searchQueries, query)
	return s.searchResults[query], nil
}

func (s *fakeStore) CreateNote(_ context.Context, name string, tags []string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := fmt.Sprintf("created-%d", len(s.createdNames)+1)
	s.createdNames[id] = append([]string{name}, tags...)
	return id, nil
}

func (s *fakeStore) ReplaceNoteContent(_ context.Context, id, markdown string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contents[id] = markdown
	return nil
}

func (s *fakeStore) Close() error { return nil }

func (s *fakeStore) filtered() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.filterQueries))
	copy(out, s.filterQueries)
	return out
}

// note builds a fakeNote with sensible timestamps.
func note(id, name, content string, tags ...string) *fakeNote {
	now := time.Now().UTC()
	return &fakeNote{
		id:      id,
		name:    name,
		tags:    tags,
		created: now.Add(-48 * time.Hour),
		updated: now.Add(-time.Hour),
		content: content,
	}
}

// manyNotes builds n distinct notes sharing a title word.
func manyNotes(prefix string, n int) []corpus.Note {
	notes := make([]corpus.Note, n)
	for i := range notes {
		notes[i] = note(fmt.Sprintf("%s-%d", prefix, i), fmt.Sprintf("%s note %d", prefix, i), "body")
	}
	return notes
}
