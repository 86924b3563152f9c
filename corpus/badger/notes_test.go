package badger

import (
	"context"
	"testing"
	"time"

	"github.com/alloy-org/notescout/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedNote(t *testing.T, store *Store, name, content string, tags ...string) string {
	t.Helper()
	now := time.Now().UTC()
	record := &corpus.Record{
		Name:    name,
		Tags:    tags,
		Created: now,
		Updated: now,
		Content: content,
	}
	require.NoError(t, store.PutRecord(context.Background(), record))
	return record.UUID
}

func TestFilterNotes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	meeting := seedNote(t, store, "Team Meeting Notes", "agenda items", "work/meetings")
	seedNote(t, store, "Grocery List", "milk and eggs", "personal")
	planning := seedNote(t, store, "Meeting for Planning", "roadmap", "work")

	t.Run("single word matches all titles containing it", func(t *testing.T) {
		notes, err := store.FilterNotes(ctx, "meeting", "")
		require.NoError(t, err)
		require.Len(t, notes, 2)
	})

	t.Run("all query words must appear", func(t *testing.T) {
		notes, err := store.FilterNotes(ctx, "team meeting", "")
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, meeting, notes[0].UUID())
	})

	t.Run("tag scoping with descendants", func(t *testing.T) {
		notes, err := store.FilterNotes(ctx, "meeting", "work")
		require.NoError(t, err)
		require.Len(t, notes, 2)

		notes, err = store.FilterNotes(ctx, "meeting", "work/meetings")
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, meeting, notes[0].UUID())
		_ = planning
	})

	t.Run("empty query yields nothing", func(t *testing.T) {
		notes, err := store.FilterNotes(ctx, "   ", "")
		require.NoError(t, err)
		assert.Empty(t, notes)
	})
}

func TestSearchNotes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sandwich := seedNote(t, store, "Lunch spots", "A sandwich with mystery meat in New York")
	seedNote(t, store, "Dinner ideas", "pasta with tomato sauce")
	deli := seedNote(t, store, "Deli review", "Great pastrami sandwich downtown")

	t.Run("single term", func(t *testing.T) {
		notes, err := store.SearchNotes(ctx, "sandwich")
		require.NoError(t, err)
		require.Len(t, notes, 2)
	})

	t.Run("more matching words rank earlier", func(t *testing.T) {
		notes, err := store.SearchNotes(ctx, "sandwich mystery meat")
		require.NoError(t, err)
		require.NotEmpty(t, notes)
		assert.Equal(t, sandwich, notes[0].UUID())
		_ = deli
	})

	t.Run("stop words ignored", func(t *testing.T) {
		notes, err := store.SearchNotes(ctx, "the and of")
		require.NoError(t, err)
		assert.Empty(t, notes)
	})
}

func TestSearchNotes_ReindexOnReplace(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id := seedNote(t, store, "Draft", "original topic aardvark")

	require.NoError(t, store.ReplaceNoteContent(ctx, id, "replaced topic zebra"))

	notes, err := store.SearchNotes(ctx, "aardvark")
	require.NoError(t, err)
	assert.Empty(t, notes, "stale index entries should be removed")

	notes, err = store.SearchNotes(ctx, "zebra")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, id, notes[0].UUID())
}

func TestCreateNote(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.CreateNote(ctx, "Search: sandwich", []string{"Search Results"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	record, err := store.GetRecord(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Search: sandwich", record.Name)
	assert.Equal(t, []string{"search-results"}, record.Tags, "tags are normalized on create")
	assert.False(t, record.Created.IsZero())

	_, err = store.CreateNote(ctx, "", nil)
	assert.ErrorIs(t, err, corpus.ErrEmptyName)
}

func TestReplaceNoteContent_NotFound(t *testing.T) {
	store := newTestStore(t)
	err := store.ReplaceNoteContent(context.Background(), "no-such-uuid", "body")
	assert.ErrorIs(t, err, corpus.ErrNotFound)
}

func TestNoteHandleAccessors(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record := &corpus.Record{
		Name:        "With extras",
		Tags:        []string{"test"},
		Created:     time.Now().UTC(),
		Updated:     time.Now().UTC(),
		Content:     "body text",
		Attachments: []corpus.Attachment{{Type: "application/pdf", Name: "report.pdf"}},
		Images:      []corpus.Image{{URL: "https://example.com/pic.png"}},
	}
	require.NoError(t, store.PutRecord(ctx, record))

	notes, err := store.FilterNotes(ctx, "extras", "")
	require.NoError(t, err)
	require.Len(t, notes, 1)

	content, err := notes[0].Content(ctx)
	require.NoError(t, err)
	assert.Equal(t, "body text", content)

	attachments, err := notes[0].Attachments(ctx)
	require.NoError(t, err)
	require.Len(t, attachments, 1)
	assert.Equal(t, "application/pdf", attachments[0].Type)

	images, err := notes[0].Images(ctx)
	require.NoError(t, err)
	require.Len(t, images, 1)
}
