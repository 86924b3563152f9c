package badger

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/alloy-org/notescout/core"
	"github.com/alloy-org/notescout/corpus"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// Store implements corpus.Store for BadgerDB. Note records are stored
// under their uuid; a word index over note bodies backs SearchNotes.
type Store struct {
	backend *Backend
	logger  *slog.Logger
}

var _ corpus.Store = (*Store)(nil)

// NewStore creates a Store on top of an open backend. The store takes
// ownership of the backend and closes it on Close.
func NewStore(backend *Backend) (*Store, error) {
	return &Store{
		backend: backend,
		logger:  slog.Default().With("component", "badger-store"),
	}, nil
}

// Open opens (or creates) a note store at the given path.
func Open(filePath string) (*Store, error) {
	backend, err := OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}
	return NewStore(backend)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.backend.Close()
}

// PutRecord inserts or replaces a note record and maintains the word
// index over its body content. Records without a uuid get one assigned.
func (s *Store) PutRecord(ctx context.Context, record *corpus.Record) error {
	if record.Name == "" {
		return corpus.ErrEmptyName
	}
	if record.UUID == "" {
		record.UUID = uuid.NewString()
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		key := makeNoteKey(record.UUID)

		// Drop stale index entries when replacing an existing record
		old, err := readRecord(tx, key)
		if err != nil {
			return err
		}
		if old != nil {
			for _, word := range tokenizeAndFilter(old.Content + " " + old.Name) {
				if err := tx.Delete(makeWordIndexKey(word, record.UUID)); err != nil {
					return err
				}
			}
		}

		if err := tx.Set(key, MarshalRecord(record)); err != nil {
			return err
		}

		for _, word := range tokenizeAndFilter(record.Content + " " + record.Name) {
			if err := tx.Set(makeWordIndexKey(word, record.UUID), nil); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetRecord retrieves a note record by uuid.
// Returns corpus.ErrNotFound if the note doesn't exist.
func (s *Store) GetRecord(ctx context.Context, id string) (*corpus.Record, error) {
	var record *corpus.Record
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		record, err = readRecord(tx, makeNoteKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, corpus.ErrNotFound
	}
	return record, nil
}

// FilterNotes performs a title-oriented search: every word of the query
// must appear in the note name, case-insensitively. A non-empty tag
// scopes the result to notes satisfying it (descendants included).
func (s *Store) FilterNotes(ctx context.Context, query, tag string) ([]corpus.Note, error) {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil, nil
	}

	var notes []corpus.Note
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(noteRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var record *corpus.Record
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = UnmarshalRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			if record == nil {
				continue
			}

			name := strings.ToLower(record.Name)
			matched := true
			for _, word := range words {
				if !strings.Contains(name, word) {
					matched = false
					break
				}
			}
			if !matched {
				continue
			}
			if tag != "" && !core.HasTag(record.Tags, tag) {
				continue
			}
			notes = append(notes, &note{record: record})
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// SearchNotes performs a full-text search over note bodies via the word
// index. Notes matching more query words rank earlier.
func (s *Store) SearchNotes(ctx context.Context, query string) ([]corpus.Note, error) {
	words := tokenizeAndFilter(query)
	if len(words) == 0 {
		return nil, nil
	}

	hits := make(map[string]int)
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		for _, word := range words {
			opts := badger.DefaultIteratorOptions
			opts.Prefix = makePartialWordIndexKey(word)
			opts.PrefetchValues = false
			iter := tx.NewIterator(opts)

			for iter.Rewind(); iter.Valid(); iter.Next() {
				if id := wordIndexUUID(iter.Item().Key()); id != "" {
					hits[id]++
				}
			}
			iter.Close()
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(hits))
	for id := range hits {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if hits[ids[i]] != hits[ids[j]] {
			return hits[ids[i]] > hits[ids[j]]
		}
		return ids[i] < ids[j]
	})

	notes := make([]corpus.Note, 0, len(ids))
	for _, id := range ids {
		record, err := s.GetRecord(ctx, id)
		if err != nil {
			s.logger.Warn("indexed note missing", "uuid", id, "err", err)
			continue
		}
		notes = append(notes, &note{record: record})
	}
	return notes, nil
}

// CreateNote creates an empty note and returns its uuid.
func (s *Store) CreateNote(ctx context.Context, name string, tags []string) (string, error) {
	now := time.Now().UTC()
	record := &corpus.Record{
		Name:    name,
		Tags:    core.NormalizeTags(tags),
		Created: now,
		Updated: now,
	}
	if err := s.PutRecord(ctx, record); err != nil {
		return "", err
	}
	return record.UUID, nil
}

// ReplaceNoteContent replaces the body of an existing note.
func (s *Store) ReplaceNoteContent(ctx context.Context, id, markdown string) error {
	record, err := s.GetRecord(ctx, id)
	if err != nil {
		return err
	}
	record.Content = markdown
	record.Updated = time.Now().UTC()
	return s.PutRecord(ctx, record)
}

// readRecord reads a note record within a transaction.
// Returns nil (no error) when the key doesn't exist.
func readRecord(tx *badger.Txn, key []byte) (*corpus.Record, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *corpus.Record
	err = item.Value(func(val []byte) error {
		var err error
		record, err = UnmarshalRecord(val)
		return err
	})
	return record, err
}

// note is a record-backed corpus.Note handle.
type note struct {
	record *corpus.Record
}

var _ corpus.Note = (*note)(nil)

func (n *note) UUID() string       { return n.record.UUID }
func (n *note) Name() string       { return n.record.Name }
func (n *note) Tags() []string     { return n.record.Tags }
func (n *note) Created() time.Time { return n.record.Created }
func (n *note) Updated() time.Time { return n.record.Updated }

func (n *note) Content(ctx context.Context) (string, error) {
	return n.record.Content, nil
}

func (n *note) Attachments(ctx context.Context) ([]corpus.Attachment, error) {
	return n.record.Attachments, nil
}

func (n *note) Images(ctx context.Context) ([]corpus.Image, error) {
	return n.record.Images, nil
}
