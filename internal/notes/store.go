package notes

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/RizPur/AnkiNotesCLI/internal/config"
)

// DefaultRecentLimit is how many notes Recent returns when no limit is
// given.
const DefaultRecentLimit = 5

// Store reads and writes per-course note collections. Each invocation of
// the tool is an independent process; concurrent runs on the same course
// race with last-writer-wins, which is acceptable for single-user use.
type Store struct {
	dir string
}

// NewStore creates a note store over the given courses directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the notes file path for a course.
func (s *Store) Path(course string) string {
	return filepath.Join(s.dir, config.SanitizeName(course)+"_notes.json")
}

// Exists reports whether a notes file has been written for the course.
func (s *Store) Exists(course string) bool {
	_, err := os.Stat(s.Path(course))
	return err == nil
}

// Load reads a course's note collection. A missing or unparsable file
// yields an empty collection; parse failures log a warning.
func (s *Store) Load(course string) (map[string]*Note, error) {
	data, err := os.ReadFile(s.Path(course))
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*Note{}, nil
		}
		return nil, fmt.Errorf("read notes: %w", err)
	}

	collection := map[string]*Note{}
	if err := json.Unmarshal(data, &collection); err != nil {
		log.Printf("warning: notes file %s is not valid JSON, treating as empty: %v", s.Path(course), err)
		return map[string]*Note{}, nil
	}
	return collection, nil
}

// Save rewrites a course's whole note collection.
func (s *Store) Save(course string, collection map[string]*Note) error {
	return config.WriteJSON(s.Path(course), collection)
}

// Append stamps the note with an ID, creation time, the course's current
// level and synced=false, then stores it under key. An existing note with
// the same key is overwritten, not merged.
func (s *Store) Append(course, key string, n *Note, level, context, grammar string) error {
	collection, err := s.Load(course)
	if err != nil {
		return err
	}

	n.ID = uuid.NewString()
	n.Added = time.Now().Format(time.RFC3339Nano)
	n.Level = level
	n.Synced = false
	if context != "" {
		n.Context = context
	}
	if grammar != "" {
		n.Grammar = grammar
	}

	collection[key] = n
	return s.Save(course, collection)
}

// Entry pairs a note with the key it is stored under.
type Entry struct {
	Term string
	Note *Note
}

// Recent returns up to limit notes ordered most-recently-added first.
// Notes missing an added timestamp sort last.
func (s *Store) Recent(course string, limit int) ([]Entry, error) {
	collection, err := s.Load(course)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	entries := make([]Entry, 0, len(collection))
	for term, n := range collection {
		entries = append(entries, Entry{Term: term, Note: n})
	}

	// RFC 3339 timestamps order lexicographically; ties break on term so
	// the listing is stable.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Note.Added != entries[j].Note.Added {
			return entries[i].Note.Added > entries[j].Note.Added
		}
		return entries[i].Term < entries[j].Term
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// MarkSynced flips the named note's synced flag and rewrites the file
// immediately, so a crash mid-batch cannot lose already-accepted pushes.
func (s *Store) MarkSynced(course, term string) error {
	collection, err := s.Load(course)
	if err != nil {
		return err
	}

	n, ok := collection[term]
	if !ok {
		return fmt.Errorf("no note stored under %q", term)
	}
	n.Synced = true

	return s.Save(course, collection)
}
