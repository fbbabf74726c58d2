// Package syncer pushes unsynced notes into Anki as cards.
package syncer

import (
	"context"
	"fmt"
	"sort"

	"github.com/RizPur/AnkiNotesCLI/internal/config"
	"github.com/RizPur/AnkiNotesCLI/internal/notes"
)

// AnkiClient is the slice of the AnkiConnect API the engine needs.
type AnkiClient interface {
	CreateDeck(ctx context.Context, name string) error
	AddNote(ctx context.Context, deck, model string, fields map[string]string, tags []string) error
}

// NoteStore is the slice of the note store the engine needs.
type NoteStore interface {
	Load(course string) (map[string]*notes.Note, error)
	MarkSynced(course, term string) error
}

// ProgressEvent reports the outcome of one note within a batch.
type ProgressEvent struct {
	Index int
	Total int
	Term  string
	Err   error
}

// Result summarizes a sync batch.
type Result struct {
	Synced int
	Total  int
}

// Engine syncs one course's unsynced notes. A per-note failure is reported
// through the progress callback and skipped; the batch continues and the
// failed note stays unsynced. Each success is persisted immediately.
type Engine struct {
	anki     AnkiClient
	store    NoteStore
	progress func(ProgressEvent)
}

// New creates an engine. progress may be nil.
func New(anki AnkiClient, store NoteStore, progress func(ProgressEvent)) *Engine {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}
	return &Engine{anki: anki, store: store, progress: progress}
}

// Sync pushes every unsynced note of the course. A Result with Total 0
// means there was nothing to push and no external call was made.
func (e *Engine) Sync(ctx context.Context, cfg *config.CourseConfig) (*Result, error) {
	collection, err := e.store.Load(cfg.CourseName)
	if err != nil {
		return nil, err
	}

	var terms []string
	for term, n := range collection {
		if !n.Synced {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return &Result{}, nil
	}
	sort.Strings(terms)

	deckName := cfg.Anki.DeckName
	if err := e.anki.CreateDeck(ctx, deckName); err != nil {
		return nil, fmt.Errorf("create deck %q: %w", deckName, err)
	}

	result := &Result{Total: len(terms)}
	tags := []string{config.SanitizeName(cfg.CourseName)}

	for i, term := range terms {
		n := collection[term]
		err := e.syncNote(ctx, cfg, deckName, term, n, tags)
		if err == nil {
			if markErr := e.store.MarkSynced(cfg.CourseName, term); markErr != nil {
				err = fmt.Errorf("pushed but not recorded: %w", markErr)
			}
		}
		if err == nil {
			result.Synced++
		}
		e.progress(ProgressEvent{Index: i + 1, Total: result.Total, Term: term, Err: err})
	}

	return result, nil
}

func (e *Engine) syncNote(ctx context.Context, cfg *config.CourseConfig, deckName, term string, n *notes.Note, tags []string) error {
	targetDeck := deckName
	if cfg.Anki.UseSubDecks && n.Level != "" {
		targetDeck = deckName + "::" + n.Level
	}

	if err := e.anki.CreateDeck(ctx, targetDeck); err != nil {
		return fmt.Errorf("create deck %q: %w", targetDeck, err)
	}

	fields := BuildFields(cfg, term, n)
	if err := e.anki.AddNote(ctx, targetDeck, cfg.Anki.ModelName, fields, tags); err != nil {
		return err
	}
	return nil
}

// BuildFields maps a note onto the course's configured Anki field names.
// Term, example and notes are always exported. The translation field takes
// the note's translation, falling back to its explanation. Fields whose
// mapping is null are omitted; pronunciation is also omitted when the note
// has none.
func BuildFields(cfg *config.CourseConfig, term string, n *notes.Note) map[string]string {
	noteTerm := n.Term
	if noteTerm == "" {
		noteTerm = term
	}

	fields := map[string]string{}
	if name, ok := cfg.Field("term"); ok {
		fields[name] = noteTerm
	}
	if name, ok := cfg.Field("example"); ok {
		fields[name] = n.Example
	}
	if name, ok := cfg.Field("notes"); ok {
		fields[name] = n.Notes
	}
	if name, ok := cfg.Field("translation"); ok {
		value := n.Translation
		if value == "" {
			value = n.Explanation
		}
		fields[name] = value
	}
	if name, ok := cfg.Field("example_translation"); ok {
		fields[name] = n.ExampleTranslation
	}
	if name, ok := cfg.Field("pronunciation"); ok && n.Pronunciation != "" {
		fields[name] = n.Pronunciation
	}
	return fields
}
