// Package deck holds the in-memory deck a run produces before the
// packaging sink serializes it.
package deck

import (
	"github.com/conorfennell/ankigen/internal/domain"
)

// Note is one schema-conformant flashcard row: the 14 field values in
// schema order plus the derived identity and sort keys.
type Note struct {
	GUID      string
	Fields    []string
	SortField string
	Tags      []string
}

// Deck is a named, identified collection of notes. Insertion order is
// irrelevant to the final file: the sink orders notes by their sort
// field, not by insertion sequence.
type Deck struct {
	ID    int64
	Name  string
	notes []Note
}

// New returns an empty deck with the given stable id and display name.
func New(id int64, name string) *Deck {
	return &Deck{ID: id, Name: name}
}

// Add appends a note to the deck.
func (d *Deck) Add(n Note) {
	d.notes = append(d.notes, n)
}

// Notes returns the deck's notes in insertion order.
func (d *Deck) Notes() []Note {
	return d.notes
}

// NoteFor encodes a record as a schema-ordered note.
func NoteFor(rec domain.Record) Note {
	return Note{
		GUID:      rec.GUID(),
		Fields:    rec.Fields(),
		SortField: rec.SortField(),
		Tags:      rec.Tags,
	}
}

// Assemble inserts every record into a fresh deck. No filtering or
// transformation happens here: the pipeline has already discarded
// handles without an accepted solution.
func Assemble(id int64, name string, records []domain.Record) *Deck {
	d := New(id, name)
	for _, rec := range records {
		d.Add(NoteFor(rec))
	}
	return d
}
