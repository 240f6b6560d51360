// Package storage is the packaging sink: it serializes a deck to a
// single SQLite file and can read one back, so external tooling can
// merge or diff regenerated decks via their stable note GUIDs.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/conorfennell/ankigen/internal/deck"
	"github.com/conorfennell/ankigen/internal/schema"
	_ "modernc.org/sqlite" // Registers the sqlite driver
)

// FieldSeparator joins the per-note field values into one column.
const FieldSeparator = "\x1f"

// WriteDeck serializes the deck and its model to a SQLite file at path.
// Notes are written in sort-field order (GUID as tie-break), decoupled
// from insertion order. The file is built at a temporary path and
// renamed into place on success, so a failed run never leaves a
// valid-looking partial output behind.
func WriteDeck(path string, m *schema.Model, d *deck.Deck) (err error) {
	tmp := path + ".tmp"
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()
	if err = os.Remove(tmp); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear stale temp file %s: %w", tmp, err)
	}

	db, err := sql.Open("sqlite", tmp)
	if err != nil {
		return fmt.Errorf("failed to create deck file: %w", err)
	}
	defer db.Close()

	if _, err = db.Exec(deckSchema); err != nil {
		return fmt.Errorf("failed to apply deck schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin deck write: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.Exec(`INSERT INTO decks (id, name) VALUES (?, ?)`, d.ID, d.Name); err != nil {
		return fmt.Errorf("failed to insert deck %d: %w", d.ID, err)
	}
	if _, err = tx.Exec(`
		INSERT INTO models (id, name, fields, question_format, answer_format)
		VALUES (?, ?, ?, ?, ?)
	`,
		m.ID,
		m.Name,
		strings.Join(m.Fields, FieldSeparator),
		m.QuestionFormat,
		m.AnswerFormat,
	); err != nil {
		return fmt.Errorf("failed to insert model %d: %w", m.ID, err)
	}

	notes := append([]deck.Note(nil), d.Notes()...)
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].SortField != notes[j].SortField {
			return notes[i].SortField < notes[j].SortField
		}
		return notes[i].GUID < notes[j].GUID
	})

	for _, n := range notes {
		if _, err = tx.Exec(`
			INSERT INTO notes (guid, deck_id, model_id, sort_field, fields, tags)
			VALUES (?, ?, ?, ?, ?, ?)
		`,
			n.GUID,
			d.ID,
			m.ID,
			n.SortField,
			strings.Join(n.Fields, FieldSeparator),
			strings.Join(n.Tags, " "),
		); err != nil {
			return fmt.Errorf("failed to insert note %s: %w", n.GUID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit deck write: %w", err)
	}
	if err = db.Close(); err != nil {
		return fmt.Errorf("failed to close deck file: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to move deck file into place: %w", err)
	}
	return nil
}

// ReadDeck loads a deck file written by WriteDeck. Notes come back in
// stored (sort-field) order.
func ReadDeck(path string) (*deck.Deck, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open deck file: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck file: %w", err)
	}
	defer db.Close()

	var id int64
	var name string
	if err := db.QueryRow(`SELECT id, name FROM decks`).Scan(&id, &name); err != nil {
		return nil, fmt.Errorf("failed to read deck row: %w", err)
	}
	d := deck.New(id, name)

	rows, err := db.Query(`SELECT guid, sort_field, fields, tags FROM notes ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var n deck.Note
		var fields, tags string
		if err := rows.Scan(&n.GUID, &n.SortField, &fields, &tags); err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		n.Fields = strings.Split(fields, FieldSeparator)
		if tags != "" {
			n.Tags = strings.Split(tags, " ")
		}
		d.Add(n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}
	return d, nil
}
