package storage

const deckSchema = `
-- One row: the deck this file packages.
CREATE TABLE IF NOT EXISTS decks (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);

-- The note model: ordered field names plus the two render templates.
-- Field names are joined with the same 0x1f separator as note fields.
CREATE TABLE IF NOT EXISTS models (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    fields TEXT NOT NULL,
    question_format TEXT NOT NULL,
    answer_format TEXT NOT NULL
);

-- The flashcards. 'fields' holds the 14 values joined with 0x1f,
-- 'tags' is space-joined. Rows are inserted in sort_field order.
CREATE TABLE IF NOT EXISTS notes (
    guid TEXT PRIMARY KEY,
    deck_id INTEGER NOT NULL,
    model_id INTEGER NOT NULL,
    sort_field TEXT NOT NULL,
    fields TEXT NOT NULL,
    tags TEXT NOT NULL,

    FOREIGN KEY(deck_id) REFERENCES decks(id),
    FOREIGN KEY(model_id) REFERENCES models(id)
);
`
