// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is restricted to the dialect both sqlite and postgres accept.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Members
CREATE TABLE IF NOT EXISTS member (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    preferred_length INTEGER NOT NULL DEFAULT 300,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Liked genres (set semantics via the primary key)
CREATE TABLE IF NOT EXISTS member_genre (
    member_id TEXT NOT NULL REFERENCES member(id) ON DELETE CASCADE,
    genre TEXT NOT NULL,
    PRIMARY KEY (member_id, genre)
);

CREATE INDEX IF NOT EXISTS idx_member_genre_member ON member_genre(member_id);

-- Book pool
CREATE TABLE IF NOT EXISTS book (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    author TEXT NOT NULL,
    genre TEXT NOT NULL,
    page_count INTEGER NOT NULL,
    suggested_by TEXT REFERENCES member(id),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_book_genre ON book(genre);

-- Reading history (append-only)
CREATE TABLE IF NOT EXISTS reading_history (
    id TEXT PRIMARY KEY,
    book_id TEXT NOT NULL REFERENCES book(id),
    round_number INTEGER NOT NULL,
    read_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (book_id)
);

CREATE INDEX IF NOT EXISTS idx_history_round ON reading_history(round_number);

-- Vetoes: one active veto per member per round, latest wins
CREATE TABLE IF NOT EXISTS veto (
    member_id TEXT NOT NULL REFERENCES member(id) ON DELETE CASCADE,
    genre TEXT NOT NULL,
    round_number INTEGER NOT NULL,
    PRIMARY KEY (member_id, round_number)
);

CREATE INDEX IF NOT EXISTS idx_veto_round ON veto(round_number);
`
