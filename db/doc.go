// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and demo seeding.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The DDL sticks to the subset both sqlite and postgres accept,
so either driver works with the same schema string.

# Tables

  - member: club members and their preferred book length
  - member_genre: liked-genre set per member
  - book: the candidate pool, with an optional suggesting member
  - reading_history: append-only (book, round) picks
  - veto: one genre veto per member per round

# Relationships

	member 1──* member_genre
	member 1──* book (as suggester, nullable)
	member 1──* veto
	book   1──1 reading_history (a book is picked at most once)

# Demo Data

SeedDemoData loads a ready-to-use sample club (4 members, 20 books,
2 completed rounds) and is a no-op when members already exist. Enabled
with the -demo flag.
*/
package db
