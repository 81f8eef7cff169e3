// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// SeedDemoData loads a sample club: four members, a twenty-book pool,
// and two completed rounds, leaving the instance ready for round-3
// recommendations. No-op when members already exist.
func SeedDemoData(db *sql.DB) error {
	var memberCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM member").Scan(&memberCount); err != nil {
		return fmt.Errorf("failed to check for existing members: %w", err)
	}
	if memberCount > 0 {
		slog.Info("demo seed skipped, members already exist", "count", memberCount)
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	members := []struct {
		name            string
		preferredLength int
		likedGenres     []string
	}{
		{"Alice", 350, []string{"Fantasy", "Science Fiction", "Thriller"}},
		{"Bob", 280, []string{"Mystery", "Historical Fiction", "Thriller"}},
		{"Carol", 300, []string{"Fantasy", "Historical Fiction", "Contemporary Fiction"}},
		{"Dan", 320, []string{"Science Fiction", "Non-Fiction", "Fantasy"}},
	}

	memberIDs := make(map[string]string, len(members))
	for _, m := range members {
		id := uuid.NewString()
		memberIDs[m.name] = id
		if _, err := tx.Exec(`
			INSERT INTO member (id, name, preferred_length) VALUES ($1, $2, $3)
		`, id, m.name, m.preferredLength); err != nil {
			return fmt.Errorf("failed to seed member %s: %w", m.name, err)
		}
		for _, genre := range m.likedGenres {
			if _, err := tx.Exec(`
				INSERT INTO member_genre (member_id, genre) VALUES ($1, $2)
			`, id, genre); err != nil {
				return fmt.Errorf("failed to seed genres for %s: %w", m.name, err)
			}
		}
	}

	books := []struct {
		title       string
		author      string
		genre       string
		pages       int
		suggestedBy string
	}{
		{"Project Hail Mary", "Andy Weir", "Science Fiction", 476, "Alice"},
		{"The Name of the Wind", "Patrick Rothfuss", "Fantasy", 662, "Carol"},
		{"Dune", "Frank Herbert", "Science Fiction", 688, "Dan"},
		{"The Fifth Season", "N.K. Jemisin", "Fantasy", 512, "Alice"},
		{"The Silent Patient", "Alex Michaelides", "Thriller", 336, "Bob"},
		{"Gone Girl", "Gillian Flynn", "Mystery", 432, ""},
		{"In the Woods", "Tana French", "Mystery", 464, "Bob"},
		{"All the Light We Cannot See", "Anthony Doerr", "Historical Fiction", 531, "Carol"},
		{"The Nightingale", "Kristin Hannah", "Historical Fiction", 440, ""},
		{"The Book Thief", "Markus Zusak", "Historical Fiction", 584, "Bob"},
		{"Where the Crawdads Sing", "Delia Owens", "Contemporary Fiction", 384, ""},
		{"The Midnight Library", "Matt Haig", "Contemporary Fiction", 304, "Carol"},
		{"Educated", "Tara Westover", "Non-Fiction", 334, "Dan"},
		{"Sapiens", "Yuval Noah Harari", "Non-Fiction", 443, "Dan"},
		{"The Hobbit", "J.R.R. Tolkien", "Fantasy", 310, ""},
		{"Recursion", "Blake Crouch", "Science Fiction", 329, "Alice"},
		{"The Seven Husbands of Evelyn Hugo", "Taylor Jenkins Reid", "Contemporary Fiction", 400, ""},
		{"Mexican Gothic", "Silvia Moreno-Garcia", "Horror", 301, ""},
		{"Circe", "Madeline Miller", "Fantasy", 400, "Carol"},
		{"The Song of Achilles", "Madeline Miller", "Historical Fiction", 378, ""},
	}

	bookIDs := make(map[string]string, len(books))
	for _, b := range books {
		id := uuid.NewString()
		bookIDs[b.title] = id

		var suggestedBy *string
		if b.suggestedBy != "" {
			memberID := memberIDs[b.suggestedBy]
			suggestedBy = &memberID
		}

		if _, err := tx.Exec(`
			INSERT INTO book (id, title, author, genre, page_count, suggested_by)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, id, b.title, b.author, b.genre, b.pages, suggestedBy); err != nil {
			return fmt.Errorf("failed to seed book %s: %w", b.title, err)
		}
	}

	// Two finished rounds so recommendations have history to work with
	picks := []struct {
		title string
		round int
	}{
		{"The Midnight Library", 1},
		{"In the Woods", 2},
	}
	for _, pick := range picks {
		if _, err := tx.Exec(`
			INSERT INTO reading_history (id, book_id, round_number)
			VALUES ($1, $2, $3)
		`, uuid.NewString(), bookIDs[pick.title], pick.round); err != nil {
			return fmt.Errorf("failed to seed history for %s: %w", pick.title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit demo seed: %w", err)
	}

	slog.Info("demo data loaded", "members", len(members), "books", len(books), "rounds_read", len(picks))
	return nil
}
