// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"

	"github.com/danielhkuo/next-chapter/models"
	"github.com/danielhkuo/next-chapter/recommender"
)

// loadSnapshot fetches everything the engine needs as one view: pool,
// members, history, current round, and that round's vetoes. The engine
// treats the result as immutable.
func loadSnapshot(db *sql.DB) (recommender.Snapshot, error) {
	round, err := currentRound(db)
	if err != nil {
		return recommender.Snapshot{}, err
	}

	books, err := loadBooks(db)
	if err != nil {
		return recommender.Snapshot{}, err
	}

	members, err := loadMembers(db)
	if err != nil {
		return recommender.Snapshot{}, err
	}

	history, err := loadHistory(db)
	if err != nil {
		return recommender.Snapshot{}, err
	}

	vetoes, err := loadVetoes(db, round)
	if err != nil {
		return recommender.Snapshot{}, err
	}

	return recommender.Snapshot{
		Books:        books,
		Members:      members,
		History:      history,
		Vetoes:       vetoes,
		CurrentRound: round,
	}, nil
}

// loadMembers retrieves all members with their liked genres.
func loadMembers(db *sql.DB) ([]models.Member, error) {
	rows, err := db.Query(`
		SELECT id, name, preferred_length, created_at
		FROM member
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.PreferredLength, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range members {
		genres, err := loadMemberGenres(db, members[i].ID)
		if err != nil {
			return nil, err
		}
		members[i].LikedGenres = genres
	}

	return members, nil
}

func loadMemberGenres(db *sql.DB, memberID string) ([]string, error) {
	rows, err := db.Query(`
		SELECT genre FROM member_genre WHERE member_id = $1 ORDER BY genre
	`, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := []string{}
	for rows.Next() {
		var genre string
		if err := rows.Scan(&genre); err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}

	return genres, rows.Err()
}

// loadBooks retrieves the full pool with suggester names, in the order
// books were added. That order is what filter output and score ties
// preserve.
func loadBooks(db *sql.DB) ([]models.Book, error) {
	rows, err := db.Query(`
		SELECT b.id, b.title, b.author, b.genre, b.page_count, b.suggested_by, m.name, b.created_at
		FROM book b
		LEFT JOIN member m ON b.suggested_by = m.id
		ORDER BY b.created_at, b.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		var b models.Book
		var suggestedBy, suggestedByName sql.NullString
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Genre, &b.PageCount,
			&suggestedBy, &suggestedByName, &b.CreatedAt); err != nil {
			return nil, err
		}
		if suggestedBy.Valid {
			b.SuggestedBy = &suggestedBy.String
		}
		if suggestedByName.Valid {
			b.SuggestedByName = &suggestedByName.String
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

// loadHistory retrieves reading history joined with book fields, newest
// round first.
func loadHistory(db *sql.DB) ([]models.HistoryEntry, error) {
	rows, err := db.Query(`
		SELECT rh.id, rh.book_id, b.title, b.author, b.genre, b.page_count, rh.round_number, rh.read_at
		FROM reading_history rh
		JOIN book b ON rh.book_id = b.id
		ORDER BY rh.round_number DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []models.HistoryEntry{}
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.ID, &e.BookID, &e.Title, &e.Author, &e.Genre,
			&e.PageCount, &e.RoundNumber, &e.ReadAt); err != nil {
			return nil, err
		}
		history = append(history, e)
	}

	return history, rows.Err()
}

// loadVetoes retrieves the genres vetoed for a round.
func loadVetoes(db *sql.DB, round int) ([]string, error) {
	rows, err := db.Query(`
		SELECT genre FROM veto WHERE round_number = $1
	`, round)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := []string{}
	for rows.Next() {
		var genre string
		if err := rows.Scan(&genre); err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}

	return genres, rows.Err()
}

// currentRound is the highest recorded round plus one, or 1 when no
// history exists.
func currentRound(db *sql.DB) (int, error) {
	var maxRound sql.NullInt64
	err := db.QueryRow(`
		SELECT MAX(round_number) FROM reading_history
	`).Scan(&maxRound)
	if err != nil {
		return 0, err
	}

	if !maxRound.Valid {
		return 1, nil
	}
	return int(maxRound.Int64) + 1, nil
}
