// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Genre assigned to imported books that arrive without one.
const GenreUnspecified = "Unspecified"

// Request types

type AddMemberRequest struct {
	Name            string   `json:"name"`
	PreferredLength int      `json:"preferred_length"`
	LikedGenres     []string `json:"liked_genres"`
}

type AddBookRequest struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Genre       string  `json:"genre"`
	PageCount   int     `json:"page_count"`
	SuggestedBy *string `json:"suggested_by,omitempty"`
}

type UpdateGenreRequest struct {
	Genre string `json:"genre"`
}

type MarkReadRequest struct {
	BookID string `json:"book_id"`
	// Optional; defaults to the current round when zero.
	RoundNumber int `json:"round_number,omitempty"`
}

type SetVetoRequest struct {
	MemberID string `json:"member_id"`
	Genre    string `json:"genre"`
}

// Response types

type AddMemberResponse struct {
	MemberID string `json:"member_id"`
}

type AddBookResponse struct {
	BookID string `json:"book_id"`
}

type MarkReadResponse struct {
	HistoryID   string `json:"history_id"`
	RoundNumber int    `json:"round_number"`
}

type SetVetoResponse struct {
	RoundNumber int    `json:"round_number"`
	Genre       string `json:"genre"`
}

type CurrentRoundResponse struct {
	RoundNumber int `json:"round_number"`
}

type GenreSuggestionResponse struct {
	Genre string `json:"genre"`
}

type VetoListResponse struct {
	RoundNumber int      `json:"round_number"`
	Genres      []string `json:"genres"`
}

type RecommendationsResponse struct {
	RoundNumber     int              `json:"round_number"`
	Recommendations []Recommendation `json:"recommendations"`
}

type ImportBooksResponse struct {
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// Domain types

type Member struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	PreferredLength int       `json:"preferred_length"`
	LikedGenres     []string  `json:"liked_genres"`
	CreatedAt       time.Time `json:"created_at"`
}

type Book struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Genre           string    `json:"genre"`
	PageCount       int       `json:"page_count"`
	SuggestedBy     *string   `json:"suggested_by,omitempty"`
	SuggestedByName *string   `json:"suggested_by_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type HistoryEntry struct {
	ID          string    `json:"id"`
	BookID      string    `json:"book_id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Genre       string    `json:"genre"`
	PageCount   int       `json:"page_count"`
	RoundNumber int       `json:"round_number"`
	ReadAt      time.Time `json:"read_at"`
}

// Recommendation result types

type ScoreBreakdown struct {
	GenreMatch        float64 `json:"genre_match"`
	LengthFit         float64 `json:"length_fit"`
	SuggesterInterest float64 `json:"suggester_interest"`
	DiversityBonus    float64 `json:"diversity_bonus"`
}

type Recommendation struct {
	Book
	Score     float64        `json:"score"`
	Breakdown ScoreBreakdown `json:"score_breakdown"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
