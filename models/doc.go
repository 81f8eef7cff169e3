// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AddMemberRequest: name, preferred_length, liked_genres
  - AddBookRequest: title, author, genre, page_count, suggested_by
  - UpdateGenreRequest: genre
  - MarkReadRequest: book_id, round_number
  - SetVetoRequest: member_id, genre

# Response Types

Types for JSON responses:

  - AddMemberResponse: member_id
  - AddBookResponse: book_id
  - MarkReadResponse: history_id, round_number
  - SetVetoResponse: round_number, genre
  - CurrentRoundResponse: round_number
  - GenreSuggestionResponse: genre
  - ImportBooksResponse: added, skipped, errors
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Member: club member with length preference and liked-genre set
  - Book: pool candidate with optional suggester reference
  - HistoryEntry: one (book, round) pick, joined with book fields
  - ScoreBreakdown: the four sub-scores behind a recommendation
  - Recommendation: a scored book with its breakdown

# Constants

	GenreUnspecified = "Unspecified"

Books imported without a genre carry GenreUnspecified until retagged.
*/
package models
