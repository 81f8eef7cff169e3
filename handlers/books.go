// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/danielhkuo/next-chapter/cliparse"
	"github.com/danielhkuo/next-chapter/genres"
	"github.com/danielhkuo/next-chapter/middleware"
	"github.com/danielhkuo/next-chapter/models"
	"github.com/danielhkuo/next-chapter/recommender"
)

type BookHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewBookHandler(db *sql.DB, cfg cliparse.Config) *BookHandler {
	return &BookHandler{db: db, cfg: cfg}
}

// AddBook handles POST /books
func (h *BookHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	var req models.AddBookRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Author == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "author is required")
		return
	}
	if req.Genre == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "genre is required")
		return
	}
	if req.PageCount < 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "page_count must be positive")
		return
	}

	// An absent suggester means a house suggestion; a present one must
	// be a real member
	if req.SuggestedBy != nil {
		var exists int
		err := h.db.QueryRow("SELECT COUNT(*) FROM member WHERE id = $1", *req.SuggestedBy).Scan(&exists)
		if err != nil {
			slog.Error("failed to query member", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if exists == 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "suggested_by does not match a member")
			return
		}
	}

	bookID := uuid.NewString()

	_, err := h.db.Exec(`
		INSERT INTO book (id, title, author, genre, page_count, suggested_by)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, bookID, req.Title, req.Author, req.Genre, req.PageCount, req.SuggestedBy)
	if err != nil {
		slog.Error("failed to insert book", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add book")
		return
	}

	slog.Info("book added", "book_id", bookID, "title", req.Title, "genre", req.Genre)

	middleware.JSONResponse(w, http.StatusCreated, models.AddBookResponse{
		BookID: bookID,
	})
}

// ListBooks handles GET /books
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := loadBooks(h.db)
	if err != nil {
		slog.Error("failed to query books", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, books)
}

// UpdateGenre handles PATCH /books/{id}/genre
// The confirmation step of the genre-tagging workflow for imported books.
func (h *BookHandler) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")
	if bookID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "book id is required")
		return
	}

	var req models.UpdateGenreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Genre == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "genre is required")
		return
	}

	result, err := h.db.Exec(`
		UPDATE book SET genre = $1 WHERE id = $2
	`, req.Genre, bookID)
	if err != nil {
		slog.Error("failed to update genre", "error", err, "book_id", bookID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update genre")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Book not found")
		return
	}

	slog.Info("book genre updated", "book_id", bookID, "genre", req.Genre)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"book_id": bookID,
		"genre":   req.Genre,
	})
}

// ListGenres handles GET /genres
// Returns the sorted distinct genres currently in the pool, for veto
// selection UIs.
func (h *BookHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	books, err := loadBooks(h.db)
	if err != nil {
		slog.Error("failed to query books", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, recommender.GenresFromPool(books))
}

// SuggestGenre handles GET /genres/suggest?title=...&author=...
func (h *BookHandler) SuggestGenre(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	author := r.URL.Query().Get("author")

	middleware.JSONResponse(w, http.StatusOK, models.GenreSuggestionResponse{
		Genre: genres.Suggest(title, author),
	})
}
