// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/next-chapter/cliparse"
	"github.com/danielhkuo/next-chapter/middleware"
	"github.com/danielhkuo/next-chapter/models"
)

type HistoryHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewHistoryHandler(db *sql.DB, cfg cliparse.Config) *HistoryHandler {
	return &HistoryHandler{db: db, cfg: cfg}
}

// ListHistory handles GET /history
// Returns history entries joined with book fields, newest round first.
func (h *HistoryHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	history, err := loadHistory(h.db)
	if err != nil {
		slog.Error("failed to query history", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, history)
}

// MarkRead handles POST /history
// Records that the club picked a book, defaulting to the current round.
func (h *HistoryHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	var req models.MarkReadRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.BookID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "book_id is required")
		return
	}
	if req.RoundNumber < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "round_number must be positive")
		return
	}

	// Check the book exists
	var exists int
	if err := h.db.QueryRow("SELECT COUNT(*) FROM book WHERE id = $1", req.BookID).Scan(&exists); err != nil {
		slog.Error("failed to query book", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if exists == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Book not found")
		return
	}

	round := req.RoundNumber
	if round == 0 {
		current, err := currentRound(h.db)
		if err != nil {
			slog.Error("failed to derive current round", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		round = current
	}

	historyID := uuid.NewString()

	_, err := h.db.Exec(`
		INSERT INTO reading_history (id, book_id, round_number)
		VALUES ($1, $2, $3)
	`, historyID, req.BookID, round)
	if err != nil {
		if isUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "Book already recorded in history")
			return
		}
		slog.Error("failed to insert history entry", "error", err, "book_id", req.BookID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record pick")
		return
	}

	slog.Info("book marked as read", "book_id", req.BookID, "round", round)

	middleware.JSONResponse(w, http.StatusCreated, models.MarkReadResponse{
		HistoryID:   historyID,
		RoundNumber: round,
	})
}

// GetCurrentRound handles GET /rounds/current
func (h *HistoryHandler) GetCurrentRound(w http.ResponseWriter, r *http.Request) {
	round, err := currentRound(h.db)
	if err != nil {
		slog.Error("failed to derive current round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CurrentRoundResponse{
		RoundNumber: round,
	})
}

// isUniqueViolation matches the sqlite and postgres driver messages for
// unique constraint failures.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
