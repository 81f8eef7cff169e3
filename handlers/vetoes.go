// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/next-chapter/cliparse"
	"github.com/danielhkuo/next-chapter/middleware"
	"github.com/danielhkuo/next-chapter/models"
)

type VetoHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVetoHandler(db *sql.DB, cfg cliparse.Config) *VetoHandler {
	return &VetoHandler{db: db, cfg: cfg}
}

// SetVeto handles PUT /vetoes
// Records a member's genre veto for the current round. A member gets one
// veto per round; setting another replaces the previous one.
func (h *VetoHandler) SetVeto(w http.ResponseWriter, r *http.Request) {
	var req models.SetVetoRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.MemberID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "member_id is required")
		return
	}
	if req.Genre == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "genre is required")
		return
	}

	// Check the member exists
	var exists int
	if err := h.db.QueryRow("SELECT COUNT(*) FROM member WHERE id = $1", req.MemberID).Scan(&exists); err != nil {
		slog.Error("failed to query member", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if exists == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Member not found")
		return
	}

	round, err := currentRound(h.db)
	if err != nil {
		slog.Error("failed to derive current round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Delete-then-insert so the latest veto wins
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		DELETE FROM veto WHERE member_id = $1 AND round_number = $2
	`, req.MemberID, round)
	if err != nil {
		slog.Error("failed to clear existing veto", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to set veto")
		return
	}

	_, err = tx.Exec(`
		INSERT INTO veto (member_id, genre, round_number)
		VALUES ($1, $2, $3)
	`, req.MemberID, req.Genre, round)
	if err != nil {
		slog.Error("failed to insert veto", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to set veto")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit veto", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to set veto")
		return
	}

	slog.Info("veto set", "member_id", req.MemberID, "genre", req.Genre, "round", round)

	middleware.JSONResponse(w, http.StatusOK, models.SetVetoResponse{
		RoundNumber: round,
		Genre:       req.Genre,
	})
}

// ListVetoes handles GET /vetoes?round=N
// Defaults to the current round when no round is given.
func (h *VetoHandler) ListVetoes(w http.ResponseWriter, r *http.Request) {
	round := 0
	if raw := r.URL.Query().Get("round"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "round must be a positive integer")
			return
		}
		round = parsed
	}

	if round == 0 {
		current, err := currentRound(h.db)
		if err != nil {
			slog.Error("failed to derive current round", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		round = current
	}

	genres, err := loadVetoes(h.db, round)
	if err != nil {
		slog.Error("failed to query vetoes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VetoListResponse{
		RoundNumber: round,
		Genres:      genres,
	})
}
