// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/danielhkuo/next-chapter/cliparse"
	"github.com/danielhkuo/next-chapter/middleware"
	"github.com/danielhkuo/next-chapter/models"
)

// Preferred length applied when a member registers without one.
const defaultPreferredLength = 300

type MemberHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewMemberHandler(db *sql.DB, cfg cliparse.Config) *MemberHandler {
	return &MemberHandler{db: db, cfg: cfg}
}

// AddMember handles POST /members
func (h *MemberHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req models.AddMemberRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if len(req.LikedGenres) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "at least one liked genre is required")
		return
	}
	if req.PreferredLength < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "preferred_length must be positive")
		return
	}
	if req.PreferredLength == 0 {
		req.PreferredLength = defaultPreferredLength
	}

	memberID := uuid.NewString()

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO member (id, name, preferred_length)
		VALUES ($1, $2, $3)
	`, memberID, req.Name, req.PreferredLength)
	if err != nil {
		slog.Error("failed to insert member", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add member")
		return
	}

	seen := map[string]bool{}
	for _, genre := range req.LikedGenres {
		if genre == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "liked genres must be non-empty strings")
			return
		}
		if seen[genre] {
			continue
		}
		seen[genre] = true

		_, err = tx.Exec(`
			INSERT INTO member_genre (member_id, genre)
			VALUES ($1, $2)
		`, memberID, genre)
		if err != nil {
			slog.Error("failed to insert liked genre", "error", err, "member_id", memberID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add member")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit member", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add member")
		return
	}

	slog.Info("member added", "member_id", memberID, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.AddMemberResponse{
		MemberID: memberID,
	})
}

// ListMembers handles GET /members
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := loadMembers(h.db)
	if err != nil {
		slog.Error("failed to query members", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, members)
}
