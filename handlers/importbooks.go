// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/danielhkuo/next-chapter/cliparse"
	"github.com/danielhkuo/next-chapter/importer"
	"github.com/danielhkuo/next-chapter/middleware"
	"github.com/danielhkuo/next-chapter/models"
)

type ImportHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewImportHandler(db *sql.DB, cfg cliparse.Config) *ImportHandler {
	return &ImportHandler{db: db, cfg: cfg}
}

// ImportBooks handles POST /import/books
// Accepts a CSV body and loads it into the pool row by row. Bad rows are
// reported and skipped; the batch itself never aborts once the header
// parses.
func (h *ImportHandler) ImportBooks(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	result, err := importer.ParseCSV(r.Body)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// Resolve suggester names against registered members once up front
	memberIDs, err := memberIDsByName(h.db)
	if err != nil {
		slog.Error("failed to query members", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	response := models.ImportBooksResponse{
		Skipped: result.Skipped(),
		Errors:  result.Errors,
	}

	for _, record := range result.Records {
		var suggestedBy *string
		// Unknown suggester names degrade to house suggestions; the
		// spreadsheet had typos and ex-members
		if id, ok := memberIDs[record.SuggestedBy]; ok && record.SuggestedBy != "" {
			suggestedBy = &id
		}

		_, err := h.db.Exec(`
			INSERT INTO book (id, title, author, genre, page_count, suggested_by)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, uuid.NewString(), record.Title, record.Author, record.Genre, record.PageCount, suggestedBy)
		if err != nil {
			slog.Error("failed to insert imported book", "error", err, "title", record.Title)
			response.Skipped++
			response.Errors = append(response.Errors, fmt.Sprintf("%s: %v", record.Title, err))
			continue
		}
		response.Added++
	}

	slog.Info("book import finished", "added", response.Added, "skipped", response.Skipped)

	middleware.JSONResponse(w, http.StatusOK, response)
}

func memberIDsByName(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query("SELECT id, name FROM member")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		ids[name] = id
	}

	return ids, rows.Err()
}
