// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/next-chapter/cliparse"
	"github.com/danielhkuo/next-chapter/handlers"
	"github.com/danielhkuo/next-chapter/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	memberHandler := handlers.NewMemberHandler(db, cfg)
	bookHandler := handlers.NewBookHandler(db, cfg)
	historyHandler := handlers.NewHistoryHandler(db, cfg)
	vetoHandler := handlers.NewVetoHandler(db, cfg)
	recommendHandler := handlers.NewRecommendHandler(db, cfg)
	importHandler := handlers.NewImportHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Members
	mux.HandleFunc("POST /members", middleware.WithLogging(memberHandler.AddMember))
	mux.HandleFunc("GET /members", middleware.WithLogging(memberHandler.ListMembers))

	// Book pool
	mux.HandleFunc("POST /books", middleware.WithLogging(bookHandler.AddBook))
	mux.HandleFunc("GET /books", middleware.WithLogging(bookHandler.ListBooks))
	mux.HandleFunc("PATCH /books/{id}/genre", middleware.WithLogging(bookHandler.UpdateGenre))

	// Genres
	mux.HandleFunc("GET /genres", middleware.WithLogging(bookHandler.ListGenres))
	mux.HandleFunc("GET /genres/suggest", middleware.WithLogging(bookHandler.SuggestGenre))

	// Reading history and rounds
	mux.HandleFunc("GET /history", middleware.WithLogging(historyHandler.ListHistory))
	mux.HandleFunc("POST /history", middleware.WithLogging(historyHandler.MarkRead))
	mux.HandleFunc("GET /rounds/current", middleware.WithLogging(historyHandler.GetCurrentRound))

	// Vetoes
	mux.HandleFunc("PUT /vetoes", middleware.WithLogging(vetoHandler.SetVeto))
	mux.HandleFunc("GET /vetoes", middleware.WithLogging(vetoHandler.ListVetoes))

	// Recommendations
	mux.HandleFunc("GET /recommendations", middleware.WithLogging(recommendHandler.GetRecommendations))

	// Bulk import
	mux.HandleFunc("POST /import/books", middleware.WithLogging(importHandler.ImportBooks))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("next-chapter API v1"))
	})

	return mux
}
