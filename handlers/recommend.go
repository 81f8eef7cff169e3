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
	"github.com/danielhkuo/next-chapter/recommender"
)

type RecommendHandler struct {
	db      *sql.DB
	cfg     cliparse.Config
	weights recommender.Weights
}

func NewRecommendHandler(db *sql.DB, cfg cliparse.Config) *RecommendHandler {
	return &RecommendHandler{db: db, cfg: cfg, weights: recommender.DefaultWeights()}
}

// GetRecommendations handles GET /recommendations?top_n=N
// Reads one consistent snapshot, runs the engine, and returns the ranked
// shortlist. An empty list means no eligible candidates, not an error.
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	topN := recommender.DefaultTopN
	if raw := r.URL.Query().Get("top_n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "top_n must be a positive integer")
			return
		}
		topN = parsed
	}

	snap, err := loadSnapshot(h.db)
	if err != nil {
		slog.Error("failed to load snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	recs := recommender.Recommend(snap, h.weights, topN)

	slog.Info("recommendations computed",
		"round", snap.CurrentRound,
		"pool", len(snap.Books),
		"returned", len(recs),
	)

	middleware.JSONResponse(w, http.StatusOK, models.RecommendationsResponse{
		RoundNumber:     snap.CurrentRound,
		Recommendations: recs,
	})
}
