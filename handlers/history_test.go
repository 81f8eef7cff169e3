// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/next-chapter/models"
	"github.com/danielhkuo/next-chapter/testutil"
)

func TestCurrentRoundNoHistory(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewHistoryHandler(conn, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.GetCurrentRound(w, testutil.MakeRequest("GET", "/rounds/current", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CurrentRoundResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.RoundNumber != 1 {
		t.Errorf("Expected round 1 with no history, got %d", resp.RoundNumber)
	}
}

func TestCurrentRoundAdvances(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewHistoryHandler(conn, testutil.GetTestConfig())

	b1 := testutil.AddTestBook(t, conn, "Round 3 Book", "Fantasy", 300, "")
	testutil.MarkTestRead(t, conn, b1, 3)

	w := httptest.NewRecorder()
	handler.GetCurrentRound(w, testutil.MakeRequest("GET", "/rounds/current", nil, nil))

	var resp models.CurrentRoundResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.RoundNumber != 4 {
		t.Errorf("Expected round 4 after a round-3 pick, got %d", resp.RoundNumber)
	}
}

func TestMarkReadDefaultsToCurrentRound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewHistoryHandler(conn, testutil.GetTestConfig())

	b1 := testutil.AddTestBook(t, conn, "First Pick", "Fantasy", 300, "")
	b2 := testutil.AddTestBook(t, conn, "Second Pick", "Mystery", 300, "")
	testutil.MarkTestRead(t, conn, b1, 1)

	w := httptest.NewRecorder()
	handler.MarkRead(w, testutil.MakeRequest("POST", "/history", models.MarkReadRequest{
		BookID: b2,
	}, nil))

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.MarkReadResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.RoundNumber != 2 {
		t.Errorf("Expected pick recorded in round 2, got %d", resp.RoundNumber)
	}
}

func TestMarkReadUnknownBook(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewHistoryHandler(conn, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.MarkRead(w, testutil.MakeRequest("POST", "/history", models.MarkReadRequest{
		BookID: "missing",
	}, nil))

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestMarkReadDuplicateConflict(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewHistoryHandler(conn, testutil.GetTestConfig())

	b1 := testutil.AddTestBook(t, conn, "Picked Twice", "Fantasy", 300, "")
	testutil.MarkTestRead(t, conn, b1, 1)

	w := httptest.NewRecorder()
	handler.MarkRead(w, testutil.MakeRequest("POST", "/history", models.MarkReadRequest{
		BookID: b1,
	}, nil))

	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestListHistoryNewestFirst(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewHistoryHandler(conn, testutil.GetTestConfig())

	b1 := testutil.AddTestBook(t, conn, "Old Pick", "Fantasy", 300, "")
	b2 := testutil.AddTestBook(t, conn, "New Pick", "Mystery", 300, "")
	testutil.MarkTestRead(t, conn, b1, 1)
	testutil.MarkTestRead(t, conn, b2, 2)

	w := httptest.NewRecorder()
	handler.ListHistory(w, testutil.MakeRequest("GET", "/history", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var history []models.HistoryEntry
	testutil.AssertJSON(t, w, &history)
	if len(history) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(history))
	}
	if history[0].Title != "New Pick" || history[0].RoundNumber != 2 {
		t.Errorf("Expected newest entry first, got %+v", history[0])
	}
	if history[1].Genre != "Fantasy" {
		t.Errorf("Expected book fields joined in, got %+v", history[1])
	}
}
