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

func TestAddBook(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewBookHandler(conn, testutil.GetTestConfig())

	aliceID := testutil.CreateTestMember(t, conn, "Alice", 350, "Fantasy")

	req := testutil.MakeRequest("POST", "/books", models.AddBookRequest{
		Title:       "The Fifth Season",
		Author:      "N.K. Jemisin",
		Genre:       "Fantasy",
		PageCount:   512,
		SuggestedBy: &aliceID,
	}, nil)
	w := httptest.NewRecorder()
	handler.AddBook(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.AddBookResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.BookID == "" {
		t.Fatal("Expected a book ID")
	}

	books, err := loadBooks(conn)
	if err != nil {
		t.Fatalf("loadBooks failed: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("Expected 1 book, got %d", len(books))
	}
	if books[0].SuggestedByName == nil || *books[0].SuggestedByName != "Alice" {
		t.Errorf("Expected suggester name Alice, got %v", books[0].SuggestedByName)
	}
}

func TestAddBookHouseSuggestion(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewBookHandler(conn, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.AddBook(w, testutil.MakeRequest("POST", "/books", models.AddBookRequest{
		Title:     "Gone Girl",
		Author:    "Gillian Flynn",
		Genre:     "Mystery",
		PageCount: 432,
	}, nil))

	testutil.AssertStatus(t, w, http.StatusCreated)

	books, _ := loadBooks(conn)
	if books[0].SuggestedBy != nil {
		t.Error("Expected nil suggester for house suggestion")
	}
}

func TestAddBookValidation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewBookHandler(conn, testutil.GetTestConfig())

	unknown := "not-a-member"
	tests := []struct {
		name string
		req  models.AddBookRequest
	}{
		{"missing title", models.AddBookRequest{Author: "A", Genre: "Fantasy", PageCount: 300}},
		{"missing author", models.AddBookRequest{Title: "T", Genre: "Fantasy", PageCount: 300}},
		{"missing genre", models.AddBookRequest{Title: "T", Author: "A", PageCount: 300}},
		{"zero pages", models.AddBookRequest{Title: "T", Author: "A", Genre: "Fantasy"}},
		{"negative pages", models.AddBookRequest{Title: "T", Author: "A", Genre: "Fantasy", PageCount: -1}},
		{"unknown suggester", models.AddBookRequest{Title: "T", Author: "A", Genre: "Fantasy", PageCount: 300, SuggestedBy: &unknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.AddBook(w, testutil.MakeRequest("POST", "/books", tt.req, nil))
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestUpdateGenre(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewBookHandler(conn, testutil.GetTestConfig())

	bookID := testutil.AddTestBook(t, conn, "Imported Book", models.GenreUnspecified, 300, "")

	req := testutil.MakeRequest("PATCH", "/books/"+bookID+"/genre", models.UpdateGenreRequest{
		Genre: "Fantasy",
	}, nil)
	req.SetPathValue("id", bookID)
	w := httptest.NewRecorder()
	handler.UpdateGenre(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	books, _ := loadBooks(conn)
	if books[0].Genre != "Fantasy" {
		t.Errorf("Expected genre updated to Fantasy, got %q", books[0].Genre)
	}
}

func TestUpdateGenreNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewBookHandler(conn, testutil.GetTestConfig())

	req := testutil.MakeRequest("PATCH", "/books/missing/genre", models.UpdateGenreRequest{
		Genre: "Fantasy",
	}, nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()
	handler.UpdateGenre(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestListGenres(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewBookHandler(conn, testutil.GetTestConfig())

	testutil.AddTestBook(t, conn, "B1", "Mystery", 300, "")
	testutil.AddTestBook(t, conn, "B2", "Fantasy", 300, "")
	testutil.AddTestBook(t, conn, "B3", "Mystery", 300, "")

	w := httptest.NewRecorder()
	handler.ListGenres(w, testutil.MakeRequest("GET", "/genres", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var genres []string
	testutil.AssertJSON(t, w, &genres)
	if len(genres) != 2 || genres[0] != "Fantasy" || genres[1] != "Mystery" {
		t.Errorf("Expected sorted distinct genres [Fantasy Mystery], got %v", genres)
	}
}

func TestSuggestGenre(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewBookHandler(conn, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.SuggestGenre(w, testutil.MakeRequest("GET", "/genres/suggest?title=The+Dragon+Throne", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.GenreSuggestionResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Genre != "Fantasy" {
		t.Errorf("Expected Fantasy suggestion, got %q", resp.Genre)
	}
}

func TestSuggestGenreRequiresTitle(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	handler := NewBookHandler(conn, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.SuggestGenre(w, testutil.MakeRequest("GET", "/genres/suggest", nil, nil))

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
