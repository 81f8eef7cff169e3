// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/next-chapter/cliparse"
	"github.com/danielhkuo/next-chapter/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each test gets its own database; closing it discards
// everything.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A second pool connection would see a different empty :memory: DB
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8080,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
	}
}

// CreateTestMember adds a member with liked genres and returns the
// member ID
func CreateTestMember(t *testing.T, conn *sql.DB, name string, preferredLength int, likedGenres ...string) string {
	t.Helper()

	memberID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO member (id, name, preferred_length)
		VALUES ($1, $2, $3)
	`, memberID, name, preferredLength)
	if err != nil {
		t.Fatalf("Failed to create test member: %v", err)
	}

	for _, genre := range likedGenres {
		_, err := conn.Exec(`
			INSERT INTO member_genre (member_id, genre)
			VALUES ($1, $2)
		`, memberID, genre)
		if err != nil {
			t.Fatalf("Failed to create test member genre: %v", err)
		}
	}

	return memberID
}

// AddTestBook adds a book to the pool and returns the book ID.
// suggestedBy may be empty for a house suggestion.
func AddTestBook(t *testing.T, conn *sql.DB, title, genre string, pageCount int, suggestedBy string) string {
	t.Helper()

	bookID := uuid.NewString()

	var suggester *string
	if suggestedBy != "" {
		suggester = &suggestedBy
	}

	_, err := conn.Exec(`
		INSERT INTO book (id, title, author, genre, page_count, suggested_by)
		VALUES ($1, $2, 'Test Author', $3, $4, $5)
	`, bookID, title, genre, pageCount, suggester)
	if err != nil {
		t.Fatalf("Failed to create test book: %v", err)
	}

	return bookID
}

// MarkTestRead records a (book, round) pick in reading history
func MarkTestRead(t *testing.T, conn *sql.DB, bookID string, round int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO reading_history (id, book_id, round_number)
		VALUES ($1, $2, $3)
	`, uuid.NewString(), bookID, round)
	if err != nil {
		t.Fatalf("Failed to create test history entry: %v", err)
	}
}

// SetTestVeto records a genre veto for a member and round
func SetTestVeto(t *testing.T, conn *sql.DB, memberID, genre string, round int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO veto (member_id, genre, round_number)
		VALUES ($1, $2, $3)
	`, memberID, genre, round)
	if err != nil {
		t.Fatalf("Failed to create test veto: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
