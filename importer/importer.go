// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danielhkuo/next-chapter/genres"
)

// Defaults applied to sparse rows, matching the club's spreadsheet where
// page counts and genres were mostly blank.
const (
	DefaultPageCount = 300
	DefaultAuthor    = "Unknown Author"
)

// Record is one parsed spreadsheet row, ready for insertion.
type Record struct {
	Title       string
	Author      string
	Genre       string
	PageCount   int
	SuggestedBy string // member name; empty means house suggestion
}

// Result carries every row that parsed cleanly plus a message per row
// that did not. A batch never fails as a whole: bad rows are skipped.
type Result struct {
	Records []Record
	Errors  []string
}

// Skipped returns how many rows were rejected.
func (r Result) Skipped() int { return len(r.Errors) }

// ParseCSV reads a book spreadsheet exported as CSV. The header row must
// name at least a "title" column; "author", "genre", "page_count", and
// "suggested_by" are optional and matched case-insensitively in any
// order. Rows with a missing title or an unusable page count are
// reported in Result.Errors and skipped.
func ParseCSV(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["title"]; !ok {
		return Result{}, fmt.Errorf("CSV header must include a title column")
	}

	var result Result
	line := 1
	for {
		row, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}

		record, err := parseRow(row, cols)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", line, err))
			continue
		}
		result.Records = append(result.Records, record)
	}

	return result, nil
}

func parseRow(row []string, cols map[string]int) (Record, error) {
	record := Record{
		Title:       field(row, cols, "title"),
		Author:      field(row, cols, "author"),
		Genre:       field(row, cols, "genre"),
		SuggestedBy: field(row, cols, "suggested_by"),
		PageCount:   DefaultPageCount,
	}

	if record.Title == "" {
		return Record{}, fmt.Errorf("missing title")
	}
	if record.Author == "" {
		record.Author = DefaultAuthor
	}
	if record.Genre == "" {
		// Guess from keywords; stays Unspecified when nothing matches
		record.Genre = genres.Suggest(record.Title, record.Author)
	}

	if raw := field(row, cols, "page_count"); raw != "" {
		pages, err := strconv.Atoi(raw)
		if err != nil {
			return Record{}, fmt.Errorf("invalid page count %q", raw)
		}
		if pages < 1 {
			return Record{}, fmt.Errorf("page count must be positive, got %d", pages)
		}
		record.PageCount = pages
	}

	return record, nil
}

func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
