// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package importer parses bulk book uploads from CSV spreadsheets.

The club's pool started life in a shared spreadsheet, so the importer is
deliberately forgiving: rows are processed independently with a
skip-and-continue policy, and sparse rows get defaults (300 pages,
"Unknown Author", a keyword-guessed genre). Only an unreadable header
aborts the batch.

The package only parses; inserting records and resolving suggester
names to member IDs happens in the import handler.
*/
package importer
