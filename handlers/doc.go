// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP API.

# Handlers

  - MemberHandler: register and list club members
  - BookHandler: pool management, genre retagging, genre queries
  - HistoryHandler: record picks, list history, current round
  - VetoHandler: per-round genre vetoes (one per member, latest wins)
  - RecommendHandler: run the recommendation engine over a snapshot
  - ImportHandler: CSV bulk import with skip-and-continue

Each handler holds a *sql.DB and the parsed config, injected by the
router. Handlers query the database directly; the shared snapshot
helpers in snapshot.go are the single place the engine's inputs are
read, so a recommendation request sees one consistent view.

# Error Handling

Validation failures return 400, missing records 404, duplicate picks
409. Database failures log the cause and return a generic 500 so
internals stay out of responses. "No eligible candidates" is a 200 with
an empty list, never an error.
*/
package handlers
