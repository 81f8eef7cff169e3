// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Next Chapter API server.

Next Chapter helps a book club pick its next read: hard constraint
filters (already read, last two genres, per-round vetoes) followed by
weighted soft scoring over member preferences and reading history.

# Starting the Server

The server takes its configuration from environment variables (a .env
file is honored) or CLI flags:

	DATABASE_URL=club.db go run main.go

Or with flags:

	go run main.go -p 8080 -d club.db -t sqlite -demo

# Configuration

Required settings:

  - DATABASE_URL (-d): database location; a file path for sqlite or a
    connection string for postgres

Optional settings:

  - PORT (-p): server port (default: 8080)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - -demo: seed a sample club on startup

# Architecture

The server uses a handler-based architecture with dependency injection:

  - recommender: the pure filtering and scoring engine
  - handlers: HTTP request handlers (members, books, history, vetoes,
    recommendations, import)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - genres: keyword-based genre suggestion
  - importer: CSV bulk import parsing
  - db: Schema creation and demo seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
