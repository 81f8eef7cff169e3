// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

# Request Logging

WithLogging wraps a handler with slog start/complete entries including
method, path, and duration.

# JSON Helpers

  - JSONResponse: write a value as JSON with a status code
  - ErrorResponse: write the standard {error, message} envelope
  - ParseJSONBody: decode a request body into a struct

# CORS

CORS reflects the request origin and answers preflight requests, so a
browser frontend on another port can talk to the API during development.
*/
package middleware
