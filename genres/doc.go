// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package genres suggests genres for books that arrive without one.

Bulk imports rarely carry genre columns, so Suggest guesses from keyword
hits in the title and author, falling back to models.GenreUnspecified.
Suggestions are hints for a human to confirm, not authoritative tags;
the PATCH /books/{id}/genre endpoint is the confirmation step.
*/
package genres
