// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the API routes.

Uses Go 1.22+ method routing on the standard ServeMux. All routes except
the health check are wrapped with request logging.

# Routes

	GET    /health
	POST   /members              GET /members
	POST   /books                GET /books
	PATCH  /books/{id}/genre
	GET    /genres               GET /genres/suggest
	GET    /history              POST /history
	GET    /rounds/current
	PUT    /vetoes               GET /vetoes
	GET    /recommendations
	POST   /import/books
*/
package router
