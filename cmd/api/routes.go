// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router wrapped
// in the recoverPanic and rateLimit middlewares.
//
// Middleware chain (outermost → innermost):
//
//	recoverPanic → rateLimit → router
//
// Current endpoints:
//
//	GET    /           – liveness message
//	POST   /books      – create a new book
//	GET    /books/:id  – retrieve a single book by ID (null if absent)
//	GET    /books      – list books (paginated)
//	PUT    /books      – partially update an existing book
//	DELETE /books      – delete a book by ID
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Override the default httprouter error handlers to return JSON responses.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	// Liveness
	router.HandlerFunc(http.MethodGet, "/", app.rootHandler)

	// Book CRUD routes. Update and delete identify the record via an "id"
	// parameter rather than the URL path, matching the public contract.
	router.HandlerFunc(http.MethodPost, "/books", app.createBookHandler)
	router.HandlerFunc(http.MethodGet, "/books/:id", app.showBookHandler)
	router.HandlerFunc(http.MethodGet, "/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodPut, "/books", app.updateBookHandler)
	router.HandlerFunc(http.MethodDelete, "/books", app.deleteBookHandler)

	// Wrap with middleware: recoverPanic is outermost so it catches panics
	// from rateLimit and router alike.
	return app.recoverPanic(app.rateLimit(router))
}
