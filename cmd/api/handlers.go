// cmd/api/handlers.go
// This file contains all HTTP request handlers for the books resource.
// Each handler is a method on *applicationDependencies so it has access
// to the logger and database models.
//
// Write-style endpoints (create/update/delete) accept their parameters
// either in the query string or as a JSON body: if the relevant query keys
// are present they win, otherwise the body is decoded.
package main

import (
	"errors"
	"net/http"

	"github.com/sample-apps/books-api/internal/data"
)

// rootHandler handles GET /.
// It responds with a plain liveness message so load balancers and humans
// can confirm the service is up.
func (app *applicationDependencies) rootHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{"message": "Sample books API is online"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// createBookHandler handles POST /books.
// It reads the new book's title and pages, assigns the current date as
// created_at, inserts the record, and responds with the success envelope.
// Title and pages are accepted as-is; there is no range validation.
func (app *applicationDependencies) createBookHandler(w http.ResponseWriter, r *http.Request) {
	app.logger.Debug("creating a new book")

	qs := r.URL.Query()

	var input data.CreateBookInput
	if qs.Has("title") || qs.Has("pages") {
		input.Title = app.readString(qs, "title", "")
		input.Pages = app.readInt(qs, "pages", 0)
	} else {
		err := app.readJSON(w, r, &input)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
	}

	// The server owns the id (database-assigned) and the creation date.
	book := &data.Book{
		Title:     input.Title,
		Pages:     input.Pages,
		CreatedAt: data.Today(),
	}

	err := app.models.Books.Insert(book)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeMessage(w, http.StatusOK, "success")
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showBookHandler handles GET /books/:id.
// A missing record is not an error: the result carries "book": null so the
// caller always receives a 200 envelope.
func (app *applicationDependencies) showBookHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	book, err := app.models.Books.Get(id)
	if err != nil && !errors.Is(err, data.ErrRecordNotFound) {
		app.serverErrorResponse(w, r, err)
		return
	}

	// book is nil when the record was not found, which JSON-encodes to null.
	err = app.writeResult(w, http.StatusOK, envelope{"book": book})
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listBooksHandler handles GET /books.
// It reads page_size (default 10) and page (default 1) from the query
// string and returns one page of books ordered by id. A page_size greater
// than 100 or below zero is clamped to 100.
func (app *applicationDependencies) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	app.logger.Debug("getting all the books")

	qs := r.URL.Query()

	pageSize := app.readInt(qs, "page_size", 10)
	page := app.readInt(qs, "page", 1)

	// Clamp out-of-range page sizes instead of rejecting the request.
	// Negative values also map to 100.
	if pageSize > 100 || pageSize < 0 {
		pageSize = 100
	}

	books, err := app.models.Books.GetAll(data.Filters{Page: page, PageSize: pageSize})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeResult(w, http.StatusOK, envelope{"books": books})
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// updateBookHandler handles PUT /books.
// It fetches the book by id, applies only the fields that were supplied
// (nil pointer means "leave as-is"), and persists the result. A missing id
// takes the generic failure path rather than a distinct not-found response.
func (app *applicationDependencies) updateBookHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	var input data.UpdateBookInput
	if qs.Has("id") {
		input.ID = int64(app.readInt(qs, "id", 0))
		if qs.Has("title") {
			title := qs.Get("title")
			input.Title = &title
		}
		if qs.Has("pages") {
			pages := app.readInt(qs, "pages", 0)
			input.Pages = &pages
		}
	} else {
		err := app.readJSON(w, r, &input)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
	}

	book, err := app.models.Books.Get(input.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// Apply only the fields that were actually provided.
	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.Pages != nil {
		book.Pages = *input.Pages
	}

	err = app.models.Books.Update(book)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeMessage(w, http.StatusOK, "success")
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// deleteBookHandler handles DELETE /books.
// Like update, a missing id is reported through the generic failure path.
func (app *applicationDependencies) deleteBookHandler(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	var input struct {
		ID int64 `json:"id"`
	}
	if qs.Has("id") {
		input.ID = int64(app.readInt(qs, "id", 0))
	} else {
		err := app.readJSON(w, r, &input)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
	}

	err := app.models.Books.Delete(input.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeMessage(w, http.StatusOK, "success")
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
