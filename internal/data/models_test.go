package data_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sample-apps/books-api/internal/data"

	_ "github.com/mattn/go-sqlite3"
)

// testSchema is the SQLite equivalent of the production books table.
// AUTOINCREMENT keeps ids monotonic even after deletes.
const testSchema = `
	CREATE TABLE books (
		id integer PRIMARY KEY AUTOINCREMENT,
		title text NOT NULL,
		pages integer NOT NULL,
		created_at date NOT NULL
	);
`

// newTestModels opens an in-memory SQLite database, applies the schema, and
// returns a Models value backed by it. The pool is capped at a single
// connection because each in-memory connection gets its own database.
func newTestModels(t *testing.T) data.Models {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	return data.NewModels(db)
}

func insertBook(t *testing.T, models data.Models, title string, pages int) *data.Book {
	t.Helper()

	book := &data.Book{Title: title, Pages: pages, CreatedAt: data.Today()}
	require.NoError(t, models.Books.Insert(book))
	return book
}

func TestInsertAssignsMonotonicIDs(t *testing.T) {
	models := newTestModels(t)

	first := insertBook(t, models, "Dune", 412)
	second := insertBook(t, models, "Dune Messiah", 256)

	require.Greater(t, first.ID, int64(0))
	require.Greater(t, second.ID, first.ID)
}

func TestGetRoundTrip(t *testing.T) {
	models := newTestModels(t)

	created := insertBook(t, models, "Dune", 412)

	got, err := models.Books.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "Dune", got.Title)
	require.Equal(t, 412, got.Pages)
	require.True(t, got.CreatedAt.Equal(data.Today()), "created_at should be today's date")
}

func TestGetNotFound(t *testing.T) {
	models := newTestModels(t)

	_, err := models.Books.Get(999)
	require.True(t, errors.Is(err, data.ErrRecordNotFound))

	// IDs below 1 short-circuit without touching the database.
	_, err = models.Books.Get(0)
	require.True(t, errors.Is(err, data.ErrRecordNotFound))
}

func TestGetAllPagination(t *testing.T) {
	models := newTestModels(t)

	titles := []string{"A", "B", "C", "D", "E"}
	for _, title := range titles {
		insertBook(t, models, title, 100)
	}

	// Second page of two holds the third and fourth records.
	books, err := models.Books.GetAll(data.Filters{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, books, 2)
	require.Equal(t, "C", books[0].Title)
	require.Equal(t, "D", books[1].Title)

	// A page size of zero yields an empty (non-nil) slice.
	books, err = models.Books.GetAll(data.Filters{Page: 1, PageSize: 0})
	require.NoError(t, err)
	require.NotNil(t, books)
	require.Empty(t, books)
}

func TestUpdate(t *testing.T) {
	models := newTestModels(t)

	book := insertBook(t, models, "Dune", 412)
	book.Title = "Dune Messiah"
	book.Pages = 256

	require.NoError(t, models.Books.Update(book))

	got, err := models.Books.Get(book.ID)
	require.NoError(t, err)
	require.Equal(t, "Dune Messiah", got.Title)
	require.Equal(t, 256, got.Pages)
}

func TestUpdateNotFound(t *testing.T) {
	models := newTestModels(t)

	err := models.Books.Update(&data.Book{ID: 999, Title: "ghost"})
	require.True(t, errors.Is(err, data.ErrRecordNotFound))
}

func TestDelete(t *testing.T) {
	models := newTestModels(t)

	book := insertBook(t, models, "Dune", 412)
	require.NoError(t, models.Books.Delete(book.ID))

	_, err := models.Books.Get(book.ID)
	require.True(t, errors.Is(err, data.ErrRecordNotFound))
}

func TestDeleteNotFound(t *testing.T) {
	models := newTestModels(t)

	err := models.Books.Delete(999)
	require.True(t, errors.Is(err, data.ErrRecordNotFound))
}
