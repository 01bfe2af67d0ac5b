// internal/data/models.go
package data

import (
	"database/sql"
	"errors"
)

// Models is a top-level container that groups all database model types together.
// It is passed around the application via applicationDependencies so every handler
// has access to the database without importing sql directly.
type Models struct {
	Books BookModel // Handles all database operations for the books table
}

// NewModels constructs a Models value wired up to the given database connection pool.
// Call this once during application startup and store the result in applicationDependencies.
func NewModels(db *sql.DB) Models {
	return Models{
		Books: BookModel{DB: db},
	}
}

// ErrRecordNotFound is returned when a query finds no matching row.
var ErrRecordNotFound = errors.New("record not found")

// Filters holds pagination parameters extracted from URL query strings.
// PageSize is expected to be clamped by the caller before the query runs.
type Filters struct {
	Page     int // Current page number (1-indexed)
	PageSize int // Number of records per page
}

// limit returns the SQL LIMIT value derived from PageSize.
func (f Filters) limit() int { return f.PageSize }

// offset returns the SQL OFFSET value derived from Page and PageSize.
func (f Filters) offset() int { return (f.Page - 1) * f.PageSize }

// BookModel wraps a *sql.DB connection and provides methods for
// creating, reading, updating, and deleting book records.
type BookModel struct {
	DB *sql.DB // Shared database connection pool
}

// EnsureSchema creates the books table if it does not already exist.
// It is called once at startup, mirroring the original table bootstrap.
func (m BookModel) EnsureSchema() error {
	query := `
        CREATE TABLE IF NOT EXISTS books (
            id bigserial PRIMARY KEY,
            title text NOT NULL,
            pages integer NOT NULL,
            created_at date NOT NULL
        )`

	_, err := m.DB.Exec(query)
	return err
}

// Insert adds a new book record to the database.
// After a successful insert, the database-assigned id is written back into
// the book struct. The caller is responsible for setting CreatedAt.
func (m BookModel) Insert(book *Book) error {
	query := `
        INSERT INTO books (title, pages, created_at)
        VALUES ($1, $2, $3)
        RETURNING id`

	// Run the INSERT and scan the auto-generated id back into the struct.
	return m.DB.QueryRow(query, book.Title, book.Pages, book.CreatedAt).Scan(&book.ID)
}

// Get retrieves a single book by its primary key.
// Returns ErrRecordNotFound if no book with the given id exists.
func (m BookModel) Get(id int64) (*Book, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
        SELECT id, title, pages, created_at
        FROM books
        WHERE id = $1`

	var book Book
	err := m.DB.QueryRow(query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Pages,
		&book.CreatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &book, nil
}

// GetAll retrieves one page of books ordered by id.
func (m BookModel) GetAll(filters Filters) ([]*Book, error) {
	query := `
        SELECT id, title, pages, created_at
        FROM books
        ORDER BY id ASC
        LIMIT $1 OFFSET $2`

	// Execute the SELECT and get a result set (rows).
	rows, err := m.DB.Query(query, filters.limit(), filters.offset())
	if err != nil {
		return nil, err
	}
	// Always close the result set when we are done to free the database connection.
	defer rows.Close()

	books := []*Book{}

	// Iterate over each row and scan the columns into a Book struct.
	for rows.Next() {
		var book Book
		err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Pages,
			&book.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		books = append(books, &book)
	}

	// Check for any error that occurred while iterating the rows.
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return books, nil
}

// Update saves the modified fields of book back to the database.
// Returns ErrRecordNotFound if no row matches book.ID.
func (m BookModel) Update(book *Book) error {
	query := `
        UPDATE books
        SET title = $1, pages = $2
        WHERE id = $3`

	// Exec returns a Result that tells us how many rows were affected.
	result, err := m.DB.Exec(query, book.Title, book.Pages, book.ID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	// If no rows were updated, the book didn't exist.
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// Delete removes the book with the given id from the database.
// Returns ErrRecordNotFound if no matching record exists.
func (m BookModel) Delete(id int64) error {
	// Guard against obviously bad IDs before touching the database.
	if id < 1 {
		return ErrRecordNotFound
	}

	query := `DELETE FROM books WHERE id = $1`

	result, err := m.DB.Exec(query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	// If no rows were deleted, the book didn't exist.
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
