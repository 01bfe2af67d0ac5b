// Package data provides the data models and database interaction logic
// for the books API.
package data

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Book represents a single book record stored in the database.
// It maps directly to a row in the "books" table.
type Book struct {
	ID        int64  `json:"id"`         // Unique identifier assigned by the database
	Title     string `json:"title"`      // Title of the book
	Pages     int    `json:"pages"`      // Number of pages
	CreatedAt Date   `json:"created_at"` // Calendar date the record was created; immutable
}

// CreateBookInput holds the fields a client supplies when creating a new book.
// Any string and any integer are accepted; the server assigns the id and
// creation date itself.
type CreateBookInput struct {
	Title string `json:"title"`
	Pages int    `json:"pages"`
}

// UpdateBookInput holds the fields a client may supply when partially updating
// a book. Title and Pages are pointers so we can distinguish between
// "not provided" (nil) and "intentionally set to zero/empty". Only non-nil
// fields are applied.
type UpdateBookInput struct {
	ID    int64   `json:"id"`
	Title *string `json:"title"`
	Pages *int    `json:"pages"`
}

// Date is a calendar date (no time-of-day component) that serializes to JSON
// as "YYYY-MM-DD". The created_at column is a DATE, so the time portion is
// dropped at the API boundary.
type Date struct {
	time.Time
}

// Today returns the current calendar date.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON encodes the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// UnmarshalJSON decodes a quoted "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(data))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Scan implements sql.Scanner so a DATE column can be read into a Date.
// Drivers return DATE columns either as time.Time or as text.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("unsupported type %T for Date", value)
	}
}

func (d *Date) parse(s string) error {
	if len(s) > 10 {
		s = s[:10] // strip any time-of-day suffix
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Value implements driver.Valuer so a Date can be written to a DATE column.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Equal reports whether two dates fall on the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.Format("2006-01-02") == other.Format("2006-01-02")
}
