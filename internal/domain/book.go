package domain

import "github.com/go-petr/pet-library/pkg/errorspkg"

var (
	// ErrBookNotFound indicates that the catalog entry is not found.
	ErrBookNotFound = errorspkg.New(errorspkg.KindNotFound, "book not found")
	// ErrISBNRequired indicates a blank catalog code.
	ErrISBNRequired = errorspkg.New(errorspkg.KindValidation, "isbn is required")
)

// ISBNLength is the fixed length of a catalog code.
const ISBNLength = 10

// Book is a read-only catalog entry.
type Book struct {
	ISBN    string   `json:"isbn"`
	Title   string   `json:"title"`
	Authors []string `json:"authors,omitempty"`
}
