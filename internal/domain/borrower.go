// Package domain provides definitions of all entities and the circulation rules.
package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-petr/pet-library/pkg/errorspkg"
)

var (
	// ErrBorrowerNotFound indicates that the borrower is not found.
	ErrBorrowerNotFound = errorspkg.New(errorspkg.KindNotFound, "borrower does not exist")
	// ErrDuplicateIdentity indicates that a borrower with the given identity number already exists.
	ErrDuplicateIdentity = errorspkg.New(errorspkg.KindConflict, "a borrower with this identity number already exists")
	// ErrNameRequired indicates a blank borrower name.
	ErrNameRequired = errorspkg.New(errorspkg.KindValidation, "name is required")
	// ErrIdentityRequired indicates a blank identity number.
	ErrIdentityRequired = errorspkg.New(errorspkg.KindValidation, "identity number is required")
	// ErrAddressRequired indicates a blank address.
	ErrAddressRequired = errorspkg.New(errorspkg.KindValidation, "address is required")
	// ErrInvalidIdentity indicates a malformed identity number.
	ErrInvalidIdentity = errorspkg.New(errorspkg.KindValidation, "identity number must be in format XXX-XX-XXXX")
	// ErrCardIDRequired indicates a blank card id.
	ErrCardIDRequired = errorspkg.New(errorspkg.KindValidation, "card id is required")
)

// CardIDPrefix starts every card id.
const CardIDPrefix = "ID"

// FormatCardID returns the card id with the given sequence number, e.g. ID000042.
func FormatCardID(n int) string {
	return fmt.Sprintf("%s%06d", CardIDPrefix, n)
}

// ParseCardID returns the sequence number of a well-formed card id.
func ParseCardID(id string) (int, bool) {
	if !strings.HasPrefix(id, CardIDPrefix) {
		return 0, false
	}

	n, err := strconv.Atoi(id[len(CardIDPrefix):])
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}

// NextCardID returns the card id following the highest assigned sequence number.
func NextCardID(maxAssigned int) string {
	return FormatCardID(maxAssigned + 1)
}

// Borrower holds library card holder data.
type Borrower struct {
	CardID         string `json:"card_id"`
	IdentityNumber string `json:"identity_number"` // digits only
	Name           string `json:"name"`
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	Email          string `json:"email,omitempty"`
	Address        string `json:"address"`
	Phone          string `json:"phone,omitempty"`
}

// CreateBorrowerParams is the input data to register a borrower.
type CreateBorrowerParams struct {
	IdentityNumber string `json:"identity_number"`
	Name           string `json:"name"`
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	Email          string `json:"email,omitempty"`
	Address        string `json:"address"`
	Phone          string `json:"phone,omitempty"`
}
