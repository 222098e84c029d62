package domain

import (
	"time"

	"github.com/go-petr/pet-library/pkg/errorspkg"
)

// Circulation rules.
const (
	MaxOpenLoans   = 3
	LoanPeriodDays = 14
)

var (
	// ErrLoanNotFound indicates that the loan is not found.
	ErrLoanNotFound = errorspkg.New(errorspkg.KindNotFound, "loan not found")
	// ErrLoanLimitReached indicates that the borrower already holds MaxOpenLoans open loans.
	ErrLoanLimitReached = errorspkg.New(errorspkg.KindConflict, "borrower already has maximum 3 active loans")
	// ErrCopyUnavailable indicates that the book is already on an open loan.
	ErrCopyUnavailable = errorspkg.New(errorspkg.KindConflict, "book is currently checked out")
	// ErrInvalidLoanID indicates a non-positive loan id.
	ErrInvalidLoanID = errorspkg.New(errorspkg.KindValidation, "loan id must be a positive integer")
)

// Date truncates t to its calendar day, keeping the calendar date of t's location.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DueDate returns the due date of a loan issued on dateOut.
func DueDate(dateOut time.Time) time.Time {
	return Date(dateOut).AddDate(0, 0, LoanPeriodDays)
}

// Loan is a single checkout of a book by a borrower.
type Loan struct {
	ID      int64      `json:"loan_id"`
	ISBN    string     `json:"isbn"`
	CardID  string     `json:"card_id"`
	DateOut time.Time  `json:"date_out"`
	DateDue time.Time  `json:"date_due"`
	DateIn  *time.Time `json:"date_in,omitempty"`
}

// IsOpen reports whether the book has not been returned yet.
func (l Loan) IsOpen() bool {
	return l.DateIn == nil
}

// LoanDetail is a loan joined with its book title and borrower name.
type LoanDetail struct {
	Loan
	Title        string `json:"title"`
	BorrowerName string `json:"borrower_name"`
}

// CreateLoanParams is the input data to persist a new loan.
type CreateLoanParams struct {
	ISBN    string
	CardID  string
	DateOut time.Time
	DateDue time.Time
}

// LoanReceipt is returned by a successful checkout.
type LoanReceipt struct {
	LoanID  int64     `json:"loan_id"`
	ISBN    string    `json:"isbn"`
	CardID  string    `json:"card_id"`
	DateDue time.Time `json:"date_due"`
}
