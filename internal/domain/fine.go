package domain

import (
	"fmt"
	"time"

	"github.com/go-petr/pet-library/pkg/errorspkg"
	"github.com/shopspring/decimal"
)

// FineRatePerDay is the fine charged for each day a book is late.
var FineRatePerDay = decimal.RequireFromString("0.25")

var (
	// ErrUnpaidFines indicates that the borrower owes a positive amount.
	ErrUnpaidFines = errorspkg.New(errorspkg.KindConflict, "borrower has unpaid fines")
	// ErrOpenLoansWithFines indicates that an unpaid fine belongs to a book that is still out.
	ErrOpenLoansWithFines = errorspkg.New(errorspkg.KindConflict,
		"cannot pay fines: borrower has unreturned books with outstanding fines")
	// ErrNothingToSettle indicates that the borrower has no unpaid fines.
	ErrNothingToSettle = errorspkg.New(errorspkg.KindNotFound, "no unpaid fines found for this borrower")
)

// UnpaidFinesError is returned by checkout when the borrower owes Amount.
type UnpaidFinesError struct {
	Amount decimal.Decimal
}

func (e *UnpaidFinesError) Error() string {
	return fmt.Sprintf("borrower has unpaid fines: $%s", e.Amount.StringFixed(2))
}

// Unwrap makes errors.Is(err, ErrUnpaidFines) hold.
func (e *UnpaidFinesError) Unwrap() error {
	return ErrUnpaidFines
}

// DaysLate returns the whole days between due and the return date, or today
// if the book has not been returned. It is never negative.
func DaysLate(due time.Time, returned *time.Time, today time.Time) int {
	cmp := today
	if returned != nil {
		cmp = *returned
	}

	days := int(Date(cmp).Sub(Date(due)).Hours() / 24)
	if days < 0 {
		return 0
	}

	return days
}

// FineAmount returns the fine for the given number of late days.
func FineAmount(daysLate int) decimal.Decimal {
	return FineRatePerDay.Mul(decimal.NewFromInt(int64(daysLate)))
}

// Fine is the fine recorded for a late loan.
type Fine struct {
	LoanID int64           `json:"loan_id"`
	Amount decimal.Decimal `json:"fine_amt"`
	Paid   bool            `json:"paid"`
}

// FineDetail is a fine joined with its loan and book.
type FineDetail struct {
	Fine
	ISBN    string     `json:"isbn"`
	Title   string     `json:"title"`
	DateOut time.Time  `json:"date_out"`
	DateDue time.Time  `json:"date_due"`
	DateIn  *time.Time `json:"date_in,omitempty"`
}

// BorrowerFines lists the fines of one borrower.
//
// Total sums every listed fine, so it equals UnpaidTotal when paid fines are not listed.
type BorrowerFines struct {
	CardID      string          `json:"card_id"`
	Total       decimal.Decimal `json:"total"`
	UnpaidTotal decimal.Decimal `json:"unpaid_total"`
	Fines       []FineDetail    `json:"fines"`
}

// UnpaidSummary aggregates the unpaid fines of one borrower.
type UnpaidSummary struct {
	CardID      string          `json:"card_id" db:"card_id"`
	Name        string          `json:"name" db:"bname"`
	Email       string          `json:"email,omitempty" db:"email"`
	Phone       string          `json:"phone,omitempty" db:"phone"`
	TotalUnpaid decimal.Decimal `json:"total_unpaid" db:"total_unpaid"`
	Count       int             `json:"count" db:"fine_count"`
}

// ReconcileStats counts what a reconciliation run did.
type ReconcileStats struct {
	Processed   int `json:"processed"`
	New         int `json:"new"`
	Updated     int `json:"updated"`
	SkippedPaid int `json:"skipped_paid"`
}

// LateLoan is a loan found late by reconciliation, with its current fine if any.
type LateLoan struct {
	LoanID  int64
	DateDue time.Time
	DateIn  *time.Time
	Fine    *Fine
}
