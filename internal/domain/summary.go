package domain

import "github.com/shopspring/decimal"

// BorrowerOverview is everything the circulation desk shows for one borrower.
type BorrowerOverview struct {
	Borrower    Borrower      `json:"borrower"`
	OpenLoans   []LoanDetail  `json:"open_loans"`
	Fines       BorrowerFines `json:"fines"`
	CanCheckout bool          `json:"can_checkout"`
}

// SystemSummary holds the library wide circulation counters.
type SystemSummary struct {
	OpenLoans          int             `json:"open_loans" db:"open_loans"`
	OverdueLoans       int             `json:"overdue_loans" db:"overdue_loans"`
	BorrowersWithFines int             `json:"borrowers_with_fines" db:"borrowers_with_fines"`
	UnpaidTotal        decimal.Decimal `json:"unpaid_total" db:"unpaid_total"`
	Borrowers          []UnpaidSummary `json:"borrowers"`
}
