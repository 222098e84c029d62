// Package loanservice manages business logic layer of loans.
package loanservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/pkg/dbpkg"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by loan service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package loanservice
type Repo interface {
	Checkout(ctx context.Context, arg domain.CreateLoanParams) (domain.Loan, error)
	Checkin(ctx context.Context, ids []int64, dateIn time.Time) (int64, error)
	Get(ctx context.Context, id int64) (domain.Loan, error)
	GetDetail(ctx context.Context, id int64) (domain.LoanDetail, error)
	BorrowerExists(ctx context.Context, cardID string) (bool, error)
	CountOpen(ctx context.Context, cardID string) (int, error)
	IsCheckedOut(ctx context.Context, isbn string) (bool, error)
	GetOpenByISBN(ctx context.Context, isbn string) (domain.LoanDetail, error)
	ListOpen(ctx context.Context, cardID string) ([]domain.LoanDetail, error)
	SearchOpen(ctx context.Context, term string) ([]domain.LoanDetail, error)
}

// Service facilitates loan service layer logic.
type Service struct {
	repo    Repo
	timeout time.Duration
	now     func() time.Time
}

// New returns loan service struct to manage loan business logic.
//
// Every storage call is bounded by timeout.
func New(lr Repo, timeout time.Duration) *Service {
	return &Service{
		repo:    lr,
		timeout: timeout,
		now:     time.Now,
	}
}

// Checkout lends the book to the borrower for LoanPeriodDays starting today.
//
// It fails with ErrBorrowerNotFound, ErrLoanLimitReached, ErrCopyUnavailable or
// an UnpaidFinesError, checked in that order, and with ErrBookNotFound for an
// unknown isbn.
func (s *Service) Checkout(ctx context.Context, isbn, cardID string) (domain.LoanReceipt, error) {
	l := zerolog.Ctx(ctx)

	isbn, cardID = strings.TrimSpace(isbn), strings.TrimSpace(cardID)

	switch {
	case isbn == "":
		return domain.LoanReceipt{}, domain.ErrISBNRequired
	case cardID == "":
		return domain.LoanReceipt{}, domain.ErrCardIDRequired
	}

	today := domain.Date(s.now())

	arg := domain.CreateLoanParams{
		ISBN:    isbn,
		CardID:  cardID,
		DateOut: today,
		DateDue: domain.DueDate(today),
	}

	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	loan, err := s.repo.Checkout(ctx, arg)
	if err != nil {
		var unpaid *domain.UnpaidFinesError
		if errors.As(err, &unpaid) {
			l.Info().Str("card_id", cardID).Str("unpaid", unpaid.Amount.StringFixed(2)).Msg("checkout rejected")
		} else {
			l.Info().Err(err).Str("card_id", cardID).Str("isbn", isbn).Msg("checkout rejected")
		}

		return domain.LoanReceipt{}, err
	}

	l.Info().Int64("loan_id", loan.ID).Str("card_id", cardID).Str("isbn", isbn).Msg("book checked out")

	return domain.LoanReceipt{
		LoanID:  loan.ID,
		ISBN:    loan.ISBN,
		CardID:  loan.CardID,
		DateDue: loan.DateDue,
	}, nil
}

// Checkin closes the open loans among ids as of today and returns how many were closed.
//
// Unknown and already closed ids are skipped. An empty batch does not reach storage.
func (s *Service) Checkin(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.repo.Checkin(ctx, ids, domain.Date(s.now()))
	if err != nil {
		return 0, err
	}

	zerolog.Ctx(ctx).Info().Int64("closed", n).Int("requested", len(ids)).Msg("books checked in")

	return n, nil
}

// Loan returns the loan with the given id joined with its book and borrower.
func (s *Service) Loan(ctx context.Context, id int64) (domain.LoanDetail, error) {
	if id <= 0 {
		return domain.LoanDetail{}, domain.ErrInvalidLoanID
	}

	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.repo.GetDetail(ctx, id)
}

// IsCheckedIn reports whether the loan is closed.
func (s *Service) IsCheckedIn(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, domain.ErrInvalidLoanID
	}

	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	loan, err := s.repo.Get(ctx, id)
	if err != nil {
		return false, err
	}

	return !loan.IsOpen(), nil
}

// BorrowerExists reports whether the borrower with the given card id exists.
func (s *Service) BorrowerExists(ctx context.Context, cardID string) (bool, error) {
	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.repo.BorrowerExists(ctx, strings.TrimSpace(cardID))
}

// OpenLoanCount returns the number of open loans of the borrower.
func (s *Service) OpenLoanCount(ctx context.Context, cardID string) (int, error) {
	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.repo.CountOpen(ctx, strings.TrimSpace(cardID))
}

// IsAvailable reports whether the book has no open loan.
func (s *Service) IsAvailable(ctx context.Context, isbn string) (bool, error) {
	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.repo.IsCheckedOut(ctx, strings.TrimSpace(isbn))
	if err != nil {
		return false, err
	}

	return !out, nil
}

// OpenLoanByISBN returns the open loan of the book, ErrLoanNotFound if it is available.
func (s *Service) OpenLoanByISBN(ctx context.Context, isbn string) (domain.LoanDetail, error) {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return domain.LoanDetail{}, domain.ErrISBNRequired
	}

	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.repo.GetOpenByISBN(ctx, isbn)
}

// ListOpen returns the open loans of the borrower, earliest due first.
func (s *Service) ListOpen(ctx context.Context, cardID string) ([]domain.LoanDetail, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return nil, domain.ErrCardIDRequired
	}

	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.repo.ListOpen(ctx, cardID)
}

// SearchOpen returns the open loans matching term by isbn, card id or borrower name,
// oldest checkout first.
func (s *Service) SearchOpen(ctx context.Context, term string) ([]domain.LoanDetail, error) {
	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.repo.SearchOpen(ctx, strings.TrimSpace(term))
}
