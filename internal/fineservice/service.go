// Package fineservice manages business logic layer of fines.
package fineservice

import (
	"context"
	"strings"
	"time"

	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/pkg/dbpkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by fine service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package fineservice
type Repo interface {
	Reconcile(ctx context.Context, today time.Time) (domain.ReconcileStats, error)
	ListByBorrower(ctx context.Context, cardID string, includePaid bool) ([]domain.FineDetail, error)
	UnpaidSummary(ctx context.Context) ([]domain.UnpaidSummary, error)
	Settle(ctx context.Context, cardID string) (decimal.Decimal, error)
	HasUnpaid(ctx context.Context, cardID string) (bool, error)
	UnpaidTotal(ctx context.Context, cardID string) (decimal.Decimal, error)
}

// Service facilitates fine service layer logic.
type Service struct {
	repo    Repo
	timeout time.Duration
	now     func() time.Time
}

// New returns fine service struct to manage fine business logic.
func New(fr Repo, timeout time.Duration) *Service {
	return &Service{
		repo:    fr,
		timeout: timeout,
		now:     time.Now,
	}
}

// Reconcile brings the recorded fines of every late loan up to date as of today.
func (s *Service) Reconcile(ctx context.Context) (domain.ReconcileStats, error) {
	l := zerolog.Ctx(ctx)

	today := domain.Date(s.now())

	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	stats, err := s.repo.Reconcile(ctx, today)
	if err != nil {
		return domain.ReconcileStats{}, err
	}

	l.Info().
		Time("today", today).
		Int("processed", stats.Processed).
		Int("new", stats.New).
		Int("updated", stats.Updated).
		Int("skipped_paid", stats.SkippedPaid).
		Msg("fines reconciled")

	return stats, nil
}

// BorrowerFines lists the borrower's unpaid fines, and the paid ones if includePaid is set.
func (s *Service) BorrowerFines(ctx context.Context, cardID string, includePaid bool) (domain.BorrowerFines, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return domain.BorrowerFines{}, domain.ErrCardIDRequired
	}

	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	fines, err := s.repo.ListByBorrower(ctx, cardID, includePaid)
	if err != nil {
		return domain.BorrowerFines{}, err
	}

	res := domain.BorrowerFines{CardID: cardID, Fines: fines}

	for _, f := range fines {
		res.Total = res.Total.Add(f.Amount)

		if !f.Paid {
			res.UnpaidTotal = res.UnpaidTotal.Add(f.Amount)
		}
	}

	return res, nil
}

// AllUnpaidSummary returns one row per borrower with unpaid fines, largest total first.
func (s *Service) AllUnpaidSummary(ctx context.Context) ([]domain.UnpaidSummary, error) {
	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.repo.UnpaidSummary(ctx)
}

// Settle pays every unpaid fine of the borrower and returns the amount paid.
//
// It fails with ErrOpenLoansWithFines while a fined book is still out and with
// ErrNothingToSettle if nothing is owed.
func (s *Service) Settle(ctx context.Context, cardID string) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return decimal.Decimal{}, domain.ErrCardIDRequired
	}

	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	paid, err := s.repo.Settle(ctx, cardID)
	if err != nil {
		l.Info().Err(err).Str("card_id", cardID).Msg("settlement rejected")
		return decimal.Decimal{}, err
	}

	l.Info().Str("card_id", cardID).Str("amount", paid.StringFixed(2)).Msg("fines settled")

	return paid, nil
}

// HasUnpaid reports whether the borrower has any unpaid fine.
func (s *Service) HasUnpaid(ctx context.Context, cardID string) (bool, error) {
	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.repo.HasUnpaid(ctx, strings.TrimSpace(cardID))
}

// UnpaidTotal returns the sum of the borrower's unpaid fines.
func (s *Service) UnpaidTotal(ctx context.Context, cardID string) (decimal.Decimal, error) {
	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.repo.UnpaidTotal(ctx, strings.TrimSpace(cardID))
}
