// Package summaryservice composes read-only views over borrowers, loans and fines.
package summaryservice

import (
	"context"
	"time"

	"github.com/go-petr/pet-library/internal/borrowerdelivery"
	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/internal/finedelivery"
	"github.com/go-petr/pet-library/internal/loandelivery"
	"github.com/go-petr/pet-library/pkg/dbpkg"
)

// Repo provides data access layer interface needed by summary service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package summaryservice
type Repo interface {
	Counts(ctx context.Context, today time.Time) (domain.SystemSummary, error)
}

// Service facilitates summary service layer logic.
type Service struct {
	repo            Repo
	borrowerService borrowerdelivery.Service
	loanService     loandelivery.Service
	fineService     finedelivery.Service
	timeout         time.Duration
	now             func() time.Time
}

// New returns summary service struct.
func New(sr Repo, bs borrowerdelivery.Service, ls loandelivery.Service, fs finedelivery.Service, timeout time.Duration) *Service {
	return &Service{
		repo:            sr,
		borrowerService: bs,
		loanService:     ls,
		fineService:     fs,
		timeout:         timeout,
		now:             time.Now,
	}
}

// BorrowerOverview returns the borrower with open loans and unpaid fines.
//
// CanCheckout holds while the borrower is under the loan limit and owes nothing.
func (s *Service) BorrowerOverview(ctx context.Context, cardID string) (domain.BorrowerOverview, error) {
	b, err := s.borrowerService.Get(ctx, cardID)
	if err != nil {
		return domain.BorrowerOverview{}, err
	}

	loans, err := s.loanService.ListOpen(ctx, b.CardID)
	if err != nil {
		return domain.BorrowerOverview{}, err
	}

	fines, err := s.fineService.BorrowerFines(ctx, b.CardID, false)
	if err != nil {
		return domain.BorrowerOverview{}, err
	}

	return domain.BorrowerOverview{
		Borrower:    b,
		OpenLoans:   loans,
		Fines:       fines,
		CanCheckout: len(loans) < domain.MaxOpenLoans && !fines.UnpaidTotal.IsPositive(),
	}, nil
}

// SystemSummary returns the library wide counters with the borrowers owing fines.
func (s *Service) SystemSummary(ctx context.Context) (domain.SystemSummary, error) {
	today := domain.Date(s.now())

	storageCtx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.repo.Counts(storageCtx, today)
	if err != nil {
		return domain.SystemSummary{}, err
	}

	res.Borrowers, err = s.fineService.AllUnpaidSummary(ctx)
	if err != nil {
		return domain.SystemSummary{}, err
	}

	return res, nil
}
