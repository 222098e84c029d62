// Package borrowerservice manages business logic layer of borrowers.
package borrowerservice

import (
	"context"
	"strings"
	"time"

	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/pkg/dbpkg"
	"github.com/go-petr/pet-library/pkg/identitypkg"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by borrower service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package borrowerservice
type Repo interface {
	Register(ctx context.Context, arg domain.CreateBorrowerParams) (domain.Borrower, error)
	Get(ctx context.Context, cardID string) (domain.Borrower, error)
	Search(ctx context.Context, term, normalized string) ([]domain.Borrower, error)
}

// Service facilitates borrower service layer logic.
type Service struct {
	repo    Repo
	timeout time.Duration
}

// New returns borrower service struct to manage borrower business logic.
//
// Every storage call is bounded by timeout.
func New(br Repo, timeout time.Duration) *Service {
	return &Service{
		repo:    br,
		timeout: timeout,
	}
}

// Validate checks the registration input before any storage access.
func Validate(arg domain.CreateBorrowerParams) error {
	switch {
	case strings.TrimSpace(arg.Name) == "":
		return domain.ErrNameRequired
	case strings.TrimSpace(arg.IdentityNumber) == "":
		return domain.ErrIdentityRequired
	case strings.TrimSpace(arg.Address) == "":
		return domain.ErrAddressRequired
	case !identitypkg.IsValid(strings.TrimSpace(arg.IdentityNumber)):
		return domain.ErrInvalidIdentity
	}

	return nil
}

// Register validates the borrower data, stores the identity number digits only
// and returns the registered borrower with its new card id.
func (s *Service) Register(ctx context.Context, arg domain.CreateBorrowerParams) (domain.Borrower, error) {
	l := zerolog.Ctx(ctx)

	if err := Validate(arg); err != nil {
		l.Info().Err(err).Send()
		return domain.Borrower{}, err
	}

	arg.IdentityNumber = identitypkg.Normalize(arg.IdentityNumber)
	arg.Name = strings.TrimSpace(arg.Name)
	arg.Address = strings.TrimSpace(arg.Address)
	arg.FirstName = strings.TrimSpace(arg.FirstName)
	arg.LastName = strings.TrimSpace(arg.LastName)
	arg.Email = strings.TrimSpace(arg.Email)
	arg.Phone = strings.TrimSpace(arg.Phone)

	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	b, err := s.repo.Register(ctx, arg)
	if err != nil {
		l.Info().Err(err).Msg("registration rejected")
		return domain.Borrower{}, err
	}

	l.Info().Str("card_id", b.CardID).Msg("borrower registered")

	return b, nil
}

// Get returns the borrower with the given card id.
func (s *Service) Get(ctx context.Context, cardID string) (domain.Borrower, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return domain.Borrower{}, domain.ErrCardIDRequired
	}

	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.repo.Get(ctx, cardID)
}

// Search returns the borrowers whose name, identity number or card id contain term.
//
// An identity number typed with separators matches too.
func (s *Service) Search(ctx context.Context, term string) ([]domain.Borrower, error) {
	term = strings.TrimSpace(term)

	normalized := identitypkg.Normalize(term)
	if normalized == term {
		normalized = ""
	}

	ctx, cancel := dbpkg.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.repo.Search(ctx, term, normalized)
}
