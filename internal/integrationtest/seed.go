package integrationtest

import (
	"context"
	"testing"
	"time"

	"github.com/go-petr/pet-library/internal/borrowerrepo"
	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/internal/finerepo"
	"github.com/go-petr/pet-library/internal/loanrepo"
	"github.com/go-petr/pet-library/pkg/dbpkg"
	"github.com/go-petr/pet-library/pkg/identitypkg"
	"github.com/go-petr/pet-library/pkg/randompkg"
	"github.com/shopspring/decimal"
)

// SeedBook creates a random catalog entry.
func SeedBook(t *testing.T, db dbpkg.SQLInterface) domain.Book {
	t.Helper()

	b := domain.Book{ISBN: randompkg.ISBN(), Title: randompkg.Name() + " " + randompkg.Name()}

	const query = `INSERT INTO books (isbn, title) VALUES ($1, $2)`

	if _, err := db.ExecContext(context.Background(), query, b.ISBN, b.Title); err != nil {
		t.Fatalf("seed book %+v returned error: %v", b, err)
	}

	return b
}

// RandomBorrowerParams returns random registration data with a well-formed identity number.
func RandomBorrowerParams() domain.CreateBorrowerParams {
	first, last := randompkg.Name(), randompkg.Name()

	return domain.CreateBorrowerParams{
		IdentityNumber: randompkg.IdentityNumber(),
		Name:           first + " " + last,
		FirstName:      first,
		LastName:       last,
		Email:          randompkg.Email(),
		Address:        randompkg.Address(),
		Phone:          randompkg.Phone(),
	}
}

// SeedBorrower creates a random borrower with a random card id.
func SeedBorrower(t *testing.T, db dbpkg.SQLInterface) domain.Borrower {
	t.Helper()

	arg := RandomBorrowerParams()
	arg.IdentityNumber = identitypkg.Normalize(arg.IdentityNumber)
	cardID := domain.FormatCardID(randompkg.IntBetween(1, 999_999))

	b, err := borrowerrepo.NewTxRepoPGS(db).Create(context.Background(), cardID, arg)
	if err != nil {
		t.Fatalf("borrowerRepo.Create(ctx, %v, %+v) returned error: %v", cardID, arg, err)
	}

	return b
}

// SeedLoan creates a loan of the book issued on dateOut. A nil dateIn leaves it open.
func SeedLoan(t *testing.T, db dbpkg.SQLInterface, isbn, cardID string, dateOut time.Time, dateIn *time.Time) domain.Loan {
	t.Helper()

	ctx := context.Background()
	loanRepo := loanrepo.NewTxRepoPGS(db)

	id, err := loanRepo.NextID(ctx)
	if err != nil {
		t.Fatalf("loanRepo.NextID(ctx) returned error: %v", err)
	}

	arg := domain.CreateLoanParams{
		ISBN:    isbn,
		CardID:  cardID,
		DateOut: domain.Date(dateOut),
		DateDue: domain.DueDate(dateOut),
	}

	loan, err := loanRepo.Create(ctx, id, arg)
	if err != nil {
		t.Fatalf("loanRepo.Create(ctx, %v, %+v) returned error: %v", id, arg, err)
	}

	if dateIn != nil {
		if _, err := loanRepo.Checkin(ctx, []int64{id}, domain.Date(*dateIn)); err != nil {
			t.Fatalf("loanRepo.Checkin(ctx, %v) returned error: %v", id, err)
		}

		loan, err = loanRepo.Get(ctx, id)
		if err != nil {
			t.Fatalf("loanRepo.Get(ctx, %v) returned error: %v", id, err)
		}
	}

	return loan
}

// SeedFine records a fine for the loan.
func SeedFine(t *testing.T, db dbpkg.SQLInterface, loanID int64, amount string, paid bool) domain.Fine {
	t.Helper()

	arg := domain.Fine{LoanID: loanID, Amount: decimal.RequireFromString(amount), Paid: paid}

	f, err := finerepo.NewTxRepoPGS(db).Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("fineRepo.Create(ctx, %+v) returned error: %v", arg, err)
	}

	return f
}
