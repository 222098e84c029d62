// Package finerepo manages repository layer of fines.
package finerepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/pkg/dbpkg"
	"github.com/go-petr/pet-library/pkg/errorspkg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoPGS facilitates fine repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns fine RepoPGS bound to db, usually a running transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns fine RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const unpaidTotalQuery = `
SELECT SUM(f.fine_amt)
FROM fines f
JOIN loans l ON f.loan_id = l.loan_id
WHERE l.card_id = $1 AND NOT f.paid
`

// UnpaidTotal returns the sum of the borrower's unpaid fines over all loans.
func (r *RepoPGS) UnpaidTotal(ctx context.Context, cardID string) (decimal.Decimal, error) {
	total, err := r.unpaidSum(ctx, cardID)
	if err != nil {
		return decimal.Zero, err
	}

	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}

func (r *RepoPGS) unpaidSum(ctx context.Context, cardID string) (decimal.NullDecimal, error) {
	l := zerolog.Ctx(ctx)

	var total decimal.NullDecimal
	if err := r.db.QueryRowContext(ctx, unpaidTotalQuery, cardID).Scan(&total); err != nil {
		l.Error().Err(errors.Wrapf(err, "unpaid total of %s", cardID)).Send()
		return total, dbpkg.Classify(err)
	}

	return total, nil
}

const hasUnpaidQuery = `
SELECT EXISTS (
    SELECT 1
    FROM fines f
    JOIN loans l ON f.loan_id = l.loan_id
    WHERE l.card_id = $1 AND NOT f.paid
)
`

// HasUnpaid reports whether the borrower has at least one unpaid fine.
func (r *RepoPGS) HasUnpaid(ctx context.Context, cardID string) (bool, error) {
	return r.exists(ctx, hasUnpaidQuery, cardID)
}

const hasUnpaidOnOpenLoansQuery = `
SELECT EXISTS (
    SELECT 1
    FROM fines f
    JOIN loans l ON f.loan_id = l.loan_id
    WHERE l.card_id = $1 AND NOT f.paid AND l.date_in IS NULL
)
`

// HasUnpaidOnOpenLoans reports whether an unpaid fine of the borrower belongs to a book still out.
func (r *RepoPGS) HasUnpaidOnOpenLoans(ctx context.Context, cardID string) (bool, error) {
	return r.exists(ctx, hasUnpaidOnOpenLoansQuery, cardID)
}

func (r *RepoPGS) exists(ctx context.Context, query, cardID string) (bool, error) {
	l := zerolog.Ctx(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, cardID).Scan(&exists); err != nil {
		l.Error().Err(errors.Wrapf(err, "fines of %s", cardID)).Send()
		return false, dbpkg.Classify(err)
	}

	return exists, nil
}

const listLateQuery = `
SELECT l.loan_id, l.date_due, l.date_in, f.fine_amt, f.paid
FROM loans l
LEFT JOIN fines f ON f.loan_id = l.loan_id
WHERE
    (l.date_in IS NOT NULL AND l.date_in > l.date_due)
    OR (l.date_in IS NULL AND l.date_due < $1)
ORDER BY l.loan_id
`

// ListLate returns the loans returned after their due date and the open loans
// due before today, each with its current fine if one is recorded.
func (r *RepoPGS) ListLate(ctx context.Context, today time.Time) ([]domain.LateLoan, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listLateQuery, today)
	if err != nil {
		l.Error().Err(errors.Wrap(err, "list late loans")).Send()
		return nil, dbpkg.Classify(err)
	}
	defer rows.Close()

	items := []domain.LateLoan{}

	for rows.Next() {
		var (
			ll     domain.LateLoan
			dateIn sql.NullTime
			amount decimal.NullDecimal
			paid   sql.NullBool
		)

		if err := rows.Scan(&ll.LoanID, &ll.DateDue, &dateIn, &amount, &paid); err != nil {
			l.Error().Err(err).Send()
			return nil, dbpkg.Classify(err)
		}

		if dateIn.Valid {
			ll.DateIn = &dateIn.Time
		}

		if amount.Valid {
			ll.Fine = &domain.Fine{LoanID: ll.LoanID, Amount: amount.Decimal, Paid: paid.Bool}
		}

		items = append(items, ll)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, dbpkg.Classify(err)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, dbpkg.Classify(err)
	}

	return items, nil
}

const createQuery = `
INSERT INTO
    fines (loan_id, fine_amt, paid)
VALUES
    ($1, $2, $3)
RETURNING loan_id, fine_amt, paid
`

// Create records the fine and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.Fine) (domain.Fine, error) {
	l := zerolog.Ctx(ctx)

	var f domain.Fine

	err := r.db.QueryRowContext(ctx, createQuery, arg.LoanID, arg.Amount, arg.Paid).
		Scan(&f.LoanID, &f.Amount, &f.Paid)
	if err != nil {
		l.Error().Err(errors.Wrapf(err, "create fine %+v", arg)).Send()

		if dbpkg.Constraint(err) == "fines_loan_id_fkey" {
			return f, domain.ErrLoanNotFound
		}

		return f, dbpkg.Classify(err)
	}

	return f, nil
}

const updateAmountQuery = `UPDATE fines SET fine_amt = $2 WHERE loan_id = $1 AND NOT paid`

// UpdateAmount sets the amount of the unpaid fine of the loan.
func (r *RepoPGS) UpdateAmount(ctx context.Context, loanID int64, amount decimal.Decimal) error {
	l := zerolog.Ctx(ctx)

	if _, err := r.db.ExecContext(ctx, updateAmountQuery, loanID, amount); err != nil {
		l.Error().Err(errors.Wrapf(err, "update fine of loan %d", loanID)).Send()
		return dbpkg.Classify(err)
	}

	return nil
}

// Reconcile recomputes the fines of all late loans as of today in one transaction.
//
// A late loan without a fine gets a new unpaid one, an unpaid fine with a stale
// amount is updated, and a paid fine is left as it is.
func (r *RepoPGS) Reconcile(ctx context.Context, today time.Time) (domain.ReconcileStats, error) {
	var stats domain.ReconcileStats

	err := dbpkg.ExecTx(ctx, r.conn, func(tx *sql.Tx) error {
		if err := dbpkg.LockTable(ctx, tx, "fines"); err != nil {
			return err
		}

		txRepo := NewTxRepoPGS(tx)

		late, err := txRepo.ListLate(ctx, today)
		if err != nil {
			return err
		}

		stats = domain.ReconcileStats{Processed: len(late)}

		for _, ll := range late {
			amount := domain.FineAmount(domain.DaysLate(ll.DateDue, ll.DateIn, today))

			switch {
			case ll.Fine == nil:
				if _, err := txRepo.Create(ctx, domain.Fine{LoanID: ll.LoanID, Amount: amount}); err != nil {
					return err
				}

				stats.New++
			case ll.Fine.Paid:
				stats.SkippedPaid++
			case !ll.Fine.Amount.Equal(amount):
				if err := txRepo.UpdateAmount(ctx, ll.LoanID, amount); err != nil {
					return err
				}

				stats.Updated++
			}
		}

		return nil
	})
	if err != nil {
		return domain.ReconcileStats{}, err
	}

	return stats, nil
}

const markPaidQuery = `
UPDATE fines
SET paid = TRUE
FROM loans l
WHERE fines.loan_id = l.loan_id AND l.card_id = $1 AND NOT fines.paid
`

// Settle marks every unpaid fine of the borrower as paid in one transaction and
// returns the amount settled.
//
// Nothing is paid if one of the unpaid fines belongs to a book still out.
func (r *RepoPGS) Settle(ctx context.Context, cardID string) (decimal.Decimal, error) {
	var total decimal.Decimal

	err := dbpkg.ExecTx(ctx, r.conn, func(tx *sql.Tx) error {
		if err := dbpkg.LockTable(ctx, tx, "fines"); err != nil {
			return err
		}

		txRepo := NewTxRepoPGS(tx)

		blocked, err := txRepo.HasUnpaidOnOpenLoans(ctx, cardID)
		if err != nil {
			return err
		}

		if blocked {
			return domain.ErrOpenLoansWithFines
		}

		sum, err := txRepo.unpaidSum(ctx, cardID)
		if err != nil {
			return err
		}

		if !sum.Valid {
			return domain.ErrNothingToSettle
		}

		if _, err := tx.ExecContext(ctx, markPaidQuery, cardID); err != nil {
			zerolog.Ctx(ctx).Error().Err(errors.Wrapf(err, "mark fines of %s paid", cardID)).Send()
			return dbpkg.Classify(err)
		}

		total = sum.Decimal

		return nil
	})

	return total, err
}

const listByBorrowerQuery = `
SELECT f.loan_id, f.fine_amt, f.paid, l.isbn, b.title, l.date_out, l.date_due, l.date_in
FROM fines f
JOIN loans l ON f.loan_id = l.loan_id
JOIN books b ON l.isbn = b.isbn
WHERE l.card_id = $1 AND ($2 OR NOT f.paid)
ORDER BY l.date_due, f.loan_id
`

// ListByBorrower returns the borrower's unpaid fines, and the paid ones too if includePaid is set.
func (r *RepoPGS) ListByBorrower(ctx context.Context, cardID string, includePaid bool) ([]domain.FineDetail, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByBorrowerQuery, cardID, includePaid)
	if err != nil {
		l.Error().Err(errors.Wrapf(err, "list fines of %s", cardID)).Send()
		return nil, dbpkg.Classify(err)
	}
	defer rows.Close()

	items := []domain.FineDetail{}

	for rows.Next() {
		var (
			fd     domain.FineDetail
			dateIn sql.NullTime
		)

		if err := rows.Scan(
			&fd.LoanID,
			&fd.Amount,
			&fd.Paid,
			&fd.ISBN,
			&fd.Title,
			&fd.DateOut,
			&fd.DateDue,
			&dateIn,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, dbpkg.Classify(err)
		}

		if dateIn.Valid {
			fd.DateIn = &dateIn.Time
		}

		items = append(items, fd)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, dbpkg.Classify(err)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, dbpkg.Classify(err)
	}

	return items, nil
}

func unpaidSummaryQuery() (string, []any, error) {
	return goqu.Dialect("postgres").
		From(goqu.T("borrowers").As("br")).
		Join(goqu.T("loans").As("l"), goqu.On(goqu.I("l.card_id").Eq(goqu.I("br.card_id")))).
		Join(goqu.T("fines").As("f"), goqu.On(goqu.I("f.loan_id").Eq(goqu.I("l.loan_id")))).
		Select(
			goqu.I("br.card_id"),
			goqu.I("br.bname"),
			goqu.COALESCE(goqu.I("br.email"), "").As("email"),
			goqu.COALESCE(goqu.I("br.phone"), "").As("phone"),
			goqu.SUM(goqu.I("f.fine_amt")).As("total_unpaid"),
			goqu.COUNT(goqu.I("f.loan_id")).As("fine_count"),
		).
		Where(goqu.I("f.paid").IsFalse()).
		GroupBy(goqu.I("br.card_id"), goqu.I("br.bname"), goqu.I("br.email"), goqu.I("br.phone")).
		Order(goqu.I("total_unpaid").Desc(), goqu.I("br.card_id").Asc()).
		Prepared(true).
		ToSQL()
}

// UnpaidSummary returns one row per borrower with unpaid fines, largest total first.
func (r *RepoPGS) UnpaidSummary(ctx context.Context) ([]domain.UnpaidSummary, error) {
	l := zerolog.Ctx(ctx)

	query, args, err := unpaidSummaryQuery()
	if err != nil {
		l.Error().Err(errors.Wrap(err, "build unpaid summary query")).Send()
		return nil, errorspkg.ErrInternal
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(errors.Wrap(err, "unpaid summary")).Send()
		return nil, dbpkg.Classify(err)
	}
	defer rows.Close()

	items := []domain.UnpaidSummary{}

	for rows.Next() {
		var s domain.UnpaidSummary
		if err := rows.Scan(&s.CardID, &s.Name, &s.Email, &s.Phone, &s.TotalUnpaid, &s.Count); err != nil {
			l.Error().Err(err).Send()
			return nil, dbpkg.Classify(err)
		}

		items = append(items, s)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, dbpkg.Classify(err)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, dbpkg.Classify(err)
	}

	return items, nil
}
