// Package loanrepo manages repository layer of loans.
package loanrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-petr/pet-library/internal/borrowerrepo"
	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/internal/finerepo"
	"github.com/go-petr/pet-library/pkg/dbpkg"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates loan repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns loan RepoPGS bound to db, usually a running transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns loan RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLoan(row scanner) (domain.Loan, error) {
	var (
		l      domain.Loan
		dateIn sql.NullTime
	)

	err := row.Scan(
		&l.ID,
		&l.ISBN,
		&l.CardID,
		&l.DateOut,
		&l.DateDue,
		&dateIn,
	)

	if dateIn.Valid {
		l.DateIn = &dateIn.Time
	}

	return l, err
}

func scanLoanDetail(row scanner) (domain.LoanDetail, error) {
	var (
		d      domain.LoanDetail
		dateIn sql.NullTime
	)

	err := row.Scan(
		&d.ID,
		&d.ISBN,
		&d.Title,
		&d.CardID,
		&d.BorrowerName,
		&d.DateOut,
		&d.DateDue,
		&dateIn,
	)

	if dateIn.Valid {
		d.DateIn = &dateIn.Time
	}

	return d, err
}

const nextIDQuery = `SELECT COALESCE(MAX(loan_id), 0) + 1 FROM loans`

// NextID returns the id following the highest assigned loan id.
func (r *RepoPGS) NextID(ctx context.Context) (int64, error) {
	l := zerolog.Ctx(ctx)

	var id int64
	if err := r.db.QueryRowContext(ctx, nextIDQuery).Scan(&id); err != nil {
		l.Error().Err(errors.Wrap(err, "next loan id")).Send()
		return 0, dbpkg.Classify(err)
	}

	return id, nil
}

const createQuery = `
INSERT INTO
    loans (loan_id, isbn, card_id, date_out, date_due)
VALUES
    ($1, $2, $3, $4, $5)
RETURNING loan_id, isbn, card_id, date_out, date_due, date_in
`

// Create inserts an open loan with the given id and then returns it.
func (r *RepoPGS) Create(ctx context.Context, id int64, arg domain.CreateLoanParams) (domain.Loan, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, id, arg.ISBN, arg.CardID, arg.DateOut, arg.DateDue)

	loan, err := scanLoan(row)
	if err != nil {
		l.Error().Err(errors.Wrapf(err, "create loan %+v", arg)).Send()

		switch dbpkg.Constraint(err) {
		case "loans_open_isbn_key":
			return loan, domain.ErrCopyUnavailable
		case "loans_isbn_fkey":
			return loan, domain.ErrBookNotFound
		case "loans_card_id_fkey":
			return loan, domain.ErrBorrowerNotFound
		}

		return loan, dbpkg.Classify(err)
	}

	return loan, nil
}

// Checkout evaluates the checkout gates and inserts the loan in one transaction.
//
// The gates run in a fixed order: borrower existence, open loan limit, book
// availability, unpaid fines. Checkouts are serialized by a lock on loans, so
// of two racing checkouts of the same book exactly one succeeds.
func (r *RepoPGS) Checkout(ctx context.Context, arg domain.CreateLoanParams) (domain.Loan, error) {
	var loan domain.Loan

	err := dbpkg.ExecTx(ctx, r.conn, func(tx *sql.Tx) error {
		if err := dbpkg.LockTable(ctx, tx, "loans"); err != nil {
			return err
		}

		txRepo := NewTxRepoPGS(tx)
		borrowerRepo := borrowerrepo.NewTxRepoPGS(tx)
		fineRepo := finerepo.NewTxRepoPGS(tx)

		exists, err := borrowerRepo.Exists(ctx, arg.CardID)
		if err != nil {
			return err
		}

		if !exists {
			return domain.ErrBorrowerNotFound
		}

		open, err := txRepo.CountOpen(ctx, arg.CardID)
		if err != nil {
			return err
		}

		if open >= domain.MaxOpenLoans {
			return domain.ErrLoanLimitReached
		}

		checkedOut, err := txRepo.IsCheckedOut(ctx, arg.ISBN)
		if err != nil {
			return err
		}

		if checkedOut {
			return domain.ErrCopyUnavailable
		}

		unpaid, err := fineRepo.UnpaidTotal(ctx, arg.CardID)
		if err != nil {
			return err
		}

		if unpaid.IsPositive() {
			return &domain.UnpaidFinesError{Amount: unpaid}
		}

		id, err := txRepo.NextID(ctx)
		if err != nil {
			return err
		}

		loan, err = txRepo.Create(ctx, id, arg)

		return err
	})

	return loan, err
}

const checkinQuery = `
UPDATE loans
SET date_in = $1
WHERE loan_id = ANY($2) AND date_in IS NULL
`

// Checkin closes the open loans among ids and returns how many were closed.
//
// Unknown and already closed ids are skipped.
func (r *RepoPGS) Checkin(ctx context.Context, ids []int64, dateIn time.Time) (int64, error) {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, checkinQuery, dateIn, pq.Array(ids))
	if err != nil {
		l.Error().Err(errors.Wrapf(err, "checkin %v", ids)).Send()
		return 0, dbpkg.Classify(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return 0, dbpkg.Classify(err)
	}

	return n, nil
}

const countOpenQuery = `SELECT COUNT(*) FROM loans WHERE card_id = $1 AND date_in IS NULL`

// CountOpen returns the number of open loans of the borrower.
func (r *RepoPGS) CountOpen(ctx context.Context, cardID string) (int, error) {
	l := zerolog.Ctx(ctx)

	var n int
	if err := r.db.QueryRowContext(ctx, countOpenQuery, cardID).Scan(&n); err != nil {
		l.Error().Err(errors.Wrapf(err, "count open loans of %s", cardID)).Send()
		return 0, dbpkg.Classify(err)
	}

	return n, nil
}

const isCheckedOutQuery = `SELECT EXISTS (SELECT 1 FROM loans WHERE isbn = $1 AND date_in IS NULL)`

// IsCheckedOut reports whether the book is on an open loan.
func (r *RepoPGS) IsCheckedOut(ctx context.Context, isbn string) (bool, error) {
	l := zerolog.Ctx(ctx)

	var out bool
	if err := r.db.QueryRowContext(ctx, isCheckedOutQuery, isbn).Scan(&out); err != nil {
		l.Error().Err(errors.Wrapf(err, "is %s checked out", isbn)).Send()
		return false, dbpkg.Classify(err)
	}

	return out, nil
}

// BorrowerExists reports whether the borrower with the given card id exists.
func (r *RepoPGS) BorrowerExists(ctx context.Context, cardID string) (bool, error) {
	return borrowerrepo.NewTxRepoPGS(r.db).Exists(ctx, cardID)
}

const getQuery = `
SELECT loan_id, isbn, card_id, date_out, date_due, date_in
FROM loans
WHERE loan_id = $1
`

// Get returns the loan with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Loan, error) {
	l := zerolog.Ctx(ctx)

	loan, err := scanLoan(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return loan, domain.ErrLoanNotFound
		}

		l.Error().Err(errors.Wrapf(err, "get loan %d", id)).Send()

		return loan, dbpkg.Classify(err)
	}

	return loan, nil
}

const detailColumns = `
    l.loan_id, l.isbn, b.title, l.card_id, br.bname, l.date_out, l.date_due, l.date_in
FROM loans l
JOIN books b ON l.isbn = b.isbn
JOIN borrowers br ON l.card_id = br.card_id
`

const getDetailQuery = `SELECT` + detailColumns + `WHERE l.loan_id = $1`

// GetDetail returns the loan with the given id joined with its book and borrower.
func (r *RepoPGS) GetDetail(ctx context.Context, id int64) (domain.LoanDetail, error) {
	l := zerolog.Ctx(ctx)

	d, err := scanLoanDetail(r.db.QueryRowContext(ctx, getDetailQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return d, domain.ErrLoanNotFound
		}

		l.Error().Err(errors.Wrapf(err, "get loan detail %d", id)).Send()

		return d, dbpkg.Classify(err)
	}

	return d, nil
}

const getOpenByISBNQuery = `SELECT` + detailColumns + `WHERE l.isbn = $1 AND l.date_in IS NULL LIMIT 1`

// GetOpenByISBN returns the open loan of the book.
func (r *RepoPGS) GetOpenByISBN(ctx context.Context, isbn string) (domain.LoanDetail, error) {
	l := zerolog.Ctx(ctx)

	d, err := scanLoanDetail(r.db.QueryRowContext(ctx, getOpenByISBNQuery, isbn))
	if err != nil {
		if err == sql.ErrNoRows {
			return d, domain.ErrLoanNotFound
		}

		l.Error().Err(errors.Wrapf(err, "get open loan of %s", isbn)).Send()

		return d, dbpkg.Classify(err)
	}

	return d, nil
}

const listOpenQuery = `SELECT` + detailColumns + `
WHERE l.card_id = $1 AND l.date_in IS NULL
ORDER BY l.date_due, l.loan_id
`

// ListOpen returns the open loans of the borrower ordered by due date.
func (r *RepoPGS) ListOpen(ctx context.Context, cardID string) ([]domain.LoanDetail, error) {
	return r.listDetails(ctx, listOpenQuery, cardID)
}

const searchOpenQuery = `SELECT` + detailColumns + `
WHERE
    l.date_in IS NULL
    AND (
        l.isbn ILIKE '%' || $1 || '%'
        OR l.card_id ILIKE '%' || $1 || '%'
        OR br.bname ILIKE '%' || $1 || '%'
    )
ORDER BY l.date_out, l.loan_id
`

// SearchOpen returns the open loans whose isbn, card id or borrower name contain term,
// oldest checkout first.
func (r *RepoPGS) SearchOpen(ctx context.Context, term string) ([]domain.LoanDetail, error) {
	return r.listDetails(ctx, searchOpenQuery, term)
}

func (r *RepoPGS) listDetails(ctx context.Context, query string, args ...any) ([]domain.LoanDetail, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(errors.Wrap(err, "list loans")).Send()
		return nil, dbpkg.Classify(err)
	}
	defer rows.Close()

	items := []domain.LoanDetail{}

	for rows.Next() {
		d, err := scanLoanDetail(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, dbpkg.Classify(err)
		}

		items = append(items, d)
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
