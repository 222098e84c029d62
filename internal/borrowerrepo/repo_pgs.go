// Package borrowerrepo manages repository layer of borrowers.
package borrowerrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/pkg/dbpkg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates borrower repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns borrower RepoPGS bound to db, usually a running transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns borrower RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const borrowerColumns = `card_id, ssn, bname, first_name, last_name, email, address, phone`

type scanner interface {
	Scan(dest ...any) error
}

func scanBorrower(row scanner) (domain.Borrower, error) {
	var (
		b                                 domain.Borrower
		firstName, lastName, email, phone sql.NullString
	)

	err := row.Scan(
		&b.CardID,
		&b.IdentityNumber,
		&b.Name,
		&firstName,
		&lastName,
		&email,
		&b.Address,
		&phone,
	)

	b.FirstName = firstName.String
	b.LastName = lastName.String
	b.Email = email.String
	b.Phone = phone.String

	return b, err
}

const createQuery = `
INSERT INTO
    borrowers (card_id, ssn, bname, first_name, last_name, email, address, phone)
VALUES
    ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + borrowerColumns

// Create inserts the borrower with the given card id and then returns it.
//
// arg.IdentityNumber is expected in its digits only form.
func (r *RepoPGS) Create(ctx context.Context, cardID string, arg domain.CreateBorrowerParams) (domain.Borrower, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		cardID,
		arg.IdentityNumber,
		arg.Name,
		dbpkg.NullString(arg.FirstName),
		dbpkg.NullString(arg.LastName),
		dbpkg.NullString(arg.Email),
		arg.Address,
		dbpkg.NullString(arg.Phone),
	)

	b, err := scanBorrower(row)
	if err != nil {
		l.Error().Err(errors.Wrapf(err, "create borrower %s", cardID)).Send()

		if dbpkg.Constraint(err) == "borrowers_ssn_key" {
			return b, domain.ErrDuplicateIdentity
		}

		return b, dbpkg.Classify(err)
	}

	return b, nil
}

const maxCardNumberQuery = `
SELECT COALESCE(MAX(CAST(SUBSTRING(card_id FROM 3) AS INTEGER)), 0)
FROM borrowers
WHERE card_id ~ '^ID[0-9]+$'
`

// MaxCardNumber returns the highest assigned card sequence number, 0 if there is none.
func (r *RepoPGS) MaxCardNumber(ctx context.Context) (int, error) {
	l := zerolog.Ctx(ctx)

	var n int
	if err := r.db.QueryRowContext(ctx, maxCardNumberQuery).Scan(&n); err != nil {
		l.Error().Err(errors.Wrap(err, "max card number")).Send()
		return 0, dbpkg.Classify(err)
	}

	return n, nil
}

const identityExistsQuery = `SELECT EXISTS (SELECT 1 FROM borrowers WHERE ssn = $1)`

// IdentityExists reports whether a borrower with the digits only identity number exists.
func (r *RepoPGS) IdentityExists(ctx context.Context, identity string) (bool, error) {
	l := zerolog.Ctx(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, identityExistsQuery, identity).Scan(&exists); err != nil {
		l.Error().Err(errors.Wrap(err, "identity exists")).Send()
		return false, dbpkg.Classify(err)
	}

	return exists, nil
}

const existsQuery = `SELECT EXISTS (SELECT 1 FROM borrowers WHERE card_id = $1)`

// Exists reports whether the borrower with the given card id exists.
func (r *RepoPGS) Exists(ctx context.Context, cardID string) (bool, error) {
	l := zerolog.Ctx(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, existsQuery, cardID).Scan(&exists); err != nil {
		l.Error().Err(errors.Wrapf(err, "borrower %s exists", cardID)).Send()
		return false, dbpkg.Classify(err)
	}

	return exists, nil
}

// Register assigns the next card id and inserts the borrower in one transaction.
//
// Concurrent registrations are serialized by a lock on borrowers, so two of
// them never compute the same card id.
func (r *RepoPGS) Register(ctx context.Context, arg domain.CreateBorrowerParams) (domain.Borrower, error) {
	var b domain.Borrower

	err := dbpkg.ExecTx(ctx, r.conn, func(tx *sql.Tx) error {
		if err := dbpkg.LockTable(ctx, tx, "borrowers"); err != nil {
			return err
		}

		txRepo := NewTxRepoPGS(tx)

		exists, err := txRepo.IdentityExists(ctx, arg.IdentityNumber)
		if err != nil {
			return err
		}

		if exists {
			return domain.ErrDuplicateIdentity
		}

		n, err := txRepo.MaxCardNumber(ctx)
		if err != nil {
			return err
		}

		b, err = txRepo.Create(ctx, domain.NextCardID(n), arg)

		return err
	})

	return b, err
}

const getQuery = `SELECT ` + borrowerColumns + ` FROM borrowers WHERE card_id = $1`

// Get returns the borrower with the given card id.
func (r *RepoPGS) Get(ctx context.Context, cardID string) (domain.Borrower, error) {
	l := zerolog.Ctx(ctx)

	b, err := scanBorrower(r.db.QueryRowContext(ctx, getQuery, cardID))
	if err != nil {
		if err == sql.ErrNoRows {
			return b, domain.ErrBorrowerNotFound
		}

		l.Error().Err(errors.Wrapf(err, "get borrower %s", cardID)).Send()

		return b, dbpkg.Classify(err)
	}

	return b, nil
}

const searchQuery = `
SELECT ` + borrowerColumns + `
FROM borrowers
WHERE
    bname ILIKE '%' || $1 || '%'
    OR ssn LIKE '%' || $1 || '%'
    OR card_id ILIKE '%' || $1 || '%'
    OR ($2 <> '' AND ssn LIKE '%' || $2 || '%')
ORDER BY bname, card_id
`

// Search returns the borrowers whose name, identity number or card id contain term.
//
// normalized is term without separators and is matched against the identity number.
func (r *RepoPGS) Search(ctx context.Context, term, normalized string) ([]domain.Borrower, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, searchQuery, term, normalized)
	if err != nil {
		l.Error().Err(errors.Wrap(err, "search borrowers")).Send()
		return nil, dbpkg.Classify(err)
	}
	defer rows.Close()

	items := []domain.Borrower{}

	for rows.Next() {
		b, err := scanBorrower(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, dbpkg.Classify(err)
		}

		items = append(items, b)
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
