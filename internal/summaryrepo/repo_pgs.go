// Package summaryrepo manages repository layer of circulation counters.
package summaryrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/pkg/dbpkg"
	"github.com/go-petr/pet-library/pkg/errorspkg"
)

const dialectPostgres = "postgres"

// RepoPGS facilitates summary repository layer logic.
type RepoPGS struct {
	db *sqlx.DB
}

// NewRepoPGS returns summary RepoPGS sharing the pool of conn.
func NewRepoPGS(conn *sql.DB, driverName string) *RepoPGS {
	return &RepoPGS{
		db: sqlx.NewDb(conn, driverName),
	}
}

func countsQuery(today time.Time) (string, []any, error) {
	d := goqu.Dialect(dialectPostgres)

	openLoans := d.From("loans").
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.C("date_in").IsNull())

	overdueLoans := d.From("loans").
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.C("date_in").IsNull(), goqu.C("date_due").Lt(today))

	borrowersWithFines := d.From(goqu.T("fines").As("f")).
		Join(goqu.T("loans").As("l"), goqu.On(goqu.I("l.loan_id").Eq(goqu.I("f.loan_id")))).
		Select(goqu.COUNT(goqu.DISTINCT(goqu.I("l.card_id")))).
		Where(goqu.I("f.paid").IsFalse())

	unpaidTotal := d.From("fines").
		Select(goqu.COALESCE(goqu.SUM(goqu.C("fine_amt")), 0)).
		Where(goqu.C("paid").IsFalse())

	return d.
		Select(
			openLoans.As("open_loans"),
			overdueLoans.As("overdue_loans"),
			borrowersWithFines.As("borrowers_with_fines"),
			unpaidTotal.As("unpaid_total"),
		).
		Prepared(true).
		ToSQL()
}

// Counts returns the library wide counters as of today. Borrowers is left empty.
func (r *RepoPGS) Counts(ctx context.Context, today time.Time) (domain.SystemSummary, error) {
	l := zerolog.Ctx(ctx)

	query, args, err := countsQuery(today)
	if err != nil {
		l.Error().Err(errors.Wrap(err, "build counts query")).Send()
		return domain.SystemSummary{}, errorspkg.ErrInternal
	}

	var res domain.SystemSummary
	if err := r.db.GetContext(ctx, &res, query, args...); err != nil {
		l.Error().Err(errors.Wrap(err, "circulation counts")).Send()
		return domain.SystemSummary{}, dbpkg.Classify(err)
	}

	return res, nil
}
