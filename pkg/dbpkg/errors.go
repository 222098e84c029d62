package dbpkg

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/go-petr/pet-library/pkg/errorspkg"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// SQLSTATE codes the repositories care about.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
)

// PGError holds the driver independent part of a postgres error.
type PGError struct {
	Code       string
	Constraint string
}

// AsPGError extracts the postgres error reported by either lib/pq or pgx.
func AsPGError(err error) (PGError, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return PGError{Code: string(pqErr.Code), Constraint: pqErr.Constraint}, true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return PGError{Code: pgErr.Code, Constraint: pgErr.ConstraintName}, true
	}

	return PGError{}, false
}

// Constraint returns the violated constraint name, or "" if err is not a constraint violation.
func Constraint(err error) string {
	pgErr, ok := AsPGError(err)
	if !ok {
		return ""
	}

	return pgErr.Constraint
}

// Classify maps a raw storage error to ErrConnectivity or ErrInternal.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if isConnectivity(err) {
		return errorspkg.ErrConnectivity
	}

	return errorspkg.ErrInternal
}

func isConnectivity(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// Class 08 is "connection exception", 57P01..57P03 are shutdown states.
	if pgErr, ok := AsPGError(err); ok {
		return strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57P")
	}

	return false
}
