package dbpkg

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/go-petr/pet-library/pkg/errorspkg"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestConstraint(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "PQ",
			err:  &pq.Error{Code: CodeUniqueViolation, Constraint: "borrowers_ssn_key"},
			want: "borrowers_ssn_key",
		},
		{
			name: "PGX",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: CodeForeignKeyViolation, ConstraintName: "loans_isbn_fkey"}),
			want: "loans_isbn_fkey",
		},
		{
			name: "Other",
			err:  errors.New("boom"),
			want: "",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			if got := Constraint(tc.err); got != tc.want {
				t.Errorf("Constraint(%v) = %q, want %q", tc.err, got, tc.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "Nil",
			err:  nil,
			want: nil,
		},
		{
			name: "BadConn",
			err:  driver.ErrBadConn,
			want: errorspkg.ErrConnectivity,
		},
		{
			name: "Deadline",
			err:  fmt.Errorf("query: %w", context.DeadlineExceeded),
			want: errorspkg.ErrConnectivity,
		},
		{
			name: "ConnectionException",
			err:  &pq.Error{Code: "08006"},
			want: errorspkg.ErrConnectivity,
		},
		{
			name: "UniqueViolation",
			err:  &pq.Error{Code: CodeUniqueViolation},
			want: errorspkg.ErrInternal,
		},
		{
			name: "Other",
			err:  errors.New("boom"),
			want: errorspkg.ErrInternal,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.want {
				t.Errorf("Classify(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
