package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/go-petr/pet-library/pkg/errorspkg"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysLate(t *testing.T) {
	returned := date(2024, 1, 11)
	early := date(2023, 12, 30)
	sameDayLate := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		due      time.Time
		returned *time.Time
		today    time.Time
		want     int
	}{
		{"ReturnedLate", date(2024, 1, 1), &returned, date(2024, 3, 1), 10},
		{"ReturnedEarly", date(2024, 1, 1), &early, date(2024, 3, 1), 0},
		{"ReturnedOnDueDay", date(2024, 1, 1), &sameDayLate, date(2024, 3, 1), 0},
		{"OpenOverdue", date(2024, 1, 1), nil, date(2024, 1, 4), 3},
		{"OpenNotDue", date(2024, 1, 10), nil, date(2024, 1, 4), 0},
		{"AcrossMonths", date(2024, 2, 20), nil, date(2024, 3, 1), 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DaysLate(tc.due, tc.returned, tc.today)
			if got != tc.want {
				t.Errorf("DaysLate(%v, %v, %v) = %d, want %d", tc.due, tc.returned, tc.today, got, tc.want)
			}
		})
	}
}

func TestFineAmount(t *testing.T) {
	testCases := []struct {
		days int
		want string
	}{
		{0, "0"},
		{1, "0.25"},
		{10, "2.50"},
		{3, "0.75"},
		{365, "91.25"},
	}

	for _, tc := range testCases {
		got := FineAmount(tc.days)
		require.True(t, got.Equal(decimal.RequireFromString(tc.want)), "FineAmount(%d) = %s, want %s", tc.days, got, tc.want)
	}

	// Repeated assessment of the same lateness must not drift.
	sum := decimal.Zero
	for i := 0; i < 1000; i++ {
		sum = sum.Add(FineAmount(10))
	}

	require.Equal(t, "2500.00", sum.StringFixed(2))
}

func TestDueDate(t *testing.T) {
	out := time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)
	require.Equal(t, date(2024, 1, 15), DueDate(out))
}

func TestCardID(t *testing.T) {
	require.Equal(t, "ID000001", FormatCardID(1))
	require.Equal(t, "ID000042", NextCardID(41))
	require.Equal(t, "ID1000000", NextCardID(999999))

	n, ok := ParseCardID("ID000042")
	require.True(t, ok)
	require.Equal(t, 42, n)

	for _, id := range []string{"", "ID", "XX000001", "IDabc", "ID-00001"} {
		_, ok := ParseCardID(id)
		require.False(t, ok, id)
	}
}

func TestLoanIsOpen(t *testing.T) {
	in := date(2024, 1, 5)

	require.True(t, Loan{}.IsOpen())
	require.False(t, Loan{DateIn: &in}.IsOpen())
}

func TestUnpaidFinesError(t *testing.T) {
	var err error = &UnpaidFinesError{Amount: decimal.RequireFromString("2.5")}

	require.True(t, errors.Is(err, ErrUnpaidFines))
	require.Equal(t, errorspkg.KindConflict, errorspkg.KindOf(err))
	require.Equal(t, "borrower has unpaid fines: $2.50", err.Error())
}

func TestErrorKinds(t *testing.T) {
	testCases := []struct {
		err  error
		want errorspkg.Kind
	}{
		{ErrBorrowerNotFound, errorspkg.KindNotFound},
		{ErrBookNotFound, errorspkg.KindNotFound},
		{ErrLoanNotFound, errorspkg.KindNotFound},
		{ErrNothingToSettle, errorspkg.KindNotFound},
		{ErrLoanLimitReached, errorspkg.KindConflict},
		{ErrCopyUnavailable, errorspkg.KindConflict},
		{ErrOpenLoansWithFines, errorspkg.KindConflict},
		{ErrDuplicateIdentity, errorspkg.KindConflict},
		{ErrInvalidIdentity, errorspkg.KindValidation},
		{ErrNameRequired, errorspkg.KindValidation},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, errorspkg.KindOf(tc.err), tc.err.Error())
	}
}
