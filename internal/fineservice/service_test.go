package fineservice

import (
	"context"
	"testing"
	"time"

	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/pkg/errorspkg"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow     = time.Date(2024, 1, 11, 9, 30, 0, 0, time.UTC)
	equalDecimal = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
)

func newService(repo Repo) *Service {
	s := New(repo, time.Second)
	s.now = func() time.Time { return fixedNow }

	return s
}

func TestReconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	s := newService(repo)

	today := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
	want := domain.ReconcileStats{Processed: 4, New: 2, Updated: 1, SkippedPaid: 1}

	repo.EXPECT().Reconcile(gomock.Any(), gomock.Eq(today)).
		DoAndReturn(func(ctx context.Context, _ time.Time) (domain.ReconcileStats, error) {
			_, ok := ctx.Deadline()
			require.True(t, ok)

			return want, nil
		})

	got, err := s.Reconcile(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)

	repo.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(domain.ReconcileStats{}, errorspkg.ErrConnectivity)

	got, err = s.Reconcile(context.Background())
	require.ErrorIs(t, err, errorspkg.ErrConnectivity)
	require.Zero(t, got)
}

func TestBorrowerFines(t *testing.T) {
	cardID := domain.FormatCardID(7)

	unpaid := domain.FineDetail{Fine: domain.Fine{LoanID: 1, Amount: decimal.RequireFromString("2.50")}}
	unpaid2 := domain.FineDetail{Fine: domain.Fine{LoanID: 2, Amount: decimal.RequireFromString("0.75")}}
	paid := domain.FineDetail{Fine: domain.Fine{LoanID: 3, Amount: decimal.RequireFromString("1.00"), Paid: true}}

	testCases := []struct {
		name        string
		cardID      string
		includePaid bool
		buildStubs  func(repo *MockRepo)
		want        domain.BorrowerFines
		wantErr     error
	}{
		{
			name:   "UnpaidOnly",
			cardID: cardID,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ListByBorrower(gomock.Any(), gomock.Eq(cardID), gomock.Eq(false)).
					Times(1).
					Return([]domain.FineDetail{unpaid, unpaid2}, nil)
			},
			want: domain.BorrowerFines{
				CardID:      cardID,
				Total:       decimal.RequireFromString("3.25"),
				UnpaidTotal: decimal.RequireFromString("3.25"),
				Fines:       []domain.FineDetail{unpaid, unpaid2},
			},
		},
		{
			name:        "IncludePaid",
			cardID:      " " + cardID,
			includePaid: true,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ListByBorrower(gomock.Any(), gomock.Eq(cardID), gomock.Eq(true)).
					Times(1).
					Return([]domain.FineDetail{unpaid, paid}, nil)
			},
			want: domain.BorrowerFines{
				CardID:      cardID,
				Total:       decimal.RequireFromString("3.50"),
				UnpaidTotal: decimal.RequireFromString("2.50"),
				Fines:       []domain.FineDetail{unpaid, paid},
			},
		},
		{
			name:   "NoFines",
			cardID: cardID,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ListByBorrower(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return([]domain.FineDetail{}, nil)
			},
			want: domain.BorrowerFines{CardID: cardID, Fines: []domain.FineDetail{}},
		},
		{
			name:   "BlankCardID",
			cardID: "  ",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ListByBorrower(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrCardIDRequired,
		},
		{
			name:   "ErrInternal",
			cardID: cardID,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().ListByBorrower(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			wantErr: errorspkg.ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			got, err := newService(repo).BorrowerFines(context.Background(), tc.cardID, tc.includePaid)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)

			if diff := cmp.Diff(tc.want, got, equalDecimal); diff != "" {
				t.Errorf("BorrowerFines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSettle(t *testing.T) {
	cardID := domain.FormatCardID(3)

	testCases := []struct {
		name       string
		cardID     string
		buildStubs func(repo *MockRepo)
		want       decimal.Decimal
		wantErr    error
	}{
		{
			name:   "OK",
			cardID: cardID + " ",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Settle(gomock.Any(), gomock.Eq(cardID)).
					Times(1).
					Return(decimal.RequireFromString("3.25"), nil)
			},
			want: decimal.RequireFromString("3.25"),
		},
		{
			name:   "ErrOpenLoansWithFines",
			cardID: cardID,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Settle(gomock.Any(), gomock.Eq(cardID)).
					Times(1).
					Return(decimal.Decimal{}, domain.ErrOpenLoansWithFines)
			},
			wantErr: domain.ErrOpenLoansWithFines,
		},
		{
			name:   "ErrNothingToSettle",
			cardID: cardID,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Settle(gomock.Any(), gomock.Eq(cardID)).
					Times(1).
					Return(decimal.Decimal{}, domain.ErrNothingToSettle)
			},
			wantErr: domain.ErrNothingToSettle,
		},
		{
			name:   "BlankCardID",
			cardID: "",
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Settle(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrCardIDRequired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			got, err := newService(repo).Settle(context.Background(), tc.cardID)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.True(t, got.IsZero())

				return
			}

			require.NoError(t, err)
			require.True(t, tc.want.Equal(got), "got %s", got)
		})
	}
}

func TestReadQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	s := newService(repo)
	ctx := context.Background()
	cardID := domain.FormatCardID(9)

	summary := []domain.UnpaidSummary{
		{CardID: cardID, Name: "Ann Lee", TotalUnpaid: decimal.RequireFromString("4.00"), Count: 2},
	}

	repo.EXPECT().UnpaidSummary(gomock.Any()).Return(summary, nil)
	repo.EXPECT().HasUnpaid(gomock.Any(), gomock.Eq(cardID)).Return(true, nil)
	repo.EXPECT().UnpaidTotal(gomock.Any(), gomock.Eq(cardID)).Return(decimal.RequireFromString("4.00"), nil)

	gotSummary, err := s.AllUnpaidSummary(ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(summary, gotSummary, equalDecimal); diff != "" {
		t.Errorf("AllUnpaidSummary() mismatch (-want +got):\n%s", diff)
	}

	has, err := s.HasUnpaid(ctx, " "+cardID)
	require.NoError(t, err)
	require.True(t, has)

	total, err := s.UnpaidTotal(ctx, cardID)
	require.NoError(t, err)
	require.Equal(t, "4.00", total.StringFixed(2))
}
