package borrowerservice

import (
	"context"
	"testing"
	"time"

	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/pkg/errorspkg"
	"github.com/go-petr/pet-library/pkg/randompkg"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func randomParams() domain.CreateBorrowerParams {
	return domain.CreateBorrowerParams{
		IdentityNumber: randompkg.IdentityNumber(),
		Name:           randompkg.Name(),
		Email:          randompkg.Email(),
		Address:        randompkg.Address(),
		Phone:          randompkg.Phone(),
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(arg *domain.CreateBorrowerParams)
		wantErr error
	}{
		{"OK", func(arg *domain.CreateBorrowerParams) {}, nil},
		{"BlankName", func(arg *domain.CreateBorrowerParams) { arg.Name = "  " }, domain.ErrNameRequired},
		{"BlankIdentity", func(arg *domain.CreateBorrowerParams) { arg.IdentityNumber = "" }, domain.ErrIdentityRequired},
		{"BlankAddress", func(arg *domain.CreateBorrowerParams) { arg.Address = "\t" }, domain.ErrAddressRequired},
		{"DigitsOnlyIdentity", func(arg *domain.CreateBorrowerParams) { arg.IdentityNumber = "123456789" }, domain.ErrInvalidIdentity},
		{"ShortIdentity", func(arg *domain.CreateBorrowerParams) { arg.IdentityNumber = "12-345-6789" }, domain.ErrInvalidIdentity},
		{"NameCheckedFirst", func(arg *domain.CreateBorrowerParams) {
			arg.Name, arg.IdentityNumber, arg.Address = "", "", ""
		}, domain.ErrNameRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			arg := randomParams()
			tc.mutate(&arg)

			require.Equal(t, tc.wantErr, Validate(arg))
		})
	}
}

func TestRegister(t *testing.T) {
	arg := randomParams()
	arg.Name = "  " + arg.Name + " "

	normalized := domain.CreateBorrowerParams{
		IdentityNumber: arg.IdentityNumber[:3] + arg.IdentityNumber[4:6] + arg.IdentityNumber[7:],
		Name:           arg.Name[2 : len(arg.Name)-1],
		Email:          arg.Email,
		Address:        arg.Address,
		Phone:          arg.Phone,
	}

	registered := domain.Borrower{
		CardID:         domain.FormatCardID(7),
		IdentityNumber: normalized.IdentityNumber,
		Name:           normalized.Name,
		Email:          normalized.Email,
		Address:        normalized.Address,
		Phone:          normalized.Phone,
	}

	testCases := []struct {
		name          string
		arg           domain.CreateBorrowerParams
		buildStubs    func(repo *MockRepo)
		checkResponse func(got domain.Borrower, err error)
	}{
		{
			name: "OK",
			arg:  arg,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Register(gomock.Any(), gomock.Eq(normalized)).
					Times(1).
					Return(registered, nil)
			},
			checkResponse: func(got domain.Borrower, err error) {
				require.NoError(t, err)

				if diff := cmp.Diff(registered, got); diff != "" {
					t.Errorf("Register() mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "InvalidIdentity",
			arg: domain.CreateBorrowerParams{
				IdentityNumber: "123456789",
				Name:           arg.Name,
				Address:        arg.Address,
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Register(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(got domain.Borrower, err error) {
				require.Empty(t, got)
				require.ErrorIs(t, err, domain.ErrInvalidIdentity)
			},
		},
		{
			name: "ErrDuplicateIdentity",
			arg:  arg,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Register(gomock.Any(), gomock.Eq(normalized)).
					Times(1).
					Return(domain.Borrower{}, domain.ErrDuplicateIdentity)
			},
			checkResponse: func(got domain.Borrower, err error) {
				require.Empty(t, got)
				require.ErrorIs(t, err, domain.ErrDuplicateIdentity)
			},
		},
		{
			name: "ErrConnectivity",
			arg:  arg,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Register(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Borrower{}, errorspkg.ErrConnectivity)
			},
			checkResponse: func(got domain.Borrower, err error) {
				require.Empty(t, got)
				require.Equal(t, errorspkg.KindConnectivity, errorspkg.KindOf(err))
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			s := New(repo, time.Second)
			got, err := s.Register(context.Background(), tc.arg)
			tc.checkResponse(got, err)
		})
	}
}

func TestRegisterAppliesTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().Register(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(ctx context.Context, arg domain.CreateBorrowerParams) (domain.Borrower, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			require.WithinDuration(t, time.Now().Add(time.Minute), deadline, time.Second)

			return domain.Borrower{CardID: domain.FormatCardID(1)}, nil
		})

	s := New(repo, time.Minute)

	_, err := s.Register(context.Background(), randomParams())
	require.NoError(t, err)
}

func TestGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	want := domain.Borrower{CardID: domain.FormatCardID(3), Name: randompkg.Name()}

	repo.EXPECT().Get(gomock.Any(), gomock.Eq(want.CardID)).Times(1).Return(want, nil)
	repo.EXPECT().Get(gomock.Any(), gomock.Eq("ID404404")).Times(1).Return(domain.Borrower{}, domain.ErrBorrowerNotFound)

	s := New(repo, time.Second)

	got, err := s.Get(context.Background(), " "+want.CardID+" ")
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = s.Get(context.Background(), "ID404404")
	require.ErrorIs(t, err, domain.ErrBorrowerNotFound)

	_, err = s.Get(context.Background(), " ")
	require.ErrorIs(t, err, domain.ErrCardIDRequired)
}

func TestSearch(t *testing.T) {
	testCases := []struct {
		name           string
		term           string
		wantTerm       string
		wantNormalized string
	}{
		{"Name", " Smith ", "Smith", ""},
		{"DashedIdentity", "123-45-6789", "123-45-6789", "123456789"},
		{"DigitsIdentity", "123456789", "123456789", ""},
		{"CardID", "ID000001", "ID000001", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			repo.EXPECT().Search(gomock.Any(), gomock.Eq(tc.wantTerm), gomock.Eq(tc.wantNormalized)).
				Times(1).
				Return([]domain.Borrower{}, nil)

			got, err := New(repo, time.Second).Search(context.Background(), tc.term)
			require.NoError(t, err)
			require.Empty(t, got)
		})
	}
}
