//go:build integration

package borrowerrepo_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/go-petr/pet-library/internal/borrowerrepo"
	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/internal/integrationtest"
	"github.com/go-petr/pet-library/pkg/configpkg"
	"github.com/go-petr/pet-library/pkg/identitypkg"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var config configpkg.Config

func TestMain(m *testing.M) {
	var err error

	config, err = configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	os.Exit(m.Run())
}

func normalizedParams() domain.CreateBorrowerParams {
	arg := integrationtest.RandomBorrowerParams()
	arg.IdentityNumber = identitypkg.Normalize(arg.IdentityNumber)

	return arg
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name    string
		prepare func(tx *sql.Tx) (string, domain.CreateBorrowerParams)
		wantErr error
	}{
		{
			name: "OK",
			prepare: func(tx *sql.Tx) (string, domain.CreateBorrowerParams) {
				return domain.FormatCardID(1), normalizedParams()
			},
		},
		{
			name: "OptionalFieldsEmpty",
			prepare: func(tx *sql.Tx) (string, domain.CreateBorrowerParams) {
				arg := normalizedParams()
				arg.FirstName, arg.LastName, arg.Email, arg.Phone = "", "", "", ""

				return domain.FormatCardID(2), arg
			},
		},
		{
			name: "ConstraintViolation:borrowers_ssn_key",
			prepare: func(tx *sql.Tx) (string, domain.CreateBorrowerParams) {
				existing := integrationtest.SeedBorrower(t, tx)
				arg := normalizedParams()
				arg.IdentityNumber = existing.IdentityNumber

				return domain.FormatCardID(1_000_000), arg
			},
			wantErr: domain.ErrDuplicateIdentity,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, config)
			cardID, arg := tc.prepare(tx)
			repo := borrowerrepo.NewTxRepoPGS(tx)

			got, err := repo.Create(context.Background(), cardID, arg)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)

			want := domain.Borrower{
				CardID:         cardID,
				IdentityNumber: arg.IdentityNumber,
				Name:           arg.Name,
				FirstName:      arg.FirstName,
				LastName:       arg.LastName,
				Email:          arg.Email,
				Address:        arg.Address,
				Phone:          arg.Phone,
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("repo.Create() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGet(t *testing.T) {
	tx := integrationtest.SetupTX(t, config)
	repo := borrowerrepo.NewTxRepoPGS(tx)
	want := integrationtest.SeedBorrower(t, tx)

	got, err := repo.Get(context.Background(), want.CardID)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("repo.Get() mismatch (-want +got):\n%s", diff)
	}

	_, err = repo.Get(context.Background(), "ID999999999")
	require.ErrorIs(t, err, domain.ErrBorrowerNotFound)

	exists, err := repo.Exists(context.Background(), want.CardID)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.Exists(context.Background(), "ID999999999")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestSearch(t *testing.T) {
	tx := integrationtest.SetupTX(t, config)
	repo := borrowerrepo.NewTxRepoPGS(tx)
	b := integrationtest.SeedBorrower(t, tx)
	other := integrationtest.SeedBorrower(t, tx)

	dashed := b.IdentityNumber[:3] + "-" + b.IdentityNumber[3:5] + "-" + b.IdentityNumber[5:]

	testCases := []struct {
		name       string
		term       string
		normalized string
	}{
		{"ByName", b.Name[2:6], ""},
		{"ByNameCaseInsensitive", strings.ToUpper(b.LastName), ""},
		{"ByIdentity", b.IdentityNumber[1:8], identitypkg.Normalize(b.IdentityNumber[1:8])},
		{"ByDashedIdentity", dashed, identitypkg.Normalize(dashed)},
		{"ByCardID", b.CardID, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.Search(context.Background(), tc.term, tc.normalized)
			require.NoError(t, err)
			require.Contains(t, got, b)
		})
	}

	got, err := repo.Search(context.Background(), "no borrower matches this", "")
	require.NoError(t, err)
	require.Empty(t, got)
	require.NotContains(t, got, other)
}

func TestRegister(t *testing.T) {
	db := integrationtest.SetupDB(t, config)
	integrationtest.Flush(t, db)

	repo := borrowerrepo.NewRepoPGS(db)
	ctx := context.Background()

	first, err := repo.Register(ctx, normalizedParams())
	require.NoError(t, err)
	require.Equal(t, domain.FormatCardID(1), first.CardID)

	// The next id follows the highest one, gaps are kept.
	_, err = borrowerrepo.NewTxRepoPGS(db).Create(ctx, domain.FormatCardID(41), normalizedParams())
	require.NoError(t, err)

	second, err := repo.Register(ctx, normalizedParams())
	require.NoError(t, err)
	require.Equal(t, domain.FormatCardID(42), second.CardID)

	dup := normalizedParams()
	dup.IdentityNumber = first.IdentityNumber

	_, err = repo.Register(ctx, dup)
	require.ErrorIs(t, err, domain.ErrDuplicateIdentity)
}

func TestRegisterConcurrent(t *testing.T) {
	db := integrationtest.SetupDB(t, config)
	integrationtest.Flush(t, db)
	repo := borrowerrepo.NewRepoPGS(db)

	const n = 10

	var wg sync.WaitGroup

	ids := make(chan string, n)
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			b, err := repo.Register(context.Background(), normalizedParams())
			if err != nil {
				errs <- err
				return
			}

			ids <- b.CardID
		}()
	}

	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	seen := map[string]bool{}
	for id := range ids {
		require.False(t, seen[id], "card id %s assigned twice", id)
		seen[id] = true
	}

	require.Len(t, seen, n)
	require.True(t, seen[domain.FormatCardID(n)])
}
