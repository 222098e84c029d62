//go:build integration

package httpserver_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/internal/integrationtest"
	"github.com/go-petr/pet-library/pkg/errorspkg"
	"github.com/go-petr/pet-library/pkg/web"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type client struct {
	t       *testing.T
	handler http.Handler
}

func (c client) do(method, url string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer

	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			c.t.Fatalf("Encoding request body error: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		c.t.Fatalf("Creating request error: %v", err)
	}

	recorder := httptest.NewRecorder()
	c.handler.ServeHTTP(recorder, req)

	return recorder
}

func decodeData[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var data T

	res := web.Response{Data: &data}
	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	return data
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) web.JSONError {
	t.Helper()

	var res web.JSONError
	if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}

	return res
}

func TestCirculationAPI(t *testing.T) {
	config := integrationtest.LoadConfig(t, integrationtest.ConfigPath)
	server := integrationtest.SetupServer(t, config)
	integrationtest.Flush(t, server.DB)

	c := client{t: t, handler: server}

	book := integrationtest.SeedBook(t, server.DB)

	// Registration assigns sequential card ids.
	var cards []string

	for i := 0; i < 2; i++ {
		arg := integrationtest.RandomBorrowerParams()

		recorder := c.do(http.MethodPost, "/borrowers", arg)
		require.Equal(t, http.StatusCreated, recorder.Code)

		got := decodeData[struct {
			Borrower domain.Borrower `json:"borrower"`
		}](t, recorder)

		cards = append(cards, got.Borrower.CardID)
	}

	require.Equal(t, []string{"ID000001", "ID000002"}, cards)

	recorder := c.do(http.MethodPost, "/borrowers", domain.CreateBorrowerParams{
		IdentityNumber: "123456789",
		Name:           "No Dashes",
		Address:        "1 Elm St",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, errorspkg.KindValidation, decodeError(t, recorder).Kind)

	// The first checkout wins the copy.
	recorder = c.do(http.MethodPost, "/loans", map[string]string{"isbn": book.ISBN, "card_id": cards[0]})
	require.Equal(t, http.StatusCreated, recorder.Code)

	receipt := decodeData[struct {
		Receipt domain.LoanReceipt `json:"receipt"`
	}](t, recorder).Receipt

	today := domain.Date(time.Now())
	require.True(t, domain.DueDate(today).Equal(receipt.DateDue.UTC()) ||
		domain.DueDate(today.AddDate(0, 0, -1)).Equal(receipt.DateDue.UTC()))

	recorder = c.do(http.MethodPost, "/loans", map[string]string{"isbn": book.ISBN, "card_id": cards[1]})
	require.Equal(t, http.StatusConflict, recorder.Code)
	require.Equal(t, web.Error(domain.ErrCopyUnavailable), decodeError(t, recorder))

	recorder = c.do(http.MethodGet, "/books/"+book.ISBN+"/loan", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	// Check-in is idempotent.
	for _, want := range []int64{1, 0} {
		recorder = c.do(http.MethodPost, "/loans/checkin", map[string][]int64{"loan_ids": {receipt.LoanID}})
		require.Equal(t, http.StatusOK, recorder.Code)

		got := decodeData[struct {
			Closed int64 `json:"closed"`
		}](t, recorder)
		require.Equal(t, want, got.Closed)
	}

	recorder = c.do(http.MethodPost, "/loans", map[string]string{"isbn": book.ISBN, "card_id": cards[1]})
	require.Equal(t, http.StatusCreated, recorder.Code)

	// A book returned ten days late.
	old := integrationtest.SeedBook(t, server.DB)
	returned := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
	integrationtest.SeedLoan(t, server.DB, old.ISBN, cards[0], time.Date(2023, 12, 18, 0, 0, 0, 0, time.UTC), &returned)

	recorder = c.do(http.MethodPost, "/fines/reconcile", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	stats := decodeData[struct {
		Stats domain.ReconcileStats `json:"stats"`
	}](t, recorder).Stats
	require.Equal(t, domain.ReconcileStats{Processed: 1, New: 1}, stats)

	recorder = c.do(http.MethodPost, "/loans", map[string]string{"isbn": integrationtest.SeedBook(t, server.DB).ISBN, "card_id": cards[0]})
	require.Equal(t, http.StatusConflict, recorder.Code)
	require.Equal(t, web.JSONError{
		Error: "borrower has unpaid fines: $2.50",
		Kind:  errorspkg.KindConflict,
	}, decodeError(t, recorder))

	recorder = c.do(http.MethodGet, "/borrowers/"+cards[0]+"/overview", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	overview := decodeData[struct {
		Overview domain.BorrowerOverview `json:"overview"`
	}](t, recorder).Overview
	require.False(t, overview.CanCheckout)
	require.Empty(t, overview.OpenLoans)
	require.True(t, decimal.RequireFromString("2.50").Equal(overview.Fines.UnpaidTotal))

	recorder = c.do(http.MethodGet, "/summary", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	summary := decodeData[struct {
		Summary domain.SystemSummary `json:"summary"`
	}](t, recorder).Summary
	require.Equal(t, 1, summary.OpenLoans)
	require.Equal(t, 1, summary.BorrowersWithFines)
	require.Len(t, summary.Borrowers, 1)
	require.Equal(t, cards[0], summary.Borrowers[0].CardID)

	recorder = c.do(http.MethodPost, "/borrowers/"+cards[0]+"/fines/settle", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = c.do(http.MethodPost, "/borrowers/"+cards[0]+"/fines/settle", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	require.Equal(t, web.Error(domain.ErrNothingToSettle), decodeError(t, recorder))

	recorder = c.do(http.MethodGet, "/borrowers/"+cards[0]+"/fines?include_paid=true", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	fines := decodeData[struct {
		Fines domain.BorrowerFines `json:"fines"`
	}](t, recorder).Fines
	require.Len(t, fines.Fines, 1)
	require.True(t, fines.Fines[0].Paid)
	require.True(t, fines.UnpaidTotal.IsZero())
}
