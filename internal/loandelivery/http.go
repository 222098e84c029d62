// Package loandelivery manages delivery layer of loans.
package loandelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/pkg/web"
)

// Service provides service layer interface needed by loan delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package loandelivery
type Service interface {
	Checkout(ctx context.Context, isbn, cardID string) (domain.LoanReceipt, error)
	Checkin(ctx context.Context, ids []int64) (int64, error)
	Loan(ctx context.Context, id int64) (domain.LoanDetail, error)
	OpenLoanByISBN(ctx context.Context, isbn string) (domain.LoanDetail, error)
	ListOpen(ctx context.Context, cardID string) ([]domain.LoanDetail, error)
	SearchOpen(ctx context.Context, term string) ([]domain.LoanDetail, error)
}

// Handler facilitates loan delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns loan handler.
func NewHandler(ls Service) Handler {
	return Handler{service: ls}
}

func bindError(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
	gctx.JSON(http.StatusBadRequest, web.BindingError(err))
}

type checkoutRequest struct {
	ISBN   string `json:"isbn" binding:"required,len=10"`
	CardID string `json:"card_id" binding:"required"`
}

type dataReceipt struct {
	Receipt domain.LoanReceipt `json:"receipt"`
}

// Checkout handles http request to lend a book.
func (h *Handler) Checkout(gctx *gin.Context) {
	var req checkoutRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	receipt, err := h.service.Checkout(gctx.Request.Context(), req.ISBN, req.CardID)
	if err != nil {
		gctx.JSON(web.Status(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: dataReceipt{receipt}})
}

type checkinRequest struct {
	LoanIDs []int64 `json:"loan_ids"`
}

type dataCheckin struct {
	Closed int64 `json:"closed"`
}

// Checkin handles http request to return a batch of loans.
func (h *Handler) Checkin(gctx *gin.Context) {
	var req checkinRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	n, err := h.service.Checkin(gctx.Request.Context(), req.LoanIDs)
	if err != nil {
		gctx.JSON(web.Status(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataCheckin{n}})
}

type getRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type dataLoan struct {
	Loan domain.LoanDetail `json:"loan"`
}

// Get handles http request to get a loan.
func (h *Handler) Get(gctx *gin.Context) {
	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	loan, err := h.service.Loan(gctx.Request.Context(), req.ID)
	if err != nil {
		gctx.JSON(web.Status(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataLoan{loan}})
}

type bookRequest struct {
	ISBN string `uri:"isbn" binding:"required"`
}

// GetByBook handles http request to get the open loan of a book.
func (h *Handler) GetByBook(gctx *gin.Context) {
	var req bookRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	loan, err := h.service.OpenLoanByISBN(gctx.Request.Context(), req.ISBN)
	if err != nil {
		gctx.JSON(web.Status(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataLoan{loan}})
}

type dataLoans struct {
	Loans []domain.LoanDetail `json:"loans"`
}

type cardRequest struct {
	CardID string `uri:"card_id" binding:"required"`
}

// ListByBorrower handles http request to list the open loans of a borrower.
func (h *Handler) ListByBorrower(gctx *gin.Context) {
	var req cardRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	loans, err := h.service.ListOpen(gctx.Request.Context(), req.CardID)
	if err != nil {
		gctx.JSON(web.Status(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataLoans{loans}})
}

type searchRequest struct {
	Query string `form:"q"`
}

// Search handles http request to search open loans.
func (h *Handler) Search(gctx *gin.Context) {
	var req searchRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		bindError(gctx, err)
		return
	}

	loans, err := h.service.SearchOpen(gctx.Request.Context(), req.Query)
	if err != nil {
		gctx.JSON(web.Status(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataLoans{loans}})
}
