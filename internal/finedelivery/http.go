// Package finedelivery manages delivery layer of fines.
package finedelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/pkg/web"
)

// Service provides service layer interface needed by fine delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package finedelivery
type Service interface {
	Reconcile(ctx context.Context) (domain.ReconcileStats, error)
	BorrowerFines(ctx context.Context, cardID string, includePaid bool) (domain.BorrowerFines, error)
	AllUnpaidSummary(ctx context.Context) ([]domain.UnpaidSummary, error)
	Settle(ctx context.Context, cardID string) (decimal.Decimal, error)
}

// Handler facilitates fine delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns fine handler.
func NewHandler(fs Service) Handler {
	return Handler{service: fs}
}

type dataStats struct {
	Stats domain.ReconcileStats `json:"stats"`
}

// Reconcile handles http request to recompute the fines of late loans.
func (h *Handler) Reconcile(gctx *gin.Context) {
	stats, err := h.service.Reconcile(gctx.Request.Context())
	if err != nil {
		gctx.JSON(web.Status(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataStats{stats}})
}

type dataUnpaid struct {
	Borrowers []domain.UnpaidSummary `json:"borrowers"`
}

// ListUnpaid handles http request to list the borrowers owing fines.
func (h *Handler) ListUnpaid(gctx *gin.Context) {
	summary, err := h.service.AllUnpaidSummary(gctx.Request.Context())
	if err != nil {
		gctx.JSON(web.Status(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataUnpaid{summary}})
}

type cardRequest struct {
	CardID string `uri:"card_id" binding:"required"`
}

type listRequest struct {
	IncludePaid bool `form:"include_paid"`
}

type dataFines struct {
	Fines domain.BorrowerFines `json:"fines"`
}

// ListByBorrower handles http request to list the fines of a borrower.
func (h *Handler) ListByBorrower(gctx *gin.Context) {
	l := zerolog.Ctx(gctx.Request.Context())

	var uri cardRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	fines, err := h.service.BorrowerFines(gctx.Request.Context(), uri.CardID, req.IncludePaid)
	if err != nil {
		gctx.JSON(web.Status(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataFines{fines}})
}

type dataSettle struct {
	CardID string          `json:"card_id"`
	Paid   decimal.Decimal `json:"paid"`
}

// Settle handles http request to pay every unpaid fine of a borrower.
func (h *Handler) Settle(gctx *gin.Context) {
	var uri cardRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	paid, err := h.service.Settle(gctx.Request.Context(), uri.CardID)
	if err != nil {
		gctx.JSON(web.Status(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataSettle{CardID: uri.CardID, Paid: paid}})
}
