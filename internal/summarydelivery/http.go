// Package summarydelivery manages delivery layer of circulation summaries.
package summarydelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/pkg/web"
)

// Service provides service layer interface needed by summary delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package summarydelivery
type Service interface {
	BorrowerOverview(ctx context.Context, cardID string) (domain.BorrowerOverview, error)
	SystemSummary(ctx context.Context) (domain.SystemSummary, error)
}

// Handler facilitates summary delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns summary handler.
func NewHandler(ss Service) Handler {
	return Handler{service: ss}
}

type cardRequest struct {
	CardID string `uri:"card_id" binding:"required"`
}

type dataOverview struct {
	Overview domain.BorrowerOverview `json:"overview"`
}

// Overview handles http request to show a borrower with loans and fines.
func (h *Handler) Overview(gctx *gin.Context) {
	var req cardRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	overview, err := h.service.BorrowerOverview(gctx.Request.Context(), req.CardID)
	if err != nil {
		gctx.JSON(web.Status(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataOverview{overview}})
}

type dataSummary struct {
	Summary domain.SystemSummary `json:"summary"`
}

// Summary handles http request to show the library wide counters.
func (h *Handler) Summary(gctx *gin.Context) {
	summary, err := h.service.SystemSummary(gctx.Request.Context())
	if err != nil {
		gctx.JSON(web.Status(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataSummary{summary}})
}
