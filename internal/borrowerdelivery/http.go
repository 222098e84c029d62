// Package borrowerdelivery manages delivery layer of borrowers.
package borrowerdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-library/internal/domain"
	"github.com/go-petr/pet-library/pkg/web"
)

// Service provides service layer interface needed by borrower delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package borrowerdelivery
type Service interface {
	Register(ctx context.Context, arg domain.CreateBorrowerParams) (domain.Borrower, error)
	Get(ctx context.Context, cardID string) (domain.Borrower, error)
	Search(ctx context.Context, term string) ([]domain.Borrower, error)
}

// Handler facilitates borrower delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns borrower handler.
func NewHandler(bs Service) Handler {
	return Handler{service: bs}
}

type data struct {
	Borrower domain.Borrower `json:"borrower"`
}

type createRequest struct {
	IdentityNumber string `json:"identity_number" binding:"required,identity"`
	Name           string `json:"name" binding:"required"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email" binding:"omitempty,email"`
	Address        string `json:"address" binding:"required"`
	Phone          string `json:"phone"`
}

// Register handles http request to register a borrower.
func (h *Handler) Register(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	arg := domain.CreateBorrowerParams{
		IdentityNumber: req.IdentityNumber,
		Name:           req.Name,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Address:        req.Address,
		Phone:          req.Phone,
	}

	b, err := h.service.Register(ctx, arg)
	if err != nil {
		gctx.JSON(web.Status(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: data{b}})
}

type cardRequest struct {
	CardID string `uri:"card_id" binding:"required"`
}

// Get handles http request to get a borrower.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req cardRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	b, err := h.service.Get(ctx, req.CardID)
	if err != nil {
		gctx.JSON(web.Status(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: data{b}})
}

type searchRequest struct {
	Query string `form:"q"`
}

type dataBorrowers struct {
	Borrowers []domain.Borrower `json:"borrowers"`
}

// Search handles http request to search borrowers by name, identity number or card id.
func (h *Handler) Search(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req searchRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindingError(err))

		return
	}

	borrowers, err := h.service.Search(ctx, req.Query)
	if err != nil {
		gctx.JSON(web.Status(err), web.Error(err))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: dataBorrowers{borrowers}})
}
