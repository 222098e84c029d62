// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-library/internal/borrowerdelivery"
	"github.com/go-petr/pet-library/internal/borrowerrepo"
	"github.com/go-petr/pet-library/internal/borrowerservice"
	"github.com/go-petr/pet-library/internal/finedelivery"
	"github.com/go-petr/pet-library/internal/finerepo"
	"github.com/go-petr/pet-library/internal/fineservice"
	"github.com/go-petr/pet-library/internal/loandelivery"
	"github.com/go-petr/pet-library/internal/loanrepo"
	"github.com/go-petr/pet-library/internal/loanservice"
	"github.com/go-petr/pet-library/internal/middleware"
	"github.com/go-petr/pet-library/internal/summarydelivery"
	"github.com/go-petr/pet-library/internal/summaryrepo"
	"github.com/go-petr/pet-library/internal/summaryservice"
	"github.com/go-petr/pet-library/pkg/configpkg"
	"github.com/go-petr/pet-library/pkg/identitypkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("identity", identitypkg.ValidIdentity); err != nil {
			return nil, errors.New("cannot register identity validator")
		}
	}

	borrowerService := borrowerservice.New(borrowerrepo.NewRepoPGS(conn), config.StorageTimeout)
	loanService := loanservice.New(loanrepo.NewRepoPGS(conn), config.StorageTimeout)
	fineService := fineservice.New(finerepo.NewRepoPGS(conn), config.StorageTimeout)
	summaryService := summaryservice.New(
		summaryrepo.NewRepoPGS(conn, config.DBDriver),
		borrowerService,
		loanService,
		fineService,
		config.StorageTimeout,
	)

	borrowerHandler := borrowerdelivery.NewHandler(borrowerService)
	loanHandler := loandelivery.NewHandler(loanService)
	fineHandler := finedelivery.NewHandler(fineService)
	summaryHandler := summarydelivery.NewHandler(summaryService)

	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))

	engine.POST("/borrowers", borrowerHandler.Register)
	engine.GET("/borrowers", borrowerHandler.Search)
	engine.GET("/borrowers/:card_id", borrowerHandler.Get)
	engine.GET("/borrowers/:card_id/loans", loanHandler.ListByBorrower)
	engine.GET("/borrowers/:card_id/fines", fineHandler.ListByBorrower)
	engine.POST("/borrowers/:card_id/fines/settle", fineHandler.Settle)
	engine.GET("/borrowers/:card_id/overview", summaryHandler.Overview)

	engine.POST("/loans", loanHandler.Checkout)
	engine.POST("/loans/checkin", loanHandler.Checkin)
	engine.GET("/loans", loanHandler.Search)
	engine.GET("/loans/:id", loanHandler.Get)
	engine.GET("/books/:isbn/loan", loanHandler.GetByBook)

	engine.POST("/fines/reconcile", fineHandler.Reconcile)
	engine.GET("/fines/unpaid", fineHandler.ListUnpaid)

	engine.GET("/summary", summaryHandler.Summary)

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
