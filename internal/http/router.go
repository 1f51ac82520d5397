package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/PBSGlenn/ledgerhound/internal/http/account"
	"github.com/PBSGlenn/ledgerhound/internal/http/reconcile"
)

func New(
	accountsV1 *account.Handler,
	reconcileV1 *reconcile.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounts", accountsV1.Routes)

		r.Route("/reconcile", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			reconcileV1.Routes(r)
		})
	})

	return router
}
