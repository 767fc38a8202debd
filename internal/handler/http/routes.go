package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const transactionsPath = "/api/transactions"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get(transactionsPath, h.listTransactions)
		r.Post(transactionsPath, h.upsertTransaction)
		r.Delete(transactionsPath, h.deleteTransaction)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
