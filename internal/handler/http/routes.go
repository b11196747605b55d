package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/users/register", h.register)
		r.Post("/api/v1/users/login", h.login)
		r.Get("/api/version", h.appVersion)
	})

	// routes behind the access-token check
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/v1/users/logout", h.logout)
	})

	return router
}
