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
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	// routes behind the bearer-token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users", h.listUsers)
		r.Get("/users/{username}", h.getUser)
		r.Get("/users/{username}/to", h.messagesTo)
		r.Get("/users/{username}/from", h.messagesFrom)

		r.Post("/messages", h.sendMessage)
		r.Get("/messages/{id}", h.getMessage)
		r.Post("/messages/{id}/read", h.markMessageRead)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
