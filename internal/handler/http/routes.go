package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// task board
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/", h.showBoard)
		r.Post("/items", h.addItem)
		r.Post("/items/{id}/complete", h.completeItem)
		r.Post("/items/{id}/translate", h.translateItem)
		r.Post("/items/{id}/delete", h.deleteItem)
		r.Post("/language", h.selectLanguage)
		r.Post("/session/reset", h.resetSession)
	})

	// JSON API
	router.Route("/api", func(r chi.Router) {
		r.Get("/items", h.listItems)
		r.Post("/items", h.createItem)
		r.Get("/items/{id}", h.getItem)
		r.Patch("/items/{id}", h.updateItem)
		r.Delete("/items/{id}", h.removeItem)

		r.Post("/translate", h.translate)
		r.Get("/languages", h.getLanguages)
		r.Get("/version", h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
