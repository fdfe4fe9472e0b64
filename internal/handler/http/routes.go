package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for JSON responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(compressionLevel, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/records", h.listRecords)
		r.Post("/api/records", h.createRecord)
		r.Delete("/api/records/{id}", h.deleteRecord)

		r.Get("/api/vitals", h.listVitals)
		r.Post("/api/vitals", h.createVital)

		r.Get("/api/reminders", h.listReminders)
		r.Post("/api/reminders", h.createReminder)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
