package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/costperday/costperday/internal/http/export"
	"github.com/costperday/costperday/internal/http/importjson"
	"github.com/costperday/costperday/internal/http/item"
	"github.com/costperday/costperday/internal/http/setting"
)

func New(
	itemsV1 *item.Handler,
	settingsV1 *setting.Handler,
	exportV1 *export.Handler,
	importV1 *importjson.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(requestLogger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "https://localhost:*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			itemsV1.Routes(r)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			settingsV1.Routes(r)
		})

		r.Route("/export", exportV1.Routes)

		r.Route("/import", importV1.Routes)
	})

	return router
}
