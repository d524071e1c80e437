package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/recomovi/recomovi/internal/handler"
)

func Setup(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Get("/corpora/{corpus}/recommendations", h.GetRecommendations)
		r.Get("/corpora/{corpus}/movies", h.ListMovies)
		r.Get("/corpora/{corpus}/export", h.ExportCorpus)
	})

	// Scrapes run for minutes; no request timeout here.
	r.Post("/scrape", h.Scrape)
	r.Get("/health", healthCheck)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
