package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/recomovi/recomovi/internal/domain"
)

// GET /corpora/{corpus}/movies
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	sel, err := domain.ParseCorpusSelector(chi.URLParam(r, "corpus"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Unknown corpus, use default or custom")
		return
	}

	titles, err := h.service.Titles(sel)
	if err != nil {
		if errors.Is(err, domain.ErrCorpusUnavailable) {
			writeError(w, http.StatusConflict, "corpus_unavailable",
				"No custom data yet, please scrape first")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, MoviesResponse{Corpus: string(sel), Titles: titles})
}

// GET /corpora/{corpus}/export
func (h *Handler) ExportCorpus(w http.ResponseWriter, r *http.Request) {
	sel, err := domain.ParseCorpusSelector(chi.URLParam(r, "corpus"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Unknown corpus, use default or custom")
		return
	}

	// Resolve the corpus before touching headers so an unavailable custom
	// corpus still gets a JSON error.
	if _, err := h.service.Titles(sel); err != nil {
		if errors.Is(err, domain.ErrCorpusUnavailable) {
			writeError(w, http.StatusConflict, "corpus_unavailable",
				"No custom data yet, please scrape first")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="dataset.csv"`)
	if err := h.service.ExportRecords(sel, w); err != nil {
		log.Printf("[handler] export failed: %v", err)
	}
}
