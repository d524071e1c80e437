package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/recomovi/recomovi/internal/domain"
)

// GET /corpora/{corpus}/recommendations?title=...&limit=...
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	sel, err := domain.ParseCorpusSelector(chi.URLParam(r, "corpus"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Unknown corpus, use default or custom")
		return
	}

	title := r.URL.Query().Get("title")
	if title == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Missing title parameter")
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 50 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	result, err := h.service.GetRecommendations(r.Context(), sel, title, limit)
	if err != nil {
		// Movie not in dataset
		if errors.Is(err, domain.ErrTitleNotFound) {
			writeError(w, http.StatusNotFound, "title_not_found", "Movie not in dataset")
			return
		}
		// No custom data yet
		if errors.Is(err, domain.ErrCorpusUnavailable) {
			writeError(w, http.StatusConflict, "corpus_unavailable",
				"No custom data yet, please scrape first")
			return
		}
		// Request timeout
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			writeError(w, http.StatusServiceUnavailable, "request_timeout",
				"Request timed out, please try again")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	resp := RecommendationResponse{
		Corpus:          string(sel),
		Title:           title,
		Recommendations: result.Movies,
		Metadata: domain.RecommendationMeta{
			CacheHit:    result.CacheHit,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			TotalCount:  len(result.Movies),
		},
	}

	writeJSON(w, http.StatusOK, resp)
}
