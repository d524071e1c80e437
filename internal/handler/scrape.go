package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/recomovi/recomovi/internal/domain"
	"github.com/recomovi/recomovi/internal/scraper"
)

// POST /scrape
func (h *Handler) Scrape(w http.ResponseWriter, r *http.Request) {
	var params scraper.Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid scrape parameters")
		return
	}
	if params.YearFrom <= 0 || params.YearTo < params.YearFrom {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid year range")
		return
	}

	result, err := h.service.ScrapeAndRebuild(r.Context(), params)
	if err != nil {
		if errors.Is(err, domain.ErrScrapeInProgress) {
			writeError(w, http.StatusConflict, "scrape_in_progress",
				"A scrape is already running, try again later")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
