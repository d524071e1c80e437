package handler

import "github.com/recomovi/recomovi/internal/domain"

type RecommendationResponse struct {
	Corpus          string                    `json:"corpus"`
	Title           string                    `json:"title"`
	Recommendations []domain.RecommendedMovie `json:"recommendations"`
	Metadata        domain.RecommendationMeta `json:"metadata"`
}

type MoviesResponse struct {
	Corpus string   `json:"corpus"`
	Titles []string `json:"titles"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
