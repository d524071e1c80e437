package domain

// RecommendedMovie is one entry of a recommendation list, joined back to its
// record by title so the UI can show a poster for the IMDb title id.
type RecommendedMovie struct {
	Title       string `json:"title"`
	IMDBTitleID string `json:"imdb_title_id"`
	PosterURL   string `json:"poster_url,omitempty"`
}

type RecommendationMeta struct {
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}

type RecommendationResult struct {
	Movies   []RecommendedMovie
	CacheHit bool
}

type ScrapeResult struct {
	Records int `json:"records"`
}
