package domain

// MovieRecord is one scraped title. Genre, Directors, Stars and Description
// may be empty; Metascore, Certificate and Runtime are optional on IMDb
// listing pages.
type MovieRecord struct {
	IMDBTitleID string   `json:"imdb_title_id"`
	Title       string   `json:"title"`
	Year        int      `json:"year"`
	Genre       []string `json:"genre,omitempty"`
	Directors   []string `json:"directors,omitempty"`
	Stars       []string `json:"stars,omitempty"`
	Description string   `json:"description,omitempty"`
	IMDBRating  float64  `json:"imdb_rating"`
	RatingCount int      `json:"rating_count"`
	Metascore   *int     `json:"metascore,omitempty"`
	Certificate string   `json:"certificate,omitempty"`
	Runtime     string   `json:"runtime,omitempty"`
}
