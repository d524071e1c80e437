package scraper

import (
	"fmt"
	"strconv"
	"strings"
)

const searchBaseURL = "https://www.imdb.com/search/title/?title_type=feature&languages=en"

// SearchURL builds an IMDb advanced-search URL for one result page of one
// release year, sorted by vote count so the most popular titles come first.
// Page numbering follows IMDb's start offsets (1, 51, 101, ...).
func SearchURL(year, start int, minRating, maxRating float64, genres []string) string {
	var b strings.Builder
	b.WriteString(searchBaseURL)

	if minRating > 0 || maxRating > 0 {
		b.WriteString("&user_rating=")
		b.WriteString(formatRating(minRating))
		b.WriteString(",")
		b.WriteString(formatRating(maxRating))
	}

	b.WriteString("&release_date=")
	b.WriteString(strconv.Itoa(year))
	b.WriteString("&sort=num_votes,desc")
	b.WriteString(fmt.Sprintf("&start=%d", start))

	if len(genres) > 0 {
		b.WriteString("&genres=")
		b.WriteString(strings.Join(genres, ","))
	}
	return b.String()
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
