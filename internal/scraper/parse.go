package scraper

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/recomovi/recomovi/internal/domain"
)

// ParseSearchPage extracts one MovieRecord per listing container of an IMDb
// search-result page. Containers without a rating are skipped; every other
// field is optional and degrades to its zero value when the tag is absent.
func ParseSearchPage(r io.Reader) ([]domain.MovieRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse search page: %w", err)
	}

	var records []domain.MovieRecord
	doc.Find("div.lister-item.mode-advanced").Each(func(_ int, item *goquery.Selection) {
		rating := strings.TrimSpace(item.Find("strong").First().Text())
		if rating == "" {
			return
		}

		var rec domain.MovieRecord
		rec.IMDBRating, _ = strconv.ParseFloat(rating, 64)

		if href, ok := item.Find("h3 a").First().Attr("href"); ok {
			rec.IMDBTitleID = titleIDFromHref(href)
		}
		rec.Title = strings.TrimSpace(item.Find("h3 a").First().Text())
		rec.Year = parseYear(item.Find("h3 span.lister-item-year").First().Text())
		rec.Certificate = strings.TrimSpace(item.Find("span.certificate").First().Text())
		rec.Genre = splitNames(item.Find("span.genre").First().Text())
		rec.Runtime = strings.TrimSpace(item.Find("span.runtime").First().Text())

		// The second text-muted paragraph is the plot blurb; the first one
		// repeats certificate, runtime and genre.
		if desc := item.Find("p.text-muted").Eq(1); desc.Length() > 0 {
			rec.Description = strings.TrimSpace(desc.Text())
		}

		if ms := strings.TrimSpace(item.Find("span.metascore").First().Text()); ms != "" {
			if v, err := strconv.Atoi(ms); err == nil {
				rec.Metascore = &v
			}
		}
		if votes, ok := item.Find(`span[name="nv"]`).First().Attr("data-value"); ok {
			rec.RatingCount, _ = strconv.Atoi(votes)
		}

		rec.Directors, rec.Stars = parseCredits(creditText(item))
		records = append(records, rec)
	})
	return records, nil
}

// creditText finds the unclassed paragraph carrying the director/star
// credit block.
func creditText(item *goquery.Selection) string {
	credit := item.Find("p").FilterFunction(func(_ int, p *goquery.Selection) bool {
		return p.AttrOr("class", "") == ""
	}).First()
	return credit.Text()
}

// parseCredits splits a credit block into directors and stars. The block
// comes in three shapes: "Director: X | Stars: A, B", "Directors: X, Y |
// Stars: A, B", or a bare cast list with no label at all.
func parseCredits(text string) (directors, stars []string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	for _, part := range strings.Split(text, "|") {
		label, names, found := strings.Cut(part, ":")
		if !found {
			// No label: the whole block is a cast list.
			stars = append(stars, splitNames(part)...)
			continue
		}
		switch {
		case strings.Contains(label, "Director"):
			directors = append(directors, splitNames(names)...)
		case strings.Contains(label, "Star"):
			stars = append(stars, splitNames(names)...)
		}
	}
	return directors, stars
}

func splitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.Join(strings.Fields(name), " "); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func titleIDFromHref(href string) string {
	// "/title/tt0111161/" -> "tt0111161"
	parts := strings.Split(href, "/")
	for _, p := range parts {
		if strings.HasPrefix(p, "tt") {
			return p
		}
	}
	return ""
}

// parseYear strips the parentheses (and any "(I) (1995)" numeral prefix)
// from a lister-item year span.
func parseYear(s string) int {
	s = strings.NewReplacer("(", "", ")", "").Replace(strings.TrimSpace(s))
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	year, _ := strconv.Atoi(fields[len(fields)-1])
	return year
}
