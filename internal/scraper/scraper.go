// Package scraper collects MovieRecords from IMDb search-result pages with
// a bounded pool of concurrent fetches, joined back in page order.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/recomovi/recomovi/internal/domain"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	defaultConcurrency  = 4
	defaultPagesPerYear = 5
	resultsPerPage      = 50
	requestTimeout      = 30 * time.Second
)

// acceptLanguage pins English titles regardless of the exit geography.
const acceptLanguage = "en-US, en;q=0.5"

// Params select which search pages to scrape.
type Params struct {
	YearFrom     int      `json:"year_from"`
	YearTo       int      `json:"year_to"`
	MinRating    float64  `json:"min_rating"`
	MaxRating    float64  `json:"max_rating"`
	Genres       []string `json:"genres,omitempty"`
	PagesPerYear int      `json:"pages_per_year"`
}

func (p Params) validate() error {
	if p.YearFrom <= 0 || p.YearTo < p.YearFrom {
		return fmt.Errorf("invalid year range %d-%d", p.YearFrom, p.YearTo)
	}
	return nil
}

type Scraper struct {
	client      *http.Client
	limiter     *rate.Limiter
	concurrency int
}

func New(concurrency int) *Scraper {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Scraper{
		client: &http.Client{Timeout: requestTimeout},
		// One page per second keeps the crawl polite.
		limiter:     rate.NewLimiter(rate.Every(time.Second), 1),
		concurrency: concurrency,
	}
}

// Scrape fetches every search page selected by params and returns the
// parsed records joined in page order. Cancelling the context aborts the
// remaining fetches and returns an error; partial results are discarded.
func (s *Scraper) Scrape(ctx context.Context, p Params) ([]domain.MovieRecord, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	urls := s.urls(p)

	results := make([][]domain.MovieRecord, len(urls))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, u := range urls {
		g.Go(func() error {
			if err := s.limiter.Wait(ctx); err != nil {
				return err
			}
			records, err := s.fetchPage(ctx, u)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", u, err)
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var records []domain.MovieRecord
	for _, page := range results {
		records = append(records, page...)
	}
	return records, nil
}

func (s *Scraper) urls(p Params) []string {
	pages := p.PagesPerYear
	if pages <= 0 {
		pages = defaultPagesPerYear
	}
	var urls []string
	for year := p.YearFrom; year <= p.YearTo; year++ {
		for page := 0; page < pages; page++ {
			start := page*resultsPerPage + 1
			urls = append(urls, SearchURL(year, start, p.MinRating, p.MaxRating, p.Genres))
		}
	}
	return urls
}

func (s *Scraper) fetchPage(ctx context.Context, url string) ([]domain.MovieRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept-Language", acceptLanguage)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return ParseSearchPage(resp.Body)
}
