package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/recomovi/recomovi/internal/cache"
	"github.com/recomovi/recomovi/internal/corpus"
	"github.com/recomovi/recomovi/internal/dataset"
	"github.com/recomovi/recomovi/internal/domain"
	"github.com/recomovi/recomovi/internal/feature"
	"github.com/recomovi/recomovi/internal/omdb"
	"github.com/recomovi/recomovi/internal/repository"
	"github.com/recomovi/recomovi/internal/scraper"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

type Service struct {
	store   *corpus.Store
	repo    *repository.Repository
	cache   *cache.Cache
	scraper *scraper.Scraper
	posters *omdb.Client
	weights feature.Weights

	// One scrape/rebuild at a time; the published corpora stay valid
	// throughout.
	scrapeMu sync.Mutex
}

func New(store *corpus.Store, repo *repository.Repository, cache *cache.Cache,
	sc *scraper.Scraper, posters *omdb.Client, weights feature.Weights) *Service {
	return &Service{
		store:   store,
		repo:    repo,
		cache:   cache,
		scraper: sc,
		posters: posters,
		weights: weights,
	}
}

// GetRecommendations returns the movies most similar to a title from the
// selected corpus, cache-aside over Redis.
func (s *Service) GetRecommendations(ctx context.Context, sel domain.CorpusSelector, title string, limit int) (*domain.RecommendationResult, error) {
	if limit <= 0 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}

	c, err := s.store.Active(sel)
	if err != nil {
		return nil, err
	}

	cacheHit := false
	var titles []string
	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, sel, title, limit)
		if err != nil {
			log.Printf("[service] cache get error for %q: %v", title, err)
		}
		if found {
			titles = cached
			cacheHit = true
		}
	}

	if !cacheHit {
		titles, err = c.Recommend(title, limit)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			if cacheErr := s.cache.Set(ctx, sel, title, limit, titles); cacheErr != nil {
				log.Printf("[service] cache set error for %q: %v", title, cacheErr)
			}
		}
	}

	return &domain.RecommendationResult{
		Movies:   s.resolveMovies(ctx, c, titles),
		CacheHit: cacheHit,
	}, nil
}

// resolveMovies joins recommended titles back to their records and, when an
// OMDb key is configured, attaches poster URLs. Lookup failures only cost
// the poster.
func (s *Service) resolveMovies(ctx context.Context, c *corpus.Corpus, titles []string) []domain.RecommendedMovie {
	movies := make([]domain.RecommendedMovie, 0, len(titles))
	for _, title := range titles {
		movie := domain.RecommendedMovie{Title: title}
		if rec, ok := c.Record(title); ok {
			movie.IMDBTitleID = rec.IMDBTitleID
		}
		if s.posters.Enabled() && movie.IMDBTitleID != "" {
			info, err := s.posters.Lookup(ctx, movie.IMDBTitleID)
			if err != nil {
				log.Printf("[service] poster lookup failed for %s: %v", movie.IMDBTitleID, err)
			} else {
				movie.PosterURL = info.PosterURL
			}
		}
		movies = append(movies, movie)
	}
	return movies
}

// Titles lists the selectable titles of a corpus in row order.
func (s *Service) Titles(sel domain.CorpusSelector) ([]string, error) {
	c, err := s.store.Active(sel)
	if err != nil {
		return nil, err
	}
	return c.Titles(), nil
}

// ExportRecords streams a corpus's raw-records table as CSV.
func (s *Service) ExportRecords(sel domain.CorpusSelector, w io.Writer) error {
	c, err := s.store.Active(sel)
	if err != nil {
		return err
	}
	return dataset.WriteRecords(w, c.Records)
}

// ScrapeAndRebuild runs a scrape and replaces the custom corpus with the
// result. The new corpus is built and persisted off to the side and only
// then published, so readers never observe a partial state; on any failure
// the previously published corpus stays live.
func (s *Service) ScrapeAndRebuild(ctx context.Context, p scraper.Params) (*domain.ScrapeResult, error) {
	if !s.scrapeMu.TryLock() {
		return nil, domain.ErrScrapeInProgress
	}
	defer s.scrapeMu.Unlock()

	records, err := s.scraper.Scrape(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("scrape: %w", err)
	}
	log.Printf("[service] scraped %d records", len(records))

	return s.rebuildCustom(ctx, records)
}

func (s *Service) rebuildCustom(ctx context.Context, records []domain.MovieRecord) (*domain.ScrapeResult, error) {
	c := corpus.Build(records, s.weights)

	if s.repo != nil {
		if err := s.repo.ReplaceCorpus(ctx, domain.CorpusCustom, c.Records, c.Bags); err != nil {
			return nil, fmt.Errorf("persist custom corpus: %w", err)
		}
	}

	s.store.SetCustom(c)

	if s.cache != nil {
		if err := s.cache.ClearCorpus(ctx, domain.CorpusCustom); err != nil {
			log.Printf("[service] cache invalidation error: %v", err)
		}
	}

	log.Printf("[service] custom corpus rebuilt with %d movies", c.Size())
	return &domain.ScrapeResult{Records: c.Size()}, nil
}
