package domain

import "errors"

var (
	// ErrTitleNotFound is returned when the requested title has no row in
	// the active corpus. Expected outcome, callers re-prompt.
	ErrTitleNotFound = errors.New("title not found in corpus")

	// ErrCorpusUnavailable is returned when the custom corpus is requested
	// before the first successful scrape.
	ErrCorpusUnavailable = errors.New("corpus has not been built")

	// ErrScrapeInProgress is returned when a scrape is requested while
	// another one is still running.
	ErrScrapeInProgress = errors.New("scrape already in progress")
)
