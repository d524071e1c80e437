package corpus

import (
	"sync"

	"github.com/recomovi/recomovi/internal/domain"
)

// Store holds the two live corpora. The default corpus is mandatory and
// fixed for the process lifetime; the custom corpus is absent until the
// first successful scrape and is replaced wholesale afterwards. Corpora are
// immutable, so publishing a rebuild is a single pointer swap: readers see
// either the old corpus or the new one, never a mix.
type Store struct {
	def *Corpus

	mu     sync.RWMutex
	custom *Corpus
}

// NewStore requires a fully built default corpus; callers treat a failure
// to produce one as fatal.
func NewStore(def *Corpus) *Store {
	return &Store{def: def}
}

// Active returns the corpus for a selector. Selecting the custom corpus
// before the first build returns domain.ErrCorpusUnavailable.
func (s *Store) Active(sel domain.CorpusSelector) (*Corpus, error) {
	switch sel {
	case domain.CorpusDefault:
		return s.def, nil
	case domain.CorpusCustom:
		s.mu.RLock()
		defer s.mu.RUnlock()
		if s.custom == nil {
			return nil, domain.ErrCorpusUnavailable
		}
		return s.custom, nil
	}
	return nil, domain.ErrCorpusUnavailable
}

// SetCustom publishes a fully built custom corpus, discarding the previous
// one. Callers build off to the side first, so an interrupted rebuild never
// touches the published corpus.
func (s *Store) SetCustom(c *Corpus) {
	s.mu.Lock()
	s.custom = c
	s.mu.Unlock()
}
