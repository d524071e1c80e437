package corpus

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/recomovi/recomovi/internal/domain"
	"github.com/recomovi/recomovi/internal/feature"
)

func TestActiveDefault(t *testing.T) {
	def := Build(threeMovies(), feature.DefaultWeights())
	store := NewStore(def)

	got, err := store.Active(domain.CorpusDefault)
	if err != nil {
		t.Fatalf("Active(default) failed: %v", err)
	}
	if got != def {
		t.Error("expected the default corpus back")
	}
}

func TestActiveCustomBeforeBuild(t *testing.T) {
	store := NewStore(Build(threeMovies(), feature.DefaultWeights()))

	_, err := store.Active(domain.CorpusCustom)
	if !errors.Is(err, domain.ErrCorpusUnavailable) {
		t.Errorf("expected ErrCorpusUnavailable, got %v", err)
	}
}

func TestSetCustomPublishes(t *testing.T) {
	store := NewStore(Build(threeMovies(), feature.DefaultWeights()))
	custom := Build(threeMovies()[:2], feature.DefaultWeights())
	store.SetCustom(custom)

	got, err := store.Active(domain.CorpusCustom)
	if err != nil {
		t.Fatalf("Active(custom) failed: %v", err)
	}
	if got != custom {
		t.Error("expected the published custom corpus back")
	}
}

// Readers must never observe a corpus whose record count differs from its
// bag-of-words count or matrix dimension, no matter how rebuilds interleave.
func TestConcurrentRebuildStaysConsistent(t *testing.T) {
	store := NewStore(Build(threeMovies(), feature.DefaultWeights()))

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				c, err := store.Active(domain.CorpusCustom)
				if errors.Is(err, domain.ErrCorpusUnavailable) {
					continue
				}
				if err != nil {
					t.Errorf("Active failed: %v", err)
					return
				}
				if len(c.Records) != len(c.Bags) || c.Matrix.Size() != len(c.Records) {
					t.Errorf("inconsistent corpus: %d records, %d bags, %d matrix rows",
						len(c.Records), len(c.Bags), c.Matrix.Size())
					return
				}
			}
		}()
	}

	for i := 0; i < 50; i++ {
		n := 1 + i%3
		records := make([]domain.MovieRecord, n)
		for j := range records {
			records[j] = domain.MovieRecord{
				IMDBTitleID: fmt.Sprintf("tt%d-%d", i, j),
				Title:       fmt.Sprintf("Movie %d-%d", i, j),
				Genre:       []string{"Action"},
			}
		}
		store.SetCustom(Build(records, feature.DefaultWeights()))
	}

	close(stop)
	wg.Wait()
}
