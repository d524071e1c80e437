// Package seeds imports the shipped default dataset into Postgres on first
// start, so the default corpus is always servable.
package seeds

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/recomovi/recomovi/internal/dataset"
	"github.com/recomovi/recomovi/internal/domain"
	"github.com/recomovi/recomovi/internal/repository"
)

// Setup loads the default dataset CSV and replaces the persisted default
// corpus records with it. The derived bag-of-words table is refreshed by the
// caller once the corpus is built.
func Setup(ctx context.Context, pool *pgxpool.Pool, datasetPath string) error {
	log.Printf("[seed] importing default dataset from %s", datasetPath)

	records, err := dataset.LoadRecordsFile(datasetPath)
	if err != nil {
		return fmt.Errorf("load default dataset: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("default dataset %s has no records", datasetPath)
	}

	repo := repository.New(pool)
	if err := repo.ReplaceCorpus(ctx, domain.CorpusDefault, records, nil); err != nil {
		return fmt.Errorf("seed default corpus: %w", err)
	}

	log.Printf("[seed] imported %d default records", len(records))
	return nil
}
