package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/recomovi/recomovi/internal/corpus"
	"github.com/recomovi/recomovi/internal/domain"
)

// ReplaceCorpus swaps out every persisted row of a corpus in one
// transaction: raw records and bag-of-words rows together, so a reader
// after commit always sees matching tables.
func (r *Repository) ReplaceCorpus(ctx context.Context, name domain.CorpusSelector, records []domain.MovieRecord, bags []corpus.BagOfWords) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace corpus %s: %w", name, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM movies WHERE corpus = $1`, string(name)); err != nil {
		return fmt.Errorf("delete movies for corpus %s: %w", name, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM bagofwords WHERE corpus = $1`, string(name)); err != nil {
		return fmt.Errorf("delete bagofwords for corpus %s: %w", name, err)
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(
			`INSERT INTO movies
				(corpus, imdb_title_id, title, year, genre, directors, stars,
				 description, imdb_rating, rating_count, metascore, certificate, runtime)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			string(name), rec.IMDBTitleID, rec.Title, rec.Year,
			strings.Join(rec.Genre, ","), strings.Join(rec.Directors, ","),
			strings.Join(rec.Stars, ","), rec.Description,
			rec.IMDBRating, rec.RatingCount, rec.Metascore,
			rec.Certificate, rec.Runtime,
		)
	}
	for _, bag := range bags {
		batch.Queue(
			`INSERT INTO bagofwords (corpus, title, bagofwords) VALUES ($1, $2, $3)`,
			string(name), bag.Title, bag.Text,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert corpus %s: %w", name, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace corpus %s: %w", name, err)
	}
	return nil
}

// LoadRecords returns a corpus's raw records in insertion order.
func (r *Repository) LoadRecords(ctx context.Context, name domain.CorpusSelector) ([]domain.MovieRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT imdb_title_id, title, year, genre, directors, stars,
		        description, imdb_rating, rating_count, metascore, certificate, runtime
		 FROM movies
		 WHERE corpus = $1
		 ORDER BY id`, string(name),
	)
	if err != nil {
		return nil, fmt.Errorf("query records for corpus %s: %w", name, err)
	}
	defer rows.Close()

	var records []domain.MovieRecord
	for rows.Next() {
		var rec domain.MovieRecord
		var genre, directors, stars string
		err := rows.Scan(&rec.IMDBTitleID, &rec.Title, &rec.Year,
			&genre, &directors, &stars, &rec.Description,
			&rec.IMDBRating, &rec.RatingCount, &rec.Metascore,
			&rec.Certificate, &rec.Runtime)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Genre = splitList(genre)
		rec.Directors = splitList(directors)
		rec.Stars = splitList(stars)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// CountRecords counts the persisted rows of a corpus.
func (r *Repository) CountRecords(ctx context.Context, name domain.CorpusSelector) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM movies WHERE corpus = $1`, string(name),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count records for corpus %s: %w", name, err)
	}
	return count, nil
}

// SaveBags refreshes only the derived bag-of-words table of a corpus, used
// after the default corpus is rebuilt from its seeded records.
func (r *Repository) SaveBags(ctx context.Context, name domain.CorpusSelector, bags []corpus.BagOfWords) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save bags %s: %w", name, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM bagofwords WHERE corpus = $1`, string(name)); err != nil {
		return fmt.Errorf("delete bagofwords for corpus %s: %w", name, err)
	}
	batch := &pgx.Batch{}
	for _, bag := range bags {
		batch.Queue(
			`INSERT INTO bagofwords (corpus, title, bagofwords) VALUES ($1, $2, $3)`,
			string(name), bag.Title, bag.Text,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert bagofwords for corpus %s: %w", name, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save bags %s: %w", name, err)
	}
	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
