// Package dataset reads and writes the two CSV tables a corpus persists to:
// raw movie records and bag-of-words rows.
//
// List-valued fields (genre, directors, stars) are comma-joined inside one
// CSV field; encoding/csv quoting keeps the field itself unambiguous, and
// commas embedded in individual values are stripped on write so the inner
// join round-trips. Writing then reading reconstructs an equivalent corpus.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/recomovi/recomovi/internal/corpus"
	"github.com/recomovi/recomovi/internal/domain"
)

const listDelimiter = ","

var recordHeader = []string{
	"imdb_title_id", "title", "year", "genre", "directors", "stars",
	"description", "imdb_rating", "rating_count", "metascore",
	"certificate", "runtime",
}

var bagHeader = []string{"title", "bagofwords"}

// WriteRecords writes the raw-records table.
func WriteRecords(w io.Writer, records []domain.MovieRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(recordHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		metascore := ""
		if rec.Metascore != nil {
			metascore = strconv.Itoa(*rec.Metascore)
		}
		row := []string{
			rec.IMDBTitleID,
			rec.Title,
			strconv.Itoa(rec.Year),
			joinList(rec.Genre),
			joinList(rec.Directors),
			joinList(rec.Stars),
			rec.Description,
			strconv.FormatFloat(rec.IMDBRating, 'f', -1, 64),
			strconv.Itoa(rec.RatingCount),
			metascore,
			rec.Certificate,
			rec.Runtime,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record %s: %w", rec.IMDBTitleID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadRecords reads a raw-records table. Malformed numeric fields degrade
// to zero values; missing list fields become empty slices, never errors.
func ReadRecords(r io.Reader) ([]domain.MovieRecord, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty dataset")
	}

	col := headerIndex(rows[0])
	records := make([]domain.MovieRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		get := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		rec := domain.MovieRecord{
			IMDBTitleID: get("imdb_title_id"),
			Title:       get("title"),
			Year:        atoi(get("year")),
			Genre:       splitList(get("genre")),
			Directors:   splitList(get("directors")),
			Stars:       splitList(get("stars")),
			Description: get("description"),
			IMDBRating:  atof(get("imdb_rating")),
			RatingCount: atoi(get("rating_count")),
			Certificate: get("certificate"),
			Runtime:     get("runtime"),
		}
		if ms := get("metascore"); ms != "" {
			v := atoi(ms)
			rec.Metascore = &v
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteBags writes the bag-of-words table.
func WriteBags(w io.Writer, bags []corpus.BagOfWords) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(bagHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, bag := range bags {
		if err := cw.Write([]string{bag.Title, bag.Text}); err != nil {
			return fmt.Errorf("write bag %q: %w", bag.Title, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadBags reads a bag-of-words table.
func ReadBags(r io.Reader) ([]corpus.BagOfWords, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	var bags []corpus.BagOfWords
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}
		bags = append(bags, corpus.BagOfWords{Title: row[0], Text: row[1]})
	}
	return bags, nil
}

// LoadRecordsFile reads a raw-records table from disk.
func LoadRecordsFile(path string) ([]domain.MovieRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()
	return ReadRecords(f)
}

func joinList(values []string) string {
	if len(values) == 0 {
		return ""
	}
	clean := make([]string, len(values))
	for i, v := range values {
		clean[i] = strings.TrimSpace(strings.ReplaceAll(v, listDelimiter, " "))
	}
	return strings.Join(clean, listDelimiter)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, listDelimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func headerIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return col
}

func atoi(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

func atof(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}
