// Package corpus owns a complete, versioned collection of movie records and
// every artifact derived from them: bag-of-words texts, the cosine
// similarity matrix and the title lookup index.
package corpus

import (
	"sort"

	"github.com/recomovi/recomovi/internal/domain"
	"github.com/recomovi/recomovi/internal/feature"
	"github.com/recomovi/recomovi/internal/similarity"
)

const DefaultTopN = 10

// BagOfWords pairs a title with its space-joined token stream. The slice of
// these is the row order of the similarity matrix.
type BagOfWords struct {
	Title string `json:"title"`
	Text  string `json:"bagofwords"`
}

// Corpus is immutable once built; rebuilds produce a fresh value.
type Corpus struct {
	Records []domain.MovieRecord
	Bags    []BagOfWords
	Matrix  *similarity.Matrix

	index map[string]int // title -> row; first occurrence wins
	byID  map[string]int // imdb_title_id -> row
}

// Build runs the full pipeline over raw records: deduplicate by IMDb title
// id, normalize, extract keywords, build bag-of-words and compute the
// similarity matrix. Duplicate ids resolve last-seen-wins: the later record
// replaces the earlier one at its original position, keeping row order
// deterministic. Never fails; malformed fields degrade to empty features.
func Build(records []domain.MovieRecord, weights feature.Weights) *Corpus {
	deduped := make([]domain.MovieRecord, 0, len(records))
	byID := make(map[string]int, len(records))
	for _, rec := range records {
		if row, ok := byID[rec.IMDBTitleID]; ok {
			deduped[row] = rec
			continue
		}
		byID[rec.IMDBTitleID] = len(deduped)
		deduped = append(deduped, rec)
	}

	bags := make([]BagOfWords, len(deduped))
	texts := make([]string, len(deduped))
	index := make(map[string]int, len(deduped))
	for i, rec := range deduped {
		doc := feature.Normalize(rec)
		bags[i] = BagOfWords{Title: rec.Title, Text: feature.BuildBagOfWords(doc, weights)}
		texts[i] = bags[i].Text
		if _, ok := index[rec.Title]; !ok {
			index[rec.Title] = i
		}
	}

	return &Corpus{
		Records: deduped,
		Bags:    bags,
		Matrix:  similarity.BuildMatrix(texts),
		index:   index,
		byID:    byID,
	}
}

// Recommend returns the titles of the topN rows most similar to the given
// title, best first, never including the query row itself. Ties keep
// original corpus row order. Returns domain.ErrTitleNotFound when the title
// has no row.
func (c *Corpus) Recommend(title string, topN int) ([]string, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}
	idx, ok := c.index[title]
	if !ok {
		return nil, domain.ErrTitleNotFound
	}

	row := c.Matrix.Row(idx)
	order := make([]int, 0, len(row)-1)
	for i := range row {
		if i != idx {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return row[order[a]] > row[order[b]]
	})

	if len(order) > topN {
		order = order[:topN]
	}
	titles := make([]string, len(order))
	for i, r := range order {
		titles[i] = c.Bags[r].Title
	}
	return titles, nil
}

// Record looks up the record backing a title, used to re-derive rows (ids,
// posters) after a similarity lookup.
func (c *Corpus) Record(title string) (domain.MovieRecord, bool) {
	idx, ok := c.index[title]
	if !ok {
		return domain.MovieRecord{}, false
	}
	return c.Records[idx], true
}

// Titles returns every title in corpus row order.
func (c *Corpus) Titles() []string {
	titles := make([]string, len(c.Records))
	for i, rec := range c.Records {
		titles[i] = rec.Title
	}
	return titles
}

func (c *Corpus) Size() int {
	return len(c.Records)
}
