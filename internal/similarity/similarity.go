// Package similarity vectorizes bag-of-words strings into term-count
// vectors and computes the all-pairs cosine similarity matrix for a corpus.
package similarity

import (
	"math"
	"sort"
	"strings"
)

// Matrix is the symmetric cosine similarity matrix of one corpus, indexed
// by row position in the corpus's bag-of-words order. Read-only after
// construction.
type Matrix struct {
	vals [][]float64
}

func (m *Matrix) Size() int {
	return len(m.vals)
}

func (m *Matrix) At(i, j int) float64 {
	return m.vals[i][j]
}

// Row returns the similarity scores of document i against every document.
func (m *Matrix) Row(i int) []float64 {
	return m.vals[i]
}

// BuildMatrix computes the cosine similarity matrix over raw term counts
// (count-vectorizer semantics, no TF-IDF). The vocabulary is the sorted set
// of distinct whitespace-separated tokens across all texts, fixing a
// canonical ordering so matrices reproduce across runs. A document with no
// tokens is a zero vector: its similarity against anything, itself
// included, is 0 by convention; non-zero diagonals are exactly 1.
func BuildMatrix(texts []string) *Matrix {
	vocab := buildVocabulary(texts)

	counts := make([]map[int]int, len(texts))
	norms := make([]float64, len(texts))
	for i, text := range texts {
		vec := make(map[int]int)
		for _, tok := range strings.Fields(text) {
			vec[vocab[tok]]++
		}
		counts[i] = vec
		norms[i] = vectorNorm(vec)
	}

	n := len(texts)
	vals := make([][]float64, n)
	for i := range vals {
		vals[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		if norms[i] > 0 {
			vals[i][i] = 1.0
		}
		for j := i + 1; j < n; j++ {
			sim := cosine(counts[i], counts[j], norms[i], norms[j])
			vals[i][j] = sim
			vals[j][i] = sim
		}
	}
	return &Matrix{vals: vals}
}

func buildVocabulary(texts []string) map[string]int {
	distinct := make(map[string]struct{})
	for _, text := range texts {
		for _, tok := range strings.Fields(text) {
			distinct[tok] = struct{}{}
		}
	}
	terms := make([]string, 0, len(distinct))
	for term := range distinct {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocab := make(map[string]int, len(terms))
	for i, term := range terms {
		vocab[term] = i
	}
	return vocab
}

func vectorNorm(vec map[int]int) float64 {
	sum := 0.0
	for _, c := range vec {
		sum += float64(c) * float64(c)
	}
	return math.Sqrt(sum)
}

func cosine(a, b map[int]int, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	dot := 0.0
	for term, ca := range a {
		if cb, ok := b[term]; ok {
			dot += float64(ca) * float64(cb)
		}
	}
	return dot / (normA * normB)
}
