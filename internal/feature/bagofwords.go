package feature

import "strings"

// Weights sets how many times each category block is repeated in the bag of
// words. The defaults double-count genre, directors and stars relative to
// description keywords: metadata overlap ranks above plot-text overlap.
type Weights struct {
	Genre     int
	Directors int
	Stars     int
	Keywords  int
}

func DefaultWeights() Weights {
	return Weights{Genre: 2, Directors: 2, Stars: 2, Keywords: 1}
}

// BuildBagOfWords renders a document as one space-joined token string.
// Category blocks are interleaved round by round (genre, directors, stars,
// genre, directors, stars, ...), then keyword phrases are appended whole.
// A document with all-empty inputs yields "".
func BuildBagOfWords(doc Document, w Weights) string {
	rounds := w.Genre
	if w.Directors > rounds {
		rounds = w.Directors
	}
	if w.Stars > rounds {
		rounds = w.Stars
	}

	var parts []string
	for r := 0; r < rounds; r++ {
		if r < w.Genre {
			parts = append(parts, doc.GenreTokens...)
		}
		if r < w.Directors {
			parts = append(parts, doc.DirectorTokens...)
		}
		if r < w.Stars {
			parts = append(parts, doc.StarTokens...)
		}
	}
	for r := 0; r < w.Keywords; r++ {
		parts = append(parts, doc.Keywords...)
	}
	return strings.Join(parts, " ")
}
