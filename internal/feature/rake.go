package feature

import (
	"sort"
	"strings"
	"unicode"
)

// minWordRunes drops single-letter fragments left over from tokenization.
const minWordRunes = 1

// ExtractKeywords runs RAKE (rapid automatic keyword extraction) over a plot
// description and returns the candidate phrases ranked best-first.
//
// Candidate phrases are maximal runs of non-stopword words between stopwords
// and punctuation. Each word gets a frequency (occurrences across phrases)
// and a degree (co-occurrence count within phrases, self included); a phrase
// scores the sum of degree(w)/freq(w) over its words. Ranking is stable:
// equal scores keep first-appearance order, so output is reproducible for a
// fixed description. Empty input returns nil.
func ExtractKeywords(description string) []string {
	phrases := candidatePhrases(description)
	if len(phrases) == 0 {
		return nil
	}

	freq := make(map[string]int)
	degree := make(map[string]int)
	for _, phrase := range phrases {
		for _, w := range phrase {
			freq[w]++
			degree[w] += len(phrase)
		}
	}

	type scored struct {
		text  string
		score float64
	}
	ranked := make([]scored, 0, len(phrases))
	seen := make(map[string]struct{}, len(phrases))
	for _, phrase := range phrases {
		text := strings.Join(phrase, " ")
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		score := 0.0
		for _, w := range phrase {
			score += float64(degree[w]) / float64(freq[w])
		}
		ranked = append(ranked, scored{text: text, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.text
	}
	return out
}

// candidatePhrases splits text into runs of non-stopword words. A stopword
// or any punctuation ends the current run.
func candidatePhrases(text string) [][]string {
	words := splitWords(strings.ToLower(text))

	var phrases [][]string
	var current []string
	flush := func() {
		if len(current) > 0 {
			phrases = append(phrases, current)
			current = nil
		}
	}

	for _, w := range words {
		if w == phraseBreak || isStopword(w) {
			flush()
			continue
		}
		current = append(current, w)
	}
	flush()
	return phrases
}

// phraseBreak marks a punctuation boundary in the word stream.
const phraseBreak = "\x00"

// splitWords tokenizes into lowercase words, emitting phraseBreak markers at
// punctuation so phrases never span sentence fragments. Apostrophes and
// hyphens are kept inside words.
func splitWords(text string) []string {
	var words []string
	var b strings.Builder
	emit := func() {
		if b.Len() > 0 {
			w := b.String()
			if len([]rune(w)) >= minWordRunes {
				words = append(words, w)
			}
			b.Reset()
		}
	}
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			emit()
		default:
			emit()
			words = append(words, phraseBreak)
		}
	}
	emit()
	return words
}
