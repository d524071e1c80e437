package feature

import (
	"strings"

	"github.com/recomovi/recomovi/internal/domain"
)

// Document is the normalized feature view of one movie record: category
// tokens plus the ranked keyword phrases extracted from the description.
type Document struct {
	GenreTokens    []string
	DirectorTokens []string
	StarTokens     []string
	Keywords       []string
}

// Normalize converts a raw record into a Document. Missing fields become
// empty token sets; it never fails.
func Normalize(rec domain.MovieRecord) Document {
	return Document{
		GenreTokens:    NormalizeTokens(rec.Genre),
		DirectorTokens: NormalizeTokens(rec.Directors),
		StarTokens:     NormalizeTokens(rec.Stars),
		Keywords:       ExtractKeywords(rec.Description),
	}
}

// NormalizeTokens lowercases category values and strips all internal
// whitespace so multi-word names become single matchable tokens
// ("Steven Spielberg" -> "stevenspielberg"). Values still carrying commas
// are split first, so an unsplit "X, Y" string degrades to two tokens
// rather than garbage. Duplicates are dropped, first occurrence order kept.
// Idempotent: normalizing an already-normalized token is a no-op.
func NormalizeTokens(values []string) []string {
	var tokens []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			tok := normalizeToken(part)
			if tok == "" {
				continue
			}
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
