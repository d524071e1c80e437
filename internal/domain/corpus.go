package domain

import "fmt"

// CorpusSelector names one of the two corpora the service can answer from.
type CorpusSelector string

const (
	CorpusDefault CorpusSelector = "default"
	CorpusCustom  CorpusSelector = "custom"
)

// ParseCorpusSelector validates a selector coming from a URL parameter.
func ParseCorpusSelector(s string) (CorpusSelector, error) {
	switch CorpusSelector(s) {
	case CorpusDefault:
		return CorpusDefault, nil
	case CorpusCustom:
		return CorpusCustom, nil
	}
	return "", fmt.Errorf("unknown corpus %q", s)
}
