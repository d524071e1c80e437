package feature

import (
	"reflect"
	"testing"
)

func TestExtractKeywordsRanksLongerPhrasesFirst(t *testing.T) {
	got := ExtractKeywords("a spy saves the world")
	want := []string{"spy saves", "world"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtractKeywordsDeterministic(t *testing.T) {
	text := "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency."
	first := ExtractKeywords(text)
	for i := 0; i < 10; i++ {
		if got := ExtractKeywords(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("extraction not deterministic: %v != %v", got, first)
		}
	}
	if len(first) == 0 {
		t.Error("expected keywords from a non-empty description")
	}
}

func TestExtractKeywordsBreaksOnPunctuationAndStopwords(t *testing.T) {
	got := ExtractKeywords("Spies, lies and guns")
	want := []string{"spies", "lies", "guns"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExtractKeywordsEmpty(t *testing.T) {
	if got := ExtractKeywords(""); got != nil {
		t.Errorf("expected nil for empty description, got %v", got)
	}
	if got := ExtractKeywords("the of and"); got != nil {
		t.Errorf("expected nil for all-stopword description, got %v", got)
	}
}

func TestExtractKeywordsDeduplicatesPhrases(t *testing.T) {
	got := ExtractKeywords("a spy, a spy")
	want := []string{"spy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
