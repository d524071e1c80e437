package dataset

import (
	"bytes"
	"math"
	"testing"

	"github.com/recomovi/recomovi/internal/corpus"
	"github.com/recomovi/recomovi/internal/domain"
	"github.com/recomovi/recomovi/internal/feature"
)

func sampleRecords() []domain.MovieRecord {
	metascore := 74
	return []domain.MovieRecord{
		{
			IMDBTitleID: "tt0120815",
			Title:       "Saving Private Ryan",
			Year:        1998,
			Genre:       []string{"Drama", "War"},
			Directors:   []string{"Steven Spielberg"},
			Stars:       []string{"Tom Hanks", "Matt Damon"},
			Description: "Following the Normandy Landings, a group of soldiers go behind enemy lines.",
			IMDBRating:  8.6,
			RatingCount: 1300000,
			Metascore:   &metascore,
			Certificate: "R",
			Runtime:     "169 min",
		},
		{
			IMDBTitleID: "tt0109830",
			Title:       "Forrest Gump",
			Year:        1994,
			Genre:       []string{"Drama", "Romance"},
			Directors:   []string{"Robert Zemeckis"},
			Stars:       []string{"Tom Hanks", "Robin Wright"},
			Description: "The history of the United States unfolds through the perspective of an Alabama man.",
			IMDBRating:  8.8,
			RatingCount: 2100000,
		},
	}
}

func TestRecordsRoundTrip(t *testing.T) {
	records := sampleRecords()

	var buf bytes.Buffer
	if err := WriteRecords(&buf, records); err != nil {
		t.Fatalf("WriteRecords failed: %v", err)
	}
	got, err := ReadRecords(&buf)
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}

	if len(got) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(got))
	}
	for i := range records {
		if got[i].IMDBTitleID != records[i].IMDBTitleID || got[i].Title != records[i].Title {
			t.Errorf("record %d identity mismatch: %+v", i, got[i])
		}
		if len(got[i].Stars) != len(records[i].Stars) {
			t.Errorf("record %d stars mismatch: %v != %v", i, got[i].Stars, records[i].Stars)
		}
		if got[i].IMDBRating != records[i].IMDBRating {
			t.Errorf("record %d rating mismatch: %f != %f", i, got[i].IMDBRating, records[i].IMDBRating)
		}
	}
	if got[0].Metascore == nil || *got[0].Metascore != 74 {
		t.Error("metascore did not round-trip")
	}
	if got[1].Metascore != nil {
		t.Error("absent metascore should stay absent")
	}
}

// Writing a corpus out and reading it back must reconstruct an equivalent
// corpus: same titles, same similarity matrix within tolerance.
func TestRoundTripPreservesSimilarity(t *testing.T) {
	records := sampleRecords()
	original := corpus.Build(records, feature.DefaultWeights())

	var buf bytes.Buffer
	if err := WriteRecords(&buf, records); err != nil {
		t.Fatalf("WriteRecords failed: %v", err)
	}
	reread, err := ReadRecords(&buf)
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}
	rebuilt := corpus.Build(reread, feature.DefaultWeights())

	if rebuilt.Size() != original.Size() {
		t.Fatalf("size mismatch: %d != %d", rebuilt.Size(), original.Size())
	}
	for i := 0; i < original.Size(); i++ {
		if rebuilt.Records[i].Title != original.Records[i].Title {
			t.Errorf("title mismatch at row %d", i)
		}
		for j := 0; j < original.Size(); j++ {
			if math.Abs(rebuilt.Matrix.At(i, j)-original.Matrix.At(i, j)) > 1e-9 {
				t.Errorf("matrix mismatch at (%d,%d): %f != %f",
					i, j, rebuilt.Matrix.At(i, j), original.Matrix.At(i, j))
			}
		}
	}
}

func TestWriteRecordsEscapesEmbeddedCommas(t *testing.T) {
	records := []domain.MovieRecord{{
		IMDBTitleID: "tt1",
		Title:       "Movie, The",
		Stars:       []string{"Smith, Jr."},
	}}

	var buf bytes.Buffer
	if err := WriteRecords(&buf, records); err != nil {
		t.Fatalf("WriteRecords failed: %v", err)
	}
	got, err := ReadRecords(&buf)
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}

	// Title commas survive via CSV quoting; commas inside list values are
	// replaced so the inner join stays unambiguous.
	if got[0].Title != "Movie, The" {
		t.Errorf("title corrupted: %q", got[0].Title)
	}
	if len(got[0].Stars) != 1 {
		t.Errorf("expected 1 star, got %v", got[0].Stars)
	}
}

func TestBagsRoundTrip(t *testing.T) {
	bags := []corpus.BagOfWords{
		{Title: "A", Text: "action spy world"},
		{Title: "B", Text: ""},
	}

	var buf bytes.Buffer
	if err := WriteBags(&buf, bags); err != nil {
		t.Fatalf("WriteBags failed: %v", err)
	}
	got, err := ReadBags(&buf)
	if err != nil {
		t.Fatalf("ReadBags failed: %v", err)
	}
	if len(got) != 2 || got[0].Text != "action spy world" || got[1].Title != "B" {
		t.Errorf("bags did not round-trip: %+v", got)
	}
}
