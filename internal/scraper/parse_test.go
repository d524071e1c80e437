package scraper

import (
	"reflect"
	"strings"
	"testing"
)

const searchPageFixture = `
<html><body>
<div class="lister-item mode-advanced">
  <div class="lister-item-content">
    <h3 class="lister-item-header">
      <a href="/title/tt0111161/">The Shawshank Redemption</a>
      <span class="lister-item-year text-muted unbold">(1994)</span>
    </h3>
    <p class="text-muted">
      <span class="certificate">R</span>
      <span class="runtime">142 min</span>
      <span class="genre">Drama</span>
    </p>
    <div class="ratings-bar">
      <strong>9.3</strong>
      <span class="metascore favorable">82</span>
    </div>
    <p class="text-muted">Two imprisoned men bond over a number of years.</p>
    <p class="">
      Director:
      <a href="#">Frank Darabont</a>
      <span class="ghost">|</span>
      Stars:
      <a href="#">Tim Robbins</a>,
      <a href="#">Morgan Freeman</a>
    </p>
    <p class="sort-num_votes-visible">
      <span name="nv" data-value="2600000">2.6M</span>
    </p>
  </div>
</div>
<div class="lister-item mode-advanced">
  <div class="lister-item-content">
    <h3 class="lister-item-header">
      <a href="/title/tt0133093/">The Matrix</a>
      <span class="lister-item-year text-muted unbold">(I) (1999)</span>
    </h3>
    <p class="text-muted">
      <span class="runtime">136 min</span>
      <span class="genre">Action, Sci-Fi</span>
    </p>
    <div class="ratings-bar">
      <strong>8.7</strong>
    </div>
    <p class="text-muted">A computer hacker learns the true nature of reality.</p>
    <p class="">
      Directors:
      <a href="#">Lana Wachowski</a>,
      <a href="#">Lilly Wachowski</a>
      <span class="ghost">|</span>
      Stars:
      <a href="#">Keanu Reeves</a>,
      <a href="#">Laurence Fishburne</a>
    </p>
    <p class="sort-num_votes-visible">
      <span name="nv" data-value="1900000">1.9M</span>
    </p>
  </div>
</div>
<div class="lister-item mode-advanced">
  <div class="lister-item-content">
    <h3 class="lister-item-header">
      <a href="/title/tt9999999/">Unrated Movie</a>
      <span class="lister-item-year text-muted unbold">(2020)</span>
    </h3>
  </div>
</div>
</body></html>`

func TestParseSearchPage(t *testing.T) {
	records, err := ParseSearchPage(strings.NewReader(searchPageFixture))
	if err != nil {
		t.Fatalf("ParseSearchPage failed: %v", err)
	}

	// The unrated container is skipped.
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.IMDBTitleID != "tt0111161" {
		t.Errorf("expected tt0111161, got %q", first.IMDBTitleID)
	}
	if first.Title != "The Shawshank Redemption" || first.Year != 1994 {
		t.Errorf("title/year mismatch: %q %d", first.Title, first.Year)
	}
	if first.Certificate != "R" || first.Runtime != "142 min" {
		t.Errorf("certificate/runtime mismatch: %q %q", first.Certificate, first.Runtime)
	}
	if first.IMDBRating != 9.3 || first.RatingCount != 2600000 {
		t.Errorf("rating mismatch: %f %d", first.IMDBRating, first.RatingCount)
	}
	if first.Metascore == nil || *first.Metascore != 82 {
		t.Error("metascore mismatch")
	}
	if !reflect.DeepEqual(first.Directors, []string{"Frank Darabont"}) {
		t.Errorf("directors mismatch: %v", first.Directors)
	}
	if !reflect.DeepEqual(first.Stars, []string{"Tim Robbins", "Morgan Freeman"}) {
		t.Errorf("stars mismatch: %v", first.Stars)
	}
	if !strings.Contains(first.Description, "imprisoned men") {
		t.Errorf("description mismatch: %q", first.Description)
	}

	second := records[1]
	if second.Year != 1999 {
		t.Errorf("expected numeral-prefixed year 1999, got %d", second.Year)
	}
	if !reflect.DeepEqual(second.Genre, []string{"Action", "Sci-Fi"}) {
		t.Errorf("genre mismatch: %v", second.Genre)
	}
	if !reflect.DeepEqual(second.Directors, []string{"Lana Wachowski", "Lilly Wachowski"}) {
		t.Errorf("multi-director block mismatch: %v", second.Directors)
	}
	if second.Metascore != nil {
		t.Error("absent metascore should stay nil")
	}
}

func TestParseCreditsBareCastList(t *testing.T) {
	// Documentaries often list a cast with no Director/Stars labels.
	directors, stars := parseCredits("Morgan Freeman, David Attenborough")
	if len(directors) != 0 {
		t.Errorf("expected no directors, got %v", directors)
	}
	if !reflect.DeepEqual(stars, []string{"Morgan Freeman", "David Attenborough"}) {
		t.Errorf("stars mismatch: %v", stars)
	}
}

func TestParseCreditsEmpty(t *testing.T) {
	directors, stars := parseCredits("  ")
	if directors != nil || stars != nil {
		t.Errorf("expected nil credits, got %v / %v", directors, stars)
	}
}

func TestSearchURL(t *testing.T) {
	got := SearchURL(2005, 51, 6.0, 10.0, []string{"Action", "Sci-Fi"})

	for _, want := range []string{
		"title_type=feature",
		"user_rating=6,10",
		"release_date=2005",
		"sort=num_votes,desc",
		"start=51",
		"genres=Action,Sci-Fi",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected URL to contain %q, got %s", want, got)
		}
	}
}

func TestSearchURLNoOptionalFilters(t *testing.T) {
	got := SearchURL(2005, 1, 0, 0, nil)
	if strings.Contains(got, "user_rating") || strings.Contains(got, "genres=") {
		t.Errorf("expected no optional filters, got %s", got)
	}
}
