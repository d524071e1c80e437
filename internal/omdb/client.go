// Package omdb looks up display metadata (canonical title, poster URL) for
// an IMDb title id via the OMDb API. No retries and no caching here; the
// recommendation core only needs id ordering preserved for display.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const DefaultAPIURL = "http://www.omdbapi.com/"

type Info struct {
	Title     string
	PosterURL string
}

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether an API key is configured; without one the service
// serves recommendations without posters.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

func (c *Client) Lookup(ctx context.Context, titleID string) (Info, error) {
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("i", titleID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Info{}, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return Info{}, fmt.Errorf("omdb lookup %s: %w", titleID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Info{}, fmt.Errorf("omdb lookup %s: unexpected status %s", titleID, resp.Status)
	}

	var body struct {
		Title    string `json:"Title"`
		Poster   string `json:"Poster"`
		Response string `json:"Response"`
		Error    string `json:"Error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Info{}, fmt.Errorf("omdb decode %s: %w", titleID, err)
	}
	if body.Response == "False" {
		return Info{}, fmt.Errorf("omdb lookup %s: %s", titleID, body.Error)
	}
	return Info{Title: body.Title, PosterURL: body.Poster}, nil
}
