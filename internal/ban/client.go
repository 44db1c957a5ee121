// Package ban wraps the Base Adresse Nationale geocoder used by the address
// autocomplete field.
package ban

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config drives the geocoder client behaviour.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Limit   int
}

// Suggestion is one geocoded address candidate.
type Suggestion struct {
	Label    string  `json:"label"`
	City     string  `json:"city"`
	Postcode string  `json:"postcode"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Score    float64 `json:"score"`
}

// Client queries the BAN search endpoint. No cache: queries are keystrokes,
// almost never repeated.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limit      int
}

// NewClient constructs a geocoder client, filling unset config with defaults.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = "https://api-adresse.data.gouv.fr/search/"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	limit := cfg.Limit
	if limit <= 0 {
		limit = 5
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		limit:      limit,
	}
}

// Search returns address suggestions for the query. Queries under three
// characters return no suggestions without hitting the API.
func (c *Client) Search(ctx context.Context, query string) ([]Suggestion, error) {
	if c == nil {
		return nil, errors.New("ban client is nil")
	}
	query = strings.TrimSpace(query)
	if len([]rune(query)) < 3 {
		return []Suggestion{}, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(c.limit))
	params.Set("type", "housenumber")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ban api status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode ban response: %w", err)
	}

	suggestions := make([]Suggestion, 0, len(payload.Features))
	for _, f := range payload.Features {
		s := Suggestion{
			Label:    f.Properties.Label,
			City:     f.Properties.City,
			Postcode: f.Properties.Postcode,
			Score:    f.Properties.Score,
		}
		// GeoJSON order is lon, lat.
		if len(f.Geometry.Coordinates) == 2 {
			s.Lon = f.Geometry.Coordinates[0]
			s.Lat = f.Geometry.Coordinates[1]
		}
		suggestions = append(suggestions, s)
	}
	return suggestions, nil
}

type searchResponse struct {
	Features []searchFeature `json:"features"`
}

type searchFeature struct {
	Properties struct {
		Label    string  `json:"label"`
		City     string  `json:"city"`
		Postcode string  `json:"postcode"`
		Score    float64 `json:"score"`
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geometry"`
}
