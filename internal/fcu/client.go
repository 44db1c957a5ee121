// Package fcu queries the France Chaleur Urbaine eligibility API: is the
// point near an existing or planned heat network, and inside a priority
// deployment perimeter.
package fcu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Config drives the eligibility client behaviour.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Eligibility mirrors the FCU response for one coordinate pair.
type Eligibility struct {
	Distance      float64 `json:"distance"`
	FuturNetwork  bool    `json:"futurNetwork"`
	Gestionnaire  string  `json:"gestionnaire"`
	ID            string  `json:"id"`
	InPDP         bool    `json:"inPDP"`
	IsBasedOnIris bool    `json:"isBasedOnIris"`
	IsEligible    bool    `json:"isEligible"`
	RateCO2       float64 `json:"rateCO2"`
	RateENRR      float64 `json:"rateENRR"`
}

// NetworkURL returns the FCU network page when the point resolves to an
// identified network.
func (e Eligibility) NetworkURL() string {
	if e.ID == "" {
		return ""
	}
	return "https://france-chaleur-urbaine.beta.gouv.fr/reseaux/" + e.ID
}

// Client performs eligibility lookups with response caching keyed on the
// coordinate pair.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cacheTTL   time.Duration
	cache      sync.Map // map[string]cacheEntry
}

type cacheEntry struct {
	at     time.Time
	result Eligibility
}

// NewClient constructs an eligibility client, filling unset config with
// defaults.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = "https://france-chaleur-urbaine.beta.gouv.fr/api/v1/eligibility"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		cacheTTL:   ttl,
	}
}

// CoordsKey builds the canonical cache key for a coordinate pair. Exposed so
// profile fetch guards and the server-side cache agree on the format.
func CoordsKey(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', 6, 64) + "," + strconv.FormatFloat(lon, 'f', 6, 64)
}

// Lookup fetches the heat network eligibility for a coordinate pair.
func (c *Client) Lookup(ctx context.Context, lat, lon float64) (Eligibility, error) {
	if c == nil {
		return Eligibility{}, errors.New("fcu client is nil")
	}
	key := CoordsKey(lat, lon)
	if entry, ok := c.cache.Load(key); ok {
		cached := entry.(cacheEntry)
		if time.Since(cached.at) < c.cacheTTL {
			return cached.result, nil
		}
		c.cache.Delete(key)
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Eligibility{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Eligibility{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Eligibility{}, fmt.Errorf("fcu api status %d", resp.StatusCode)
	}

	var result Eligibility
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Eligibility{}, fmt.Errorf("decode fcu response: %w", err)
	}

	c.cache.Store(key, cacheEntry{at: time.Now(), result: result})
	return result, nil
}
