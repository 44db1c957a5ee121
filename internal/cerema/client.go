// Package cerema queries the Cerema cartagene feature service for building
// registry data and normalizes the raw attributes into profile patches.
package cerema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Config drives the registry client behaviour.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Client performs feature-service lookups with response caching. Registry
// rows change on a yearly cadence, so a generous TTL is safe.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cacheTTL   time.Duration
	cache      sync.Map // map[string]cacheEntry
}

type cacheEntry struct {
	at       time.Time
	response Response
}

// NewClient constructs a registry client, filling unset config with defaults.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = "https://cartagene.cerema.fr/server/rest/services/Hosted/pacoupa/FeatureServer/0/query"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		cacheTTL:   ttl,
	}
}

// Lookup fetches and normalizes the registry rows matching the address.
func (c *Client) Lookup(ctx context.Context, address string) (Response, error) {
	if c == nil {
		return Response{}, errors.New("cerema client is nil")
	}
	key := strings.ToLower(strings.TrimSpace(address))
	if key == "" {
		return Transform(nil), nil
	}

	if entry, ok := c.cache.Load(key); ok {
		cached := entry.(cacheEntry)
		if time.Since(cached.at) < c.cacheTTL {
			return cached.response, nil
		}
		c.cache.Delete(key)
	}

	features, err := c.fetchFeatures(ctx, address)
	if err != nil {
		return Response{}, err
	}
	response := Transform(features)
	c.cache.Store(key, cacheEntry{at: time.Now(), response: response})
	return response, nil
}

func (c *Client) fetchFeatures(ctx context.Context, address string) ([]Feature, error) {
	params := url.Values{}
	params.Set("f", "json")
	// The feature service takes a SQL-ish where clause; single quotes in
	// the address are doubled to stay inside the literal.
	params.Set("where", fmt.Sprintf("adresse = '%s'", strings.ReplaceAll(address, "'", "''")))
	params.Set("outFields", "*")
	params.Set("returnGeometry", "true")

	endpoint := c.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
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
		return nil, fmt.Errorf("cerema api status %d", resp.StatusCode)
	}

	var payload featureResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode cerema response: %w", err)
	}
	return payload.Features, nil
}

type featureResponse struct {
	Features []Feature `json:"features"`
}

// Feature is one registry row as served by the feature service.
type Feature struct {
	Attributes Attributes `json:"attributes"`
}

// Attributes carries the subset of feature-service columns the profile
// enrichment reads. Optional columns are pointers: absent and zero differ.
type Attributes struct {
	Address          string   `json:"adresse"`
	ConstructionYear *int     `json:"annee_construction"`
	HousingCount     *int     `json:"nb_logement"`
	SurfResInd       *float64 `json:"surf_res_ind"`
	SurfResCol       *float64 `json:"surf_res_col"`
	SurfTer          *float64 `json:"surf_ter"`

	NeedResIndHeating *float64 `json:"besoin_res_ind_ch"`
	NeedResColHeating *float64 `json:"besoin_res_col_ch"`
	NeedTerHeating    *float64 `json:"besoin_ter_ch"`
	NeedResIndECS     *float64 `json:"besoin_res_ind_ecs"`
	NeedResColECS     *float64 `json:"besoin_res_col_ecs"`
	NeedTerECS        *float64 `json:"besoin_ter_ecs"`

	HeatingInstallation string `json:"type_installation_chauffage"`
	HeatingEnergy       string `json:"type_energie_chauffage"`
	HeatingGenerator    string `json:"type_generateur_chauffage"`
	ECSInstallation     string `json:"type_installation_ecs"`
	ECSEnergy           string `json:"type_energie_ecs"`

	AC1      *int   `json:"ac1"`
	AC2      *int   `json:"ac2"`
	AC3      *int   `json:"ac3"`
	AC4      *int   `json:"ac4"`
	ListePPA string `json:"liste_ppa"`

	GmiNappe200       *int     `json:"gmi_nappe_200"`
	GmiSondes200      *int     `json:"gmi_sondes_200"`
	PotNappeText      string   `json:"pot_nappe_text"`
	CouvSondes200     *float64 `json:"couv_sondes_200"`
	ProdSolarMwhYear  *float64 `json:"prod_st_mwh_an"`
	CouvSolarECS      *float64 `json:"couv_st_ecs"`
	DPEClass          string   `json:"classe_dpe"`
}
