// Package api exposes the recommendation engine, the share codec and the
// enrichment proxies over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pacoupa/backend/internal/ban"
	"pacoupa/backend/internal/catalog"
	"pacoupa/backend/internal/cerema"
	"pacoupa/backend/internal/engine"
	"pacoupa/backend/internal/export"
	"pacoupa/backend/internal/fcu"
	"pacoupa/backend/internal/property"
	"pacoupa/backend/internal/share"
	"pacoupa/backend/internal/store"
)

// Config defines server dependencies.
type Config struct {
	DBPath         string
	CacheTTL       time.Duration
	AllowedOrigins []string
	SilentDB       bool
	CeremaConfig   cerema.Config
	FCUConfig      fcu.Config
	BANConfig      ban.Config
}

// Server wires HTTP handlers with the engine, the share codec, the external
// enrichment clients and the lookup cache.
type Server struct {
	db             *store.Database
	ceremaClient   *cerema.Client
	fcuClient      *fcu.Client
	banClient      *ban.Client
	allowedOrigins []string
	cacheTTL       time.Duration
}

// NewServer constructs the API server.
func NewServer(cfg Config) (*Server, error) {
	if cfg.DBPath == "" {
		return nil, errors.New("db path required")
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	db, err := store.Open(cfg.DBPath, ttl, cfg.SilentDB)
	if err != nil {
		return nil, err
	}
	if err := db.PurgeExpired(); err != nil {
		logrus.WithError(err).Warn("purge expired lookups")
	}

	server := &Server{
		db:             db,
		ceremaClient:   cerema.NewClient(cfg.CeremaConfig),
		fcuClient:      fcu.NewClient(cfg.FCUConfig),
		banClient:      ban.NewClient(cfg.BANConfig),
		allowedOrigins: cfg.AllowedOrigins,
		cacheTTL:       ttl,
	}

	logrus.WithFields(logrus.Fields{
		"catalog_solutions": catalog.Count(),
		"cache_ttl":         ttl,
	}).Info("solution catalog loaded")

	return server, nil
}

// Router configures gin routes.
func (s *Server) Router() (*gin.Engine, error) {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = true
	if len(s.allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	r.GET("/api/healthz", s.handleHealth)
	r.GET("/api/config", s.handleConfig)

	api := r.Group("/api")
	{
		api.GET("/catalog", s.handleCatalog)
		api.GET("/catalog/:slug", s.handleCatalogBySlug)
		api.POST("/solutions", s.handleSolutions)
		api.GET("/solutions/stream", s.handleSolutionsStream)
		api.GET("/share/:token", s.handleShare)
		api.GET("/address", s.handleAddress)
		api.GET("/building", s.handleBuilding)
		api.GET("/heat-network", s.handleHeatNetwork)
		api.GET("/export.txt", s.handleExportText)
	}

	return r, nil
}

// Close releases the lookup cache.
func (s *Server) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"catalog_solutions": catalog.Count(),
		"cache_ttl_seconds": int(s.cacheTTL / time.Second),
	})
}

func (s *Server) handleCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Solutions)
}

func (s *Server) handleCatalogBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	solution, ok := catalog.BySlug(slug)
	if !ok {
		s.renderError(c, http.StatusNotFound, fmt.Errorf("solution %q not found", slug))
		return
	}
	c.JSON(http.StatusOK, solution)
}

func (s *Server) handleSolutions(c *gin.Context) {
	var p property.Property
	if err := c.ShouldBindJSON(&p); err != nil {
		s.renderError(c, http.StatusBadRequest, err)
		return
	}
	response := evaluateProfile(p)
	if p.Address != "" && p.CeremaFetchedAddress != p.Address {
		s.warmLookups(p.Address, p.Lat, p.Lon)
	}
	logrus.WithFields(logrus.Fields{
		"request_id": response.RequestID,
		"status":     response.Status,
		"scenario":   response.Scenario,
	}).Info("profile evaluated")
	c.JSON(http.StatusOK, response)
}

// evaluateProfile runs the full evaluation pipeline: completeness gate,
// configuration gate, envelope rating, scenario evaluation, share token.
func evaluateProfile(p property.Property) SolutionsResponse {
	response := SolutionsResponse{RequestID: uuid.NewString()}

	if missing := p.MissingFields(); len(missing) > 0 {
		response.Status = StatusIncomplete
		response.MissingFields = missing
		return response
	}
	if warning := p.ConfigurationWarning(); warning != "" {
		response.Status = StatusUnsupported
		response.Message = warning
		return response
	}

	p.EnvelopeQuality = engine.ClassifyEnvelope(p)

	result := engine.Compute(p)
	response.Status = StatusOK
	response.Scenario = engine.SelectScenario(p)
	response.EnvelopeQuality = p.EnvelopeQuality
	response.Result = &result
	response.ShareToken = share.Encode(p)
	return response
}

func (s *Server) handleShare(c *gin.Context) {
	token := strings.TrimSpace(c.Param("token"))
	p := share.Decode(token)
	if p == nil {
		s.renderError(c, http.StatusNotFound, errors.New("lien de partage invalide"))
		return
	}
	c.JSON(http.StatusOK, ShareResponse{
		Property:          *p,
		SolutionsResponse: evaluateProfile(*p),
	})
}

func (s *Server) handleAddress(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	suggestions, err := s.banClient.Search(c.Request.Context(), query)
	if err != nil {
		s.renderError(c, http.StatusBadGateway, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

func (s *Server) handleBuilding(c *gin.Context) {
	address := strings.TrimSpace(c.Query("address"))
	if address == "" {
		s.renderError(c, http.StatusBadRequest, errors.New("address is required"))
		return
	}

	if payload, err := s.db.GetBuildingLookup(address); err == nil {
		var cached cerema.Response
		if err := json.Unmarshal([]byte(payload), &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		logrus.WithError(err).Warn("read building cache")
	}

	response, err := s.ceremaClient.Lookup(c.Request.Context(), address)
	if err != nil {
		s.renderError(c, http.StatusBadGateway, err)
		return
	}
	s.cacheBuildingLookup(address, response)
	c.JSON(http.StatusOK, response)
}

func (s *Server) cacheBuildingLookup(address string, response cerema.Response) {
	payload, err := json.Marshal(response)
	if err != nil {
		return
	}
	if err := s.db.PutBuildingLookup(address, string(payload)); err != nil {
		logrus.WithError(err).Warn("write building cache")
	}
}

func (s *Server) handleHeatNetwork(c *gin.Context) {
	lat, err := parseCoord(c.Query("lat"))
	if err != nil {
		s.renderError(c, http.StatusBadRequest, fmt.Errorf("invalid lat: %w", err))
		return
	}
	lon, err := parseCoord(c.Query("lon"))
	if err != nil {
		s.renderError(c, http.StatusBadRequest, fmt.Errorf("invalid lon: %w", err))
		return
	}

	key := fcu.CoordsKey(lat, lon)
	if payload, err := s.db.GetHeatNetworkLookup(key); err == nil {
		var cached fcu.Eligibility
		if err := json.Unmarshal([]byte(payload), &cached); err == nil {
			c.JSON(http.StatusOK, eligibilityPayload(cached))
			return
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		logrus.WithError(err).Warn("read heat network cache")
	}

	eligibility, err := s.fcuClient.Lookup(c.Request.Context(), lat, lon)
	if err != nil {
		s.renderError(c, http.StatusBadGateway, err)
		return
	}
	s.cacheHeatNetworkLookup(key, eligibility)
	c.JSON(http.StatusOK, eligibilityPayload(eligibility))
}

func eligibilityPayload(e fcu.Eligibility) gin.H {
	return gin.H{
		"distance":   e.Distance,
		"inPDP":      e.InPDP,
		"isEligible": e.IsEligible,
		"networkUrl": e.NetworkURL(),
	}
}

func (s *Server) cacheHeatNetworkLookup(key string, eligibility fcu.Eligibility) {
	payload, err := json.Marshal(eligibility)
	if err != nil {
		return
	}
	if err := s.db.PutHeatNetworkLookup(key, string(payload)); err != nil {
		logrus.WithError(err).Warn("write heat network cache")
	}
}

func (s *Server) handleExportText(c *gin.Context) {
	token := strings.TrimSpace(c.Query("hash"))
	p := share.Decode(token)
	if p == nil {
		s.renderError(c, http.StatusNotFound, errors.New("lien de partage invalide"))
		return
	}

	profile := *p
	profile.EnvelopeQuality = engine.ClassifyEnvelope(profile)
	result := engine.Compute(profile)
	text := export.Text(profile, result, time.Now())

	c.Header("Content-Disposition", "attachment; filename=recapitulatif-solutions.txt")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

func (s *Server) renderError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

func parseCoord(value string) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, errors.New("coordinate is required")
	}
	return strconv.ParseFloat(trimmed, 64)
}

// warmLookups pre-fetches enrichment for an address/coordinate pair in the
// background so the interactive flow hits the cache.
func (s *Server) warmLookups(address string, lat, lon float64) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if address != "" {
			if response, err := s.ceremaClient.Lookup(ctx, address); err == nil {
				s.cacheBuildingLookup(address, response)
			}
		}
		if lat != 0 || lon != 0 {
			if eligibility, err := s.fcuClient.Lookup(ctx, lat, lon); err == nil {
				s.cacheHeatNetworkLookup(fcu.CoordsKey(lat, lon), eligibility)
			}
		}
	}()
}
