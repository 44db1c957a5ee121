package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"pacoupa/backend/internal/api"
	"pacoupa/backend/internal/ban"
	"pacoupa/backend/internal/cerema"
	"pacoupa/backend/internal/fcu"
)

func main() {
	baseDir, err := os.Getwd()
	if err != nil {
		logrus.Fatalf("determine working directory: %v", err)
	}

	dataDir := filepath.Join(baseDir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		logrus.Fatalf("create data directory: %v", err)
	}

	ceremaCfg := cerema.Config{
		BaseURL: os.Getenv("CEREMA_BASE_URL"),
	}
	if timeout := os.Getenv("CEREMA_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			ceremaCfg.Timeout = d
		}
	}

	fcuCfg := fcu.Config{
		BaseURL: os.Getenv("FCU_BASE_URL"),
	}
	if timeout := os.Getenv("FCU_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			fcuCfg.Timeout = d
		}
	}

	banCfg := ban.Config{
		BaseURL: os.Getenv("BAN_BASE_URL"),
	}

	cacheTTL := 24 * time.Hour
	if ttl := os.Getenv("LOOKUP_CACHE_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil && d > 0 {
			cacheTTL = d
		}
	}

	cfg := api.Config{
		DBPath:   filepath.Join(dataDir, "pacoupa.db"),
		CacheTTL: cacheTTL,
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://127.0.0.1:5173",
			"https://pacoupa.ademe.fr",
		},
		CeremaConfig: ceremaCfg,
		FCUConfig:    fcuCfg,
		BANConfig:    banCfg,
	}

	if override := strings.TrimSpace(os.Getenv("PACOUPA_DB_PATH")); override != "" {
		cfg.DBPath = override
	}
	if origins := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	server, err := api.NewServer(cfg)
	if err != nil {
		logrus.Fatalf("create server: %v", err)
	}
	defer server.Close()

	router, err := server.Router()
	if err != nil {
		logrus.Fatalf("configure router: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "2000"
	}

	logrus.Infof("starting pacoupa backend on :%s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
