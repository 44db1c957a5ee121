// Package store persists the responses of external enrichment services in a
// local SQLite database. Only lookups are cached here: building profiles
// live inside share tokens and are never written server-side.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned when no fresh cache row exists for a key.
var ErrNotFound = errors.New("store: not found")

// Database wraps the GORM DB handle and exposes the cache repositories.
type Database struct {
	gorm *gorm.DB
	mu   sync.Mutex
	ttl  time.Duration
}

// Open initializes the SQLite-backed cache at the provided path. Rows older
// than ttl are treated as absent; ttl <= 0 means rows never expire.
func Open(path string, ttl time.Duration, silent bool) (*Database, error) {
	cfg := &gorm.Config{}
	if silent {
		cfg.Logger = logger.Default.LogMode(logger.Silent)
	}
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&BuildingLookup{}, &HeatNetworkLookup{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	if err := db.Exec("PRAGMA journal_mode=WAL").Error; err != nil {
		logrus.WithError(err).Warn("enable WAL mode")
	}
	if err := db.Exec("PRAGMA synchronous=NORMAL").Error; err != nil {
		logrus.WithError(err).Warn("set synchronous pragma")
	}
	return &Database{gorm: db, ttl: ttl}, nil
}

// Close closes the underlying database connection.
func (d *Database) Close() error {
	if d == nil {
		return nil
	}
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) fresh(at time.Time) bool {
	return d.ttl <= 0 || time.Since(at) < d.ttl
}

// GetBuildingLookup returns the cached registry payload for an address key.
func (d *Database) GetBuildingLookup(addressKey string) (string, error) {
	if d == nil {
		return "", ErrNotFound
	}
	key := normalizeAddressKey(addressKey)
	var row BuildingLookup
	if err := d.gorm.First(&row, "address_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if !d.fresh(row.FetchedAt) {
		return "", ErrNotFound
	}
	return row.PayloadJSON, nil
}

// PutBuildingLookup inserts or refreshes the cached registry payload.
func (d *Database) PutBuildingLookup(addressKey, payload string) error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	row := BuildingLookup{
		AddressKey:  normalizeAddressKey(addressKey),
		PayloadJSON: payload,
		FetchedAt:   time.Now(),
	}
	return d.gorm.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload_json", "fetched_at"}),
	}).Create(&row).Error
}

// GetHeatNetworkLookup returns the cached eligibility payload for a
// coordinate key.
func (d *Database) GetHeatNetworkLookup(coordsKey string) (string, error) {
	if d == nil {
		return "", ErrNotFound
	}
	var row HeatNetworkLookup
	if err := d.gorm.First(&row, "coords_key = ?", coordsKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if !d.fresh(row.FetchedAt) {
		return "", ErrNotFound
	}
	return row.PayloadJSON, nil
}

// PutHeatNetworkLookup inserts or refreshes the cached eligibility payload.
func (d *Database) PutHeatNetworkLookup(coordsKey, payload string) error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	row := HeatNetworkLookup{
		CoordsKey:   coordsKey,
		PayloadJSON: payload,
		FetchedAt:   time.Now(),
	}
	return d.gorm.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "coords_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload_json", "fetched_at"}),
	}).Create(&row).Error
}

// PurgeExpired removes rows past their TTL. Called at server startup so the
// cache file does not grow unbounded.
func (d *Database) PurgeExpired() error {
	if d == nil || d.ttl <= 0 {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	cutoff := time.Now().Add(-d.ttl)
	if err := d.gorm.Where("fetched_at < ?", cutoff).Delete(&BuildingLookup{}).Error; err != nil {
		return err
	}
	return d.gorm.Where("fetched_at < ?", cutoff).Delete(&HeatNetworkLookup{}).Error
}

func normalizeAddressKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
