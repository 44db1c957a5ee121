package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T, ttl time.Duration) *Database {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "cache.db"), ttl, true)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestBuildingLookupRoundTrip(t *testing.T) {
	db := openTestDB(t, time.Hour)

	if _, err := db.GetBuildingLookup("12 rue de la Paix"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}

	if err := db.PutBuildingLookup("12 Rue de la Paix", `{"total":1}`); err != nil {
		t.Fatalf("put building lookup: %v", err)
	}

	// Address keys are case-insensitive.
	payload, err := db.GetBuildingLookup("12 RUE DE LA PAIX")
	if err != nil {
		t.Fatalf("get building lookup: %v", err)
	}
	if payload != `{"total":1}` {
		t.Fatalf("unexpected payload %q", payload)
	}
}

func TestBuildingLookupUpsertRefreshes(t *testing.T) {
	db := openTestDB(t, time.Hour)

	if err := db.PutBuildingLookup("12 rue de la Paix", `{"total":1}`); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := db.PutBuildingLookup("12 rue de la Paix", `{"total":2}`); err != nil {
		t.Fatalf("second put: %v", err)
	}

	payload, err := db.GetBuildingLookup("12 rue de la Paix")
	if err != nil {
		t.Fatalf("get building lookup: %v", err)
	}
	if payload != `{"total":2}` {
		t.Fatalf("expected refreshed payload got %q", payload)
	}
}

func TestHeatNetworkLookupRoundTrip(t *testing.T) {
	db := openTestDB(t, time.Hour)

	if err := db.PutHeatNetworkLookup("48.868700,2.331700", `{"isEligible":true}`); err != nil {
		t.Fatalf("put heat network lookup: %v", err)
	}
	payload, err := db.GetHeatNetworkLookup("48.868700,2.331700")
	if err != nil {
		t.Fatalf("get heat network lookup: %v", err)
	}
	if payload != `{"isEligible":true}` {
		t.Fatalf("unexpected payload %q", payload)
	}
	if _, err := db.GetHeatNetworkLookup("0.000000,0.000000"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestExpiredRowsAreAbsent(t *testing.T) {
	db := openTestDB(t, time.Nanosecond)

	if err := db.PutBuildingLookup("12 rue de la Paix", `{"total":1}`); err != nil {
		t.Fatalf("put building lookup: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := db.GetBuildingLookup("12 rue de la Paix"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected expired row to read as ErrNotFound got %v", err)
	}
	if err := db.PurgeExpired(); err != nil {
		t.Fatalf("purge expired: %v", err)
	}
}

func TestZeroTTLNeverExpires(t *testing.T) {
	db := openTestDB(t, 0)

	if err := db.PutBuildingLookup("12 rue de la Paix", `{"total":1}`); err != nil {
		t.Fatalf("put building lookup: %v", err)
	}
	if _, err := db.GetBuildingLookup("12 rue de la Paix"); err != nil {
		t.Fatalf("rows must not expire with ttl 0: %v", err)
	}
}
