package store

import "time"

// BuildingLookup caches one registry response keyed by the exact address
// string sent to the feature service. PayloadJSON holds the normalized
// response so a hit skips both the fetch and the transform.
type BuildingLookup struct {
	AddressKey  string `gorm:"primaryKey;size:512"`
	PayloadJSON string `gorm:"type:text"`
	FetchedAt   time.Time
}

// HeatNetworkLookup caches one eligibility response keyed by the canonical
// coordinate pair string.
type HeatNetworkLookup struct {
	CoordsKey   string `gorm:"primaryKey;size:64"`
	PayloadJSON string `gorm:"type:text"`
	FetchedAt   time.Time
}
