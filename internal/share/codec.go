// Package share encodes a building profile into the URL-safe token carried
// by shareable links. The token is the only persistence mechanism the
// application has: no server-side profile store exists.
package share

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"pacoupa/backend/internal/property"
)

// Encode serializes the profile into a URL-safe token (base64url without
// padding, so it needs no escaping inside a query string).
func Encode(p property.Property) string {
	data, err := json.Marshal(p)
	if err != nil {
		// Property contains only marshalable field types.
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode is the inverse of Encode. Any malformed token, wrong alphabet,
// truncation, invalid JSON, yields nil: an unreadable link degrades to "no
// profile", it never breaks navigation.
func Decode(token string) *property.Property {
	if token == "" {
		return nil
	}
	// Tolerate padded tokens produced by generic base64url encoders.
	data, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		return nil
	}
	var p property.Property
	if err := json.Unmarshal(data, &p); err != nil {
		return nil
	}
	return &p
}
