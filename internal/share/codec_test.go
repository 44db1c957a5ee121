package share

import (
	"reflect"
	"strings"
	"testing"

	"pacoupa/backend/internal/property"
)

func sampleProfile() property.Property {
	need := 85.5
	zone := 3
	return property.Property{
		Address:                      "10 rue de Rivoli, 75004 Paris",
		Lat:                          48.8553,
		Lon:                          2.3572,
		ConstructionYear:             1968,
		HousingCount:                 "36",
		HeatedArea:                   2400.5,
		HeatingType:                  property.HeatingCollective,
		HeatingEnergy:                property.EnergyGas,
		HeatingEmitterType:           property.EmitterRadiators,
		HeatingNeedCerema:            &need,
		ECSType:                      property.HeatingCollective,
		ECSEnergy:                    property.EnergyGas,
		EnvelopeQuality:              property.EnvelopeMedium,
		HasEnvelopeInsulationWalls:   true,
		HasEnvelopeInsulationWindows: true,
		ConstraintsHeritage:          property.HeritageNone,
		ConstraintsEnvironmental:     property.EnvironmentalNone,
		OutdoorSharedSpaceAvailable:  true,
		FcuIsEligible:                true,
		FcuDistance:                  74,
		FcuNetworkURL:                "https://france-chaleur-urbaine.beta.gouv.fr/reseaux/7501C",
		GeothermalWaterZoning:        &zone,
		SolarThermalCoverageRate:     42,
	}
}

func TestCodecRoundTrip(t *testing.T) {
	p := sampleProfile()
	token := Encode(p)
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	decoded := Decode(token)
	if decoded == nil {
		t.Fatal("expected decodable token")
	}
	if !reflect.DeepEqual(*decoded, p) {
		t.Fatalf("round trip mismatch:\nencoded %+v\ndecoded %+v", p, *decoded)
	}
}

func TestCodecTokenIsURLSafe(t *testing.T) {
	token := Encode(sampleProfile())
	if strings.ContainsAny(token, "+/=") {
		t.Fatalf("token must not need URL escaping, got %q", token)
	}
}

func TestCodecRoundTripEmptyProfile(t *testing.T) {
	decoded := Decode(Encode(property.Default()))
	if decoded == nil {
		t.Fatal("expected decodable token")
	}
	if !reflect.DeepEqual(*decoded, property.Default()) {
		t.Fatalf("empty profile round trip mismatch: %+v", *decoded)
	}
}

func TestDecodeMalformedTokens(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"wrong alphabet", "not-base64!!"},
		{"valid base64 invalid json", "bm90LWpzb24"},
		{"truncated", Encode(sampleProfile())[:10]},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decode(tc.token); got != nil {
				t.Fatalf("expected nil for malformed token, got %+v", got)
			}
		})
	}
}

func TestDecodeToleratesPadding(t *testing.T) {
	p := sampleProfile()
	token := Encode(p)
	padded := token
	for len(padded)%4 != 0 {
		padded += "="
	}
	decoded := Decode(padded)
	if decoded == nil {
		t.Fatal("expected padded token to decode")
	}
	if !reflect.DeepEqual(*decoded, p) {
		t.Fatal("padded token round trip mismatch")
	}
}
