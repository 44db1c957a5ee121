package engine

import (
	"testing"

	"pacoupa/backend/internal/property"
)

func TestClassifyEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		windows  bool
		walls    bool
		floors   bool
		roof     bool
		expected property.EnvelopeQuality
	}{
		{"recent build no measures", 2010, false, false, false, false, property.EnvelopeGood},
		{"year 2005 boundary", 2005, false, false, false, false, property.EnvelopeGood},
		{"four measures old build", 1960, true, true, true, true, property.EnvelopeGood},
		{"transition years two measures", 2000, true, true, false, false, property.EnvelopeMedium},
		{"transition years one measure", 2000, true, false, false, false, property.EnvelopeBad},
		{"year 1998 boundary two measures", 1998, false, true, true, false, property.EnvelopeMedium},
		{"old build two measures", 1975, true, true, false, false, property.EnvelopeBad},
		{"old build no measures", 1950, false, false, false, false, property.EnvelopeBad},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := property.Property{
				ConstructionYear:             tc.year,
				HasEnvelopeInsulationWindows: tc.windows,
				HasEnvelopeInsulationWalls:   tc.walls,
				HasEnvelopeInsulationFloors:  tc.floors,
				HasEnvelopeInsulationRoof:    tc.roof,
			}
			if got := ClassifyEnvelope(p); got != tc.expected {
				t.Fatalf("expected %s got %s", tc.expected, got)
			}
		})
	}
}

func TestClassifyEnvelopeRecentYearIgnoresFlags(t *testing.T) {
	// From 2005 onwards the rating is GOOD regardless of insulation flags.
	for measures := 0; measures <= 4; measures++ {
		p := property.Property{ConstructionYear: 2005}
		flags := []*bool{
			&p.HasEnvelopeInsulationWindows,
			&p.HasEnvelopeInsulationWalls,
			&p.HasEnvelopeInsulationFloors,
			&p.HasEnvelopeInsulationRoof,
		}
		for i := 0; i < measures; i++ {
			*flags[i] = true
		}
		if got := ClassifyEnvelope(p); got != property.EnvelopeGood {
			t.Fatalf("measures=%d: expected GOOD got %s", measures, got)
		}
	}
}

func TestClassifyEnvelopeMoreMeasuresNeverDowngrade(t *testing.T) {
	// Within the 1998-2005 window adding a second measure can only improve
	// the rating.
	one := property.Property{ConstructionYear: 2000, HasEnvelopeInsulationWalls: true}
	two := one
	two.HasEnvelopeInsulationRoof = true

	if got := ClassifyEnvelope(one); got != property.EnvelopeBad {
		t.Fatalf("one measure: expected BAD got %s", got)
	}
	if got := ClassifyEnvelope(two); got != property.EnvelopeMedium {
		t.Fatalf("two measures: expected MEDIUM got %s", got)
	}
}
