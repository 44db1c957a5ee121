package engine

import "pacoupa/backend/internal/property"

// ClassifyEnvelope rates the building envelope from the four insulation
// flags and the construction year. The caller re-invokes it whenever one of
// those five inputs changes and writes the result back into the profile.
func ClassifyEnvelope(p property.Property) property.EnvelopeQuality {
	measures := 0
	for _, insulated := range []bool{
		p.HasEnvelopeInsulationWindows,
		p.HasEnvelopeInsulationWalls,
		p.HasEnvelopeInsulationFloors,
		p.HasEnvelopeInsulationRoof,
	} {
		if insulated {
			measures++
		}
	}

	if measures >= 4 || p.ConstructionYear >= 2005 {
		return property.EnvelopeGood
	}
	if p.ConstructionYear >= 1998 && p.ConstructionYear <= 2005 && measures >= 2 {
		return property.EnvelopeMedium
	}
	return property.EnvelopeBad
}
