package cerema

import (
	"strconv"

	"pacoupa/backend/internal/property"
)

// Building is one normalized registry record, shaped as a sparse profile
// patch. Pointer fields distinguish "registry does not know" from zero.
type Building struct {
	Address          string   `json:"address"`
	ConstructionYear *int     `json:"constructionYear"`
	HousingCount     *string  `json:"housingCount"`
	HeatedArea       float64  `json:"heatedArea"`
	HeatingNeed      *float64 `json:"heatingNeedCerema"`
	ECSNeed          *float64 `json:"ecsNeedCerema"`

	HeatingType        property.HeatingType `json:"heatingType"`
	HeatingEnergy      property.Energy      `json:"heatingEnergy"`
	HeatingEmitterType property.EmitterType `json:"heatingEmitterType"`
	ECSType            property.HeatingType `json:"ecsType"`
	ECSEnergy          property.Energy      `json:"ecsEnergy"`

	ConstraintsHeritage             property.Heritage      `json:"constraintsHeritage"`
	ConstraintsEnvironmental        property.Environmental `json:"constraintsEnvironmental"`
	ConstraintsAtmosphereProtection bool                   `json:"constraintsAtmosphereProtection"`

	GeothermalWaterZoning          *int     `json:"geothermalWaterZoning"`
	GeothermalWaterEnergyPotential string   `json:"geothermalWaterEnergyPotential"`
	GeothermalProbeZoning          *int     `json:"geothermalProbeZoning"`
	GeothermalProbeCoverageRate    *float64 `json:"geothermalProbeCoverageRate"`

	SolarThermalEnergyProduction *float64 `json:"solarThermalEnergyProduction"`
	SolarThermalCoverageRate     *float64 `json:"solarThermalCoverageRate"`

	DPEClass string `json:"dpeClass,omitempty"`
}

// Response is the lookup outcome. Total counts distinct buildings at the
// address: several registry rows sharing the same characteristics collapse
// into one, ambiguous rows are all returned for the user to pick from.
type Response struct {
	Total     int        `json:"total"`
	Buildings []Building `json:"data"`
}

// Transform normalizes raw registry rows into the lookup response.
func Transform(features []Feature) Response {
	if len(features) == 0 {
		return Response{Total: 0, Buildings: []Building{}}
	}
	if len(features) == 1 || allSimilar(features) {
		return Response{Total: 1, Buildings: []Building{transformSingle(features[0])}}
	}
	buildings := make([]Building, 0, len(features))
	for _, f := range features {
		buildings = append(buildings, transformSingle(f))
	}
	return Response{Total: len(features), Buildings: buildings}
}

// allSimilar reports whether every row agrees on the characteristics that
// matter for the simulator, in which case they describe the same building.
func allSimilar(features []Feature) bool {
	ref := features[0].Attributes
	for _, f := range features[1:] {
		cur := f.Attributes
		if !equalIntPtr(ref.ConstructionYear, cur.ConstructionYear) ||
			!equalIntPtr(ref.HousingCount, cur.HousingCount) ||
			!equalFloatPtr(ref.SurfResInd, cur.SurfResInd) ||
			!equalFloatPtr(ref.SurfResCol, cur.SurfResCol) ||
			!equalFloatPtr(ref.SurfTer, cur.SurfTer) ||
			!equalFloatPtr(ref.NeedResIndHeating, cur.NeedResIndHeating) ||
			!equalFloatPtr(ref.NeedResColHeating, cur.NeedResColHeating) ||
			!equalFloatPtr(ref.NeedTerHeating, cur.NeedTerHeating) ||
			!equalFloatPtr(ref.NeedResIndECS, cur.NeedResIndECS) ||
			!equalFloatPtr(ref.NeedResColECS, cur.NeedResColECS) ||
			!equalFloatPtr(ref.NeedTerECS, cur.NeedTerECS) ||
			ref.HeatingInstallation != cur.HeatingInstallation ||
			ref.HeatingEnergy != cur.HeatingEnergy ||
			ref.HeatingGenerator != cur.HeatingGenerator ||
			ref.ECSInstallation != cur.ECSInstallation ||
			ref.ECSEnergy != cur.ECSEnergy {
			return false
		}
	}
	return true
}

func transformSingle(f Feature) Building {
	a := f.Attributes

	b := Building{
		Address:            a.Address,
		ConstructionYear:   a.ConstructionYear,
		HeatedArea:         floatOrZero(a.SurfResInd) + floatOrZero(a.SurfResCol) + floatOrZero(a.SurfTer),
		HeatingType:        property.ParseHeatingType(a.HeatingInstallation),
		HeatingEnergy:      property.ParseEnergy(a.HeatingEnergy),
		HeatingEmitterType: property.ParseEmitterType(a.HeatingGenerator),
		ECSType:            property.ParseHeatingType(a.ECSInstallation),
		ECSEnergy:          property.ParseEnergy(a.ECSEnergy),

		GeothermalWaterZoning:          a.GmiNappe200,
		GeothermalWaterEnergyPotential: a.PotNappeText,
		GeothermalProbeZoning:          a.GmiSondes200,
		GeothermalProbeCoverageRate:    a.CouvSondes200,
		SolarThermalEnergyProduction:   a.ProdSolarMwhYear,
		SolarThermalCoverageRate:       a.CouvSolarECS,
		DPEClass:                       a.DPEClass,
	}

	if a.HousingCount != nil {
		count := strconv.Itoa(*a.HousingCount)
		b.HousingCount = &count
	}

	// Registry needs are in MWh/year; the profile carries kWh/year. The ECS
	// conversion only scales the tertiary share; kept as shipped so stored
	// profiles stay comparable across versions.
	heatingNeed := (floatOrZero(a.NeedResIndHeating) + floatOrZero(a.NeedResColHeating) + floatOrZero(a.NeedTerHeating)) * 1000
	b.HeatingNeed = &heatingNeed
	ecsNeed := floatOrZero(a.NeedResIndECS) + floatOrZero(a.NeedResColECS) + floatOrZero(a.NeedTerECS)*1000
	b.ECSNeed = &ecsNeed

	if intPtrIsOne(a.AC1) {
		b.ConstraintsHeritage = property.HeritageMonument
	}
	if intPtrIsOne(a.AC4) {
		b.ConstraintsHeritage = property.HeritageRemarkable
	}
	if intPtrIsOne(a.AC2) {
		b.ConstraintsEnvironmental = property.EnvironmentalListedSite
	}
	if intPtrIsOne(a.AC3) {
		b.ConstraintsEnvironmental = property.EnvironmentalNatureReserve
	}
	b.ConstraintsAtmosphereProtection = b.ConstraintsHeritage != property.HeritageUnset ||
		b.ConstraintsEnvironmental != property.EnvironmentalUnset ||
		a.ListePPA != ""

	return b
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intPtrIsOne(v *int) bool {
	return v != nil && *v == 1
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalFloatPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
