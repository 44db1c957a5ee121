package property

import "encoding/json"

// Property is the building profile the recommendation engine evaluates. One
// instance exists per client session; the server never stores it, it travels
// inside the share token. JSON field names are part of the token format and
// must stay stable.
type Property struct {
	Address          string  `json:"address"`
	Lat              float64 `json:"lat"`
	Lon              float64 `json:"lon"`
	ConstructionYear int     `json:"constructionYear"`
	HousingCount     string  `json:"housingCount"`
	HeatedArea       float64 `json:"heatedArea"`

	HeatingType        HeatingType `json:"heatingType"`
	HeatingEnergy      Energy      `json:"heatingEnergy"`
	HeatingEmitterType EmitterType `json:"heatingEmitterType"`
	// Annual heating need in kWh/m², when the registry knows it. Absent is
	// not zero: an unknown need must not satisfy threshold checks.
	HeatingNeedCerema *float64 `json:"heatingNeedCerema"`

	ECSType       HeatingType `json:"ecsType"`
	ECSEnergy     Energy      `json:"ecsEnergy"`
	ECSNeedCerema *float64    `json:"ecsNeedCerema"`

	EnvelopeQuality              EnvelopeQuality `json:"envelopeQuality"`
	HasEnvelopeInsulationWalls   bool            `json:"hasEnvelopeInsulationWalls"`
	HasEnvelopeInsulationRoof    bool            `json:"hasEnvelopeInsulationRoof"`
	HasEnvelopeInsulationFloors  bool            `json:"hasEnvelopeInsulationFloors"`
	HasEnvelopeInsulationWindows bool            `json:"hasEnvelopeInsulationWindows"`

	ConstraintsHeritage             Heritage      `json:"constraintsHeritage"`
	ConstraintsEnvironmental        Environmental `json:"constraintsEnvironmental"`
	ConstraintsAtmosphereProtection bool          `json:"constraintsAtmosphereProtection"`

	OutdoorTechnicalRoom         bool `json:"outdoorTechnicalRoom"`
	OutdoorSharedSpaceAvailable  bool `json:"outdoorSharedSpaceAvailable"`
	OutdoorPrivateSpaceAvailable bool `json:"outdoorPrivateSpaceAvailable"`
	OutdoorRoofTerraceAvailable  bool `json:"outdoorRoofTerraceAvailable"`

	FcuIsInPDP    bool    `json:"fcuIsInPDP"`
	FcuIsEligible bool    `json:"fcuIsEligible"`
	FcuDistance   float64 `json:"fcuDistance"`
	FcuNetworkURL string  `json:"fcuNetworkUrl"`

	GeothermalWaterZoning             *int    `json:"geothermalWaterZoning"`
	GeothermalWaterEnergyPotential    string  `json:"geothermalWaterEnergyPotential"`
	GeothermalWaterTechnicalPotential bool    `json:"geothermalWaterTechnicalPotential"`
	GeothermalProbeZoning             *int    `json:"geothermalProbeZoning"`
	GeothermalProbeCoverageRate       float64 `json:"geothermalProbeCoverageRate"`

	SolarThermalEnergyProduction float64 `json:"solarThermalEnergyProduction"`
	SolarThermalCoverageRate     float64 `json:"solarThermalCoverageRate"`

	// Fetch guards: remember which address / coordinate pair already
	// triggered external enrichment so re-renders do not refetch.
	CeremaFetchedAddress string `json:"ceremaFetchedAddress,omitempty"`
	FcuFetchedCoordsKey  string `json:"fcuFetchedCoordsKey,omitempty"`
}

// Default returns the empty profile a session starts from: enumerations
// unset, numerics zero, booleans false, optional figures absent.
func Default() Property {
	return Property{}
}

// ApplyPatch overlays a sparse JSON patch onto the profile and returns the
// merged copy. Fields absent from the patch keep their current value,
// present fields win wholesale (shallow merge).
func (p Property) ApplyPatch(patch []byte) (Property, error) {
	merged := p
	if err := json.Unmarshal(patch, &merged); err != nil {
		return p, err
	}
	return merged, nil
}
