package property

import "strings"

// HeatingType distinguishes collective boiler rooms from per-unit systems.
type HeatingType string

const (
	HeatingCollective HeatingType = "collectif"
	HeatingIndividual HeatingType = "individuel"
	HeatingTypeUnset  HeatingType = ""
)

// Energy identifies the primary energy source of a heating or ECS subsystem.
type Energy string

const (
	EnergyFioul       Energy = "FIOUL"
	EnergyGPL         Energy = "GPL/BUTANE/PROPANE"
	EnergyGas         Energy = "GAZ"
	EnergyWood        Energy = "BOIS"
	EnergyElectric    Energy = "ELECTRIQUE"
	EnergyCoal        Energy = "CHARBON"
	EnergySolar       Energy = "SOLAIRE"
	EnergyColdNetwork Energy = "RF"
	EnergyHeatNetwork Energy = "RC"
	EnergyUnset       Energy = ""
)

// EmitterType is the in-building heat distribution medium.
type EmitterType string

const (
	EmitterUnderfloor EmitterType = "PLANCHER CHAUFFANT"
	EmitterRadiators  EmitterType = "RADIATEURS"
	EmitterConvectors EmitterType = "CONVECTEURS"
	EmitterUnset      EmitterType = ""
)

// Heritage is the heritage-protection constraint on the parcel.
type Heritage string

const (
	HeritageMonument   Heritage = "monument historique"
	HeritageRemarkable Heritage = "site patrimonial remarquable"
	HeritageNone       Heritage = "aucune"
	HeritageUnset      Heritage = ""
)

// Environmental is the environmental-protection constraint on the parcel.
type Environmental string

const (
	EnvironmentalListedSite    Environmental = "site inscrit ou classé"
	EnvironmentalNatureReserve Environmental = "réserve naturelle"
	EnvironmentalNone          Environmental = "aucune"
	EnvironmentalUnset         Environmental = ""
)

// EnvelopeQuality is the three-tier envelope rating derived from insulation
// measures and construction year.
type EnvelopeQuality string

const (
	EnvelopeGood   EnvelopeQuality = "GOOD"
	EnvelopeMedium EnvelopeQuality = "MEDIUM"
	EnvelopeBad    EnvelopeQuality = "BAD"
	EnvelopeUnset  EnvelopeQuality = ""
)

// Registry values arrive as free text; the tables below are the only
// admitted spellings. Anything else normalizes to the unset value so raw
// strings never reach the evaluators.

var energyTable = map[string]Energy{
	"fioul":              EnergyFioul,
	"gpl/butane/propane": EnergyGPL,
	"gaz":                EnergyGas,
	"bois":               EnergyWood,
	"electricite":        EnergyElectric,
	"electrique":         EnergyElectric,
	"charbon":            EnergyCoal,
	"solaire":            EnergySolar,
	"reseau de chaleur":  EnergyHeatNetwork,
	"rc":                 EnergyHeatNetwork,
	"rf":                 EnergyColdNetwork,
}

var emitterTable = map[string]EmitterType{
	"plancher chauffant": EmitterUnderfloor,
	"radiateur":          EmitterRadiators,
	"radiateurs":         EmitterRadiators,
	"convecteur":         EmitterConvectors,
	"convecteurs":        EmitterConvectors,
}

// ParseHeatingType normalizes a raw installation type string.
func ParseHeatingType(raw string) HeatingType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "collectif":
		return HeatingCollective
	case "individuel":
		return HeatingIndividual
	default:
		return HeatingTypeUnset
	}
}

// ParseEnergy normalizes a raw energy string.
func ParseEnergy(raw string) Energy {
	if e, ok := energyTable[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return e
	}
	return EnergyUnset
}

// ParseEmitterType normalizes a raw heat generator/emitter string.
func ParseEmitterType(raw string) EmitterType {
	if e, ok := emitterTable[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return e
	}
	return EmitterUnset
}
