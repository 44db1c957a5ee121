// Package engine classifies the solution catalog into recommended and
// non-recommended buckets for a given building profile. Evaluation is pure
// and synchronous: no state is held across calls, the profile is read-only,
// and expected outcomes (unsupported combination, no match) are encoded in
// the result, never as errors.
package engine

import (
	"pacoupa/backend/internal/catalog"
	"pacoupa/backend/internal/property"
)

// Scenario identifies which rule-set applies to a profile.
type Scenario string

const (
	ScenarioCollectiveHeatingCollectiveECS Scenario = "chauffage-collectif-ecs-collectif"
	ScenarioCollectiveHeatingIndividualECS Scenario = "chauffage-collectif-ecs-individuel"
	ScenarioIndividualGas                  Scenario = "chauffage-individuel-gaz"
	ScenarioIndividualElectric             Scenario = "chauffage-individuel-electrique"
	ScenarioNone                           Scenario = ""
)

// RequirementKey tags a missing condition with the catalog requirement it
// relates to, for UI cross-referencing. Not every condition has one.
type RequirementKey string

const (
	RequirementEmitterType  RequirementKey = "emitterTypeRequired"
	RequirementDistance     RequirementKey = "distanceRequirement"
	RequirementOutdoorSpace RequirementKey = "outdoorSpaceRequired"
	RequirementIndoorSpace  RequirementKey = "indoorSpaceRequired"
	RequirementNone         RequirementKey = ""
)

// MissingCondition is one unmet eligibility condition of a solution.
type MissingCondition struct {
	Message     string         `json:"message"`
	Requirement RequirementKey `json:"requirement,omitempty"`
}

// Recommendation is a solution the profile qualifies for. Message carries
// the fixed advisory for solutions that are always recommended with a
// caution attached.
type Recommendation struct {
	Solution catalog.Solution `json:"solution"`
	Priority int              `json:"priority"`
	Message  string           `json:"message,omitempty"`
}

// Rejection is a solution with at least one unmet condition. Every failing
// condition is listed; partial lists are a regression.
type Rejection struct {
	Solution          catalog.Solution   `json:"solution"`
	MissingConditions []MissingCondition `json:"missingConditions"`
	Priority          int                `json:"priority"`
}

// Result is the outcome of one evaluation. Both lists keep evaluator
// insertion order, which is also the tie-break for equal priorities.
type Result struct {
	Recommended    []Recommendation `json:"recommendedSolutions"`
	NonRecommended []Rejection      `json:"nonRecommendedSolutions"`
	Messages       []string         `json:"message"`
}

func emptyResult() Result {
	return Result{
		Recommended:    []Recommendation{},
		NonRecommended: []Rejection{},
		Messages:       []string{},
	}
}

// SelectScenario maps the heating/ECS type and energy combination to the
// applicable rule-set. Unsupported combinations return ScenarioNone: callers
// must treat the resulting empty evaluation as a valid, displayable state,
// not a failure.
func SelectScenario(p property.Property) Scenario {
	switch {
	case p.HeatingType == property.HeatingCollective && p.ECSType == property.HeatingCollective:
		return ScenarioCollectiveHeatingCollectiveECS
	case p.HeatingType == property.HeatingCollective && p.ECSType == property.HeatingIndividual:
		return ScenarioCollectiveHeatingIndividualECS
	case p.HeatingType == property.HeatingIndividual && p.ECSType == property.HeatingIndividual &&
		p.HeatingEnergy == property.EnergyGas && p.ECSEnergy == property.EnergyGas:
		return ScenarioIndividualGas
	case p.HeatingType == property.HeatingIndividual && p.ECSType == property.HeatingIndividual &&
		p.HeatingEnergy == property.EnergyElectric && p.ECSEnergy == property.EnergyElectric:
		return ScenarioIndividualElectric
	default:
		return ScenarioNone
	}
}

// Compute routes the profile to its scenario evaluator and returns the
// freshly built result. A profile matching no scenario yields the empty
// result.
func Compute(p property.Property) Result {
	switch SelectScenario(p) {
	case ScenarioCollectiveHeatingCollectiveECS:
		return computeCollectiveHeatingCollectiveECS(p)
	case ScenarioCollectiveHeatingIndividualECS:
		return computeCollectiveHeatingIndividualECS(p)
	case ScenarioIndividualGas:
		return computeIndividualGas(p)
	case ScenarioIndividualElectric:
		return computeIndividualElectric(p)
	default:
		return emptyResult()
	}
}

// condition is one named eligibility check. Conditions are declared in
// order and always all evaluated, so every failure surfaces in the result.
type condition struct {
	ok          bool
	message     string
	requirement RequirementKey
}

// classify appends the solution to the recommended or non-recommended list
// depending on whether every condition holds. A slug missing from the
// catalog is skipped; rule code and catalog are kept in sync by tests.
func (r *Result) classify(slug string, priority int, conds ...condition) {
	sol, ok := catalog.BySlug(slug)
	if !ok {
		return
	}
	var missing []MissingCondition
	for _, c := range conds {
		if !c.ok {
			missing = append(missing, MissingCondition{Message: c.message, Requirement: c.requirement})
		}
	}
	if len(missing) > 0 {
		r.NonRecommended = append(r.NonRecommended, Rejection{
			Solution:          sol,
			MissingConditions: missing,
			Priority:          priority,
		})
		return
	}
	r.Recommended = append(r.Recommended, Recommendation{Solution: sol, Priority: priority})
}

// recommendWithAdvisory appends a solution that has no blocking condition
// but always carries a fixed caution message.
func (r *Result) recommendWithAdvisory(slug string, priority int, message string) {
	sol, ok := catalog.BySlug(slug)
	if !ok {
		return
	}
	r.Recommended = append(r.Recommended, Recommendation{
		Solution: sol,
		Priority: priority,
		Message:  message,
	})
}

// renewableEnergies are the sources that already count as renewable; a
// profile running on one gets congratulated instead of re-equipped.
var renewableEnergies = map[property.Energy]bool{
	property.EnergyHeatNetwork: true,
	property.EnergySolar:       true,
	property.EnergyWood:        true,
}

// waterEmitterOK holds for the emitters a hydronic solution can feed:
// underfloor heating, or radiators when the annual heating need is unknown
// or at most 100 kWh/m².
func waterEmitterOK(p property.Property) bool {
	if p.HeatingEmitterType == property.EmitterUnderfloor {
		return true
	}
	return p.HeatingEmitterType == property.EmitterRadiators &&
		(p.HeatingNeedCerema == nil || *p.HeatingNeedCerema <= 100)
}

// outdoorSpaceAvailable holds when any outdoor space flag is set.
func outdoorSpaceAvailable(p property.Property) bool {
	return p.OutdoorSharedSpaceAvailable || p.OutdoorPrivateSpaceAvailable ||
		p.OutdoorRoofTerraceAvailable || p.OutdoorTechnicalRoom
}

// zoningUnfavorable holds for GMI tiers 1 and 2. A missing tier is not
// unfavorable, it simply does not trip the condition.
func zoningUnfavorable(zoning *int) bool {
	return zoning != nil && (*zoning == 1 || *zoning == 2)
}

// strongWaterPotential holds for the favorable groundwater potential tiers.
func strongWaterPotential(p property.Property) bool {
	return p.GeothermalWaterEnergyPotential == "très fort" || p.GeothermalWaterEnergyPotential == "fort"
}
