package engine

import (
	"testing"

	"pacoupa/backend/internal/property"
)

func collectiveGasProfile() property.Property {
	return property.Property{
		Address:            "12 rue de la Paix, 75002 Paris",
		ConstructionYear:   1975,
		HousingCount:       "24",
		HeatedArea:         1800,
		HeatingType:        property.HeatingCollective,
		HeatingEnergy:      property.EnergyGas,
		HeatingEmitterType: property.EmitterRadiators,
		HeatingNeedCerema:  floatPtr(80),
		ECSType:            property.HeatingCollective,
		ECSEnergy:          property.EnergyGas,
		FcuDistance:        50,
	}
}

func TestCollectiveHeatNetworkRecommendedWhenClose(t *testing.T) {
	p := collectiveGasProfile()
	r := Compute(p)

	rec, ok := findRecommended(r, "reseau-chaleur")
	if !ok {
		t.Fatal("expected reseau-chaleur in recommended solutions")
	}
	if rec.Priority != 1 {
		t.Fatalf("expected priority 1 got %d", rec.Priority)
	}
	if rec.Message != "" {
		t.Fatalf("unexpected advisory message %q", rec.Message)
	}
}

func TestCollectiveHeatNetworkRejectedBeyond100m(t *testing.T) {
	p := collectiveGasProfile()
	p.FcuDistance = 150
	r := Compute(p)

	rej, ok := findRejected(r, "reseau-chaleur")
	if !ok {
		t.Fatal("expected reseau-chaleur in non-recommended solutions")
	}
	if rej.Priority != 1 {
		t.Fatalf("expected priority 1 got %d", rej.Priority)
	}
	if len(rej.MissingConditions) != 1 {
		t.Fatalf("expected exactly 1 missing condition got %d", len(rej.MissingConditions))
	}
	cond := rej.MissingConditions[0]
	if cond.Requirement != RequirementDistance {
		t.Fatalf("expected distanceRequirement tag got %q", cond.Requirement)
	}
	if cond.Message != "Distance au réseau de chaleur supérieure à 100m" {
		t.Fatalf("unexpected message %q", cond.Message)
	}
}

func TestCollectiveHeatNetworkAllFailuresReported(t *testing.T) {
	p := collectiveGasProfile()
	p.HeatingEmitterType = property.EmitterConvectors
	p.FcuDistance = 500
	r := Compute(p)

	rej, ok := findRejected(r, "reseau-chaleur")
	if !ok {
		t.Fatal("expected reseau-chaleur rejection")
	}
	if len(rej.MissingConditions) != 2 {
		t.Fatalf("expected both failing conditions reported, got %d", len(rej.MissingConditions))
	}
}

func TestCollectiveRenewableHeatingShortCircuits(t *testing.T) {
	p := collectiveGasProfile()
	p.HeatingEnergy = property.EnergyWood
	r := Compute(p)

	if len(r.Recommended) != 0 || len(r.NonRecommended) != 0 {
		t.Fatal("renewable heating energy must skip solution evaluation")
	}
	if len(r.Messages) != 1 || r.Messages[0] != "Félicitations vous êtes déjà en énergie renouvelable" {
		t.Fatalf("unexpected messages %v", r.Messages)
	}
}

func TestCollectiveRenewableECSOnlyAddsMessage(t *testing.T) {
	p := collectiveGasProfile()
	p.ECSEnergy = property.EnergySolar
	r := Compute(p)

	if len(r.Messages) == 0 || r.Messages[0] != "Félicitations vous êtes déjà en énergie renouvelable" {
		t.Fatalf("expected congratulation message, got %v", r.Messages)
	}
	if len(r.Recommended)+len(r.NonRecommended) == 0 {
		t.Fatal("renewable ECS energy must not skip solution evaluation")
	}
}

func TestCollectiveHeatNetworkZoneMessages(t *testing.T) {
	p := collectiveGasProfile()
	p.FcuIsInPDP = true
	p.FcuIsEligible = true
	r := Compute(p)

	if len(r.Messages) != 2 {
		t.Fatalf("expected 2 advisory messages got %d: %v", len(r.Messages), r.Messages)
	}
	// Advisories are additive: the heat network solution itself is still
	// evaluated on its own conditions.
	if _, ok := findRecommended(r, "reseau-chaleur"); !ok {
		t.Fatal("expected reseau-chaleur still recommended")
	}
}

// The groundwater heat pump flags the favorable potential tiers as a
// missing condition in this scenario, the opposite of the mixed-ECS
// scenario. Deliberately pinned: the behavior is reproduced as shipped, and
// a fix must be a conscious product decision that updates this test.
func TestCollectiveGroundwaterPotentialCheckIsInverted(t *testing.T) {
	p := collectiveGasProfile()
	p.ConstructionYear = 2010
	p.GeothermalWaterZoning = intPtr(3)
	p.GeothermalWaterTechnicalPotential = true

	p.GeothermalWaterEnergyPotential = "fort"
	r := Compute(p)
	rej, ok := findRejected(r, "pac-eau-eau-nappe-chauffage-ecs")
	if !ok {
		t.Fatal("expected nappe solution rejected when potential is favorable")
	}
	if len(rej.MissingConditions) != 1 || rej.MissingConditions[0].Message != "Potentiel énergétique insuffisant" {
		t.Fatalf("unexpected conditions %+v", rej.MissingConditions)
	}

	p.GeothermalWaterEnergyPotential = "faible"
	r = Compute(p)
	if _, ok := findRecommended(r, "pac-eau-eau-nappe-chauffage-ecs"); !ok {
		t.Fatal("expected nappe solution recommended when potential is not in the favorable set")
	}
}

func TestCollectiveProbeHeatPumpConditions(t *testing.T) {
	p := collectiveGasProfile()
	p.ConstructionYear = 2010
	p.GeothermalProbeZoning = intPtr(1)
	p.GeothermalProbeCoverageRate = 20
	r := Compute(p)

	rej, ok := findRejected(r, "pac-eau-eau-sonde-chauffage-ecs")
	if !ok {
		t.Fatal("expected sonde solution rejected")
	}
	if len(rej.MissingConditions) != 2 {
		t.Fatalf("expected zoning and coverage failures, got %+v", rej.MissingConditions)
	}

	p.GeothermalProbeZoning = intPtr(3)
	p.GeothermalProbeCoverageRate = 30
	r = Compute(p)
	if _, ok := findRecommended(r, "pac-eau-eau-sonde-chauffage-ecs"); !ok {
		t.Fatal("expected sonde solution recommended at coverage 30 in zone 3")
	}
}

func TestCollectiveEmitterConditionRequiresRecentBuild(t *testing.T) {
	// Underfloor heating alone is not enough here: the collective hydronic
	// heat pumps also require a post-2005 build.
	p := collectiveGasProfile()
	p.HeatingEmitterType = property.EmitterUnderfloor
	p.ConstructionYear = 1990
	p.GeothermalProbeZoning = intPtr(3)
	p.GeothermalProbeCoverageRate = 50
	r := Compute(p)

	rej, ok := findRejected(r, "pac-eau-eau-sonde-chauffage-ecs")
	if !ok {
		t.Fatal("expected sonde solution rejected for pre-2005 build")
	}
	if len(rej.MissingConditions) != 1 || rej.MissingConditions[0].Requirement != RequirementEmitterType {
		t.Fatalf("unexpected conditions %+v", rej.MissingConditions)
	}
}

func TestCollectiveUnknownHeatingNeedKeepsRadiatorsEligible(t *testing.T) {
	// An absent Cerema need must not fail the radiator path, but a known
	// high need must.
	p := collectiveGasProfile()
	p.ConstructionYear = 2010
	p.GeothermalProbeZoning = intPtr(3)
	p.GeothermalProbeCoverageRate = 50

	p.HeatingNeedCerema = nil
	r := Compute(p)
	if _, ok := findRecommended(r, "pac-eau-eau-sonde-chauffage-ecs"); !ok {
		t.Fatal("expected recommendation with unknown heating need")
	}

	p.HeatingNeedCerema = floatPtr(150)
	r = Compute(p)
	if _, ok := findRejected(r, "pac-eau-eau-sonde-chauffage-ecs"); !ok {
		t.Fatal("expected rejection with heating need above 100")
	}
}

func TestCollectiveSolarThermalThreshold(t *testing.T) {
	p := collectiveGasProfile()
	p.OutdoorRoofTerraceAvailable = true

	p.SolarThermalCoverageRate = 30
	r := Compute(p)
	rej, ok := findRejected(r, "solaire-thermique")
	if !ok {
		t.Fatal("expected solar thermal rejected at coverage 30")
	}
	if len(rej.MissingConditions) != 1 || rej.MissingConditions[0].Message != "Taux de couverture solaire insuffisant (>30% requis)" {
		t.Fatalf("unexpected conditions %+v", rej.MissingConditions)
	}

	p.SolarThermalCoverageRate = 31
	r = Compute(p)
	if _, ok := findRecommended(r, "solaire-thermique"); !ok {
		t.Fatal("expected solar thermal recommended at coverage 31")
	}
}

func TestCollectiveGreyWaterAlwaysAdvisory(t *testing.T) {
	p := collectiveGasProfile()
	r := Compute(p)

	rec, ok := findRecommended(r, "pac-eaux-grises-ecs")
	if !ok {
		t.Fatal("expected grey-water heat pump always recommended")
	}
	if rec.Message != "Nécessite la mise en place d'un circuit de récupération des eaux grises" {
		t.Fatalf("unexpected advisory %q", rec.Message)
	}
}

func TestCollectiveBiomassNeedsOutdoorSpace(t *testing.T) {
	p := collectiveGasProfile()
	r := Compute(p)

	rej, ok := findRejected(r, "biomasse-chaudiere")
	if !ok {
		t.Fatal("expected biomass rejected without outdoor space")
	}
	if len(rej.MissingConditions) != 1 || rej.MissingConditions[0].Requirement != RequirementOutdoorSpace {
		t.Fatalf("unexpected conditions %+v", rej.MissingConditions)
	}

	// Any one outdoor flag satisfies the storage condition.
	p.OutdoorTechnicalRoom = true
	r = Compute(p)
	if _, ok := findRecommended(r, "biomasse-chaudiere"); !ok {
		t.Fatal("expected biomass recommended with a technical room")
	}
}

func TestCollectivePrioritiesFollowCatalogOrder(t *testing.T) {
	p := collectiveGasProfile()
	r := Compute(p)

	seen := make(map[string]int)
	for _, rec := range r.Recommended {
		seen[rec.Solution.Slug] = rec.Priority
	}
	for _, rej := range r.NonRecommended {
		seen[rej.Solution.Slug] = rej.Priority
	}
	expected := map[string]int{
		"reseau-chaleur":                      1,
		"pac-eau-eau-nappe-chauffage-ecs":     2,
		"pac-eau-eau-sonde-chauffage-ecs":     3,
		"biomasse-chaudiere":                  4,
		"pac-air-eau-collectif-chauffage-ecs": 5,
		"hybride-pac-chaudiere-chauffage-ecs": 6,
		"solaire-thermique":                   7,
		"pac-capteurs-atmospheriques-ecs":     8,
		"pac-eaux-grises-ecs":                 9,
		"pac-air-eau-ecs":                     10,
	}
	for slug, priority := range expected {
		got, ok := seen[slug]
		if !ok {
			t.Fatalf("solution %q absent from result", slug)
		}
		if got != priority {
			t.Fatalf("solution %q: expected priority %d got %d", slug, priority, got)
		}
	}
}
