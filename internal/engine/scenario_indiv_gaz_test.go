package engine

import (
	"testing"

	"pacoupa/backend/internal/property"
)

func individualGasProfile() property.Property {
	return property.Property{
		Address:            "8 rue Nationale, 59000 Lille",
		ConstructionYear:   1995,
		HousingCount:       "1",
		HeatedArea:         85,
		HeatingType:        property.HeatingIndividual,
		HeatingEnergy:      property.EnergyGas,
		HeatingEmitterType: property.EmitterRadiators,
		HeatingNeedCerema:  floatPtr(90),
		ECSType:            property.HeatingIndividual,
		ECSEnergy:          property.EnergyGas,
	}
}

func TestIndividualGasIncompatibleEnergiesExplain(t *testing.T) {
	// The router only reaches this rule-set when both energies are GAZ, so
	// its own guard is exercised directly.
	p := individualGasProfile()
	p.ECSEnergy = property.EnergyFioul
	r := computeIndividualGas(p)

	if len(r.Recommended) != 0 || len(r.NonRecommended) != 0 {
		t.Fatal("incompatible energies must not evaluate solutions")
	}
	if len(r.Messages) != 1 || r.Messages[0] != "Énergie de chauffage ou d'ECS non compatible" {
		t.Fatalf("unexpected messages %v", r.Messages)
	}

	if full := Compute(p); len(full.Recommended) != 0 || len(full.NonRecommended) != 0 || len(full.Messages) != 0 {
		t.Fatalf("fioul ECS must route to no scenario, got %+v", full)
	}
}

func TestIndividualGasHeatPumpWithOutdoorUnit(t *testing.T) {
	p := individualGasProfile()
	p.OutdoorPrivateSpaceAvailable = true
	r := Compute(p)

	rec, ok := findRecommended(r, "pac-air-eau-individuel-unite-exterieure")
	if !ok {
		t.Fatal("expected outdoor-unit heat pump recommended")
	}
	if rec.Priority != 1 {
		t.Fatalf("expected priority 1 got %d", rec.Priority)
	}
}

func TestIndividualGasRecentBuildBypassesEmitterCheck(t *testing.T) {
	// Convectors normally fail the emitter condition, but a post-2005
	// build is accepted as an alternative in this rule-set.
	p := individualGasProfile()
	p.HeatingEmitterType = property.EmitterConvectors
	p.ConstructionYear = 2006
	r := Compute(p)

	if _, ok := findRecommended(r, "pac-air-eau-individuel-sans-unite-exterieure"); !ok {
		t.Fatal("expected indoor-unit heat pump recommended for 2006 build")
	}
	if _, ok := findRecommended(r, "pac-air-extrait-eau"); !ok {
		t.Fatal("expected exhaust-air heat pump recommended for 2006 build")
	}
}

func TestIndividualGasYear2005DoesNotBypassEmitterCheck(t *testing.T) {
	// The alternative is strictly after 2005 here.
	p := individualGasProfile()
	p.HeatingEmitterType = property.EmitterConvectors
	p.ConstructionYear = 2005
	r := Compute(p)

	rej, ok := findRejected(r, "pac-air-eau-individuel-sans-unite-exterieure")
	if !ok {
		t.Fatal("expected indoor-unit heat pump rejected for 2005 build with convectors")
	}
	if len(rej.MissingConditions) != 1 || rej.MissingConditions[0].Requirement != RequirementEmitterType {
		t.Fatalf("unexpected conditions %+v", rej.MissingConditions)
	}
}

func TestIndividualGasHighNeedRadiatorsStillPassViaRecentBuild(t *testing.T) {
	p := individualGasProfile()
	p.HeatingNeedCerema = floatPtr(140)
	p.ConstructionYear = 2010
	r := Compute(p)

	if _, ok := findRecommended(r, "pac-air-extrait-eau"); !ok {
		t.Fatal("expected recommendation: recent build compensates high-need radiators")
	}

	p.ConstructionYear = 1995
	r = Compute(p)
	if _, ok := findRejected(r, "pac-air-extrait-eau"); !ok {
		t.Fatal("expected rejection: high-need radiators in an older build")
	}
}

func TestIndividualGasElectricECSSupported(t *testing.T) {
	// Electric ECS passes this rule-set's own energy guard even though the
	// router never selects it for that combination.
	p := individualGasProfile()
	p.ECSEnergy = property.EnergyElectric
	r := computeIndividualGas(p)

	if len(r.Recommended)+len(r.NonRecommended) == 0 {
		t.Fatal("gas heating with electric ECS must be evaluated")
	}
	rec, ok := findRecommended(r, "chauffe-eau-thermodynamique-interieur")
	if !ok {
		t.Fatal("expected interior water heater recommended")
	}
	if rec.Priority != 5 {
		t.Fatalf("expected priority 5 got %d", rec.Priority)
	}
}

func TestIndividualGasWaterHeaterNeedsPrivateSpace(t *testing.T) {
	p := individualGasProfile()
	r := Compute(p)

	rej, ok := findRejected(r, "chauffe-eau-thermodynamique-exterieur")
	if !ok {
		t.Fatal("expected exterior water heater rejected without private space")
	}
	if rej.MissingConditions[0].Requirement != RequirementOutdoorSpace {
		t.Fatalf("unexpected conditions %+v", rej.MissingConditions)
	}
}
