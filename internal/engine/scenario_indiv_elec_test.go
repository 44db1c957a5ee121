package engine

import (
	"testing"

	"pacoupa/backend/internal/property"
)

func individualElectricProfile() property.Property {
	return property.Property{
		Address:            "21 avenue Jean Jaurès, 31000 Toulouse",
		ConstructionYear:   1988,
		HousingCount:       "1",
		HeatedArea:         62,
		HeatingType:        property.HeatingIndividual,
		HeatingEnergy:      property.EnergyElectric,
		HeatingEmitterType: property.EmitterConvectors,
		ECSType:            property.HeatingIndividual,
		ECSEnergy:          property.EnergyElectric,
	}
}

func TestIndividualElectricAirAirNeedsPrivateSpace(t *testing.T) {
	p := individualElectricProfile()
	r := Compute(p)

	rej, ok := findRejected(r, "pac-air-air")
	if !ok {
		t.Fatal("expected pac-air-air rejected without private outdoor space")
	}
	if rej.Priority != 1 {
		t.Fatalf("expected priority 1 got %d", rej.Priority)
	}
	if len(rej.MissingConditions) != 1 || rej.MissingConditions[0].Requirement != RequirementOutdoorSpace {
		t.Fatalf("unexpected conditions %+v", rej.MissingConditions)
	}

	p.OutdoorPrivateSpaceAvailable = true
	r = Compute(p)
	if _, ok := findRecommended(r, "pac-air-air"); !ok {
		t.Fatal("expected pac-air-air recommended with private space")
	}
}

func TestIndividualElectricSharedSpaceDoesNotCount(t *testing.T) {
	p := individualElectricProfile()
	p.OutdoorSharedSpaceAvailable = true
	p.OutdoorRoofTerraceAvailable = true
	r := Compute(p)

	if _, ok := findRejected(r, "pac-air-air"); !ok {
		t.Fatal("shared outdoor space must not satisfy the private-space condition")
	}
}

func TestIndividualElectricInteriorWaterHeaterAlwaysRecommended(t *testing.T) {
	p := individualElectricProfile()
	r := Compute(p)

	rec, ok := findRecommended(r, "chauffe-eau-thermodynamique-interieur")
	if !ok {
		t.Fatal("expected interior water heater recommended")
	}
	if rec.Priority != 3 {
		t.Fatalf("expected priority 3 got %d", rec.Priority)
	}
	if rec.Message != "Attention à l'encombrement intérieur (taille d'un gros ballon d'eau chaude)" {
		t.Fatalf("unexpected advisory %q", rec.Message)
	}
}

func TestIndividualElectricGasECSRoutesNowhere(t *testing.T) {
	p := individualElectricProfile()
	p.ECSEnergy = property.EnergyGas
	p.HeatingType = property.HeatingIndividual
	r := Compute(p)

	// Electric heating with gas ECS routes to no rule-set at all.
	if len(r.Recommended) != 0 || len(r.NonRecommended) != 0 || len(r.Messages) != 0 {
		t.Fatalf("expected empty result, got %+v", r)
	}
}
