package engine

import "pacoupa/backend/internal/property"

// computeIndividualGas evaluates the individual gas heating rule-set. The
// emitter condition here accepts a recent build as an alternative to a
// low-temperature emitter, unlike the collective scenarios which require
// both.
func computeIndividualGas(p property.Property) Result {
	r := emptyResult()

	if p.HeatingEnergy != property.EnergyGas ||
		(p.ECSEnergy != property.EnergyGas && p.ECSEnergy != property.EnergyElectric) {
		r.Messages = append(r.Messages, "Énergie de chauffage ou d'ECS non compatible")
		return r
	}

	// PAC air/eau avec unité extérieure (chauffage + ECS).
	r.classify("pac-air-eau-individuel-unite-exterieure", 1,
		condition{
			ok:          p.OutdoorPrivateSpaceAvailable,
			message:     "Espace privé extérieur non disponible (balcon, terrasse, jardin privatif requis)",
			requirement: RequirementOutdoorSpace,
		},
		condition{
			ok:          waterEmitterOK(p) || p.ConstructionYear > 2005,
			message:     "Système d'émission non adapté (nécessite plancher chauffant ou radiateurs avec besoin < 100 kWh/m² ou bâtiment construit après 2005)",
			requirement: RequirementEmitterType,
		},
	)

	// PAC air/eau sans unité extérieure (chauffage + ECS).
	r.classify("pac-air-eau-individuel-sans-unite-exterieure", 2,
		condition{
			ok:          waterEmitterOK(p) || p.ConstructionYear > 2005,
			message:     "Système d'émission non adapté (nécessite plancher chauffant ou radiateurs avec besoin < 100 kWh/m² ou bâtiment construit après 2005)",
			requirement: RequirementEmitterType,
		},
	)

	// PAC air extrait/eau (chauffage + ECS).
	r.classify("pac-air-extrait-eau", 3,
		condition{
			ok:          waterEmitterOK(p) || p.ConstructionYear > 2005,
			message:     "Système d'émission non adapté (nécessite plancher chauffant ou radiateurs avec besoin < 100 kWh/m² ou bâtiment construit après 2005)",
			requirement: RequirementEmitterType,
		},
	)

	// Chauffe-eau thermodynamique avec unité extérieure (ECS uniquement).
	r.classify("chauffe-eau-thermodynamique-exterieur", 4,
		condition{
			ok:          p.OutdoorPrivateSpaceAvailable,
			message:     "Espace privé extérieur non disponible (balcon, terrasse, jardin privatif requis)",
			requirement: RequirementOutdoorSpace,
		},
	)

	// Chauffe-eau thermodynamique intérieur (ECS uniquement).
	r.recommendWithAdvisory("chauffe-eau-thermodynamique-interieur", 5,
		"Attention à l'encombrement intérieur (taille d'un gros ballon d'eau chaude)")

	return r
}
