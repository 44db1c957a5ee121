package engine

import "pacoupa/backend/internal/property"

// computeIndividualElectric evaluates the all-electric individual rule-set:
// air/air heat pump for heating, thermodynamic water heaters for ECS.
func computeIndividualElectric(p property.Property) Result {
	r := emptyResult()

	if p.HeatingEnergy != property.EnergyElectric || p.ECSEnergy != property.EnergyElectric {
		r.Messages = append(r.Messages, "Énergie de chauffage ou d'ECS non compatible")
		return r
	}

	// PAC air/air (chauffage uniquement).
	r.classify("pac-air-air", 1,
		condition{
			ok:          p.OutdoorPrivateSpaceAvailable,
			message:     "Espace privé extérieur non disponible (balcon, terrasse, jardin privatif requis)",
			requirement: RequirementOutdoorSpace,
		},
	)

	// Chauffe-eau thermodynamique avec unité extérieure (ECS uniquement).
	r.classify("chauffe-eau-thermodynamique-exterieur", 2,
		condition{
			ok:          p.OutdoorPrivateSpaceAvailable,
			message:     "Espace privé extérieur non disponible (balcon, terrasse, jardin privatif requis)",
			requirement: RequirementOutdoorSpace,
		},
	)

	// Chauffe-eau thermodynamique intérieur (ECS uniquement).
	r.recommendWithAdvisory("chauffe-eau-thermodynamique-interieur", 3,
		"Attention à l'encombrement intérieur (taille d'un gros ballon d'eau chaude)")

	return r
}
