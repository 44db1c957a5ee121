package engine

import "pacoupa/backend/internal/property"

// computeCollectiveHeatingIndividualECS evaluates collective heating with
// per-unit ECS. Out-of-range energies return the empty result without a
// message; the configuration pre-check is expected to have caught the
// combinations worth explaining.
func computeCollectiveHeatingIndividualECS(p property.Property) Result {
	r := emptyResult()

	heatingSupported := p.HeatingEnergy == property.EnergyGas ||
		p.HeatingEnergy == property.EnergyFioul ||
		p.HeatingEnergy == property.EnergyElectric
	ecsSupported := p.ECSEnergy == property.EnergyGas || p.ECSEnergy == property.EnergyElectric
	if !heatingSupported || !ecsSupported {
		return r
	}

	// Réseau de chaleur: cette configuration tolère jusqu'à 200m.
	r.classify("reseau-chaleur", 1,
		condition{
			ok:          p.HeatingEmitterType == property.EmitterUnderfloor || p.HeatingEmitterType == property.EmitterRadiators,
			message:     "Émetteur de chaleur non conforme (nécessite plancher chauffant à eau ou radiateur à eau)",
			requirement: RequirementEmitterType,
		},
		condition{
			ok:          !(p.FcuDistance > 200),
			message:     "Distance au réseau de chaleur supérieure à 200m",
			requirement: RequirementDistance,
		},
	)

	// Géothermie sur nappe (chauffage seul).
	r.classify("pac-eau-eau-nappe-chauffage", 2,
		condition{
			ok:      !zoningUnfavorable(p.GeothermalWaterZoning),
			message: "Zone GMI non favorable (nécessite zone orange ou vert)",
		},
		condition{
			ok:      strongWaterPotential(p),
			message: "Potentiel énergétique insuffisant (nécessite très fort ou fort)",
		},
		condition{
			ok:      p.GeothermalWaterTechnicalPotential,
			message: "Potentiel technique non favorable",
		},
		condition{
			ok:          waterEmitterOK(p) && p.ConstructionYear >= 2005,
			message:     "Système d'émission non adapté (nécessite plancher chauffant ou radiateurs avec besoin < 100 kWh/m² ou bâtiment construit après 2005)",
			requirement: RequirementEmitterType,
		},
	)

	// Géothermie sur sondes (chauffage seul).
	r.classify("pac-eau-eau-sonde-chauffage", 3,
		condition{
			ok:      !zoningUnfavorable(p.GeothermalProbeZoning),
			message: "Zone GMI non favorable (nécessite zone orange ou vert)",
		},
		condition{
			ok:      p.GeothermalProbeCoverageRate >= 30,
			message: "Taux de couverture insuffisant (>30% requis)",
		},
		condition{
			ok:          waterEmitterOK(p) && p.ConstructionYear >= 2005,
			message:     "Système d'émission non adapté (nécessite plancher chauffant ou radiateurs avec besoin < 100 kWh/m² ou bâtiment construit après 2005)",
			requirement: RequirementEmitterType,
		},
	)

	// Chaudière biomasse: produit aussi l'ECS.
	r.classify("biomasse-chaudiere", 4,
		condition{
			ok:          p.HeatingEmitterType == property.EmitterUnderfloor || p.HeatingEmitterType == property.EmitterRadiators,
			message:     "Émetteur de chaleur non conforme (nécessite plancher chauffant à eau ou radiateur à eau)",
			requirement: RequirementEmitterType,
		},
		condition{
			ok:          outdoorSpaceAvailable(p),
			message:     "Espace extérieur insuffisant pour le stockage du combustible et les livraisons",
			requirement: RequirementOutdoorSpace,
		},
	)

	// PAC air/eau collective (chauffage seul).
	r.classify("pac-air-eau-collectif-chauffage", 5,
		condition{
			ok:          outdoorSpaceAvailable(p),
			message:     "Espace extérieur insuffisant pour l'unité extérieure",
			requirement: RequirementOutdoorSpace,
		},
		condition{
			ok:          waterEmitterOK(p) && p.ConstructionYear >= 2005,
			message:     "Système d'émission non adapté (nécessite plancher chauffant ou radiateurs avec besoin < 100 kWh/m² ou bâtiment construit après 2005)",
			requirement: RequirementEmitterType,
		},
	)

	// Hybridation PAC aéro + chaudière (chauffage seul). Pertinente
	// uniquement pour les gros besoins: un besoin connu et faible la
	// disqualifie. Un besoin à zéro vaut inconnu: le registre émet 0 quand
	// il n'a pas de donnée.
	r.classify("hybride-pac-chaudiere-chauffage", 6,
		condition{
			ok:          outdoorSpaceAvailable(p),
			message:     "Espace extérieur insuffisant pour l'unité extérieure",
			requirement: RequirementOutdoorSpace,
		},
		condition{
			ok:      !(p.HeatingNeedCerema != nil && *p.HeatingNeedCerema != 0 && *p.HeatingNeedCerema <= 100),
			message: "Besoin de chauffage insuffisant (l'hybridation est pertinente uniquement si besoin > 100 kWh/m²)",
		},
		condition{
			ok:          p.HeatingEmitterType == property.EmitterUnderfloor || p.HeatingEmitterType == property.EmitterRadiators,
			message:     "Émetteur de chaleur non conforme (nécessite plancher chauffant à eau ou radiateur à eau)",
			requirement: RequirementEmitterType,
		},
	)

	// Chauffe-eau thermodynamique avec unité extérieure: espace privatif requis.
	r.classify("chauffe-eau-thermodynamique-exterieur", 7,
		condition{
			ok:          p.OutdoorPrivateSpaceAvailable,
			message:     "Espace privé extérieur non disponible (balcon, terrasse, jardin privatif requis)",
			requirement: RequirementOutdoorSpace,
		},
	)

	// Chauffe-eau thermodynamique intérieur: toujours recommandé, alerte encombrement.
	r.recommendWithAdvisory("chauffe-eau-thermodynamique-interieur", 8,
		"Attention à l'encombrement intérieur (taille d'un gros ballon d'eau chaude)")

	return r
}
