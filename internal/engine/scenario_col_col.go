package engine

import "pacoupa/backend/internal/property"

// computeCollectiveHeatingCollectiveECS evaluates the collective heating +
// collective ECS rule-set. When the heating energy is already renewable the
// evaluation short-circuits with the congratulation message alone; a
// renewable ECS energy only adds the message.
func computeCollectiveHeatingCollectiveECS(p property.Property) Result {
	r := emptyResult()

	if renewableEnergies[p.HeatingEnergy] {
		r.Messages = append(r.Messages, "Félicitations vous êtes déjà en énergie renouvelable")
		return r
	}
	if renewableEnergies[p.ECSEnergy] {
		r.Messages = append(r.Messages, "Félicitations vous êtes déjà en énergie renouvelable")
	}

	if p.FcuIsInPDP {
		r.Messages = append(r.Messages,
			"Vous êtes en zone de déploiement prioritaire d'un réseau de chaleur. Il est possible qu'une demande de raccordement au réseau soit obligatoire en cas de changement de système de chauffage.")
	}
	if p.FcuIsEligible {
		r.Messages = append(r.Messages,
			"Vous êtes en zone de potentiel pour le développement d'un réseau de chaleur, informez vous sur un projet en cours.")
	}

	// Réseau de chaleur: solution privilégiée si émetteur à eau et distance < 100m.
	r.classify("reseau-chaleur", 1,
		condition{
			ok:          p.HeatingEmitterType == property.EmitterUnderfloor || p.HeatingEmitterType == property.EmitterRadiators,
			message:     "Émetteur de chaleur non conforme (nécessite plancher chauffant à eau ou radiateur à eau)",
			requirement: RequirementEmitterType,
		},
		condition{
			ok:          p.FcuDistance < 100,
			message:     "Distance au réseau de chaleur supérieure à 100m",
			requirement: RequirementDistance,
		},
	)

	// Géothermie sur nappe (chauffage + ECS).
	r.classify("pac-eau-eau-nappe-chauffage-ecs", 2,
		condition{
			ok:      !zoningUnfavorable(p.GeothermalWaterZoning),
			message: "Zone GMI non favorable",
		},
		condition{
			ok:      !strongWaterPotential(p),
			message: "Potentiel énergétique insuffisant",
		},
		condition{
			ok:      p.GeothermalWaterTechnicalPotential,
			message: "Potentiel technique non favorable",
		},
		condition{
			ok:          waterEmitterOK(p) && p.ConstructionYear >= 2005,
			message:     "Système d'émission non adapté",
			requirement: RequirementEmitterType,
		},
	)

	// Géothermie sur sondes (chauffage + ECS).
	r.classify("pac-eau-eau-sonde-chauffage-ecs", 3,
		condition{
			ok:      !zoningUnfavorable(p.GeothermalProbeZoning),
			message: "Zone GMI non favorable",
		},
		condition{
			ok:      p.GeothermalProbeCoverageRate >= 30,
			message: "Taux de couverture insuffisant",
		},
		condition{
			ok:          waterEmitterOK(p) && p.ConstructionYear >= 2005,
			message:     "Système d'émission non adapté",
			requirement: RequirementEmitterType,
		},
	)

	// Chaudière biomasse.
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

	// PAC air/eau collective (chauffage + ECS).
	r.classify("pac-air-eau-collectif-chauffage-ecs", 5,
		condition{
			ok:          outdoorSpaceAvailable(p),
			message:     "Espace extérieur insuffisant pour l'unité extérieure",
			requirement: RequirementOutdoorSpace,
		},
		condition{
			ok:          waterEmitterOK(p) && p.ConstructionYear >= 2005,
			message:     "Système d'émission non adapté",
			requirement: RequirementEmitterType,
		},
	)

	// Hybridation PAC aéro + chaudière (chauffage + ECS).
	r.classify("hybride-pac-chaudiere-chauffage-ecs", 6,
		condition{
			ok:          outdoorSpaceAvailable(p),
			message:     "Espace extérieur insuffisant pour l'unité extérieure",
			requirement: RequirementOutdoorSpace,
		},
		condition{
			ok:          p.HeatingEmitterType == property.EmitterUnderfloor || p.HeatingEmitterType == property.EmitterRadiators,
			message:     "Émetteur de chaleur non conforme (nécessite plancher chauffant à eau ou radiateur à eau)",
			requirement: RequirementEmitterType,
		},
	)

	// Solaire thermique (ECS uniquement).
	r.classify("solaire-thermique", 7,
		condition{
			ok:          p.OutdoorRoofTerraceAvailable,
			message:     "Toiture terrasse non disponible",
			requirement: RequirementOutdoorSpace,
		},
		condition{
			ok:      p.SolarThermalCoverageRate > 30,
			message: "Taux de couverture solaire insuffisant (>30% requis)",
		},
	)

	// PAC sur capteurs atmosphériques (ECS uniquement).
	r.classify("pac-capteurs-atmospheriques-ecs", 8,
		condition{
			ok:          p.OutdoorRoofTerraceAvailable,
			message:     "Toiture terrasse non disponible",
			requirement: RequirementOutdoorSpace,
		},
		condition{
			ok:          outdoorSpaceAvailable(p),
			message:     "Espace extérieur insuffisant",
			requirement: RequirementOutdoorSpace,
		},
	)

	// PAC sur eaux grises: aucun critère bloquant, toujours proposée avec alerte.
	r.recommendWithAdvisory("pac-eaux-grises-ecs", 9,
		"Nécessite la mise en place d'un circuit de récupération des eaux grises")

	// PAC air/eau dédiée à l'ECS.
	r.classify("pac-air-eau-ecs", 10,
		condition{
			ok:          outdoorSpaceAvailable(p),
			message:     "Espace extérieur insuffisant pour l'unité extérieure",
			requirement: RequirementOutdoorSpace,
		},
	)

	return r
}
