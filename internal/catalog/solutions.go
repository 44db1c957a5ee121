package catalog

// Solutions is the ordered reference list of candidate solutions. Order and
// slugs are part of the product definition; the evaluators reference entries
// by slug and attach their own scenario-local priorities.
var Solutions = []Solution{
	{
		Slug:        "reseau-chaleur",
		Title:       "Raccordement à un réseau de chaleur",
		Type:        "collectif",
		Description: "Raccordement de l'immeuble au réseau de chaleur urbain le plus proche pour le chauffage et l'eau chaude sanitaire.",
		HasHeating:  true,
		HasECS:      true,

		CostMaterial:    "100 à 400 € / MWh raccordé selon la distance",
		CostMaintenance: "Faible (abonnement au réseau)",
		CostMwh:         "80 à 120 € / MWh",
		DpeGain:         "+1 à +2 classes",
		CO2Emissions:    "Faibles (dépend du mix du réseau)",

		EmitterTypeRequired: "Plancher chauffant à eau ou radiateurs à eau",
		DistanceRequirement: "Réseau de chaleur à proximité immédiate de la parcelle",
		IndoorSpaceRequired: "Local technique pour la sous-station",
	},
	{
		Slug:        "pac-eau-eau-nappe-chauffage-ecs",
		Title:       "PAC eau/eau sur nappe (chauffage + ECS)",
		Type:        "collectif",
		Description: "Pompe à chaleur géothermique puisant sur la nappe phréatique, couvrant le chauffage et l'eau chaude sanitaire de la copropriété.",
		HasHeating:  true,
		HasECS:      true,

		CostMaterial:    "1 200 à 1 800 € / logement",
		CostMaintenance: "Moyen (entretien des forages)",
		CostMwh:         "60 à 90 € / MWh",
		DpeGain:         "+2 classes",
		CO2Emissions:    "Très faibles",

		EmitterTypeRequired:  "Plancher chauffant ou radiateurs basse température",
		OutdoorSpaceRequired: "Accès à la parcelle pour les forages",
		OtherConditions:      []string{"Zonage géothermique favorable", "Potentiel de la nappe suffisant"},
	},
	{
		Slug:        "pac-eau-eau-sonde-chauffage-ecs",
		Title:       "PAC eau/eau sur sondes (chauffage + ECS)",
		Type:        "collectif",
		Description: "Pompe à chaleur géothermique sur sondes verticales sèches, couvrant le chauffage et l'eau chaude sanitaire.",
		HasHeating:  true,
		HasECS:      true,

		CostMaterial:    "1 400 à 2 000 € / logement",
		CostMaintenance: "Moyen",
		CostMwh:         "60 à 90 € / MWh",
		DpeGain:         "+2 classes",
		CO2Emissions:    "Très faibles",

		EmitterTypeRequired:  "Plancher chauffant ou radiateurs basse température",
		OutdoorSpaceRequired: "Emprise au sol pour le champ de sondes",
		OtherConditions:      []string{"Zonage géothermique favorable", "Taux de couverture des sondes suffisant"},
	},
	{
		Slug:        "pac-eau-eau-nappe-chauffage",
		Title:       "PAC eau/eau sur nappe (chauffage seul)",
		Type:        "collectif",
		Description: "Pompe à chaleur géothermique sur nappe dédiée au chauffage collectif, la production d'eau chaude restant individuelle.",
		HasHeating:  true,

		CostMaterial:    "1 000 à 1 500 € / logement",
		CostMaintenance: "Moyen (entretien des forages)",
		CostMwh:         "60 à 90 € / MWh",
		DpeGain:         "+1 à +2 classes",
		CO2Emissions:    "Très faibles",

		EmitterTypeRequired:  "Plancher chauffant ou radiateurs basse température",
		OutdoorSpaceRequired: "Accès à la parcelle pour les forages",
		OtherConditions:      []string{"Zonage géothermique favorable", "Potentiel de la nappe suffisant"},
	},
	{
		Slug:        "pac-eau-eau-sonde-chauffage",
		Title:       "PAC eau/eau sur sondes (chauffage seul)",
		Type:        "collectif",
		Description: "Pompe à chaleur géothermique sur sondes verticales dédiée au chauffage collectif.",
		HasHeating:  true,

		CostMaterial:    "1 200 à 1 700 € / logement",
		CostMaintenance: "Moyen",
		CostMwh:         "60 à 90 € / MWh",
		DpeGain:         "+1 à +2 classes",
		CO2Emissions:    "Très faibles",

		EmitterTypeRequired:  "Plancher chauffant ou radiateurs basse température",
		OutdoorSpaceRequired: "Emprise au sol pour le champ de sondes",
		OtherConditions:      []string{"Zonage géothermique favorable", "Taux de couverture des sondes suffisant"},
	},
	{
		Slug:        "biomasse-chaudiere",
		Title:       "Chaudière biomasse collective",
		Type:        "collectif",
		Description: "Chaudière collective au bois (granulés ou plaquettes) remplaçant la chaudière existante, avec silo de stockage du combustible.",
		HasHeating:  true,
		HasECS:      true,

		CostMaterial:    "900 à 1 400 € / logement",
		CostMaintenance: "Élevé (ramonage, décendrage, livraisons)",
		CostMwh:         "70 à 100 € / MWh",
		DpeGain:         "+1 à +2 classes",
		CO2Emissions:    "Faibles (biomasse renouvelable)",

		EmitterTypeRequired:  "Plancher chauffant à eau ou radiateurs à eau",
		OutdoorSpaceRequired: "Espace pour le silo et l'accès des camions de livraison",
	},
	{
		Slug:        "pac-air-eau-collectif-chauffage-ecs",
		Title:       "PAC air/eau collective (chauffage + ECS)",
		Type:        "collectif",
		Description: "Pompe à chaleur aérothermique collective alimentant le réseau d'eau de chauffage et la production d'eau chaude sanitaire.",
		HasHeating:  true,
		HasECS:      true,

		CostMaterial:    "800 à 1 200 € / logement",
		CostMaintenance: "Moyen",
		CostMwh:         "80 à 110 € / MWh",
		DpeGain:         "+1 à +2 classes",
		CO2Emissions:    "Faibles",

		EmitterTypeRequired:  "Plancher chauffant ou radiateurs basse température",
		OutdoorSpaceRequired: "Espace extérieur pour les unités extérieures",
	},
	{
		Slug:        "pac-air-eau-collectif-chauffage",
		Title:       "PAC air/eau collective (chauffage seul)",
		Type:        "collectif",
		Description: "Pompe à chaleur aérothermique collective dédiée au chauffage, la production d'eau chaude restant individuelle.",
		HasHeating:  true,

		CostMaterial:    "700 à 1 000 € / logement",
		CostMaintenance: "Moyen",
		CostMwh:         "80 à 110 € / MWh",
		DpeGain:         "+1 classe",
		CO2Emissions:    "Faibles",

		EmitterTypeRequired:  "Plancher chauffant ou radiateurs basse température",
		OutdoorSpaceRequired: "Espace extérieur pour les unités extérieures",
	},
	{
		Slug:        "hybride-pac-chaudiere-chauffage-ecs",
		Title:       "Hybridation PAC + chaudière (chauffage + ECS)",
		Type:        "collectif",
		Description: "Couplage d'une pompe à chaleur aérothermique avec la chaudière existante conservée en appoint, pour le chauffage et l'eau chaude.",
		HasHeating:  true,
		HasECS:      true,

		CostMaterial:    "600 à 900 € / logement",
		CostMaintenance: "Moyen (deux générateurs à entretenir)",
		CostMwh:         "90 à 120 € / MWh",
		DpeGain:         "+1 classe",
		CO2Emissions:    "Moyennes (appoint fossile conservé)",

		EmitterTypeRequired:  "Plancher chauffant à eau ou radiateurs à eau",
		OutdoorSpaceRequired: "Espace extérieur pour l'unité extérieure",
	},
	{
		Slug:        "hybride-pac-chaudiere-chauffage",
		Title:       "Hybridation PAC + chaudière (chauffage seul)",
		Type:        "collectif",
		Description: "Couplage d'une pompe à chaleur aérothermique avec la chaudière existante conservée en appoint pour le chauffage.",
		HasHeating:  true,

		CostMaterial:    "500 à 800 € / logement",
		CostMaintenance: "Moyen (deux générateurs à entretenir)",
		CostMwh:         "90 à 120 € / MWh",
		DpeGain:         "+1 classe",
		CO2Emissions:    "Moyennes (appoint fossile conservé)",

		EmitterTypeRequired:  "Plancher chauffant à eau ou radiateurs à eau",
		OutdoorSpaceRequired: "Espace extérieur pour l'unité extérieure",
		OtherConditions:      []string{"Pertinent si le besoin de chauffage dépasse 100 kWh/m²"},
	},
	{
		Slug:        "solaire-thermique",
		Title:       "Solaire thermique (ECS)",
		Type:        "collectif",
		Description: "Capteurs solaires thermiques en toiture préchauffant l'eau chaude sanitaire collective.",
		HasECS:      true,

		CostMaterial:    "400 à 700 € / logement",
		CostMaintenance: "Faible",
		CostMwh:         "40 à 70 € / MWh",
		DpeGain:         "+0,5 à +1 classe",
		CO2Emissions:    "Très faibles",

		OutdoorSpaceRequired: "Toiture terrasse bien exposée",
		OtherConditions:      []string{"Taux de couverture solaire supérieur à 30 %"},
	},
	{
		Slug:        "pac-capteurs-atmospheriques-ecs",
		Title:       "PAC sur capteurs atmosphériques (ECS)",
		Type:        "collectif",
		Description: "Pompe à chaleur couplée à des capteurs atmosphériques en toiture pour la production d'eau chaude sanitaire.",
		HasECS:      true,

		CostMaterial:    "500 à 800 € / logement",
		CostMaintenance: "Moyen",
		CostMwh:         "60 à 90 € / MWh",
		DpeGain:         "+0,5 à +1 classe",
		CO2Emissions:    "Très faibles",

		OutdoorSpaceRequired: "Toiture terrasse pour les capteurs et espace pour la PAC",
	},
	{
		Slug:        "pac-eaux-grises-ecs",
		Title:       "PAC sur eaux grises (ECS)",
		Type:        "collectif",
		Description: "Récupération de la chaleur des eaux grises de l'immeuble par pompe à chaleur pour préchauffer l'eau chaude sanitaire.",
		HasECS:      true,

		CostMaterial:    "450 à 700 € / logement",
		CostMaintenance: "Moyen (filtration des eaux grises)",
		CostMwh:         "50 à 80 € / MWh",
		DpeGain:         "+0,5 classe",
		CO2Emissions:    "Très faibles",

		IndoorSpaceRequired: "Local technique pour le collecteur d'eaux grises",
		OtherConditions:     []string{"Mise en place d'un circuit de récupération des eaux grises"},
	},
	{
		Slug:        "pac-air-eau-ecs",
		Title:       "PAC air/eau dédiée à l'ECS",
		Type:        "collectif",
		Description: "Pompe à chaleur aérothermique dédiée à la production collective d'eau chaude sanitaire.",
		HasECS:      true,

		CostMaterial:    "350 à 600 € / logement",
		CostMaintenance: "Moyen",
		CostMwh:         "70 à 100 € / MWh",
		DpeGain:         "+0,5 classe",
		CO2Emissions:    "Faibles",

		OutdoorSpaceRequired: "Espace extérieur pour l'unité extérieure",
	},
	{
		Slug:        "pac-air-eau-individuel-unite-exterieure",
		Title:       "PAC air/eau individuelle avec unité extérieure",
		Type:        "individuel",
		Description: "Pompe à chaleur air/eau par logement avec unité extérieure, remplaçant la chaudière individuelle pour le chauffage et l'eau chaude.",
		HasHeating:  true,
		HasECS:      true,

		CostMaterial:    "10 000 à 15 000 € / logement",
		CostMaintenance: "Moyen",
		CostMwh:         "90 à 120 € / MWh",
		DpeGain:         "+1 à +2 classes",
		CO2Emissions:    "Faibles",

		EmitterTypeRequired:  "Plancher chauffant ou radiateurs basse température",
		OutdoorSpaceRequired: "Balcon, terrasse ou jardin privatif pour l'unité extérieure",
	},
	{
		Slug:        "pac-air-eau-individuel-sans-unite-exterieure",
		Title:       "PAC air/eau individuelle sans unité extérieure",
		Type:        "individuel",
		Description: "Pompe à chaleur air/eau monobloc intérieure par logement, raccordée en façade par des grilles de ventilation.",
		HasHeating:  true,
		HasECS:      true,

		CostMaterial:    "11 000 à 16 000 € / logement",
		CostMaintenance: "Moyen",
		CostMwh:         "90 à 120 € / MWh",
		DpeGain:         "+1 à +2 classes",
		CO2Emissions:    "Faibles",

		EmitterTypeRequired: "Plancher chauffant ou radiateurs basse température",
		IndoorSpaceRequired: "Volume intérieur pour le module monobloc",
	},
	{
		Slug:        "pac-air-extrait-eau",
		Title:       "PAC air extrait/eau",
		Type:        "individuel",
		Description: "Pompe à chaleur sur l'air extrait de la ventilation du logement, produisant chauffage et eau chaude sanitaire.",
		HasHeating:  true,
		HasECS:      true,

		CostMaterial:    "9 000 à 13 000 € / logement",
		CostMaintenance: "Moyen",
		CostMwh:         "90 à 120 € / MWh",
		DpeGain:         "+1 classe",
		CO2Emissions:    "Faibles",

		EmitterTypeRequired: "Plancher chauffant ou radiateurs basse température",
		IndoorSpaceRequired: "Raccordement au réseau de ventilation existant",
	},
	{
		Slug:        "chauffe-eau-thermodynamique-exterieur",
		Title:       "Chauffe-eau thermodynamique avec unité extérieure",
		Type:        "individuel",
		Description: "Ballon thermodynamique individuel dont l'unité extérieure est posée sur un espace privatif.",
		HasECS:      true,

		CostMaterial:    "3 000 à 4 500 € / logement",
		CostMaintenance: "Faible",
		CostMwh:         "80 à 110 € / MWh",
		DpeGain:         "+0,5 classe",
		CO2Emissions:    "Faibles",

		OutdoorSpaceRequired: "Balcon, terrasse ou jardin privatif",
	},
	{
		Slug:        "chauffe-eau-thermodynamique-interieur",
		Title:       "Chauffe-eau thermodynamique sans unité extérieure",
		Type:        "individuel",
		Description: "Ballon thermodynamique individuel sur air ambiant ou air extrait, entièrement installé à l'intérieur du logement.",
		HasECS:      true,

		CostMaterial:    "2 500 à 4 000 € / logement",
		CostMaintenance: "Faible",
		CostMwh:         "80 à 110 € / MWh",
		DpeGain:         "+0,5 classe",
		CO2Emissions:    "Faibles",

		IndoorSpaceRequired: "Volume intérieur équivalent à un gros ballon d'eau chaude",
	},
	{
		Slug:        "pac-air-air",
		Title:       "PAC air/air",
		Type:        "individuel",
		Description: "Pompe à chaleur air/air par logement assurant le chauffage, réversible en rafraîchissement l'été.",
		HasHeating:  true,
		HasCooling:  true,

		CostMaterial:    "6 000 à 10 000 € / logement",
		CostMaintenance: "Faible",
		CostMwh:         "90 à 120 € / MWh",
		DpeGain:         "+1 classe",
		CO2Emissions:    "Faibles",

		OutdoorSpaceRequired: "Balcon, terrasse ou jardin privatif pour l'unité extérieure",
	},
}
