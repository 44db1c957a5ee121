package property

// MissingFields lists the required fields that are still empty. The engine
// must not run until this is empty; callers show a "complete your profile"
// state instead, which is distinct from an empty recommendation result.
func (p Property) MissingFields() []string {
	var missing []string
	if p.Address == "" {
		missing = append(missing, "address")
	}
	if p.ConstructionYear == 0 {
		missing = append(missing, "constructionYear")
	}
	if p.HousingCount == "" {
		missing = append(missing, "housingCount")
	}
	if p.HeatedArea == 0 {
		missing = append(missing, "heatedArea")
	}
	if p.HeatingType == HeatingTypeUnset {
		missing = append(missing, "heatingType")
	}
	if p.HeatingEnergy == EnergyUnset {
		missing = append(missing, "heatingEnergy")
	}
	if p.HeatingEmitterType == EmitterUnset {
		missing = append(missing, "heatingEmitterType")
	}
	if p.ECSType == HeatingTypeUnset {
		missing = append(missing, "ecsType")
	}
	if p.ECSEnergy == EnergyUnset {
		missing = append(missing, "ecsEnergy")
	}
	return missing
}

// ConfigurationWarning inspects the heating/ECS type and energy combination
// and returns the blocking message when the simulator does not support it,
// or "" when the configuration is fine. It runs before scenario selection:
// some of these combinations would silently no-op in the router, but the
// user must be told why instead.
func (p Property) ConfigurationWarning() string {
	if p.HeatingEnergy == EnergyFioul && p.HeatingType == HeatingIndividual {
		return "Pour un chauffage fioul, le type de chauffage doit être collectif pour que le simulateur fonctionne"
	}
	if p.HeatingEnergy == EnergyElectric && p.HeatingType == HeatingCollective {
		return "Pour un chauffage électrique, le type de chauffage doit être individuel pour que le simulateur fonctionne"
	}
	if p.HeatingEnergy == EnergyGas {
		if p.HeatingType == HeatingIndividual && p.ECSEnergy != EnergyUnset && p.ECSEnergy != EnergyGas {
			return "Pour un chauffage individuel gaz, l'énergie principale de l'eau chaude doit être du gaz pour que le simulateur fonctionne"
		}
		if p.HeatingType == HeatingCollective && p.ECSEnergy == EnergyFioul {
			return "Pour un chauffage collectif gaz, l'énergie principale de l'eau chaude ne peut pas être du fioul pour que le simulateur fonctionne"
		}
	}
	if p.HeatingEnergy == EnergyFioul && p.ECSEnergy != EnergyUnset && p.ECSEnergy != EnergyFioul {
		return "Pour un chauffage fioul, l'eau chaude doit être produite en fioul pour que le simulateur fonctionne"
	}
	if p.HeatingEnergy == EnergyElectric && p.ECSEnergy != EnergyUnset && p.ECSEnergy != EnergyElectric {
		return "Pour un chauffage électrique, l'eau chaude doit être produite en ballon électrique pour que le simulateur fonctionne"
	}
	if p.HeatingEnergy == EnergyGas {
		if p.HeatingType == HeatingIndividual && p.ECSType != HeatingTypeUnset && p.ECSType != HeatingIndividual {
			return "Pour un chauffage individuel gaz, le type de production d'eau chaude doit être individuel pour que le simulateur fonctionne"
		}
		if p.HeatingType == HeatingCollective && p.ECSEnergy == EnergyElectric && p.ECSType == HeatingCollective {
			return "Pour un chauffage collectif gaz, le type de production d'eau chaude en ballon électrique doit être individuel pour que le simulateur fonctionne"
		}
	}
	if p.HeatingEnergy == EnergyFioul && p.ECSType != HeatingTypeUnset && p.ECSType != HeatingIndividual {
		return "Pour un chauffage fioul, le type de production d'eau chaude doit être individuel pour que le simulateur fonctionne"
	}
	return ""
}
