// Package export renders an evaluation into the downloadable plain-text
// summary.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pacoupa/backend/internal/catalog"
	"pacoupa/backend/internal/engine"
	"pacoupa/backend/internal/property"
)

const separator = "------------------------------"

// Text renders the profile and its evaluation as the shareable text summary.
// The date is passed in so rendering stays deterministic for callers that
// need it (tests, cached exports).
func Text(p property.Property, result engine.Result, date time.Time) string {
	hasSolutions := len(result.Recommended) > 0 || len(result.NonRecommended) > 0

	var sections []string
	sections = append(sections, "Récapitulatif des solutions")
	sections = append(sections, "Date: "+date.Format("02/01/2006"))
	sections = append(sections, "")
	sections = append(sections, propertySummary(p))
	sections = append(sections, "")

	if hasSolutions {
		sections = append(sections, "ATTENTION - Ce sont des estimations !")
		sections = append(sections, "Tous les chiffres des solutions sont des estimations, ils sont approximatifs et ne peuvent pas servir de devis.")
		sections = append(sections, "")
		var blocks []string
		if block := recommendedSection(result.Recommended); block != "" {
			blocks = append(blocks, block)
		}
		if block := nonRecommendedSection(result.NonRecommended); block != "" {
			blocks = append(blocks, block)
		}
		sections = append(sections, strings.Join(blocks, "\n"))
	} else {
		sections = append(sections, "Aucune solution disponible pour l'instant.")
	}

	var out []string
	for _, s := range sections {
		if s == "" && len(out) > 0 && out[len(out)-1] == "" {
			continue
		}
		out = append(out, s)
	}
	return strings.Join(out, "\n")
}

func propertySummary(p property.Property) string {
	rows := []struct {
		label string
		value string
	}{
		{"Adresse", orDash(p.Address)},
		{"Année de construction", orDashInt(p.ConstructionYear)},
		{"Nombre de logements", orDash(p.HousingCount)},
		{"Surface chauffée (m²)", orDashFloat(p.HeatedArea)},
		{"Chauffage - Type", orDash(string(p.HeatingType))},
		{"Chauffage - Énergie", orDash(string(p.HeatingEnergy))},
		{"Chauffage - Émetteurs", orDash(string(p.HeatingEmitterType))},
		{"ECS - Type", orDash(string(p.ECSType))},
		{"ECS - Énergie", orDash(string(p.ECSEnergy))},
		{"Qualité d'enveloppe", orDash(string(p.EnvelopeQuality))},
		{"Réseau de chaleur à proximité (PDP)", formatBool(p.FcuIsInPDP)},
		{"Distance au réseau de chaleur (m)", orDashFloat(p.FcuDistance)},
	}
	lines := []string{"Récapitulatif de la copropriété:"}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("- %s: %s", row.label, row.value))
	}
	return strings.Join(lines, "\n")
}

func recommendedSection(items []engine.Recommendation) string {
	if len(items) == 0 {
		return ""
	}
	lines := []string{"Solutions recommandées:"}
	for _, item := range items {
		lines = append(lines, solutionItem(item.Solution, item.Message, nil))
		lines = append(lines, separator)
	}
	return strings.Join(lines, "\n")
}

func nonRecommendedSection(items []engine.Rejection) string {
	if len(items) == 0 {
		return ""
	}
	lines := []string{"Solutions non-recommandées:"}
	for _, item := range items {
		lines = append(lines, solutionItem(item.Solution, "", item.MissingConditions))
		lines = append(lines, separator)
	}
	return strings.Join(lines, "\n")
}

func solutionItem(s catalog.Solution, advisory string, missing []engine.MissingCondition) string {
	badge := "SOLUTION INDIVIDUELLE"
	if s.Type == "collectif" {
		badge = "SOLUTION COLLECTIVE"
	}
	parts := []string{
		fmt.Sprintf("%s (%s)", s.Title, badge),
		"— " + solutionSubtitle(s),
	}
	if s.Description != "" {
		parts = append(parts, s.Description)
	}
	if advisory != "" {
		parts = append(parts, "Remarque: "+advisory)
	}
	if len(missing) > 0 {
		parts = append(parts, "Conditions non-remplies:")
		for _, cond := range missing {
			parts = append(parts, "- "+cond.Message)
		}
	}
	parts = append(parts,
		"Coût du matériel: "+s.CostMaterial,
		"Coût de maintenance: "+s.CostMaintenance,
		"Évolution de la performance: "+s.DpeGain,
		"Émissions de CO₂: "+s.CO2Emissions,
	)
	return strings.Join(parts, "\n")
}

func solutionSubtitle(s catalog.Solution) string {
	switch {
	case s.HasHeating && s.HasECS:
		return "Chauffage et eau chaude"
	case s.HasECS && !s.HasHeating:
		return "Eau chaude uniquement"
	default:
		return "Chauffage uniquement"
	}
}

func formatBool(v bool) string {
	if v {
		return "Oui"
	}
	return "Non"
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func orDashInt(v int) string {
	if v == 0 {
		return "-"
	}
	return strconv.Itoa(v)
}

func orDashFloat(v float64) string {
	if v == 0 {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
