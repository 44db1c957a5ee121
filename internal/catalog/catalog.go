// Package catalog holds the fixed set of retrofit solutions the engine can
// recommend. The list is static reference data, loaded once and never
// mutated; requirement strings are display copy, not evaluated logic.
package catalog

// Solution describes one candidate heating / hot-water retrofit.
type Solution struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Type        string `json:"type"` // collectif | individuel
	Description string `json:"description"`
	HasHeating  bool   `json:"hasHeating"`
	HasECS      bool   `json:"hasEcs"`
	HasCooling  bool   `json:"hasCooling"`

	CostMaterial    string `json:"costMaterial"`
	CostMaintenance string `json:"costMaintenance"`
	CostMwh         string `json:"costMwh"`
	DpeGain         string `json:"dpeGain"`
	CO2Emissions    string `json:"co2Emissions"`

	EmitterTypeRequired  string   `json:"emitterTypeRequired,omitempty"`
	DistanceRequirement  string   `json:"distanceRequirement,omitempty"`
	IndoorSpaceRequired  string   `json:"indoorSpaceRequired,omitempty"`
	OutdoorSpaceRequired string   `json:"outdoorSpaceRequired,omitempty"`
	OtherConditions      []string `json:"otherConditions,omitempty"`
}

// BySlug returns the catalog entry for slug. The catalog is small; a linear
// scan is fine, lookups happen once per solution per evaluation.
func BySlug(slug string) (Solution, bool) {
	for _, s := range Solutions {
		if s.Slug == slug {
			return s, true
		}
	}
	return Solution{}, false
}

// Count returns the catalog size.
func Count() int {
	return len(Solutions)
}
