// pkg/georegistry/schema.go
package georegistry

// Registry holds the geographic lookup tables the matching engine resolves
// free-text addresses against. It is static configuration: loaded once at
// process start and never mutated afterwards.
type Registry struct {
	Version string `json:"version"`

	// Cities is the ordered list of known city names. Extraction returns
	// the first containment hit, so order matters.
	Cities []string `json:"cities"`

	// CityAliases maps spelling variants to their canonical city id
	// (e.g. "bengaluru" -> "bangalore").
	CityAliases map[string]string `json:"cityAliases"`

	// CityRegions maps canonical city ids to their state/region id.
	CityRegions map[string]string `json:"cityRegions"`

	// StateRegions is the list of known state/region names that can be
	// matched directly from an address.
	StateRegions []string `json:"stateRegions"`

	// AreaKeywords is the list of locality/neighborhood names finer than a
	// city (e.g. "koramangala"). Cities and regions are deliberately not
	// included: two addresses in the same city must match at the city tier,
	// not the exact tier.
	AreaKeywords []string `json:"areaKeywords"`
}

// CanonicalCity resolves a matched city name through the alias table.
func (r *Registry) CanonicalCity(city string) string {
	if canonical, ok := r.CityAliases[city]; ok {
		return canonical
	}
	return city
}
