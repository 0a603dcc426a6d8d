// internal/geo/resolver.go

// Package geo resolves free-text addresses into comparable geographic
// tokens and computes tiered match levels between them. Free-text geocoding
// is unreliable, so locations are reduced to a small ordinal scale (exact,
// city, region, none) usable both as a hard filter and as a scoring input.
package geo

import (
	"strings"

	"github.com/pratham1800/HouseHelp/pkg/georegistry"
)

// MatchLevel is the ordinal geographic proximity between two locations.
type MatchLevel string

const (
	MatchExact  MatchLevel = "exact"
	MatchCity   MatchLevel = "city"
	MatchRegion MatchLevel = "region"
	MatchNone   MatchLevel = "none"
)

// Tables is the lookup data the resolver matches addresses against.
type Tables struct {
	Cities       []string
	CityAliases  map[string]string
	CityRegions  map[string]string
	StateRegions []string
	Keywords     []string
}

// WorkerLocation is the location signal a worker record carries.
type WorkerLocation struct {
	PreferredAreas     []string
	ResidentialAddress string
}

// Resolver performs address extraction against immutable registry tables.
type Resolver struct {
	t Tables
}

// NewResolver builds a resolver over the given tables. The tables are not
// copied; they must not be mutated after construction.
func NewResolver(t Tables) *Resolver {
	return &Resolver{t: t}
}

// FromRegistry builds a resolver from a loaded geographic registry.
func FromRegistry(reg *georegistry.Registry) *Resolver {
	return NewResolver(Tables{
		Cities:       reg.Cities,
		CityAliases:  reg.CityAliases,
		CityRegions:  reg.CityRegions,
		StateRegions: reg.StateRegions,
		Keywords:     reg.AreaKeywords,
	})
}

func normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// ExtractCity returns the canonical id of the first known city contained in
// the address, or "" when none matches. When an address names two cities the
// first hit in registry order wins, which is not necessarily the most
// specific one; callers should treat multi-city addresses as ambiguous.
func (r *Resolver) ExtractCity(address string) string {
	normalized := normalize(address)
	for _, city := range r.t.Cities {
		if strings.Contains(normalized, city) {
			if canonical, ok := r.t.CityAliases[city]; ok {
				return canonical
			}
			return city
		}
	}
	return ""
}

// ExtractRegion returns the state/region id for an address: a directly
// named region wins, otherwise the region is derived from the resolved
// city. Returns "" when neither resolves.
func (r *Resolver) ExtractRegion(address string) string {
	normalized := normalize(address)
	for _, region := range r.t.StateRegions {
		if strings.Contains(normalized, region) {
			return region
		}
	}
	if city := r.ExtractCity(address); city != "" {
		return r.t.CityRegions[city]
	}
	return ""
}

// ExtractAreaKeywords returns every neighborhood keyword found as a
// substring of the address. Keywords are finer grained than cities; a
// shared city name alone never produces an exact match.
func (r *Resolver) ExtractAreaKeywords(address string) []string {
	normalized := normalize(address)
	var matched []string
	for _, keyword := range r.t.Keywords {
		if strings.Contains(normalized, keyword) {
			matched = append(matched, keyword)
		}
	}
	return matched
}

// WorkerCity resolves the worker's city, checking preferred areas first and
// falling back to the residential address.
func (r *Resolver) WorkerCity(loc WorkerLocation) string {
	for _, area := range loc.PreferredAreas {
		if city := r.ExtractCity(area); city != "" {
			return city
		}
	}
	if loc.ResidentialAddress != "" {
		return r.ExtractCity(loc.ResidentialAddress)
	}
	return ""
}

// WorkerRegion resolves the worker's region, preferred areas first.
func (r *Resolver) WorkerRegion(loc WorkerLocation) string {
	for _, area := range loc.PreferredAreas {
		if region := r.ExtractRegion(area); region != "" {
			return region
		}
	}
	if loc.ResidentialAddress != "" {
		return r.ExtractRegion(loc.ResidentialAddress)
	}
	return ""
}

// MatchLevel computes the tiered geographic match between a worker's
// locations and an employer address. The most specific tier wins: a shared
// area keyword yields exact even when the cities also match.
func (r *Resolver) MatchLevel(loc WorkerLocation, employerAddress string) MatchLevel {
	employerKeywords := r.ExtractAreaKeywords(employerAddress)

	if len(employerKeywords) > 0 {
		if len(loc.PreferredAreas) > 0 {
			areas := make([]string, len(loc.PreferredAreas))
			for i, a := range loc.PreferredAreas {
				areas[i] = normalize(a)
			}
			if anyContains(employerKeywords, areas) {
				return MatchExact
			}
		}
		if loc.ResidentialAddress != "" {
			if anyContains(employerKeywords, r.ExtractAreaKeywords(loc.ResidentialAddress)) {
				return MatchExact
			}
		}
	}

	employerCity := r.ExtractCity(employerAddress)
	if employerCity != "" && employerCity == r.WorkerCity(loc) {
		return MatchCity
	}

	employerRegion := r.ExtractRegion(employerAddress)
	if employerRegion != "" && employerRegion == r.WorkerRegion(loc) {
		return MatchRegion
	}

	return MatchNone
}

// anyContains reports whether any pair across the two sets matches by
// bidirectional substring containment.
func anyContains(as, bs []string) bool {
	for _, a := range as {
		for _, b := range bs {
			if strings.Contains(a, b) || strings.Contains(b, a) {
				return true
			}
		}
	}
	return false
}
