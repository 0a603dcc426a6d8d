// internal/workers/matching/match-workers/eligibility.go
package matchworkers

import (
	"github.com/pratham1800/HouseHelp/internal/geo"
	"github.com/pratham1800/HouseHelp/internal/models"
)

// capabilityRequirement is the hard capability constraint derived from the
// request: the set of subcategory ids the worker must cover. Empty means
// the request is unconstrained.
type capabilityRequirement struct {
	required []string
}

// buildCapabilityRequirement derives the required capability set from the
// request. Cooking requests require the mapped dietary subcategory when a
// preference is present; cleaning requests require every selected
// sub-service id.
func buildCapabilityRequirement(in *Input) capabilityRequirement {
	switch in.ServiceType {
	case "cooking":
		if in.DietaryPreference == "" {
			return capabilityRequirement{}
		}
		if tag, ok := dietaryPreferenceMap[in.DietaryPreference]; ok {
			return capabilityRequirement{required: []string{tag}}
		}
		// Unmapped preferences do not constrain the pool.
		return capabilityRequirement{}
	case "cleaning":
		ids := make([]string, 0, len(in.SubServices))
		for _, s := range in.SubServices {
			ids = append(ids, s.ID)
		}
		return capabilityRequirement{required: ids}
	default:
		return capabilityRequirement{}
	}
}

func (c capabilityRequirement) isConstrained() bool {
	return len(c.required) > 0
}

// satisfiedBy reports whether the worker's declared subcategories cover
// every required id.
func (c capabilityRequirement) satisfiedBy(w *models.Worker) bool {
	for _, id := range c.required {
		if !w.HasSubcategory(id) {
			return false
		}
	}
	return true
}

// matchedCount returns how many required ids the worker covers, for
// proportional scoring.
func (c capabilityRequirement) matchedCount(w *models.Worker) int {
	n := 0
	for _, id := range c.required {
		if w.HasSubcategory(id) {
			n++
		}
	}
	return n
}

// filterCapable keeps workers whose status, assignment, and capability set
// allow them to take the request. The type, status, and assignment checks
// mirror the pool query so a stale or hand-built pool never leaks through.
func filterCapable(pool []models.Worker, workType string, req capabilityRequirement) []models.Worker {
	var capable []models.Worker
	for i := range pool {
		w := &pool[i]
		if w.WorkType != workType || !w.IsVerified() || w.IsAssigned() {
			continue
		}
		if req.isConstrained() && !req.satisfiedBy(w) {
			continue
		}
		capable = append(capable, *w)
	}
	return capable
}

// locatedWorker pairs an eligible worker with its resolved location tier so
// the tier is computed once and reused for scoring.
type locatedWorker struct {
	worker models.Worker
	tier   geo.MatchLevel
}

// filterByLocation keeps workers whose location resolves to a non-none tier
// against the employer address.
func filterByLocation(resolver *geo.Resolver, pool []models.Worker, address string) []locatedWorker {
	var located []locatedWorker
	for i := range pool {
		w := &pool[i]
		tier := resolver.MatchLevel(geo.WorkerLocation{
			PreferredAreas:     w.PreferredAreas,
			ResidentialAddress: w.ResidentialAddress,
		}, address)
		if tier == geo.MatchNone {
			continue
		}
		located = append(located, locatedWorker{worker: *w, tier: tier})
	}
	return located
}
