// internal/workers/matching/match-workers/scoring.go
package matchworkers

import (
	"math"

	"github.com/pratham1800/HouseHelp/internal/geo"
	"github.com/pratham1800/HouseHelp/internal/models"
)

// Sub-score maxima. They sum to exactly 100.
const (
	serviceTypePoints      = 25
	capabilityPoints       = 25
	capabilityFlexPoints   = 15
	locationExactPoints    = 30
	locationCityPoints     = 25
	locationRegionPoints   = 15
	hoursMatchPoints       = 10
	hoursUndeclaredPoints  = 5
	experienceSeniorPoints = 10
	experienceMidPoints    = 7
	experienceJuniorPoints = 4
)

// scoreWorker computes the 0-100 composite match score. The score is a pure
// function of the worker record, the request, and the precomputed location
// tier: no randomness, no time dependence.
func scoreWorker(w *models.Worker, in *Input, req capabilityRequirement, tier geo.MatchLevel) int {
	score := 0

	// Service type. Always true for workers that survived filtering.
	if w.WorkType == serviceToWorkType[in.ServiceType] {
		score += serviceTypePoints
	}

	score += capabilityScore(w, in, req)
	score += locationScore(tier)
	score += hoursScore(w.WorkingHours, in.PreferredTime)
	score += experienceScore(w.YearsExperience)

	if score > 100 {
		score = 100
	}
	return score
}

func capabilityScore(w *models.Worker, in *Input, req capabilityRequirement) int {
	if !req.isConstrained() {
		if !w.HasSubcategories() {
			return 0
		}
		return capabilityFlexPoints
	}

	if in.ServiceType == "cooking" {
		// A single dietary requirement is all-or-nothing.
		if req.satisfiedBy(w) {
			return capabilityPoints
		}
		return 0
	}

	matched := req.matchedCount(w)
	return int(math.Round(float64(capabilityPoints) * float64(matched) / float64(len(req.required))))
}

func locationScore(tier geo.MatchLevel) int {
	switch tier {
	case geo.MatchExact:
		return locationExactPoints
	case geo.MatchCity:
		return locationCityPoints
	case geo.MatchRegion:
		return locationRegionPoints
	default:
		return 0
	}
}

func hoursScore(workingHours, preferredTime string) int {
	if workingHours == "" {
		return hoursUndeclaredPoints
	}
	acceptable, ok := timeToHours[preferredTime]
	if !ok {
		acceptable = timeToHours["flexible"]
	}
	for _, h := range acceptable {
		if workingHours == h {
			return hoursMatchPoints
		}
	}
	return 0
}

func experienceScore(years int) int {
	switch {
	case years >= 5:
		return experienceSeniorPoints
	case years >= 3:
		return experienceMidPoints
	case years >= 1:
		return experienceJuniorPoints
	default:
		return 0
	}
}
