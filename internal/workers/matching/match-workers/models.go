// internal/workers/matching/match-workers/models.go
package matchworkers

import "github.com/pratham1800/HouseHelp/internal/models"

// Input is a match request. It is constructed per API call and never
// persisted.
type Input struct {
	BookingID         string              `json:"bookingId"`
	ServiceType       string              `json:"serviceType"`
	PreferredTime     string              `json:"preferredTime"`
	Address           string              `json:"address"`
	SubServices       []models.SubService `json:"subServices,omitempty"`
	DietaryPreference string              `json:"dietaryPreference,omitempty"`
}

// Output is the match result envelope returned to the caller. Zero matches
// is a normal business outcome, so Success is true on every expected path;
// only store failures surface as errors.
type Output struct {
	Success        bool                   `json:"success"`
	MatchedWorkers []models.WorkerSummary `json:"matchedWorkers"`
	Message        string                 `json:"message"`

	// Outcome labels the path that produced this output, for metrics.
	Outcome string `json:"-"`
}

// serviceToWorkType maps requested service ids to the work types workers
// register under (matching the worker registration form values).
var serviceToWorkType = map[string]string{
	"cleaning":  string(models.WorkTypeDomesticHelp),
	"cooking":   string(models.WorkTypeCooking),
	"driver":    string(models.WorkTypeDriving),
	"gardening": string(models.WorkTypeGardening),
}

// dietaryPreferenceMap maps booking-form dietary preferences to worker
// subcategory ids. Jain maps to vegetarian, a deliberate simplification.
var dietaryPreferenceMap = map[string]string{
	"veg":    "vegetarian",
	"egg":    "eggitarian",
	"nonveg": "non_vegetarian",
	"jain":   "vegetarian",
}

// timeToHours maps a requested time of day to the set of acceptable
// declared working hours.
var timeToHours = map[string][]string{
	"morning":   {models.HoursMorning, models.HoursFullDay},
	"midday":    {models.HoursMorning, models.HoursFullDay},
	"afternoon": {models.HoursEvening, models.HoursFullDay},
	"evening":   {models.HoursEvening, models.HoursFullDay},
	"flexible":  {models.HoursMorning, models.HoursEvening, models.HoursFullDay},
}
