// internal/models/worker.go
package models

import "strings"

// WorkType is the top-level service category a worker is registered for.
type WorkType string

const (
	WorkTypeDomesticHelp WorkType = "domestic_help"
	WorkTypeCooking      WorkType = "cooking"
	WorkTypeDriving      WorkType = "driving"
	WorkTypeGardening    WorkType = "gardening"
)

// Working hours declared by a worker at registration.
const (
	HoursMorning = "morning"
	HoursEvening = "evening"
	HoursFullDay = "full_day"
)

// Worker is a worker record as stored by the worker-management service.
// This service reads workers; only the selection flow writes them.
type Worker struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Phone              string   `json:"phone"`
	WorkType           string   `json:"work_type"`
	WorkSubcategories  []string `json:"work_subcategories"`
	YearsExperience    int      `json:"years_experience"`
	LanguagesSpoken    []string `json:"languages_spoken"`
	PreferredAreas     []string `json:"preferred_areas"`
	ResidentialAddress string   `json:"residential_address"`
	WorkingHours       string   `json:"working_hours"`
	Gender             string   `json:"gender"`

	// Internal fields, never exposed in match responses.
	Status             string  `json:"-"`
	AssignedCustomerID *string `json:"-"`
}

// IsVerified reports whether the worker's status normalizes to "verified".
func (w *Worker) IsVerified() bool {
	return strings.EqualFold(strings.TrimSpace(w.Status), "verified")
}

// IsAssigned reports whether the worker is already assigned to a booking.
// A worker can hold at most one active assignment.
func (w *Worker) IsAssigned() bool {
	return w.AssignedCustomerID != nil && *w.AssignedCustomerID != ""
}

// HasSubcategories reports whether the worker declared any capability tags.
func (w *Worker) HasSubcategories() bool {
	return len(w.WorkSubcategories) > 0
}

// HasSubcategory reports whether the worker declared the given capability.
func (w *Worker) HasSubcategory(id string) bool {
	for _, s := range w.WorkSubcategories {
		if s == id {
			return true
		}
	}
	return false
}

// WorkerSummary is the public projection of a worker returned to callers,
// carrying the computed match score and none of the internal fields.
type WorkerSummary struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Phone             string   `json:"phone"`
	WorkType          string   `json:"work_type"`
	WorkSubcategories []string `json:"work_subcategories"`
	YearsExperience   int      `json:"years_experience"`
	LanguagesSpoken   []string `json:"languages_spoken"`
	PreferredAreas    []string `json:"preferred_areas"`
	WorkingHours      string   `json:"working_hours"`
	Gender            string   `json:"gender"`
	MatchScore        int      `json:"match_score"`
}

// Summarize builds the public summary for a scored worker.
func (w *Worker) Summarize(score int) WorkerSummary {
	return WorkerSummary{
		ID:                w.ID,
		Name:              w.Name,
		Phone:             w.Phone,
		WorkType:          w.WorkType,
		WorkSubcategories: w.WorkSubcategories,
		YearsExperience:   w.YearsExperience,
		LanguagesSpoken:   w.LanguagesSpoken,
		PreferredAreas:    w.PreferredAreas,
		WorkingHours:      w.WorkingHours,
		Gender:            w.Gender,
		MatchScore:        score,
	}
}
