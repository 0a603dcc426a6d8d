// internal/models/booking.go
package models

// SubService is one requested sub-service in a match request
// (e.g. a specific cleaning task).
type SubService struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BookingSubServices is the sub_services payload stored on a booking.
// Cooking bookings carry the dietary preference inside serviceDetails.
type BookingSubServices struct {
	Selected       []SubService   `json:"selected,omitempty"`
	ServiceDetails ServiceDetails `json:"serviceDetails"`
}

// ServiceDetails holds service-specific booking form answers.
type ServiceDetails struct {
	DietaryPreference string `json:"dietaryPreference,omitempty"`
}
