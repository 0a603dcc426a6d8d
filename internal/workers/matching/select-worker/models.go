// internal/workers/matching/select-worker/models.go
package selectworker

// Input is a selection request: the customer hires one worker from a match
// result for a booking.
type Input struct {
	BookingID  string `json:"bookingId"`
	WorkerID   string `json:"workerId"`
	CustomerID string `json:"customerId"`
}

// Output is the selection result envelope.
type Output struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
