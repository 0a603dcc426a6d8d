// Package errors provides standardized error handling for the matching API.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidRequest     ErrorCode = "INVALID_REQUEST"
	ErrCodeUnknownServiceType ErrorCode = "UNKNOWN_SERVICE_TYPE"

	ErrCodeWorkerQueryFailed    ErrorCode = "WORKER_QUERY_FAILED"
	ErrCodeBookingQueryFailed   ErrorCode = "BOOKING_QUERY_FAILED"
	ErrCodeBookingNotFound      ErrorCode = "BOOKING_NOT_FOUND"
	ErrCodeQueryTimeout         ErrorCode = "QUERY_TIMEOUT"
	ErrCodeWorkerNotFound       ErrorCode = "WORKER_NOT_FOUND"
	ErrCodeWorkerUnavailable    ErrorCode = "WORKER_UNAVAILABLE"
	ErrCodeAssignmentFailed     ErrorCode = "ASSIGNMENT_FAILED"
	ErrCodeGeoRegistryLoadError ErrorCode = "GEO_REGISTRY_LOAD_ERROR"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// AsStandard returns err as a *StandardError, wrapping unknown errors as
// non-retryable internal errors.
func AsStandard(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// HTTPStatus maps an error code to the response status for the API surface.
// Expected "no match" outcomes never reach this path; they are successful
// responses with an empty list.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidRequest, ErrCodeUnknownServiceType:
		return http.StatusBadRequest
	case ErrCodeBookingNotFound, ErrCodeWorkerNotFound:
		return http.StatusNotFound
	case ErrCodeWorkerUnavailable:
		return http.StatusConflict
	case ErrCodeQueryTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidRequestError creates a non-retryable request validation error.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Request body failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewWorkerQueryFailedError creates a retryable worker store error.
func NewWorkerQueryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeWorkerQueryFailed,
		Message:   "Database error while fetching workers",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewBookingQueryFailedError creates a retryable booking store error.
func NewBookingQueryFailedError(bookingID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeBookingQueryFailed,
		Message:   "Database error while fetching booking details",
		Details:   fmt.Sprintf("bookingId: %s, error: %s", bookingID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewBookingNotFoundError creates a non-retryable missing booking error.
func NewBookingNotFoundError(bookingID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBookingNotFound,
		Message:   "Booking not found",
		Details:   fmt.Sprintf("bookingId: %s", bookingID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryTimeoutError creates a retryable query timeout error.
func NewQueryTimeoutError(operation string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryTimeout,
		Message:   "Database query timeout",
		Details:   fmt.Sprintf("operation: %s", operation),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewWorkerNotFoundError creates a non-retryable missing worker error.
func NewWorkerNotFoundError(workerID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeWorkerNotFound,
		Message:   "Worker not found",
		Details:   fmt.Sprintf("workerId: %s", workerID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewWorkerUnavailableError signals a lost selection race: the worker was
// assigned by another booking between matching and selection.
func NewWorkerUnavailableError(workerID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeWorkerUnavailable,
		Message:   "Worker is no longer available",
		Details:   fmt.Sprintf("workerId: %s", workerID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAssignmentFailedError creates a retryable assignment write error.
func NewAssignmentFailedError(workerID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAssignmentFailed,
		Message:   "Database error while assigning worker",
		Details:   fmt.Sprintf("workerId: %s, error: %s", workerID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
