// internal/common/validation/schema.go

// Package validation checks incoming request bodies against JSON schemas
// before they are decoded into typed inputs.
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationResult reports schema validation outcome with per-field errors.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Summary renders the errors as a single human-readable line.
func (r *ValidationResult) Summary() string {
	if r.Valid {
		return ""
	}
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(parts, "; ")
}

const matchRequestSchema = `{
	"type": "object",
	"required": ["bookingId", "serviceType", "preferredTime", "address"],
	"properties": {
		"bookingId": {"type": "string", "minLength": 1},
		"serviceType": {"type": "string", "minLength": 1},
		"preferredTime": {
			"type": "string",
			"enum": ["morning", "midday", "afternoon", "evening", "flexible"]
		},
		"address": {"type": "string", "minLength": 1},
		"subServices": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"name": {"type": "string"}
				}
			}
		},
		"dietaryPreference": {"type": "string"}
	}
}`

const selectWorkerSchema = `{
	"type": "object",
	"required": ["bookingId", "workerId", "customerId"],
	"properties": {
		"bookingId": {"type": "string", "minLength": 1},
		"workerId": {"type": "string", "minLength": 1},
		"customerId": {"type": "string", "minLength": 1}
	}
}`

var (
	matchRequestLoader = gojsonschema.NewStringLoader(matchRequestSchema)
	selectWorkerLoader = gojsonschema.NewStringLoader(selectWorkerSchema)
)

// ValidateMatchRequest validates a raw match-workers request body.
func ValidateMatchRequest(body []byte) *ValidationResult {
	return validate(matchRequestLoader, body)
}

// ValidateSelectWorkerRequest validates a raw select-worker request body.
func ValidateSelectWorkerRequest(body []byte) *ValidationResult {
	return validate(selectWorkerLoader, body)
}

func validate(schema gojsonschema.JSONLoader, body []byte) *ValidationResult {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		// Unparseable JSON is a validation failure, not a server fault.
		return &ValidationResult{
			Valid:  false,
			Errors: []ValidationError{{Field: "(body)", Message: "invalid JSON"}},
		}
	}

	if result.Valid() {
		return &ValidationResult{Valid: true}
	}

	out := &ValidationResult{Valid: false}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return out
}
