// internal/common/validation/schema_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMatchRequest(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		valid bool
	}{
		{
			name: "complete request",
			body: `{"bookingId":"b1","serviceType":"cleaning","preferredTime":"morning",
				"address":"Koramangala, Bangalore","subServices":[{"id":"brooming","name":"Brooming"}]}`,
			valid: true,
		},
		{
			name:  "minimal request",
			body:  `{"bookingId":"b1","serviceType":"cooking","preferredTime":"flexible","address":"Delhi"}`,
			valid: true,
		},
		{
			name:  "missing address",
			body:  `{"bookingId":"b1","serviceType":"cleaning","preferredTime":"morning"}`,
			valid: false,
		},
		{
			name:  "preferredTime outside enum",
			body:  `{"bookingId":"b1","serviceType":"cleaning","preferredTime":"midnight","address":"Delhi"}`,
			valid: false,
		},
		{
			name:  "sub service without id",
			body:  `{"bookingId":"b1","serviceType":"cleaning","preferredTime":"morning","address":"Delhi","subServices":[{"name":"x"}]}`,
			valid: false,
		},
		{
			name:  "not JSON at all",
			body:  `{broken`,
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateMatchRequest([]byte(tt.body))
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.NotEmpty(t, result.Summary())
			}
		})
	}
}

func TestValidateSelectWorkerRequest(t *testing.T) {
	valid := ValidateSelectWorkerRequest([]byte(`{"bookingId":"b1","workerId":"w1","customerId":"c1"}`))
	assert.True(t, valid.Valid)

	missing := ValidateSelectWorkerRequest([]byte(`{"bookingId":"b1"}`))
	require.False(t, missing.Valid)
	assert.Contains(t, missing.Summary(), "workerId")
}
