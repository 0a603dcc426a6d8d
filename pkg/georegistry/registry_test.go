// pkg/georegistry/registry_test.go
package georegistry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	reg := Default()
	require.NoError(t, reg.Validate())
	assert.NotEmpty(t, reg.Cities)
	assert.NotEmpty(t, reg.StateRegions)
	assert.NotEmpty(t, reg.AreaKeywords)
}

func TestCanonicalCity(t *testing.T) {
	reg := Default()
	assert.Equal(t, "bangalore", reg.CanonicalCity("bengaluru"))
	assert.Equal(t, "delhi", reg.CanonicalCity("new delhi"))
	assert.Equal(t, "pune", reg.CanonicalCity("pune"))
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Registry)
		wantErr string
	}{
		{
			name:    "no cities",
			mutate:  func(r *Registry) { r.Cities = nil },
			wantErr: "no cities",
		},
		{
			name:    "alias for unknown city",
			mutate:  func(r *Registry) { r.CityAliases["gotham"] = "delhi" },
			wantErr: "not a known city",
		},
		{
			name:    "alias resolving to unknown city",
			mutate:  func(r *Registry) { r.CityAliases["bengaluru"] = "gotham" },
			wantErr: "unknown city",
		},
		{
			name:    "city mapped to unknown region",
			mutate:  func(r *Registry) { r.CityRegions["delhi"] = "middle earth" },
			wantErr: "unknown region",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := Default()
			tt.mutate(reg)
			err := reg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "geo-registry.json")

	data := []byte(`{
		"version": "test",
		"cities": ["bangalore", "bengaluru"],
		"cityAliases": {"bengaluru": "bangalore"},
		"cityRegions": {"bangalore": "karnataka"},
		"stateRegions": ["karnataka"],
		"areaKeywords": ["koramangala"]
	}`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	reg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test", reg.Version)
	assert.Equal(t, "bangalore", reg.CanonicalCity("bengaluru"))
}

func TestLoad_Failures(t *testing.T) {
	_, err := Load("/nonexistent/geo-registry.json")
	assert.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}
