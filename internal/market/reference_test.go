package market

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ladrillo/server/config"
)

func TestReferencePricePerM2(t *testing.T) {
	tests := []struct {
		name    string
		commune string
		want    float64
	}{
		{name: "exact match", commune: "Vitacura", want: 110},
		{name: "partial match", commune: "Ñuñoa, Región Metropolitana", want: 75},
		{name: "unknown falls back to default", commune: "Rancagua", want: DefaultPricePerM2UF},
		{name: "empty falls back to default", commune: "", want: DefaultPricePerM2UF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReferencePricePerM2(tt.commune))
		})
	}
}

func TestReferenceRentRange(t *testing.T) {
	known := ReferenceRentRange("Las Condes")
	assert.Equal(t, RentRange{MinCLPM2: 10000, MaxCLPM2: 15000}, known)

	unknown := ReferenceRentRange("Rancagua")
	assert.Equal(t, DefaultRentRange, unknown)
}

func TestReferenceOverridesWin(t *testing.T) {
	t.Cleanup(config.ResetReferenceOverrides)

	path := filepath.Join(t.TempDir(), "overrides.json")
	payload := `{
		"reference_prices": {"Vitacura": 120},
		"rent_ranges": {"Vitacura": [13000, 19000]}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))
	require.NoError(t, config.LoadReferenceOverrides(path))

	assert.Equal(t, 120.0, ReferencePricePerM2("Vitacura"))
	assert.Equal(t, RentRange{MinCLPM2: 13000, MaxCLPM2: 19000}, ReferenceRentRange("Vitacura"))

	// Communes without an override keep the built-in values.
	assert.Equal(t, 95.0, ReferencePricePerM2("Las Condes"))
}
