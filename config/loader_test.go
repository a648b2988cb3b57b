package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReferenceOverrides(t *testing.T) {
	t.Cleanup(ResetReferenceOverrides)

	path := filepath.Join(t.TempDir(), "overrides.json")
	payload := `{
		"reference_prices": {"Las Condes": 100.5},
		"rent_ranges": {"Las Condes": [11000, 16000]}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	require.NoError(t, LoadReferenceOverrides(path))

	price, ok := ReferencePriceOverride("Las Condes")
	assert.True(t, ok)
	assert.Equal(t, 100.5, price)

	r, ok := RentRangeOverride("Las Condes")
	assert.True(t, ok)
	assert.Equal(t, [2]float64{11000, 16000}, r)

	_, ok = ReferencePriceOverride("Vitacura")
	assert.False(t, ok)
}

func TestLoadReferenceOverridesEmptyPathIsNoop(t *testing.T) {
	t.Cleanup(ResetReferenceOverrides)

	require.NoError(t, LoadReferenceOverrides(""))

	_, ok := ReferencePriceOverride("Las Condes")
	assert.False(t, ok)
}

func TestLoadReferenceOverridesErrors(t *testing.T) {
	t.Cleanup(ResetReferenceOverrides)

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, LoadReferenceOverrides(filepath.Join(t.TempDir(), "missing.json")))
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		assert.Error(t, LoadReferenceOverrides(path))
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5280", cfg.Server.Port)
	assert.Equal(t, "https://mindicador.cl/api", cfg.Rates.BaseURL)
	assert.Equal(t, 10, cfg.Rates.TimeoutSeconds)
	assert.Equal(t, 60, cfg.Rates.CacheTTLMinutes)
	assert.Greater(t, cfg.Rates.FallbackUFCLP, 0.0)
}
