package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ladrillo/server/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestAnalyzeByCoordinates(t *testing.T) {
	analyzer := NewLocationAnalyzer()

	// Right next to Pedro de Valdivia (L1) in Providencia.
	result := analyzer.Analyze(floatPtr(-33.4251), floatPtr(-70.6093), "")

	require.NotNil(t, result.NearestStation)
	assert.Equal(t, "Pedro de Valdivia", result.NearestStation.Name)
	assert.Equal(t, "L1", result.NearestStation.Line)
	assert.Less(t, result.DistanceMeters, 100.0)
	assert.Equal(t, models.ConnectivityHigh, result.Connectivity)
	assert.True(t, result.HasMetroAccess)
	assert.Contains(t, result.MetroLines, "L1")
}

func TestAnalyzeByCommuneCenter(t *testing.T) {
	analyzer := NewLocationAnalyzer()

	result := analyzer.Analyze(nil, nil, "Providencia")

	require.NotNil(t, result.NearestStation)
	assert.True(t, result.HasMetroAccess)
	assert.NotEqual(t, models.ConnectivityNone, result.Connectivity)
	assert.Greater(t, result.WalkingTimeMinutes, 0)
}

func TestAnalyzeConnectivityBands(t *testing.T) {
	// One station at the origin keeps the distances exact enough to pin
	// each band.
	station := models.MetroStation{Name: "Centro", Line: "LX", Latitude: -33.45, Longitude: -70.65}
	analyzer := NewLocationAnalyzerWithStations([]models.MetroStation{station})

	// 1 degree of latitude ≈ 111.2 km, so 0.001 ≈ 111 m.
	tests := []struct {
		name   string
		offset float64
		want   models.ConnectivityLevel
		access bool
	}{
		{name: "a block away is high", offset: 0.001, want: models.ConnectivityHigh, access: true},
		{name: "600m is medium", offset: 0.0054, want: models.ConnectivityMedium, access: true},
		{name: "1.2km is low", offset: 0.0108, want: models.ConnectivityLow, access: true},
		{name: "2km is none", offset: 0.018, want: models.ConnectivityNone, access: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzer.Analyze(floatPtr(-33.45+tt.offset), floatPtr(-70.65), "")
			assert.Equal(t, tt.want, result.Connectivity)
			assert.Equal(t, tt.access, result.HasMetroAccess)
		})
	}
}

func TestAnalyzeNearbyStationsCappedAtFive(t *testing.T) {
	analyzer := NewLocationAnalyzer()

	// Baquedano sits at the junction of several lines in dense coverage.
	result := analyzer.Analyze(floatPtr(-33.4375), floatPtr(-70.6350), "")

	assert.LessOrEqual(t, len(result.NearbyStations), 5)
	assert.Greater(t, len(result.MetroLines), 1)

	// Nearby stations come back ordered by distance.
	for i := 1; i < len(result.NearbyStations); i++ {
		assert.GreaterOrEqual(t, result.NearbyStations[i].DistanceM, result.NearbyStations[i-1].DistanceM)
	}
}

func TestAnalyzeUnknownCommune(t *testing.T) {
	analyzer := NewLocationAnalyzer()

	result := analyzer.Analyze(nil, nil, "Valparaíso")

	assert.Nil(t, result.NearestStation)
	assert.Equal(t, models.ConnectivityNone, result.Connectivity)
	assert.False(t, result.HasMetroAccess)
	assert.Empty(t, result.NearbyStations)
	assert.Empty(t, result.MetroLines)
}

func TestAnalyzeNoLocationAtAll(t *testing.T) {
	result := NewLocationAnalyzer().Analyze(nil, nil, "")

	assert.Nil(t, result.NearestStation)
	assert.False(t, result.HasMetroAccess)
	assert.Equal(t, 0, result.WalkingTimeMinutes)
}

func TestWalkingTimeCapped(t *testing.T) {
	station := models.MetroStation{Name: "Lejana", Line: "LX", Latitude: -33.45, Longitude: -70.65}
	analyzer := NewLocationAnalyzerWithStations([]models.MetroStation{station})

	// ~5.5 km away: beyond the 3 km walking threshold the estimate is 0.
	result := analyzer.Analyze(floatPtr(-33.50), floatPtr(-70.65), "")
	assert.Equal(t, 0, result.WalkingTimeMinutes)
	assert.Equal(t, models.ConnectivityNone, result.Connectivity)
}
