package market

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ladrillo/server/internal/models"
)

func TestGenerateComparablesDeterministic(t *testing.T) {
	estimator := NewCompEstimator(DefaultSeed)

	first := estimator.GenerateComparables("Providencia", 72, 2, 15)
	second := estimator.GenerateComparables("Providencia", 72, 2, 15)

	assert.Equal(t, first, second)
}

func TestGenerateComparablesSeedChangesOutput(t *testing.T) {
	a := NewCompEstimator(DefaultSeed).GenerateComparables("Providencia", 72, 2, 15)
	b := NewCompEstimator(7).GenerateComparables("Providencia", 72, 2, 15)

	assert.NotEqual(t, a, b)
}

func TestGenerateComparablesShape(t *testing.T) {
	comparables := NewCompEstimator(DefaultSeed).GenerateComparables("Providencia", 72, 2, 15)
	require.Len(t, comparables, 15)

	band := ReferenceRentRange("Providencia")
	for _, c := range comparables {
		assert.Equal(t, "Providencia", c.Commune)
		assert.Greater(t, c.PriceCLP, 0.0)
		assert.Equal(t, c.PriceCLP, math.Round(c.PriceCLP/1000)*1000, "prices round to thousands")

		// Area varies at most ±15% around the subject.
		assert.GreaterOrEqual(t, c.AreaM2, 72*0.85-0.1)
		assert.LessOrEqual(t, c.AreaM2, 72*1.15+0.1)

		// Bedrooms vary by at most one, bathrooms never drop below one.
		assert.GreaterOrEqual(t, c.Bedrooms, 1)
		assert.LessOrEqual(t, c.Bedrooms, 3)
		assert.GreaterOrEqual(t, c.Bathrooms, 1)

		// Price per m² stays near the commune band (size and bedroom
		// adjustments can push it a little past the edges).
		assert.Greater(t, c.PricePerM2, band.MinCLPM2*0.8)
		assert.Less(t, c.PricePerM2, band.MaxCLPM2*1.2)
	}
}

func TestRemoveOutliers(t *testing.T) {
	base := []models.RentComparable{
		{PriceCLP: 500000}, {PriceCLP: 510000}, {PriceCLP: 490000},
		{PriceCLP: 505000}, {PriceCLP: 495000},
	}

	t.Run("keeps clustered samples", func(t *testing.T) {
		filtered := RemoveOutliers(base, 2)
		assert.Len(t, filtered, 5)
	})

	t.Run("drops a far outlier", func(t *testing.T) {
		withOutlier := append(append([]models.RentComparable{}, base...),
			models.RentComparable{PriceCLP: 5000000})
		filtered := RemoveOutliers(withOutlier, 2)
		for _, c := range filtered {
			assert.Less(t, c.PriceCLP, 1000000.0)
		}
	})

	t.Run("small samples pass through", func(t *testing.T) {
		small := base[:2]
		assert.Equal(t, small, RemoveOutliers(small, 2))
	})

	t.Run("zero variance passes through", func(t *testing.T) {
		flat := []models.RentComparable{
			{PriceCLP: 500000}, {PriceCLP: 500000}, {PriceCLP: 500000},
		}
		assert.Equal(t, flat, RemoveOutliers(flat, 2))
	})
}

func TestAnalyzeMarketRent(t *testing.T) {
	analysis := NewCompEstimator(DefaultSeed).AnalyzeMarketRent("Providencia", 72, 2, 2)

	require.Greater(t, analysis.ComparablesCount, 0)
	assert.Len(t, analysis.Comparables, analysis.ComparablesCount)

	assert.GreaterOrEqual(t, analysis.MaxRentCLP, analysis.MedianRentCLP)
	assert.LessOrEqual(t, analysis.MinRentCLP, analysis.MedianRentCLP)
	assert.Greater(t, analysis.AveragePricePerM2, 0.0)

	// Conservative suggestion: 95% of the median, rounded to thousands.
	assert.InDelta(t, analysis.MedianRentCLP*0.95, analysis.SuggestedRentCLP, 501)
	assert.Less(t, analysis.SuggestedRangeCLP[0], analysis.SuggestedRangeCLP[1])
	assert.Contains(t, analysis.Methodology, "Providencia")
}

func TestAnalyzeMarketRentUnknownCommuneUsesDefaultBand(t *testing.T) {
	analysis := NewCompEstimator(DefaultSeed).AnalyzeMarketRent("Comuna Inexistente", 60, 2, 1)

	require.Greater(t, analysis.ComparablesCount, 0)

	// Default band is 6000–10000 CLP/m²; adjustments stay well inside
	// a generous envelope around it.
	assert.Greater(t, analysis.AveragePricePerM2, 6000*0.8)
	assert.Less(t, analysis.AveragePricePerM2, 10000*1.2)
}
