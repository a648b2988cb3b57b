package market

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ladrillo/server/internal/models"
)

func TestPriceAnalyzerBands(t *testing.T) {
	analyzer := NewPriceAnalyzer()

	// Providencia reference is 90 UF/m².
	tests := []struct {
		name        string
		priceUF     float64
		areaM2      float64
		want        models.PricePosition
		opportunity bool
	}{
		{name: "deep discount", priceUF: 70 * 72, areaM2: 72, want: models.PriceBelowMarket, opportunity: true},
		{name: "mild discount", priceUF: 83 * 72, areaM2: 72, want: models.PriceBelowMarket, opportunity: true},
		{name: "at market", priceUF: 92 * 72, areaM2: 72, want: models.PriceAtMarket, opportunity: false},
		{name: "above market", priceUF: 105 * 72, areaM2: 72, want: models.PriceAboveMarket, opportunity: false},
		{name: "premium", priceUF: 130 * 72, areaM2: 72, want: models.PricePremium, opportunity: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzer.Analyze(tt.priceUF, tt.areaM2, "Providencia")
			assert.Equal(t, tt.want, result.Position)
			assert.Equal(t, tt.opportunity, result.IsOpportunity)
			assert.Equal(t, 90.0, result.CommuneAverageUFM2)
			assert.NotEmpty(t, result.AnalysisText)
		})
	}
}

func TestPriceAnalyzerDiffFields(t *testing.T) {
	result := NewPriceAnalyzer().Analyze(99*72, 72, "Providencia")

	assert.InDelta(t, 99, result.UFPerM2, 0.01)
	assert.InDelta(t, 10, result.PriceDiffPercent, 0.1)
	assert.InDelta(t, 9, result.PriceDiffUFM2, 0.01)
}

func TestPriceAnalyzerFlooredArea(t *testing.T) {
	// Non-positive area is floored to 1 m² instead of dividing by zero.
	result := NewPriceAnalyzer().Analyze(5000, 0, "Providencia")
	assert.InDelta(t, 5000, result.UFPerM2, 0.01)
}

func TestPriceAnalyzerUnknownCommuneFallsBack(t *testing.T) {
	result := NewPriceAnalyzer().Analyze(50*60, 60, "Comuna Inexistente")

	assert.Equal(t, DefaultPricePerM2UF, result.CommuneAverageUFM2)
	assert.Equal(t, models.PriceAtMarket, result.Position)
}

func TestPriceAnalyzerPartialCommuneMatch(t *testing.T) {
	result := NewPriceAnalyzer().Analyze(90*72, 72, "Providencia, Santiago Oriente")

	// Composite names still resolve to the commune reference.
	assert.Equal(t, 90.0, result.CommuneAverageUFM2)
}
