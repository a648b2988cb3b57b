package market

import (
	"fmt"
	"math"

	"ladrillo/server/internal/models"
)

// PriceAnalyzer positions a property's UF/m² against its commune average.
type PriceAnalyzer struct{}

func NewPriceAnalyzer() *PriceAnalyzer {
	return &PriceAnalyzer{}
}

// Analyze compares price per m² against the commune reference. A
// non-positive area is floored to 1 m² to keep the ratio defined.
func (a *PriceAnalyzer) Analyze(priceUF, areaM2 float64, commune string) models.PriceAnalysis {
	if areaM2 <= 0 {
		areaM2 = 1
	}

	ufPerM2 := priceUF / areaM2
	communeAvg := ReferencePricePerM2(commune)

	diffUF := ufPerM2 - communeAvg
	diffPercent := 0.0
	if communeAvg > 0 {
		diffPercent = (ufPerM2/communeAvg - 1) * 100
	}

	var (
		position      models.PricePosition
		isOpportunity bool
		analysis      string
	)
	switch {
	case diffPercent < -15:
		position = models.PriceBelowMarket
		isOpportunity = true
		analysis = fmt.Sprintf(
			"This property is %.1f%% below the %s average (%.0f UF/m²). It could be a good investment opportunity if there are no structural or legal issues.",
			math.Abs(diffPercent), commune, communeAvg)
	case diffPercent < -5:
		position = models.PriceBelowMarket
		isOpportunity = true
		analysis = fmt.Sprintf(
			"Price slightly below market (%.1f%% less). Look into the reasons, but it could be an opportunity.",
			math.Abs(diffPercent))
	case diffPercent <= 10:
		position = models.PriceAtMarket
		analysis = fmt.Sprintf(
			"The price is aligned with the %s market. It is a fair price for the area.", commune)
	case diffPercent <= 25:
		position = models.PriceAboveMarket
		analysis = fmt.Sprintf(
			"This property is %.1f%% above the %s average. Check whether factors like the view or a high floor justify the premium.",
			diffPercent, commune)
	default:
		position = models.PricePremium
		analysis = fmt.Sprintf(
			"Premium price significantly above market (%.1f%% more). Only justifiable with exceptional characteristics.",
			diffPercent)
	}

	return models.PriceAnalysis{
		UFPerM2:            round2(ufPerM2),
		CommuneAverageUFM2: round2(communeAvg),
		Position:           position,
		PriceDiffPercent:   round1(diffPercent),
		PriceDiffUFM2:      round2(diffUF),
		IsOpportunity:      isOpportunity,
		AnalysisText:       analysis,
	}
}
