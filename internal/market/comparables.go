package market

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"ladrillo/server/internal/models"
)

// DefaultSeed keeps synthetic comparables reproducible across calls.
const DefaultSeed = 42

const (
	defaultSampleCount = 15
	outlierStdFactor   = 2.0
)

// CompEstimator builds synthetic rent comparables from commune reference
// bands. A stand-in until real listing comparables are wired in.
type CompEstimator struct {
	seed int64
}

func NewCompEstimator(seed int64) *CompEstimator {
	return &CompEstimator{seed: seed}
}

// GenerateComparables synthesizes n comparable rentals around the
// commune's CLP/m² band, varying area ±15% and adjusting price per m²
// for size and bedroom count.
func (e *CompEstimator) GenerateComparables(commune string, areaM2 float64, bedrooms, n int) []models.RentComparable {
	band := ReferenceRentRange(commune)
	rng := rand.New(rand.NewSource(e.seed))

	bedroomDeltas := []int{-1, 0, 0, 1}
	bathDeltas := []int{-1, 0}

	comparables := make([]models.RentComparable, 0, n)
	for i := 0; i < n; i++ {
		supFactor := 0.85 + rng.Float64()*0.30
		sup := areaM2 * supFactor

		priceM2 := band.MinCLPM2 + rng.Float64()*(band.MaxCLPM2-band.MinCLPM2)

		// Larger units rent for less per m², small ones for more.
		if sup > 100 {
			priceM2 *= 0.92
		} else if sup < 50 {
			priceM2 *= 1.05
		}
		priceM2 *= 1 + float64(bedrooms-2)*0.03

		total := roundThousands(priceM2 * sup)
		area := math.Round(sup*10) / 10

		c := models.RentComparable{
			PriceCLP:  total,
			AreaM2:    area,
			Commune:   commune,
			Bedrooms:  bedrooms + bedroomDeltas[rng.Intn(len(bedroomDeltas))],
			Bathrooms: max(1, bedrooms+bathDeltas[rng.Intn(len(bathDeltas))]),
		}
		if c.AreaM2 > 0 {
			c.PricePerM2 = c.PriceCLP / c.AreaM2
		}
		comparables = append(comparables, c)
	}
	return comparables
}

// RemoveOutliers drops comparables outside mean ± stdFactor·σ. Small or
// zero-variance samples pass through unchanged.
func RemoveOutliers(comparables []models.RentComparable, stdFactor float64) []models.RentComparable {
	if len(comparables) < 3 {
		return comparables
	}

	prices := make([]float64, len(comparables))
	for i, c := range comparables {
		prices[i] = c.PriceCLP
	}
	avg := meanOf(prices)
	std := sampleStdDev(prices, avg)
	if std == 0 {
		return comparables
	}

	lower := avg - std*stdFactor
	upper := avg + std*stdFactor

	filtered := make([]models.RentComparable, 0, len(comparables))
	for _, c := range comparables {
		if c.PriceCLP >= lower && c.PriceCLP <= upper {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// AnalyzeMarketRent generates comparables, filters outliers and derives
// a conservative rent suggestion (95% of the median).
func (e *CompEstimator) AnalyzeMarketRent(commune string, areaM2 float64, bedrooms, bathrooms int) models.RentAnalysis {
	comparables := e.GenerateComparables(commune, areaM2, bedrooms, defaultSampleCount)

	filtered := RemoveOutliers(comparables, outlierStdFactor)
	if len(filtered) == 0 {
		filtered = comparables
	}

	prices := make([]float64, len(filtered))
	pricesM2 := make([]float64, 0, len(filtered))
	for i, c := range filtered {
		prices[i] = c.PriceCLP
		if c.PricePerM2 > 0 {
			pricesM2 = append(pricesM2, c.PricePerM2)
		}
	}

	avg := meanOf(prices)
	med := medianOf(prices)
	std := sampleStdDev(prices, avg)

	avgM2 := 0.0
	if len(pricesM2) > 0 {
		avgM2 = meanOf(pricesM2)
	}

	suggested := med * 0.95

	return models.RentAnalysis{
		ComparablesCount:  len(filtered),
		AverageRentCLP:    math.Round(avg),
		MedianRentCLP:     math.Round(med),
		MinRentCLP:        math.Round(minOf(prices)),
		MaxRentCLP:        math.Round(maxOf(prices)),
		StdDevCLP:         math.Round(std),
		AveragePricePerM2: math.Round(avgM2),
		SuggestedRentCLP:  roundThousands(suggested),
		SuggestedRangeCLP: [2]float64{roundThousands(med * 0.90), roundThousands(med * 1.05)},
		Comparables:       filtered,
		Methodology:       fmt.Sprintf("Estimate based on market rent bands for %s and similar properties", commune),
	}
}

func roundThousands(v float64) float64 {
	return math.Round(v/1000) * 1000
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func medianOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// sampleStdDev is the n-1 denominator form. Single samples have no
// spread and return 0.
func sampleStdDev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
