package models

import "time"

// ConnectivityLevel bands proximity to the nearest Metro station.
type ConnectivityLevel string

const (
	ConnectivityHigh   ConnectivityLevel = "high"
	ConnectivityMedium ConnectivityLevel = "medium"
	ConnectivityLow    ConnectivityLevel = "low"
	ConnectivityNone   ConnectivityLevel = "none"
)

// PricePosition bands a property's UF/m² against its commune average.
type PricePosition string

const (
	PriceBelowMarket PricePosition = "below_market"
	PriceAtMarket    PricePosition = "at_market"
	PriceAboveMarket PricePosition = "above_market"
	PricePremium     PricePosition = "premium"
)

// MetroStation is one station of the Santiago Metro reference set.
// DistanceM is filled in relative to the analyzed property.
type MetroStation struct {
	Name      string  `json:"name"`
	Line      string  `json:"line"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	DistanceM float64 `json:"distance_m"`
}

// LocationAnalysis describes Metro connectivity for one property.
// When no coordinates could be resolved, NearestStation is nil and
// HasMetroAccess is false.
type LocationAnalysis struct {
	NearestStation     *MetroStation     `json:"nearest_station"`
	DistanceMeters     float64           `json:"distance_meters"`
	Connectivity       ConnectivityLevel `json:"connectivity"`
	NearbyStations     []MetroStation    `json:"nearby_stations"`
	MetroLines         []string          `json:"metro_lines"`
	WalkingTimeMinutes int               `json:"walking_time_minutes"`
	HasMetroAccess     bool              `json:"has_metro_access"`
}

// RentComparable is one (synthetic) comparable rental listing.
type RentComparable struct {
	PriceCLP   float64 `json:"price_clp"`
	AreaM2     float64 `json:"area_m2"`
	Commune    string  `json:"commune"`
	Bedrooms   int     `json:"bedrooms"`
	Bathrooms  int     `json:"bathrooms"`
	PricePerM2 float64 `json:"price_per_m2"`
}

// RentAnalysis summarizes comparable rentals and derives a suggested rent.
type RentAnalysis struct {
	ComparablesCount  int              `json:"comparables_count"`
	AverageRentCLP    float64          `json:"average_rent_clp"`
	MedianRentCLP     float64          `json:"median_rent_clp"`
	MinRentCLP        float64          `json:"min_rent_clp"`
	MaxRentCLP        float64          `json:"max_rent_clp"`
	StdDevCLP         float64          `json:"std_dev_clp"`
	AveragePricePerM2 float64          `json:"average_price_per_m2"`
	SuggestedRentCLP  float64          `json:"suggested_rent_clp"`
	SuggestedRangeCLP [2]float64       `json:"suggested_range_clp"`
	Comparables       []RentComparable `json:"comparables"`
	Methodology       string           `json:"methodology"`
}

// PriceAnalysis positions a property's price against its commune.
type PriceAnalysis struct {
	UFPerM2            float64       `json:"uf_per_m2"`
	CommuneAverageUFM2 float64       `json:"commune_average_uf_m2"`
	Position           PricePosition `json:"position"`
	PriceDiffPercent   float64       `json:"price_diff_percent"`
	PriceDiffUFM2      float64       `json:"price_diff_uf_m2"`
	IsOpportunity      bool          `json:"is_opportunity"`
	AnalysisText       string        `json:"analysis_text"`
}

// MarketReport bundles the three market analyses for one property.
type MarketReport struct {
	ID          string            `json:"id"`
	Commune     string            `json:"commune"`
	AreaM2      float64           `json:"area_m2"`
	Rent        *RentAnalysis     `json:"rent"`
	Location    *LocationAnalysis `json:"location"`
	Price       *PriceAnalysis    `json:"price"`
	GeneratedAt time.Time         `json:"generated_at"`
}
