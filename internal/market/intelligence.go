package market

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"ladrillo/server/internal/models"
)

// Intelligence orchestrates rent, location and price analysis into one
// market report.
type Intelligence struct {
	location *LocationAnalyzer
	price    *PriceAnalyzer
	rent     *CompEstimator
}

func NewIntelligence() *Intelligence {
	return &Intelligence{
		location: NewLocationAnalyzer(),
		price:    NewPriceAnalyzer(),
		rent:     NewCompEstimator(DefaultSeed),
	}
}

// GenerateReport runs the three analyses for one property. Bedrooms and
// bathrooms default to 2 and 1 when not provided.
func (m *Intelligence) GenerateReport(property models.Property) models.MarketReport {
	bedrooms := property.Bedrooms
	if bedrooms <= 0 {
		bedrooms = 2
	}
	bathrooms := property.Bathrooms
	if bathrooms <= 0 {
		bathrooms = 1
	}

	rent := m.rent.AnalyzeMarketRent(property.Commune, property.AreaM2, bedrooms, bathrooms)
	location := m.location.Analyze(property.Latitude, property.Longitude, property.Commune)
	price := m.price.Analyze(property.PriceUF, property.AreaM2, property.Commune)

	logrus.WithFields(logrus.Fields{
		"commune":      property.Commune,
		"comparables":  rent.ComparablesCount,
		"connectivity": location.Connectivity,
		"position":     price.Position,
	}).Info("Generated market report")

	return models.MarketReport{
		ID:          uuid.New().String(),
		Commune:     property.Commune,
		AreaM2:      property.AreaM2,
		Rent:        &rent,
		Location:    &location,
		Price:       &price,
		GeneratedAt: time.Now(),
	}
}
