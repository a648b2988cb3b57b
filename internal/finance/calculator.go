package finance

import (
	"ladrillo/server/internal/currency"
	"ladrillo/server/internal/models"
)

// Calculator binds the engines that need currency conversion to one rate
// snapshot, so a whole analysis run never mixes rates.
type Calculator struct {
	conv currency.Converter
}

// NewCalculator creates a calculator for one snapshot.
func NewCalculator(rates currency.Snapshot) *Calculator {
	return &Calculator{conv: currency.NewConverter(rates)}
}

// Converter exposes the underlying converter for presentation callers.
func (c *Calculator) Converter() currency.Converter {
	return c.conv
}

// MonthlyOpex computes the recurring monthly holding cost in CLP:
// mensualized territorial tax on the commercial value, VAT-inclusive
// management fee, maintenance reserve, vacancy provision and the building
// fee passthrough. Figures are rounded to whole pesos.
func (c *Calculator) MonthlyOpex(propertyValueUF, rentCLP, commonCostsCLP float64, terms models.OperatingTerms) models.OpexBreakdown {
	valueCLP := c.conv.UFToCLP(propertyValueUF)

	b := models.OpexBreakdown{
		PropertyTaxCLP: round0(valueCLP * PropertyTaxAnnualRate / 12),
		ManagementCLP:  round0(rentCLP * terms.ManagementRate * (1 + VATRate)),
		MaintenanceCLP: round0(rentCLP * terms.MaintenanceRate),
		VacancyCLP:     round0(rentCLP * terms.VacancyRate),
		CommonCostsCLP: round0(commonCostsCLP),
	}
	b.TotalCLP = b.PropertyTaxCLP + b.ManagementCLP + b.MaintenanceCLP +
		b.VacancyCLP + b.CommonCostsCLP
	return b
}

// MonthlyCashflow returns the net operating income and the cash flow after
// debt service, both in CLP. The dividend is converted from UF with the
// calculator's snapshot.
func (c *Calculator) MonthlyCashflow(rentCLP float64, opex models.OpexBreakdown, mortgage models.MortgagePayment) (noiCLP, cashflowCLP float64) {
	noiCLP = rentCLP - opex.TotalCLP
	cashflowCLP = noiCLP - c.conv.UFToCLP(mortgage.TotalUF)
	return noiCLP, cashflowCLP
}
