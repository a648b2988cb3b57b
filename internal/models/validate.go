package models

import "fmt"

// Validate rejects records that cannot produce a meaningful analysis.
// A non-positive area is allowed here; per-area consumers substitute a
// minimal floor instead of dividing by zero.
func (p Property) Validate() error {
	if p.PriceUF <= 0 {
		return fmt.Errorf("property price must be positive, got %v UF", p.PriceUF)
	}
	if p.MonthlyRentCLP <= 0 {
		return fmt.Errorf("expected rent must be positive, got %v CLP", p.MonthlyRentCLP)
	}
	if p.CommonCostsCLP < 0 {
		return fmt.Errorf("common costs cannot be negative, got %v CLP", p.CommonCostsCLP)
	}
	return nil
}

// Validate checks the financing parameters.
func (m MortgageTerms) Validate() error {
	if m.DownPaymentRate < 0 || m.DownPaymentRate >= 1 {
		return fmt.Errorf("down payment rate must be in [0, 1), got %v", m.DownPaymentRate)
	}
	if m.AnnualRatePercent < 0 {
		return fmt.Errorf("annual rate cannot be negative, got %v", m.AnnualRatePercent)
	}
	if m.TermYears < 1 {
		return fmt.Errorf("term must be at least 1 year, got %d", m.TermYears)
	}
	return nil
}

// Validate checks the operating assumptions.
func (o OperatingTerms) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"vacancy rate", o.VacancyRate},
		{"management rate", o.ManagementRate},
		{"maintenance rate", o.MaintenanceRate},
	} {
		if f.value < 0 || f.value > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %v", f.name, f.value)
		}
	}
	if o.AppreciationRate < -1 {
		return fmt.Errorf("appreciation rate cannot be below -100%%, got %v", o.AppreciationRate)
	}
	return nil
}
