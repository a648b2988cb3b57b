package finance

import (
	"fmt"

	"ladrillo/server/internal/models"
)

// AnalyzeInvestment orchestrates the full financial analysis: CAPEX, loan
// sizing, dividend, OPEX, cash flow, return metrics, 5/10-year IRR with
// projected equity as terminal value, and the EUR views for presentation.
func (c *Calculator) AnalyzeInvestment(property models.Property, mortgage models.MortgageTerms, operating models.OperatingTerms) (models.InvestmentMetrics, error) {
	if err := property.Validate(); err != nil {
		return models.InvestmentMetrics{}, fmt.Errorf("invalid property: %v", err)
	}
	if err := mortgage.Validate(); err != nil {
		return models.InvestmentMetrics{}, fmt.Errorf("invalid mortgage terms: %v", err)
	}
	if err := operating.Validate(); err != nil {
		return models.InvestmentMetrics{}, fmt.Errorf("invalid operating terms: %v", err)
	}

	priceUF := property.PriceUF

	capex := InitialInvestment(priceUF, mortgage.DownPaymentRate)
	loanUF := priceUF - capex.DownPaymentUF

	payment := MonthlyDividend(loanUF, mortgage.AnnualRatePercent, mortgage.TermYears, priceUF)
	opex := c.MonthlyOpex(priceUF, property.MonthlyRentCLP, property.CommonCostsCLP, operating)
	noiCLP, cashflowCLP := c.MonthlyCashflow(property.MonthlyRentCLP, opex, payment)

	priceCLP := c.conv.UFToCLP(priceUF)
	capexCLP := c.conv.UFToCLP(capex.TotalUF)

	capRate := CapRate(noiCLP*12, priceCLP)
	cashOnCash := CashOnCash(cashflowCLP*12, capexCLP)

	schedule := AmortizationSchedule(loanUF, mortgage.AnnualRatePercent, mortgage.TermYears)
	projectedValues := ProjectPropertyValue(priceUF, 10, operating.AppreciationRate)

	irr5 := c.horizonIRR(capexCLP, cashflowCLP, projectedValues[5], schedule, 5)
	irr10 := c.horizonIRR(capexCLP, cashflowCLP, projectedValues[10], schedule, 10)

	return models.InvestmentMetrics{
		PriceUF:  priceUF,
		PriceEUR: round2(c.conv.UFToEUR(priceUF)),

		InitialInvestmentUF:  capex.TotalUF,
		InitialInvestmentEUR: round2(c.conv.UFToEUR(capex.TotalUF)),

		MonthlyDividendUF:  payment.TotalUF,
		MonthlyDividendEUR: round2(c.conv.UFToEUR(payment.TotalUF)),

		MonthlyNOICLP: round0(noiCLP),
		MonthlyNOIEUR: round2(c.conv.CLPToEUR(noiCLP)),

		MonthlyCashflowCLP: round0(cashflowCLP),
		MonthlyCashflowEUR: round2(c.conv.CLPToEUR(cashflowCLP)),

		CapRate:    round4(capRate),
		CashOnCash: round4(cashOnCash),
		IRR5Years:  irr5,
		IRR10Years: irr10,

		Capex:    capex,
		Opex:     opex,
		Mortgage: payment,

		RatesFetchedAt:     c.conv.Rates().FetchedAt,
		IsCashflowPositive: cashflowCLP > 0,
	}, nil
}

// horizonIRR holds the monthly cash flow constant over the horizon and
// adds the projected equity at exit as terminal value.
func (c *Calculator) horizonIRR(capexCLP, cashflowCLP, exitValueUF float64, schedule []models.AmortizationEntry, years int) models.IRRResult {
	months := years * 12

	cashflows := make([]float64, months)
	for i := range cashflows {
		cashflows[i] = cashflowCLP
	}

	equityCLP := c.conv.UFToCLP(exitValueUF - balanceAtMonth(schedule, months))

	result := IRR(capexCLP, cashflows, equityCLP)
	if result.Ok {
		result.Value = round4(result.Value)
	}
	return result
}
