package finance

import (
	"math"

	"ladrillo/server/internal/models"
)

// MonthlyPayment returns the fixed monthly installment for an amortizing
// loan using the annuity formula:
//
//	PMT = P * r(1+r)^n / ((1+r)^n - 1)
//
// where r is the monthly rate (annual percent / 100 / 12) and n the number
// of installments. A zero rate degenerates to straight principal division.
func MonthlyPayment(principalUF, annualRatePercent float64, years int) float64 {
	n := float64(years) * 12
	if n <= 0 {
		return 0
	}

	monthlyRate := annualRatePercent / 100 / 12
	if monthlyRate == 0 {
		return principalUF / n
	}

	factor := math.Pow(1+monthlyRate, n)
	return principalUF * monthlyRate * factor / (factor - 1)
}

// MonthlyDividend builds the full monthly dividend: base installment plus
// the life and fire insurance riders. Both riders are computed once on the
// origination principal and property value and held constant for the life
// of the loan; in practice the life rider declines with the balance, but
// downstream expectations are calibrated to this simplification.
func MonthlyDividend(principalUF, annualRatePercent float64, years int, propertyValueUF float64) models.MortgagePayment {
	p := models.MortgagePayment{
		BaseInstallmentUF: round4(MonthlyPayment(principalUF, annualRatePercent, years)),
		LifeInsuranceUF:   round4(principalUF * LifeInsuranceMonthlyRate),
		FireInsuranceUF:   round4(propertyValueUF * FireInsuranceMonthlyRate),
	}
	p.TotalUF = p.BaseInstallmentUF + p.LifeInsuranceUF + p.FireInsuranceUF
	return p
}

// AmortizationSchedule generates the month-by-month schedule. The running
// balance is kept unrounded; stored balances are floored at zero so
// floating-point drift cannot produce a negative terminal balance.
func AmortizationSchedule(principalUF, annualRatePercent float64, years int) []models.AmortizationEntry {
	monthlyRate := annualRatePercent / 100 / 12
	nPayments := years * 12
	if nPayments <= 0 {
		return nil
	}

	payment := MonthlyPayment(principalUF, annualRatePercent, years)
	schedule := make([]models.AmortizationEntry, 0, nPayments)
	balance := principalUF

	for period := 1; period <= nPayments; period++ {
		interest := balance * monthlyRate
		principal := payment - interest
		balance -= principal

		schedule = append(schedule, models.AmortizationEntry{
			Period:      period,
			PaymentUF:   round4(payment),
			InterestUF:  round4(interest),
			PrincipalUF: round4(principal),
			BalanceUF:   round4(math.Max(0, balance)),
		})
	}

	return schedule
}
