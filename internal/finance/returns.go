package finance

import (
	"math"

	"ladrillo/server/internal/models"
)

// CapRate is annual NOI over property value, the leverage-free yield.
// A non-positive value yields 0 by documented degenerate-input policy.
func CapRate(annualNOI, propertyValue float64) float64 {
	if propertyValue <= 0 {
		return 0
	}
	return annualNOI / propertyValue
}

// CashOnCash is annual cash flow after debt service over cash invested.
// May be negative; non-positive invested cash yields 0.
func CashOnCash(annualCashflow, cashInvested float64) float64 {
	if cashInvested <= 0 {
		return 0
	}
	return annualCashflow / cashInvested
}

// IRR solves the annualized internal rate of return for an investment of
// cashInvested followed by the monthly cash flows, with exitValue added to
// the final month. Non-convergence is an expected outcome for pathological
// sign patterns and is reported through Ok, never as a sentinel number.
func IRR(cashInvested float64, monthlyCashflows []float64, exitValue float64) models.IRRResult {
	if len(monthlyCashflows) == 0 {
		return models.IRRResult{}
	}

	flows := make([]float64, 0, len(monthlyCashflows)+1)
	flows = append(flows, -cashInvested)
	flows = append(flows, monthlyCashflows[:len(monthlyCashflows)-1]...)
	flows = append(flows, monthlyCashflows[len(monthlyCashflows)-1]+exitValue)

	monthly, ok := solveRate(flows)
	if !ok {
		return models.IRRResult{}
	}
	return models.IRRResult{
		Value: math.Pow(1+monthly, 12) - 1,
		Ok:    true,
	}
}

// npv discounts the flow vector at the given periodic rate; flows[0] is
// period zero.
func npv(flows []float64, rate float64) float64 {
	value := 0.0
	discount := 1.0
	for _, f := range flows {
		value += f / discount
		discount *= 1 + rate
	}
	return value
}

// solveRate finds the periodic rate zeroing the NPV by scanning for a sign
// change over (-1, 10] and bisecting the bracket.
func solveRate(flows []float64) (float64, bool) {
	const (
		low   = -0.9999
		high  = 10.0
		steps = 2000
		tol   = 1e-10
	)

	prevRate := low
	prevNPV := npv(flows, prevRate)
	if math.IsNaN(prevNPV) || math.IsInf(prevNPV, 0) {
		return 0, false
	}

	for i := 1; i <= steps; i++ {
		rate := low + (high-low)*float64(i)/steps
		value := npv(flows, rate)
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return 0, false
		}

		if prevNPV*value <= 0 {
			lo, hi := prevRate, rate
			for j := 0; j < 200; j++ {
				mid := (lo + hi) / 2
				v := npv(flows, mid)
				if math.Abs(v) < tol {
					return mid, true
				}
				if prevNPV*v <= 0 {
					hi = mid
				} else {
					lo = mid
					prevNPV = v
				}
			}
			return (lo + hi) / 2, true
		}

		prevRate, prevNPV = rate, value
	}

	return 0, false
}

// ProjectPropertyValue applies geometric appreciation, returning years+1
// values with the initial value at index 0.
func ProjectPropertyValue(initialValueUF float64, years int, appreciationRate float64) []float64 {
	values := make([]float64, 0, years+1)
	values = append(values, initialValueUF)
	for i := 0; i < years; i++ {
		values = append(values, values[len(values)-1]*(1+appreciationRate))
	}
	return values
}

// balanceAtMonth returns the outstanding balance after the given number of
// paid months, clamped to the last entry when the horizon outruns the
// schedule. Month zero is the schedule's first balance.
func balanceAtMonth(schedule []models.AmortizationEntry, month int) float64 {
	if len(schedule) == 0 {
		return 0
	}
	idx := month - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(schedule) {
		idx = len(schedule) - 1
	}
	return schedule[idx].BalanceUF
}

// ProjectEquity pairs each projected year value with the amortization
// balance at that year's end. Equity is value minus outstanding debt.
func ProjectEquity(propertyValuesUF []float64, schedule []models.AmortizationEntry) []models.EquityPoint {
	points := make([]models.EquityPoint, 0, len(propertyValuesUF))

	for year, value := range propertyValuesUF {
		var debt float64
		if year == 0 {
			debt = balanceAtMonth(schedule, 1)
		} else {
			debt = balanceAtMonth(schedule, year*12)
		}

		points = append(points, models.EquityPoint{
			Year:            year,
			PropertyValueUF: round2(value),
			DebtUF:          round2(debt),
			EquityUF:        round2(value - debt),
		})
	}

	return points
}
