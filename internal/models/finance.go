package models

import "time"

// CapexBreakdown is the one-time acquisition cost, line by line, in UF.
// TotalUF is always the exact sum of the line items.
type CapexBreakdown struct {
	DownPaymentUF float64 `json:"down_payment_uf"`
	LoanTaxUF     float64 `json:"loan_tax_uf"`
	AppraisalUF   float64 `json:"appraisal_uf"`
	TitleStudyUF  float64 `json:"title_study_uf"`
	DeedDraftUF   float64 `json:"deed_draft_uf"`
	NotaryUF      float64 `json:"notary_uf"`
	RegistryUF    float64 `json:"registry_uf"`
	BrokerageUF   float64 `json:"brokerage_uf"`
	TotalUF       float64 `json:"total_uf"`
}

// ClosingCostsUF returns the closing costs without the down payment.
func (c CapexBreakdown) ClosingCostsUF() float64 {
	return c.TotalUF - c.DownPaymentUF
}

// OpexBreakdown is the recurring monthly holding cost in CLP.
type OpexBreakdown struct {
	PropertyTaxCLP float64 `json:"property_tax_clp"`
	ManagementCLP  float64 `json:"management_clp"`
	MaintenanceCLP float64 `json:"maintenance_clp"`
	VacancyCLP     float64 `json:"vacancy_clp"`
	CommonCostsCLP float64 `json:"common_costs_clp"`
	TotalCLP       float64 `json:"total_clp"`
}

// MortgagePayment is the monthly dividend: base installment plus the two
// mandatory insurance riders, in UF.
type MortgagePayment struct {
	BaseInstallmentUF float64 `json:"base_installment_uf"`
	LifeInsuranceUF   float64 `json:"life_insurance_uf"`
	FireInsuranceUF   float64 `json:"fire_insurance_uf"`
	TotalUF           float64 `json:"total_uf"`
}

// AmortizationEntry is one month of a fixed-payment schedule.
type AmortizationEntry struct {
	Period      int     `json:"period"`
	PaymentUF   float64 `json:"payment_uf"`
	InterestUF  float64 `json:"interest_uf"`
	PrincipalUF float64 `json:"principal_uf"`
	BalanceUF   float64 `json:"balance_uf"`
}

// EquityPoint is one year of the value/debt/equity projection.
type EquityPoint struct {
	Year            int     `json:"year"`
	PropertyValueUF float64 `json:"property_value_uf"`
	DebtUF          float64 `json:"debt_uf"`
	EquityUF        float64 `json:"equity_uf"`
}

// IRRResult carries an annualized internal rate of return that may be
// indeterminate. Presentation must render "not applicable" when Ok is
// false, never a numeric placeholder.
type IRRResult struct {
	Value float64 `json:"value"`
	Ok    bool    `json:"ok"`
}

// InvestmentMetrics aggregates the full financial analysis of one property.
// Immutable once built.
type InvestmentMetrics struct {
	PriceUF  float64 `json:"price_uf"`
	PriceEUR float64 `json:"price_eur"`

	InitialInvestmentUF  float64 `json:"initial_investment_uf"`
	InitialInvestmentEUR float64 `json:"initial_investment_eur"`

	MonthlyDividendUF  float64 `json:"monthly_dividend_uf"`
	MonthlyDividendEUR float64 `json:"monthly_dividend_eur"`

	MonthlyNOICLP float64 `json:"monthly_noi_clp"`
	MonthlyNOIEUR float64 `json:"monthly_noi_eur"`

	MonthlyCashflowCLP float64 `json:"monthly_cashflow_clp"`
	MonthlyCashflowEUR float64 `json:"monthly_cashflow_eur"`

	CapRate    float64   `json:"cap_rate"`
	CashOnCash float64   `json:"cash_on_cash"`
	IRR5Years  IRRResult `json:"irr_5_years"`
	IRR10Years IRRResult `json:"irr_10_years"`

	Capex    CapexBreakdown  `json:"capex"`
	Opex     OpexBreakdown   `json:"opex"`
	Mortgage MortgagePayment `json:"mortgage"`

	RatesFetchedAt     time.Time `json:"rates_fetched_at"`
	IsCashflowPositive bool      `json:"is_cashflow_positive"`
}
