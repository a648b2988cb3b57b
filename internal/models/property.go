package models

// Property is the flat record the engines consume. It is produced outside
// the core (manual entry form or listing importer) with the price already
// normalized to UF and the rent to CLP.
type Property struct {
	PriceUF        float64  `json:"price_uf"`
	MonthlyRentCLP float64  `json:"monthly_rent_clp"`
	CommonCostsCLP float64  `json:"common_costs_clp"`
	AreaM2         float64  `json:"area_m2"`
	Commune        string   `json:"commune"`
	Bedrooms       int      `json:"bedrooms"`
	Bathrooms      int      `json:"bathrooms"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	URL            string   `json:"url"`
}

// MortgageTerms holds the loan parameters. AnnualRatePercent is the spread
// over UF quoted by Chilean banks (4.5 means UF + 4.5%).
type MortgageTerms struct {
	DownPaymentRate   float64 `json:"down_payment_rate"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermYears         int     `json:"term_years"`
}

// OperatingTerms holds the configurable operating assumptions.
type OperatingTerms struct {
	VacancyRate      float64 `json:"vacancy_rate"`
	ManagementRate   float64 `json:"management_rate"`
	MaintenanceRate  float64 `json:"maintenance_rate"`
	AppreciationRate float64 `json:"appreciation_rate"`
}
