package finance

import "ladrillo/server/internal/models"

// Fixed closing fees in UF, standard for a notarized Chilean purchase.
const (
	AppraisalFeeUF  = 3.0
	TitleStudyFeeUF = 5.0
	DeedDraftFeeUF  = 3.0
	NotaryFeeUF     = 4.0
)

// Chilean market rates.
const (
	// Stamp tax on the mortgage loan amount.
	LoanTaxRate = 0.008

	// Real estate registry (Conservador de Bienes Raíces): percentage of
	// the property value with a hard cap.
	RegistryRate  = 0.005
	RegistryCapUF = 50.0

	// Brokerage commission, charged net of VAT.
	BrokerageRate = 0.02
	VATRate       = 0.19

	// Territorial tax (contribuciones) on the commercial value, per year.
	PropertyTaxAnnualRate = 0.0075

	// Mandatory insurance riders, monthly. Life/disability is charged on
	// the loan principal, fire/earthquake on the insured property value.
	LifeInsuranceMonthlyRate = 0.00025
	FireInsuranceMonthlyRate = 0.0002
)

// Documented market norms used when the caller does not override them.
const (
	DefaultDownPaymentRate  = 0.30
	DefaultAnnualRate       = 4.5
	DefaultTermYears        = 20
	DefaultManagementRate   = 0.10
	DefaultMaintenanceRate  = 0.05
	DefaultVacancyRate      = 0.05
	DefaultAppreciationRate = 0.02
)

// DefaultMortgageTerms returns the standard non-resident financing terms.
func DefaultMortgageTerms() models.MortgageTerms {
	return models.MortgageTerms{
		DownPaymentRate:   DefaultDownPaymentRate,
		AnnualRatePercent: DefaultAnnualRate,
		TermYears:         DefaultTermYears,
	}
}

// DefaultOperatingTerms returns the documented operating assumptions.
func DefaultOperatingTerms() models.OperatingTerms {
	return models.OperatingTerms{
		VacancyRate:      DefaultVacancyRate,
		ManagementRate:   DefaultManagementRate,
		MaintenanceRate:  DefaultMaintenanceRate,
		AppreciationRate: DefaultAppreciationRate,
	}
}
