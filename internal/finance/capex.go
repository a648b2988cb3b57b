package finance

import (
	"math"

	"ladrillo/server/internal/models"
)

// InitialInvestment computes the full acquisition cost: down payment, loan
// stamp tax, the fixed legal fees, the capped registry fee and the
// VAT-inclusive brokerage commission. The total is the exact sum of the
// stored line items.
func InitialInvestment(propertyValueUF, downPaymentRate float64) models.CapexBreakdown {
	downPayment := propertyValueUF * downPaymentRate
	loanAmount := propertyValueUF - downPayment

	registry := math.Min(propertyValueUF*RegistryRate, RegistryCapUF)
	brokerage := propertyValueUF * BrokerageRate * (1 + VATRate)

	b := models.CapexBreakdown{
		DownPaymentUF: round2(downPayment),
		LoanTaxUF:     round2(loanAmount * LoanTaxRate),
		AppraisalUF:   AppraisalFeeUF,
		TitleStudyUF:  TitleStudyFeeUF,
		DeedDraftUF:   DeedDraftFeeUF,
		NotaryUF:      NotaryFeeUF,
		RegistryUF:    round2(registry),
		BrokerageUF:   round2(brokerage),
	}
	b.TotalUF = b.DownPaymentUF + b.LoanTaxUF + b.AppraisalUF + b.TitleStudyUF +
		b.DeedDraftUF + b.NotaryUF + b.RegistryUF + b.BrokerageUF
	return b
}
