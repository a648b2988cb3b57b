package currency

// Converter provides the six conversions between UF, CLP and EUR derived
// from one snapshot. Conversions never round; rounding belongs to the
// presentation boundary.
type Converter struct {
	rates Snapshot
}

// NewConverter wraps a validated snapshot.
func NewConverter(rates Snapshot) Converter {
	return Converter{rates: rates}
}

// Rates returns the snapshot backing this converter.
func (c Converter) Rates() Snapshot {
	return c.rates
}

func (c Converter) UFToCLP(amountUF float64) float64 {
	return amountUF * c.rates.UFCLP
}

func (c Converter) CLPToUF(amountCLP float64) float64 {
	return amountCLP / c.rates.UFCLP
}

func (c Converter) UFToEUR(amountUF float64) float64 {
	return c.UFToCLP(amountUF) / c.rates.EURCLP
}

func (c Converter) CLPToEUR(amountCLP float64) float64 {
	return amountCLP / c.rates.EURCLP
}

func (c Converter) EURToCLP(amountEUR float64) float64 {
	return amountEUR * c.rates.EURCLP
}

func (c Converter) EURToUF(amountEUR float64) float64 {
	return c.CLPToUF(c.EURToCLP(amountEUR))
}
