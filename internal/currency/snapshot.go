package currency

import (
	"fmt"
	"time"
)

// Snapshot holds one day's indicator values: the UF, the euro and the
// dollar, all expressed in CLP. One snapshot is used for a whole analysis
// run so every figure is internally consistent.
type Snapshot struct {
	UFCLP     float64   `json:"uf_clp"`
	EURCLP    float64   `json:"eur_clp"`
	USDCLP    float64   `json:"usd_clp"`
	FetchedAt time.Time `json:"fetched_at"`
}

// NewSnapshot validates the rates. A snapshot with a non-positive rate
// would poison every conversion downstream, so construction is the single
// place where that is rejected.
func NewSnapshot(ufCLP, eurCLP, usdCLP float64, fetchedAt time.Time) (Snapshot, error) {
	if ufCLP <= 0 {
		return Snapshot{}, fmt.Errorf("invalid UF/CLP rate: %v", ufCLP)
	}
	if eurCLP <= 0 {
		return Snapshot{}, fmt.Errorf("invalid EUR/CLP rate: %v", eurCLP)
	}
	if usdCLP <= 0 {
		return Snapshot{}, fmt.Errorf("invalid USD/CLP rate: %v", usdCLP)
	}
	return Snapshot{
		UFCLP:     ufCLP,
		EURCLP:    eurCLP,
		USDCLP:    usdCLP,
		FetchedAt: fetchedAt,
	}, nil
}

// UFEUR returns the value of one UF in euros.
func (s Snapshot) UFEUR() float64 {
	return s.UFCLP / s.EURCLP
}

// CLPEUR returns the value of one peso in euros.
func (s Snapshot) CLPEUR() float64 {
	return 1 / s.EURCLP
}
