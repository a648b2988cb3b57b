package market

import (
	"sort"
	"strings"

	"ladrillo/server/config"
)

// DefaultPricePerM2UF is used for communes without a reference entry.
const DefaultPricePerM2UF = 50.0

// AvgPricePerM2UF holds average asking prices in UF/m² per commune,
// compiled from portal listings.
var AvgPricePerM2UF = map[string]float64{
	// Sector oriente
	"Las Condes":   95.0,
	"Vitacura":     110.0,
	"Lo Barnechea": 85.0,
	"Providencia":  90.0,
	"Ñuñoa":        75.0,
	"La Reina":     70.0,

	// Santiago centro
	"Santiago":         65.0,
	"Independencia":    55.0,
	"Recoleta":         50.0,
	"Quinta Normal":    45.0,
	"Estación Central": 50.0,

	// Sector sur
	"San Miguel":   55.0,
	"San Joaquín":  45.0,
	"Macul":        55.0,
	"La Florida":   50.0,
	"Puente Alto":  35.0,
	"La Granja":    35.0,
	"La Cisterna":  45.0,
	"San Bernardo": 32.0,

	// Sector norte
	"Huechuraba": 50.0,
	"Conchalí":   40.0,
	"Renca":      38.0,
	"Quilicura":  40.0,
	"Colina":     45.0,

	// Sector poniente
	"Maipú":       42.0,
	"Pudahuel":    38.0,
	"Cerrillos":   45.0,
	"Lo Prado":    40.0,
	"Cerro Navia": 35.0,

	// Sector sur-oriente
	"Peñalolén":  55.0,
	"La Pintana": 28.0,
	"El Bosque":  35.0,
	"San Ramón":  32.0,
}

// RentRange is a [min, max] monthly rent band in CLP/m².
type RentRange struct {
	MinCLPM2 float64
	MaxCLPM2 float64
}

// DefaultRentRange is used for communes without a rent reference entry.
var DefaultRentRange = RentRange{MinCLPM2: 6000, MaxCLPM2: 10000}

// AvgRentPerM2CLP holds typical monthly rent bands per commune.
var AvgRentPerM2CLP = map[string]RentRange{
	"Las Condes":   {MinCLPM2: 10000, MaxCLPM2: 15000},
	"Vitacura":     {MinCLPM2: 12000, MaxCLPM2: 18000},
	"Lo Barnechea": {MinCLPM2: 9000, MaxCLPM2: 14000},
	"Providencia":  {MinCLPM2: 10000, MaxCLPM2: 14000},
	"Ñuñoa":        {MinCLPM2: 8000, MaxCLPM2: 12000},
	"La Reina":     {MinCLPM2: 8000, MaxCLPM2: 11000},
	"Santiago":     {MinCLPM2: 7000, MaxCLPM2: 11000},
	"San Miguel":   {MinCLPM2: 7000, MaxCLPM2: 10000},
	"La Florida":   {MinCLPM2: 6000, MaxCLPM2: 9000},
	"Maipú":        {MinCLPM2: 5500, MaxCLPM2: 8500},
	"Puente Alto":  {MinCLPM2: 5000, MaxCLPM2: 7500},
}

// ReferencePricePerM2 returns the reference UF/m² for a commune. Operator
// overrides win, then an exact table match, then a case-insensitive
// partial match, then the default.
func ReferencePricePerM2(commune string) float64 {
	if price, ok := config.ReferencePriceOverride(commune); ok {
		return price
	}
	if price, ok := AvgPricePerM2UF[commune]; ok {
		return price
	}

	lower := strings.ToLower(commune)
	if lower != "" {
		// Stable order so composite names like "Ñuñoa, Santiago" resolve
		// the same way every call.
		names := make([]string, 0, len(AvgPricePerM2UF))
		for name := range AvgPricePerM2UF {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			nameLower := strings.ToLower(name)
			if strings.Contains(lower, nameLower) || strings.Contains(nameLower, lower) {
				return AvgPricePerM2UF[name]
			}
		}
	}
	return DefaultPricePerM2UF
}

// ReferenceRentRange returns the CLP/m² rent band for a commune, falling
// back to the metropolitan default.
func ReferenceRentRange(commune string) RentRange {
	if r, ok := config.RentRangeOverride(commune); ok {
		return RentRange{MinCLPM2: r[0], MaxCLPM2: r[1]}
	}
	if r, ok := AvgRentPerM2CLP[commune]; ok {
		return r
	}
	return DefaultRentRange
}
