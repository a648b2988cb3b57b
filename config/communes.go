package config

import "strings"

// Commune represents a Greater Santiago commune configuration
type Commune struct {
	Name   string    `json:"name"`
	Center []float64 `json:"center"` // lat, lon of the geographic center
}

// SupportedCommunes lists the communes with known approximate centers
var SupportedCommunes = []Commune{
	{Name: "Las Condes", Center: []float64{-33.4170, -70.5875}},
	{Name: "Vitacura", Center: []float64{-33.3970, -70.5780}},
	{Name: "Lo Barnechea", Center: []float64{-33.3550, -70.5180}},
	{Name: "Providencia", Center: []float64{-33.4270, -70.6100}},
	{Name: "Ñuñoa", Center: []float64{-33.4560, -70.5970}},
	{Name: "La Reina", Center: []float64{-33.4520, -70.5420}},
	{Name: "Santiago", Center: []float64{-33.4450, -70.6550}},
	{Name: "Independencia", Center: []float64{-33.4170, -70.6650}},
	{Name: "Recoleta", Center: []float64{-33.4050, -70.6420}},
	{Name: "San Miguel", Center: []float64{-33.4970, -70.6520}},
	{Name: "La Florida", Center: []float64{-33.5220, -70.5980}},
	{Name: "Maipú", Center: []float64{-33.5100, -70.7570}},
	{Name: "Puente Alto", Center: []float64{-33.6100, -70.5770}},
	{Name: "Peñalolén", Center: []float64{-33.4870, -70.5310}},
	{Name: "Macul", Center: []float64{-33.4890, -70.6000}},
	{Name: "San Joaquín", Center: []float64{-33.4960, -70.6300}},
	{Name: "La Granja", Center: []float64{-33.5380, -70.6240}},
	{Name: "La Cisterna", Center: []float64{-33.5350, -70.6600}},
	{Name: "Estación Central", Center: []float64{-33.4520, -70.6800}},
	{Name: "Quinta Normal", Center: []float64{-33.4400, -70.6950}},
	{Name: "Cerrillos", Center: []float64{-33.4900, -70.7150}},
	{Name: "Huechuraba", Center: []float64{-33.3700, -70.6350}},
	{Name: "Conchalí", Center: []float64{-33.3900, -70.6650}},
	{Name: "Quilicura", Center: []float64{-33.3650, -70.7250}},
	{Name: "Pudahuel", Center: []float64{-33.4350, -70.7450}},
	{Name: "Renca", Center: []float64{-33.4050, -70.7200}},
	{Name: "El Bosque", Center: []float64{-33.5580, -70.6730}},
	{Name: "San Bernardo", Center: []float64{-33.5950, -70.7000}},
	{Name: "La Pintana", Center: []float64{-33.5850, -70.6350}},
	{Name: "San Ramón", Center: []float64{-33.5380, -70.6420}},
	{Name: "Lo Prado", Center: []float64{-33.4450, -70.7150}},
	{Name: "Cerro Navia", Center: []float64{-33.4270, -70.7350}},
	{Name: "Colina", Center: []float64{-33.2050, -70.6750}},
}

// GetCommuneNames returns a list of supported commune names
func GetCommuneNames() []string {
	names := make([]string, len(SupportedCommunes))
	for i, commune := range SupportedCommunes {
		names[i] = commune.Name
	}
	return names
}

// GetCommuneByName returns a commune configuration by name. It tries an
// exact match first, then a case-insensitive substring match in either
// direction ("Providencia, Santiago" still resolves).
func GetCommuneByName(name string) *Commune {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	for _, commune := range SupportedCommunes {
		if commune.Name == name {
			return &commune
		}
	}

	lower := strings.ToLower(name)
	for _, commune := range SupportedCommunes {
		communeLower := strings.ToLower(commune.Name)
		if strings.Contains(lower, communeLower) || strings.Contains(communeLower, lower) {
			return &commune
		}
	}
	return nil
}
