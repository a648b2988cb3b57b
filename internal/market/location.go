package market

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"ladrillo/server/config"
	"ladrillo/server/internal/models"
)

// Connectivity band thresholds in meters.
const (
	highConnectivityM   = 500
	mediumConnectivityM = 800
	metroAccessM        = 1500

	// Walking speed estimate: 80 m/min (4.8 km/h). Beyond 3 km the walk
	// estimate is meaningless, so it is reported as 0.
	walkingSpeedMPerMin = 80
	maxWalkableM        = 3000

	maxNearbyStations = 5
)

// LocationAnalyzer scores Metro connectivity for a coordinate or, when
// only a commune is known, for its geographic center.
type LocationAnalyzer struct {
	stations []models.MetroStation
}

func NewLocationAnalyzer() *LocationAnalyzer {
	return &LocationAnalyzer{stations: MetroStations}
}

// NewLocationAnalyzerWithStations is used by tests to inject a small
// station set.
func NewLocationAnalyzerWithStations(stations []models.MetroStation) *LocationAnalyzer {
	return &LocationAnalyzer{stations: stations}
}

// Analyze evaluates Metro connectivity. lat/lon take precedence; when
// they are nil the commune center is used. With neither available the
// result reports no metro access.
func (a *LocationAnalyzer) Analyze(lat, lon *float64, commune string) models.LocationAnalysis {
	var point orb.Point
	switch {
	case lat != nil && lon != nil:
		point = orb.Point{*lon, *lat}
	case commune != "":
		c := config.GetCommuneByName(commune)
		if c == nil || len(c.Center) != 2 {
			return noAccessAnalysis()
		}
		point = orb.Point{c.Center[1], c.Center[0]}
	default:
		return noAccessAnalysis()
	}

	if len(a.stations) == 0 {
		return noAccessAnalysis()
	}

	ranked := make([]models.MetroStation, len(a.stations))
	for i, s := range a.stations {
		s.DistanceM = geo.DistanceHaversine(point, orb.Point{s.Longitude, s.Latitude})
		ranked[i] = s
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].DistanceM < ranked[j].DistanceM })

	nearest := ranked[0]
	distance := nearest.DistanceM

	var connectivity models.ConnectivityLevel
	switch {
	case distance < highConnectivityM:
		connectivity = models.ConnectivityHigh
	case distance < mediumConnectivityM:
		connectivity = models.ConnectivityMedium
	case distance < metroAccessM:
		connectivity = models.ConnectivityLow
	default:
		connectivity = models.ConnectivityNone
	}

	var nearby []models.MetroStation
	for _, s := range ranked {
		if s.DistanceM > metroAccessM {
			break
		}
		nearby = append(nearby, s)
	}

	lineSet := make(map[string]struct{}, len(nearby))
	for _, s := range nearby {
		lineSet[s.Line] = struct{}{}
	}
	lines := make([]string, 0, len(lineSet))
	for line := range lineSet {
		lines = append(lines, line)
	}
	sort.Strings(lines)

	walkingTime := 0
	if distance < maxWalkableM {
		walkingTime = int(distance / walkingSpeedMPerMin)
	}

	if len(nearby) > maxNearbyStations {
		nearby = nearby[:maxNearbyStations]
	}

	return models.LocationAnalysis{
		NearestStation:     &nearest,
		DistanceMeters:     distance,
		Connectivity:       connectivity,
		NearbyStations:     nearby,
		MetroLines:         lines,
		WalkingTimeMinutes: walkingTime,
		HasMetroAccess:     distance < metroAccessM,
	}
}

func noAccessAnalysis() models.LocationAnalysis {
	return models.LocationAnalysis{
		Connectivity:   models.ConnectivityNone,
		NearbyStations: []models.MetroStation{},
		MetroLines:     []string{},
	}
}
