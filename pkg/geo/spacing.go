package geo

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/lintang-b-s/landgrid/pkg/datastructure"
)

type SpacingStats struct {
	MinKm  float64
	MaxKm  float64
	MeanKm float64
	Pairs  int
}

// RingSpacingStats measures the geodesic gap between consecutive points that
// share a latitude ring. Gaps across ring boundaries are not comparable and
// are left out.
func RingSpacingStats(points []datastructure.Coordinate) SpacingStats {
	stats := SpacingStats{MinKm: math.MaxFloat64}
	var sum float64
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		if prev.Lat() != cur.Lat() {
			continue
		}
		a := s2.LatLngFromDegrees(prev.Lat(), prev.Lon())
		b := s2.LatLngFromDegrees(cur.Lat(), cur.Lon())
		dist := a.Distance(b).Radians() * earthRadiusKM

		stats.Pairs++
		sum += dist
		if dist < stats.MinKm {
			stats.MinKm = dist
		}
		if dist > stats.MaxKm {
			stats.MaxKm = dist
		}
	}
	if stats.Pairs == 0 {
		stats.MinKm = 0
		return stats
	}
	stats.MeanKm = sum / float64(stats.Pairs)
	return stats
}
