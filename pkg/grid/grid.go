package grid

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/landgrid/pkg"
	"github.com/lintang-b-s/landgrid/pkg/datastructure"
	"github.com/lintang-b-s/landgrid/pkg/geo"
)

// Generator produces a lattice of lat/lon points with approximately uniform
// geodesic spacing over the full sphere. Rings near the poles where longitude
// spacing degenerates are skipped.
type Generator struct {
	earthRadiusKm   float64
	targetSpacingKm float64
}

func NewGenerator(earthRadiusKm, targetSpacingKm float64) (*Generator, error) {
	if earthRadiusKm <= 0 {
		return nil, fmt.Errorf("earth radius must be positive, got %v", earthRadiusKm)
	}
	if targetSpacingKm <= 0 || targetSpacingKm >= earthRadiusKm {
		return nil, fmt.Errorf("target spacing must be in (0, %v), got %v", earthRadiusKm, targetSpacingKm)
	}
	return &Generator{
		earthRadiusKm:   earthRadiusKm,
		targetSpacingKm: targetSpacingKm,
	}, nil
}

// LatitudeStep is the constant latitude step in degrees corresponding to the
// target spacing along a meridian.
func (g *Generator) LatitudeStep() float64 {
	return geo.RadiansToDegree(g.targetSpacingKm / g.earthRadiusKm)
}

// Generate walks latitude rings from -90 to +90 and, on each ring, emits
// longitudes from -180 to +180 with the step widened by 1/cos(lat) so the
// physical gap stays close to the target spacing as the rings shrink toward
// the poles. Pure function of the generator parameters.
func (g *Generator) Generate() []datastructure.Coordinate {
	latStep := g.LatitudeStep()

	lattice := make([]datastructure.Coordinate, 0)
	for lat := -90.0; lat <= 90.0; lat += latStep {
		if 90.0-math.Abs(lat) < pkg.POLE_EPSILON_DEG {
			continue
		}
		cosLat := math.Cos(geo.DegreeToRadians(lat))
		if cosLat < pkg.MIN_COS_LATITUDE {
			continue
		}
		lonStep := geo.RadiansToDegree(g.targetSpacingKm / (g.earthRadiusKm * cosLat))
		for lon := -180.0; lon <= 180.0; lon += lonStep {
			lattice = append(lattice, datastructure.NewCoordinate(lat, lon))
		}
	}
	return lattice
}
