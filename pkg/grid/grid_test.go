package grid

import (
	"math"
	"testing"

	"github.com/lintang-b-s/landgrid/pkg"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratorValidation(t *testing.T) {
	tests := []struct {
		name    string
		radius  float64
		spacing float64
		wantErr bool
	}{
		{"valid", pkg.EARTH_RADIUS_KM, pkg.TARGET_SPACING_KM, false},
		{"zero radius", 0, 100, true},
		{"negative radius", -6371, 100, true},
		{"zero spacing", 6371, 0, true},
		{"spacing equals radius", 6371, 6371, true},
		{"spacing above radius", 6371, 7000, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator(tt.radius, tt.spacing)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLatitudeStep(t *testing.T) {
	g, err := NewGenerator(6371, 100)
	require.NoError(t, err)

	// (100/6371)*(180/pi)
	require.InDelta(t, 0.8994, g.LatitudeStep(), 1e-4)
}

func TestGeneratePointsStayInRange(t *testing.T) {
	g, err := NewGenerator(pkg.EARTH_RADIUS_KM, pkg.TARGET_SPACING_KM)
	require.NoError(t, err)

	lattice := g.Generate()
	require.NotEmpty(t, lattice)

	for _, p := range lattice {
		require.GreaterOrEqual(t, p.Lat(), -90.0)
		require.LessOrEqual(t, p.Lat(), 90.0)
		require.GreaterOrEqual(t, p.Lon(), -180.0)
		require.LessOrEqual(t, p.Lon(), 180.0)
	}
}

func TestGenerateSkipsPoles(t *testing.T) {
	g, err := NewGenerator(pkg.EARTH_RADIUS_KM, pkg.TARGET_SPACING_KM)
	require.NoError(t, err)

	for _, p := range g.Generate() {
		require.GreaterOrEqual(t, 90.0-math.Abs(p.Lat()), pkg.POLE_EPSILON_DEG)
	}
}

func TestGenerateConsecutiveLatitudeGap(t *testing.T) {
	g, err := NewGenerator(pkg.EARTH_RADIUS_KM, pkg.TARGET_SPACING_KM)
	require.NoError(t, err)

	lattice := g.Generate()
	latStep := g.LatitudeStep()

	prev := lattice[0].Lat()
	for _, p := range lattice[1:] {
		if p.Lat() == prev {
			continue
		}
		require.InDelta(t, latStep, p.Lat()-prev, 1e-9)
		prev = p.Lat()
	}
}

func TestGenerateLongitudeStepWidensTowardPoles(t *testing.T) {
	g, err := NewGenerator(pkg.EARTH_RADIUS_KM, pkg.TARGET_SPACING_KM)
	require.NoError(t, err)

	perRing := make(map[float64]int)
	for _, p := range g.Generate() {
		perRing[p.Lat()]++
	}

	var equatorLat, highLat float64 = 90, 0
	for lat := range perRing {
		if math.Abs(lat) < math.Abs(equatorLat) {
			equatorLat = lat
		}
		if math.Abs(lat) > math.Abs(highLat) {
			highLat = lat
		}
	}
	require.Greater(t, perRing[equatorLat], perRing[highLat])
}

func TestGenerateIsIdempotent(t *testing.T) {
	g, err := NewGenerator(pkg.EARTH_RADIUS_KM, pkg.TARGET_SPACING_KM)
	require.NoError(t, err)

	require.Equal(t, g.Generate(), g.Generate())
}
