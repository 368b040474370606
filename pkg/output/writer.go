package output

import (
	"encoding/json"
	"os"

	"github.com/lintang-b-s/landgrid/pkg/datastructure"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/twpayne/go-polyline"
)

// WriteGeoJSON dumps the points as a FeatureCollection of Point features,
// the handoff format for the rendering side.
func WriteGeoJSON(filename string, points []datastructure.Coordinate) error {
	fc := geojson.NewFeatureCollection()
	for _, p := range points {
		fc.Append(geojson.NewFeature(orb.Point{p.Lon(), p.Lat()}))
	}
	buf, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, buf, 0644)
}

func EncodePolyline(points []datastructure.Coordinate) string {
	coords := make([][]float64, 0, len(points))
	for _, p := range points {
		coords = append(coords, []float64{p.Lat(), p.Lon()})
	}
	return string(polyline.EncodeCoords(coords))
}

// WritePolyline dumps the points as one encoded polyline, a compact
// alternative to the GeoJSON dump.
func WritePolyline(filename string, points []datastructure.Coordinate) error {
	return os.WriteFile(filename, []byte(EncodePolyline(points)), 0644)
}
