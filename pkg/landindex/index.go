package landindex

import (
	"github.com/lintang-b-s/landgrid/pkg/datastructure"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

type boundedFeature struct {
	geometry orb.Geometry // Polygon or MultiPolygon only
	bound    orb.Bound
}

// Index holds closed-region boundaries with their bounding boxes precomputed
// once, so containment queries can reject most features with four comparisons
// before paying for the exact ring test.
type Index struct {
	features []boundedFeature
	skipped  int
}

func NewIndex(fc *geojson.FeatureCollection) *Index {
	idx := &Index{}
	if fc == nil {
		return idx
	}
	for _, f := range fc.Features {
		if f == nil {
			idx.skipped++
			continue
		}
		switch geom := f.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
			idx.features = append(idx.features, boundedFeature{
				geometry: geom,
				bound:    geom.Bound(),
			})
		default:
			// missing or non-areal geometry, not an error
			idx.skipped++
		}
	}
	return idx
}

func (idx *Index) NumFeatures() int {
	return len(idx.features)
}

func (idx *Index) NumSkipped() int {
	return idx.skipped
}

// Contains reports whether the coordinate lies inside at least one feature
// boundary. First match wins; feature order carries no meaning.
func (idx *Index) Contains(c datastructure.Coordinate) bool {
	point := orb.Point{c.Lon(), c.Lat()}
	for i := range idx.features {
		bf := &idx.features[i]
		if !bf.bound.Contains(point) {
			continue
		}
		switch geom := bf.geometry.(type) {
		case orb.Polygon:
			if planar.PolygonContains(geom, point) {
				return true
			}
		case orb.MultiPolygon:
			if planar.MultiPolygonContains(geom, point) {
				return true
			}
		}
	}
	return false
}
