package osmsource

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lintang-b-s/landgrid/pkg/landindex"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmgeojson"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

const logEvery = 50000

// Source builds a land index from a local .osm.pbf extract instead of the
// remote GeoJSON dataset. Country boundary relations are collected with their
// member ways and nodes, converted to GeoJSON and fed to the same index
// builder the remote path uses.
type Source struct {
	mapFile string
	logger  *zap.Logger
}

func NewSource(mapFile string, logger *zap.Logger) *Source {
	return &Source{
		mapFile: mapFile,
		logger:  logger,
	}
}

func (s *Source) Load(ctx context.Context) (*landindex.Index, error) {
	fc, err := s.parse(ctx)
	if err != nil {
		return nil, err
	}
	idx := landindex.NewIndex(fc)
	s.logger.Sugar().Infof("built land index from %s: %d features, %d skipped",
		s.mapFile, idx.NumFeatures(), idx.NumSkipped())
	return idx, nil
}

func acceptBoundaryRelation(relation *osm.Relation) bool {
	tipe := relation.Tags.Find("type")
	if tipe != "boundary" && tipe != "multipolygon" {
		return false
	}
	if relation.Tags.Find("boundary") == "administrative" {
		// country-level boundaries only
		return relation.Tags.Find("admin_level") == "2"
	}
	return relation.Tags.Find("natural") == "coastline" || relation.Tags.Find("place") == "island"
}

func (s *Source) parse(ctx context.Context) (*geojson.FeatureCollection, error) {
	f, err := os.Open(s.mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// relations come last in a pbf, so membership has to be collected first
	relations := make(osm.Relations, 0)
	wantWay := make(map[osm.WayID]struct{})

	scanner := osmpbf.New(ctx, f, 0)
	countRelations := 0
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeRelation {
			continue
		}
		relation := o.(*osm.Relation)
		if !acceptBoundaryRelation(relation) {
			continue
		}
		if (countRelations+1)%logEvery == 0 {
			s.logger.Sugar().Infof("scanning openstreetmap relations: %d...", countRelations+1)
		}
		countRelations++

		relations = append(relations, relation)
		for _, member := range relation.Members {
			if member.Type == osm.TypeWay {
				wantWay[osm.WayID(member.Ref)] = struct{}{}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("scanning relations: %w", err)
	}
	scanner.Close()

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	ways := make(osm.Ways, 0, len(wantWay))
	wantNode := make(map[osm.NodeID]struct{})

	scanner = osmpbf.New(ctx, f, 0)
	countWays := 0
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeWay {
			continue
		}
		way := o.(*osm.Way)
		if _, ok := wantWay[way.ID]; !ok {
			continue
		}
		if (countWays+1)%logEvery == 0 {
			s.logger.Sugar().Infof("scanning openstreetmap ways: %d...", countWays+1)
		}
		countWays++

		ways = append(ways, way)
		for _, node := range way.Nodes {
			wantNode[node.ID] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("scanning ways: %w", err)
	}
	scanner.Close()

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	nodes := make(osm.Nodes, 0, len(wantNode))

	scanner = osmpbf.New(ctx, f, 0)
	defer scanner.Close()
	countNodes := 0
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeNode {
			continue
		}
		node := o.(*osm.Node)
		if _, ok := wantNode[node.ID]; !ok {
			continue
		}
		if (countNodes+1)%logEvery == 0 {
			s.logger.Sugar().Infof("scanning openstreetmap nodes: %d...", countNodes+1)
		}
		countNodes++
		nodes = append(nodes, node)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning nodes: %w", err)
	}

	s.logger.Sugar().Infof("collected %d boundary relations, %d ways, %d nodes",
		len(relations), len(ways), len(nodes))

	return FeaturesFromOSM(&osm.OSM{Nodes: nodes, Ways: ways, Relations: relations})
}

// FeaturesFromOSM converts collected boundary objects into areal GeoJSON
// features. Relations whose rings do not assemble into a polygon come out as
// line features and are dropped here.
func FeaturesFromOSM(o *osm.OSM) (*geojson.FeatureCollection, error) {
	converted, err := osmgeojson.Convert(o,
		osmgeojson.NoMeta(true),
		osmgeojson.NoRelationMembership(true))
	if err != nil {
		return nil, fmt.Errorf("converting osm boundaries: %w", err)
	}

	fc := geojson.NewFeatureCollection()
	for _, f := range converted.Features {
		switch f.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
			fc.Append(f)
		}
	}
	return fc, nil
}
