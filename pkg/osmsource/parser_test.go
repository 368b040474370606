package osmsource

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/require"
)

func TestAcceptBoundaryRelation(t *testing.T) {
	tests := []struct {
		name string
		tags osm.Tags
		want bool
	}{
		{
			"country boundary",
			osm.Tags{
				{Key: "type", Value: "boundary"},
				{Key: "boundary", Value: "administrative"},
				{Key: "admin_level", Value: "2"},
			},
			true,
		},
		{
			"province boundary",
			osm.Tags{
				{Key: "type", Value: "boundary"},
				{Key: "boundary", Value: "administrative"},
				{Key: "admin_level", Value: "4"},
			},
			false,
		},
		{
			"island multipolygon",
			osm.Tags{
				{Key: "type", Value: "multipolygon"},
				{Key: "place", Value: "island"},
			},
			true,
		},
		{
			"coastline",
			osm.Tags{
				{Key: "type", Value: "multipolygon"},
				{Key: "natural", Value: "coastline"},
			},
			true,
		},
		{
			"bus route",
			osm.Tags{
				{Key: "type", Value: "route"},
				{Key: "route", Value: "bus"},
			},
			false,
		},
		{
			"building multipolygon",
			osm.Tags{
				{Key: "type", Value: "multipolygon"},
				{Key: "building", Value: "yes"},
			},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relation := &osm.Relation{ID: 1, Tags: tt.tags}
			require.Equal(t, tt.want, acceptBoundaryRelation(relation))
		})
	}
}

func TestFeaturesFromOSMBuildsArealFeatures(t *testing.T) {
	nodes := osm.Nodes{
		{ID: 1, Lat: 0, Lon: 0, Visible: true},
		{ID: 2, Lat: 0, Lon: 1, Visible: true},
		{ID: 3, Lat: 1, Lon: 1, Visible: true},
		{ID: 4, Lat: 1, Lon: 0, Visible: true},
	}
	ways := osm.Ways{
		{
			ID:      10,
			Visible: true,
			Nodes: osm.WayNodes{
				{ID: 1, Lat: 0, Lon: 0},
				{ID: 2, Lat: 0, Lon: 1},
				{ID: 3, Lat: 1, Lon: 1},
				{ID: 4, Lat: 1, Lon: 0},
				{ID: 1, Lat: 0, Lon: 0},
			},
		},
	}
	relations := osm.Relations{
		{
			ID:      100,
			Visible: true,
			Tags: osm.Tags{
				{Key: "type", Value: "multipolygon"},
				{Key: "place", Value: "island"},
			},
			Members: osm.Members{
				{Type: osm.TypeWay, Ref: 10, Role: "outer"},
			},
		},
	}

	fc, err := FeaturesFromOSM(&osm.OSM{Nodes: nodes, Ways: ways, Relations: relations})
	require.NoError(t, err)
	require.NotEmpty(t, fc.Features)

	for _, f := range fc.Features {
		switch f.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
		default:
			t.Fatalf("non-areal geometry %T survived the filter", f.Geometry)
		}
	}
}

func TestFeaturesFromOSMDropsOpenWays(t *testing.T) {
	ways := osm.Ways{
		{
			ID:      11,
			Visible: true,
			Tags:    osm.Tags{{Key: "highway", Value: "residential"}},
			Nodes: osm.WayNodes{
				{ID: 1, Lat: 0, Lon: 0},
				{ID: 2, Lat: 0, Lon: 1},
			},
		},
	}

	fc, err := FeaturesFromOSM(&osm.OSM{Ways: ways})
	require.NoError(t, err)
	require.Empty(t, fc.Features)
}
