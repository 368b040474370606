package main

import (
	"context"
	"runtime"

	"github.com/lintang-b-s/landgrid/pkg"
	"github.com/lintang-b-s/landgrid/pkg/geo"
	"github.com/lintang-b-s/landgrid/pkg/grid"
	"github.com/lintang-b-s/landgrid/pkg/landindex"
	"github.com/lintang-b-s/landgrid/pkg/logger"
	"github.com/lintang-b-s/landgrid/pkg/osmsource"
	"github.com/lintang-b-s/landgrid/pkg/output"
	"github.com/lintang-b-s/landgrid/pkg/pipeline"
	"github.com/spf13/viper"
)

func main() {
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	viper.SetDefault("DATASET_URL", pkg.DEFAULT_DATASET_URL)
	viper.SetDefault("OSM_PBF_PATH", "")
	viper.SetDefault("EARTH_RADIUS_KM", pkg.EARTH_RADIUS_KM)
	viper.SetDefault("TARGET_SPACING_KM", pkg.TARGET_SPACING_KM)
	viper.SetDefault("NUM_WORKERS", runtime.NumCPU())
	viper.SetDefault("OUTPUT_FILE", "land_points.geojson")
	viper.SetDefault("OUTPUT_FORMAT", "geojson")
	viper.AutomaticEnv()

	generator, err := grid.NewGenerator(
		viper.GetFloat64("EARTH_RADIUS_KM"),
		viper.GetFloat64("TARGET_SPACING_KM"),
	)
	if err != nil {
		logger.Sugar().Fatalf("invalid grid parameters: %v", err)
	}

	var source pipeline.PolygonSource
	if mapFile := viper.GetString("OSM_PBF_PATH"); mapFile != "" {
		source = osmsource.NewSource(mapFile, logger)
	} else {
		source = landindex.NewLoader(viper.GetString("DATASET_URL"), nil, logger)
	}

	generatorPipeline := pipeline.NewLandPointGenerator(source, generator,
		viper.GetInt("NUM_WORKERS"), logger)

	result, err := generatorPipeline.Run(context.Background())
	if err != nil {
		logger.Sugar().Fatalf("pipeline failed: %v", err)
	}

	stats := geo.RingSpacingStats(result.Lattice)
	logger.Sugar().Infof("lattice spacing km: min %.2f mean %.2f max %.2f over %d ring pairs",
		stats.MinKm, stats.MeanKm, stats.MaxKm, stats.Pairs)

	outFile := viper.GetString("OUTPUT_FILE")
	switch viper.GetString("OUTPUT_FORMAT") {
	case "polyline":
		err = output.WritePolyline(outFile, result.Land)
	default:
		err = output.WriteGeoJSON(outFile, result.Land)
	}
	if err != nil {
		logger.Sugar().Fatalf("writing %s: %v", outFile, err)
	}
	logger.Sugar().Infof("wrote %d land points to %s", len(result.Land), outFile)
}
