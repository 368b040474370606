package pipeline

import (
	"context"
	"sync/atomic"

	"github.com/lintang-b-s/landgrid/pkg/datastructure"
	"github.com/lintang-b-s/landgrid/pkg/grid"
	"github.com/lintang-b-s/landgrid/pkg/landfilter"
	"github.com/lintang-b-s/landgrid/pkg/landindex"
	"go.uber.org/zap"
)

// PolygonSource produces the boundary index the filter runs against.
type PolygonSource interface {
	Load(ctx context.Context) (*landindex.Index, error)
}

// Result is one completed fetch-then-compute pass. It is never mutated after
// creation, only replaced wholesale by the next completed run.
type Result struct {
	Lattice []datastructure.Coordinate
	Land    []datastructure.Coordinate
}

// LandPointGenerator runs the full pipeline: load boundaries, generate the
// lattice, keep the land subset. Runs may overlap; the last run to complete
// wins, with no in-flight suppression.
type LandPointGenerator struct {
	source     PolygonSource
	generator  *grid.Generator
	numWorkers int
	logger     *zap.Logger

	result atomic.Pointer[Result]
}

func NewLandPointGenerator(source PolygonSource, generator *grid.Generator,
	numWorkers int, logger *zap.Logger) *LandPointGenerator {
	return &LandPointGenerator{
		source:     source,
		generator:  generator,
		numWorkers: numWorkers,
		logger:     logger,
	}
}

func (g *LandPointGenerator) Run(ctx context.Context) (*Result, error) {
	index, err := g.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	lattice := g.generator.Generate()
	g.logger.Sugar().Infof("generated lattice of %d points (lat step %.4f deg)",
		len(lattice), g.generator.LatitudeStep())

	land := landfilter.FilterConcurrent(lattice, index, g.numWorkers)
	g.logger.Sugar().Infof("%d of %d lattice points fall on land", len(land), len(lattice))

	result := &Result{
		Lattice: lattice,
		Land:    land,
	}
	g.result.Store(result)
	return result, nil
}

// Result returns the last completed run, or nil before the first one
// finishes.
func (g *LandPointGenerator) Result() *Result {
	return g.result.Load()
}
