package landfilter

import (
	"sort"

	"github.com/lintang-b-s/landgrid/pkg/concurrent"
	"github.com/lintang-b-s/landgrid/pkg/datastructure"
	"github.com/lintang-b-s/landgrid/pkg/landindex"
)

// Filter returns the subset of the lattice that falls inside at least one
// boundary in the index, preserving lattice order. The returned slice is
// freshly allocated and never aliases the input.
func Filter(lattice []datastructure.Coordinate, index *landindex.Index) []datastructure.Coordinate {
	land := make([]datastructure.Coordinate, 0)
	for _, point := range lattice {
		if index.Contains(point) {
			land = append(land, point)
		}
	}
	return land
}

type filterJob struct {
	offset int
	points []datastructure.Coordinate
}

type filterResult struct {
	offset int
	kept   []datastructure.Coordinate
}

// FilterConcurrent fans the lattice out over a worker pool in contiguous
// chunks and reassembles the kept points in lattice order. Semantics are
// identical to Filter.
func FilterConcurrent(lattice []datastructure.Coordinate, index *landindex.Index,
	numWorkers int) []datastructure.Coordinate {
	if numWorkers <= 1 || len(lattice) < 2*numWorkers {
		return Filter(lattice, index)
	}

	chunkSize := (len(lattice) + numWorkers - 1) / numWorkers
	numChunks := (len(lattice) + chunkSize - 1) / chunkSize

	pool := concurrent.NewWorkerPool[filterJob, filterResult](numWorkers, numChunks)
	pool.Start(func(job filterJob) filterResult {
		return filterResult{
			offset: job.offset,
			kept:   Filter(job.points, index),
		}
	})
	for offset := 0; offset < len(lattice); offset += chunkSize {
		end := offset + chunkSize
		if end > len(lattice) {
			end = len(lattice)
		}
		pool.AddJob(filterJob{offset: offset, points: lattice[offset:end]})
	}

	results := pool.CollectAll()
	sort.Slice(results, func(i, j int) bool {
		return results[i].offset < results[j].offset
	})

	land := make([]datastructure.Coordinate, 0)
	for _, res := range results {
		land = append(land, res.kept...)
	}
	return land
}
