// Package parallel provides chunked goroutine execution for per-instance work.
//
// Deriving predictions for a large dataset is embarrassingly parallel: each
// instance is independent, so the index space can be split into contiguous
// ranges and handed to one worker per CPU core. Callers must ensure fn only
// writes to disjoint output slots within its assigned range.
package parallel

import (
	"runtime"
	"sync"
)

// Run divides the index space [0, items) across the available CPU cores
// and executes fn in parallel, once per contiguous range (start, end).
func Run(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	// Get the number of available CPU cores
	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items // No need for more workers than items
	}

	// Calculate the number of items each worker handles (ceiling division)
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	// Start workers equal to the number of CPU cores
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}

		// Skip if there's no range to handle
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	// Wait for all workers to finish processing
	wg.Wait()
}

// RunWithThreshold parallelizes only when the number of items exceeds the
// threshold. Small datasets run sequentially, where goroutine startup would
// cost more than the work itself.
func RunWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		// Sequential processing when below threshold
		fn(0, items)
		return
	}

	// Parallel processing when above threshold
	Run(items, fn)
}
