package parallel

import (
	"sync"
	"testing"
)

func TestRunCoversAllIndices(t *testing.T) {
	const items = 1000

	// Ranges are disjoint, so each index is written by exactly one worker.
	visited := make([]int, items)
	Run(items, func(start, end int) {
		for i := start; i < end; i++ {
			visited[i]++
		}
	})

	for i, count := range visited {
		if count != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, count)
		}
	}
}

func TestRunZeroItems(t *testing.T) {
	called := false
	Run(0, func(start, end int) {
		called = true
	})
	if called {
		t.Error("fn should not be called for zero items")
	}
}

func TestRunFewerItemsThanWorkers(t *testing.T) {
	const items = 3

	visited := make([]int, items)
	Run(items, func(start, end int) {
		for i := start; i < end; i++ {
			visited[i]++
		}
	})

	for i, count := range visited {
		if count != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, count)
		}
	}
}

func TestRunWithThresholdSequential(t *testing.T) {
	var mu sync.Mutex
	var calls [][2]int

	RunWithThreshold(10, 100, func(start, end int) {
		mu.Lock()
		calls = append(calls, [2]int{start, end})
		mu.Unlock()
	})

	if len(calls) != 1 {
		t.Fatalf("expected 1 sequential call below threshold, got %d", len(calls))
	}
	if calls[0] != [2]int{0, 10} {
		t.Errorf("expected range (0, 10), got (%d, %d)", calls[0][0], calls[0][1])
	}
}

func TestRunWithThresholdParallel(t *testing.T) {
	const items = 500

	visited := make([]int, items)
	RunWithThreshold(items, 100, func(start, end int) {
		for i := start; i < end; i++ {
			visited[i]++
		}
	})

	for i, count := range visited {
		if count != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, count)
		}
	}
}

func BenchmarkRun(b *testing.B) {
	const items = 100000
	out := make([]float64, items)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Run(items, func(start, end int) {
			for j := start; j < end; j++ {
				out[j] = float64(j) * 0.5
			}
		})
	}
}
