package parallel

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelizeN_CoversEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{-1, 0, 1, 2, 3, 7, 64} {
		seen := make([]int, 23)
		var mu sync.Mutex

		ParallelizeN(len(seen), workers, func(start, end int) {
			mu.Lock()
			defer mu.Unlock()
			for i := start; i < end; i++ {
				seen[i]++
			}
		})

		for i, n := range seen {
			assert.Equal(t, 1, n, "workers=%d index=%d", workers, i)
		}
	}
}

func TestParallelize_ZeroItems(t *testing.T) {
	called := false
	Parallelize(0, func(start, end int) { called = true })
	assert.False(t, called)
}

func TestParallelizeWithThreshold(t *testing.T) {
	var calls [][2]int
	var mu sync.Mutex
	record := func(start, end int) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, [2]int{start, end})
	}

	ParallelizeWithThreshold(5, 10, 4, record)
	assert.Equal(t, [][2]int{{0, 5}}, calls, "below threshold runs as one range")

	calls = nil
	ParallelizeWithThreshold(20, 10, 4, record)
	assert.Len(t, calls, 4)
}
