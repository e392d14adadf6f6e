// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	assert.Equal(t, 4, pool.NumWorkers())
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	assert.Equal(t, runtime.GOMAXPROCS(0), pool.NumWorkers())
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		require.Equal(t, i*2, results[i], "results[%d]", i)
	}
}

func TestParallelForWorkerSlots(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 103
	var mu sync.Mutex
	seen := make(map[int]bool)
	covered := make([]int32, n)

	pool.ParallelForWorker(n, func(worker, start, end int) {
		mu.Lock()
		assert.False(t, seen[worker], "slot %d used twice", worker)
		seen[worker] = true
		mu.Unlock()

		assert.GreaterOrEqual(t, worker, 0)
		assert.Less(t, worker, pool.NumWorkers())
		for i := start; i < end; i++ {
			atomic.AddInt32(&covered[i], 1)
		}
	})

	for i, c := range covered {
		assert.Equal(t, int32(1), c, "index %d visited %d times", i, c)
	}
	assert.Len(t, seen, 4)
}

func TestParallelForWorkerSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	var calls atomic.Int32
	pool.ParallelForWorker(3, func(worker, start, end int) {
		calls.Add(1)
		assert.Equal(t, 1, end-start)
	})
	assert.Equal(t, int32(3), calls.Load())
}

func TestClosedPoolRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()
	require.True(t, pool.Closed())

	var calls int
	pool.ParallelForWorker(50, func(worker, start, end int) {
		calls++
		assert.Equal(t, 0, worker)
		assert.Equal(t, 0, start)
		assert.Equal(t, 50, end)
	})
	assert.Equal(t, 1, calls)
}

func TestZeroItems(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	pool.ParallelForWorker(0, func(worker, start, end int) {
		t.Error("fn called for n == 0")
	})
	pool.ParallelForWorker(-1, func(worker, start, end int) {
		t.Error("fn called for n < 0")
	})
}

func BenchmarkParallelForWorker(b *testing.B) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	data := make([]float64, 1<<16)
	for b.Loop() {
		pool.ParallelForWorker(len(data), func(_, start, end int) {
			for i := start; i < end; i++ {
				data[i] = float64(i) * 0.5
			}
		})
	}
}
