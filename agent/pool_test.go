package agent

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLimited(t *testing.T) {
	t.Run("runs every task", func(t *testing.T) {
		var count atomic.Int64
		tasks := make([]func() error, 20)
		for i := range tasks {
			tasks[i] = func() error {
				count.Add(1)
				return nil
			}
		}
		require.NoError(t, runLimited(3, tasks))
		assert.Equal(t, int64(20), count.Load())
	})

	t.Run("respects the concurrency bound", func(t *testing.T) {
		var mu sync.Mutex
		var running, peak int

		tasks := make([]func() error, 12)
		for i := range tasks {
			tasks[i] = func() error {
				mu.Lock()
				running++
				if running > peak {
					peak = running
				}
				mu.Unlock()

				mu.Lock()
				running--
				mu.Unlock()
				return nil
			}
		}
		require.NoError(t, runLimited(4, tasks))
		assert.LessOrEqual(t, peak, 4)
	})

	t.Run("returns the first error but finishes the rest", func(t *testing.T) {
		boom := errors.New("boom")
		var count atomic.Int64
		tasks := []func() error{
			func() error { count.Add(1); return boom },
			func() error { count.Add(1); return nil },
			func() error { count.Add(1); return nil },
		}
		assert.ErrorIs(t, runLimited(2, tasks), boom)
		assert.Equal(t, int64(3), count.Load())
	})

	t.Run("empty task list is a no-op", func(t *testing.T) {
		require.NoError(t, runLimited(1, nil))
	})
}
