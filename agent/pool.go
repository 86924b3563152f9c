package agent

import (
	"sync"

	"github.com/panjf2000/ants/v2"
)

// runLimited executes tasks with at most limit running concurrently and
// waits for all of them to finish. The first task error is returned;
// remaining tasks still run to completion.
func runLimited(limit int, tasks []func() error) error {
	if len(tasks) == 0 {
		return nil
	}
	if limit < 1 {
		limit = 1
	}

	pool, err := ants.NewPool(limit)
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	record := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for _, task := range tasks {
		task := task
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			if err := task(); err != nil {
				record(err)
			}
		})
		if err != nil {
			wg.Done()
			record(err)
		}
	}
	wg.Wait()

	return firstErr
}
