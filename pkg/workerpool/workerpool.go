// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"errors"
	"sync"
)

// Process runs process for every item on at most workerCount goroutines. The first failure
// cancels the context seen by the other calls and stops handing out items. Every failure is
// returned, joined. Cancellation of ctx itself is reported as ctx.Err().
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) error {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan T)
	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if err := process(workCtx, item); err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
					cancel()
				}
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case <-workCtx.Done():
			break feed
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return ctx.Err()
}
