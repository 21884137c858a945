package client

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
)

const defaultConcurrency = 4

// fanOut runs fn for every index in [0, n) on a pool of c.concurrency
// goroutines. The first error cancels the context passed to the remaining
// calls and is returned.
func (c *Client) fanOut(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if n == 0 {
		return nil
	}

	pool, err := ants.NewPool(min(c.concurrency, n), ants.WithPreAlloc(true))
	if err != nil {
		return err
	}
	defer pool.Release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i := range n {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if err := fn(ctx, i); err != nil {
				fail(err)
			}
		}); err != nil {
			wg.Done()
			fail(err)
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
