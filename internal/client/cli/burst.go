package cli

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

func errInvalidCount(arg string) error {
	return fmt.Errorf("invalid request count %q: must be a positive integer", arg)
}

// runBurst отправляет n параллельных запросов me.
// При истекшем access token все они дожидаются одного обновления.
func (c *Cli) runBurst(ctx context.Context, n, parallel int) error {
	if err := c.requireSession(ctx); err != nil {
		return err
	}

	var (
		g        errgroup.Group
		ok       atomic.Int32
		failed   atomic.Int32
		once     sync.Once
		firstErr error
	)
	if parallel > 0 {
		g.SetLimit(parallel)
	}

	start := time.Now()
	for range n {
		g.Go(func() error {
			if _, err := c.authService.Me(ctx); err != nil {
				failed.Add(1)
				once.Do(func() { firstErr = err })
				return nil
			}
			ok.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	c.io.Printf("%d requests in %s: %d ok, %d failed\n", n, time.Since(start).Round(time.Millisecond), ok.Load(), failed.Load())

	if firstErr != nil {
		return fmt.Errorf("%d of %d requests failed: %w", failed.Load(), n, explain(firstErr))
	}
	return nil
}
