package divider

import (
	"context"
	"fmt"
	"sync"

	"github.com/streetdivider/internal/debug"
)

// Result pairs an input line with its parse outcome.
type Result struct {
	Input    string
	Location Location
	Err      error
}

// ParseAll parses lines on a bounded pool of workers. Results keep the input
// order. If ctx ends first, the results gathered so far are dropped and the
// context error is returned.
func (d *Divider) ParseAll(ctx context.Context, lines []string, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	defer debug.DebugTiming(d.Debug, fmt.Sprintf("parsing %d lines", len(lines)))()

	workers = min(workers, max(len(lines), 1))

	results := make([]Result, len(lines))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				loc, err := d.Parse(lines[i])
				results[i] = Result{Input: lines[i], Location: loc, Err: err}
			}
		}()
	}

	var ctxErr error
feed:
	for i := range lines {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break
		}
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if ctxErr != nil {
		return nil, ctxErr
	}
	return results, nil
}
