package workers

import (
	"context"

	"github.com/sourcegraph/conc"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and returns once all of them
// have returned. A panicking worker cancels the context of the others, and
// its panic is re-raised here once they have returned.
func (w *Workers) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg conc.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			returned := false
			defer func() {
				if !returned {
					cancel()
				}
			}()
			worker.Run(ctx)
			returned = true
		})
	}
	wg.Wait()
}
