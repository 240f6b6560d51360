// Package pipeline expands a problem-handle list into flashcard records
// by running the builder concurrently while keeping the input order.
package pipeline

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/conorfennell/ankigen/internal/builder"
	"github.com/conorfennell/ankigen/internal/domain"
	"github.com/conorfennell/ankigen/internal/provider"
)

// Progress is called once per completed handle with the number finished
// so far and the total. Calls arrive from worker goroutines, so the
// callback must be safe for concurrent use. It is diagnostic only and
// carries no ordering guarantee.
type Progress func(done, total int)

// Run builds one record per handle, with up to workers builds in flight
// at once (workers <= 0 means one goroutine per handle). Results come
// back in input-handle order no matter which provider calls finish
// first: each build writes into the slot of its own index, and the
// ordered pass afterwards drops the handles that produced no record.
// The first hard error cancels the remaining work and is returned.
func Run(ctx context.Context, p provider.Provider, handles []domain.Handle, workers int, progress Progress) ([]domain.Record, error) {
	results := make([]*domain.Record, len(handles))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, h := range handles {
		g.Go(func() error {
			rec, err := builder.Build(ctx, p, h)
			if err != nil {
				return err
			}
			results[i] = rec
			if progress != nil {
				progress(int(done.Add(1)), len(handles))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(handles))
	for _, rec := range results {
		if rec != nil {
			records = append(records, *rec)
		}
	}
	return records, nil
}
