// Package runner fans the extraction pipeline out over the fund list and
// collects the per-fund outcomes.
package runner

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sshravan91/fundscope/internal/model"
)

// DefaultWorkers caps the fan-out; the pool never exceeds the fund count.
const DefaultWorkers = 16

// ProcessFunc runs extraction (and enrichment) for one identifier.
type ProcessFunc func(ctx context.Context, id model.Identifier) model.Outcome

// Result partitions a run's identifiers: every input ends up in exactly one
// of the two lists.
type Result struct {
	Values []model.ValueMap
	NoData []string
}

// Runner executes a ProcessFunc over many identifiers with bounded
// concurrency. Workers only return values; all shared state is written by a
// single collector, so no failure list leaks out mid-run.
type Runner struct {
	process ProcessFunc
	workers int
}

// New creates a Runner. workers <= 0 selects DefaultWorkers.
func New(process ProcessFunc, workers int) *Runner {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Runner{process: process, workers: workers}
}

// RunAll processes every identifier concurrently and returns the partition
// of successes and no-data display keys, collected in completion order. No
// individual failure aborts the batch.
func (r *Runner) RunAll(ctx context.Context, ids []model.Identifier) Result {
	if len(ids) == 0 {
		return Result{}
	}

	runID := uuid.NewString()
	workers := min(r.workers, len(ids))
	log := zap.L().With(zap.String("run_id", runID))
	log.Info("starting extraction run",
		zap.Int("funds", len(ids)),
		zap.Int("workers", workers),
	)

	outcomes := make(chan model.Outcome)
	collected := make(chan Result, 1)
	go func() {
		var res Result
		for o := range outcomes {
			if o.OK() {
				res.Values = append(res.Values, o.Values)
			} else {
				res.NoData = append(res.NoData, o.DisplayKey)
			}
		}
		collected <- res
	}()

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			outcomes <- r.process(ctx, id)
			return nil
		})
	}
	_ = g.Wait()
	close(outcomes)

	res := <-collected
	log.Info("extraction run complete",
		zap.Int("succeeded", len(res.Values)),
		zap.Int("no_data", len(res.NoData)),
	)
	return res
}
