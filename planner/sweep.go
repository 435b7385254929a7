package planner

import (
	"context"
	"sync"

	"github.com/cepro/energyplanner/config"
)

// SweepPoint is the outcome of one run within a sweep. Err is set when the
// run at this PV bound failed, in which case Results is nil.
type SweepPoint struct {
	PVCapMaxW float64
	Results   *Results
	Err       error
}

// Sweep runs the optimization once per PV capacity bound, spreading the runs
// over the given number of workers. The returned points are ordered like the
// bounds. Failed runs carry their error in the point rather than aborting
// the whole sweep.
func Sweep(ctx context.Context, cfg config.Config, pvCapsMaxW []float64, in Inputs, workers int) []SweepPoint {
	if workers < 1 {
		workers = 1
	}
	if workers > len(pvCapsMaxW) {
		workers = len(pvCapsMaxW)
	}

	points := make([]SweepPoint, len(pvCapsMaxW))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := Run(ctx, cfg, pvCapsMaxW[i], in)
				points[i] = SweepPoint{
					PVCapMaxW: pvCapsMaxW[i],
					Results:   res,
					Err:       err,
				}
			}
		}()
	}

	for i := range pvCapsMaxW {
		select {
		case jobs <- i:
		case <-ctx.Done():
			points[i] = SweepPoint{PVCapMaxW: pvCapsMaxW[i], Err: ctx.Err()}
		}
	}
	close(jobs)
	wg.Wait()

	return points
}
