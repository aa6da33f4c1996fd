// Package sweep runs batches of independent simulations in parallel.
// Each simulation is a pure CPU-bound call with no shared state, so the
// only coordination needed is a WaitGroup.
package sweep

import (
	"context"
	"runtime"
	"sync"

	"github.com/tfunk1030/Test-yardage-sub000/internal/physics"
)

// Point pairs one environment of the sweep with its outcome.
type Point struct {
	Env    physics.EnvironmentalConditions
	Result physics.SimulationResult
	Err    error
}

// Runner fans a fixed launch out over many environments.
type Runner struct {
	Launch  physics.LaunchConditions
	Opts    physics.Options
	Workers int
}

// Run simulates the launch under every environment, preserving input
// order in the output. Per-point failures are recorded on the point;
// the only error returned is context cancellation.
func (r *Runner) Run(ctx context.Context, envs []physics.EnvironmentalConditions) ([]Point, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(envs) {
		workers = len(envs)
	}
	if workers < 1 {
		workers = 1
	}

	points := make([]Point, len(envs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				env := envs[idx]
				_, result, err := physics.Simulate(r.Launch, env, r.Opts)
				points[idx] = Point{Env: env, Result: result, Err: err}
			}
		}()
	}

	var canceled error
feed:
	for i := range envs {
		select {
		case <-ctx.Done():
			canceled = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if canceled != nil {
		return nil, canceled
	}
	return points, nil
}
