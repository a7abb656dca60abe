/*
Package runner is the host loop that drives analysis tasks over an event stream.

It plays the part of the framework around a task: it creates one task per
worker, calls Init once on each, fans collisions out to the workers, then merges
the per-worker histogram registries (bin-by-bin addition) into a single
domain.Run, which is optionally persisted.

# Usage

	r := runner.NewRunner(
		func() ports.Task { return task.New(cfg) },
		runner.WithWorkers(4),
		runner.WithStore(store),
	)

	run, err := r.Run(ctx, source)
	if err != nil {
		log.Fatal(err)
	}
*/
package runner
