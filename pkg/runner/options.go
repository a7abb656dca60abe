package runner

import (
	"log/slog"
	"time"

	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/aretw0/trackhist/pkg/ports"
)

// DefaultBufferSize is the number of collisions queued per worker.
const DefaultBufferSize = 64

// DefaultLockTTL bounds how long a crashed host can hold a run ID.
const DefaultLockTTL = 5 * time.Minute

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithWorkers sets the number of parallel tasks. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.Workers = n
	}
}

// WithStore configures the RunStore for persistence.
func WithStore(store ports.RunStore) Option {
	return func(r *Runner) {
		r.Store = store
	}
}

// WithLocker guards each run ID with a distributed lock.
func WithLocker(locker ports.DistributedLocker, ttl time.Duration) Option {
	return func(r *Runner) {
		r.Locker = locker
		r.LockTTL = ttl
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithRunID fixes the run ID instead of generating one.
func WithRunID(id string) Option {
	return func(r *Runner) {
		r.RunID = id
	}
}

// WithObserver registers a callback invoked with every completed run.
func WithObserver(fn func(*domain.Run)) Option {
	return func(r *Runner) {
		r.Observer = fn
	}
}

// WithBufferSize sets the per-worker queue length.
func WithBufferSize(n int) Option {
	return func(r *Runner) {
		r.BufferSize = n
	}
}
