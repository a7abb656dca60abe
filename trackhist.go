package trackhist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/trackhist/internal/logging"
	"github.com/aretw0/trackhist/pkg/axis"
	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/aretw0/trackhist/pkg/ports"
	"github.com/aretw0/trackhist/pkg/runner"
	"github.com/aretw0/trackhist/pkg/task"
)

// Analysis is the high-level entry point for the library.
// It wires a task configuration to the runner.
type Analysis struct {
	cfg        task.Config
	workers    int
	store      ports.RunStore
	locker     ports.DistributedLocker
	hooks      domain.FillHooks
	logger     *slog.Logger
	observer   func(*domain.Run)
	runnerOpts []runner.Option
}

// Option defines a functional option for configuring the Analysis.
type Option func(*Analysis)

// WithWorkers sets the number of parallel task instances.
func WithWorkers(n int) Option {
	return func(a *Analysis) {
		a.workers = n
	}
}

// WithStore persists every completed run.
func WithStore(store ports.RunStore) Option {
	return func(a *Analysis) {
		a.store = store
	}
}

// WithLocker holds a distributed lock on the run ID while the run is in progress.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(a *Analysis) {
		a.locker = locker
	}
}

// WithHooks registers selection callbacks on every task instance.
func WithHooks(hooks domain.FillHooks) Option {
	return func(a *Analysis) {
		a.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analysis) {
		a.logger = logger
	}
}

// WithObserver is called with every completed run.
func WithObserver(fn func(*domain.Run)) Option {
	return func(a *Analysis) {
		a.observer = fn
	}
}

// WithRunnerOptions passes extra options to the underlying runner.
func WithRunnerOptions(opts ...runner.Option) Option {
	return func(a *Analysis) {
		a.runnerOpts = append(a.runnerOpts, opts...)
	}
}

// New creates an Analysis for the given configuration.
func New(cfg task.Config, opts ...Option) *Analysis {
	a := &Analysis{
		cfg:     cfg,
		workers: 1,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With("task", task.Name)
	return a
}

// Config returns the task configuration.
func (a *Analysis) Config() task.Config { return a.cfg }

// PtAxis returns the pt axis the analysis will book.
func (a *Analysis) PtAxis() (*axis.Axis, error) {
	return a.cfg.PtAxis()
}

// Run validates the configuration and processes every collision of the source.
func (a *Analysis) Run(ctx context.Context, source ports.EventSource) (*domain.Run, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	factory := func() ports.Task {
		return task.New(a.cfg, task.WithHooks(a.hooks), task.WithLogger(a.logger))
	}

	opts := []runner.Option{
		runner.WithWorkers(a.workers),
		runner.WithLogger(a.logger),
	}
	if a.store != nil {
		opts = append(opts, runner.WithStore(a.store))
	}
	if a.locker != nil {
		opts = append(opts, runner.WithLocker(a.locker, runner.DefaultLockTTL))
	}
	if a.observer != nil {
		opts = append(opts, runner.WithObserver(a.observer))
	}
	opts = append(opts, a.runnerOpts...)

	return runner.NewRunner(factory, opts...).Run(ctx, source)
}
