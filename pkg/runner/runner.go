package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/trackhist/internal/logging"
	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/aretw0/trackhist/pkg/ports"
	"github.com/google/uuid"
)

// Runner drives tasks over an event source.
type Runner struct {
	Factory    ports.TaskFactory
	Workers    int
	BufferSize int

	// Store persists completed runs. If nil, runs are only returned.
	Store ports.RunStore

	// Locker, if set, is held on the run ID for the whole run.
	Locker  ports.DistributedLocker
	LockTTL time.Duration

	Logger   *slog.Logger
	RunID    string
	Observer func(*domain.Run)

	now func() time.Time
}

// NewRunner creates a Runner that builds tasks with factory.
func NewRunner(factory ports.TaskFactory, opts ...Option) *Runner {
	r := &Runner{
		Factory:    factory,
		Workers:    1,
		BufferSize: DefaultBufferSize,
		LockTTL:    DefaultLockTTL,
		Logger:     logging.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Workers < 1 {
		r.Workers = 1
	}
	if r.BufferSize < 1 {
		r.BufferSize = 1
	}
	return r
}

// Run processes the whole source and returns the merged result.
// The source is not closed. Cancelling ctx stops the run and returns ctx.Err().
func (r *Runner) Run(ctx context.Context, source ports.EventSource) (*domain.Run, error) {
	runID := r.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	if err := domain.ValidateRunID(runID); err != nil {
		return nil, err
	}
	logger := r.Logger.With("run", runID)

	if r.Locker != nil {
		unlock, err := r.Locker.Lock(ctx, runID, r.LockTTL)
		if err != nil {
			return nil, fmt.Errorf("lock run %s: %w", runID, err)
		}
		defer func() {
			if err := unlock(context.Background()); err != nil {
				logger.Warn("failed to release run lock", "error", err)
			}
		}()
	}

	started := r.now()
	tasks, err := r.initTasks(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("run started", "workers", len(tasks))

	if err := r.process(ctx, source, tasks); err != nil {
		logger.Error("run aborted", "error", err)
		return nil, err
	}

	run, err := r.merge(runID, tasks)
	if err != nil {
		return nil, err
	}
	run.StartedAt = started
	run.FinishedAt = r.now()

	if r.Store != nil {
		if err := r.Store.Save(ctx, runID, run); err != nil {
			return nil, fmt.Errorf("critical persistence error: %w", err)
		}
	}
	if r.Observer != nil {
		r.Observer(run)
	}

	logger.Info("run finished",
		"events", run.Counters.EventsSeen,
		"events_accepted", run.Counters.EventsAccepted,
		"tracks_accepted", run.Counters.TracksAccepted,
		"elapsed", run.FinishedAt.Sub(run.StartedAt),
	)
	return run, nil
}

func (r *Runner) initTasks(ctx context.Context) ([]ports.Task, error) {
	tasks := make([]ports.Task, r.Workers)
	for i := range tasks {
		t := r.Factory()
		if err := t.Init(ctx); err != nil {
			return nil, fmt.Errorf("init worker %d: %w", i, err)
		}
		tasks[i] = t
	}
	return tasks, nil
}

// process fans events out to one goroutine per task. The first error cancels the rest.
func (r *Runner) process(parent context.Context, source ports.EventSource, tasks []ports.Task) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	events := make(chan domain.Collision, r.BufferSize*len(tasks))

	var wg sync.WaitGroup
	for i, t := range tasks {
		wg.Add(1)
		go func(worker int, t ports.Task) {
			defer wg.Done()
			for ev := range events {
				if ctx.Err() != nil {
					continue
				}
				if err := t.Process(ctx, ev); err != nil {
					fail(fmt.Errorf("worker %d: process event %d: %w", worker, ev.ID, err))
				}
			}
		}(i, t)
	}

read:
	for {
		ev, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fail(err)
			break
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			break read
		}
	}
	close(events)
	wg.Wait()

	if err := parent.Err(); err != nil {
		return err
	}
	return firstErr
}

func (r *Runner) merge(runID string, tasks []ports.Task) (*domain.Run, error) {
	merged := tasks[0].Registry()
	counters := tasks[0].Counters()
	for i, t := range tasks[1:] {
		if err := merged.Merge(t.Registry()); err != nil {
			return nil, fmt.Errorf("merge worker %d: %w", i+1, err)
		}
		counters.Add(t.Counters())
	}

	return &domain.Run{
		ID:         runID,
		Workers:    len(tasks),
		Cuts:       tasks[0].Cuts(),
		Binning:    tasks[0].Binning(),
		Counters:   counters,
		Histograms: merged.Snapshot(),
	}, nil
}
