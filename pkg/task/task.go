package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/trackhist/internal/logging"
	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/aretw0/trackhist/pkg/registry"
)

// Name identifies the task in logs and stored runs.
const Name = "flow-small-systems"

// RegistryName is the label of the histogram registry owned by the task.
const RegistryName = "HistRegistry"

// Task fills the pt spectrum and the vertex-Z distribution.
// A Task is driven by one goroutine; hosts running in parallel create one Task
// per worker and merge their registries.
type Task struct {
	cfg      Config
	registry *registry.Registry
	hooks    domain.FillHooks
	logger   *slog.Logger
	ready    bool
	counters domain.Counters
}

// Option defines a functional option for configuring the Task.
type Option func(*Task)

// WithHooks registers selection callbacks.
func WithHooks(hooks domain.FillHooks) Option {
	return func(t *Task) {
		t.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Task) {
		t.logger = logger
	}
}

// New creates an uninitialized task. Call Init before Process.
func New(cfg Config, opts ...Option) *Task {
	t := &Task{
		cfg:      cfg,
		registry: registry.NewRegistry(RegistryName),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Init validates the configuration, builds the axes and declares the histograms.
func (t *Task) Init(ctx context.Context) error {
	if t.ready {
		return domain.ErrAlreadyInitialized
	}
	if err := t.cfg.Validate(); err != nil {
		return fmt.Errorf("init %s: %w", Name, err)
	}

	ptAxis, err := t.cfg.PtAxis()
	if err != nil {
		return err
	}
	zAxis, err := t.cfg.VtxZAxis()
	if err != nil {
		return err
	}

	if err := t.registry.Add(domain.HistPt, ";"+domain.LabelPt, ptAxis); err != nil {
		return err
	}
	if err := t.registry.Add(domain.HistVtxZ, ";"+domain.LabelVtxZ, zAxis); err != nil {
		return err
	}

	t.ready = true
	t.logger.DebugContext(ctx, "task initialized",
		"task", Name,
		"pt_bins", ptAxis.NBins(),
		"pt_min", ptAxis.Min(),
		"pt_max", ptAxis.Max(),
		"vtxz_bins", zAxis.NBins(),
	)
	return nil
}

// Process applies the selection to one collision and fills the histograms.
// Rejected events and tracks are counted but fill nothing.
func (t *Task) Process(ctx context.Context, ev domain.Collision) error {
	if !t.ready {
		return domain.ErrNotInitialized
	}
	cuts := t.cfg.Cuts()

	t.counters.EventsSeen++
	accepted := cuts.AcceptEvent(ev)
	if t.hooks.OnEvent != nil {
		t.hooks.OnEvent(ctx, &domain.EventDecision{Collision: &ev, Accepted: accepted})
	}
	if !accepted {
		return nil
	}
	t.counters.EventsAccepted++

	if err := t.registry.Fill(domain.HistVtxZ, ev.PosZ); err != nil {
		return err
	}

	for _, tr := range ev.Tracks {
		t.counters.TracksSeen++
		ok := cuts.AcceptTrack(tr)
		if t.hooks.OnTrack != nil {
			t.hooks.OnTrack(ctx, &domain.TrackDecision{Track: tr, Accepted: ok})
		}
		if !ok {
			continue
		}
		t.counters.TracksAccepted++
		if err := t.registry.Fill(domain.HistPt, tr.Pt); err != nil {
			return err
		}
	}
	return nil
}

// Ready reports whether Init has completed.
func (t *Task) Ready() bool { return t.ready }

// Config returns the configuration the task was built with.
func (t *Task) Config() Config { return t.cfg }

// Cuts returns the selection applied by Process.
func (t *Task) Cuts() domain.Cuts { return t.cfg.Cuts() }

// Binning returns the axis settings used by Init.
func (t *Task) Binning() domain.Binning { return t.cfg.Binning() }

// Registry returns the histograms owned by the task.
func (t *Task) Registry() *registry.Registry { return t.registry }

// Counters returns the selection counters accumulated so far.
func (t *Task) Counters() domain.Counters { return t.counters }
