package task_test

import (
	"context"
	"testing"

	"github.com/aretw0/trackhist/pkg/axis"
	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/aretw0/trackhist/pkg/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReadyTask(t *testing.T, cfg task.Config, opts ...task.Option) *task.Task {
	t.Helper()
	tk := task.New(cfg, opts...)
	require.NoError(t, tk.Init(context.Background()))
	return tk
}

func TestInit_DeclaresHistograms(t *testing.T) {
	tk := newReadyTask(t, task.DefaultConfig())

	assert.True(t, tk.Ready())
	assert.Equal(t, []string{domain.HistPt, domain.HistVtxZ}, tk.Registry().Names())

	pt, err := tk.Registry().Get(domain.HistPt)
	require.NoError(t, err)
	assert.Equal(t, 0.2, pt.Axis().Min())
	assert.Equal(t, 10.0, pt.Axis().Max())
	assert.Equal(t, domain.LabelPt, pt.Axis().Label())

	z, err := tk.Registry().Get(domain.HistVtxZ)
	require.NoError(t, err)
	assert.Equal(t, 160, z.Axis().NBins())
}

func TestInit_Twice(t *testing.T) {
	tk := newReadyTask(t, task.DefaultConfig())
	assert.ErrorIs(t, tk.Init(context.Background()), domain.ErrAlreadyInitialized)
}

func TestInit_DegenerateBounds(t *testing.T) {
	cfg := task.DefaultConfig()
	cfg.PtMin, cfg.PtMax = 5.0, 1.0

	tk := task.New(cfg)
	err := tk.Init(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidAxisBounds)
	assert.False(t, tk.Ready())
}

func TestConfig_ValidateUnbuildablePtAxis(t *testing.T) {
	tests := []struct {
		name         string
		ptMin, ptMax float64
		cause        error
	}{
		{"step below float spacing", 1e20, 2e20, axis.ErrStepTooSmall},
		{"bin ceiling", 0.2, 1e12, axis.ErrTooManyBins},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := task.DefaultConfig()
			cfg.PtMin, cfg.PtMax = tt.ptMin, tt.ptMax

			err := cfg.Validate()
			assert.ErrorIs(t, err, domain.ErrInvalidAxisBounds)
			assert.ErrorIs(t, err, tt.cause)
		})
	}
}

func TestInit_VerbatimBins(t *testing.T) {
	cfg := task.DefaultConfig()
	cfg.PtBins = []float64{0.2, 0.5, 1.0, 2.0, 5.0, 10.0}
	tk := newReadyTask(t, cfg)

	pt, err := tk.Registry().Get(domain.HistPt)
	require.NoError(t, err)
	assert.Equal(t, cfg.PtBins, pt.Axis().Edges())

	cfg.PtBins = []float64{1.0}
	assert.Error(t, task.New(cfg).Init(context.Background()))
}

func TestProcess_BeforeInit(t *testing.T) {
	tk := task.New(task.DefaultConfig())
	err := tk.Process(context.Background(), domain.Collision{})
	assert.ErrorIs(t, err, domain.ErrNotInitialized)
}

func TestProcess_AcceptedEvent(t *testing.T) {
	tk := newReadyTask(t, task.DefaultConfig())

	err := tk.Process(context.Background(), domain.Collision{
		PosZ: -5.0,
		Tracks: []domain.Track{
			{Pt: 0.5, Eta: 0.1},
			{Pt: 0.5, Eta: 1.0},
			{Pt: 12.0, Eta: 0.0},
		},
	})
	require.NoError(t, err)

	z, _ := tk.Registry().Get(domain.HistVtxZ)
	assert.Equal(t, int64(1), z.Entries())
	assert.Equal(t, int64(1), z.Count(z.Axis().FindBin(-5.0)))

	pt, _ := tk.Registry().Get(domain.HistPt)
	assert.Equal(t, int64(1), pt.Entries())
	assert.Equal(t, int64(1), pt.Count(pt.Axis().FindBin(0.5)))

	assert.Equal(t, domain.Counters{EventsSeen: 1, EventsAccepted: 1, TracksSeen: 3, TracksAccepted: 1}, tk.Counters())
}

func TestProcess_RejectedEvent(t *testing.T) {
	cfg := task.DefaultConfig()
	cfg.VtxZCut = 3.0
	tk := newReadyTask(t, cfg)

	err := tk.Process(context.Background(), domain.Collision{
		PosZ:   -5.0,
		Tracks: []domain.Track{{Pt: 0.5, Eta: 0.1}},
	})
	require.NoError(t, err)

	for _, h := range tk.Registry().Snapshot() {
		assert.Zero(t, h.Entries, "histogram %s must not be touched", h.Name)
	}
	assert.Equal(t, domain.Counters{EventsSeen: 1}, tk.Counters())
}

func TestProcess_Hooks(t *testing.T) {
	var events, accepted, tracks int
	hooks := domain.FillHooks{
		OnEvent: func(_ context.Context, e *domain.EventDecision) {
			events++
			if e.Accepted {
				accepted++
			}
		},
		OnTrack: func(_ context.Context, _ *domain.TrackDecision) {
			tracks++
		},
	}
	tk := newReadyTask(t, task.DefaultConfig(), task.WithHooks(hooks))

	ctx := context.Background()
	require.NoError(t, tk.Process(ctx, domain.Collision{PosZ: 1, Tracks: []domain.Track{{Pt: 1}, {Pt: 2}}}))
	require.NoError(t, tk.Process(ctx, domain.Collision{PosZ: 50, Tracks: []domain.Track{{Pt: 1}}}))

	assert.Equal(t, 2, events)
	assert.Equal(t, 1, accepted)
	assert.Equal(t, 2, tracks, "tracks of rejected events are not inspected")
}

func TestConfig_Binning(t *testing.T) {
	cfg := task.DefaultConfig()
	cfg.PtBins = []float64{0.2, 1, 10}

	b := cfg.Binning()
	assert.Equal(t, domain.Binning{PtBins: []float64{0.2, 1, 10}, VtxZBins: 160, VtxZMin: -20, VtxZMax: 20}, b)

	b.PtBins[0] = 5
	assert.Equal(t, 0.2, cfg.PtBins[0])
	assert.Equal(t, cfg.Binning(), task.New(cfg).Binning())
}
