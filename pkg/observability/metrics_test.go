package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/aretw0/trackhist/pkg/observability"
	"github.com/aretw0/trackhist/pkg/task"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	tk := task.New(task.DefaultConfig(), task.WithHooks(m.Hooks()))
	ctx := context.Background()
	require.NoError(t, tk.Init(ctx))

	require.NoError(t, tk.Process(ctx, domain.Collision{PosZ: -5, Tracks: []domain.Track{
		{Pt: 0.5, Eta: 0.1},
		{Pt: 0.5, Eta: 1.0},
	}}))
	require.NoError(t, tk.Process(ctx, domain.Collision{PosZ: 15}))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Events.WithLabelValues(observability.OutcomeAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Events.WithLabelValues(observability.OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Tracks.WithLabelValues(observability.OutcomeAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Tracks.WithLabelValues(observability.OutcomeRejected)))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	var samples uint64
	for _, mf := range mfs {
		if mf.GetName() == "trackhist_vertex_z_cm" {
			samples = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	assert.Equal(t, uint64(2), samples, "vertex Z is observed before the cut")
}

func TestMetrics_ObserveRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	start := time.Now()
	m.ObserveRun(&domain.Run{StartedAt: start, FinishedAt: start.Add(time.Second)})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs))
}
