package observability

import (
	"context"

	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// Metrics holds the collectors updated during a run.
type Metrics struct {
	Events   *prometheus.CounterVec
	Tracks   *prometheus.CounterVec
	VtxZ     prometheus.Histogram
	Runs     prometheus.Counter
	Duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trackhist_events_total",
				Help: "Collisions seen by the task, by selection outcome",
			},
			[]string{"outcome"},
		),
		Tracks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trackhist_tracks_total",
				Help: "Tracks of accepted collisions, by selection outcome",
			},
			[]string{"outcome"},
		),
		VtxZ: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "trackhist_vertex_z_cm",
			Help:    "Vertex Z of all collisions seen, before the vertex cut",
			Buckets: prometheus.LinearBuckets(-20, 5, 9),
		}),
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trackhist_runs_total",
			Help: "Completed runs",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "trackhist_run_duration_seconds",
			Help:    "Wall time of completed runs",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.Events, m.Tracks, m.VtxZ, m.Runs, m.Duration)
	return m
}

// Hooks returns fill hooks that update the counters.
func (m *Metrics) Hooks() domain.FillHooks {
	return domain.FillHooks{
		OnEvent: func(_ context.Context, e *domain.EventDecision) {
			m.Events.WithLabelValues(outcome(e.Accepted)).Inc()
			m.VtxZ.Observe(e.Collision.PosZ)
		},
		OnTrack: func(_ context.Context, t *domain.TrackDecision) {
			m.Tracks.WithLabelValues(outcome(t.Accepted)).Inc()
		},
	}
}

// ObserveRun records a finished run.
func (m *Metrics) ObserveRun(run *domain.Run) {
	m.Runs.Inc()
	m.Duration.Observe(run.FinishedAt.Sub(run.StartedAt).Seconds())
}

func outcome(accepted bool) string {
	if accepted {
		return OutcomeAccepted
	}
	return OutcomeRejected
}
