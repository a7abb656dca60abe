package ports

import (
	"context"

	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/aretw0/trackhist/pkg/registry"
)

// Task is the capability a host drives: Init exactly once, then Process once per collision.
type Task interface {
	Init(ctx context.Context) error
	Process(ctx context.Context, ev domain.Collision) error

	// Registry exposes the histograms filled so far.
	Registry() *registry.Registry

	// Counters reports selection statistics.
	Counters() domain.Counters

	// Cuts reports the selection the task applies.
	Cuts() domain.Cuts

	// Binning reports the axes the task fills.
	Binning() domain.Binning
}

// TaskFactory creates a fresh, uninitialized task. Parallel hosts call it once per worker.
type TaskFactory func() Task
