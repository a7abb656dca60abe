package ports

import (
	"context"

	"github.com/aretw0/trackhist/pkg/domain"
)

// RunStore defines the interface for persisting finished runs.
type RunStore interface {
	// Save persists the run under runID, replacing any previous value.
	Save(ctx context.Context, runID string, run *domain.Run) error

	// Load retrieves a run.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, runID string) (*domain.Run, error)

	// Delete removes a run. Deleting an unknown run is not an error.
	Delete(ctx context.Context, runID string) error

	// List returns the IDs of stored runs.
	List(ctx context.Context) ([]string, error)
}
