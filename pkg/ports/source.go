package ports

import (
	"context"

	"github.com/aretw0/trackhist/pkg/domain"
)

// EventSource yields collisions in order.
type EventSource interface {
	// Next returns the next collision. It returns io.EOF when the stream is exhausted.
	Next(ctx context.Context) (domain.Collision, error)

	// Close releases the underlying resources.
	Close() error
}
