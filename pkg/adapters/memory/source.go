package memory

import (
	"context"
	"io"
	"sync"

	"github.com/aretw0/trackhist/pkg/domain"
)

// Source implements ports.EventSource over a slice of collisions.
type Source struct {
	mu     sync.Mutex
	events []domain.Collision
	pos    int
}

// NewSource creates a source that yields events in order.
func NewSource(events []domain.Collision) *Source {
	return &Source{events: events}
}

// Next returns the next collision or io.EOF.
func (s *Source) Next(ctx context.Context) (domain.Collision, error) {
	if err := ctx.Err(); err != nil {
		return domain.Collision{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos >= len(s.events) {
		return domain.Collision{}, io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

// Close is a no-op.
func (s *Source) Close() error { return nil }
