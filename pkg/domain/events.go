package domain

import "context"

// EventDecision is reported once per collision seen by the task.
type EventDecision struct {
	Collision *Collision
	Accepted  bool
}

// TrackDecision is reported once per track of an accepted collision.
type TrackDecision struct {
	Track    Track
	Accepted bool
}

// FillHooks defines callbacks for observing selection decisions.
// Nil callbacks are skipped.
type FillHooks struct {
	OnEvent func(context.Context, *EventDecision)
	OnTrack func(context.Context, *TrackDecision)
}
