package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/trackhist/internal/logging"
	"github.com/aretw0/trackhist/pkg/domain"
	"golang.org/x/term"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger on stderr.
// Debug forces the debug level regardless of the configured one.
func createLogger(level, format string, debug bool, w io.Writer) (*slog.Logger, error) {
	lvl := slog.LevelDebug
	if !debug {
		var err error
		if lvl, err = logging.ParseLevel(level); err != nil {
			return nil, err
		}
	}
	return logging.NewWriter(w, lvl, logging.Format(format)), nil
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func createDebugHooks(logger *slog.Logger) domain.FillHooks {
	return domain.FillHooks{
		OnEvent: func(ctx context.Context, e *domain.EventDecision) {
			if !e.Accepted {
				logger.DebugContext(ctx, "Event rejected", "event", e.Collision.ID, "pos_z", e.Collision.PosZ)
			}
		},
	}
}

// chainHooks calls every non-nil callback in order.
func chainHooks(all ...domain.FillHooks) domain.FillHooks {
	var events []func(context.Context, *domain.EventDecision)
	var tracks []func(context.Context, *domain.TrackDecision)
	for _, h := range all {
		if h.OnEvent != nil {
			events = append(events, h.OnEvent)
		}
		if h.OnTrack != nil {
			tracks = append(tracks, h.OnTrack)
		}
	}

	var out domain.FillHooks
	if len(events) > 0 {
		out.OnEvent = func(ctx context.Context, e *domain.EventDecision) {
			for _, fn := range events {
				fn(ctx, e)
			}
		}
	}
	if len(tracks) > 0 {
		out.OnTrack = func(ctx context.Context, t *domain.TrackDecision) {
			for _, fn := range tracks {
				fn(ctx, t)
			}
		}
	}
	return out
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

// HandleExecutionError maps interruptions to a clean exit.
func HandleExecutionError(err error) error {
	if err == nil || isInterrupted(err) {
		return nil
	}
	return err
}
