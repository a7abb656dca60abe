package cli

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/aretw0/trackhist/internal/config"
	"github.com/aretw0/trackhist/internal/logging"
	"github.com/aretw0/trackhist/pkg/adapters/memory"
	"github.com/aretw0/trackhist/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngest(t *testing.T) {
	p := &Persistence{Store: memory.NewStore(), Close: func() error { return nil }}
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	paths := []string{writeEvents(t), writeEvents(t)}
	require.NoError(t, ingest(context.Background(), config.Default(), p, paths, metrics, logging.NewNop(), true))

	ids, err := p.Store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Runs))
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.Events.WithLabelValues(observability.OutcomeAccepted)))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Events.WithLabelValues(observability.OutcomeRejected)))
}

func TestServe_ShutdownOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	var stderr bytes.Buffer
	err := Serve(ctx, ServeOptions{
		Addr:   "127.0.0.1:0",
		Events: []string{writeEvents(t)},
		Stderr: &stderr,
	})
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "Server stopped gracefully")
}

func TestServeMCP_StopsOnCancel(t *testing.T) {
	in, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var stderr bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- ServeMCP(ctx, MCPOptions{Stdin: in, Stdout: io.Discard, Stderr: &stderr})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "MCP server stopped")
	case <-time.After(3 * time.Second):
		t.Fatal("ServeMCP ignored context cancellation")
	}
}
