package registry_test

import (
	"sync"
	"testing"

	"github.com/aretw0/trackhist/pkg/axis"
	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/aretw0/trackhist/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	pt, err := axis.Pt(0.2, 10.0, domain.LabelPt)
	require.NoError(t, err)
	z, err := axis.Uniform(160, -20, 20, domain.LabelVtxZ)
	require.NoError(t, err)

	r := registry.NewRegistry("HistRegistry")
	require.NoError(t, r.Add(domain.HistPt, "pt", pt))
	require.NoError(t, r.Add(domain.HistVtxZ, "z", z))
	return r
}

func TestRegistry_AddFillGet(t *testing.T) {
	r := newRegistry(t)
	assert.Equal(t, []string{domain.HistPt, domain.HistVtxZ}, r.Names())

	require.NoError(t, r.Fill(domain.HistVtxZ, -5.0))
	h, err := r.Get(domain.HistVtxZ)
	require.NoError(t, err)
	assert.Equal(t, int64(1), h.Count(60))

	// Get returns a copy
	h.Fill(-5.0)
	h2, _ := r.Get(domain.HistVtxZ)
	assert.Equal(t, int64(1), h2.Count(60))

	assert.ErrorIs(t, r.Fill("nope", 1), domain.ErrHistogramNotFound)
	_, err = r.Get("nope")
	assert.ErrorIs(t, err, domain.ErrHistogramNotFound)

	z, _ := axis.Uniform(1, 0, 1, "")
	assert.ErrorIs(t, r.Add(domain.HistPt, "again", z), domain.ErrHistogramExists)
}

func TestRegistry_Merge(t *testing.T) {
	a := newRegistry(t)
	b := newRegistry(t)

	require.NoError(t, a.Fill(domain.HistPt, 0.5))
	require.NoError(t, b.Fill(domain.HistPt, 0.5))
	require.NoError(t, b.Fill(domain.HistVtxZ, 1.0))

	require.NoError(t, a.Merge(b))

	pt, _ := a.Get(domain.HistPt)
	assert.Equal(t, int64(2), pt.Entries())
	z, _ := a.Get(domain.HistVtxZ)
	assert.Equal(t, int64(1), z.Entries())

	assert.Error(t, a.Merge(a))
}

func TestRegistry_MergeMismatch(t *testing.T) {
	a := newRegistry(t)
	b := registry.NewRegistry("other")
	pt, _ := axis.Pt(0.2, 5.0, domain.LabelPt)
	z, _ := axis.Uniform(160, -20, 20, domain.LabelVtxZ)
	require.NoError(t, b.Add(domain.HistPt, "pt", pt))
	require.NoError(t, b.Add(domain.HistVtxZ, "z", z))
	require.NoError(t, b.Fill(domain.HistVtxZ, 0))

	assert.ErrorIs(t, a.Merge(b), domain.ErrAxisMismatch)

	// nothing was applied
	h, _ := a.Get(domain.HistVtxZ)
	assert.Zero(t, h.Entries())
}

func TestRegistry_SnapshotRoundTrip(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, r.Fill(domain.HistPt, 3.3))

	back, err := registry.FromSnapshot("copy", r.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, r.Snapshot(), back.Snapshot())
}

func TestRegistry_ConcurrentFill(t *testing.T) {
	r := newRegistry(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = r.Fill(domain.HistVtxZ, 0)
			}
		}()
	}
	wg.Wait()

	h, _ := r.Get(domain.HistVtxZ)
	assert.Equal(t, int64(800), h.Entries())
}
