package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contractRun(id string) *domain.Run {
	return &domain.Run{
		ID:        id,
		StartedAt: time.Date(2024, 6, 17, 12, 0, 0, 0, time.UTC),
		Workers:   2,
		Cuts:      domain.Cuts{PtMin: 0.2, PtMax: 10, EtaCut: 0.8, VtxZCut: 10},
		Binning:   domain.Binning{PtBins: []float64{0.2, 1, 10}, VtxZBins: 2, VtxZMin: -20, VtxZMax: 20},
		Counters:  domain.Counters{EventsSeen: 3, EventsAccepted: 2, TracksSeen: 5, TracksAccepted: 4},
		Histograms: []domain.HistogramData{
			{
				Name:    domain.HistVtxZ,
				Title:   ";z (cm)",
				Label:   domain.LabelVtxZ,
				Edges:   []float64{-20, 0, 20},
				Counts:  []int64{1, 1},
				Entries: 2,
			},
		},
	}
}

// RunRunStoreContract runs a suite of tests to verify that a RunStore implementation
// adheres to the defined interface contract.
func RunRunStoreContract(t *testing.T, store RunStore) {
	ctx := context.Background()
	runID := "contract-test-run-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		run := contractRun(runID)

		err := store.Save(ctx, runID, run)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, run.Counters, loaded.Counters)
		assert.Equal(t, run.Cuts, loaded.Cuts)
		assert.Equal(t, run.Binning, loaded.Binning)
		assert.True(t, run.StartedAt.Equal(loaded.StartedAt))
		require.Len(t, loaded.Histograms, 1)
		assert.Equal(t, run.Histograms[0], loaded.Histograms[0])
	})

	t.Run("Isolation", func(t *testing.T) {
		run := contractRun(runID)
		require.NoError(t, store.Save(ctx, runID, run))

		run.Histograms[0].Counts[0] = 1000
		loaded, err := store.Load(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), loaded.Histograms[0].Counts[0], "store must not alias caller data")

		loaded.Histograms[0].Counts[0] = 2000
		again, err := store.Load(ctx, runID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), again.Histograms[0].Counts[0])
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, runID, contractRun(runID))
		require.NoError(t, err)

		err = store.Delete(ctx, runID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "Load after Delete should return ErrRunNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := runID + "-1"
		id2 := runID + "-2"
		_ = store.Save(ctx, id1, contractRun(id1))
		_ = store.Save(ctx, id2, contractRun(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		runs, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, runs, id1)
		assert.Contains(t, runs, id2)
	})
}
