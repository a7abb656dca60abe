package yoda_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/trackhist/pkg/adapters/yoda"
	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/hbook"
)

func sampleData() domain.HistogramData {
	return domain.HistogramData{
		Name:      domain.HistPt,
		Title:     ";" + domain.LabelPt,
		Label:     domain.LabelPt,
		Edges:     []float64{0.2, 0.3, 0.4, 0.5},
		Counts:    []int64{2, 0, 3},
		Underflow: 1,
		Overflow:  1,
		Entries:   7,
	}
}

func TestToH1D(t *testing.T) {
	h, err := yoda.ToH1D(sampleData())
	require.NoError(t, err)

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, int64(7), h.Entries())
	assert.InDelta(t, 2.0, h.Value(0), 1e-12)
	assert.InDelta(t, 0.0, h.Value(1), 1e-12)
	assert.InDelta(t, 3.0, h.Value(2), 1e-12)
	assert.Equal(t, domain.HistPt, h.Name())
}

func TestToH1D_Invalid(t *testing.T) {
	d := sampleData()
	d.Edges = []float64{1}
	_, err := yoda.ToH1D(d)
	assert.Error(t, err)

	d = sampleData()
	d.Counts = []int64{1}
	_, err = yoda.ToH1D(d)
	assert.ErrorIs(t, err, domain.ErrAxisMismatch)
}

func TestEncode_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, yoda.Encode(&buf, []domain.HistogramData{sampleData()}))
	assert.True(t, strings.HasPrefix(buf.String(), "BEGIN YODA_HISTO1D"))

	var back hbook.H1D
	require.NoError(t, back.UnmarshalYODA(buf.Bytes()))
	assert.Equal(t, int64(7), back.Entries())
	assert.InDelta(t, 3.0, back.Value(2), 1e-12)
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, yoda.WritePNG(&buf, sampleData()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestWriteDir(t *testing.T) {
	dir := t.TempDir()
	run := &domain.Run{ID: "run-1", Histograms: []domain.HistogramData{sampleData()}}

	paths, err := yoda.WriteDir(dir, run, true)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	for _, p := range paths {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
}

func TestWriteDir_RejectsEscapingRunID(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "out")

	for _, id := range []string{"../escaped", "a/b", ".."} {
		run := &domain.Run{ID: id, Histograms: []domain.HistogramData{sampleData()}}
		paths, err := yoda.WriteDir(dir, run, true)
		assert.ErrorIs(t, err, domain.ErrInvalidRunID, id)
		assert.Empty(t, paths)
	}

	_, err := os.Stat(filepath.Join(root, "escaped.yoda"))
	assert.True(t, os.IsNotExist(err))
}

func TestToH1D_LargeCounts(t *testing.T) {
	const big = int64(3_000_000_000)
	d := sampleData()
	d.Counts = []int64{big, 0, 5}
	d.Underflow = big
	d.Overflow = 0
	d.Entries = 2*big + 5

	h, err := yoda.ToH1D(d)
	require.NoError(t, err)
	assert.Equal(t, d.Entries, h.Entries())
	assert.InDelta(t, float64(big), h.Value(0), 1e-3)
	assert.Equal(t, big, h.Binning.Bins[0].Dist.Entries())
	assert.Equal(t, big, h.Binning.Underflow().Entries())

	var buf bytes.Buffer
	require.NoError(t, yoda.Encode(&buf, []domain.HistogramData{d}))

	var back hbook.H1D
	require.NoError(t, back.UnmarshalYODA(buf.Bytes()))
	assert.Equal(t, d.Entries, back.Entries())
	assert.InDelta(t, float64(big), back.Value(0), 1e-3)
	assert.Equal(t, big, back.Binning.Bins[0].Dist.Entries())
	assert.InDelta(t, 5.0, back.Value(2), 1e-12)
	assert.Equal(t, big, back.Binning.Underflow().Entries())
}
