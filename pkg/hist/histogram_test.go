package hist_test

import (
	"testing"

	"github.com/aretw0/trackhist/pkg/axis"
	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/aretw0/trackhist/pkg/hist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vtxAxis(t *testing.T) *axis.Axis {
	t.Helper()
	ax, err := axis.Uniform(160, -20, 20, domain.LabelVtxZ)
	require.NoError(t, err)
	return ax
}

func TestFill(t *testing.T) {
	h := hist.New(domain.HistVtxZ, ";z (cm)", vtxAxis(t))

	h.Fill(-5.0)
	assert.Equal(t, int64(1), h.Count(60))
	assert.Equal(t, int64(1), h.Entries())

	h.Fill(-25)
	h.Fill(20)
	assert.Equal(t, int64(1), h.Underflow())
	assert.Equal(t, int64(1), h.Overflow())
	assert.Equal(t, int64(3), h.Entries())

	var inRange int64
	for _, c := range h.Counts() {
		inRange += c
	}
	assert.Equal(t, int64(1), inRange)
}

func TestMerge(t *testing.T) {
	ax := vtxAxis(t)
	a := hist.New("h", "", ax)
	b := hist.New("h", "", ax)

	a.Fill(0)
	a.Fill(-30)
	b.Fill(0)
	b.Fill(1)
	b.Fill(30)

	ab := a.Clone()
	require.NoError(t, ab.Merge(b))
	ba := b.Clone()
	require.NoError(t, ba.Merge(a))

	assert.Equal(t, ab.Counts(), ba.Counts(), "merge must be commutative")
	assert.Equal(t, int64(2), ab.Count(ax.FindBin(0)))
	assert.Equal(t, int64(1), ab.Underflow())
	assert.Equal(t, int64(1), ab.Overflow())
	assert.Equal(t, int64(5), ab.Entries())

	// operands untouched
	assert.Equal(t, int64(2), a.Entries())
}

func TestMerge_AxisMismatch(t *testing.T) {
	other, err := axis.Uniform(10, -20, 20, "")
	require.NoError(t, err)

	a := hist.New("h", "", vtxAxis(t))
	err = a.Merge(hist.New("h", "", other))
	assert.ErrorIs(t, err, domain.ErrAxisMismatch)
}

func TestDataRoundTrip(t *testing.T) {
	ax, err := axis.Pt(0.2, 1.0, domain.LabelPt)
	require.NoError(t, err)
	h := hist.New(domain.HistPt, ";pt", ax)
	h.Fill(0.25)
	h.Fill(0.1)

	d := h.Data()
	assert.Equal(t, ax.Edges(), d.Edges)
	assert.Equal(t, domain.LabelPt, d.Label)
	assert.Equal(t, int64(2), d.Entries)

	back, err := hist.FromData(d)
	require.NoError(t, err)
	assert.Equal(t, h.Counts(), back.Counts())
	assert.Equal(t, int64(1), back.Underflow())

	d.Counts = d.Counts[:2]
	_, err = hist.FromData(d)
	assert.ErrorIs(t, err, domain.ErrAxisMismatch)
}

func TestReset(t *testing.T) {
	h := hist.New("h", "", vtxAxis(t))
	h.Fill(1)
	h.Fill(100)
	h.Reset()
	assert.Zero(t, h.Entries())
}
