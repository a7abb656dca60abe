// Package hist implements integer-count one-dimensional histograms.
//
// A Histogram is not safe for concurrent use. Hosts that fill from several
// goroutines give each goroutine its own Histogram and combine them with Merge,
// which is commutative and associative.
package hist

import (
	"fmt"
	"slices"

	"github.com/aretw0/trackhist/pkg/axis"
	"github.com/aretw0/trackhist/pkg/domain"
)

// Histogram counts values falling in the bins of an axis.
type Histogram struct {
	name      string
	title     string
	axis      *axis.Axis
	counts    []int64
	underflow int64
	overflow  int64
}

// New creates an empty histogram over ax.
func New(name, title string, ax *axis.Axis) *Histogram {
	return &Histogram{
		name:   name,
		title:  title,
		axis:   ax,
		counts: make([]int64, ax.NBins()),
	}
}

// FromData rebuilds a histogram from its serialised form.
func FromData(d domain.HistogramData) (*Histogram, error) {
	ax, err := axis.New(d.Edges, d.Label)
	if err != nil {
		return nil, fmt.Errorf("histogram %s: %w", d.Name, err)
	}
	if len(d.Counts) != ax.NBins() {
		return nil, fmt.Errorf("histogram %s: %d counts for %d bins: %w", d.Name, len(d.Counts), ax.NBins(), domain.ErrAxisMismatch)
	}
	h := New(d.Name, d.Title, ax)
	copy(h.counts, d.Counts)
	h.underflow = d.Underflow
	h.overflow = d.Overflow
	return h, nil
}

// Fill increments the bin containing x by one.
func (h *Histogram) Fill(x float64) {
	switch i := h.axis.FindBin(x); {
	case i < 0:
		h.underflow++
	case i >= len(h.counts):
		h.overflow++
	default:
		h.counts[i]++
	}
}

// Name returns the registry key, e.g. hPt.
func (h *Histogram) Name() string { return h.name }

// Title returns the ROOT-style title; the part after ';' labels the x axis.
func (h *Histogram) Title() string { return h.title }

// Axis returns the binning.
func (h *Histogram) Axis() *axis.Axis { return h.axis }

// Underflow counts fills below the first edge.
func (h *Histogram) Underflow() int64 { return h.underflow }

// Overflow counts fills at or above the last edge.
func (h *Histogram) Overflow() int64 { return h.overflow }

// Count returns the content of bin i.
func (h *Histogram) Count(i int) int64 { return h.counts[i] }

// Counts returns a copy of the in-range bin contents.
func (h *Histogram) Counts() []int64 { return slices.Clone(h.counts) }

// Entries returns the number of fills, including under- and overflow.
func (h *Histogram) Entries() int64 {
	n := h.underflow + h.overflow
	for _, c := range h.counts {
		n += c
	}
	return n
}

// Merge adds the contents of o into h bin by bin.
func (h *Histogram) Merge(o *Histogram) error {
	if !h.axis.Equal(o.axis) {
		return fmt.Errorf("merge %s: %w", h.name, domain.ErrAxisMismatch)
	}
	for i, c := range o.counts {
		h.counts[i] += c
	}
	h.underflow += o.underflow
	h.overflow += o.overflow
	return nil
}

// Clone returns an independent copy sharing the immutable axis.
func (h *Histogram) Clone() *Histogram {
	cp := *h
	cp.counts = slices.Clone(h.counts)
	return &cp
}

// Reset zeroes all counts.
func (h *Histogram) Reset() {
	clear(h.counts)
	h.underflow, h.overflow = 0, 0
}

// Data returns the serialisable form of the histogram.
func (h *Histogram) Data() domain.HistogramData {
	return domain.HistogramData{
		Name:      h.name,
		Title:     h.title,
		Label:     h.axis.Label(),
		Edges:     h.axis.Edges(),
		Counts:    h.Counts(),
		Underflow: h.underflow,
		Overflow:  h.overflow,
		Entries:   h.Entries(),
	}
}
