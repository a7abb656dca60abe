package axis

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// MaxBins bounds the number of bins of any axis.
const MaxBins = 100_000

// Axis is an immutable sequence of bin edges with a display label.
type Axis struct {
	edges []float64
	label string
}

// New validates edges and returns an axis that owns a copy of them.
func New(edges []float64, label string) (*Axis, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewEdges, len(edges))
	}
	if len(edges)-1 > MaxBins {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyBins, len(edges)-1, MaxBins)
	}
	for i, e := range edges {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return nil, fmt.Errorf("%w: edge %d is %v", ErrEdgesNotIncreasing, i, e)
		}
		if i > 0 && e <= edges[i-1] {
			return nil, fmt.Errorf("%w: edge %d (%v) <= edge %d (%v)", ErrEdgesNotIncreasing, i, e, i-1, edges[i-1])
		}
	}
	return &Axis{edges: slices.Clone(edges), label: label}, nil
}

// Uniform returns an axis of n equal-width bins spanning [lo, hi].
func Uniform(n int, lo, hi float64, label string) (*Axis, error) {
	if n <= 0 || !(hi > lo) {
		return nil, fmt.Errorf("%w: %d bins on [%v, %v]", ErrInvalidRange, n, lo, hi)
	}
	if n > MaxBins {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyBins, n, MaxBins)
	}
	width := (hi - lo) / float64(n)
	edges := make([]float64, n+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[n] = hi
	return New(edges, label)
}

// Pt builds the transverse-momentum axis from the step schedule.
func Pt(ptMin, ptMax float64, label string) (*Axis, error) {
	edges, err := PtEdges(ptMin, ptMax)
	if err != nil {
		return nil, err
	}
	return New(edges, label)
}

// Edges returns a copy of the bin edges.
func (a *Axis) Edges() []float64 { return slices.Clone(a.edges) }

// Label returns the axis title.
func (a *Axis) Label() string { return a.label }

// NBins returns the number of bins, len(edges)-1.
func (a *Axis) NBins() int { return len(a.edges) - 1 }

// Min returns the first edge.
func (a *Axis) Min() float64 { return a.edges[0] }

// Max returns the last edge.
func (a *Axis) Max() float64 { return a.edges[len(a.edges)-1] }

// FindBin returns the index i such that edges[i] <= x < edges[i+1].
// Values below the axis map to -1, values at or above the last edge to NBins().
// NaN maps to NBins().
func (a *Axis) FindBin(x float64) int {
	if math.IsNaN(x) {
		return a.NBins()
	}
	// first edge strictly greater than x
	i := sort.Search(len(a.edges), func(i int) bool { return a.edges[i] > x })
	if i == len(a.edges) {
		return a.NBins()
	}
	return i - 1
}

// BinRange returns the lower and upper edge of bin i.
func (a *Axis) BinRange(i int) (lo, hi float64) {
	return a.edges[i], a.edges[i+1]
}

// Equal reports whether both axes have identical edges.
func (a *Axis) Equal(b *Axis) bool {
	if a == nil || b == nil {
		return a == b
	}
	return slices.Equal(a.edges, b.edges)
}
