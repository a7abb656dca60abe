package axis

import (
	"fmt"
	"math"
)

// edgeResolution is the grid computed edges are snapped to.
const edgeResolution = 1e9

// Step is one rung of a piecewise step schedule: bins whose lower edge is
// below Below get width Width.
type Step struct {
	Below float64
	Width float64
}

// Schedule is an ordered list of steps plus the width used past the last rung.
type Schedule struct {
	Steps []Step
	Tail  float64
}

// PtSchedule is the transverse-momentum binning used for the pt spectrum.
var PtSchedule = Schedule{
	Steps: []Step{
		{Below: 1.0, Width: 0.1},
		{Below: 5.0, Width: 0.5},
		{Below: 10.0, Width: 1.0},
	},
	Tail: 10.0,
}

// Width returns the bin width for a bin starting at lower.
func (s Schedule) Width(lower float64) float64 {
	for _, st := range s.Steps {
		if lower < st.Below {
			return st.Width
		}
	}
	return s.Tail
}

// Edges walks the schedule from lo until the last edge is >= hi.
// It returns [lo] when lo >= hi. The walk fails with ErrStepTooSmall when a
// step no longer advances the edge, and with ErrTooManyBins past MaxBins.
func (s Schedule) Edges(lo, hi float64) ([]float64, error) {
	edges := []float64{lo}
	for last := lo; last < hi; {
		raw := last + s.Width(last)
		next := snap(raw)
		if !(raw > last) || !(next > last) {
			return nil, fmt.Errorf("%w: width %v at edge %v", ErrStepTooSmall, s.Width(last), last)
		}
		if len(edges) > MaxBins {
			return nil, fmt.Errorf("%w: [%v, %v] needs more than %d bins", ErrTooManyBins, lo, hi, MaxBins)
		}
		edges = append(edges, next)
		last = next
	}
	return edges, nil
}

// PtEdges computes the pt bin edges between ptMin and ptMax.
func PtEdges(ptMin, ptMax float64) ([]float64, error) {
	return PtSchedule.Edges(ptMin, ptMax)
}

// snap removes binary rounding drift so that 0.2 + 8*0.1 lands on 1.0.
func snap(v float64) float64 {
	return math.Round(v*edgeResolution) / edgeResolution
}
