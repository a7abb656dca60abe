package domain

import (
	"fmt"
	"math"
)

// Cuts holds the event and track selection.
type Cuts struct {
	PtMin   float64 `json:"ptMin" yaml:"ptMin" mapstructure:"ptMin"`
	PtMax   float64 `json:"ptMax" yaml:"ptMax" mapstructure:"ptMax"`
	EtaCut  float64 `json:"etaCut" yaml:"etaCut" mapstructure:"etaCut"`
	VtxZCut float64 `json:"vtxZCut" yaml:"vtxZCut" mapstructure:"vtxZCut"`
}

// AcceptEvent reports whether |posZ| < VtxZCut.
func (c Cuts) AcceptEvent(ev Collision) bool {
	return math.Abs(ev.PosZ) < c.VtxZCut
}

// AcceptTrack reports whether |eta| < EtaCut and PtMin < pt < PtMax.
func (c Cuts) AcceptTrack(tr Track) bool {
	return math.Abs(tr.Eta) < c.EtaCut && tr.Pt > c.PtMin && tr.Pt < c.PtMax
}

// Validate fails fast on bounds that would produce a degenerate pt axis or
// cuts that can never accept anything.
func (c Cuts) Validate() error {
	if !finite(c.PtMin) || !finite(c.PtMax) || c.PtMin <= 0 || c.PtMin >= c.PtMax {
		return fmt.Errorf("%w: ptMin=%v ptMax=%v", ErrInvalidAxisBounds, c.PtMin, c.PtMax)
	}
	if !finite(c.EtaCut) || c.EtaCut <= 0 {
		return fmt.Errorf("%w: etaCut=%v", ErrInvalidCut, c.EtaCut)
	}
	if !finite(c.VtxZCut) || c.VtxZCut <= 0 {
		return fmt.Errorf("%w: vtxZCut=%v", ErrInvalidCut, c.VtxZCut)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
