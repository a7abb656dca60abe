package domain

import "time"

// HistogramData is the serialisable form of a one-dimensional histogram.
// Counts has one entry per bin, len(Edges)-1.
type HistogramData struct {
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Label     string    `json:"label"`
	Edges     []float64 `json:"edges"`
	Counts    []int64   `json:"counts"`
	Underflow int64     `json:"underflow"`
	Overflow  int64     `json:"overflow"`
	Entries   int64     `json:"entries"`
}

// Clone returns a deep copy.
func (h HistogramData) Clone() HistogramData {
	out := h
	out.Edges = append([]float64(nil), h.Edges...)
	out.Counts = append([]int64(nil), h.Counts...)
	return out
}

// Counters summarises the selection over a run.
type Counters struct {
	EventsSeen     int64 `json:"events_seen"`
	EventsAccepted int64 `json:"events_accepted"`
	TracksSeen     int64 `json:"tracks_seen"`
	TracksAccepted int64 `json:"tracks_accepted"`
}

// Add accumulates o into c.
func (c *Counters) Add(o Counters) {
	c.EventsSeen += o.EventsSeen
	c.EventsAccepted += o.EventsAccepted
	c.TracksSeen += o.TracksSeen
	c.TracksAccepted += o.TracksAccepted
}

// Binning records the axes a run was filled with. PtBins is empty when the
// pt axis came from the step schedule over [Cuts.PtMin, Cuts.PtMax].
type Binning struct {
	PtBins   []float64 `json:"ptBins,omitempty"`
	VtxZBins int       `json:"vtxZBins"`
	VtxZMin  float64   `json:"vtxZMin"`
	VtxZMax  float64   `json:"vtxZMax"`
}

// Run is the persisted outcome of processing one event stream.
type Run struct {
	ID         string          `json:"id"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Workers    int             `json:"workers"`
	Cuts       Cuts            `json:"cuts"`
	Binning    Binning         `json:"binning"`
	Counters   Counters        `json:"counters"`
	Histograms []HistogramData `json:"histograms"`
}

// Histogram returns the histogram with the given name.
func (r *Run) Histogram(name string) (HistogramData, bool) {
	for _, h := range r.Histograms {
		if h.Name == name {
			return h, true
		}
	}
	return HistogramData{}, false
}

// Clone returns a deep copy of the run.
func (r *Run) Clone() *Run {
	out := *r
	out.Binning.PtBins = append([]float64(nil), r.Binning.PtBins...)
	out.Histograms = make([]HistogramData, len(r.Histograms))
	for i, h := range r.Histograms {
		out.Histograms[i] = h.Clone()
	}
	return &out
}
