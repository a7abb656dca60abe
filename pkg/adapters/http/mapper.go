package http

import "github.com/aretw0/trackhist/pkg/domain"

func mapRunFromDomain(run *domain.Run) Run {
	out := Run{
		Id:         run.ID,
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
		Workers:    run.Workers,
		Cuts: Cuts{
			PtMin:   run.Cuts.PtMin,
			PtMax:   run.Cuts.PtMax,
			EtaCut:  run.Cuts.EtaCut,
			VtxZCut: run.Cuts.VtxZCut,
		},
		Binning: Binning{
			VtxZBins: run.Binning.VtxZBins,
			VtxZMin:  run.Binning.VtxZMin,
			VtxZMax:  run.Binning.VtxZMax,
		},
		Counters: Counters{
			EventsSeen:     run.Counters.EventsSeen,
			EventsAccepted: run.Counters.EventsAccepted,
			TracksSeen:     run.Counters.TracksSeen,
			TracksAccepted: run.Counters.TracksAccepted,
		},
		Histograms: make([]Histogram, 0, len(run.Histograms)),
	}
	if len(run.Binning.PtBins) > 0 {
		out.Binning.PtBins = ptr(append([]float64(nil), run.Binning.PtBins...))
	}
	for _, h := range run.Histograms {
		out.Histograms = append(out.Histograms, mapHistogramFromDomain(h))
	}
	return out
}

func mapHistogramFromDomain(h domain.HistogramData) Histogram {
	out := Histogram{
		Name:      h.Name,
		Title:     h.Title,
		Label:     h.Label,
		Edges:     h.Edges,
		Counts:    h.Counts,
		Underflow: h.Underflow,
		Overflow:  h.Overflow,
		Entries:   h.Entries,
	}
	if out.Edges == nil {
		out.Edges = []float64{}
	}
	if out.Counts == nil {
		out.Counts = []int64{}
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
