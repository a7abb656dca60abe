package domain

// Histogram names registered by the analysis task.
const (
	HistPt   = "hPt"
	HistVtxZ = "hVtxZ"
)

// Axis labels, ROOT TLatex style so exported files render like the detector plots.
const (
	LabelPt   = "#it{p}_{T} (GeV/#it{c})"
	LabelVtxZ = "z (cm)"
)
