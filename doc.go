/*
Package trackhist fills the transverse-momentum spectrum and the vertex-Z
distribution of charged tracks from a stream of collision records.

# Concept

Each collision carries a primary-vertex position along the beam axis and a list
of reconstructed tracks. An event passes when |z| < vtxZCut; a track passes when
|eta| < etaCut and ptMin < pt < ptMax. Accepted events fill hVtxZ once, accepted
tracks fill hPt once.

The pt axis is adaptive: bins are 0.1 GeV/c wide below 1, 0.5 up to 5, 1.0 up
to 10 and 10.0 beyond. The axis starts at ptMin and stops at the first edge at
or beyond ptMax.

# Usage

	analysis := trackhist.New(task.DefaultConfig(), trackhist.WithWorkers(4))
	run, err := analysis.Run(ctx, jsonl.NewSource(os.Stdin))
	if err != nil {
		log.Fatal(err)
	}
	hPt, _ := run.Histogram(domain.HistPt)

Runs can be persisted through any ports.RunStore (memory, Redis), exported as
YODA or PNG with the yoda adapter, and served over HTTP or MCP.
*/
package trackhist
