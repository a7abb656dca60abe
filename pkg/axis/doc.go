/*
Package axis builds histogram bin-edge sequences.

An Axis is an immutable, strictly increasing list of edges. Bins are half-open
intervals [edges[i], edges[i+1]). Axes are either computed from a step
schedule (PtEdges), taken verbatim from a list (New), or uniform (Uniform).

# Transverse-momentum schedule

PtEdges starts at ptMin and keeps appending edges until the last one reaches
ptMax. The width of each new bin depends on the lower edge:

	lower < 1.0         0.1
	1.0 <= lower < 5.0  0.5
	5.0 <= lower < 10.0 1.0
	lower >= 10.0       10.0

The final edge may overshoot ptMax. When ptMin >= ptMax the result is the
single edge [ptMin], which New rejects.
*/
package axis
