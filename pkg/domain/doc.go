/*
Package domain contains the core data model of the track-histogram analysis.

It is kept free of I/O and persistence so that every adapter (event sources,
stores, HTTP) shares one vocabulary.

# Key Entities

  - Collision: one event, its reconstructed vertex Z and its tracks.
  - Track: transverse momentum and pseudorapidity of a charged particle.
  - Cuts: the event and track selection predicates.
  - HistogramData: a serialisable view of a filled histogram.
  - Run: the outcome of processing an event stream (counters and histograms).
*/
package domain
