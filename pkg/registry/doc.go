/*
Package registry provides a named collection of histograms.

It plays the role of the histogram registry a host hands to an analysis task:
histograms are declared once with Add, filled by name with Fill, and read back
as copies or as a Snapshot. Registries built from the same declarations can be
combined with Merge, which adds counts bin by bin.
*/
package registry
