package axis

import "errors"

// ErrTooFewEdges is returned when an axis has fewer than two edges and therefore no bins.
var ErrTooFewEdges = errors.New("axis needs at least two edges")

// ErrEdgesNotIncreasing is returned when edges are not strictly increasing or not finite.
var ErrEdgesNotIncreasing = errors.New("axis edges must be finite and strictly increasing")

// ErrInvalidRange is returned by Uniform for an empty range or a non-positive bin count.
var ErrInvalidRange = errors.New("invalid uniform axis range")

// ErrTooManyBins is returned when an axis would exceed MaxBins.
var ErrTooManyBins = errors.New("axis has too many bins")

// ErrStepTooSmall is returned when a schedule step is below the float spacing at the current edge.
var ErrStepTooSmall = errors.New("schedule step does not advance the edge")
