package domain

import "errors"

// ErrInvalidAxisBounds is returned when ptMin/ptMax cannot produce a usable axis.
var ErrInvalidAxisBounds = errors.New("invalid axis bounds")

// ErrInvalidCut is returned when a selection cut is negative or not finite.
var ErrInvalidCut = errors.New("invalid cut")

// ErrNotInitialized is returned when events are processed before Init.
var ErrNotInitialized = errors.New("task not initialized")

// ErrAlreadyInitialized is returned when Init is called twice.
var ErrAlreadyInitialized = errors.New("task already initialized")

// ErrHistogramNotFound is returned when a histogram name is not registered.
var ErrHistogramNotFound = errors.New("histogram not found")

// ErrHistogramExists is returned when a histogram name is declared twice.
var ErrHistogramExists = errors.New("histogram already declared")

// ErrAxisMismatch is returned when merging histograms with different binning.
var ErrAxisMismatch = errors.New("histogram axes do not match")

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// ErrInvalidRunID is returned for run IDs that are empty or not a single path element.
var ErrInvalidRunID = errors.New("invalid run ID")
