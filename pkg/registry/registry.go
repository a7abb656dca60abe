package registry

import (
	"fmt"
	"sync"

	"github.com/aretw0/trackhist/pkg/axis"
	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/aretw0/trackhist/pkg/hist"
)

// Registry manages the histograms declared by a task.
// Safe for concurrent use.
type Registry struct {
	name  string
	mu    sync.RWMutex
	hists map[string]*hist.Histogram
	order []string
}

// NewRegistry creates a new empty registry.
func NewRegistry(name string) *Registry {
	return &Registry{
		name:  name,
		hists: make(map[string]*hist.Histogram),
	}
}

// Name returns the registry label.
func (r *Registry) Name() string { return r.name }

// Add declares a histogram. Declaring the same name twice is an error.
func (r *Registry) Add(name, title string, ax *axis.Axis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.hists[name]; ok {
		return fmt.Errorf("%s: %w", name, domain.ErrHistogramExists)
	}
	r.hists[name] = hist.New(name, title, ax)
	r.order = append(r.order, name)
	return nil
}

// Fill increments the bin of the named histogram containing x.
func (r *Registry) Fill(name string, x float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.hists[name]
	if !ok {
		return fmt.Errorf("%s: %w", name, domain.ErrHistogramNotFound)
	}
	h.Fill(x)
	return nil
}

// Get returns a copy of the named histogram.
func (r *Registry) Get(name string) (*hist.Histogram, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.hists[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrHistogramNotFound)
	}
	return h.Clone(), nil
}

// Names lists histograms in declaration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Merge adds every histogram of o into r. Both registries must declare the
// same names with equal axes; on error r is left unchanged.
func (r *Registry) Merge(o *Registry) error {
	if r == o {
		return fmt.Errorf("merge registry %s into itself", r.name)
	}
	other := o.Snapshot()

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(other) != len(r.hists) {
		return fmt.Errorf("merge %s: %d histograms vs %d: %w", r.name, len(other), len(r.hists), domain.ErrAxisMismatch)
	}
	incoming := make([]*hist.Histogram, 0, len(other))
	for _, d := range other {
		dst, ok := r.hists[d.Name]
		if !ok {
			return fmt.Errorf("merge %s: %w", d.Name, domain.ErrHistogramNotFound)
		}
		src, err := hist.FromData(d)
		if err != nil {
			return err
		}
		if !dst.Axis().Equal(src.Axis()) {
			return fmt.Errorf("merge %s: %w", d.Name, domain.ErrAxisMismatch)
		}
		incoming = append(incoming, src)
	}
	for _, src := range incoming {
		if err := r.hists[src.Name()].Merge(src); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot returns the serialisable form of every histogram, in declaration order.
func (r *Registry) Snapshot() []domain.HistogramData {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.HistogramData, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.hists[name].Data())
	}
	return out
}

// FromSnapshot rebuilds a registry from serialised histograms.
func FromSnapshot(name string, data []domain.HistogramData) (*Registry, error) {
	r := NewRegistry(name)
	for _, d := range data {
		h, err := hist.FromData(d)
		if err != nil {
			return nil, err
		}
		if _, ok := r.hists[d.Name]; ok {
			return nil, fmt.Errorf("%s: %w", d.Name, domain.ErrHistogramExists)
		}
		r.hists[d.Name] = h
		r.order = append(r.order, d.Name)
	}
	return r, nil
}
