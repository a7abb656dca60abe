// Package yoda exports filled histograms with go-hep: YODA text for
// downstream physics tooling and PNG plots for quick inspection.
package yoda

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/trackhist/pkg/axis"
	"github.com/aretw0/trackhist/pkg/domain"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"
)

// Plot size used for PNG output.
const (
	PlotWidth  = 6 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

// ToH1D converts serialised counts into an hbook histogram.
// Each bin is set as n unit-weight entries at its centre, so the cost does
// not depend on the counts.
func ToH1D(d domain.HistogramData) (*hbook.H1D, error) {
	ax, err := axis.New(d.Edges, d.Label)
	if err != nil {
		return nil, fmt.Errorf("histogram %s: %w", d.Name, err)
	}
	if len(d.Counts) != ax.NBins() {
		return nil, fmt.Errorf("histogram %s: %w", d.Name, domain.ErrAxisMismatch)
	}

	h := hbook.NewH1DFromEdges(ax.Edges())
	h.Ann["name"] = d.Name
	h.Ann["title"] = d.Title

	bng := &h.Binning
	for i, n := range d.Counts {
		lo, hi := ax.BinRange(i)
		setUnitEntries(&bng.Bins[i].Dist, &bng.Dist, 0.5*(lo+hi), n)
	}
	setUnitEntries(&bng.Outflows[0], &bng.Dist, ax.Min()-1, d.Underflow)
	setUnitEntries(&bng.Outflows[1], &bng.Dist, ax.Max()+1, d.Overflow)
	return h, nil
}

// setUnitEntries sets dst to n unit-weight entries at x and adds them to total.
func setUnitEntries(dst, total *hbook.Dist1D, x float64, n int64) {
	if n <= 0 {
		return
	}
	w := float64(n)
	dst.Dist.N = n
	dst.Dist.SumW = w
	dst.Dist.SumW2 = w
	dst.Stats.SumWX = w * x
	dst.Stats.SumWX2 = w * x * x

	total.Dist.N += n
	total.Dist.SumW += w
	total.Dist.SumW2 += w
	total.Stats.SumWX += w * x
	total.Stats.SumWX2 += w * x * x
}

// Encode writes every histogram as a YODA block, in order.
func Encode(w io.Writer, hists []domain.HistogramData) error {
	for _, d := range hists {
		h, err := ToH1D(d)
		if err != nil {
			return err
		}
		raw, err := h.MarshalYODA()
		if err != nil {
			return fmt.Errorf("marshal %s: %w", d.Name, err)
		}
		if _, err := w.Write(raw); err != nil {
			return err
		}
	}
	return nil
}

// WritePNG renders one histogram as a PNG plot.
func WritePNG(w io.Writer, d domain.HistogramData) error {
	h, err := ToH1D(d)
	if err != nil {
		return err
	}

	p := hplot.New()
	p.Title.Text = d.Name
	p.X.Label.Text = d.Label
	p.Y.Label.Text = "Entries"

	hh := hplot.NewH1D(h)
	hh.Infos.Style = hplot.HInfoSummary
	p.Add(hh, hplot.NewGrid())

	wt, err := p.Plot.WriterTo(PlotWidth, PlotHeight, "png")
	if err != nil {
		return fmt.Errorf("render %s: %w", d.Name, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// WriteDir writes <dir>/<run>.yoda and one <dir>/<run>_<name>.png per histogram.
// It returns the paths written.
// The run ID must be a single path element.
func WriteDir(dir string, run *domain.Run, withPlots bool) ([]string, error) {
	if err := domain.ValidateRunID(run.ID); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, run.Histograms); err != nil {
		return nil, err
	}
	yodaPath := filepath.Join(dir, run.ID+".yoda")
	if err := os.WriteFile(yodaPath, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", yodaPath, err)
	}
	paths := []string{yodaPath}

	if !withPlots {
		return paths, nil
	}
	for _, d := range run.Histograms {
		buf.Reset()
		if err := WritePNG(&buf, d); err != nil {
			return paths, err
		}
		pngPath := filepath.Join(dir, fmt.Sprintf("%s_%s.png", run.ID, d.Name))
		if err := os.WriteFile(pngPath, buf.Bytes(), 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", pngPath, err)
		}
		paths = append(paths, pngPath)
	}
	return paths, nil
}
