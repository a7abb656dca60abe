package task

import (
	"fmt"

	"github.com/aretw0/trackhist/pkg/axis"
	"github.com/aretw0/trackhist/pkg/domain"
)

// Config holds every tunable of the task. It is built by the host before Init
// and never changes afterwards.
type Config struct {
	PtMin   float64 `json:"ptMin" yaml:"ptMin" mapstructure:"ptMin"`
	PtMax   float64 `json:"ptMax" yaml:"ptMax" mapstructure:"ptMax"`
	EtaCut  float64 `json:"etaCut" yaml:"etaCut" mapstructure:"etaCut"`
	VtxZCut float64 `json:"vtxZCut" yaml:"vtxZCut" mapstructure:"vtxZCut"`

	// PtBins, when set, is used verbatim as the pt axis instead of the step schedule.
	PtBins []float64 `json:"ptBins,omitempty" yaml:"ptBins,omitempty" mapstructure:"ptBins"`

	VtxZBins int     `json:"vtxZBins" yaml:"vtxZBins" mapstructure:"vtxZBins"`
	VtxZMin  float64 `json:"vtxZMin" yaml:"vtxZMin" mapstructure:"vtxZMin"`
	VtxZMax  float64 `json:"vtxZMax" yaml:"vtxZMax" mapstructure:"vtxZMax"`
}

// DefaultConfig returns the standard minimum-bias selection.
func DefaultConfig() Config {
	return Config{
		PtMin:    0.2,
		PtMax:    10.0,
		EtaCut:   0.8,
		VtxZCut:  10.0,
		VtxZBins: 160,
		VtxZMin:  -20,
		VtxZMax:  20,
	}
}

// Cuts returns the selection part of the configuration.
func (c Config) Cuts() domain.Cuts {
	return domain.Cuts{PtMin: c.PtMin, PtMax: c.PtMax, EtaCut: c.EtaCut, VtxZCut: c.VtxZCut}
}

// Binning returns the axis part of the configuration.
func (c Config) Binning() domain.Binning {
	return domain.Binning{
		PtBins:   append([]float64(nil), c.PtBins...),
		VtxZBins: c.VtxZBins,
		VtxZMin:  c.VtxZMin,
		VtxZMax:  c.VtxZMax,
	}
}

// Validate checks cuts and both axes without building histograms.
func (c Config) Validate() error {
	if err := c.Cuts().Validate(); err != nil {
		return err
	}
	if _, err := c.PtAxis(); err != nil {
		return err
	}
	if _, err := c.VtxZAxis(); err != nil {
		return err
	}
	return nil
}

// PtAxis builds the pt axis, verbatim from PtBins when given.
func (c Config) PtAxis() (*axis.Axis, error) {
	if len(c.PtBins) > 0 {
		ax, err := axis.New(c.PtBins, domain.LabelPt)
		if err != nil {
			return nil, fmt.Errorf("ptBins: %w", err)
		}
		return ax, nil
	}
	ax, err := axis.Pt(c.PtMin, c.PtMax, domain.LabelPt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidAxisBounds, err)
	}
	return ax, nil
}

// VtxZAxis builds the uniform vertex-Z axis.
func (c Config) VtxZAxis() (*axis.Axis, error) {
	ax, err := axis.Uniform(c.VtxZBins, c.VtxZMin, c.VtxZMax, domain.LabelVtxZ)
	if err != nil {
		return nil, fmt.Errorf("vtxZ axis: %w", err)
	}
	return ax, nil
}
