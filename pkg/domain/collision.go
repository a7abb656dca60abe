package domain

// Track is a reconstructed charged-particle track.
type Track struct {
	Pt  float64 `json:"pt" yaml:"pt" mapstructure:"pt"`
	Eta float64 `json:"eta" yaml:"eta" mapstructure:"eta"`
}

// Collision is one event: the primary vertex position along the beam and the
// tracks associated with it.
type Collision struct {
	ID     int64   `json:"id,omitempty" yaml:"id,omitempty" mapstructure:"id"`
	PosZ   float64 `json:"posZ" yaml:"posZ" mapstructure:"posZ"`
	Tracks []Track `json:"tracks" yaml:"tracks" mapstructure:"tracks"`
}
