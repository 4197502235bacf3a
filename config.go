package warp

import (
	"fmt"
	"io"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the tuning constants of the warp. The defaults were
// calibrated against real track gauges and map scales, in metres; they have
// no analytic derivation.
type Config struct {
	// ControlCorrection scales the extra control arm length that makes a
	// cubic segment hug a circular arc.
	ControlCorrection float64 `envconfig:"CONTROL_CORRECTION" default:"0.193" toml:"control_correction"`
	// SlewCutoff is the smallest dot product of a joining segment's end
	// tangents for which it is still represented as concentric arcs.
	SlewCutoff float64 `envconfig:"SLEW_CUTOFF" default:"-0.5" toml:"slew_cutoff"`
	// ArclenAccuracy is the absolute accuracy of each segment's length.
	ArclenAccuracy float64 `envconfig:"ARCLEN_ACCURACY" default:"1e-9" toml:"arclen_accuracy"`
	// Epsilon is the inverse search tolerance as a fraction of the
	// rendering scale.
	Epsilon float64 `envconfig:"EPSILON" default:"0.01" toml:"epsilon"`
	// Scale is the default size of a rendering pixel in world units, used by
	// new cursors.
	Scale float64 `envconfig:"SCALE" default:"1" toml:"scale"`
	// MaxDoublings bounds the bracketing phase of the inverse search.
	MaxDoublings int `envconfig:"MAX_DOUBLINGS" default:"64" toml:"max_doublings"`
	// MaxProbes bounds the total number of function evaluations of one
	// inverse search.
	MaxProbes int `envconfig:"MAX_PROBES" default:"200" toml:"max_probes"`
	// DefaultMargin is reported for a side without any boundary.
	DefaultMargin float64 `envconfig:"DEFAULT_MARGIN" default:"20" toml:"default_margin"`
	// MaxMargin caps every reported margin.
	MaxMargin float64 `envconfig:"MAX_MARGIN" default:"700" toml:"max_margin"`
}

// DefaultConfig returns the calibrated defaults.
func DefaultConfig() Config {
	return Config{
		ControlCorrection: 0.193,
		SlewCutoff:        -0.5,
		ArclenAccuracy:    1e-9,
		Epsilon:           0.01,
		Scale:             1,
		MaxDoublings:      64,
		MaxProbes:         200,
		DefaultMargin:     20,
		MaxMargin:         700,
	}
}

// LoadConfig reads the configuration from WARP_* environment variables,
// for example WARP_DEFAULT_MARGIN. Unset variables keep their defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("warp", &cfg); err != nil {
		return Config{}, fmt.Errorf("warp: loading config: %w", err)
	}
	return cfg, nil
}

// DecodeConfig reads a TOML document from r. Keys that are absent keep
// their defaults.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("warp: decoding config: %w", err)
	}
	return cfg, nil
}
