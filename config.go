package citygen

import (
	"image"
	"log/slog"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FalloffType picks the curve used when noise decays with distance.
type FalloffType string

const (
	Linear      FalloffType = "linear"
	Logarithmic FalloffType = "logarithmic"
)

const (
	// AmountRandom tells GenerateCoasts to roll the number of coasts
	AmountRandom = -1

	// fallbacks used when neither the direction nor the call sets a value
	fallbackVariation     = 0.05
	fallbackXCutoff       = 0.3
	fallbackLandThreshold = 0.20
	fallbackFalloffType   = Logarithmic
)

// fallbackAmountWeights are tested in order, each success adds a coast
var fallbackAmountWeights = []float64{1, 0.5, 0.5, 0}

// CoastParams is one layer of coast settings. Any zero value is "unset" and
// is filled from the next layer down (per direction -> per call -> fallback).
type CoastParams struct {
	// Depth rows of noise extending inward from the edge.
	// Default: a quarter of the board height.
	Depth int `yaml:"depth"`

	// Variation amplitude of per cell noise, drawn from [-Variation, Variation)
	Variation float64 `yaml:"variation"`

	// BaseVariation range the base value of each cell is drawn from.
	// Unset if both ends are zero. Default: [0, 1]
	BaseVariation [2]float64 `yaml:"base_variation"`

	// YFalloff how quickly noise weakens moving inward (by row).
	// Default: Depth / 50
	YFalloff     float64     `yaml:"y_falloff"`
	YFalloffType FalloffType `yaml:"y_falloff_type"`

	// XCutoff fraction of the width (measured from the centre) exempt
	// from lateral falloff
	XCutoff float64 `yaml:"x_cutoff"`

	// XFalloff how quickly noise weakens moving sideways past the cutoff.
	// Default: width / 150
	XFalloff     float64     `yaml:"x_falloff"`
	XFalloffType FalloffType `yaml:"x_falloff_type"`

	// XFalloffPerY scales lateral falloff with depth
	XFalloffPerY float64 `yaml:"x_falloff_per_y"`

	// LandThreshold noise above this becomes 1 (land)
	LandThreshold float64 `yaml:"land_threshold"`
}

// CoastConfig is a fully resolved set of coast parameters.
type CoastConfig struct {
	Depth         int
	Variation     float64
	BaseVariation [2]float64
	YFalloff      float64
	YFalloffType  FalloffType
	XCutoff       float64
	XFalloff      float64
	XFalloffType  FalloffType
	XFalloffPerY  float64
	LandThreshold float64
}

// ResolveCoastConfig merges the given layers (most specific first) on top of
// the fallback values for a board of the given size.
func ResolveCoastConfig(width, height int, layers ...CoastParams) CoastConfig {
	cfg := CoastConfig{}

	for _, l := range layers {
		if cfg.Depth == 0 {
			cfg.Depth = l.Depth
		}
		if cfg.Variation == 0 {
			cfg.Variation = l.Variation
		}
		if cfg.BaseVariation == [2]float64{} {
			cfg.BaseVariation = l.BaseVariation
		}
		if cfg.YFalloff == 0 {
			cfg.YFalloff = l.YFalloff
		}
		if cfg.YFalloffType == "" {
			cfg.YFalloffType = l.YFalloffType
		}
		if cfg.XCutoff == 0 {
			cfg.XCutoff = l.XCutoff
		}
		if cfg.XFalloff == 0 {
			cfg.XFalloff = l.XFalloff
		}
		if cfg.XFalloffType == "" {
			cfg.XFalloffType = l.XFalloffType
		}
		if cfg.XFalloffPerY == 0 {
			cfg.XFalloffPerY = l.XFalloffPerY
		}
		if cfg.LandThreshold == 0 {
			cfg.LandThreshold = l.LandThreshold
		}
	}

	// nb. order matters: YFalloff depends on the resolved depth
	if cfg.Depth == 0 {
		cfg.Depth = int(math.Floor(float64(height) / 4))
	}
	if cfg.Variation == 0 {
		cfg.Variation = fallbackVariation
	}
	if cfg.BaseVariation == [2]float64{} {
		cfg.BaseVariation = [2]float64{0, 1}
	}
	if cfg.YFalloff == 0 {
		cfg.YFalloff = float64(cfg.Depth) / 50
	}
	if cfg.YFalloffType == "" {
		cfg.YFalloffType = fallbackFalloffType
	}
	if cfg.XCutoff == 0 {
		cfg.XCutoff = fallbackXCutoff
	}
	if cfg.XFalloff == 0 {
		cfg.XFalloff = float64(width) / 150
	}
	if cfg.XFalloffType == "" {
		cfg.XFalloffType = fallbackFalloffType
	}
	if cfg.LandThreshold == 0 {
		cfg.LandThreshold = fallbackLandThreshold
	}

	return cfg
}

// NoiseParams configures a call to GenerateCoasts.
type NoiseParams struct {
	// Width of the board, required
	Width int `yaml:"width"`

	// Height of the board, Width if not given
	Height int `yaml:"height"`

	// Coasts explicitly sets which directions have coasts (& any per direction
	// settings). If nil directions are picked at random using Amount.
	Coasts CoastSet `yaml:"-"`

	// Amount of coasts to pick (0-4). AmountRandom rolls against AmountWeights.
	Amount int `yaml:"amount"`

	// AmountWeights chance of each additional coast, tested in order until
	// one fails. Default [1, 0.5, 0.5, 0]
	AmountWeights []float64 `yaml:"amount_weights"`

	// Defaults applied to every direction that doesn't set its own value
	Defaults CoastParams `yaml:"defaults"`
}

// height returns Height, defaulting to Width
func (p *NoiseParams) height() int {
	if p.Height <= 0 {
		return p.Width
	}
	return p.Height
}

// validate checks NoiseParams for values we can't generate from
func (p *NoiseParams) validate() error {
	if p.Width <= 0 {
		return errors.Wrapf(ErrInvalidParams, "width %d", p.Width)
	}
	if p.Height < 0 {
		return errors.Wrapf(ErrInvalidParams, "height %d", p.Height)
	}
	if p.Coasts == nil && (p.Amount < AmountRandom || p.Amount > len(cardinals)) {
		return errors.Wrapf(ErrInvalidParams, "amount %d", p.Amount)
	}
	if p.Defaults.Depth < 0 {
		return errors.Wrapf(ErrInvalidParams, "depth %d", p.Defaults.Depth)
	}
	for dir, c := range p.Coasts {
		if !dir.Valid() {
			return errors.Wrapf(ErrInvalidParams, "direction %q", dir)
		}
		if c != nil && c.Params.Depth < 0 {
			return errors.Wrapf(ErrInvalidParams, "depth %d (%s)", c.Params.Depth, dir)
		}
	}
	return nil
}

// RiverConfig configures the optional river.
type RiverConfig struct {
	// Chance a river is generated at all
	Chance float64 `yaml:"chance"`

	// MaxCoasts a river is only drawn if the board has at most this many
	// coasts. Default 1
	MaxCoasts int `yaml:"max_coasts"`

	// Offset of the river from the edge it flows from
	Offset image.Point `yaml:"-"`

	// Params of the river noise. Width is how wide the river is (default
	// an eighth of the board), Defaults.Depth how far it runs (default
	// the whole board). Height is ignored.
	Params NoiseParams `yaml:"params"`
}

// SmoothConfig configures the smoothing pass.
type SmoothConfig struct {
	Threshold float64 `yaml:"threshold"`
	Radius    int     `yaml:"radius"`
	Times     int     `yaml:"times"`
}

// LandValueConfig configures land value generation.
type LandValueConfig struct {
	// Base value every land cell starts from
	Base float64 `yaml:"base"`

	// Noise amplitude applied on top of Base
	Noise float64 `yaml:"noise"`

	// Scale of the noise; larger values give broader features
	Scale float64 `yaml:"scale"`

	// WaterBonus added in full next to water, fading to 0 at WaterDistance
	WaterBonus    float64 `yaml:"water_bonus"`
	WaterDistance int     `yaml:"water_distance"`
}

// MapConfig configures a full map build (see Generator.Build).
// Tile type names default to the DefaultRegistry IDs.
type MapConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	Population int `yaml:"population"`

	// Land tile everything starts as & the coast is drawn with
	LandType string `yaml:"land_type"`

	// WaterType sea & rivers
	WaterType string `yaml:"water_type"`

	// Coast noise settings; Width/Height are taken from the map
	Coast NoiseParams `yaml:"coast"`

	// River settings, nil for no river
	River *RiverConfig `yaml:"river"`

	// Smoothing settings, nil to skip smoothing
	Smooth *SmoothConfig `yaml:"smooth"`

	// LandValue settings
	LandValue LandValueConfig `yaml:"land_value"`

	// StationArea fraction of the board (around the centre) the main
	// station may be placed in
	StationArea float64 `yaml:"station_area"`
}

// DefaultMapConfig returns a reasonable config for a board of the given size.
func DefaultMapConfig(width, height int) *MapConfig {
	return &MapConfig{
		Width:      width,
		Height:     height,
		Population: 25,
		LandType:   TypeGrass,
		WaterType:  TypeWater,
		Coast:      NoiseParams{Amount: AmountRandom},
		River: &RiverConfig{
			Chance:    0.5,
			MaxCoasts: 1,
			Params: NoiseParams{
				Width: width / 8,
				Defaults: CoastParams{
					Variation:     0.00001,
					BaseVariation: [2]float64{0.8, 1},
					YFalloff:      0.00001,
					YFalloffType:  Linear,
					XCutoff:       0.7,
					XFalloff:      0.4,
					XFalloffType:  Linear,
					XFalloffPerY:  0.3,
					LandThreshold: 0.4,
				},
			},
		},
		Smooth: &SmoothConfig{
			Threshold: DefaultSmoothThreshold,
			Radius:    DefaultSmoothRadius,
			Times:     DefaultSmoothTimes,
		},
		LandValue: LandValueConfig{
			Base:          100,
			Noise:         50,
			Scale:         8,
			WaterBonus:    60,
			WaterDistance: 4,
		},
		StationArea: 0.3,
	}
}

// LoadMapConfig reads a MapConfig from yaml. Values not in the file keep
// their DefaultMapConfig value.
func LoadMapConfig(path string) (*MapConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var size struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	}
	if err := yaml.Unmarshal(raw, &size); err != nil {
		return nil, errors.Wrap(err, "map config")
	}
	if size.Height == 0 {
		size.Height = size.Width
	}

	cfg := DefaultMapConfig(size.Width, size.Height)
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrap(err, "map config")
	}
	return cfg, nil
}

// Config holds settings for a Generator.
type Config struct {
	// Seed for rng (random number chosen if not set). Ignored if Rand is set.
	Seed int64

	// Rand overrides the rng entirely, mostly useful for tests
	Rand Rand

	// Logger for debug output. Nothing is logged if not set.
	Logger *slog.Logger
}
