package citygen

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidParams is returned for parameters generation can't work with
	// (non positive board size, negative depth, unknown falloff ..)
	ErrInvalidParams = errors.New("invalid generation parameters")
)

// GenerateCoasts picks which edges of the board are coast (unless
// p.Coasts says) & generates a noise field for each of them.
//
// If p.Coasts is given it is filled in place & returned.
func (g *Generator) GenerateCoasts(p NoiseParams) (CoastSet, error) {
	err := p.validate()
	if err != nil {
		return nil, err
	}

	width, height := p.Width, p.height()

	coasts := p.Coasts
	if coasts == nil {
		coasts = g.chooseCoasts(p.Amount, p.AmountWeights)
	}

	for _, dir := range cardinals {
		c, ok := coasts[dir]
		if !ok || c == nil || !c.HasCoast {
			continue
		}

		c.Config = ResolveCoastConfig(width, height, c.Params, p.Defaults)
		if err := c.Config.validate(); err != nil {
			return nil, errors.Wrapf(err, "coast %s", dir)
		}

		lateral := width
		if !dir.horizontal() {
			lateral = height
		}
		c.Field = noiseField(c.Config, lateral, g.rng)
	}

	g.log.Debug("generated coasts", "coasts", coasts.Directions(), "width", width, "height", height)
	return coasts, nil
}

// chooseCoasts decides how many & which directions have coasts.
// Coasts after the first are the primary's neighbours, alternating
// left & right of it.
func (g *Generator) chooseCoasts(amount int, weights []float64) CoastSet {
	coasts := NewCoastSet()

	if amount == AmountRandom {
		if len(weights) == 0 {
			weights = fallbackAmountWeights
		}
		amount = 0
		for _, w := range weights {
			if 1-g.rng.Float64() < w {
				amount++
			} else {
				break
			}
		}
	}

	switch {
	case amount <= 0:
		// no coasts, downstream picks a land connection itself
	case amount >= len(cardinals):
		for _, c := range coasts {
			c.HasCoast = true
		}
	default:
		primary := randomDirection(g.rng, cardinals)
		coasts[primary].HasCoast = true

		step := -1
		if g.rng.Float64() >= 0.5 {
			step = 1
		}
		for i := 1; i < amount; i++ {
			coasts[primary.neighbour(step)].HasCoast = true
			step *= -1
		}
	}

	return coasts
}

// validate checks a resolved config
func (c CoastConfig) validate() error {
	if c.Depth < 0 {
		return errors.Wrapf(ErrInvalidParams, "depth %d", c.Depth)
	}
	for _, t := range []FalloffType{c.YFalloffType, c.XFalloffType} {
		if t != Linear && t != Logarithmic {
			return errors.Wrapf(ErrInvalidParams, "falloff type %q", t)
		}
	}
	return nil
}

// noiseField builds a cfg.Depth x lateral binary field. Row i is the
// distance inward, column j the position along the edge.
func noiseField(cfg CoastConfig, lateral int, r Rand) NoiseField {
	half := float64(lateral) / 2
	cutoffStart := half - half*cfg.XCutoff

	field := make(NoiseField, cfg.Depth)
	for i := range field {
		field[i] = make([]uint8, lateral)
		yf := yFalloff(cfg, i)

		for j := 0; j < lateral; j++ {
			xf := 1.0
			dist := math.Abs(half - (float64(j) + 0.5))
			relativeX := 1 - dist/half

			if relativeX < cfg.XCutoff {
				xf = xFalloff(cfg, dist-cutoffStart)
				xf *= 1 - cfg.XFalloffPerY*safeLog(float64(i))
			}

			n := (randRange(r, cfg.BaseVariation[0], cfg.BaseVariation[1]) +
				randRange(r, -cfg.Variation, cfg.Variation)) * yf * xf

			if n > cfg.LandThreshold {
				field[i][j] = 1
			}
		}
	}

	return field
}

// yFalloff for row i; only the logarithmic curve is clamped
func yFalloff(cfg CoastConfig, i int) float64 {
	switch cfg.YFalloffType {
	case Linear:
		return 1 - cfg.YFalloff*float64(i)
	case Logarithmic:
		f := 1 - safeLog(1+cfg.YFalloff*float64(i))
		if f < 0 {
			f = 0
		}
		return f
	}
	return 0
}

// xFalloff for a cell xDepth past the lateral cutoff; only the
// logarithmic curve is clamped
func xFalloff(cfg CoastConfig, xDepth float64) float64 {
	switch cfg.XFalloffType {
	case Linear:
		return 1 - cfg.XFalloff*xDepth
	case Logarithmic:
		f := 1 - cfg.XFalloff*safeLog(xDepth)
		if f < 0 {
			f = 0
		}
		return f
	}
	return 0
}

// safeLog is ln(x) for x > 0 and 0 otherwise, so falloffs never go NaN / Inf.
// At row 0 this makes the per row lateral term a no-op.
func safeLog(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log(x)
}
