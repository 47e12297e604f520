package citygen

import (
	"image"
	"image/color"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

const (
	// weight of a diagonal step when measuring distance over the board
	diagonalWeight = 1.375

	// landValueBands the colour ramp is clamped to this many steps
	landValueBands = 6
)

// LandValues returns a value for every cell of the board by [x][y].
// Land gets cfg.Base, plus simplex noise of amplitude cfg.Noise, plus up to
// cfg.WaterBonus for being close to water. Water cells are worth 0.
func LandValues(b Board, cfg LandValueConfig, seed int64) [][]float64 {
	noise := opensimplex.NewNormalized(seed)
	nearWater := waterProximity(b, cfg.WaterDistance)

	out := make([][]float64, b.Width())
	for x := range out {
		out[x] = make([]float64, b.Height())
		for y := range out[x] {
			c := b.Cell(x, y)
			if c == nil || isWater(c) {
				continue
			}

			v := cfg.Base
			if cfg.Scale > 0 {
				// nb. Eval2 of a normalized noise is [0, 1)
				v += cfg.Noise * (noise.Eval2(float64(x)/cfg.Scale, float64(y)/cfg.Scale)*2 - 1)
			}
			v += cfg.WaterBonus * nearWater[image.Pt(x, y)]

			out[x][y] = math.Max(0, v)
		}
	}

	return out
}

// isWater returns if the terrain of c is water
func isWater(c Cell) bool {
	return c.Type() != nil && c.Type().Flags.Has(FlagWater)
}

// waterProximity does a breadth first walk out from all water cells up to
// maxDistance, returning for each reached cell how close it is to water as
// a ratio (1 next to the water, falling toward 0 at maxDistance).
func waterProximity(b Board, maxDistance int) map[image.Point]float64 {
	out := map[image.Point]float64{}
	if maxDistance <= 0 {
		return out
	}
	limit := float64(maxDistance + 1)

	distance := map[image.Point]float64{}
	queue := []image.Point{}
	for x := 0; x < b.Width(); x++ {
		for y := 0; y < b.Height(); y++ {
			c := b.Cell(x, y)
			if c != nil && isWater(c) {
				p := image.Pt(x, y)
				distance[p] = 1
				queue = append(queue, p)
			}
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range b.Area(current.X, current.Y, 1) {
			p := n.Pos()
			if _, seen := distance[p]; seen {
				continue
			}

			weight := 1.0
			if p.X != current.X && p.Y != current.Y {
				weight = diagonalWeight
			}
			d := distance[current] + weight
			if d > limit {
				continue
			}

			distance[p] = d
			out[p] = (limit + 1 - d) / limit
			queue = append(queue, p)
		}
	}

	return out
}

// LandValueRange returns the lowest & highest non zero land values
func LandValueRange(values [][]float64) (float64, float64) {
	lo, hi := 0.0, 0.0
	first := true
	for x := range values {
		for _, v := range values[x] {
			if v <= 0 {
				continue
			}
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

// LandValueColour maps a value onto a green (cheap) to red (expensive) ramp,
// banded into a handful of steps so similar values share a colour.
func LandValueColour(v, lo, hi float64) color.Color {
	diff := math.Max(hi-lo, 1)
	band := math.Max(diff/landValueBands, 1)

	relative := (math.Round(v/band)*band - lo) / diff
	relative = clamp01(relative)

	hue := (100 - 100*relative) / 360
	saturation := 1 - 0.2*relative
	lightness := (0.75 + 0.25*relative) / 2

	return hslToRGBA(hue, saturation, lightness)
}

// hslToRGBA converts hue, saturation, lightness (all 0-1) to a colour
func hslToRGBA(h, s, l float64) color.RGBA {
	if s == 0 {
		v := uint8(math.Round(l * 255))
		return color.RGBA{v, v, v, 255}
	}

	q := l * (1 + s)
	if l >= 0.5 {
		q = l + s - l*s
	}
	p := 2*l - q

	hue := func(t float64) uint8 {
		if t < 0 {
			t++
		}
		if t > 1 {
			t--
		}
		var v float64
		switch {
		case t < 1.0/6:
			v = p + (q-p)*6*t
		case t < 1.0/2:
			v = q
		case t < 2.0/3:
			v = p + (q-p)*(2.0/3-t)*6
		default:
			v = p
		}
		return uint8(math.Round(v * 255))
	}

	return color.RGBA{hue(h + 1.0/3), hue(h), hue(h - 1.0/3), 255}
}
