package citygen

import (
	"image"
)

const (
	// riverNoCoastBonus is added to the river chance on boards with no coast
	riverNoCoastBonus = 0.2

	// riverNoCoastYFalloff is near enough zero that the river runs the
	// full depth (zero itself would mean "use the default")
	riverNoCoastYFalloff = 0.0000001

	// DefaultRiverMaxCoasts is used when MakeRivers is given maxCoasts <= 0
	DefaultRiverMaxCoasts = 1
)

// MakeRivers maybe generates a river running toward one of the board's
// coasts, flowing in from the opposite edge. A river is only considered if
// the board has at most maxCoasts coasts & then with probability genChance.
// Boards with no coast get a bonus to genChance, a random edge to run to &
// a river with no y falloff so it crosses the whole board.
//
// The returned CoastSet holds only the river's source direction, ready for
// ApplyCoasts. The bool is false if no river was made.
// river is copied, the caller's value is not altered.
func (g *Generator) MakeRivers(coasts CoastSet, genChance float64, river NoiseParams, offset image.Point, maxCoasts int) (CoastSet, bool, error) {
	if maxCoasts <= 0 {
		maxCoasts = DefaultRiverMaxCoasts
	}

	targets := coasts.Directions()
	if len(targets) < 1 {
		genChance += riverNoCoastBonus
		river.Defaults.XFalloffPerY = 0
		river.Defaults.YFalloff = riverNoCoastYFalloff
		targets = append(targets, randomDirection(g.rng, cardinals))
	}

	if len(targets) > maxCoasts || g.rng.Float64() > genChance {
		g.log.Debug("no river", "coasts", len(targets), "max", maxCoasts)
		return nil, false, nil
	}

	target := randomDirection(g.rng, targets)
	from := target.Reverse()

	// nb. per direction params are cleared; the river only uses call level
	// defaults & the offset
	river.Coasts = NewCoastSet()
	river.Coasts[from].HasCoast = true
	river.Coasts[from].Offset = offset

	out, err := g.GenerateCoasts(river)
	if err != nil {
		return nil, false, err
	}

	g.log.Debug("river", "from", from, "to", target, "offset", offset)
	return out, true, nil
}
