package citygen

import (
	"image"

	"github.com/pkg/errors"
)

const (
	// MaxPlacementAttempts random positions tried before PlaceBuilding gives up
	MaxPlacementAttempts = 100
)

var (
	// ErrPlacementFailed is returned when no valid position was found within
	// MaxPlacementAttempts. The board is left untouched; it's up to the caller
	// to relax the rules or skip the building.
	ErrPlacementFailed = errors.New("couldn't place building")
)

// PlaceBuilding puts a building of type typeID somewhere in the central
// includedArea (0-1 along each axis) of the board. Positions are tried at
// random; a position is rejected if the building isn't buildable there or
// if any cell within an exclusion's radius (terrain or content) carries one
// of its flags.
//
// On success the anchor cell's content is set & the position returned.
func (g *Generator) PlaceBuilding(b Board, typeID string, includedArea float64, exclusions ...ExclusionRule) (image.Point, error) {
	t, err := g.types.get(typeID)
	if err != nil {
		return image.Point{}, err
	}

	lo, hi := includedBounds(b.Width(), b.Height(), includedArea)

	for i := 0; i < MaxPlacementAttempts; i++ {
		x := randInt(g.rng, lo[0], hi[0])
		y := randInt(g.rng, lo[1], hi[1])

		c := b.Cell(x, y)
		if c == nil || !placeable(b, c, t, exclusions) {
			continue
		}

		c.ChangeContent(t)
		g.log.Debug("placed building", "type", typeID, "x", x, "y", y, "attempts", i+1)
		return image.Pt(x, y), nil
	}

	return image.Point{}, errors.Wrapf(ErrPlacementFailed, "%s after %d attempts", typeID, MaxPlacementAttempts)
}

// includedBounds returns the (inclusive, possibly fractional) min & max x,y
// of the centred region covering includedArea of each axis
func includedBounds(width, height int, includedArea float64) ([2]float64, [2]float64) {
	inverted := 1 - clamp01(includedArea)
	horBorder := float64(width) / 2 * inverted
	vertBorder := float64(height) / 2 * inverted

	lo := [2]float64{horBorder, vertBorder}
	hi := [2]float64{float64(width) - horBorder - 1, float64(height) - vertBorder - 1}
	return lo, hi
}

// placeable checks t can go on c given the exclusion rules
func placeable(b Board, c Cell, t *TileType, exclusions []ExclusionRule) bool {
	pos := c.Pos()
	for _, ex := range exclusions {
		if ex.Flags.Len() == 0 {
			continue
		}
		for _, n := range b.Area(pos.X, pos.Y, ex.Radius) {
			if n.Type() != nil && ex.Flags.Intersects(n.Type().Flags) {
				return false
			}
			if n.Content() != nil && ex.Flags.Intersects(n.Content().Flags) {
				return false
			}
		}
	}
	return c.Buildable(t)
}
