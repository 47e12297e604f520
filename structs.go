package citygen

import (
	"image"

	"github.com/google/uuid"
)

// NoiseField is a binary field of [depth][lateral] cells, 1 being land
// (the coast's primary type) & 0 being water (its sub type).
type NoiseField [][]uint8

// Rows returns the number of rows (depth for an un-oriented field)
func (f NoiseField) Rows() int {
	return len(f)
}

// Cols returns the number of columns
func (f NoiseField) Cols() int {
	if len(f) == 0 {
		return 0
	}
	return len(f[0])
}

// reversed returns a copy with the row order flipped
func (f NoiseField) reversed() NoiseField {
	out := make(NoiseField, len(f))
	for i, row := range f {
		out[len(f)-1-i] = append([]uint8(nil), row...)
	}
	return out
}

// transposed returns a copy with rows & columns swapped
func (f NoiseField) transposed() NoiseField {
	out := make(NoiseField, f.Cols())
	for j := range out {
		out[j] = make([]uint8, f.Rows())
		for i := range f {
			out[j][i] = f[i][j]
		}
	}
	return out
}

// Coast holds generation state for one edge of the board.
type Coast struct {
	HasCoast bool

	// Params set only for this direction, override call level defaults
	Params CoastParams `json:"-"`

	// Offset shifts where the field is drawn; X runs along the edge and Y
	// runs inward
	Offset image.Point `json:",omitempty"`

	// Config the resolved parameters used to build Field
	Config CoastConfig `json:"-"`

	// Field raw noise, as generated (not oriented to the board)
	Field NoiseField `json:"-"`

	// Start board position of the oriented field's top left, set when
	// the coast is applied to tiles
	Start image.Point
}

// CoastSet maps each cardinal direction to its coast.
type CoastSet map[Direction]*Coast

// NewCoastSet returns a set with every direction present & no coasts.
func NewCoastSet() CoastSet {
	cs := CoastSet{}
	for _, d := range cardinals {
		cs[d] = &Coast{}
	}
	return cs
}

// Has returns if direction d has a coast
func (cs CoastSet) Has(d Direction) bool {
	c, ok := cs[d]
	return ok && c != nil && c.HasCoast
}

// Directions returns the directions with a coast, in Cardinals() order
func (cs CoastSet) Directions() []Direction {
	out := []Direction{}
	for _, d := range cardinals {
		if cs.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// LandDirections returns the directions without a coast, in Cardinals()
// order. These are the edges connected to the rest of the world.
func (cs CoastSet) LandDirections() []Direction {
	out := []Direction{}
	for _, d := range cardinals {
		if !cs.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// landConnections returns LandDirections, or one random direction if every
// edge is coast (something has to connect the city to the outside).
func (cs CoastSet) landConnections(r Rand) []Direction {
	land := cs.LandDirections()
	if len(land) < 1 {
		land = append(land, randomDirection(r, cardinals))
	}
	return land
}

// ExclusionRule rejects placement if any cell within Radius (or that cell's
// content) has one of Flags.
type ExclusionRule struct {
	Radius int
	Flags  Flags
}

// Map is the result of a full map build.
type Map struct {
	// ID of this map
	ID uuid.UUID

	// Seed used for the rng (0 if a custom Rand was given)
	Seed int64

	Width  int
	Height int

	// Population target the initial housing was placed for
	Population int

	// Tiles terrain type IDs by [x][y]
	Tiles TileGrid

	// Contents & Underground type IDs by [x][y] ("" where empty). Filled
	// from Board when the map is saved.
	Contents    TileGrid `json:",omitempty"`
	Underground TileGrid `json:",omitempty"`

	// Coasts of the map (no Fields), needed to know which edges connect to land
	Coasts CoastSet

	// River the river coast, if one was drawn
	River CoastSet `json:",omitempty"`

	// MainStation position of the main station
	MainStation image.Point

	// LandValue by [x][y]
	LandValue [][]float64 `json:",omitempty"`

	// Board live board the map was built into
	Board *TileBoard `json:"-"`
}
