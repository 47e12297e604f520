package citygen

import (
	"image"

	"github.com/pkg/errors"
)

// TileBoard is an in memory Board built from a TileGrid.
type TileBoard struct {
	width      int
	height     int
	population int

	cells [][]*tileCell

	coasts  CoastSet
	station image.Point
}

// tileCell is a Cell of a TileBoard
type tileCell struct {
	board *TileBoard
	pos   image.Point

	terrain     *TileType
	content     *TileType
	underground *TileType
}

// NewBoard builds a board from tile type IDs. Every ID must be known to reg.
func NewBoard(tiles TileGrid, reg TypeRegistry, population int) (*TileBoard, error) {
	b := &TileBoard{
		width:      tiles.Width(),
		height:     tiles.Height(),
		population: population,
		coasts:     NewCoastSet(),
		station:    image.Pt(tiles.Width()/2, tiles.Height()/2),
	}

	types := newTypeCache(reg)

	b.cells = make([][]*tileCell, b.width)
	for x := range tiles {
		b.cells[x] = make([]*tileCell, b.height)
		for y := range tiles[x] {
			t, err := types.get(tiles[x][y])
			if err != nil {
				return nil, errors.Wrapf(err, "tile (%d,%d)", x, y)
			}
			b.cells[x][y] = &tileCell{board: b, pos: image.Pt(x, y), terrain: t}
		}
	}

	return b, nil
}

// Width of the board
func (b *TileBoard) Width() int {
	return b.width
}

// Height of the board
func (b *TileBoard) Height() int {
	return b.height
}

// Population target
func (b *TileBoard) Population() int {
	return b.population
}

// SetPopulation sets the population target
func (b *TileBoard) SetPopulation(p int) {
	b.population = p
}

// Coasts of the map this board was built from
func (b *TileBoard) Coasts() CoastSet {
	return b.coasts
}

// SetCoasts records which edges are coast
func (b *TileBoard) SetCoasts(c CoastSet) {
	b.coasts = c
}

// MainStation position
func (b *TileBoard) MainStation() image.Point {
	return b.station
}

// SetMainStation records the main station position
func (b *TileBoard) SetMainStation(p image.Point) {
	b.station = p
}

// Cell returns the cell at x,y or nil
func (b *TileBoard) Cell(x, y int) Cell {
	c := b.cell(x, y)
	if c == nil {
		// nb. a nil *tileCell in a Cell interface isn't == nil
		return nil
	}
	return c
}

func (b *TileBoard) cell(x, y int) *tileCell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return nil
	}
	return b.cells[x][y]
}

// Area returns all cells within radius of x,y, scanning x then y
func (b *TileBoard) Area(x, y, radius int) []Cell {
	out := []Cell{}
	for dx := x - radius; dx <= x+radius; dx++ {
		for dy := y - radius; dy <= y+radius; dy++ {
			c := b.cell(dx, dy)
			if c == nil {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}

// Terrain returns the terrain type IDs of the board
func (b *TileBoard) Terrain() TileGrid {
	return b.grid(func(c *tileCell) *TileType { return c.terrain })
}

// Contents returns content type IDs ("" where nothing is built)
func (b *TileBoard) Contents() TileGrid {
	return b.grid(func(c *tileCell) *TileType { return c.content })
}

// Underground returns underground content type IDs
func (b *TileBoard) Underground() TileGrid {
	return b.grid(func(c *tileCell) *TileType { return c.underground })
}

func (b *TileBoard) grid(fn func(c *tileCell) *TileType) TileGrid {
	out := NewTileGrid(b.width, b.height, "")
	for x := range b.cells {
		for y, c := range b.cells[x] {
			if t := fn(c); t != nil {
				out[x][y] = t.ID
			}
		}
	}
	return out
}

// Restore replaces terrain & content from saved grids. content and
// underground may be nil; "" entries mean nothing is there.
func (b *TileBoard) Restore(terrain, content, underground TileGrid, reg TypeRegistry) error {
	if terrain.Width() != b.width || terrain.Height() != b.height {
		return errors.Wrapf(ErrInvalidParams, "saved map is %dx%d, board is %dx%d",
			terrain.Width(), terrain.Height(), b.width, b.height)
	}

	types := newTypeCache(reg)
	lookup := func(g TileGrid, x, y int) (*TileType, error) {
		id := g.At(x, y)
		if id == "" {
			return nil, nil
		}
		return types.get(id)
	}

	for x := range b.cells {
		for y, c := range b.cells[x] {
			t, err := types.get(terrain[x][y])
			if err != nil {
				return errors.Wrapf(err, "tile (%d,%d)", x, y)
			}
			c.terrain = t

			c.content, err = lookup(content, x, y)
			if err != nil {
				return errors.Wrapf(err, "content (%d,%d)", x, y)
			}
			c.underground, err = lookup(underground, x, y)
			if err != nil {
				return errors.Wrapf(err, "underground (%d,%d)", x, y)
			}
		}
	}
	return nil
}

// Pos of the cell
func (c *tileCell) Pos() image.Point {
	return c.pos
}

// Type of terrain
func (c *tileCell) Type() *TileType {
	return c.terrain
}

// Content on the cell, nil if none
func (c *tileCell) Content() *TileType {
	return c.content
}

// Underground content of the cell, nil if none
func (c *tileCell) Underground() *TileType {
	return c.underground
}

// Buildable returns if t's footprint, anchored here, sits entirely on
// empty buildable terrain
func (c *tileCell) Buildable(t *TileType) bool {
	size := t.Footprint()
	for dx := 0; dx < size.X; dx++ {
		for dy := 0; dy < size.Y; dy++ {
			o := c.board.cell(c.pos.X+dx, c.pos.Y+dy)
			if o == nil || o.terrain == nil || !o.terrain.Buildable || o.content != nil {
				return false
			}
		}
	}
	return true
}

// ChangeContent sets the content of this cell only
func (c *tileCell) ChangeContent(t *TileType) {
	c.content = t
}

// ChangeUndergroundContent sets what runs beneath this cell
func (c *tileCell) ChangeUndergroundContent(t *TileType) {
	c.underground = t
}
