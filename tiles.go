package citygen

// TileGrid holds tile type IDs indexed [x][y].
type TileGrid [][]string

// NewTileGrid returns a width x height grid filled with fill
func NewTileGrid(width, height int, fill string) TileGrid {
	g := make(TileGrid, width)
	for x := range g {
		g[x] = make([]string, height)
		for y := range g[x] {
			g[x][y] = fill
		}
	}
	return g
}

// MakeBlankTiles returns a grid of grass. Height defaults to width.
func MakeBlankTiles(width, height int) TileGrid {
	if height <= 0 {
		height = width
	}
	return NewTileGrid(width, height, TypeGrass)
}

// Width of the grid
func (g TileGrid) Width() int {
	return len(g)
}

// Height of the grid
func (g TileGrid) Height() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds returns if x,y is on the grid
func (g TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width() && y >= 0 && y < g.Height()
}

// At returns the type at x,y ("" if out of bounds)
func (g TileGrid) At(x, y int) string {
	if !g.InBounds(x, y) {
		return ""
	}
	return g[x][y]
}

// Set sets the type at x,y. Out of bounds writes are dropped.
func (g TileGrid) Set(x, y int, t string) {
	if !g.InBounds(x, y) {
		return
	}
	g[x][y] = t
}

// Clone returns a deep copy
func (g TileGrid) Clone() TileGrid {
	out := make(TileGrid, len(g))
	for x := range g {
		out[x] = append([]string(nil), g[x]...)
	}
	return out
}

// Equal returns if both grids have the same shape & contents
func (g TileGrid) Equal(other TileGrid) bool {
	if len(g) != len(other) {
		return false
	}
	for x := range g {
		if len(g[x]) != len(other[x]) {
			return false
		}
		for y := range g[x] {
			if g[x][y] != other[x][y] {
				return false
			}
		}
	}
	return true
}

// Count returns the number of cells of type t
func (g TileGrid) Count(t string) int {
	n := 0
	for x := range g {
		for y := range g[x] {
			if g[x][y] == t {
				n++
			}
		}
	}
	return n
}
