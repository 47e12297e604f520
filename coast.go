package citygen

import (
	"image"
)

// ApplyCoasts draws each coast's field onto tiles. Field cells of 1 become
// primary & 0 become sub; an empty type leaves the tile as it is.
//
// Coasts are drawn in Cardinals() order & later coasts overwrite earlier
// ones where they overlap (ie. in the corners). Each drawn Coast has its
// Start set.
func ApplyCoasts(tiles TileGrid, coasts CoastSet, primary, sub string) {
	for _, dir := range cardinals {
		c, ok := coasts[dir]
		if !ok || c == nil || !c.HasCoast {
			continue
		}

		field := orient(dir, c.Field)
		c.Start = startPoint(dir, c.Offset, c.Config.Depth, tiles.Width(), tiles.Height())

		for i, row := range field {
			for j, v := range row {
				t := sub
				if v == 1 {
					t = primary
				}
				if t == "" {
					continue
				}
				tiles.Set(c.Start.X+j, c.Start.Y+i, t)
			}
		}
	}
}

// orient turns a field (generated with row 0 innermost .. depth-1 at the
// edge for the south coast) to match the board. North & west are flipped,
// east & west are transposed so their rows run along the x axis.
func orient(dir Direction, field NoiseField) NoiseField {
	switch dir {
	case North, West:
		field = field.reversed()
	}
	switch dir {
	case East, West:
		field = field.transposed()
	}
	return field
}

// startPoint returns where the oriented field's [0][0] sits on the board.
// offset.X moves along the edge, offset.Y inward.
func startPoint(dir Direction, offset image.Point, depth, width, height int) image.Point {
	switch dir {
	case West:
		return image.Pt(offset.Y, offset.X)
	case North:
		return offset
	case East:
		return image.Pt(width-depth+offset.Y, offset.X)
	case South:
		return image.Pt(offset.X, height-depth+offset.Y)
	}
	return offset
}
