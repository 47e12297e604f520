package line

import (
	"image"
)

// Between returns every point on the line from a to b (inclusive), in order
// from a. Uses the integer form of Bresenham's algorithm so it works for all
// octants.
func Between(a, b image.Point) []image.Point {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx := sign(b.X - a.X)
	sy := sign(b.Y - a.Y)

	pts := make([]image.Point, 0, maxint(dx, -dy)+1)

	e := dx + dy
	x, y := a.X, a.Y
	for {
		pts = append(pts, image.Pt(x, y))
		if x == b.X && y == b.Y {
			return pts
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// Manhattan returns a path from a to b moving only along the axes; first
// along x (at a.Y) then along y (at b.X). Each point appears once.
func Manhattan(a, b image.Point) []image.Point {
	corner := image.Pt(b.X, a.Y)
	pts := Between(a, corner)
	if corner == b {
		return pts
	}
	return append(pts, Between(corner, b)[1:]...)
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func sign(i int) int {
	switch {
	case i < 0:
		return -1
	case i > 0:
		return 1
	}
	return 0
}

func maxint(a, b int) int {
	if a > b {
		return a
	}
	return b
}
