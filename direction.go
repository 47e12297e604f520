package citygen

import (
	"image"
)

// Direction names one edge of the board. Coasts and rivers are only ever
// generated against the four cardinal directions.
type Direction string

const (
	North Direction = "n"
	East  Direction = "e"
	South Direction = "s"
	West  Direction = "w"
)

var (
	// all cardinals in the order they are walked when picking neighbouring
	// coasts & when compositing (last write wins)
	cardinals = []Direction{North, East, South, West}

	directionIndex = map[Direction]int{
		North: 0,
		East:  1,
		South: 2,
		West:  3,
	}

	reverseDirection = map[Direction]Direction{
		North: South,
		South: North,
		East:  West,
		West:  East,
	}
)

// Cardinals returns n, e, s, w in that order.
func Cardinals() []Direction {
	out := make([]Direction, len(cardinals))
	copy(out, cardinals)
	return out
}

// Valid returns if d is one of the four cardinal directions
func (d Direction) Valid() bool {
	_, ok := directionIndex[d]
	return ok
}

// Reverse returns the opposite edge (n <-> s, e <-> w)
func (d Direction) Reverse() Direction {
	r, ok := reverseDirection[d]
	if !ok {
		return d
	}
	return r
}

// index returns the position of d in Cardinals(), -1 if not a cardinal
func (d Direction) index() int {
	i, ok := directionIndex[d]
	if !ok {
		return -1
	}
	return i
}

// neighbour walks `step` places around the compass from d (wrapping)
func (d Direction) neighbour(step int) Direction {
	n := len(cardinals)
	i := (d.index() + step) % n
	if i < 0 {
		i += n
	}
	return cardinals[i]
}

// horizontal returns true for edges that run along the x axis (n, s)
func (d Direction) horizontal() bool {
	return d == North || d == South
}

// edgePoint returns where a straight line leaving `from` towards edge d
// meets the board edge.
func (d Direction) edgePoint(from image.Point, width, height int) image.Point {
	switch d {
	case West:
		return image.Pt(0, from.Y)
	case North:
		return image.Pt(from.X, 0)
	case East:
		return image.Pt(width-1, from.Y)
	case South:
		return image.Pt(from.X, height-1)
	}
	return from
}

// inward returns the unit vector pointing away from edge d, into the board.
func (d Direction) inward() image.Point {
	switch d {
	case North:
		return image.Pt(0, 1)
	case South:
		return image.Pt(0, -1)
	case East:
		return image.Pt(-1, 0)
	case West:
		return image.Pt(1, 0)
	}
	return image.Point{}
}
