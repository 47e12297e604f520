package citygen

import (
	"image"
	"testing"
)

// edgeField is land on the inner row & water on the outer one
func edgeField() NoiseField {
	return NoiseField{
		{1, 1, 1, 1},
		{0, 0, 0, 0},
	}
}

func singleCoast(dir Direction, field NoiseField, offset image.Point) CoastSet {
	cs := NewCoastSet()
	cs[dir] = &Coast{
		HasCoast: true,
		Offset:   offset,
		Config:   CoastConfig{Depth: field.Rows()},
		Field:    field,
	}
	return cs
}

func TestApplyCoastsOrientation(t *testing.T) {
	cases := []struct {
		dir   Direction
		start image.Point
		water func(x, y int) bool
		land  func(x, y int) bool
	}{
		{
			dir:   North,
			start: image.Pt(0, 0),
			water: func(x, y int) bool { return y == 0 },
			land:  func(x, y int) bool { return y == 1 },
		},
		{
			dir:   South,
			start: image.Pt(0, 2),
			water: func(x, y int) bool { return y == 3 },
			land:  func(x, y int) bool { return y == 2 },
		},
		{
			dir:   West,
			start: image.Pt(0, 0),
			water: func(x, y int) bool { return x == 0 },
			land:  func(x, y int) bool { return x == 1 },
		},
		{
			dir:   East,
			start: image.Pt(2, 0),
			water: func(x, y int) bool { return x == 3 },
			land:  func(x, y int) bool { return x == 2 },
		},
	}

	for _, c := range cases {
		tiles := NewTileGrid(4, 4, "x")
		cs := singleCoast(c.dir, edgeField(), image.Point{})
		ApplyCoasts(tiles, cs, "land", "water")

		if cs[c.dir].Start != c.start {
			t.Fatalf("%s: start %v, want %v", c.dir, cs[c.dir].Start, c.start)
		}
		for x := 0; x < 4; x++ {
			for y := 0; y < 4; y++ {
				want := "x"
				if c.water(x, y) {
					want = "water"
				} else if c.land(x, y) {
					want = "land"
				}
				if tiles[x][y] != want {
					t.Fatalf("%s: (%d,%d) is %s, want %s", c.dir, x, y, tiles[x][y], want)
				}
			}
		}
	}
}

func TestApplyCoastsEmptySubKeepsTiles(t *testing.T) {
	tiles := NewTileGrid(4, 4, "x")
	ApplyCoasts(tiles, singleCoast(South, edgeField(), image.Point{}), "water", "")

	if tiles.Count("water") != 4 {
		t.Fatalf("expected 4 water tiles, got %d", tiles.Count("water"))
	}
	if tiles.Count("x") != 12 {
		t.Fatalf("expected 12 untouched tiles, got %d", tiles.Count("x"))
	}
}

func TestApplyCoastsOutOfBounds(t *testing.T) {
	tiles := NewTileGrid(4, 4, "x")
	ApplyCoasts(tiles, singleCoast(South, edgeField(), image.Pt(3, 1)), "land", "water")

	// only column 3 & row 3 are in bounds
	if tiles[3][3] != "land" {
		t.Fatalf("expected land at (3,3), got %s", tiles[3][3])
	}
	if tiles.Count("x") != 15 {
		t.Fatalf("expected 15 untouched tiles, got %d", tiles.Count("x"))
	}
}

func TestApplyCoastsLaterDirectionWins(t *testing.T) {
	cs := NewCoastSet()
	cs[North] = &Coast{HasCoast: true, Config: CoastConfig{Depth: 2}, Field: NoiseField{{1, 1, 1, 1}, {1, 1, 1, 1}}}
	cs[West] = &Coast{HasCoast: true, Config: CoastConfig{Depth: 2}, Field: NoiseField{{0, 0, 0, 0}, {0, 0, 0, 0}}}

	tiles := NewTileGrid(4, 4, "x")
	ApplyCoasts(tiles, cs, "land", "water")

	if tiles[0][0] != "water" || tiles[1][1] != "water" {
		t.Fatalf("west should overwrite north in the corner, got %s %s", tiles[0][0], tiles[1][1])
	}
	if tiles[2][1] != "land" {
		t.Fatalf("expected north land at (2,1), got %s", tiles[2][1])
	}
}
