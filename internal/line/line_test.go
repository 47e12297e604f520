package line

import (
	"image"
	"testing"
)

func TestBetween(t *testing.T) {
	cases := []struct {
		a, b image.Point
		want []image.Point
	}{
		{image.Pt(0, 0), image.Pt(0, 0), []image.Point{{0, 0}}},
		{image.Pt(0, 0), image.Pt(3, 0), []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{image.Pt(2, 2), image.Pt(0, 0), []image.Point{{2, 2}, {1, 1}, {0, 0}}},
		{image.Pt(0, 3), image.Pt(0, 1), []image.Point{{0, 3}, {0, 2}, {0, 1}}},
	}
	for _, c := range cases {
		got := Between(c.a, c.b)
		if len(got) != len(c.want) {
			t.Fatalf("Between(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("Between(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
		}
	}
}

func TestBetweenSteep(t *testing.T) {
	a, b := image.Pt(1, 1), image.Pt(4, 9)
	pts := Between(a, b)
	if pts[0] != a || pts[len(pts)-1] != b {
		t.Fatalf("line should run %v to %v, got %v", a, b, pts)
	}
	for i := 1; i < len(pts); i++ {
		d := pts[i].Sub(pts[i-1])
		if abs(d.X) > 1 || abs(d.Y) > 1 {
			t.Fatalf("gap between %v and %v", pts[i-1], pts[i])
		}
	}
}

func TestManhattan(t *testing.T) {
	got := Manhattan(image.Pt(1, 1), image.Pt(3, 3))
	want := []image.Point{{1, 1}, {2, 1}, {3, 1}, {3, 2}, {3, 3}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	straight := Manhattan(image.Pt(4, 4), image.Pt(4, 0))
	if len(straight) != 5 || straight[4] != image.Pt(4, 0) {
		t.Fatalf("unexpected straight path %v", straight)
	}
}
