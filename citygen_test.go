package citygen

import (
	"image"
	"testing"

	"github.com/pkg/errors"
)

// coastBoard is a grass board with coasts on the given edges & the main
// station in the centre
func coastBoard(t *testing.T, size int, coasts ...Direction) *TileBoard {
	t.Helper()
	b := testBoard(t, NewTileGrid(size, size, TypeGrass), 0)
	cs := NewCoastSet()
	for _, d := range coasts {
		cs[d].HasCoast = true
	}
	b.SetCoasts(cs)
	b.SetMainStation(image.Pt(size/2, size/2))
	return b
}

func isContent(b Board, p image.Point, id string) bool {
	c := b.Cell(p.X, p.Y)
	return c != nil && c.Content() != nil && c.Content().ID == id
}

func isUnderground(b Board, p image.Point, id string) bool {
	c := b.Cell(p.X, p.Y)
	return c != nil && c.Underground() != nil && c.Underground().ID == id
}

func TestPlaceMainSubwayLines(t *testing.T) {
	b := coastBoard(t, 9, North)

	err := New(nil, &Config{Seed: 1}).PlaceMainSubwayLines(b)
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range []image.Point{{4, 4}, {8, 4}, {4, 8}, {0, 4}, {6, 4}} {
		if !isUnderground(b, p, TypeTube) {
			t.Fatalf("expected a tube under %v", p)
		}
	}
	if isUnderground(b, image.Pt(4, 0), TypeTube) || isUnderground(b, image.Pt(4, 2), TypeTube) {
		t.Fatal("no tube should run toward the coast")
	}
	if b.Contents().Count("") != 81 {
		t.Fatal("tubes should not change surface content")
	}
}

func TestPlaceMainSubwayLinesAllCoast(t *testing.T) {
	b := coastBoard(t, 9, North, East, South, West)

	// with no land edge one is picked at random, Intn 2 -> south
	err := scripted(&scriptedRand{ints: []int{2}}).PlaceMainSubwayLines(b)
	if err != nil {
		t.Fatal(err)
	}
	if !isUnderground(b, image.Pt(4, 8), TypeTube) {
		t.Fatal("expected a tube to the southern edge")
	}
	if isUnderground(b, image.Pt(0, 4), TypeTube) {
		t.Fatal("expected only one line")
	}
}

func TestPlaceStationRoads(t *testing.T) {
	b := coastBoard(t, 9, North)

	// land e, s & w; the e/w shift is random, Intn 0 -> east
	err := scripted(&scriptedRand{ints: []int{0}}).PlaceStationRoads(b)
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range []image.Point{{3, 3}, {8, 3}, {3, 8}, {0, 3}} {
		if !isContent(b, p, TypeRoad) {
			t.Fatalf("expected a road at %v", p)
		}
	}
	if isContent(b, image.Pt(4, 4), TypeRoad) {
		t.Fatal("road should not run over the station")
	}
	if isContent(b, image.Pt(3, 0), TypeRoad) {
		t.Fatal("no road should run toward the coast")
	}
}

func TestPlaceStationRoadsSingleLand(t *testing.T) {
	b := coastBoard(t, 9, North, East, South)

	err := New(nil, &Config{Seed: 1}).PlaceStationRoads(b)
	if err != nil {
		t.Fatal(err)
	}

	// runs west, alongside the station
	for x := 0; x <= 4; x++ {
		if !isContent(b, image.Pt(x, 5), TypeRoad) {
			t.Fatalf("expected a road at (%d,5)", x)
		}
	}
	if isContent(b, image.Pt(4, 4), TypeRoad) || isContent(b, image.Pt(5, 5), TypeRoad) {
		t.Fatal("road should only run west of the station")
	}
}

func TestPlaceInitialHousing(t *testing.T) {
	b := testBoard(t, NewTileGrid(10, 10, TypeGrass), 12)

	err := New(nil, &Config{Seed: 3}).PlaceInitialHousing(b)
	if err != nil {
		t.Fatal(err)
	}

	homes, population := 0, 0
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			c := b.Cell(x, y).Content()
			if c == nil {
				continue
			}
			if c.CategoryType != CategoryApartment || c.Population != housingPopulation {
				t.Fatalf("unexpected content %s", c.ID)
			}
			homes++
			population += c.Population
		}
	}
	if homes != 3 || population < 12 {
		t.Fatalf("expected 3 homes for 12 people, got %d (%d)", homes, population)
	}
}

func TestPlaceInitialHousingNoPopulation(t *testing.T) {
	b := testBoard(t, NewTileGrid(4, 4, TypeGrass), 0)

	err := New(nil, &Config{Seed: 3}).PlaceInitialHousing(b)
	if err != nil {
		t.Fatal(err)
	}
	if b.Contents().Count("") != 16 {
		t.Fatal("expected no housing")
	}
}

func TestPlaceInitialHousingNoApartments(t *testing.T) {
	reg := NewRegistry(&TileType{ID: TypeGrass, Buildable: true, Flags: NewFlags(FlagGround)})
	b, err := NewBoard(NewTileGrid(4, 4, TypeGrass), reg, 10)
	if err != nil {
		t.Fatal(err)
	}

	err = New(reg, &Config{Seed: 3}).PlaceInitialHousing(b)
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func testMapConfig() *MapConfig {
	cfg := DefaultMapConfig(32, 32)
	cfg.Coast.Amount = 1
	return cfg
}

func TestBuildDeterministic(t *testing.T) {
	a, err := New(nil, &Config{Seed: 42}).Build(testMapConfig())
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(nil, &Config{Seed: 42}).Build(testMapConfig())
	if err != nil {
		t.Fatal(err)
	}

	if !a.Tiles.Equal(b.Tiles) || !a.Contents.Equal(b.Contents) || !a.Underground.Equal(b.Underground) {
		t.Fatal("same seed should build the same map")
	}
	if a.MainStation != b.MainStation {
		t.Fatalf("stations differ %v %v", a.MainStation, b.MainStation)
	}
	if a.Seed != 42 {
		t.Fatalf("expected seed 42, got %d", a.Seed)
	}
}

func TestBuildPlacesInfrastructure(t *testing.T) {
	cfg := testMapConfig()
	m, err := New(nil, &Config{Seed: 9}).Build(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if m.Tiles.Width() != 32 || m.Tiles.Height() != 32 {
		t.Fatalf("unexpected size %dx%d", m.Tiles.Width(), m.Tiles.Height())
	}
	if len(m.Coasts.Directions()) != 1 {
		t.Fatalf("expected one coast, got %v", m.Coasts.Directions())
	}
	if !isContent(m.Board, m.MainStation, TypeStation) {
		t.Fatal("expected the main station on the board")
	}
	if m.Contents.Count(TypeRoad) == 0 || m.Underground.Count(TypeTube) == 0 {
		t.Fatal("expected roads & tubes")
	}

	// every land edge is reached by a tube
	for _, d := range m.Coasts.LandDirections() {
		end := d.edgePoint(m.MainStation, m.Width, m.Height)
		if !isUnderground(m.Board, end, TypeTube) {
			t.Fatalf("expected a tube at the %s edge %v", d, end)
		}
	}

	homes := 0
	for _, id := range []string{"apartment_red", "apartment_blue"} {
		homes += m.Contents.Count(id)
	}
	if homes*housingPopulation < cfg.Population {
		t.Fatalf("%d homes can't house %d", homes, cfg.Population)
	}
}

func TestBuildInvalid(t *testing.T) {
	_, err := New(nil, &Config{Seed: 1}).Build(&MapConfig{})
	if !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("expected ErrInvalidParams, got %v", err)
	}
}
