package citygen

import (
	"path/filepath"
	"testing"
)

func testTileMap(t *testing.T) (TileMap, *TileBoard) {
	t.Helper()
	reg := DefaultRegistry()

	tiles := NewTileGrid(5, 5, TypeGrass)
	tiles[0][0] = TypeWater
	b := testBoard(t, tiles, 0)

	station, _ := reg.Lookup(TypeStation)
	road, _ := reg.Lookup(TypeRoad)
	tube, _ := reg.Lookup(TypeTube)
	home, _ := reg.Lookup("apartment_red")

	b.Cell(2, 2).ChangeContent(station)
	b.Cell(2, 3).ChangeContent(road)
	b.Cell(2, 1).ChangeUndergroundContent(tube)
	b.Cell(4, 4).ChangeContent(home)

	return NewTileMap(b, reg, LandValues(b, LandValueConfig{Base: 10, WaterBonus: 5, WaterDistance: 2}, 1)), b
}

func TestTileMapFlags(t *testing.T) {
	tm, _ := testTileMap(t)

	if !tm.IsWater(0, 0) || tm.IsWater(1, 1) {
		t.Fatal("unexpected water")
	}
	if !tm.IsStation(2, 2) || !tm.IsBuilding(2, 2) {
		t.Fatal("expected the station at (2,2)")
	}
	if !tm.IsBuilding(4, 4) || tm.IsStation(4, 4) {
		t.Fatal("expected a plain building at (4,4)")
	}
	if !tm.IsRoad(2, 3) || tm.IsRoad(2, 2) {
		t.Fatal("expected a road at (2,3) only")
	}
	if !tm.IsTube(2, 1) || tm.IsTube(2, 2) {
		t.Fatal("expected a tube under (2,1) only")
	}
	if tm.IsWater(-1, 0) || tm.IsRoad(5, 5) {
		t.Fatal("out of bounds should be false")
	}
}

func TestTileMapTypes(t *testing.T) {
	tm, _ := testTileMap(t)

	for _, c := range []struct {
		x, y             int
		terrain, content string
	}{
		{0, 0, TypeWater, ""},
		{2, 2, TypeGrass, TypeStation},
		{2, 3, TypeGrass, TypeRoad},
		{1, 1, TypeGrass, ""},
	} {
		terrain, err := tm.Terrain(c.x, c.y)
		if err != nil {
			t.Fatal(err)
		}
		content, err := tm.Content(c.x, c.y)
		if err != nil {
			t.Fatal(err)
		}
		if terrain != c.terrain || content != c.content {
			t.Fatalf("(%d,%d) is %s/%s, want %s/%s", c.x, c.y, terrain, content, c.terrain, c.content)
		}
	}

	if _, err := tm.Terrain(9, 9); err == nil {
		t.Fatal("expected an out of bounds error")
	}
}

func TestTileMapImages(t *testing.T) {
	tm, _ := testTileMap(t)
	scheme := DefaultScheme()

	im, err := tm.CustomImage(scheme)
	if err != nil {
		t.Fatal(err)
	}
	if im.Bounds().Dx() != 5 || im.Bounds().Dy() != 5 {
		t.Fatalf("unexpected bounds %v", im.Bounds())
	}
	if im.At(2, 2) != scheme.Station || im.At(2, 3) != scheme.Roads || im.At(0, 0) != scheme.Water {
		t.Fatal("unexpected colours")
	}
	if im.At(2, 1) != scheme.Terrain[TypeGrass] {
		t.Fatal("tubes are hidden by default")
	}

	scheme.ShowTubes = true
	im, err = tm.CustomImage(scheme)
	if err != nil {
		t.Fatal(err)
	}
	if im.At(2, 1) != scheme.Tubes {
		t.Fatal("expected the tube to be drawn")
	}

	lv := tm.LandValueImage(scheme)
	if lv.Bounds().Dx() != 5*scheme.Scale {
		t.Fatalf("expected a scaled image, got %v", lv.Bounds())
	}

	dir := t.TempDir()
	if err := tm.Save(filepath.Join(dir, "raw.png")); err != nil {
		t.Fatal(err)
	}
	if err := tm.SaveAdv(filepath.Join(dir, "map.png"), scheme); err != nil {
		t.Fatal(err)
	}
}
