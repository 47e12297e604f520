package citygen

import (
	"image"
	"io"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/voidshard/citygen/internal/line"
)

var (
	// stationExclusions keep the main station away from the water's edge
	stationExclusions = []ExclusionRule{{Radius: 2, Flags: NewFlags(FlagWater)}}

	// housingExclusions keep initial housing off the shore
	housingExclusions = []ExclusionRule{{Radius: 1, Flags: NewFlags(FlagWater)}}
)

const (
	// housingArea fraction of the board initial housing is placed within
	housingArea = 0.9
)

// Generator runs map generation & holds the state shared by the steps of
// one run: the rng & a type cache.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng   Rand
	seed  int64
	reg   TypeRegistry
	types *typeCache
	log   *slog.Logger
}

// New returns a Generator using the given registry (DefaultRegistry if nil).
func New(reg TypeRegistry, cfg *Config) *Generator {
	if reg == nil {
		reg = DefaultRegistry()
	}
	if cfg == nil {
		cfg = &Config{}
	}

	g := &Generator{
		reg:   reg,
		types: newTypeCache(reg),
		log:   cfg.Logger,
	}

	if cfg.Rand != nil {
		g.rng = cfg.Rand
	} else {
		g.rng, g.seed = newRand(cfg.Seed)
	}

	if g.log == nil {
		g.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return g
}

// Seed returns the seed the rng was created with (0 if Config.Rand was given)
func (g *Generator) Seed() int64 {
	return g.seed
}

// Build generates a complete map. Order matters: terrain is finished
// (coasts, river, smoothing) before the board exists, then infrastructure
// is placed outward from the main station.
func (g *Generator) Build(cfg *MapConfig) (*Map, error) {
	if cfg == nil || cfg.Width <= 0 {
		return nil, errors.Wrap(ErrInvalidParams, "map width")
	}
	width, height := cfg.Width, cfg.Height
	if height <= 0 {
		height = width
	}
	land, water := cfg.LandType, cfg.WaterType
	if land == "" {
		land = TypeGrass
	}
	if water == "" {
		water = TypeWater
	}

	tiles := NewTileGrid(width, height, land)

	coastParams := cfg.Coast
	coastParams.Width = width
	coastParams.Height = height
	coasts, err := g.GenerateCoasts(coastParams)
	if err != nil {
		return nil, err
	}
	ApplyCoasts(tiles, coasts, land, water)

	m := &Map{
		ID:         uuid.New(),
		Seed:       g.seed,
		Width:      width,
		Height:     height,
		Population: cfg.Population,
		Coasts:     coasts,
	}

	if cfg.River != nil {
		river, err := g.river(cfg.River, coasts, width, height)
		if err != nil {
			return nil, err
		}
		if river != nil {
			ApplyCoasts(tiles, river, water, "")
			m.River = river
		}
	}

	if cfg.Smooth != nil {
		tiles = SmoothTiles(tiles, cfg.Smooth.Threshold, cfg.Smooth.Radius, cfg.Smooth.Times)
	}
	m.Tiles = tiles

	board, err := NewBoard(tiles, g.reg, cfg.Population)
	if err != nil {
		return nil, err
	}
	board.SetCoasts(coasts)
	m.Board = board

	station, err := g.PlaceBuilding(board, TypeStation, cfg.StationArea, stationExclusions...)
	if errors.Is(err, ErrPlacementFailed) {
		g.log.Debug("relaxing main station placement", "err", err)
		station, err = g.PlaceBuilding(board, TypeStation, 1)
	}
	if err != nil {
		return nil, errors.Wrap(err, "main station")
	}
	board.SetMainStation(station)
	m.MainStation = station

	err = g.PlaceMainSubwayLines(board)
	if err != nil {
		return nil, err
	}
	err = g.PlaceStationRoads(board)
	if err != nil {
		return nil, err
	}
	err = g.PlaceInitialHousing(board)
	if err != nil {
		return nil, err
	}

	m.LandValue = LandValues(board, cfg.LandValue, int64(g.rng.Intn(math.MaxInt32)))
	m.Contents = board.Contents()
	m.Underground = board.Underground()

	g.log.Debug("built map", "id", m.ID, "seed", m.Seed, "coasts", coasts.Directions(), "river", m.River != nil)
	return m, nil
}

// river fills in river settings from the map & rolls for a river
func (g *Generator) river(cfg *RiverConfig, coasts CoastSet, width, height int) (CoastSet, error) {
	p := cfg.Params
	if p.Width <= 0 {
		p.Width = maxint(width/8, 1)
	}
	// the river is p.Width across whichever edge it flows from
	p.Height = p.Width
	if p.Defaults.Depth <= 0 {
		p.Defaults.Depth = maxint(width, height)
	}

	offset := cfg.Offset
	if offset == (image.Point{}) {
		// centre the river along whichever edge it flows from
		offset.X = (minint(width, height) - p.Width) / 2
	}

	river, ok, err := g.MakeRivers(coasts, cfg.Chance, p, offset, cfg.MaxCoasts)
	if err != nil || !ok {
		return nil, err
	}
	return river, nil
}

// PlaceMainSubwayLines runs tubes under the board from the main station to
// each edge connected to land.
func (g *Generator) PlaceMainSubwayLines(b Board) error {
	tube, err := g.types.get(TypeTube)
	if err != nil {
		return err
	}

	start := b.MainStation()
	for _, dir := range b.Coasts().landConnections(g.rng) {
		end := dir.edgePoint(start, b.Width(), b.Height())
		for _, p := range line.Manhattan(start, end) {
			if c := b.Cell(p.X, p.Y); c != nil {
				c.ChangeUndergroundContent(tube)
			}
		}
	}
	return nil
}

// PlaceStationRoads lays roads from beside the main station to each edge
// connected to land. The start is shifted one cell off the station: with a
// single land edge the road runs alongside the station, otherwise it leaves
// from the side facing the land.
func (g *Generator) PlaceStationRoads(b Board) error {
	road, err := g.types.get(TypeRoad)
	if err != nil {
		return err
	}

	land := b.Coasts().landConnections(g.rng)
	isLand := map[Direction]bool{}
	for _, d := range land {
		isLand[d] = true
	}

	shift := image.Point{}
	for _, axis := range [][2]Direction{{North, South}, {East, West}} {
		roads := []Direction{}
		for _, d := range axis {
			if isLand[d] {
				roads = append(roads, d)
			}
		}
		if len(roads) == 0 {
			continue
		}

		var s image.Point
		switch {
		case len(land) <= 1:
			// run beside the station, not through it
			v := roads[0].inward()
			s = image.Pt(v.Y, v.X)
		case len(roads) == 1:
			s = roads[0].inward()
		default:
			s = randomDirection(g.rng, axis[:]).inward()
		}
		shift = shift.Add(s)
	}

	start := b.MainStation().Add(shift)
	for _, dir := range land {
		end := dir.edgePoint(start, b.Width(), b.Height())
		for _, p := range line.Manhattan(start, end) {
			if c := b.Cell(p.X, p.Y); c != nil {
				c.ChangeContent(road)
			}
		}
	}
	return nil
}

// PlaceInitialHousing places random small apartment buildings until the
// board's population target is met.
func (g *Generator) PlaceInitialHousing(b Board) error {
	remaining := b.Population()
	if remaining <= 0 {
		return nil
	}

	apartments := []string{}
	for _, t := range g.reg.All() {
		if t.CategoryType == CategoryApartment && t.Population == housingPopulation {
			apartments = append(apartments, t.ID)
		}
	}
	if len(apartments) == 0 {
		return errors.Wrapf(ErrUnknownType, "no %s with population %d", CategoryApartment, housingPopulation)
	}

	for remaining > 0 {
		id := randomString(g.rng, apartments)
		_, err := g.PlaceBuilding(b, id, housingArea, housingExclusions...)
		if err != nil {
			return errors.Wrap(err, "initial housing")
		}
		t, err := g.types.get(id)
		if err != nil {
			return err
		}
		remaining -= t.Population
	}
	return nil
}
