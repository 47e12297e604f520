package citygen

import (
	"fmt"
	"image"
	"image/color"

	"github.com/boljen/go-bitmap"
	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"

	"github.com/voidshard/citygen/internal/encoding"
)

const (
	// bit numbers for our bitmap
	bitWater    = 0
	bitRoad     = 1
	bitTube     = 2
	bitBuilding = 3
	bitStation  = 4
)

// TileMap is a raster snapshot of a Board, one pixel per cell.
type TileMap interface {
	// Save as a PNG in a format defined by the library
	Save(fpath string) error

	// SaveAdv saves as an image with the given colour scheme
	SaveAdv(fpath string, scheme *ColourScheme) error

	// CustomImage returns an image with the given colour scheme
	CustomImage(scheme *ColourScheme) (image.Image, error)

	// LandValueImage returns the land value overlay
	LandValueImage(scheme *ColourScheme) image.Image

	IsWater(x, y int) bool
	IsRoad(x, y int) bool
	IsTube(x, y int) bool
	IsBuilding(x, y int) bool
	IsStation(x, y int) bool

	// Terrain & Content return type IDs at x,y ("" content means nothing built)
	Terrain(x, y int) (string, error)
	Content(x, y int) (string, error)
}

// imageMap implements TileMap over an RGBA64 image where each 64 bit pixel is
//
//	R [16 bits] -> terrain type index
//	G [16 bits] -> content type index (0: none)
//	B [16 bits] -> underground type index (0: none)
//	A [16 bits]
//	  16-9 [8 bits] -> land value, scaled over the map's range
//	   8-1 [8 bits] -> bitmap
//	      bit 0 -> isWater
//	      bit 1 -> isRoad
//	      bit 2 -> isTube
//	      bit 3 -> isBuilding
//	      bit 4 -> isStation
//	      bit 5-7 -> unused
//
// Type indexes are positions in the registry's All() (+1).
type imageMap struct {
	im    *image.RGBA64
	types []*TileType

	// land value range, for the overlay
	lvMin float64
	lvMax float64
}

// ColourScheme defines how tiles should be coloured.
type ColourScheme struct {
	// Scale pixels per tile when saving
	Scale int

	Water     color.Color
	Roads     color.Color
	Tubes     color.Color
	Buildings color.Color
	Station   color.Color

	// Terrain colour by terrain type ID; Unknown if not listed
	Terrain map[string]color.Color
	Unknown color.Color

	// ShowTubes draws tubes over terrain (but under content)
	ShowTubes bool
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Scale:     8,
		Water:     colornames.Steelblue,
		Roads:     colornames.Dimgray,
		Tubes:     colornames.Orange,
		Buildings: colornames.Firebrick,
		Station:   colornames.Gold,
		Terrain: map[string]color.Color{
			TypeGrass: colornames.Yellowgreen,
			TypeSand:  colornames.Wheat,
			TypeWater: colornames.Steelblue,
		},
		Unknown: colornames.Fuchsia,
	}
}

// NewTileMap snapshots a board. landValue may be nil.
func NewTileMap(b Board, reg TypeRegistry, landValue [][]float64) TileMap {
	m := &imageMap{
		im:    image.NewRGBA64(image.Rect(0, 0, b.Width(), b.Height())),
		types: reg.All(),
	}
	m.lvMin, m.lvMax = LandValueRange(landValue)

	index := map[string]uint16{}
	for i, t := range m.types {
		index[t.ID] = uint16(i + 1)
	}
	idx := func(t *TileType) uint16 {
		if t == nil {
			return 0
		}
		return index[t.ID]
	}

	for x := 0; x < b.Width(); x++ {
		for y := 0; y < b.Height(); y++ {
			c := b.Cell(x, y)
			if c == nil {
				continue
			}

			bm := bitmap.New(8)
			if isWater(c) {
				bm.Set(bitWater, true)
			}
			if content := c.Content(); content != nil {
				switch {
				case content.Flags.Has(FlagRoad):
					bm.Set(bitRoad, true)
				case content.ID == TypeStation:
					bm.Set(bitStation, true)
					bm.Set(bitBuilding, true)
				case content.Type == "building":
					bm.Set(bitBuilding, true)
				}
			}
			if u := c.Underground(); u != nil && u.Flags.Has(FlagTube) {
				bm.Set(bitTube, true)
			}

			lv := uint8(0)
			if x < len(landValue) && y < len(landValue[x]) {
				lv = encoding.Scale8(landValue[x][y], m.lvMin, m.lvMax)
			}

			m.im.SetRGBA64(x, y, color.RGBA64{
				R: idx(c.Type()),
				G: idx(c.Content()),
				B: idx(c.Underground()),
				A: encoding.Pack16(lv, encoding.Byte(bm.Data(true))),
			})
		}
	}

	return m
}

// Save the TileMap as is to disk
func (m *imageMap) Save(fpath string) error {
	return SavePNG(fpath, m.im)
}

// CustomImage returns the TileMap coloured with the given scheme, one pixel
// per tile.
func (m *imageMap) CustomImage(scheme *ColourScheme) (image.Image, error) {
	bnds := m.im.Bounds()
	im := image.NewRGBA(bnds)

	for dy := bnds.Min.Y; dy < bnds.Max.Y; dy++ {
		for dx := bnds.Min.X; dx < bnds.Max.X; dx++ {
			col, err := m.colourAt(dx, dy, scheme)
			if err != nil {
				return nil, err
			}
			im.Set(dx, dy, col)
		}
	}

	return im, nil
}

// colourAt picks the colour of the tile at x,y; content beats tubes beats
// terrain
func (m *imageMap) colourAt(x, y int, scheme *ColourScheme) (color.Color, error) {
	bm := m.getBM(x, y)

	if bm.Get(bitStation) {
		return scheme.Station, nil
	} else if bm.Get(bitBuilding) {
		return scheme.Buildings, nil
	} else if bm.Get(bitRoad) {
		return scheme.Roads, nil
	} else if scheme.ShowTubes && bm.Get(bitTube) {
		return scheme.Tubes, nil
	}

	terrain, err := m.Terrain(x, y)
	if err != nil {
		return nil, err
	}
	col, ok := scheme.Terrain[terrain]
	if ok {
		return col, nil
	}
	if bm.Get(bitWater) {
		return scheme.Water, nil
	}
	return scheme.Unknown, nil
}

// SaveAdv saves the TileMap using the given scheme to disk, drawing each
// tile as a Scale x Scale square.
func (m *imageMap) SaveAdv(fpath string, scheme *ColourScheme) error {
	im, err := m.CustomImage(scheme)
	if err != nil {
		return err
	}
	return scaledContext(im, scheme.Scale).SavePNG(fpath)
}

// LandValueImage renders land value with the banded colour ramp; water is
// drawn in the scheme's water colour.
func (m *imageMap) LandValueImage(scheme *ColourScheme) image.Image {
	bnds := m.im.Bounds()
	im := image.NewRGBA(bnds)

	for dy := bnds.Min.Y; dy < bnds.Max.Y; dy++ {
		for dx := bnds.Min.X; dx < bnds.Max.X; dx++ {
			if m.IsWater(dx, dy) {
				im.Set(dx, dy, scheme.Water)
				continue
			}
			lv, _ := encoding.Unpack16(m.im.RGBA64At(dx, dy).A)
			v := m.lvMin + float64(lv)/255*(m.lvMax-m.lvMin)
			im.Set(dx, dy, LandValueColour(v, m.lvMin, m.lvMax))
		}
	}

	return scaledContext(im, scheme.Scale).Image()
}

// scaledContext draws im onto a new context with each pixel as a scale x
// scale square
func scaledContext(im image.Image, scale int) *gg.Context {
	if scale < 1 {
		scale = 1
	}
	bnds := im.Bounds()
	ctx := gg.NewContext(bnds.Dx()*scale, bnds.Dy()*scale)
	for y := bnds.Min.Y; y < bnds.Max.Y; y++ {
		for x := bnds.Min.X; x < bnds.Max.X; x++ {
			ctx.SetColor(im.At(x, y))
			ctx.DrawRectangle(float64((x-bnds.Min.X)*scale), float64((y-bnds.Min.Y)*scale), float64(scale), float64(scale))
			ctx.Fill()
		}
	}
	return ctx
}

// Terrain returns the terrain type ID at x,y
func (m *imageMap) Terrain(x, y int) (string, error) {
	if m.isOutOfBounds(x, y) {
		return "", fmt.Errorf("(%d,%d) is out of bounds", x, y)
	}
	return m.typeID(m.im.RGBA64At(x, y).R), nil
}

// Content returns the content type ID at x,y
func (m *imageMap) Content(x, y int) (string, error) {
	if m.isOutOfBounds(x, y) {
		return "", fmt.Errorf("(%d,%d) is out of bounds", x, y)
	}
	return m.typeID(m.im.RGBA64At(x, y).G), nil
}

// typeID returns the ID for a type index
func (m *imageMap) typeID(i uint16) string {
	if i == 0 || int(i) > len(m.types) {
		return ""
	}
	return m.types[i-1].ID
}

// getBM gets the 8 bit bitmap at x,y
func (m *imageMap) getBM(x, y int) bitmap.Bitmap {
	_, bits := encoding.Unpack16(m.im.RGBA64At(x, y).A)
	return bitmap.Bitmap(encoding.Bytes(bits))
}

// isSet returns if bit is set at x,y (false if out of bounds)
func (m *imageMap) isSet(x, y, bit int) bool {
	if m.isOutOfBounds(x, y) {
		return false
	}
	return m.getBM(x, y).Get(bit)
}

// IsWater returns if the terrain at x,y is water
func (m *imageMap) IsWater(x, y int) bool {
	return m.isSet(x, y, bitWater)
}

// IsRoad returns if there is a road at x,y
func (m *imageMap) IsRoad(x, y int) bool {
	return m.isSet(x, y, bitRoad)
}

// IsTube returns if a tube runs under x,y
func (m *imageMap) IsTube(x, y int) bool {
	return m.isSet(x, y, bitTube)
}

// IsBuilding returns if a building (the station included) is at x,y
func (m *imageMap) IsBuilding(x, y int) bool {
	return m.isSet(x, y, bitBuilding)
}

// IsStation returns if the main station is at x,y
func (m *imageMap) IsStation(x, y int) bool {
	return m.isSet(x, y, bitStation)
}

// isOutOfBounds determines if x,y is outside of the image area
func (m *imageMap) isOutOfBounds(x, y int) bool {
	bnds := m.im.Bounds()
	return x < bnds.Min.X || x >= bnds.Max.X || y < bnds.Min.Y || y >= bnds.Max.Y
}
