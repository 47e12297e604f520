package citygen

import (
	"image"
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownType is returned when a type ID isn't in the registry.
	// Generation never silently falls back to some other type.
	ErrUnknownType = errors.New("unknown type")
)

// Type IDs the generator reaches for by name. A registry handed to the
// Generator must define these if the matching step runs.
const (
	TypeGrass         = "grass"
	TypeWater         = "water"
	TypeSand          = "sand"
	TypeRoad          = "road_nesw"
	TypeTube          = "tube_nesw"
	TypeStation       = "station"
	TypeUnderPurchase = "underPurchase"

	// apartments of this population are used for initial housing
	CategoryApartment = "apartment"
	housingPopulation = 5
)

// TileType describes a terrain or content type (grass, water, roads,
// buildings ..).
type TileType struct {
	// ID unique name of the type, what TileGrid cells hold
	ID string `yaml:"id" json:"id"`

	// Type is the broad kind ("water", "grass", "building" ..)
	Type string `yaml:"type" json:"type"`

	// CategoryType narrows buildings down (eg. "apartment")
	CategoryType string `yaml:"category" json:"category,omitempty"`

	// Size is the footprint in cells, 1x1 if not given
	Size image.Point `yaml:"-" json:"size"`

	// Population housed by the building
	Population int `yaml:"population" json:"population,omitempty"`

	// BuildTime in (game) days
	BuildTime int `yaml:"build_time" json:"buildTime,omitempty"`

	// Buildable is true for terrain that content can be placed on
	Buildable bool `yaml:"buildable" json:"buildable,omitempty"`

	Flags Flags `yaml:"flags" json:"flags"`
}

// Footprint returns Size, defaulting to 1x1
func (t *TileType) Footprint() image.Point {
	if t.Size.X <= 0 || t.Size.Y <= 0 {
		return image.Pt(1, 1)
	}
	return t.Size
}

// TypeRegistry is how generation finds types by ID.
type TypeRegistry interface {
	// Lookup returns the type with the given ID
	Lookup(id string) (*TileType, bool)

	// All returns every known type, ordered by ID
	All() []*TileType
}

// Registry is a TypeRegistry held in memory.
type Registry struct {
	types map[string]*TileType
}

// NewRegistry returns a registry holding the given types. Later types with a
// duplicate ID replace earlier ones.
func NewRegistry(types ...*TileType) *Registry {
	r := &Registry{types: map[string]*TileType{}}
	for _, t := range types {
		r.types[t.ID] = t
	}
	return r
}

// Lookup returns the type with the given ID
func (r *Registry) Lookup(id string) (*TileType, bool) {
	t, ok := r.types[id]
	return t, ok
}

// All returns all types ordered by ID
func (r *Registry) All() []*TileType {
	out := make([]*TileType, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].ID < out[b].ID
	})
	return out
}

// registryFile is the on disk layout of a registry
type registryFile struct {
	Types []*struct {
		TileType `yaml:",inline"`
		Size     []int `yaml:"size"`
	} `yaml:"types"`
}

// LoadRegistry reads types from a yaml file of the form
//
//	types:
//	  - id: grass
//	    type: grass
//	    buildable: true
//	    flags: [ground]
//	  - id: apartment_small
//	    type: building
//	    category: apartment
//	    size: [1, 1]
//	    population: 5
func LoadRegistry(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRegistry(raw)
}

// ParseRegistry decodes yaml registry data, see LoadRegistry
func ParseRegistry(raw []byte) (*Registry, error) {
	var f registryFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrap(err, "registry")
	}

	types := make([]*TileType, 0, len(f.Types))
	for i, entry := range f.Types {
		if entry.ID == "" {
			return nil, errors.Errorf("registry: type %d has no id", i)
		}
		t := entry.TileType
		if len(entry.Size) == 2 {
			t.Size = image.Pt(entry.Size[0], entry.Size[1])
		} else if len(entry.Size) != 0 {
			return nil, errors.Errorf("registry: type %s size must be [x, y]", t.ID)
		}
		types = append(types, &t)
	}
	return NewRegistry(types...), nil
}

// DefaultRegistry returns the types the base game ships with.
func DefaultRegistry() *Registry {
	return NewRegistry(
		&TileType{ID: TypeGrass, Type: "grass", Buildable: true, Flags: NewFlags(FlagGround)},
		&TileType{ID: TypeSand, Type: "sand", Buildable: true, Flags: NewFlags(FlagGround)},
		&TileType{ID: TypeWater, Type: "water", Flags: NewFlags(FlagWater)},
		&TileType{ID: TypeRoad, Type: "road", Flags: NewFlags(FlagRoad)},
		&TileType{ID: TypeTube, Type: "tube", Flags: NewFlags(FlagTube)},
		&TileType{ID: TypeUnderPurchase, Type: "underPurchase"},
		&TileType{ID: TypeStation, Type: "building", CategoryType: "station", BuildTime: 1},
		&TileType{ID: "apartment_red", Type: "building", CategoryType: CategoryApartment, Population: housingPopulation, BuildTime: 7},
		&TileType{ID: "apartment_blue", Type: "building", CategoryType: CategoryApartment, Population: housingPopulation, BuildTime: 7},
		&TileType{ID: "apartment_tall", Type: "building", CategoryType: CategoryApartment, Population: 20, BuildTime: 14},
		&TileType{ID: "house_small", Type: "building", CategoryType: "house", Population: 2, BuildTime: 3},
	)
}

// typeCache is a read-through cache in front of a TypeRegistry, owned by a
// single Generator so that runs don't share state.
type typeCache struct {
	reg   TypeRegistry
	cache map[string]*TileType
}

func newTypeCache(reg TypeRegistry) *typeCache {
	return &typeCache{reg: reg, cache: map[string]*TileType{}}
}

// get returns the type for id or ErrUnknownType
func (c *typeCache) get(id string) (*TileType, error) {
	if t, ok := c.cache[id]; ok {
		return t, nil
	}
	t, ok := c.reg.Lookup(id)
	if !ok || t == nil {
		return nil, errors.Wrapf(ErrUnknownType, "%q", id)
	}
	c.cache[id] = t
	return t, nil
}
