package citygen

import (
	"encoding/json"
	"sort"

	"github.com/zyedidia/generic/mapset"
	"gopkg.in/yaml.v3"
)

// Common flags carried by terrain & building types.
const (
	FlagWater  = "water"
	FlagGround = "ground"
	FlagRoad   = "road"
	FlagTube   = "tube"
)

// Flags is a set of string markers on a type (eg. "water"). Exclusion rules
// match against these.
type Flags struct {
	set *mapset.Set[string]
}

// NewFlags returns a set holding the given flags
func NewFlags(in ...string) Flags {
	set := mapset.New[string]()
	for _, s := range in {
		set.Put(s)
	}
	return Flags{set: &set}
}

// Has returns if flag s is set
func (f Flags) Has(s string) bool {
	if f.set == nil {
		return false
	}
	return f.set.Has(s)
}

// Len returns the number of flags set
func (f Flags) Len() int {
	if f.set == nil {
		return 0
	}
	return f.set.Size()
}

// Intersects returns true if any flag is present in both sets
func (f Flags) Intersects(other Flags) bool {
	a, b := f, other
	if a.Len() > b.Len() {
		a, b = b, a
	}
	found := false
	a.each(func(s string) {
		if !found && b.Has(s) {
			found = true
		}
	})
	return found
}

// Slice returns the flags sorted
func (f Flags) Slice() []string {
	out := make([]string, 0, f.Len())
	f.each(func(s string) {
		out = append(out, s)
	})
	sort.Strings(out)
	return out
}

func (f Flags) each(fn func(string)) {
	if f.Len() == 0 {
		return
	}
	f.set.Each(fn)
}

// MarshalJSON writes flags as a sorted list
func (f Flags) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Slice())
}

// UnmarshalJSON reads flags from a list of strings
func (f *Flags) UnmarshalJSON(data []byte) error {
	var in []string
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*f = NewFlags(in...)
	return nil
}

// UnmarshalYAML reads flags from a list of strings
func (f *Flags) UnmarshalYAML(value *yaml.Node) error {
	var in []string
	if err := value.Decode(&in); err != nil {
		return err
	}
	*f = NewFlags(in...)
	return nil
}
