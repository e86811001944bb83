package sand

import (
	"fmt"
	"strings"
)

// Material tags the contents of a cell.
type Material uint8

const (
	Empty Material = iota
	Sand
	Water
	Oil
	Stone
	Fire

	materialCount
)

var materialNames = [materialCount]string{
	Empty: "empty",
	Sand:  "sand",
	Water: "water",
	Oil:   "oil",
	Stone: "stone",
	Fire:  "fire",
}

func (m Material) String() string {
	if m >= materialCount {
		return "unknown"
	}
	return materialNames[m]
}

// Valid reports whether m is one of the defined materials.
func (m Material) Valid() bool { return m < materialCount }

// Falls reports whether gravity applies to m.
func (m Material) Falls() bool { return m == Sand || m == Water || m == Oil }

// Density orders materials for stratification checks. Stone ranks heaviest so
// a stone floor never counts as an inversion.
func (m Material) Density() int {
	switch m {
	case Oil:
		return 1
	case Water:
		return 2
	case Sand:
		return 3
	case Stone:
		return 4
	default:
		return 0
	}
}

// ParseMaterial resolves a material by name, ignoring case.
func ParseMaterial(s string) (Material, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range materialNames {
		if name == s {
			return Material(i), true
		}
	}
	return Empty, false
}

// ParseLayers resolves a comma-separated list of material names.
func ParseLayers(s string) ([]Material, error) {
	var layers []Material
	for _, name := range strings.Split(s, ",") {
		m, ok := ParseMaterial(name)
		if !ok || m == Empty {
			return nil, fmt.Errorf("%w: unknown layer material %q", ErrInvalidConfig, strings.TrimSpace(name))
		}
		layers = append(layers, m)
	}
	return layers, nil
}

// materialSet is a bitmask of materials a rule may move into.
type materialSet uint8

func setOf(ms ...Material) materialSet {
	var s materialSet
	for _, m := range ms {
		s |= 1 << m
	}
	return s
}

func (s materialSet) has(m Material) bool { return s&(1<<m) != 0 }

var (
	emptyOnly     = setOf(Empty)
	sandPassable  = setOf(Empty, Water, Oil)
	waterPassable = setOf(Empty, Oil)
)
