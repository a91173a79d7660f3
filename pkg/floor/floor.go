package floor

import (
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/matzehuels/waypoint/pkg/errors"
)

// Floor is one floor-plan image.
type Floor struct {
	Name    string `json:"name"`
	Ordinal int    `json:"ordinal"`
	Image   string `json:"image,omitempty"` // informational; the UI owns image loading
}

// Registry is an ordered, immutable set of floors keyed by name.
type Registry struct {
	floors []Floor
	byName map[string]int
}

// DefaultNames are the floors available when no configuration is given.
var DefaultNames = []string{"Map 1", "Map 2", "Map 3"}

// Default returns a registry with the floors in [DefaultNames].
func Default() *Registry {
	floors := make([]Floor, len(DefaultNames))
	for i, name := range DefaultNames {
		ord, _ := ParseOrdinal(name)
		floors[i] = Floor{Name: name, Ordinal: ord}
	}
	r, _ := NewRegistry(floors)
	return r
}

// NewRegistry validates floors and builds a registry preserving their order.
// Floors must have unique, valid names.
func NewRegistry(floors []Floor) (*Registry, error) {
	r := &Registry{
		floors: make([]Floor, 0, len(floors)),
		byName: make(map[string]int, len(floors)),
	}
	for _, f := range floors {
		if err := errors.ValidateFloorName(f.Name); err != nil {
			return nil, err
		}
		if _, dup := r.byName[f.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "duplicate floor %q", f.Name)
		}
		r.byName[f.Name] = len(r.floors)
		r.floors = append(r.floors, f)
	}
	return r, nil
}

// Floors returns a copy of the registered floors in registration order.
func (r *Registry) Floors() []Floor { return slices.Clone(r.floors) }

// Names returns the registered floor names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.floors))
	for i, f := range r.floors {
		names[i] = f.Name
	}
	return names
}

// Len returns the number of floors.
func (r *Registry) Len() int { return len(r.floors) }

// Get returns the floor with the given name.
func (r *Registry) Get(name string) (Floor, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Floor{}, false
	}
	return r.floors[i], true
}

// Has reports whether name is a registered floor.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Ordinal returns the ordinal of a floor. Registered floors use their
// configured ordinal; unknown names fall back to ParseOrdinal.
func (r *Registry) Ordinal(name string) (int, bool) {
	if r != nil {
		if f, ok := r.Get(name); ok {
			return f.Ordinal, true
		}
	}
	return ParseOrdinal(name)
}

// ParseOrdinal extracts the trailing integer of a floor name.
// A leading '-' directly before the digits makes the ordinal negative.
func ParseOrdinal(name string) (int, bool) {
	name = strings.TrimSpace(name)
	end := len(name)
	start := end
	for start > 0 && unicode.IsDigit(rune(name[start-1])) {
		start--
	}
	if start == end {
		return 0, false
	}
	digits := name[start:end]
	if start > 0 && name[start-1] == '-' && (start == 1 || name[start-2] == ' ') {
		digits = "-" + digits
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
