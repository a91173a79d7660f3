package route

import "github.com/matzehuels/waypoint/pkg/plan"

// Leg is a maximal run of consecutive path dots on one floor.
type Leg struct {
	Floor string   `json:"floor"`
	Dots  []string `json:"dots"`
	Cost  float64  `json:"cost"` // in-plane cost of the leg, excluding floor hops
}

// Legs splits the path into per-floor segments so a caller can show a
// multi-floor route one floor image at a time. Dots missing from snap are
// skipped.
func (r Result) Legs(snap *plan.Snapshot) []Leg {
	var legs []Leg
	var last string
	for _, id := range r.Path {
		d, ok := snap.Dot(id)
		if !ok {
			continue
		}
		if len(legs) == 0 || legs[len(legs)-1].Floor != d.Floor {
			legs = append(legs, Leg{Floor: d.Floor})
		} else if c, ok := snap.Connection(last, id); ok {
			legs[len(legs)-1].Cost += c.Weight
		}
		legs[len(legs)-1].Dots = append(legs[len(legs)-1].Dots, id)
		last = id
	}
	return legs
}

// Floors returns the floors the path visits, in order, without repeats of
// consecutive floors.
func (r Result) Floors(snap *plan.Snapshot) []string {
	legs := r.Legs(snap)
	out := make([]string, len(legs))
	for i, l := range legs {
		out[i] = l.Floor
	}
	return out
}
