package plan

import (
	"math"

	"github.com/matzehuels/waypoint/pkg/floor"
)

// Policy computes connection weights.
//
// Floors resolves floor ordinals; a nil registry parses the trailing integer
// of the floor name. HopCost scales cross-floor weights: zero keeps one unit
// per floor crossed.
type Policy struct {
	Floors  *floor.Registry
	HopCost float64
}

// DefaultPolicy parses ordinals from floor names and charges one unit per floor.
var DefaultPolicy = Policy{}

// Weight returns the weight of a connection between a and b using DefaultPolicy.
func Weight(a, b Dot) float64 { return DefaultPolicy.Weight(a, b) }

// Weight returns the non-negative, symmetric weight of a connection between
// a and b: the Euclidean distance on a shared floor, otherwise the number of
// floors crossed times the hop cost.
//
// A floor without a resolvable ordinal counts as ordinal 0.
func (p Policy) Weight(a, b Dot) float64 {
	if a.Floor == b.Floor {
		return math.Hypot(a.X-b.X, a.Y-b.Y)
	}
	hops := math.Abs(float64(p.ordinal(a.Floor) - p.ordinal(b.Floor)))
	if p.HopCost > 0 {
		return hops * p.HopCost
	}
	return hops
}

func (p Policy) ordinal(name string) int {
	n, _ := p.Floors.Ordinal(name)
	return n
}

// Round2 rounds w to two decimal places for display. Path comparisons use
// the unrounded weight.
func Round2(w float64) float64 {
	return math.Round(w*100) / 100
}
