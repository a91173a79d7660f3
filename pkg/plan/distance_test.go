package plan

import (
	"math"
	"testing"

	"github.com/matzehuels/waypoint/pkg/floor"
)

func TestWeight(t *testing.T) {
	tests := []struct {
		name string
		a, b Dot
		want float64
	}{
		{"same point", Dot{Floor: "Map 1"}, Dot{Floor: "Map 1"}, 0},
		{"3-4-5", Dot{Floor: "Map 1"}, Dot{Floor: "Map 1", X: 3, Y: 4}, 5},
		{"negative coords", Dot{Floor: "Map 2", X: -1, Y: -1}, Dot{Floor: "Map 2", X: 2, Y: 3}, 5},
		{"adjacent floors", Dot{Floor: "Map 1", X: 500}, Dot{Floor: "Map 2"}, 1},
		{"two floors apart", Dot{Floor: "Map 3"}, Dot{Floor: "Map 1", X: 10, Y: 10}, 2},
		{"unparseable floor counts as zero", Dot{Floor: "Lobby"}, Dot{Floor: "Map 2"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Weight(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Weight() = %v, want %v", got, tt.want)
			}
			if rev := Weight(tt.b, tt.a); rev != got {
				t.Errorf("Weight not symmetric: %v vs %v", got, rev)
			}
			if got < 0 {
				t.Errorf("Weight() = %v, want >= 0", got)
			}
		})
	}
}

func TestWeightKeepsFullPrecision(t *testing.T) {
	w := Weight(Dot{Floor: "Map 1"}, Dot{Floor: "Map 1", X: 1, Y: 1})
	if w != math.Sqrt2 {
		t.Errorf("Weight() = %v, want %v", w, math.Sqrt2)
	}
	if Round2(w) != 1.41 {
		t.Errorf("Round2() = %v, want 1.41", Round2(w))
	}
}

func TestPolicyHopCost(t *testing.T) {
	reg, err := floor.NewRegistry([]floor.Floor{
		{Name: "Basement", Ordinal: -1},
		{Name: "Ground", Ordinal: 0},
		{Name: "Roof", Ordinal: 4},
	})
	if err != nil {
		t.Fatal(err)
	}

	p := Policy{Floors: reg}
	if got := p.Weight(Dot{Floor: "Basement"}, Dot{Floor: "Roof"}); got != 5 {
		t.Errorf("registry ordinals: Weight() = %v, want 5", got)
	}

	p.HopCost = 40
	if got := p.Weight(Dot{Floor: "Ground"}, Dot{Floor: "Basement"}); got != 40 {
		t.Errorf("hop cost: Weight() = %v, want 40", got)
	}
	if got := p.Weight(Dot{Floor: "Ground"}, Dot{Floor: "Ground", X: 6, Y: 8}); got != 10 {
		t.Errorf("hop cost must not scale in-plane distance: got %v", got)
	}
}
