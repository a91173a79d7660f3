package plan

import (
	"fmt"
	"strconv"
)

// Dot is a point of interest placed on one floor.
type Dot struct {
	ID    string  `json:"id"`
	Seq   uint64  `json:"seq"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Name  string  `json:"name"`
	Floor string  `json:"floor"`

	LabelVisible  bool `json:"label_visible"`
	RenderVisible bool `json:"render_visible"`

	// CrossFloor is derived from the connection set and maintained by the
	// store. Setting it on a copy has no effect on the graph.
	CrossFloor bool `json:"cross_floor"`
}

// Label returns the dot's name, or a "Dot <seq>" placeholder when unnamed.
func (d Dot) Label() string {
	if d.Name != "" {
		return d.Name
	}
	return "Dot " + strconv.FormatUint(d.Seq, 10)
}

// Connection is an undirected weighted edge between two dots.
// A and B are stored in the order the connection was requested.
type Connection struct {
	A       string  `json:"a"`
	B       string  `json:"b"`
	Seq     uint64  `json:"seq"`
	Weight  float64 `json:"weight"`
	Visible bool    `json:"visible"`
}

// Key returns the canonical key of the connection's unordered pair.
func (c Connection) Key() PairKey { return Pair(c.A, c.B) }

// Touches reports whether id is one of the endpoints.
func (c Connection) Touches(id string) bool { return c.A == id || c.B == id }

// Other returns the endpoint opposite id. It returns "" if id is not an endpoint.
func (c Connection) Other(id string) string {
	switch id {
	case c.A:
		return c.B
	case c.B:
		return c.A
	}
	return ""
}

// DisplayWeight formats the weight rounded to two decimals.
func (c Connection) DisplayWeight() string {
	return fmt.Sprintf("%.2f", c.Weight)
}

// PairKey identifies an unordered pair of dot IDs.
type PairKey struct{ Lo, Hi string }

// Pair returns the key for the unordered pair {a, b}.
func Pair(a, b string) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{Lo: a, Hi: b}
}
