package plan

import (
	"slices"
	"testing"
)

func TestNewSnapshot(t *testing.T) {
	dots := []Dot{
		{ID: "c", Seq: 3, Floor: "Map 2"},
		{ID: "a", Seq: 1, Floor: "Map 1"},
		{ID: "b", Seq: 2, Floor: "Map 1"},
	}
	conns := []Connection{
		{A: "b", B: "c", Seq: 2, Weight: 1},
		{A: "a", B: "b", Seq: 1, Weight: 5},
		{A: "c", B: "b", Seq: 3, Weight: 9},       // duplicate pair
		{A: "a", B: "missing", Seq: 4, Weight: 1}, // dangling
	}

	s := NewSnapshot(dots, conns)

	if got := ids(s.Dots); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Dots order = %v", got)
	}
	if len(s.Connections) != 2 {
		t.Fatalf("Connections = %v, want 2 after dropping duplicate and dangling", s.Connections)
	}
	if c, ok := s.Connection("c", "b"); !ok || c.Weight != 1 {
		t.Errorf("Connection(c, b) = %+v, %v", c, ok)
	}
	inc := s.Incident("b")
	if len(inc) != 2 || inc[0].Seq != 1 || inc[1].Seq != 2 {
		t.Errorf("Incident(b) = %v", inc)
	}
	if len(s.Incident("missing")) != 0 {
		t.Error("Incident(missing) should be empty")
	}
	if got := s.Floors(); !slices.Equal(got, []string{"Map 1", "Map 2"}) {
		t.Errorf("Floors() = %v", got)
	}
	if got := ids(s.DotsOn("Map 1")); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("DotsOn(Map 1) = %v", got)
	}
	if s.Has("missing") {
		t.Error("Has(missing) = true")
	}

	// The caller's slices are not reordered.
	if dots[0].ID != "c" {
		t.Error("NewSnapshot sorted the input slice")
	}
}

func TestConnectionHelpers(t *testing.T) {
	c := Connection{A: "x", B: "y"}
	if c.Other("x") != "y" || c.Other("y") != "x" || c.Other("z") != "" {
		t.Error("Other() mismatch")
	}
	if c.Key() != Pair("y", "x") {
		t.Error("Key() is not orientation independent")
	}
	if !c.Touches("x") || c.Touches("z") {
		t.Error("Touches() mismatch")
	}
}
