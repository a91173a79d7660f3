package editor

import (
	"io"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/waypoint/pkg/errors"
	"github.com/matzehuels/waypoint/pkg/floor"
	"github.com/matzehuels/waypoint/pkg/observability"
	"github.com/matzehuels/waypoint/pkg/plan"
)

func newTestEditor(opts ...Option) *Editor {
	base := []Option{
		WithLogger(log.New(io.Discard)),
		WithIDGenerator(&plan.SequentialIDs{Prefix: "d"}),
	}
	return New(append(base, opts...)...)
}

func mustPlace(t *testing.T, e *Editor, floorName string, x, y float64) plan.Dot {
	t.Helper()
	d, err := e.PlaceDot(floorName, x, y)
	if err != nil {
		t.Fatalf("PlaceDot(%q, %v, %v): %v", floorName, x, y, err)
	}
	return d
}

func mustConnect(t *testing.T, e *Editor, a, b string) plan.Connection {
	t.Helper()
	c, err := e.ConnectDots(a, b)
	if err != nil {
		t.Fatalf("ConnectDots(%s, %s): %v", a, b, err)
	}
	return c
}

func TestPlaceDot(t *testing.T) {
	e := newTestEditor()
	d := mustPlace(t, e, "Map 2", 3, 4)
	if d.Floor != "Map 2" || d.X != 3 || d.Y != 4 {
		t.Errorf("dot = %+v", d)
	}
	got, err := e.Dot(d.ID)
	if err != nil {
		t.Fatalf("Dot: %v", err)
	}
	if got.ID != d.ID {
		t.Errorf("Dot(%s).ID = %s", d.ID, got.ID)
	}
}

func TestPlaceDotRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		floor string
		x, y  float64
		label string
	}{
		{"unknown floor", "Roof", 0, 0, ""},
		{"NaN x", "Map 1", math.NaN(), 0, ""},
		{"infinite y", "Map 1", 0, math.Inf(1), ""},
		{"control char name", "Map 1", 0, 0, "a\x00b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor()
			_, err := e.PlaceNamedDot(tt.floor, tt.x, tt.y, tt.label)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("err = %v, want INVALID_INPUT", err)
			}
			if len(e.Dots()) != 0 {
				t.Error("rejected placement created a dot")
			}
		})
	}
}

func TestCustomFloors(t *testing.T) {
	reg, err := floor.NewRegistry([]floor.Floor{
		{Name: "Ground", Ordinal: 0},
		{Name: "Roof", Ordinal: 5},
	})
	if err != nil {
		t.Fatal(err)
	}
	e := newTestEditor(WithFloors(reg))
	if _, err := e.PlaceDot("Map 1", 0, 0); err == nil {
		t.Error("default floor accepted by custom registry")
	}
	g := mustPlace(t, e, "Ground", 0, 0)
	r := mustPlace(t, e, "Roof", 0, 0)
	c := mustConnect(t, e, g.ID, r.ID)
	if c.Weight != 5 {
		t.Errorf("weight = %v, want 5 from registry ordinals", c.Weight)
	}
}

func TestConnectDotsWeight(t *testing.T) {
	e := newTestEditor()
	a := mustPlace(t, e, "Map 1", 0, 0)
	b := mustPlace(t, e, "Map 1", 3, 4)
	c := mustPlace(t, e, "Map 3", 100, 100)

	if w := mustConnect(t, e, a.ID, b.ID).Weight; w != 5 {
		t.Errorf("same-floor weight = %v, want 5", w)
	}
	if w := mustConnect(t, e, a.ID, c.ID).Weight; w != 2 {
		t.Errorf("cross-floor weight = %v, want 2", w)
	}
}

func TestConnectDotsHopCost(t *testing.T) {
	e := newTestEditor(WithPolicy(plan.Policy{HopCost: 10}))
	a := mustPlace(t, e, "Map 1", 0, 0)
	b := mustPlace(t, e, "Map 2", 0, 0)
	if w := mustConnect(t, e, a.ID, b.ID).Weight; w != 10 {
		t.Errorf("weight = %v, want 10", w)
	}
}

func TestConnectDotsErrors(t *testing.T) {
	e := newTestEditor()
	a := mustPlace(t, e, "Map 1", 0, 0)
	b := mustPlace(t, e, "Map 1", 1, 0)
	first := mustConnect(t, e, a.ID, b.ID)

	tests := []struct {
		name string
		a, b string
		code errors.Code
	}{
		{"missing a", "nope", b.ID, errors.ErrCodeNotFound},
		{"missing b", a.ID, "nope", errors.ErrCodeNotFound},
		{"self", a.ID, a.ID, errors.ErrCodeInvalidOperation},
		{"duplicate", a.ID, b.ID, errors.ErrCodeInvalidOperation},
		{"duplicate reversed", b.ID, a.ID, errors.ErrCodeInvalidOperation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.ConnectDots(tt.a, tt.b)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s", got, tt.code)
			}
		})
	}

	conns := e.Connections()
	if len(conns) != 1 || conns[0] != first {
		t.Errorf("connections changed after rejected attempts: %+v", conns)
	}
}

func TestDeleteDotCascades(t *testing.T) {
	e := newTestEditor()
	a := mustPlace(t, e, "Map 1", 0, 0)
	b := mustPlace(t, e, "Map 2", 0, 0)
	c := mustPlace(t, e, "Map 1", 1, 1)
	mustConnect(t, e, a.ID, b.ID)
	mustConnect(t, e, b.ID, c.ID)
	mustConnect(t, e, a.ID, c.ID)

	e.DeleteDot(b.ID)

	if _, err := e.Dot(b.ID); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Dot after delete: err = %v, want NOT_FOUND", err)
	}
	for _, conn := range e.Connections() {
		if conn.Touches(b.ID) {
			t.Errorf("connection %v survived deletion of %s", conn.Key(), b.ID)
		}
	}
	if n := len(e.Connections()); n != 1 {
		t.Errorf("connections = %d, want 1", n)
	}
	got, _ := e.Dot(a.ID)
	if got.CrossFloor {
		t.Error("a still marked cross-floor after its only cross link was deleted")
	}

	e.DeleteDot("nope")
	if n := len(e.Dots()); n != 2 {
		t.Errorf("dots = %d, want 2", n)
	}
}

func TestDisconnectDots(t *testing.T) {
	e := newTestEditor()
	a := mustPlace(t, e, "Map 1", 0, 0)
	b := mustPlace(t, e, "Map 1", 1, 0)
	mustConnect(t, e, a.ID, b.ID)

	e.DisconnectDots(b.ID, a.ID)
	if n := len(e.Connections()); n != 0 {
		t.Fatalf("connections = %d, want 0", n)
	}
	e.DisconnectDots(a.ID, b.ID)
	mustConnect(t, e, a.ID, b.ID)
}

func TestRenameAndLabels(t *testing.T) {
	e := newTestEditor()
	a := mustPlace(t, e, "Map 1", 0, 0)

	if err := e.RenameDot(a.ID, "Lobby"); err != nil {
		t.Fatalf("RenameDot: %v", err)
	}
	if err := e.SetDotLabelVisible(a.ID, false); err != nil {
		t.Fatalf("SetDotLabelVisible: %v", err)
	}
	got, _ := e.Dot(a.ID)
	if got.Name != "Lobby" || got.LabelVisible {
		t.Errorf("dot = %+v", got)
	}

	if err := e.RenameDot("nope", "x"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("RenameDot missing: err = %v", err)
	}
	if err := e.RenameDot(a.ID, "bad\nname"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RenameDot invalid: err = %v", err)
	}
	if err := e.SetDotRenderVisible("nope", true); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("SetDotRenderVisible missing: err = %v", err)
	}
}

func TestToggleAll(t *testing.T) {
	e := newTestEditor()
	a := mustPlace(t, e, "Map 1", 0, 0)
	b := mustPlace(t, e, "Map 1", 1, 0)
	mustConnect(t, e, a.ID, b.ID)

	if v := e.ToggleAllDotsRenderVisible(); v {
		t.Fatal("first dot toggle should hide")
	}
	if n := len(e.FloorView("Map 1").Dots); n != 0 {
		t.Errorf("visible dots = %d, want 0", n)
	}
	if v := e.ToggleAllDotsRenderVisible(); !v {
		t.Fatal("second dot toggle should show")
	}

	if v := e.ToggleAllConnectionsVisible(); v {
		t.Fatal("first connection toggle should hide")
	}
	c := mustPlace(t, e, "Map 1", 2, 0)
	conn := mustConnect(t, e, b.ID, c.ID)
	if conn.Visible {
		t.Error("connection created while hidden should start hidden")
	}
	for _, conn := range e.Connections() {
		if conn.Visible {
			t.Errorf("connection %v visible after toggle", conn.Key())
		}
	}
}

func TestFindPathAppliesRoute(t *testing.T) {
	e := newTestEditor()
	a := mustPlace(t, e, "Map 1", 0, 0)
	b := mustPlace(t, e, "Map 1", 10, 0)
	c := mustPlace(t, e, "Map 2", 0, 0)
	mustConnect(t, e, a.ID, b.ID)
	mustConnect(t, e, b.ID, c.ID)

	e.ToggleAllConnectionsVisible()
	e.ToggleAllDotsRenderVisible()
	e.SetDotLabelVisible(b.ID, false)

	res, err := e.FindPath(a.ID, c.ID)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if want := []string{a.ID, b.ID, c.ID}; !slices.Equal(res.Path, want) {
		t.Errorf("path = %v, want %v", res.Path, want)
	}
	if res.Cost != 11 {
		t.Errorf("cost = %v, want 11", res.Cost)
	}
	for _, id := range res.Path {
		d, _ := e.Dot(id)
		if !d.RenderVisible || !d.LabelVisible {
			t.Errorf("dot %s not revealed: %+v", id, d)
		}
	}
	for _, conn := range e.Connections() {
		if !conn.Visible {
			t.Errorf("path connection %v not revealed", conn.Key())
		}
	}

	view := e.FloorView("Map 1")
	if !slices.Equal(view.Highlighted, []string{b.ID}) {
		t.Errorf("highlighted = %v, want [%s]", view.Highlighted, b.ID)
	}
}

func TestFindPathLeavesOthersAlone(t *testing.T) {
	e := newTestEditor()
	a := mustPlace(t, e, "Map 1", 0, 0)
	b := mustPlace(t, e, "Map 1", 1, 0)
	other := mustPlace(t, e, "Map 1", 5, 5)
	mustConnect(t, e, a.ID, b.ID)
	mustConnect(t, e, b.ID, other.ID)
	e.ToggleAllConnectionsVisible()
	e.ToggleAllDotsRenderVisible()

	if _, err := e.FindPath(a.ID, b.ID); err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	d, _ := e.Dot(other.ID)
	if d.RenderVisible {
		t.Error("dot off the path was revealed")
	}
	for _, conn := range e.Connections() {
		if conn.Touches(other.ID) && conn.Visible {
			t.Error("connection off the path was revealed")
		}
	}
}

func TestFindPathErrors(t *testing.T) {
	e := newTestEditor()
	a := mustPlace(t, e, "Map 1", 0, 0)
	b := mustPlace(t, e, "Map 2", 0, 0)
	e.ToggleAllDotsRenderVisible()

	if _, err := e.FindPath(a.ID, b.ID); !errors.Is(err, errors.ErrCodeUnreachable) {
		t.Errorf("disconnected: err = %v, want UNREACHABLE", err)
	}
	if _, err := e.FindPath(a.ID, "nope"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("missing end: err = %v, want NOT_FOUND", err)
	}
	for _, d := range e.Dots() {
		if d.RenderVisible {
			t.Errorf("failed search changed dot %s", d.ID)
		}
	}
}

func TestNeighborsAndCandidates(t *testing.T) {
	e := newTestEditor()
	a := mustPlace(t, e, "Map 1", 0, 0)
	b, _ := e.PlaceNamedDot("Map 1", 1, 0, "Elevator")
	c, _ := e.PlaceNamedDot("Map 2", 1, 0, "Stairs")
	mustConnect(t, e, a.ID, b.ID)

	ns, err := e.Neighbors(a.ID)
	if err != nil || len(ns) != 1 || ns[0].ID != b.ID {
		t.Errorf("Neighbors = %v, %v", ns, err)
	}
	cs, err := e.Candidates(a.ID, "stair")
	if err != nil || len(cs) != 1 || cs[0].ID != c.ID {
		t.Errorf("Candidates = %v, %v", cs, err)
	}
	if _, err := e.Neighbors("nope"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Neighbors missing: err = %v", err)
	}
}

type recordingHooks struct {
	observability.NoopEditorHooks
	placed, deleted, connected int
}

func (r *recordingHooks) OnDotPlaced(string, string)                { r.placed++ }
func (r *recordingHooks) OnDotDeleted(string, int)                  { r.deleted++ }
func (r *recordingHooks) OnConnected(string, string, float64, bool) { r.connected++ }

type recordingRouteHooks struct {
	observability.NoopRouteHooks
	completed int
	lastErr   error
}

func (r *recordingRouteHooks) OnRouteComplete(_, _ string, _ int, _ time.Duration, err error) {
	r.completed++
	r.lastErr = err
}

func TestHooks(t *testing.T) {
	eh := &recordingHooks{}
	rh := &recordingRouteHooks{}
	observability.SetEditorHooks(eh)
	observability.SetRouteHooks(rh)
	t.Cleanup(observability.Reset)

	e := newTestEditor()
	a := mustPlace(t, e, "Map 1", 0, 0)
	b := mustPlace(t, e, "Map 1", 1, 0)
	mustConnect(t, e, a.ID, b.ID)
	e.ConnectDots(a.ID, b.ID)
	e.FindPath(a.ID, b.ID)
	e.FindPath(a.ID, "nope")
	e.DeleteDot(a.ID)
	e.DeleteDot(a.ID)

	if eh.placed != 2 || eh.connected != 1 || eh.deleted != 1 {
		t.Errorf("editor hooks = %+v", eh)
	}
	if rh.completed != 2 || rh.lastErr == nil {
		t.Errorf("route hooks = %+v", rh)
	}
}
