package editor

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/waypoint/pkg/errors"
	"github.com/matzehuels/waypoint/pkg/floor"
	"github.com/matzehuels/waypoint/pkg/observability"
	"github.com/matzehuels/waypoint/pkg/plan"
	"github.com/matzehuels/waypoint/pkg/plan/route"
)

// Editor is one in-memory editing session.
type Editor struct {
	store  *plan.Store
	floors *floor.Registry
	policy plan.Policy
	logger *log.Logger
}

// Option configures an Editor.
type Option func(*editorConfig)

type editorConfig struct {
	floors    *floor.Registry
	policy    *plan.Policy
	logger    *log.Logger
	storeOpts []plan.Option
}

// WithLogger sets the logger for debug output. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(c *editorConfig) { c.logger = l }
}

// WithFloors restricts dot placement to the given floors. Defaults to
// floor.Default().
func WithFloors(r *floor.Registry) Option {
	return func(c *editorConfig) { c.floors = r }
}

// WithPolicy sets the weight policy. A policy without a registry inherits
// the editor's floors.
func WithPolicy(p plan.Policy) Option {
	return func(c *editorConfig) { c.policy = &p }
}

// WithIDGenerator sets the dot ID generator of the underlying store.
func WithIDGenerator(g plan.IDGenerator) Option {
	return func(c *editorConfig) { c.storeOpts = append(c.storeOpts, plan.WithIDGenerator(g)) }
}

// New creates an editor with an empty store.
func New(opts ...Option) *Editor {
	var cfg editorConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.floors == nil {
		cfg.floors = floor.Default()
	}
	if cfg.logger == nil {
		cfg.logger = log.Default()
	}
	policy := plan.Policy{}
	if cfg.policy != nil {
		policy = *cfg.policy
	}
	if policy.Floors == nil {
		policy.Floors = cfg.floors
	}
	return &Editor{
		store:  plan.New(cfg.storeOpts...),
		floors: cfg.floors,
		policy: policy,
		logger: cfg.logger,
	}
}

// Floors returns the floors dots may be placed on.
func (e *Editor) Floors() *floor.Registry { return e.floors }

// Policy returns the weight policy in effect.
func (e *Editor) Policy() plan.Policy { return e.policy }

// =============================================================================
// Dots
// =============================================================================

// PlaceDot creates an unnamed dot on a registered floor.
func (e *Editor) PlaceDot(floorName string, x, y float64) (plan.Dot, error) {
	return e.PlaceNamedDot(floorName, x, y, "")
}

// PlaceNamedDot creates a dot with a label. It returns INVALID_INPUT for an
// unregistered floor, a non-finite coordinate or an invalid name.
func (e *Editor) PlaceNamedDot(floorName string, x, y float64, name string) (plan.Dot, error) {
	if !e.floors.Has(floorName) {
		return plan.Dot{}, errors.New(errors.ErrCodeInvalidInput, "unknown floor %q", floorName)
	}
	if err := errors.ValidateCoordinate("x", x); err != nil {
		return plan.Dot{}, err
	}
	if err := errors.ValidateCoordinate("y", y); err != nil {
		return plan.Dot{}, err
	}
	if err := errors.ValidateDotName(name); err != nil {
		return plan.Dot{}, err
	}

	d := e.store.AddDot(floorName, x, y, name)
	e.logger.Debug("placed dot", "id", d.ID, "floor", floorName, "x", x, "y", y)
	observability.Editor().OnDotPlaced(d.ID, floorName)
	return d, nil
}

// Dot returns the dot with the given ID.
func (e *Editor) Dot(id string) (plan.Dot, error) {
	d, ok := e.store.Dot(id)
	if !ok {
		return plan.Dot{}, errors.NotFound("dot %s not found", id)
	}
	return d, nil
}

// Dots returns every dot in creation order.
func (e *Editor) Dots() []plan.Dot { return e.store.Dots() }

// RenameDot sets a dot's label.
func (e *Editor) RenameDot(id, name string) error {
	if err := errors.ValidateDotName(name); err != nil {
		return err
	}
	if err := e.store.RenameDot(id, name); err != nil {
		return err
	}
	e.logger.Debug("renamed dot", "id", id, "name", name)
	return nil
}

// SetDotLabelVisible shows or hides a dot's label.
func (e *Editor) SetDotLabelVisible(id string, visible bool) error {
	return e.store.SetLabelVisible(id, visible)
}

// SetDotRenderVisible shows or hides a single dot.
func (e *Editor) SetDotRenderVisible(id string, visible bool) error {
	return e.store.SetRenderVisible(id, visible)
}

// ToggleAllDotsRenderVisible shows or hides every dot at once and returns
// the new setting.
func (e *Editor) ToggleAllDotsRenderVisible() bool {
	v := e.store.ToggleAllRenderVisible()
	e.logger.Debug("toggled dot visibility", "visible", v)
	return v
}

// DeleteDot removes a dot and every connection touching it. Deleting an
// unknown ID does nothing.
func (e *Editor) DeleteDot(id string) {
	removed, ok := e.store.DeleteDot(id)
	if !ok {
		return
	}
	e.logger.Debug("deleted dot", "id", id, "connections", len(removed))
	observability.Editor().OnDotDeleted(id, len(removed))
}

// Neighbors returns the dots connected to id.
func (e *Editor) Neighbors(id string) ([]plan.Dot, error) {
	return e.store.Neighbors(id)
}

// Candidates returns the dots id could be connected to whose label
// contains filter, ignoring case.
func (e *Editor) Candidates(id, filter string) ([]plan.Dot, error) {
	return e.store.Candidates(id, filter)
}

// =============================================================================
// Connections
// =============================================================================

// ConnectDots joins two dots. The weight is computed once from the current
// positions by the editor's policy. A missing dot yields NOT_FOUND; a
// self-connection or an existing pair yields INVALID_OPERATION and leaves
// the existing connection unchanged.
func (e *Editor) ConnectDots(a, b string) (plan.Connection, error) {
	da, ok := e.store.Dot(a)
	if !ok {
		return plan.Connection{}, errors.NotFound("dot %s not found", a)
	}
	db, ok := e.store.Dot(b)
	if !ok {
		return plan.Connection{}, errors.NotFound("dot %s not found", b)
	}

	c, err := e.store.AddConnection(a, b, e.policy.Weight(da, db))
	if err != nil {
		e.logger.Debug("connection rejected", "a", a, "b", b, "err", err)
		return plan.Connection{}, err
	}
	cross := da.Floor != db.Floor
	e.logger.Debug("connected dots", "a", a, "b", b, "weight", c.DisplayWeight(), "cross_floor", cross)
	observability.Editor().OnConnected(a, b, c.Weight, cross)
	return c, nil
}

// DisconnectDots removes the connection between a and b, if any.
func (e *Editor) DisconnectDots(a, b string) {
	if !e.store.RemoveConnection(a, b) {
		return
	}
	e.logger.Debug("disconnected dots", "a", a, "b", b)
	observability.Editor().OnDisconnected(a, b)
}

// Connections returns every connection in creation order.
func (e *Editor) Connections() []plan.Connection { return e.store.Connections() }

// ToggleAllConnectionsVisible shows or hides every connection at once and
// returns the new setting, which also applies to connections created later.
func (e *Editor) ToggleAllConnectionsVisible() bool {
	v := !e.store.ConnectionsVisible()
	e.store.SetAllConnectionsVisible(v)
	e.logger.Debug("toggled connection visibility", "visible", v)
	return v
}

// =============================================================================
// Views and routes
// =============================================================================

// FloorView returns what the given floor should render.
func (e *Editor) FloorView(floorName string) plan.FloorView {
	return e.store.FloorView(floorName)
}

// Snapshot returns a read-only copy of the whole graph.
func (e *Editor) Snapshot() *plan.Snapshot { return e.store.Snapshot() }

// FindPath computes the cheapest route between two dots over every floor
// and reveals it: the route's dots and labels and the connections between
// consecutive dots become visible. On error nothing changes.
func (e *Editor) FindPath(start, end string) (route.Result, error) {
	snap := e.store.Snapshot()
	hooks := observability.Route()
	hooks.OnRouteStart(start, end, len(snap.Dots))

	t0 := time.Now()
	res, err := route.Shortest(snap, start, end)
	elapsed := time.Since(t0)
	hooks.OnRouteComplete(start, end, res.Hops(), elapsed, err)
	if err != nil {
		e.logger.Debug("no route", "start", start, "end", end, "err", err)
		return route.Result{}, err
	}

	e.store.ApplyPath(res.Path)
	e.logger.Debug("found route", "start", start, "end", end,
		"hops", res.Hops(), "cost", plan.Round2(res.Cost), "elapsed", elapsed)
	return res, nil
}
