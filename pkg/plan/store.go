package plan

import (
	"math"
	"slices"
	"strings"

	"github.com/matzehuels/waypoint/pkg/errors"
)

// maxIDAttempts bounds how often AddDot asks the generator for a fresh ID
// before falling back to a UUID.
const maxIDAttempts = 16

// Store owns the dots and connections of one editing session.
//
// The zero value is not usable - use New to create a Store.
// Store is not safe for concurrent use without external synchronization.
type Store struct {
	dots  map[string]*Dot
	order []string // dot IDs in Seq order

	conns []*Connection // in Seq order
	pairs map[PairKey]*Connection

	ids     IDGenerator
	dotSeq  uint64
	connSeq uint64

	dotsVisible  bool
	connsVisible bool
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) {
		if g != nil {
			s.ids = g
		}
	}
}

// New creates an empty store. Dots and connections start visible.
func New(opts ...Option) *Store {
	s := &Store{
		dots:         make(map[string]*Dot),
		pairs:        make(map[PairKey]*Connection),
		ids:          UUIDGenerator{},
		dotsVisible:  true,
		connsVisible: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// =============================================================================
// Dots
// =============================================================================

// AddDot places a new dot and returns a copy of it. The dot starts with
// both its label and itself visible. The store does not validate floor
// names or coordinates; callers that accept user input do.
func (s *Store) AddDot(floorName string, x, y float64, name string) Dot {
	s.dotSeq++
	d := &Dot{
		ID:            s.newID(),
		Seq:           s.dotSeq,
		X:             x,
		Y:             y,
		Name:          name,
		Floor:         floorName,
		LabelVisible:  true,
		RenderVisible: true,
	}
	s.dots[d.ID] = d
	s.order = append(s.order, d.ID)
	return *d
}

func (s *Store) newID() string {
	for range maxIDAttempts {
		id := s.ids.NewID()
		if _, taken := s.dots[id]; id != "" && !taken {
			return id
		}
	}
	return UUIDGenerator{}.NewID()
}

// Dot returns a copy of the dot with the given ID.
func (s *Store) Dot(id string) (Dot, bool) {
	d, ok := s.dots[id]
	if !ok {
		return Dot{}, false
	}
	return *d, true
}

// Has reports whether a dot with the given ID exists.
func (s *Store) Has(id string) bool {
	_, ok := s.dots[id]
	return ok
}

// Dots returns copies of all dots in creation order.
func (s *Store) Dots() []Dot {
	out := make([]Dot, len(s.order))
	for i, id := range s.order {
		out[i] = *s.dots[id]
	}
	return out
}

// Len returns the number of dots.
func (s *Store) Len() int { return len(s.dots) }

// RenameDot sets a dot's name. An empty name is allowed.
func (s *Store) RenameDot(id, name string) error {
	d, err := s.lookup(id)
	if err != nil {
		return err
	}
	d.Name = name
	return nil
}

// SetLabelVisible shows or hides a dot's name.
func (s *Store) SetLabelVisible(id string, visible bool) error {
	d, err := s.lookup(id)
	if err != nil {
		return err
	}
	d.LabelVisible = visible
	return nil
}

// SetRenderVisible shows or hides a dot on its floor.
func (s *Store) SetRenderVisible(id string, visible bool) error {
	d, err := s.lookup(id)
	if err != nil {
		return err
	}
	d.RenderVisible = visible
	return nil
}

// DotsVisible returns the store-wide dot visibility last set by
// ToggleAllRenderVisible.
func (s *Store) DotsVisible() bool { return s.dotsVisible }

// ToggleAllRenderVisible flips the store-wide dot visibility, writes it to
// every dot and returns the new value.
func (s *Store) ToggleAllRenderVisible() bool {
	s.dotsVisible = !s.dotsVisible
	for _, d := range s.dots {
		d.RenderVisible = s.dotsVisible
	}
	return s.dotsVisible
}

// DeleteDot removes a dot together with every connection touching it and
// returns the removed connections. Deleting an unknown ID is a no-op that
// returns ok == false.
func (s *Store) DeleteDot(id string) (removed []Connection, ok bool) {
	if _, exists := s.dots[id]; !exists {
		return nil, false
	}
	delete(s.dots, id)
	s.order = slices.DeleteFunc(s.order, func(o string) bool { return o == id })

	s.conns = slices.DeleteFunc(s.conns, func(c *Connection) bool {
		if !c.Touches(id) {
			return false
		}
		removed = append(removed, *c)
		delete(s.pairs, c.Key())
		return true
	})
	if len(removed) > 0 {
		s.refreshCrossFloor()
	}
	return removed, true
}

func (s *Store) lookup(id string) (*Dot, error) {
	d, ok := s.dots[id]
	if !ok {
		return nil, errors.NotFound("dot %s not found", id)
	}
	return d, nil
}

// =============================================================================
// Connections
// =============================================================================

// AddConnection joins two existing dots with the given weight.
//
// It returns a NOT_FOUND error if either dot is missing and an
// INVALID_OPERATION error for a self-connection, an already connected pair
// or a negative or NaN weight. On error the store is unchanged. The new
// connection's visibility follows ConnectionsVisible.
func (s *Store) AddConnection(a, b string, weight float64) (Connection, error) {
	if _, err := s.lookup(a); err != nil {
		return Connection{}, err
	}
	if _, err := s.lookup(b); err != nil {
		return Connection{}, err
	}
	if a == b {
		return Connection{}, errors.Invalid("cannot connect dot %s to itself", a)
	}
	if _, dup := s.pairs[Pair(a, b)]; dup {
		return Connection{}, errors.Invalid("dots %s and %s are already connected", a, b)
	}
	if weight < 0 || math.IsNaN(weight) {
		return Connection{}, errors.Invalid("connection weight must be non-negative, got %v", weight)
	}

	s.connSeq++
	c := &Connection{A: a, B: b, Seq: s.connSeq, Weight: weight, Visible: s.connsVisible}
	s.conns = append(s.conns, c)
	s.pairs[c.Key()] = c
	s.refreshCrossFloor()
	return *c, nil
}

// RemoveConnection deletes the connection between a and b in either
// orientation. It reports whether a connection was removed.
func (s *Store) RemoveConnection(a, b string) bool {
	key := Pair(a, b)
	c, ok := s.pairs[key]
	if !ok {
		return false
	}
	delete(s.pairs, key)
	s.conns = slices.DeleteFunc(s.conns, func(o *Connection) bool { return o == c })
	s.refreshCrossFloor()
	return true
}

// Connection returns the connection between a and b in either orientation.
func (s *Store) Connection(a, b string) (Connection, bool) {
	c, ok := s.pairs[Pair(a, b)]
	if !ok {
		return Connection{}, false
	}
	return *c, true
}

// Connections returns copies of all connections in creation order.
func (s *Store) Connections() []Connection {
	out := make([]Connection, len(s.conns))
	for i, c := range s.conns {
		out[i] = *c
	}
	return out
}

// ConnectionCount returns the number of connections.
func (s *Store) ConnectionCount() int { return len(s.conns) }

// ConnectionsVisible returns the visibility new connections are created with.
func (s *Store) ConnectionsVisible() bool { return s.connsVisible }

// SetAllConnectionsVisible writes visible to every connection and makes it
// the default for connections created later.
func (s *Store) SetAllConnectionsVisible(visible bool) {
	s.connsVisible = visible
	for _, c := range s.conns {
		c.Visible = visible
	}
}

// =============================================================================
// Queries
// =============================================================================

// Neighbors returns the dots connected to id, in connection order.
func (s *Store) Neighbors(id string) ([]Dot, error) {
	if _, err := s.lookup(id); err != nil {
		return nil, err
	}
	var out []Dot
	for _, c := range s.conns {
		if c.Touches(id) {
			out = append(out, *s.dots[c.Other(id)])
		}
	}
	return out, nil
}

// Candidates returns every other dot, on any floor, whose label contains
// filter, ignoring case. An empty filter matches all dots.
func (s *Store) Candidates(id, filter string) ([]Dot, error) {
	if _, err := s.lookup(id); err != nil {
		return nil, err
	}
	needle := strings.ToLower(filter)
	var out []Dot
	for _, oid := range s.order {
		if oid == id {
			continue
		}
		d := s.dots[oid]
		if strings.Contains(strings.ToLower(d.Label()), needle) {
			out = append(out, *d)
		}
	}
	return out, nil
}

// Snapshot returns a deep copy of the graph for read-only consumers such as
// the route engine.
func (s *Store) Snapshot() *Snapshot {
	return NewSnapshot(s.Dots(), s.Connections())
}
