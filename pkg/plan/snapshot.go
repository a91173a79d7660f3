package plan

import "slices"

// Snapshot is an immutable copy of the annotation graph.
// Dots and Connections are ordered by Seq. Callers must not modify the
// slices; use the lookup methods instead of scanning.
type Snapshot struct {
	Dots        []Dot
	Connections []Connection

	index    map[string]int   // dot ID -> position in Dots
	incident map[string][]int // dot ID -> positions in Connections
	pairs    map[PairKey]int
}

// NewSnapshot indexes the given dots and connections. Both slices are
// copied and sorted by Seq. Connections whose endpoints are not among dots
// are dropped.
func NewSnapshot(dots []Dot, conns []Connection) *Snapshot {
	s := &Snapshot{
		Dots:     slices.Clone(dots),
		index:    make(map[string]int, len(dots)),
		incident: make(map[string][]int, len(dots)),
		pairs:    make(map[PairKey]int, len(conns)),
	}
	slices.SortStableFunc(s.Dots, func(a, b Dot) int { return cmpSeq(a.Seq, b.Seq) })
	for i, d := range s.Dots {
		s.index[d.ID] = i
	}

	sorted := slices.Clone(conns)
	slices.SortStableFunc(sorted, func(a, b Connection) int { return cmpSeq(a.Seq, b.Seq) })
	for _, c := range sorted {
		if !s.Has(c.A) || !s.Has(c.B) {
			continue
		}
		if _, dup := s.pairs[c.Key()]; dup {
			continue
		}
		i := len(s.Connections)
		s.Connections = append(s.Connections, c)
		s.pairs[c.Key()] = i
		s.incident[c.A] = append(s.incident[c.A], i)
		s.incident[c.B] = append(s.incident[c.B], i)
	}
	return s
}

func cmpSeq(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Has reports whether the snapshot contains a dot with the given ID.
func (s *Snapshot) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Dot returns the dot with the given ID.
func (s *Snapshot) Dot(id string) (Dot, bool) {
	i, ok := s.index[id]
	if !ok {
		return Dot{}, false
	}
	return s.Dots[i], true
}

// Incident returns the connections touching id, in Seq order.
func (s *Snapshot) Incident(id string) []Connection {
	idx := s.incident[id]
	out := make([]Connection, len(idx))
	for i, j := range idx {
		out[i] = s.Connections[j]
	}
	return out
}

// Connection returns the connection between a and b in either orientation.
func (s *Snapshot) Connection(a, b string) (Connection, bool) {
	i, ok := s.pairs[Pair(a, b)]
	if !ok {
		return Connection{}, false
	}
	return s.Connections[i], true
}

// Floors returns the distinct floors that carry at least one dot, in the
// order they first appear.
func (s *Snapshot) Floors() []string {
	var out []string
	seen := make(map[string]bool)
	for _, d := range s.Dots {
		if !seen[d.Floor] {
			seen[d.Floor] = true
			out = append(out, d.Floor)
		}
	}
	return out
}

// DotsOn returns every dot on the given floor regardless of visibility.
func (s *Snapshot) DotsOn(floorName string) []Dot {
	var out []Dot
	for _, d := range s.Dots {
		if d.Floor == floorName {
			out = append(out, d)
		}
	}
	return out
}
