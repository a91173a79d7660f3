package plan

// FloorView is what one floor renders.
type FloorView struct {
	Floor string `json:"floor"`

	// Dots lists the floor's dots whose RenderVisible flag is set.
	Dots []Dot `json:"dots"`

	// Connections lists every connection with both endpoints on the floor.
	// The renderer decides from Connection.Visible whether to draw it.
	Connections []Connection `json:"connections"`

	// Highlighted lists the IDs of rendered dots that reach another floor
	// through at least one visible connection.
	Highlighted []string `json:"highlighted"`
}

// Project derives the view of one floor from a snapshot.
func Project(snap *Snapshot, floorName string) FloorView {
	v := FloorView{
		Floor:       floorName,
		Dots:        []Dot{},
		Connections: []Connection{},
		Highlighted: []string{},
	}
	for _, d := range snap.Dots {
		if d.Floor != floorName || !d.RenderVisible {
			continue
		}
		v.Dots = append(v.Dots, d)
		if d.CrossFloor && visibleCrossLink(snap, d) {
			v.Highlighted = append(v.Highlighted, d.ID)
		}
	}
	for _, c := range snap.Connections {
		a, _ := snap.Dot(c.A)
		b, _ := snap.Dot(c.B)
		if a.Floor == floorName && b.Floor == floorName {
			v.Connections = append(v.Connections, c)
		}
	}
	return v
}

func visibleCrossLink(snap *Snapshot, d Dot) bool {
	for _, c := range snap.Incident(d.ID) {
		if !c.Visible {
			continue
		}
		if o, ok := snap.Dot(c.Other(d.ID)); ok && o.Floor != d.Floor {
			return true
		}
	}
	return false
}

// FloorView returns the current view of one floor.
func (s *Store) FloorView(floorName string) FloorView {
	return Project(s.Snapshot(), floorName)
}

// ApplyPath reveals a route: every dot on path becomes rendered with its
// label shown and every connection joining consecutive path dots becomes
// visible. Nothing else changes and nothing is created. Unknown IDs and
// missing connections are skipped.
func (s *Store) ApplyPath(path []string) {
	for i, id := range path {
		if d, ok := s.dots[id]; ok {
			d.RenderVisible = true
			d.LabelVisible = true
		}
		if i == 0 {
			continue
		}
		if c, ok := s.pairs[Pair(path[i-1], id)]; ok {
			c.Visible = true
		}
	}
}

// refreshCrossFloor recomputes Dot.CrossFloor from the connection set.
func (s *Store) refreshCrossFloor() {
	for _, d := range s.dots {
		d.CrossFloor = false
	}
	for _, c := range s.conns {
		a, b := s.dots[c.A], s.dots[c.B]
		if a.Floor != b.Floor {
			a.CrossFloor = true
			b.CrossFloor = true
		}
	}
}
