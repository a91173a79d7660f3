package route

import (
	"math"

	"github.com/matzehuels/waypoint/pkg/errors"
	"github.com/matzehuels/waypoint/pkg/plan"
)

// Result is a found path. Path runs from start to end inclusive and Cost is
// the sum of the full-precision connection weights along it.
type Result struct {
	Path []string `json:"path"`
	Cost float64  `json:"cost"`
}

// Hops returns the number of connections on the path.
func (r Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Pairs returns the consecutive dot pairs of the path, one per traversed
// connection.
func (r Result) Pairs() [][2]string {
	if len(r.Path) < 2 {
		return nil
	}
	out := make([][2]string, 0, len(r.Path)-1)
	for i := 1; i < len(r.Path); i++ {
		out = append(out, [2]string{r.Path[i-1], r.Path[i]})
	}
	return out
}

// Shortest returns a minimum-cost path from start to end.
func Shortest(snap *plan.Snapshot, start, end string) (Result, error) {
	if !snap.Has(start) {
		return Result{}, errors.NotFound("start dot %s not found", start)
	}
	if !snap.Has(end) {
		return Result{}, errors.NotFound("end dot %s not found", end)
	}

	// Dots are in Seq order, so a strict < scan keeps the lowest Seq on ties.
	n := len(snap.Dots)
	pos := make(map[string]int, n)
	dist := make([]float64, n)
	prev := make([]int, n)
	visited := make([]bool, n)
	for i, d := range snap.Dots {
		pos[d.ID] = i
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	src, dst := pos[start], pos[end]
	dist[src] = 0

	for {
		cur := -1
		for i := range n {
			if !visited[i] && (cur == -1 || dist[i] < dist[cur]) {
				cur = i
			}
		}
		if cur == -1 || math.IsInf(dist[cur], 1) || cur == dst {
			break
		}
		visited[cur] = true

		id := snap.Dots[cur].ID
		for _, c := range snap.Incident(id) {
			next := pos[c.Other(id)]
			if visited[next] {
				continue
			}
			if cand := dist[cur] + c.Weight; cand < dist[next] {
				dist[next] = cand
				prev[next] = cur
			}
		}
	}

	if math.IsInf(dist[dst], 1) {
		return Result{}, errors.New(errors.ErrCodeUnreachable, "no path from %s to %s", start, end)
	}

	var rev []string
	for i := dst; i != -1; i = prev[i] {
		rev = append(rev, snap.Dots[i].ID)
	}
	path := make([]string, len(rev))
	for i, id := range rev {
		path[len(rev)-1-i] = id
	}
	return Result{Path: path, Cost: dist[dst]}, nil
}
