package route_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/waypoint/pkg/plan"
	"github.com/matzehuels/waypoint/pkg/plan/route"
)

func ExampleShortest() {
	s := plan.New()
	a := s.AddDot("Map 1", 0, 0, "A")
	b := s.AddDot("Map 1", 3, 4, "B")
	c := s.AddDot("Map 2", 40, 40, "C")
	_, _ = s.AddConnection(a.ID, b.ID, plan.Weight(a, b))
	_, _ = s.AddConnection(b.ID, c.ID, plan.Weight(b, c))

	snap := s.Snapshot()
	res, err := route.Shortest(snap, a.ID, c.ID)
	if err != nil {
		fmt.Println(err)
		return
	}
	names := make([]string, len(res.Path))
	for i, id := range res.Path {
		d, _ := snap.Dot(id)
		names[i] = d.Name
	}
	fmt.Println(strings.Join(names, " "))
	fmt.Printf("cost: %.2f\n", res.Cost)
	// Output:
	// A B C
	// cost: 6.00
}
