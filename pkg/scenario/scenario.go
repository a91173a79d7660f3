// Package scenario replays scripted editing sessions.
//
// A scenario is a TOML file that places dots, connects them and asks for
// routes, using short keys instead of generated dot IDs:
//
//	[[dots]]
//	key = "lobby"
//	floor = "Map 1"
//	x = 120
//	y = 40
//	name = "Lobby"
//
//	[[links]]
//	a = "lobby"
//	b = "stairs"
//
//	[[routes]]
//	from = "lobby"
//	to = "ward"
//
// Scenarios drive the CLI and serve as fixtures for tests.
package scenario

import (
	"context"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/waypoint/pkg/editor"
	"github.com/matzehuels/waypoint/pkg/errors"
	"github.com/matzehuels/waypoint/pkg/plan/route"
)

// Scenario is a parsed script.
type Scenario struct {
	Dots   []DotSpec   `toml:"dots"`
	Links  []LinkSpec  `toml:"links"`
	Routes []RouteSpec `toml:"routes"`
}

// DotSpec places one dot.
type DotSpec struct {
	Key          string  `toml:"key"`
	Floor        string  `toml:"floor"`
	X            float64 `toml:"x"`
	Y            float64 `toml:"y"`
	Name         string  `toml:"name"`
	LabelVisible *bool   `toml:"label_visible"`
}

// LinkSpec connects two dots by key.
type LinkSpec struct {
	A string `toml:"a"`
	B string `toml:"b"`
}

// RouteSpec asks for the cheapest route between two dots by key.
type RouteSpec struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Outcome is the result of replaying a scenario.
type Outcome struct {
	// IDs maps scenario keys to the dot IDs the editor assigned.
	IDs    map[string]string
	Routes []RouteOutcome
}

// RouteOutcome is the answer to one route query. Err is set when no route
// was found; Keys and Result are then empty.
type RouteOutcome struct {
	From, To string
	Keys     []string
	Result   route.Result
	Err      error
}

// Load reads and validates the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read scenario %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates scenario data.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode scenario")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown scenario key %q", undecoded[0].String())
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that keys are unique and non-empty and that every link
// and route refers to a declared dot. Floors and coordinates are checked by
// the editor during Apply.
func (s *Scenario) Validate() error {
	seen := make(map[string]bool, len(s.Dots))
	for i, d := range s.Dots {
		key := strings.TrimSpace(d.Key)
		if key == "" {
			return errors.New(errors.ErrCodeInvalidInput, "dot #%d has no key", i+1)
		}
		if seen[key] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate dot key %q", key)
		}
		seen[key] = true
	}
	for _, l := range s.Links {
		for _, k := range []string{l.A, l.B} {
			if !seen[k] {
				return errors.New(errors.ErrCodeInvalidInput, "link %s-%s: unknown dot %q", l.A, l.B, k)
			}
		}
	}
	for _, r := range s.Routes {
		for _, k := range []string{r.From, r.To} {
			if !seen[k] {
				return errors.New(errors.ErrCodeInvalidInput, "route %s->%s: unknown dot %q", r.From, r.To, k)
			}
		}
	}
	return nil
}

// Apply replays the scenario against ed in order: dots, then links, then
// routes. A rejected dot or link aborts the replay; a route that cannot be
// found is recorded in its RouteOutcome and the replay continues. Routes
// reveal their paths on ed just as interactive searches do.
func (s *Scenario) Apply(ctx context.Context, ed *editor.Editor) (*Outcome, error) {
	out := &Outcome{IDs: make(map[string]string, len(s.Dots))}

	for _, spec := range s.Dots {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		d, err := ed.PlaceNamedDot(spec.Floor, spec.X, spec.Y, spec.Name)
		if err != nil {
			return out, errors.Wrap(errors.GetCode(err), err, "dot %q: %s", spec.Key, errors.UserMessage(err))
		}
		if spec.LabelVisible != nil {
			if err := ed.SetDotLabelVisible(d.ID, *spec.LabelVisible); err != nil {
				return out, err
			}
		}
		out.IDs[strings.TrimSpace(spec.Key)] = d.ID
	}

	for _, l := range s.Links {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if _, err := ed.ConnectDots(out.IDs[l.A], out.IDs[l.B]); err != nil {
			return out, errors.Wrap(errors.GetCode(err), err, "link %s-%s: %s", l.A, l.B, errors.UserMessage(err))
		}
	}

	keys := make(map[string]string, len(out.IDs))
	for k, id := range out.IDs {
		keys[id] = k
	}
	for _, r := range s.Routes {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		ro := RouteOutcome{From: r.From, To: r.To}
		res, err := ed.FindPath(out.IDs[r.From], out.IDs[r.To])
		if err != nil {
			ro.Err = err
		} else {
			ro.Result = res
			ro.Keys = make([]string, len(res.Path))
			for i, id := range res.Path {
				ro.Keys[i] = keys[id]
			}
		}
		out.Routes = append(out.Routes, ro)
	}
	return out, nil
}
