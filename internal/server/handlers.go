package server

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/matzehuels/waypoint/pkg/buildinfo"
	"github.com/matzehuels/waypoint/pkg/diagram"
	"github.com/matzehuels/waypoint/pkg/editor"
	"github.com/matzehuels/waypoint/pkg/errors"
	"github.com/matzehuels/waypoint/pkg/floor"
	"github.com/matzehuels/waypoint/pkg/plan"
	"github.com/matzehuels/waypoint/pkg/plan/route"
)

type placeDotRequest struct {
	Floor string  `json:"floor"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Name  string  `json:"name"`
}

// updateDotRequest changes only the fields that are present.
type updateDotRequest struct {
	Name          *string `json:"name"`
	LabelVisible  *bool   `json:"label_visible"`
	RenderVisible *bool   `json:"render_visible"`
}

type connectRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

type routeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type routeResponse struct {
	Path        []string    `json:"path"`
	Cost        float64     `json:"cost"`
	DisplayCost string      `json:"display_cost"`
	Hops        int         `json:"hops"`
	Legs        []route.Leg `json:"legs"`
}

type visibilityResponse struct {
	Visible bool `json:"visible"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]any{"status": "ok", "build": buildinfo.Get()})
}

func (s *Server) listFloors(w http.ResponseWriter, r *http.Request) {
	var floors []floor.Floor
	s.locked(func(ed *editor.Editor) { floors = ed.Floors().Floors() })
	render.JSON(w, r, map[string]any{"floors": floors})
}

func (s *Server) floorView(w http.ResponseWriter, r *http.Request) {
	name := pathParam(r, "floor")
	var (
		view plan.FloorView
		err  error
	)
	s.locked(func(ed *editor.Editor) {
		if !ed.Floors().Has(name) {
			err = errors.NotFound("floor %q not found", name)
			return
		}
		view = ed.FloorView(name)
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	render.JSON(w, r, view)
}

// =============================================================================
// Dots
// =============================================================================

func (s *Server) listDots(w http.ResponseWriter, r *http.Request) {
	var dots []plan.Dot
	s.locked(func(ed *editor.Editor) { dots = ed.Dots() })
	render.JSON(w, r, map[string]any{"dots": dots})
}

func (s *Server) placeDot(w http.ResponseWriter, r *http.Request) {
	var req placeDotRequest
	if !s.decode(w, r, &req) {
		return
	}
	var (
		d   plan.Dot
		err error
	)
	s.locked(func(ed *editor.Editor) { d, err = ed.PlaceNamedDot(req.Floor, req.X, req.Y, req.Name) })
	if err != nil {
		s.fail(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, d)
}

func (s *Server) getDot(w http.ResponseWriter, r *http.Request) {
	var (
		d   plan.Dot
		err error
	)
	s.locked(func(ed *editor.Editor) { d, err = ed.Dot(pathParam(r, "id")) })
	if err != nil {
		s.fail(w, r, err)
		return
	}
	render.JSON(w, r, d)
}

func (s *Server) updateDot(w http.ResponseWriter, r *http.Request) {
	var req updateDotRequest
	if !s.decode(w, r, &req) {
		return
	}
	id := pathParam(r, "id")
	if req.Name != nil {
		if err := errors.ValidateDotName(*req.Name); err != nil {
			s.fail(w, r, err)
			return
		}
	}

	var (
		d   plan.Dot
		err error
	)
	s.locked(func(ed *editor.Editor) {
		// Look the dot up first so a missing ID changes nothing.
		if _, err = ed.Dot(id); err != nil {
			return
		}
		if req.Name != nil {
			ed.RenameDot(id, *req.Name)
		}
		if req.LabelVisible != nil {
			ed.SetDotLabelVisible(id, *req.LabelVisible)
		}
		if req.RenderVisible != nil {
			ed.SetDotRenderVisible(id, *req.RenderVisible)
		}
		d, err = ed.Dot(id)
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	render.JSON(w, r, d)
}

func (s *Server) deleteDot(w http.ResponseWriter, r *http.Request) {
	s.locked(func(ed *editor.Editor) { ed.DeleteDot(pathParam(r, "id")) })
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) neighbors(w http.ResponseWriter, r *http.Request) {
	var (
		dots []plan.Dot
		err  error
	)
	s.locked(func(ed *editor.Editor) { dots, err = ed.Neighbors(pathParam(r, "id")) })
	if err != nil {
		s.fail(w, r, err)
		return
	}
	render.JSON(w, r, map[string]any{"dots": nonNil(dots)})
}

func (s *Server) candidates(w http.ResponseWriter, r *http.Request) {
	var (
		dots []plan.Dot
		err  error
	)
	q := r.URL.Query().Get("q")
	s.locked(func(ed *editor.Editor) { dots, err = ed.Candidates(pathParam(r, "id"), q) })
	if err != nil {
		s.fail(w, r, err)
		return
	}
	render.JSON(w, r, map[string]any{"dots": nonNil(dots)})
}

func (s *Server) toggleDots(w http.ResponseWriter, r *http.Request) {
	var v bool
	s.locked(func(ed *editor.Editor) { v = ed.ToggleAllDotsRenderVisible() })
	render.JSON(w, r, visibilityResponse{Visible: v})
}

// =============================================================================
// Connections
// =============================================================================

func (s *Server) listConnections(w http.ResponseWriter, r *http.Request) {
	var conns []plan.Connection
	s.locked(func(ed *editor.Editor) { conns = ed.Connections() })
	render.JSON(w, r, map[string]any{"connections": nonNil(conns)})
}

func (s *Server) connect(w http.ResponseWriter, r *http.Request) {
	var req connectRequest
	if !s.decode(w, r, &req) {
		return
	}
	var (
		c   plan.Connection
		err error
	)
	s.locked(func(ed *editor.Editor) { c, err = ed.ConnectDots(req.A, req.B) })
	if err != nil {
		s.fail(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, c)
}

func (s *Server) disconnect(w http.ResponseWriter, r *http.Request) {
	a, b := pathParam(r, "a"), pathParam(r, "b")
	s.locked(func(ed *editor.Editor) { ed.DisconnectDots(a, b) })
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) toggleConnections(w http.ResponseWriter, r *http.Request) {
	var v bool
	s.locked(func(ed *editor.Editor) { v = ed.ToggleAllConnectionsVisible() })
	render.JSON(w, r, visibilityResponse{Visible: v})
}

// =============================================================================
// Routes and export
// =============================================================================

func (s *Server) findPath(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if !s.decode(w, r, &req) {
		return
	}
	var (
		resp routeResponse
		err  error
	)
	s.locked(func(ed *editor.Editor) {
		var res route.Result
		if res, err = ed.FindPath(req.Start, req.End); err != nil {
			return
		}
		resp = routeResponse{
			Path:        res.Path,
			Cost:        res.Cost,
			DisplayCost: strconv.FormatFloat(plan.Round2(res.Cost), 'f', 2, 64),
			Hops:        res.Hops(),
			Legs:        res.Legs(ed.Snapshot()),
		}
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

func (s *Server) diagram(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := diagram.Options{Floor: q.Get("floor")}
	opts.Detailed, _ = strconv.ParseBool(q.Get("detailed"))

	var src string
	s.locked(func(ed *editor.Editor) { src = diagram.ToDOT(ed.Snapshot(), opts) })
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	w.Write([]byte(src))
}

// =============================================================================
// Helpers
// =============================================================================

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrCodeInvalidOperation:
		return http.StatusConflict
	case errors.ErrCodeUnreachable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	render.Status(r, status)
	render.JSON(w, r, map[string]errorBody{
		"error": {Code: code, Message: errors.UserMessage(err)},
	})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return false
	}
	return true
}

// pathParam returns a decoded URL parameter. Floor names contain spaces.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
