package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/waypoint/pkg/observability"
)

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Get("/floors", s.listFloors)
	r.Get("/floors/{floor}/view", s.floorView)
	r.Get("/diagram.dot", s.diagram)
	r.Post("/routes", s.findPath)

	r.Route("/dots", func(r chi.Router) {
		r.Get("/", s.listDots)
		r.Post("/", s.placeDot)
		r.Post("/visibility:toggle", s.toggleDots)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getDot)
			r.Patch("/", s.updateDot)
			r.Delete("/", s.deleteDot)
			r.Get("/neighbors", s.neighbors)
			r.Get("/candidates", s.candidates)
		})
	})

	r.Route("/connections", func(r chi.Router) {
		r.Get("/", s.listConnections)
		r.Post("/", s.connect)
		r.Post("/visibility:toggle", s.toggleConnections)
		r.Delete("/{a}/{b}", s.disconnect)
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		pattern := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			pattern = rc.RoutePattern()
		}
		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Method, pattern, status, elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration", elapsed,
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
