// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about graph edits, route searches and HTTP requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are called synchronously from the editing session, so they must
// return quickly and must not call back into the editor.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetEditorHooks(&myEditorHooks{})
//	    observability.SetRouteHooks(&myRouteHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Route().OnRouteStart(start, end, dotCount)
//	// ... search ...
//	observability.Route().OnRouteComplete(start, end, hops, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Editor Hooks
// =============================================================================

// EditorHooks receives events about graph mutations.
type EditorHooks interface {
	OnDotPlaced(id, floor string)
	OnDotDeleted(id string, removedConnections int)
	OnConnected(a, b string, weight float64, crossFloor bool)
	OnDisconnected(a, b string)
}

// =============================================================================
// Route Hooks
// =============================================================================

// RouteHooks receives events from route searches.
type RouteHooks interface {
	// OnRouteStart records the beginning of a search over dotCount dots.
	OnRouteStart(start, end string, dotCount int)

	// OnRouteComplete records the outcome. hops is 0 when err is non-nil.
	OnRouteComplete(start, end string, hops int, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP adapter.
type HTTPHooks interface {
	// OnResponse records a served request. pattern is the matched route
	// pattern, not the raw path, to keep label cardinality low.
	OnResponse(method, pattern string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopEditorHooks is a no-op implementation of EditorHooks.
type NoopEditorHooks struct{}

func (NoopEditorHooks) OnDotPlaced(string, string)                {}
func (NoopEditorHooks) OnDotDeleted(string, int)                  {}
func (NoopEditorHooks) OnConnected(string, string, float64, bool) {}
func (NoopEditorHooks) OnDisconnected(string, string)             {}

// NoopRouteHooks is a no-op implementation of RouteHooks.
type NoopRouteHooks struct{}

func (NoopRouteHooks) OnRouteStart(string, string, int)                          {}
func (NoopRouteHooks) OnRouteComplete(string, string, int, time.Duration, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnResponse(string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	editorHooks EditorHooks = NoopEditorHooks{}
	routeHooks  RouteHooks  = NoopRouteHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetEditorHooks registers custom editor hooks.
// This should be called once at application startup before any edits.
func SetEditorHooks(h EditorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		editorHooks = h
	}
}

// SetRouteHooks registers custom route hooks.
func SetRouteHooks(h RouteHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		routeHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Editor returns the registered editor hooks.
func Editor() EditorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return editorHooks
}

// Route returns the registered route hooks.
func Route() RouteHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return routeHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	editorHooks = NoopEditorHooks{}
	routeHooks = NoopRouteHooks{}
	httpHooks = NoopHTTPHooks{}
}
