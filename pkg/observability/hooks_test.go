package observability

import (
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	e := NoopEditorHooks{}
	e.OnDotPlaced("d1", "Map 1")
	e.OnDotDeleted("d1", 3)
	e.OnConnected("d1", "d2", 5, false)
	e.OnDisconnected("d1", "d2")

	r := NoopRouteHooks{}
	r.OnRouteStart("d1", "d2", 10)
	r.OnRouteComplete("d1", "d2", 1, time.Millisecond, nil)

	h := NoopHTTPHooks{}
	h.OnResponse("POST", "/routes", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Editor().(NoopEditorHooks); !ok {
		t.Error("Editor() should return NoopEditorHooks by default")
	}
	if _, ok := Route().(NoopRouteHooks); !ok {
		t.Error("Route() should return NoopRouteHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customEditor := &testEditorHooks{}
	SetEditorHooks(customEditor)
	if Editor() != customEditor {
		t.Error("SetEditorHooks should set custom hooks")
	}

	customRoute := &testRouteHooks{}
	SetRouteHooks(customRoute)
	if Route() != customRoute {
		t.Error("SetRouteHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Editor().(NoopEditorHooks); !ok {
		t.Error("Reset() should restore NoopEditorHooks")
	}
	if _, ok := Route().(NoopRouteHooks); !ok {
		t.Error("Reset() should restore NoopRouteHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testRouteHooks{}
	SetRouteHooks(custom)

	// Setting nil should be ignored
	SetRouteHooks(nil)

	if Route() != custom {
		t.Error("SetRouteHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testEditorHooks struct{ NoopEditorHooks }
type testRouteHooks struct{ NoopRouteHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
