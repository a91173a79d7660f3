package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func newTestSpinner(ctx context.Context, buf *bytes.Buffer) *Spinner {
	s := newSpinnerWithContext(ctx, "Rendering...")
	s.w = buf
	return s
}

func TestSpinnerStop(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSpinner(context.Background(), &buf)
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()
	s.Stop()

	if !strings.Contains(buf.String(), "Rendering...") {
		t.Errorf("output = %q", buf.String())
	}
	if !s.Cancelled() {
		t.Error("stopped spinner should report its context done")
	}
}

func TestSpinnerParentCancel(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	s := newTestSpinner(ctx, &buf)
	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner kept running after parent cancel")
	}
	s.Stop()
}
