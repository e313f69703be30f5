package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerWritesFrames(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner("Building sparse topology...")
	s.out = &buf

	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "Building sparse topology") {
		t.Error("spinner should have written its message")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var buf bytes.Buffer
	s := newSpinnerWithContext(ctx, "Building...")
	s.out = &buf
	s.Start()

	cancel()

	// Give the goroutine time to notice cancellation
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should be cancelled after context cancellation")
	}
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var buf bytes.Buffer
	s := newSpinnerWithContext(ctx, "Building...")
	s.out = &buf
	s.Start()

	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should be cancelled after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner("Building...")
	s.out = &buf
	s.Start()

	// Stop multiple times should not panic
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerCancelledAfterStop(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner("Building...")
	s.out = &buf
	s.Start()
	s.Stop()

	// Stop cancels the internal context.
	if !s.Cancelled() {
		t.Error("spinner should report cancelled after Stop")
	}
}

func TestSpinnerStopWithSuccess(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner("Building...")
	s.out = &buf
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithSuccess("Built")
}

func TestSpinnerStopWithError(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner("Building...")
	s.out = &buf
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithError("Build failed")
}
