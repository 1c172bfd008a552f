package sharedtex

import (
	"sync"
	"testing"
)

// TestSharedHandleLifecycle tests the value/validity contract: the
// handle value is usable exactly while the token is alive.
func TestSharedHandleLifecycle(t *testing.T) {
	h := newSharedHandle(0xBEEF, 1920, 1080, nil)

	if !h.Valid() {
		t.Fatal("fresh handle should be valid")
	}
	if got := h.Value(); got != 0xBEEF {
		t.Errorf("Value() = %#x, want 0xbeef", got)
	}
	if w, ht := h.Width(), h.Height(); w != 1920 || ht != 1080 {
		t.Errorf("dimensions = %dx%d, want 1920x1080", w, ht)
	}

	h.invalidate()

	if h.Valid() {
		t.Error("handle should be invalid after invalidate")
	}
	if got := h.Value(); got != 0 {
		t.Errorf("Value() after invalidate = %#x, want 0", got)
	}
}

// TestSharedHandleReleaseOnce tests that the release callback runs
// exactly once no matter how often invalidate is called.
func TestSharedHandleReleaseOnce(t *testing.T) {
	calls := 0
	h := newSharedHandle(1, 64, 64, func() { calls++ })

	h.invalidate()
	h.invalidate()
	h.invalidate()

	if calls != 1 {
		t.Errorf("release callback ran %d times, want 1", calls)
	}
}

// TestSharedHandleDimensionsSurviveInvalidate tests that Width and
// Height keep describing the texture the handle referred to, which
// lets callers log what a stale handle used to be.
func TestSharedHandleDimensionsSurviveInvalidate(t *testing.T) {
	h := newSharedHandle(2, 1280, 720, nil)
	h.invalidate()

	if w, ht := h.Width(), h.Height(); w != 1280 || ht != 720 {
		t.Errorf("dimensions after invalidate = %dx%d, want 1280x720", w, ht)
	}
}

// TestSharedHandleNil tests that a nil token reads as absent instead
// of panicking, so callers can use Handle() results unconditionally.
func TestSharedHandleNil(t *testing.T) {
	var h *SharedHandle

	if h.Valid() {
		t.Error("nil handle should not be valid")
	}
	if got := h.Value(); got != 0 {
		t.Errorf("nil handle Value() = %#x, want 0", got)
	}
}

// TestSharedHandleConcurrentInvalidate races invalidate against
// readers; run with -race.
func TestSharedHandleConcurrentInvalidate(t *testing.T) {
	calls := 0
	var callMu sync.Mutex
	h := newSharedHandle(3, 320, 240, func() {
		callMu.Lock()
		calls++
		callMu.Unlock()
	})

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.invalidate()
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Valid()
			h.Value()
		}()
	}
	wg.Wait()

	callMu.Lock()
	defer callMu.Unlock()
	if calls != 1 {
		t.Errorf("release callback ran %d times under contention, want 1", calls)
	}
}
