package sharedtex

import "sync"

// SharedHandle is the ownership token for an exported texture handle.
//
// The token pairs the OS handle value with a reference that keeps the
// underlying texture alive for as long as a consumer may still open the
// handle, independent of the renderer's own bookkeeping. The renderer
// invalidates the token the moment the texture is released (a Resize to
// new dimensions, or Close); from then on Valid reports false and Value
// returns 0. The invariant is exact: the handle value is usable if and
// only if the token is alive.
//
// Consumers must treat the token as stale after any Resize call returns
// and re-query Renderer.Handle.
//
// All methods are safe on a nil token.
type SharedHandle struct {
	// mu protects released and release.
	mu sync.Mutex

	// value is the OS handle exported by the texture.
	value uintptr

	// width, height are the texture dimensions at export time.
	width  int
	height int

	// release drops the texture reference held by this token.
	// Cleared after the first invalidate.
	release func()

	// released indicates the token has been invalidated.
	released bool
}

// newSharedHandle wraps an exported handle value. release is invoked
// exactly once, when the token is invalidated.
func newSharedHandle(value uintptr, width, height int, release func()) *SharedHandle {
	return &SharedHandle{
		value:   value,
		width:   width,
		height:  height,
		release: release,
	}
}

// Valid reports whether the token still refers to a live texture.
func (h *SharedHandle) Valid() bool {
	if h == nil {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.released
}

// Value returns the OS handle value, or 0 once the token has been
// invalidated. The value is what an embedding host hands to its
// compositor (as a pointer-sized integer) to open the texture.
func (h *SharedHandle) Value() uintptr {
	if h == nil {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return 0
	}
	return h.value
}

// Width returns the width of the texture behind the handle.
func (h *SharedHandle) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Height returns the height of the texture behind the handle.
func (h *SharedHandle) Height() int {
	if h == nil {
		return 0
	}
	return h.height
}

// invalidate marks the token dead and drops the texture reference.
// Idempotent; called by the renderer under its frame lock.
func (h *SharedHandle) invalidate() {
	if h == nil {
		return
	}
	h.mu.Lock()
	if h.released {
		h.mu.Unlock()
		return
	}
	h.released = true
	release := h.release
	h.release = nil
	h.mu.Unlock()

	if release != nil {
		release()
	}
}
