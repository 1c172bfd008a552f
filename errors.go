package sharedtex

import "errors"

// Package errors.
var (
	// ErrClosed is returned when operating on a closed renderer.
	ErrClosed = errors.New("sharedtex: renderer is closed")

	// ErrLockTimeout is returned when the frame lock could not be
	// acquired within the configured timeout. The consumer side is
	// either wedged or holding the texture for longer than the
	// producer is prepared to wait.
	ErrLockTimeout = errors.New("sharedtex: frame lock wait timed out")

	// ErrUnsupported is returned on platforms without Direct3D 11.
	ErrUnsupported = errors.New("sharedtex: shared textures require Windows")
)
