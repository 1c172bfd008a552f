// Package sharedtex shares a Direct3D 11 texture between a frame
// producer and a host compositor.
//
// # Overview
//
// sharedtex owns the GPU plumbing a video pipeline needs to hand frames
// to an embedding UI without copying through system memory: one D3D11
// device, one shared BGRA texture, and one OS handle the host opens on
// its own device. A kernel mutex serializes the producer's flush
// against the consumer's read, even across processes.
//
// # Quick Start
//
//	import "github.com/gogpu/sharedtex"
//
//	// Create a renderer with a 1920x1080 shared texture.
//	r, err := sharedtex.New(1920, 1080)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	// Hand the handle to the consumer side.
//	h := r.Handle()
//	fmt.Printf("texture handle: %#x (%dx%d)\n", h.Value(), h.Width(), h.Height())
//
//	// After the pipeline renders a frame, publish it.
//	r.Flush()
//
//	// The video changed size; the old handle is now stale.
//	r.Resize(1280, 720)
//	h = r.Handle()
//
// # Handles
//
// Handle returns a *SharedHandle ownership token, not a bare pointer.
// The OS handle value is usable if and only if the token is alive;
// Resize and Close invalidate the token before releasing the texture,
// so a consumer holding a stale token reads zero instead of a dangling
// handle. Always re-query Handle after Resize.
//
// # Concurrency
//
// All methods are safe for concurrent use. Flush, Resize and Close
// serialize on the same frame lock as the consumer, with a bounded
// wait: a consumer that wedges surfaces as ErrLockTimeout rather than
// a hang.
//
// # Platforms
//
// The real implementation requires Windows. Elsewhere the package
// compiles but New returns ErrUnsupported, so cross-platform hosts can
// link it unconditionally and gate at runtime.
package sharedtex

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
