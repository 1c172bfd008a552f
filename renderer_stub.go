//go:build !windows

package sharedtex

// Renderer owns a Direct3D 11 device and one shared BGRA texture. On
// platforms without Direct3D there is nothing to own: New fails with
// ErrUnsupported and the zero Renderer is inert.
type Renderer struct{}

// New returns ErrUnsupported: shared Direct3D textures require Windows.
func New(width, height int, opts ...Option) (*Renderer, error) {
	return nil, ErrUnsupported
}

// Handle returns nil on non-Windows platforms.
func (r *Renderer) Handle() *SharedHandle { return nil }

// Size returns zero dimensions on non-Windows platforms.
func (r *Renderer) Size() (width, height int) { return 0, 0 }

// ID returns zero on non-Windows platforms.
func (r *Renderer) ID() int64 { return 0 }

// FeatureLevel returns zero on non-Windows platforms.
func (r *Renderer) FeatureLevel() (major, minor int) { return 0, 0 }

// Flush returns ErrUnsupported on non-Windows platforms.
func (r *Renderer) Flush() error { return ErrUnsupported }

// Resize returns ErrUnsupported on non-Windows platforms.
func (r *Renderer) Resize(width, height int) error { return ErrUnsupported }

// Close is a no-op on non-Windows platforms.
func (r *Renderer) Close() error { return nil }
