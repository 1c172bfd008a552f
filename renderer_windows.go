package sharedtex

import (
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/sharedtex/internal/d3d11"
)

// Renderer owns a Direct3D 11 device and one shared BGRA texture sized
// to the current video frame, and exports an OS handle that a host
// compositor opens to composite the frame.
//
// The frame-producing pipeline writes pixels into the texture through
// the exported handle; Renderer itself never touches pixel data. Its
// job is resource lifetime and synchronization: Flush guarantees that
// pending GPU writes are submitted before the consumer reads, and
// Resize swaps the texture for a new one without disturbing the device.
//
// Renderer is safe for concurrent use. Flush, Resize and Close all
// acquire the same frame lock, so a resize can never release the
// texture out from under a concurrent flush.
type Renderer struct {
	// mu guards the fields below against concurrent Go callers.
	mu sync.Mutex

	// gate is the cross-context frame lock (a kernel mutex). It
	// protects texture existence and identity, not just flushing.
	gate *frameMutex

	device *d3d11.Device
	ctx    *d3d11.DeviceContext
	level  d3d11.FeatureLevel

	texture *d3d11.Texture2D
	handle  *SharedHandle

	width  int
	height int

	registry *Registry
	id       int64

	flushTimeout time.Duration

	closed bool
}

// New creates a renderer with a shared texture of the given dimensions.
//
// Construction creates the frame lock, then the device, then the
// texture. Any failure releases whatever was already created and
// returns an error: a renderer is never returned without a valid
// exported handle. Dimensions reach the driver unvalidated; zero-area
// textures are rejected there.
//
// On success the renderer is recorded in the configured registry and
// the device's GPU thread scheduling priority is raised best-effort to
// trim frame latency.
func New(width, height int, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	gate, err := newFrameMutex()
	if err != nil {
		return nil, err
	}

	dev, ctx, level, err := d3d11.NewDevice(o.adapterIndex)
	if err != nil {
		gate.close()
		return nil, fmt.Errorf("sharedtex: create device: %w", err)
	}

	r := &Renderer{
		gate:         gate,
		device:       dev,
		ctx:          ctx,
		level:        level,
		width:        width,
		height:       height,
		registry:     o.registry,
		flushTimeout: o.flushTimeout,
	}

	r.raiseGPUPriority(o.gpuPriority)

	tex, handle, err := r.createTexture(width, height)
	if err != nil {
		r.releaseDevice()
		gate.close()
		return nil, fmt.Errorf("sharedtex: create texture: %w", err)
	}
	r.texture = tex
	r.handle = handle

	r.mu.Lock()
	r.id = o.registry.register(r)
	r.mu.Unlock()

	logger().Info("renderer created",
		"id", r.id,
		"width", width,
		"height", height,
		"feature_level", level,
	)
	return r, nil
}

// Handle returns the ownership token for the current texture, or nil
// when no texture exists (after a failed Resize, or once closed).
// Callers must re-query after every Resize: the previous token is
// invalidated the instant the old texture is released.
func (r *Renderer) Handle() *SharedHandle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.handle
}

// Size returns the current texture dimensions.
func (r *Renderer) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

// ID returns the id assigned by the registry at construction.
func (r *Renderer) ID() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.id
}

// FeatureLevel returns the negotiated Direct3D feature level as major
// and minor version numbers.
func (r *Renderer) FeatureLevel() (major, minor int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.level.Major(), r.level.Minor()
}

// Flush makes pending GPU writes to the shared texture visible to the
// consumer: it acquires the frame lock, submits the device's queued
// commands, and releases the lock. Flush moves no pixels itself; the
// external render pipeline writes them.
//
// The lock wait is bounded by the flush timeout and an expired wait
// returns ErrLockTimeout. Flushing with no texture (after a failed
// Resize) is legal and only flushes the context.
func (r *Renderer) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if err := r.gate.acquire(r.flushTimeout); err != nil {
		return err
	}
	if r.ctx != nil {
		r.ctx.Flush()
	}
	r.gate.release()
	return nil
}

// Resize replaces the texture with one sized width x height. Calling
// with the current dimensions is a no-op that leaves the handle
// untouched. Otherwise the old texture is released under the frame
// lock, its token invalidated, and a new texture and token created at
// the new size.
//
// On texture-creation failure the renderer keeps its device but has no
// texture: Handle returns nil until a later Resize succeeds. Nothing is
// retried automatically.
func (r *Renderer) Resize(width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if width == r.width && height == r.height && r.texture != nil {
		return nil
	}
	if err := r.gate.acquire(r.flushTimeout); err != nil {
		return err
	}
	defer r.gate.release()

	r.releaseTexture()
	r.width = width
	r.height = height

	tex, handle, err := r.createTexture(width, height)
	if err != nil {
		logger().Warn("texture recreation failed, renderer has no texture",
			"width", width, "height", height, "err", err)
		return fmt.Errorf("sharedtex: create texture: %w", err)
	}
	r.texture = tex
	r.handle = handle

	logger().Info("texture resized",
		"width", width, "height", height, "handle", handle.Value())
	return nil
}

// Close releases the texture, then the context and device, then the
// frame lock handle, and removes the renderer from its registry. The
// registry count drops exactly once no matter how often Close is
// called or how little of the instance survived earlier failures.
//
// Close acquires the frame lock so a consumer mid-read is not undercut.
// If the lock cannot be acquired within the flush timeout the teardown
// proceeds anyway after a warning: leaking the device because a
// consumer wedged would be worse.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	acquired := true
	if err := r.gate.acquire(r.flushTimeout); err != nil {
		acquired = false
		logger().Warn("closing renderer without frame lock", "err", err)
	}

	r.releaseTexture()
	r.releaseDevice()

	if acquired {
		r.gate.release()
	}
	r.gate.close()

	r.registry.unregister(r.id)
	logger().Info("renderer closed", "id", r.id)
	return nil
}

// createTexture allocates the shared texture and exports its handle.
// Called before the renderer is visible to other goroutines, or with
// both locks held.
func (r *Renderer) createTexture(width, height int) (*d3d11.Texture2D, *SharedHandle, error) {
	desc := d3d11.D3D11_TEXTURE2D_DESC{
		Width:          uint32(width),
		Height:         uint32(height),
		MipLevels:      1,
		ArraySize:      1,
		Format:         d3d11.DXGI_FORMAT_B8G8R8A8_UNORM,
		SampleDesc:     d3d11.DXGI_SAMPLE_DESC{Count: 1, Quality: 0},
		Usage:          d3d11.D3D11_USAGE_DEFAULT,
		BindFlags:      d3d11.D3D11_BIND_RENDER_TARGET | d3d11.D3D11_BIND_SHADER_RESOURCE,
		CPUAccessFlags: 0,
		MiscFlags:      d3d11.D3D11_RESOURCE_MISC_SHARED,
	}
	tex, err := r.device.CreateTexture2D(&desc)
	if err != nil {
		return nil, nil, err
	}
	osHandle, err := tex.SharedHandle()
	if err != nil {
		tex.Release()
		return nil, nil, err
	}

	// The token holds its own reference so the texture stays alive for
	// consumers of the handle independent of the renderer's
	// bookkeeping. invalidate pairs the release.
	tex.AddRef()
	handle := newSharedHandle(uintptr(osHandle), width, height, func() {
		tex.Release()
	})

	logger().Debug("exported shared texture handle",
		"handle", handle.Value(), "width", width, "height", height)
	return tex, handle, nil
}

// releaseTexture drops the current texture and invalidates its token.
// Caller holds mu and, in steady state, the frame lock.
func (r *Renderer) releaseTexture() {
	if r.handle != nil {
		r.handle.invalidate()
		r.handle = nil
	}
	if r.texture != nil {
		r.texture.Release()
		r.texture = nil
	}
}

// releaseDevice drops the context, then the device.
func (r *Renderer) releaseDevice() {
	if r.ctx != nil {
		r.ctx.Release()
		r.ctx = nil
	}
	if r.device != nil {
		r.device.Release()
		r.device = nil
	}
}

// raiseGPUPriority nudges the device's GPU scheduling priority.
// Failures are ignored: a refused nudge only costs latency.
func (r *Renderer) raiseGPUPriority(priority int) {
	dxgi, err := r.device.DXGIDevice()
	if err != nil {
		logger().Debug("skipping GPU priority adjustment", "err", err)
		return
	}
	defer dxgi.Release()

	if err := dxgi.SetGPUThreadPriority(int32(priority)); err != nil {
		logger().Debug("GPU thread priority not adjusted", "err", err)
		return
	}
	logger().Debug("GPU thread priority set", "priority", priority)
}
