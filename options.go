package sharedtex

import "time"

// defaultFlushTimeout bounds the wait for the frame lock. A consumer
// normally holds the lock for one composited read, so hitting this
// bound means the consumer is wedged, not slow.
const defaultFlushTimeout = 5 * time.Second

// GPU thread priorities accepted by the platform scheduler.
const (
	minGPUPriority     = -7
	maxGPUPriority     = 7
	defaultGPUPriority = 5
)

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default configuration
//	r, err := sharedtex.New(1920, 1080)
//
//	// Host-owned registry and a tighter flush bound
//	r, err := sharedtex.New(1920, 1080,
//	    sharedtex.WithRegistry(reg),
//	    sharedtex.WithFlushTimeout(time.Second))
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	registry     *Registry
	flushTimeout time.Duration
	gpuPriority  int
	adapterIndex int
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		registry:     DefaultRegistry(),
		flushTimeout: defaultFlushTimeout,
		gpuPriority:  defaultGPUPriority,
		adapterIndex: -1, // automatic adapter policy
	}
}

// WithRegistry records the renderer in reg instead of the process-wide
// default registry. The embedding layer typically owns one registry and
// passes it to every renderer it creates.
func WithRegistry(reg *Registry) Option {
	return func(o *rendererOptions) {
		if reg != nil {
			o.registry = reg
		}
	}
}

// WithFlushTimeout bounds how long Flush, Resize and Close wait for the
// frame lock before giving up with ErrLockTimeout. Values <= 0 keep the
// default.
func WithFlushTimeout(d time.Duration) Option {
	return func(o *rendererOptions) {
		if d > 0 {
			o.flushTimeout = d
		}
	}
}

// WithGPUPriority sets the GPU thread scheduling priority requested for
// the device, clamped to the platform range [-7, 7]. Raising it trims
// frame latency at the expense of other GPU clients. The request is
// best-effort; an unwilling driver is ignored.
func WithGPUPriority(priority int) Option {
	return func(o *rendererOptions) {
		o.gpuPriority = clampGPUPriority(priority)
	}
}

// WithAdapterIndex forces device creation on the adapter at the given
// enumeration index instead of the automatic OS-version-based policy.
// Negative values restore the automatic policy.
func WithAdapterIndex(index int) Option {
	return func(o *rendererOptions) {
		if index < 0 {
			index = -1
		}
		o.adapterIndex = index
	}
}

func clampGPUPriority(priority int) int {
	if priority < minGPUPriority {
		return minGPUPriority
	}
	if priority > maxGPUPriority {
		return maxGPUPriority
	}
	return priority
}
