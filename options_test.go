package sharedtex

import (
	"testing"
	"time"
)

// TestDefaultOptions verifies the defaults New starts from.
func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()

	if o.registry != DefaultRegistry() {
		t.Error("default registry is not DefaultRegistry()")
	}
	if o.flushTimeout != defaultFlushTimeout {
		t.Errorf("flushTimeout = %v, want %v", o.flushTimeout, defaultFlushTimeout)
	}
	if o.gpuPriority != defaultGPUPriority {
		t.Errorf("gpuPriority = %d, want %d", o.gpuPriority, defaultGPUPriority)
	}
	if o.adapterIndex != -1 {
		t.Errorf("adapterIndex = %d, want -1 (driver default)", o.adapterIndex)
	}
}

// TestWithRegistry tests injection of a private registry.
func TestWithRegistry(t *testing.T) {
	reg := NewRegistry()

	o := defaultOptions()
	WithRegistry(reg)(&o)
	if o.registry != reg {
		t.Error("registry is not the injected registry")
	}

	// nil keeps the default rather than panicking later.
	o = defaultOptions()
	WithRegistry(nil)(&o)
	if o.registry != DefaultRegistry() {
		t.Error("WithRegistry(nil) should keep the default registry")
	}
}

func TestWithFlushTimeout(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{"positive", 250 * time.Millisecond, 250 * time.Millisecond},
		{"zero keeps default", 0, defaultFlushTimeout},
		{"negative keeps default", -time.Second, defaultFlushTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			WithFlushTimeout(tt.in)(&o)
			if o.flushTimeout != tt.want {
				t.Errorf("flushTimeout = %v, want %v", o.flushTimeout, tt.want)
			}
		})
	}
}

func TestWithGPUPriority(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"in range", 3, 3},
		{"minimum", -7, -7},
		{"maximum", 7, 7},
		{"clamped low", -100, minGPUPriority},
		{"clamped high", 100, maxGPUPriority},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			WithGPUPriority(tt.in)(&o)
			if o.gpuPriority != tt.want {
				t.Errorf("gpuPriority = %d, want %d", o.gpuPriority, tt.want)
			}
		})
	}
}

func TestWithAdapterIndex(t *testing.T) {
	o := defaultOptions()
	WithAdapterIndex(2)(&o)
	if o.adapterIndex != 2 {
		t.Errorf("adapterIndex = %d, want 2", o.adapterIndex)
	}

	// Any negative index means driver-default selection.
	o = defaultOptions()
	WithAdapterIndex(-5)(&o)
	if o.adapterIndex != -1 {
		t.Errorf("adapterIndex = %d, want -1", o.adapterIndex)
	}
}

// TestMultipleOptions tests combining options; later options win.
func TestMultipleOptions(t *testing.T) {
	reg := NewRegistry()

	o := defaultOptions()
	for _, opt := range []Option{
		WithRegistry(reg),
		WithFlushTimeout(time.Second),
		WithGPUPriority(-2),
		WithFlushTimeout(2 * time.Second),
	} {
		opt(&o)
	}

	if o.registry != reg {
		t.Error("registry is not the injected registry")
	}
	if o.flushTimeout != 2*time.Second {
		t.Errorf("flushTimeout = %v, want %v (last option wins)", o.flushTimeout, 2*time.Second)
	}
	if o.gpuPriority != -2 {
		t.Errorf("gpuPriority = %d, want -2", o.gpuPriority)
	}
}

func TestClampGPUPriority(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{7, 7},
		{-7, -7},
		{8, 7},
		{-8, -7},
		{42, 7},
		{-42, -7},
	}
	for _, tt := range tests {
		if got := clampGPUPriority(tt.in); got != tt.want {
			t.Errorf("clampGPUPriority(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
