package sharedtex

import (
	"errors"
	"fmt"
	"testing"
)

// TestSentinelErrors tests message formatting and that the sentinels
// stay distinct, since callers branch on them with errors.Is.
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrClosed, "sharedtex: renderer is closed"},
		{ErrLockTimeout, "sharedtex: frame lock wait timed out"},
		{ErrUnsupported, "sharedtex: shared textures require Windows"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}

	if errors.Is(ErrClosed, ErrLockTimeout) || errors.Is(ErrLockTimeout, ErrUnsupported) {
		t.Error("sentinel errors must be distinct")
	}
}

// TestSentinelWrapping tests that wrapped sentinels still match, the
// way callers see them coming out of Renderer methods.
func TestSentinelWrapping(t *testing.T) {
	wrapped := fmt.Errorf("flush frame 42: %w", ErrLockTimeout)
	if !errors.Is(wrapped, ErrLockTimeout) {
		t.Error("wrapped ErrLockTimeout should match errors.Is")
	}
}
