package d3d11

import (
	"errors"
	"fmt"
	"testing"
)

func TestHRESULTFailed(t *testing.T) {
	for _, hr := range []HRESULT{S_OK, S_FALSE} {
		if hr.Failed() {
			t.Errorf("%v.Failed() = true, want false", hr)
		}
	}
	for _, hr := range []HRESULT{E_FAIL, E_INVALIDARG, DXGI_ERROR_DEVICE_REMOVED, DXGI_ERROR_WAIT_TIMEOUT} {
		if !hr.Failed() {
			t.Errorf("%v.Failed() = false, want true", hr)
		}
	}
}

func TestHRESULTError(t *testing.T) {
	tests := []struct {
		hr   HRESULT
		want string
	}{
		{S_OK, "S_OK (0x00000000)"},
		{E_FAIL, "E_FAIL (0x80004005)"},
		{DXGI_ERROR_WAIT_TIMEOUT, "DXGI_ERROR_WAIT_TIMEOUT (0x887A0027)"},
		{DXGI_ERROR_DEVICE_REMOVED, "DXGI_ERROR_DEVICE_REMOVED (0x887A0005)"},
		{HRESULT(0x88990001), "HRESULT 0x88990001"},
	}
	for _, tt := range tests {
		if got := tt.hr.Error(); got != tt.want {
			t.Errorf("HRESULT(%#x).Error() = %q, want %q", uint32(tt.hr), got, tt.want)
		}
	}
}

// TestHRESULTWrapping verifies that wrapped COM failures stay
// inspectable with errors.Is and errors.As.
func TestHRESULTWrapping(t *testing.T) {
	err := fmt.Errorf("create texture: %w", DXGI_ERROR_DEVICE_REMOVED)

	if !errors.Is(err, DXGI_ERROR_DEVICE_REMOVED) {
		t.Error("errors.Is did not match the wrapped HRESULT")
	}
	if errors.Is(err, E_FAIL) {
		t.Error("errors.Is matched an unrelated HRESULT")
	}

	var hr HRESULT
	if !errors.As(err, &hr) {
		t.Fatal("errors.As did not find an HRESULT in the chain")
	}
	if hr != DXGI_ERROR_DEVICE_REMOVED {
		t.Errorf("errors.As extracted %v, want %v", hr, DXGI_ERROR_DEVICE_REMOVED)
	}
}
