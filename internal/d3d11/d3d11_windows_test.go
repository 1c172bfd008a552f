package d3d11

import (
	"testing"
	"unsafe"
)

// TestStructLayouts guards the ABI of structs the driver reads through
// raw pointers.
func TestStructLayouts(t *testing.T) {
	if got := unsafe.Sizeof(DXGI_SAMPLE_DESC{}); got != 8 {
		t.Errorf("DXGI_SAMPLE_DESC size = %d, want 8", got)
	}
	if got := unsafe.Sizeof(D3D11_TEXTURE2D_DESC{}); got != 44 {
		t.Errorf("D3D11_TEXTURE2D_DESC size = %d, want 44", got)
	}
	if unsafe.Sizeof(uintptr(0)) == 8 {
		if got := unsafe.Sizeof(DXGI_ADAPTER_DESC{}); got != 304 {
			t.Errorf("DXGI_ADAPTER_DESC size = %d, want 304", got)
		}
		if got := unsafe.Sizeof(D3D11_MAPPED_SUBRESOURCE{}); got != 16 {
			t.Errorf("D3D11_MAPPED_SUBRESOURCE size = %d, want 16", got)
		}
	}
}

// TestVtblSlotCounts catches dropped or duplicated vtable fields; a
// wrong slot count shifts every call after the mistake.
func TestVtblSlotCounts(t *testing.T) {
	ptr := unsafe.Sizeof(uintptr(0))
	tests := []struct {
		name  string
		size  uintptr
		slots uintptr
	}{
		{"iUnknownVtbl", unsafe.Sizeof(iUnknownVtbl{}), 3},
		{"iD3D11DeviceChildVtbl", unsafe.Sizeof(iD3D11DeviceChildVtbl{}), 7},
		{"iD3D11DeviceVtbl", unsafe.Sizeof(iD3D11DeviceVtbl{}), 43},
		{"iD3D11DeviceContextVtbl", unsafe.Sizeof(iD3D11DeviceContextVtbl{}), 115},
		{"iD3D11Texture2DVtbl", unsafe.Sizeof(iD3D11Texture2DVtbl{}), 11},
		{"iD3D11RenderTargetViewVtbl", unsafe.Sizeof(iD3D11RenderTargetViewVtbl{}), 9},
		{"iDXGIObjectVtbl", unsafe.Sizeof(iDXGIObjectVtbl{}), 7},
		{"iDXGIFactoryVtbl", unsafe.Sizeof(iDXGIFactoryVtbl{}), 12},
		{"iDXGIAdapterVtbl", unsafe.Sizeof(iDXGIAdapterVtbl{}), 10},
		{"iDXGIDeviceVtbl", unsafe.Sizeof(iDXGIDeviceVtbl{}), 12},
		{"iDXGIResourceVtbl", unsafe.Sizeof(iDXGIResourceVtbl{}), 12},
	}
	for _, tt := range tests {
		if tt.size != tt.slots*ptr {
			t.Errorf("%s has %d slots, want %d", tt.name, tt.size/ptr, tt.slots)
		}
	}
}

func TestInterfaceIDs(t *testing.T) {
	tests := []struct {
		name  string
		data1 uint32
	}{
		{"IDXGIFactory", iidIDXGIFactory.Data1},
		{"IDXGIDevice", iidIDXGIDevice.Data1},
		{"IDXGIResource", iidIDXGIResource.Data1},
		{"ID3D11Texture2D", iidID3D11Texture2D.Data1},
	}
	want := map[string]uint32{
		"IDXGIFactory":    0x7B7166EC,
		"IDXGIDevice":     0x54EC77FA,
		"IDXGIResource":   0x035F3AB4,
		"ID3D11Texture2D": 0x6F15AAF2,
	}
	for _, tt := range tests {
		if tt.data1 != want[tt.name] {
			t.Errorf("IID_%s.Data1 = %#08x, want %#08x", tt.name, tt.data1, want[tt.name])
		}
	}
}

// TestNewDeviceSmoke exercises device creation against real hardware.
// Skipped on machines without a usable Direct3D 11 driver.
func TestNewDeviceSmoke(t *testing.T) {
	dev, ctx, level, err := NewDevice(-1)
	if err != nil {
		t.Skipf("no Direct3D 11 device: %v", err)
	}
	defer dev.Release()
	defer ctx.Release()

	if level.Major() < 9 {
		t.Errorf("negotiated feature level %v below the negotiation floor", level)
	}
	if got := dev.FeatureLevel(); got != level {
		t.Errorf("FeatureLevel() = %v, want %v", got, level)
	}

	// Flushing an idle context must be harmless.
	ctx.Flush()

	dxgi, err := dev.DXGIDevice()
	if err != nil {
		t.Fatalf("DXGIDevice() = %v", err)
	}
	defer dxgi.Release()

	if err := dxgi.SetGPUThreadPriority(5); err == nil {
		got, err := dxgi.GetGPUThreadPriority()
		if err != nil {
			t.Errorf("GetGPUThreadPriority() = %v", err)
		} else if got != 5 {
			t.Errorf("GetGPUThreadPriority() = %d, want 5", got)
		}
	}
}
