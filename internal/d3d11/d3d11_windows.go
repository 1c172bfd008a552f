package d3d11

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modd3d11              = windows.NewLazySystemDLL("d3d11.dll")
	procD3D11CreateDevice = modd3d11.NewProc("D3D11CreateDevice")
)

var iidID3D11Texture2D = mustGUID("{6F15AAF2-D208-4E89-9AB4-489535D34F9C}")

// defaultFeatureLevels is the negotiation list passed to
// D3D11CreateDevice, most capable first. The driver accepts the first
// level it supports.
var defaultFeatureLevels = [...]FeatureLevel{
	FeatureLevel11_1,
	FeatureLevel11_0,
	FeatureLevel10_1,
	FeatureLevel10_0,
	FeatureLevel9_3,
}

// Device wraps ID3D11Device.
type Device struct {
	vtbl *iD3D11DeviceVtbl
}

// DeviceContext wraps the immediate ID3D11DeviceContext.
type DeviceContext struct {
	vtbl *iD3D11DeviceContextVtbl
}

// Texture2D wraps ID3D11Texture2D.
type Texture2D struct {
	vtbl *iD3D11Texture2DVtbl
}

// RenderTargetView wraps ID3D11RenderTargetView.
type RenderTargetView struct {
	vtbl *iD3D11RenderTargetViewVtbl
}

// NewDevice creates a Direct3D 11 device and its immediate context.
//
// Adapter policy: on Windows 10 and newer the hardware driver type is
// requested and the driver picks the adapter. Older systems enumerate
// adapter 0 through a DXGI factory, which pre-10 WDDM drivers expect;
// if enumeration yields nothing the driver-default path is used anyway.
// adapterIndex >= 0 overrides the policy and forces enumeration of that
// adapter.
//
// The negotiated feature level is logged at Info and returned.
func NewDevice(adapterIndex int) (*Device, *DeviceContext, FeatureLevel, error) {
	if err := modd3d11.Load(); err != nil {
		return nil, nil, 0, fmt.Errorf("d3d11: load d3d11.dll: %w", err)
	}

	var (
		adapter    *Adapter
		driverType uint32 = D3D_DRIVER_TYPE_HARDWARE
	)
	if adapterIndex >= 0 || !isWindows10OrGreater() {
		index := adapterIndex
		if index < 0 {
			index = 0
		}
		a, err := enumAdapter(uint32(index))
		switch {
		case err == nil:
			adapter = a
			driverType = D3D_DRIVER_TYPE_UNKNOWN
			defer adapter.Release()
		case adapterIndex >= 0:
			return nil, nil, 0, err
		default:
			logger().Warn("adapter enumeration failed, using driver selection", "err", err)
		}
	}

	var (
		dev   *Device
		ctx   *DeviceContext
		level FeatureLevel
	)
	r, _, _ := procD3D11CreateDevice.Call(
		uintptr(unsafe.Pointer(adapter)),
		uintptr(driverType),
		0, // no software rasterizer module
		0, // no creation flags
		uintptr(unsafe.Pointer(&defaultFeatureLevels[0])),
		uintptr(len(defaultFeatureLevels)),
		D3D11_SDK_VERSION,
		uintptr(unsafe.Pointer(&dev)),
		uintptr(unsafe.Pointer(&level)),
		uintptr(unsafe.Pointer(&ctx)),
	)
	if hr := HRESULT(r); hr.Failed() {
		return nil, nil, 0, fmt.Errorf("d3d11: D3D11CreateDevice: %w", hr)
	}
	logger().Info("created Direct3D 11 device", "feature_level", level)
	return dev, ctx, level, nil
}

// enumAdapter creates a throwaway factory and returns the adapter at
// index.
func enumAdapter(index uint32) (*Adapter, error) {
	factory, err := CreateFactory()
	if err != nil {
		return nil, err
	}
	defer factory.Release()
	return factory.EnumAdapters(index)
}

// CreateTexture2D allocates a texture described by desc.
func (d *Device) CreateTexture2D(desc *D3D11_TEXTURE2D_DESC) (*Texture2D, error) {
	var tex *Texture2D
	r, _, _ := syscall.SyscallN(d.vtbl.CreateTexture2D,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(desc)),
		0, // no initial data
		uintptr(unsafe.Pointer(&tex)),
	)
	if hr := HRESULT(r); hr.Failed() {
		return nil, fmt.Errorf("d3d11: CreateTexture2D %dx%d: %w", desc.Width, desc.Height, hr)
	}
	return tex, nil
}

// CreateRenderTargetView creates a default view of tex usable as a
// render target.
func (d *Device) CreateRenderTargetView(tex *Texture2D) (*RenderTargetView, error) {
	var rtv *RenderTargetView
	r, _, _ := syscall.SyscallN(d.vtbl.CreateRenderTargetView,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(tex)),
		0, // default view desc
		uintptr(unsafe.Pointer(&rtv)),
	)
	if hr := HRESULT(r); hr.Failed() {
		return nil, fmt.Errorf("d3d11: CreateRenderTargetView: %w", hr)
	}
	return rtv, nil
}

// OpenSharedTexture2D opens a texture created on another device through
// its shared handle. The returned texture holds its own reference.
func (d *Device) OpenSharedTexture2D(h windows.Handle) (*Texture2D, error) {
	var tex *Texture2D
	r, _, _ := syscall.SyscallN(d.vtbl.OpenSharedResource,
		uintptr(unsafe.Pointer(d)),
		uintptr(h),
		uintptr(unsafe.Pointer(&iidID3D11Texture2D)),
		uintptr(unsafe.Pointer(&tex)),
	)
	if hr := HRESULT(r); hr.Failed() {
		return nil, fmt.Errorf("d3d11: OpenSharedResource: %w", hr)
	}
	return tex, nil
}

// DXGIDevice returns the IDXGIDevice view of this device. The caller
// releases it.
func (d *Device) DXGIDevice() (*DXGIDevice, error) {
	var dxgi *DXGIDevice
	err := comQueryInterface(unsafe.Pointer(d), d.vtbl.QueryInterface,
		&iidIDXGIDevice, unsafe.Pointer(&dxgi))
	if err != nil {
		return nil, fmt.Errorf("d3d11: query IDXGIDevice: %w", err)
	}
	return dxgi, nil
}

// FeatureLevel returns the level the device was created with.
func (d *Device) FeatureLevel() FeatureLevel {
	r, _, _ := syscall.SyscallN(d.vtbl.GetFeatureLevel, uintptr(unsafe.Pointer(d)))
	return FeatureLevel(r)
}

func (d *Device) Release() uint32 {
	return comRelease(unsafe.Pointer(d), d.vtbl.Release)
}

// Flush submits queued commands to the GPU.
func (c *DeviceContext) Flush() {
	syscall.SyscallN(c.vtbl.Flush, uintptr(unsafe.Pointer(c)))
}

// CopyResource copies the whole of src into dst. Both textures must
// have identical dimensions and format.
func (c *DeviceContext) CopyResource(dst, src *Texture2D) {
	syscall.SyscallN(c.vtbl.CopyResource,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(dst)),
		uintptr(unsafe.Pointer(src)),
	)
}

// ClearRenderTargetView fills the view's texture with rgba (components
// in [0, 1]).
func (c *DeviceContext) ClearRenderTargetView(rtv *RenderTargetView, rgba [4]float32) {
	syscall.SyscallN(c.vtbl.ClearRenderTargetView,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(rtv)),
		uintptr(unsafe.Pointer(&rgba[0])),
	)
}

// Map exposes a subresource of a staging texture to the CPU.
func (c *DeviceContext) Map(tex *Texture2D, subresource, mapType, flags uint32) (D3D11_MAPPED_SUBRESOURCE, error) {
	var mapped D3D11_MAPPED_SUBRESOURCE
	r, _, _ := syscall.SyscallN(c.vtbl.Map,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(tex)),
		uintptr(subresource),
		uintptr(mapType),
		uintptr(flags),
		uintptr(unsafe.Pointer(&mapped)),
	)
	if hr := HRESULT(r); hr.Failed() {
		return D3D11_MAPPED_SUBRESOURCE{}, fmt.Errorf("d3d11: Map: %w", hr)
	}
	return mapped, nil
}

// Unmap releases a mapping obtained from Map.
func (c *DeviceContext) Unmap(tex *Texture2D, subresource uint32) {
	syscall.SyscallN(c.vtbl.Unmap,
		uintptr(unsafe.Pointer(c)),
		uintptr(unsafe.Pointer(tex)),
		uintptr(subresource),
	)
}

func (c *DeviceContext) Release() uint32 {
	return comRelease(unsafe.Pointer(c), c.vtbl.Release)
}

// Desc returns the texture descriptor.
func (t *Texture2D) Desc() D3D11_TEXTURE2D_DESC {
	var desc D3D11_TEXTURE2D_DESC
	syscall.SyscallN(t.vtbl.GetDesc,
		uintptr(unsafe.Pointer(t)),
		uintptr(unsafe.Pointer(&desc)),
	)
	return desc
}

// SharedHandle extracts the texture's OS shared handle through its
// IDXGIResource view. The texture must have been created with
// D3D11_RESOURCE_MISC_SHARED.
func (t *Texture2D) SharedHandle() (windows.Handle, error) {
	var res *DXGIResource
	err := comQueryInterface(unsafe.Pointer(t), t.vtbl.QueryInterface,
		&iidIDXGIResource, unsafe.Pointer(&res))
	if err != nil {
		return 0, fmt.Errorf("d3d11: query IDXGIResource: %w", err)
	}
	defer res.Release()
	return res.GetSharedHandle()
}

// AddRef takes an additional reference on the texture.
func (t *Texture2D) AddRef() uint32 {
	return comAddRef(unsafe.Pointer(t), t.vtbl.AddRef)
}

func (t *Texture2D) Release() uint32 {
	return comRelease(unsafe.Pointer(t), t.vtbl.Release)
}

func (v *RenderTargetView) Release() uint32 {
	return comRelease(unsafe.Pointer(v), v.vtbl.Release)
}
