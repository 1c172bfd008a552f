package d3d11

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	moddxgi               = windows.NewLazySystemDLL("dxgi.dll")
	procCreateDXGIFactory = moddxgi.NewProc("CreateDXGIFactory")
)

var (
	iidIDXGIFactory  = mustGUID("{7B7166EC-21C7-44AE-B21A-C9AE321AE369}")
	iidIDXGIDevice   = mustGUID("{54EC77FA-1377-44E6-8C32-88FD5F44C84C}")
	iidIDXGIResource = mustGUID("{035F3AB4-482E-4E50-B41F-8A7F8BD8960B}")
)

// LUID identifies an adapter to the OS graphics scheduler.
type LUID struct {
	LowPart  uint32
	HighPart int32
}

// DXGI_ADAPTER_DESC mirrors the C struct layout.
type DXGI_ADAPTER_DESC struct {
	Description           [128]uint16
	VendorID              uint32
	DeviceID              uint32
	SubSysID              uint32
	Revision              uint32
	DedicatedVideoMemory  uint64
	DedicatedSystemMemory uint64
	SharedSystemMemory    uint64
	AdapterLUID           LUID
}

// Name returns the adapter description as a Go string.
func (d *DXGI_ADAPTER_DESC) Name() string {
	return windows.UTF16ToString(d.Description[:])
}

// Factory wraps IDXGIFactory.
type Factory struct {
	vtbl *iDXGIFactoryVtbl
}

// Adapter wraps IDXGIAdapter.
type Adapter struct {
	vtbl *iDXGIAdapterVtbl
}

// DXGIDevice wraps the IDXGIDevice view of a Direct3D device.
type DXGIDevice struct {
	vtbl *iDXGIDeviceVtbl
}

// DXGIResource wraps the IDXGIResource view of a shareable resource.
type DXGIResource struct {
	vtbl *iDXGIResourceVtbl
}

// CreateFactory creates a DXGI factory for adapter enumeration.
func CreateFactory() (*Factory, error) {
	if err := moddxgi.Load(); err != nil {
		return nil, fmt.Errorf("d3d11: load dxgi.dll: %w", err)
	}
	var f *Factory
	r, _, _ := procCreateDXGIFactory.Call(
		uintptr(unsafe.Pointer(&iidIDXGIFactory)),
		uintptr(unsafe.Pointer(&f)),
	)
	if hr := HRESULT(r); hr.Failed() {
		return nil, fmt.Errorf("d3d11: CreateDXGIFactory: %w", hr)
	}
	return f, nil
}

// EnumAdapters returns the adapter at index. Past the last adapter the
// error unwraps to DXGI_ERROR_NOT_FOUND.
func (f *Factory) EnumAdapters(index uint32) (*Adapter, error) {
	var a *Adapter
	r, _, _ := syscall.SyscallN(f.vtbl.EnumAdapters,
		uintptr(unsafe.Pointer(f)),
		uintptr(index),
		uintptr(unsafe.Pointer(&a)),
	)
	if hr := HRESULT(r); hr.Failed() {
		return nil, fmt.Errorf("d3d11: EnumAdapters(%d): %w", index, hr)
	}
	return a, nil
}

func (f *Factory) Release() uint32 {
	return comRelease(unsafe.Pointer(f), f.vtbl.Release)
}

// GetDesc returns the adapter description.
func (a *Adapter) GetDesc() (DXGI_ADAPTER_DESC, error) {
	var desc DXGI_ADAPTER_DESC
	r, _, _ := syscall.SyscallN(a.vtbl.GetDesc,
		uintptr(unsafe.Pointer(a)),
		uintptr(unsafe.Pointer(&desc)),
	)
	if hr := HRESULT(r); hr.Failed() {
		return DXGI_ADAPTER_DESC{}, fmt.Errorf("d3d11: IDXGIAdapter::GetDesc: %w", hr)
	}
	return desc, nil
}

func (a *Adapter) Release() uint32 {
	return comRelease(unsafe.Pointer(a), a.vtbl.Release)
}

// GetAdapter returns the adapter this device was created on.
func (d *DXGIDevice) GetAdapter() (*Adapter, error) {
	var a *Adapter
	r, _, _ := syscall.SyscallN(d.vtbl.GetAdapter,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(&a)),
	)
	if hr := HRESULT(r); hr.Failed() {
		return nil, fmt.Errorf("d3d11: IDXGIDevice::GetAdapter: %w", hr)
	}
	return a, nil
}

// SetGPUThreadPriority adjusts GPU scheduling for this device's work.
// The platform accepts priorities in [-7, 7].
func (d *DXGIDevice) SetGPUThreadPriority(priority int32) error {
	r, _, _ := syscall.SyscallN(d.vtbl.SetGPUThreadPriority,
		uintptr(unsafe.Pointer(d)),
		uintptr(priority),
	)
	if hr := HRESULT(r); hr.Failed() {
		return fmt.Errorf("d3d11: SetGPUThreadPriority(%d): %w", priority, hr)
	}
	return nil
}

// GetGPUThreadPriority returns the current GPU scheduling priority.
func (d *DXGIDevice) GetGPUThreadPriority() (int32, error) {
	var priority int32
	r, _, _ := syscall.SyscallN(d.vtbl.GetGPUThreadPriority,
		uintptr(unsafe.Pointer(d)),
		uintptr(unsafe.Pointer(&priority)),
	)
	if hr := HRESULT(r); hr.Failed() {
		return 0, fmt.Errorf("d3d11: GetGPUThreadPriority: %w", hr)
	}
	return priority, nil
}

func (d *DXGIDevice) Release() uint32 {
	return comRelease(unsafe.Pointer(d), d.vtbl.Release)
}

// GetSharedHandle returns the OS handle other devices (or processes)
// use to open this resource. The handle is owned by the resource; it is
// not a kernel handle the caller must close.
func (r *DXGIResource) GetSharedHandle() (windows.Handle, error) {
	var h windows.Handle
	hr0, _, _ := syscall.SyscallN(r.vtbl.GetSharedHandle,
		uintptr(unsafe.Pointer(r)),
		uintptr(unsafe.Pointer(&h)),
	)
	if hr := HRESULT(hr0); hr.Failed() {
		return 0, fmt.Errorf("d3d11: GetSharedHandle: %w", hr)
	}
	if h == 0 {
		return 0, fmt.Errorf("d3d11: GetSharedHandle: %w", E_FAIL)
	}
	return h, nil
}

func (r *DXGIResource) Release() uint32 {
	return comRelease(unsafe.Pointer(r), r.vtbl.Release)
}
