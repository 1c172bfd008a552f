package d3d11

// Vtable layouts for the IDXGI* interfaces this package calls, in
// dxgi.h order.

// iDXGIObjectVtbl covers the common prefix of all DXGI interfaces.
type iDXGIObjectVtbl struct {
	iUnknownVtbl
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	GetPrivateData          uintptr
	GetParent               uintptr
}

type iDXGIFactoryVtbl struct {
	iDXGIObjectVtbl
	EnumAdapters          uintptr
	MakeWindowAssociation uintptr
	GetWindowAssociation  uintptr
	CreateSwapChain       uintptr
	CreateSoftwareAdapter uintptr
}

type iDXGIAdapterVtbl struct {
	iDXGIObjectVtbl
	EnumOutputs           uintptr
	GetDesc               uintptr
	CheckInterfaceSupport uintptr
}

type iDXGIDeviceVtbl struct {
	iDXGIObjectVtbl
	GetAdapter             uintptr
	CreateSurface          uintptr
	QueryResourceResidency uintptr
	SetGPUThreadPriority   uintptr
	GetGPUThreadPriority   uintptr
}

// iDXGIResourceVtbl includes the IDXGIDeviceSubObject GetDevice slot
// that precedes the resource methods.
type iDXGIResourceVtbl struct {
	iDXGIObjectVtbl
	GetDevice           uintptr
	GetSharedHandle     uintptr
	GetUsage            uintptr
	SetEvictionPriority uintptr
	GetEvictionPriority uintptr
}
