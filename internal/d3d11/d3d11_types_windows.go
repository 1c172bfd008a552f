package d3d11

// Driver types for D3D11CreateDevice. An explicit adapter requires
// D3D_DRIVER_TYPE_UNKNOWN; automatic selection uses HARDWARE.
const (
	D3D_DRIVER_TYPE_UNKNOWN   = 0
	D3D_DRIVER_TYPE_HARDWARE  = 1
	D3D_DRIVER_TYPE_REFERENCE = 2
	D3D_DRIVER_TYPE_NULL      = 3
	D3D_DRIVER_TYPE_SOFTWARE  = 4
	D3D_DRIVER_TYPE_WARP      = 5
)

// D3D11_SDK_VERSION is the SDK version constant baked into d3d11.h.
const D3D11_SDK_VERSION = 7

// DXGI pixel formats (the subset this package allocates or reads back).
const (
	DXGI_FORMAT_R8G8B8A8_UNORM = 28
	DXGI_FORMAT_B8G8R8A8_UNORM = 87
)

// D3D11_USAGE values.
const (
	D3D11_USAGE_DEFAULT   = 0
	D3D11_USAGE_IMMUTABLE = 1
	D3D11_USAGE_DYNAMIC   = 2
	D3D11_USAGE_STAGING   = 3
)

// D3D11_BIND_FLAG values.
const (
	D3D11_BIND_VERTEX_BUFFER   = 0x1
	D3D11_BIND_INDEX_BUFFER    = 0x2
	D3D11_BIND_CONSTANT_BUFFER = 0x4
	D3D11_BIND_SHADER_RESOURCE = 0x8
	D3D11_BIND_RENDER_TARGET   = 0x20
	D3D11_BIND_DEPTH_STENCIL   = 0x40
)

// D3D11_CPU_ACCESS_FLAG values.
const (
	D3D11_CPU_ACCESS_WRITE = 0x10000
	D3D11_CPU_ACCESS_READ  = 0x20000
)

// D3D11_RESOURCE_MISC_FLAG values. MISC_SHARED marks a resource openable
// from another device via its DXGI shared handle.
const (
	D3D11_RESOURCE_MISC_GENERATE_MIPS     = 0x1
	D3D11_RESOURCE_MISC_SHARED            = 0x2
	D3D11_RESOURCE_MISC_SHARED_KEYEDMUTEX = 0x10
	D3D11_RESOURCE_MISC_SHARED_NTHANDLE   = 0x800
)

// D3D11_MAP values for DeviceContext.Map.
const (
	D3D11_MAP_READ               = 1
	D3D11_MAP_WRITE              = 2
	D3D11_MAP_READ_WRITE         = 3
	D3D11_MAP_WRITE_DISCARD      = 4
	D3D11_MAP_WRITE_NO_OVERWRITE = 5
)

// DXGI_SAMPLE_DESC describes multisampling. {1, 0} disables MSAA.
type DXGI_SAMPLE_DESC struct {
	Count   uint32
	Quality uint32
}

// D3D11_TEXTURE2D_DESC mirrors the C struct layout. Field order is part
// of the ABI.
type D3D11_TEXTURE2D_DESC struct {
	Width          uint32
	Height         uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         uint32
	SampleDesc     DXGI_SAMPLE_DESC
	Usage          uint32
	BindFlags      uint32
	CPUAccessFlags uint32
	MiscFlags      uint32
}

// D3D11_MAPPED_SUBRESOURCE receives the CPU view of a mapped resource.
// PData is the base pointer, RowPitch the byte stride between rows.
type D3D11_MAPPED_SUBRESOURCE struct {
	PData      uintptr
	RowPitch   uint32
	DepthPitch uint32
}
