// Package d3d11 provides the minimal Direct3D 11 and DXGI surface needed
// to allocate a shareable BGRA texture, export its OS handle, and flush
// pending GPU work.
//
// The bindings are pure Go: COM interfaces are modeled as structs whose
// first field points at the interface vtable, and methods dispatch through
// syscall.SyscallN on the vtable slot. No cgo, no import of the DirectX
// SDK headers. Vtable layouts follow d3d11.h and dxgi.h field order; slot
// positions are load-bearing and must not be reordered.
//
// Everything Windows-specific lives in *_windows.go files. HRESULT,
// FeatureLevel and the package logger are portable so that callers can
// reference them from platform-neutral code.
package d3d11
