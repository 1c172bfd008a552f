package d3d11

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// iUnknownVtbl is the root COM vtable layout. Every Direct3D and DXGI
// interface begins with these three slots.
type iUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

// comQueryInterface asks a COM object for another interface and stores
// the result through out, which must point at an interface pointer.
func comQueryInterface(self unsafe.Pointer, slot uintptr, iid *windows.GUID, out unsafe.Pointer) error {
	r, _, _ := syscall.SyscallN(slot,
		uintptr(self),
		uintptr(unsafe.Pointer(iid)),
		uintptr(out),
	)
	if hr := HRESULT(r); hr.Failed() {
		return hr
	}
	return nil
}

func comAddRef(self unsafe.Pointer, slot uintptr) uint32 {
	r, _, _ := syscall.SyscallN(slot, uintptr(self))
	return uint32(r)
}

func comRelease(self unsafe.Pointer, slot uintptr) uint32 {
	r, _, _ := syscall.SyscallN(slot, uintptr(self))
	return uint32(r)
}

// mustGUID parses a registry-format GUID string at package init time.
func mustGUID(s string) windows.GUID {
	g, err := windows.GUIDFromString(s)
	if err != nil {
		panic("d3d11: bad GUID literal " + s + ": " + err.Error())
	}
	return g
}
