package d3d11

import "fmt"

// HRESULT is a COM operation status. The high bit set means failure.
// HRESULT implements error so failed COM calls can be wrapped and
// inspected with errors.As.
type HRESULT uint32

// Well-known status codes returned by the D3D11/DXGI surface this
// package touches. Names follow the platform headers.
const (
	S_OK    HRESULT = 0x00000000
	S_FALSE HRESULT = 0x00000001

	E_NOTIMPL     HRESULT = 0x80004001
	E_NOINTERFACE HRESULT = 0x80004002
	E_POINTER     HRESULT = 0x80004003
	E_ABORT       HRESULT = 0x80004004
	E_FAIL        HRESULT = 0x80004005
	E_OUTOFMEMORY HRESULT = 0x8007000E
	E_INVALIDARG  HRESULT = 0x80070057

	DXGI_ERROR_INVALID_CALL         HRESULT = 0x887A0001
	DXGI_ERROR_NOT_FOUND            HRESULT = 0x887A0002
	DXGI_ERROR_MORE_DATA            HRESULT = 0x887A0003
	DXGI_ERROR_UNSUPPORTED          HRESULT = 0x887A0004
	DXGI_ERROR_DEVICE_REMOVED       HRESULT = 0x887A0005
	DXGI_ERROR_DEVICE_HUNG          HRESULT = 0x887A0006
	DXGI_ERROR_DEVICE_RESET         HRESULT = 0x887A0007
	DXGI_ERROR_WAS_STILL_DRAWING    HRESULT = 0x887A000A
	DXGI_ERROR_ACCESS_LOST          HRESULT = 0x887A0026
	DXGI_ERROR_WAIT_TIMEOUT         HRESULT = 0x887A0027
	DXGI_ERROR_SESSION_DISCONNECTED HRESULT = 0x887A0028
	DXGI_ERROR_ACCESS_DENIED        HRESULT = 0x887A002B

	D3D11_ERROR_TOO_MANY_UNIQUE_STATE_OBJECTS HRESULT = 0x887C0001
	D3D11_ERROR_FILE_NOT_FOUND                HRESULT = 0x887C0002
)

var hresultNames = map[HRESULT]string{
	S_OK:          "S_OK",
	S_FALSE:       "S_FALSE",
	E_NOTIMPL:     "E_NOTIMPL",
	E_NOINTERFACE: "E_NOINTERFACE",
	E_POINTER:     "E_POINTER",
	E_ABORT:       "E_ABORT",
	E_FAIL:        "E_FAIL",
	E_OUTOFMEMORY: "E_OUTOFMEMORY",
	E_INVALIDARG:  "E_INVALIDARG",

	DXGI_ERROR_INVALID_CALL:         "DXGI_ERROR_INVALID_CALL",
	DXGI_ERROR_NOT_FOUND:            "DXGI_ERROR_NOT_FOUND",
	DXGI_ERROR_MORE_DATA:            "DXGI_ERROR_MORE_DATA",
	DXGI_ERROR_UNSUPPORTED:          "DXGI_ERROR_UNSUPPORTED",
	DXGI_ERROR_DEVICE_REMOVED:       "DXGI_ERROR_DEVICE_REMOVED",
	DXGI_ERROR_DEVICE_HUNG:          "DXGI_ERROR_DEVICE_HUNG",
	DXGI_ERROR_DEVICE_RESET:         "DXGI_ERROR_DEVICE_RESET",
	DXGI_ERROR_WAS_STILL_DRAWING:    "DXGI_ERROR_WAS_STILL_DRAWING",
	DXGI_ERROR_ACCESS_LOST:          "DXGI_ERROR_ACCESS_LOST",
	DXGI_ERROR_WAIT_TIMEOUT:         "DXGI_ERROR_WAIT_TIMEOUT",
	DXGI_ERROR_SESSION_DISCONNECTED: "DXGI_ERROR_SESSION_DISCONNECTED",
	DXGI_ERROR_ACCESS_DENIED:        "DXGI_ERROR_ACCESS_DENIED",

	D3D11_ERROR_TOO_MANY_UNIQUE_STATE_OBJECTS: "D3D11_ERROR_TOO_MANY_UNIQUE_STATE_OBJECTS",
	D3D11_ERROR_FILE_NOT_FOUND:                "D3D11_ERROR_FILE_NOT_FOUND",
}

// Failed reports whether the status represents a failure.
func (hr HRESULT) Failed() bool { return int32(hr) < 0 }

// Error formats the status with its header name when known.
func (hr HRESULT) Error() string {
	if name, ok := hresultNames[hr]; ok {
		return fmt.Sprintf("%s (0x%08X)", name, uint32(hr))
	}
	return fmt.Sprintf("HRESULT 0x%08X", uint32(hr))
}

// String returns the same representation as Error so HRESULT values
// format cleanly in logs even when they are not failures.
func (hr HRESULT) String() string { return hr.Error() }
