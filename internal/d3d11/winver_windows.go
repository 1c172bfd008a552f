package d3d11

import "golang.org/x/sys/windows"

// windows10Build is the Windows 10 RTM build number.
const windows10Build = 10240

// isWindows10OrGreater reports whether the OS is Windows 10 RTM or
// newer. RtlGetVersion is used because GetVersionEx lies to manifests
// targeting older Windows.
func isWindows10OrGreater() bool {
	v := windows.RtlGetVersion()
	if v.MajorVersion != 10 {
		return v.MajorVersion > 10
	}
	return v.BuildNumber >= windows10Build
}
