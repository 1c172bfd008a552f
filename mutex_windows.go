package sharedtex

import (
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sys/windows"
)

// Wait results and timeout sentinel for WaitForSingleObject (kernel32).
const (
	waitObject0   = 0x00000000
	waitAbandoned = 0x00000080
	waitTimeout   = 0x00000102
	waitInfinite  = 0xFFFFFFFF
)

// frameMutex guards texture existence and identity between the
// frame-producing side and whoever opened the exported handle. It wraps
// an unnamed, initially unowned Win32 mutex: a kernel object rather
// than a Go mutex, so a consumer in another context can participate in
// the same exclusion through the shared resource's device.
type frameMutex struct {
	handle windows.Handle
}

func newFrameMutex() (*frameMutex, error) {
	h, err := windows.CreateMutex(nil, false, nil)
	if err != nil {
		return nil, fmt.Errorf("sharedtex: create frame mutex: %w", err)
	}
	return &frameMutex{handle: h}, nil
}

// acquire waits for ownership of the mutex for at most timeout.
// Values <= 0 wait forever. An expired wait returns ErrLockTimeout.
// A mutex abandoned by a dead owner counts as acquired.
//
// Mutex ownership belongs to an OS thread, not a goroutine, so acquire
// pins the calling goroutine to its thread until the matching release.
func (m *frameMutex) acquire(timeout time.Duration) error {
	ms := uint32(waitInfinite)
	if timeout > 0 {
		ms = uint32(timeout.Milliseconds())
		if ms == 0 {
			ms = 1
		}
	}
	runtime.LockOSThread()
	ev, err := windows.WaitForSingleObject(m.handle, ms)
	switch ev {
	case waitObject0:
		return nil
	case waitAbandoned:
		// The previous owner died while holding the lock; ownership
		// still transfers to us.
		logger().Warn("frame mutex abandoned by previous owner")
		return nil
	case waitTimeout:
		runtime.UnlockOSThread()
		return ErrLockTimeout
	}
	runtime.UnlockOSThread()
	if err != nil {
		return fmt.Errorf("sharedtex: wait for frame mutex: %w", err)
	}
	return fmt.Errorf("sharedtex: wait for frame mutex: unexpected status %#x", ev)
}

// release relinquishes ownership and unpins the goroutine. Release
// errors are logged, not returned: the caller is past the point of
// acting on them.
func (m *frameMutex) release() {
	if err := windows.ReleaseMutex(m.handle); err != nil {
		logger().Warn("release frame mutex", "err", err)
	}
	runtime.UnlockOSThread()
}

// close destroys the kernel object. Idempotent.
func (m *frameMutex) close() {
	if m.handle == 0 {
		return
	}
	if err := windows.CloseHandle(m.handle); err != nil {
		logger().Warn("close frame mutex handle", "err", err)
	}
	m.handle = 0
}
