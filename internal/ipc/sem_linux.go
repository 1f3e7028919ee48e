//go:build linux

package ipc

import (
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Linux futex operation numbers (stable kernel ABI values; not exposed
// as named constants for every GOARCH in golang.org/x/sys/unix, so
// spelled out directly here).
const (
	futexWaitOp = 0
	futexWakeOp = 1
)

// futexPollInterval bounds how long a single FUTEX_WAIT call blocks
// before Semaphore.Wait rechecks its stop signal. Go does not surface a
// delivered signal as an interrupted raw futex syscall the way a C
// program observes EINTR, so instead of relying on interruption we
// bound the wait and poll the stop flag between attempts.
const futexPollInterval = 200 * time.Millisecond

// futexWake wakes up to n waiters blocked on word.
func futexWake(word *int32, n int32) {
	_, _, _ = unix.Syscall(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(word)),
		uintptr(futexWakeOp),
		uintptr(n),
	)
}

// futexWaitTimeout blocks until word's value changes from expect, or
// futexPollInterval elapses, whichever comes first. Errors (EAGAIN,
// ETIMEDOUT, EINTR) are all treated the same way by the caller: loop and
// re-check.
func futexWaitTimeout(word *int32, expect int32) {
	ts := unix.NsecToTimespec(futexPollInterval.Nanoseconds())
	_, _, _ = unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(word)),
		uintptr(futexWaitOp),
		uintptr(expect),
		uintptr(unsafe.Pointer(&ts)),
		0, 0,
	)
}
