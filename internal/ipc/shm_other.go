//go:build !linux

package ipc

import "errors"

// ErrUnsupportedPlatform is returned on every platform that isn't Linux.
// The protocol depends on /dev/shm-backed named shared memory and the
// Linux futex syscall (see sem.go); there is no cgo fallback.
var ErrUnsupportedPlatform = errors.New("ipc: only linux is supported")

func createSHMRaw(name string, size int) ([]byte, error) {
	return nil, wrapInit(name, "create shared memory", ErrUnsupportedPlatform)
}

func attachSHMRaw(name string, size int) ([]byte, error) {
	return nil, wrapInit(name, "open shared memory", ErrUnsupportedPlatform)
}

func createSHM(name string, size int) (*Region, error) {
	return nil, wrapInit(name, "create shared memory", ErrUnsupportedPlatform)
}

func attachSHM(name string, size int) (*Region, error) {
	return nil, wrapInit(name, "open shared memory", ErrUnsupportedPlatform)
}

func closeRegion(r *Region) error {
	return ErrUnsupportedPlatform
}

func unmapRaw(mem []byte) error {
	return ErrUnsupportedPlatform
}

func unlinkSHM(name string) error {
	return ErrUnsupportedPlatform
}
