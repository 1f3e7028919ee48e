//go:build linux

package ipc

import (
	"errors"

	"golang.org/x/sys/unix"
)

// shmDir is the tmpfs directory POSIX shm_open uses on Linux (glibc
// implements shm_open as open() under here); using it directly avoids a
// cgo dependency on the real libc call while keeping identical semantics
// (O_CREAT|O_EXCL for "fail if exists", plain O_RDWR for attach-only).
const shmDir = "/dev/shm/"

func shmPath(name string) string {
	return shmDir + name
}

// createSHMRaw creates a new named shared-memory segment of size bytes,
// failing with ErrResourceExists if the name is already taken.
func createSHMRaw(name string, size int) ([]byte, error) {
	path := shmPath(name)
	fd, err := unix.Open(path, unix.O_CREAT|unix.O_EXCL|unix.O_RDWR, 0o600)
	if err != nil {
		if errors.Is(err, unix.EEXIST) {
			return nil, wrapInit(name, "create shared memory", ErrResourceExists)
		}
		return nil, wrapInit(name, "create shared memory", err)
	}
	defer unix.Close(fd)

	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		_ = unix.Unlink(path)
		return nil, wrapInit(name, "truncate shared memory", err)
	}

	mem, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = unix.Unlink(path)
		return nil, wrapInit(name, "map shared memory", err)
	}

	return mem, nil
}

// attachSHMRaw maps an existing named shared-memory segment of size
// bytes read/write, failing with ErrResourceAbsent if it does not exist.
func attachSHMRaw(name string, size int) ([]byte, error) {
	path := shmPath(name)
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		if errors.Is(err, unix.ENOENT) {
			return nil, wrapInit(name, "open shared memory", ErrResourceAbsent)
		}
		return nil, wrapInit(name, "open shared memory", err)
	}
	defer unix.Close(fd)

	mem, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, wrapInit(name, "map shared memory", err)
	}

	return mem, nil
}

// createSHM creates a new named Shared Region backed by createSHMRaw.
func createSHM(name string, size int) (*Region, error) {
	mem, err := createSHMRaw(name, size)
	if err != nil {
		return nil, err
	}
	return newRegion(mem), nil
}

// attachSHM maps an existing named Shared Region.
func attachSHM(name string, size int) (*Region, error) {
	mem, err := attachSHMRaw(name, size)
	if err != nil {
		return nil, err
	}
	return newRegion(mem), nil
}

// closeRegion unmaps the region's backing memory. It does not unlink the
// name; only the owning supervisor does that, via unlinkSHM.
func closeRegion(r *Region) error {
	if r == nil || r.mem == nil {
		return nil
	}
	mem := r.mem
	r.mem = nil
	r.layout = nil
	return unix.Munmap(mem)
}

// unmapRaw unmaps a raw memory-mapped segment (used for semaphores).
func unmapRaw(mem []byte) error {
	if mem == nil {
		return nil
	}
	return unix.Munmap(mem)
}

// unlinkSHM removes the named segment. A missing name is treated as
// benign.
func unlinkSHM(name string) error {
	err := unix.Unlink(shmPath(name))
	if err == nil || errors.Is(err, unix.ENOENT) {
		return nil
	}
	return err
}
