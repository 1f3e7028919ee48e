// Package ipc implements the bounded-buffer coordination layer shared by
// the supervisor and an unbounded number of generators: a fixed-layout
// shared-memory ring (the Shared Region) plus three named counting
// semaphores (the Named Semaphore Set).
//
// # Platform support
//
// The layout is mapped via mmap and manipulated with raw Linux syscalls
// (golang.org/x/sys/unix); only linux/amd64 and linux/arm64 style targets
// are supported, matching the POSIX shared-memory and futex primitives the
// protocol is built on. There is no cgo dependency: named shared memory is
// implemented directly against /dev/shm (the same tmpfs glibc's shm_open
// uses internally on Linux), and the named semaphores are a small
// counter-plus-futex primitive layered on top of that shared memory.
//
// # Resource lifecycle
//
// The supervisor exclusively creates the Shared Region and all three
// semaphores at startup, failing if any name already exists, and
// exclusively unlinks them at shutdown. Generators only attach to
// existing resources. If a supervisor is killed without running its
// shutdown path, the named resources persist in /dev/shm and the next
// supervisor startup fails deterministically (resource-creation error)
// until an operator removes the stale names. There is no automatic
// dead-owner recovery; a generator that dies while holding write_mutex
// will deadlock every subsequent writer.
package ipc
