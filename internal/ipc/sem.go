package ipc

import (
	"sync/atomic"
	"unsafe"
)

// semaphoreSize is the byte size of a semaphore's backing segment: one
// 4-byte aligned counter. A futex word must be exactly 4 bytes.
const semaphoreSize = 4

// Semaphore is a named counting semaphore with POSIX-style semantics:
// Wait atomically decrements (blocking while zero), Post atomically
// increments and wakes at most one waiter. It's backed by its own named
// shared-memory segment (so it shares the create/attach/unlink lifecycle
// rules of the Shared Region) and uses the Linux futex syscall for
// blocking instead of spinning.
type Semaphore struct {
	name string
	mem  []byte
	word *int32
}

func newSemaphore(name string, mem []byte) *Semaphore {
	return &Semaphore{
		name: name,
		mem:  mem,
		word: (*int32)(unsafe.Pointer(&mem[0])),
	}
}

// CreateSemaphore creates a new named semaphore with the given initial
// value, failing with ErrResourceExists if the name is already taken.
func CreateSemaphore(name string, initial int32) (*Semaphore, error) {
	mem, err := createSHMRaw(name, semaphoreSize)
	if err != nil {
		return nil, err
	}
	s := newSemaphore(name, mem)
	atomic.StoreInt32(s.word, initial)
	return s, nil
}

// AttachSemaphore opens an existing named semaphore, failing with
// ErrResourceAbsent if it does not exist.
func AttachSemaphore(name string) (*Semaphore, error) {
	mem, err := attachSHMRaw(name, semaphoreSize)
	if err != nil {
		return nil, err
	}
	return newSemaphore(name, mem), nil
}

// Close unmaps the semaphore's backing memory without unlinking its
// name. Generators call this; the owning supervisor additionally calls
// Unlink.
func (s *Semaphore) Close() error {
	if s == nil || s.mem == nil {
		return nil
	}
	mem := s.mem
	s.mem = nil
	s.word = nil
	return unmapRaw(mem)
}

// Unlink removes the semaphore's name. Only the owning supervisor calls
// this; it does not depend on whether Close has run. A missing name is
// treated as benign.
func (s *Semaphore) Unlink() error {
	return unlinkSHM(s.name)
}

// Value atomically reads the current counter value, used by the
// supervisor's shutdown protocol to know when enough wake tokens have
// been posted.
func (s *Semaphore) Value() int32 {
	return atomic.LoadInt32(s.word)
}

// Post atomically increments the counter and wakes at most one blocked
// waiter.
func (s *Semaphore) Post() {
	atomic.AddInt32(s.word, 1)
	futexWake(s.word, 1)
}

// StopSignal is satisfied by *signalctl.StopFlag; declared here (instead
// of imported) to keep ipc free of a dependency on signalctl, narrowing
// the injection point to exactly what a blocking wait needs.
type StopSignal interface {
	Requested() bool
	Done() <-chan struct{}
}

// Wait blocks until the semaphore can be decremented, or stop is
// tripped, in which case it returns ErrStopRequested without having
// consumed a count. The bounded-timeout futex wait below, re-checking
// stop on every iteration, is the one retry loop for blocking waits;
// callers never need their own interrupt-retry logic.
func (s *Semaphore) Wait(stop StopSignal) error {
	for {
		if stop != nil && stop.Requested() {
			return ErrStopRequested
		}
		cur := atomic.LoadInt32(s.word)
		if cur > 0 {
			if atomic.CompareAndSwapInt32(s.word, cur, cur-1) {
				return nil
			}
			continue
		}
		futexWaitTimeout(s.word, 0)
	}
}
