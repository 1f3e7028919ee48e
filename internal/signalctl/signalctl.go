// Package signalctl gives each process a way to install handlers for
// the user-interrupt and termination signals that set a single
// async-signal-safe stop flag, polled at all loop heads. No other logic
// runs in the handler.
package signalctl

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
)

// StopFlag is the process-local async-safe stop flag. The zero value is
// not ready for use; construct one with Install.
type StopFlag struct {
	tripped atomic.Bool
	done    chan struct{}
	once    sync.Once
	notify  chan os.Signal
}

// Install registers handlers for os.Interrupt and syscall.SIGTERM and
// returns a StopFlag that flips exactly once, on first delivery of
// either.
func Install() *StopFlag {
	sf := &StopFlag{
		done:   make(chan struct{}),
		notify: make(chan os.Signal, 1),
	}
	signal.Notify(sf.notify, os.Interrupt, syscall.SIGTERM)
	go func() {
		for range sf.notify {
			sf.trip()
		}
	}()
	return sf
}

// Stop un-registers the underlying signal.Notify subscription. Call it
// once the process is shutting down normally.
func (s *StopFlag) Stop() {
	signal.Stop(s.notify)
}

func (s *StopFlag) trip() {
	s.tripped.Store(true)
	s.once.Do(func() { close(s.done) })
}

// Requested reports whether a stop signal has been observed. This is the
// "poll at every loop head" primitive.
func (s *StopFlag) Requested() bool {
	return s.tripped.Load()
}

// Done returns a channel that's closed exactly once, the moment the
// stop flag trips, so blocking waits elsewhere can select on it instead
// of spin-polling.
func (s *StopFlag) Done() <-chan struct{} {
	return s.done
}

// TripForTest trips the flag programmatically, for use by tests that
// need to simulate signal delivery without sending a real OS signal.
func (s *StopFlag) TripForTest() {
	s.trip()
}
