//go:build linux

package ipc

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

var resourceTestSeq int64

func testNames(t *testing.T) Names {
	t.Helper()
	n := Names{Prefix: fmt.Sprintf("ipc_test_%d_", atomic.AddInt64(&resourceTestSeq, 1))}
	t.Cleanup(func() {
		_ = unlinkSHM(n.SHM())
		_ = unlinkSHM(n.UsedSlots())
		_ = unlinkSHM(n.FreeSlots())
		_ = unlinkSHM(n.WriteMutex())
	})
	return n
}

func TestCreateResources_ThenAttach(t *testing.T) {
	names := testNames(t)

	created, err := CreateResources(names)
	require.NoError(t, err)
	require.NotNil(t, created.Region)
	require.Equal(t, int32(0), created.UsedSlots.Value())
	require.Equal(t, int32(Capacity), created.FreeSlots.Value())
	require.Equal(t, int32(1), created.WriteMutex.Value())

	attached, err := AttachResources(names)
	require.NoError(t, err)
	require.NoError(t, attached.Close())

	require.NoError(t, created.Shutdown())
}

func TestCreateResources_RejectsDuplicateName(t *testing.T) {
	names := testNames(t)

	first, err := CreateResources(names)
	require.NoError(t, err)
	defer func() { _ = first.Shutdown() }()

	_, err = CreateResources(names)
	require.Error(t, err)
}

func TestAttachResources_FailsWithoutCreate(t *testing.T) {
	names := testNames(t)
	_, err := AttachResources(names)
	require.Error(t, err)
}

func TestResources_Shutdown_Idempotent(t *testing.T) {
	names := testNames(t)
	r, err := CreateResources(names)
	require.NoError(t, err)

	require.NoError(t, r.Shutdown())
	require.NoError(t, r.Shutdown())
}

func TestResources_DrainWriters_SaturatesFreeSlots(t *testing.T) {
	names := testNames(t)
	r, err := CreateResources(names)
	require.NoError(t, err)
	defer func() { _ = r.Shutdown() }()

	// Simulate two writers each having reserved a slot (decrementing
	// free_slots below Capacity) before the stop was requested.
	require.NoError(t, r.FreeSlots.Wait(nil))
	require.NoError(t, r.FreeSlots.Wait(nil))
	require.Equal(t, int32(Capacity-2), r.FreeSlots.Value())

	r.DrainWriters()

	require.True(t, r.Region.StopRequested())
	require.Equal(t, int32(Capacity), r.FreeSlots.Value())
}

func TestSemaphore_PostWait_RoundTrip(t *testing.T) {
	names := testNames(t)
	sem, err := CreateSemaphore(names.SHM(), 0)
	require.NoError(t, err)
	defer func() {
		_ = sem.Close()
		_ = sem.Unlink()
	}()

	done := make(chan error, 1)
	go func() { done <- sem.Wait(nil) }()

	sem.Post()
	require.NoError(t, <-done)
	require.Equal(t, int32(0), sem.Value())
}

type fakeStop struct {
	requested bool
	done      chan struct{}
}

func (f *fakeStop) Requested() bool       { return f.requested }
func (f *fakeStop) Done() <-chan struct{} { return f.done }

func TestSemaphore_Wait_ReturnsOnStop(t *testing.T) {
	names := testNames(t)
	sem, err := CreateSemaphore(names.SHM(), 0)
	require.NoError(t, err)
	defer func() {
		_ = sem.Close()
		_ = sem.Unlink()
	}()

	stop := &fakeStop{requested: true, done: make(chan struct{})}
	err = sem.Wait(stop)
	require.ErrorIs(t, err, ErrStopRequested)
}
