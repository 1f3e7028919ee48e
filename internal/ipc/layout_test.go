package ipc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdge_IsSentinel(t *testing.T) {
	assert.True(t, SentinelEdge.IsSentinel())
	assert.False(t, Edge{U: 1, V: 2}.IsSentinel())
	assert.False(t, Edge{U: -1, V: 2}.IsSentinel())
}

func newTestRegion(t *testing.T) *Region {
	t.Helper()
	mem := make([]byte, layoutSize)
	r := newRegion(mem)
	r.initZero()
	return r
}

func TestRegion_InitZero(t *testing.T) {
	r := newTestRegion(t)
	assert.Equal(t, int32(0), r.ReadPos())
	assert.Equal(t, int32(0), r.WritePos())
	assert.False(t, r.StopRequested())

	for pos := int32(0); pos < Capacity; pos++ {
		cand := r.ReadSlot(pos)
		assert.Empty(t, cand.Edges)
	}
}

func TestRegion_PublishTake_RoundTrip(t *testing.T) {
	r := newTestRegion(t)

	cand := Candidate{Edges: []Edge{{U: 1, V: 2}, {U: 3, V: 4}}}
	pos := r.Publish(cand)
	require.Equal(t, int32(0), pos)
	assert.Equal(t, int32(1), r.WritePos())

	got := r.Take()
	assert.Equal(t, cand.Edges, got.Edges)
	assert.Equal(t, int32(1), r.ReadPos())
}

func TestRegion_WriteSlot_PadsWithSentinel(t *testing.T) {
	r := newTestRegion(t)
	cand := Candidate{Edges: []Edge{{U: 5, V: 6}}}
	r.WriteSlot(0, cand)

	raw := &r.layout.Slots[0]
	assert.Equal(t, Edge{U: 5, V: 6}, raw.Edges[0])
	for i := 1; i < MaxEdges; i++ {
		assert.True(t, raw.Edges[i].IsSentinel(), "slot index %d", i)
	}
}

func TestRegion_ReadSlot_StopsAtSentinel(t *testing.T) {
	r := newTestRegion(t)
	r.WriteSlot(2, Candidate{Edges: []Edge{{U: 1, V: 2}, {U: 3, V: 4}, {U: 5, V: 6}}})

	cand := r.ReadSlot(2)
	require.Len(t, cand.Edges, 3)
	assert.Equal(t, Edge{U: 1, V: 2}, cand.Edges[0])
	assert.Equal(t, Edge{U: 5, V: 6}, cand.Edges[2])
}

func TestRegion_CursorsWrapModuloCapacity(t *testing.T) {
	r := newTestRegion(t)
	for i := 0; i < Capacity; i++ {
		r.Publish(Candidate{})
	}
	assert.Equal(t, int32(0), r.WritePos(), "write cursor must wrap back to 0")

	for i := 0; i < Capacity; i++ {
		r.Take()
	}
	assert.Equal(t, int32(0), r.ReadPos(), "read cursor must wrap back to 0")
}

func TestRegion_RequestStop_Idempotent(t *testing.T) {
	r := newTestRegion(t)
	require.False(t, r.StopRequested())
	r.RequestStop()
	assert.True(t, r.StopRequested())
	r.RequestStop()
	assert.True(t, r.StopRequested())
}

func TestCandidate_Len(t *testing.T) {
	assert.Equal(t, 0, Candidate{}.Len())
	assert.Equal(t, 2, Candidate{Edges: []Edge{{}, {}}}.Len())
}
