package ipc

import (
	"sync/atomic"
	"unsafe"
)

const (
	// Capacity is the number of candidate slots in the ring.
	Capacity = 10
	// MaxEdges is the fixed capacity of a single candidate slot. A
	// candidate published by a writer may contain at most MaxEdges-1
	// edges; the slot always carries a trailing sentinel.
	MaxEdges = 10
	// sentinelVertex is the vertex id used by both halves of the
	// sentinel pair.
	sentinelVertex = -1
)

// Edge is an ordered pair of vertex identifiers, bit-for-bit as laid out
// in shared memory: two signed 64-bit integers.
type Edge struct {
	U int64
	V int64
}

// SentinelEdge marks "no further edges in this slot".
var SentinelEdge = Edge{U: sentinelVertex, V: sentinelVertex}

// IsSentinel reports whether e is the sentinel pair (-1, -1).
func (e Edge) IsSentinel() bool {
	return e.U == sentinelVertex && e.V == sentinelVertex
}

// candidateSlot is one fixed-capacity ordered sequence of edges, exactly
// as laid out in shared memory.
type candidateSlot struct {
	Edges [MaxEdges]Edge
}

// sharedLayout is the bit-exact shared-memory layout, in declaration
// order: result_sets, read_pos, write_pos, stop_generators. Every
// attached process reads identical byte offsets, which is why this
// struct must never gain, lose, or reorder fields without changing the
// wire contract for every binary built against it.
type sharedLayout struct {
	Slots    [Capacity]candidateSlot
	ReadPos  int32
	WritePos int32
	Stop     int32
}

// layoutSize is the byte size of sharedLayout, used to size and truncate
// the backing shared-memory segment.
const layoutSize = int(unsafe.Sizeof(sharedLayout{}))

// Candidate is the logical (unpadded) form of a slot's contents: the
// sequence of edges a generator proposes for deletion. An empty Candidate
// is the proof that a coloring made no edge monochromatic.
type Candidate struct {
	Edges []Edge
}

// Len returns the number of edges, equivalent to counting a slot's
// edges up to the first sentinel.
func (c Candidate) Len() int {
	return len(c.Edges)
}

// Region is a mapped view of the Shared Region, held by exactly one
// process at a time (supervisor or a single generator), backed by a
// named shared-memory segment.
type Region struct {
	mem    []byte
	layout *sharedLayout
}

func newRegion(mem []byte) *Region {
	return &Region{
		mem:    mem,
		layout: (*sharedLayout)(unsafe.Pointer(&mem[0])),
	}
}

// initZero resets cursors, the stop flag, and every slot to the sentinel
// pair. Only the creating supervisor calls this, immediately after
// mapping a freshly created segment.
func (r *Region) initZero() {
	atomic.StoreInt32(&r.layout.ReadPos, 0)
	atomic.StoreInt32(&r.layout.WritePos, 0)
	atomic.StoreInt32(&r.layout.Stop, 0)
	for i := range r.layout.Slots {
		for j := range r.layout.Slots[i].Edges {
			r.layout.Slots[i].Edges[j] = SentinelEdge
		}
	}
}

// ReadPos atomically loads the reader cursor.
func (r *Region) ReadPos() int32 { return atomic.LoadInt32(&r.layout.ReadPos) }

// AdvanceReadPos advances the reader cursor by one slot, modulo Capacity.
// Only the supervisor calls this.
func (r *Region) AdvanceReadPos() {
	next := (r.ReadPos() + 1) % Capacity
	atomic.StoreInt32(&r.layout.ReadPos, next)
}

// WritePos atomically loads the writer cursor.
func (r *Region) WritePos() int32 { return atomic.LoadInt32(&r.layout.WritePos) }

// advanceWritePos advances the writer cursor by one slot, modulo
// Capacity. Only called while write_mutex is held.
func (r *Region) advanceWritePos() {
	next := (r.WritePos() + 1) % Capacity
	atomic.StoreInt32(&r.layout.WritePos, next)
}

// StopRequested reports whether the supervisor has set stop_generators.
func (r *Region) StopRequested() bool {
	return atomic.LoadInt32(&r.layout.Stop) != 0
}

// RequestStop sets stop_generators true. It is idempotent: the 0->1
// transition happens at most once, and calling it again is a harmless
// no-op.
func (r *Region) RequestStop() {
	atomic.StoreInt32(&r.layout.Stop, 1)
}

// ReadSlot copies the slot at pos out of shared memory as a Candidate.
// Only the supervisor calls this, and only between its own wait on
// used_slots and the matching post of free_slots.
func (r *Region) ReadSlot(pos int32) Candidate {
	raw := &r.layout.Slots[pos]
	edges := make([]Edge, 0, MaxEdges)
	for _, e := range raw.Edges {
		if e.IsSentinel() {
			break
		}
		edges = append(edges, e)
	}
	return Candidate{Edges: edges}
}

// WriteSlot writes a candidate into the slot at pos, padding the
// remainder with sentinel pairs so the reader's count-until-sentinel
// logic terminates. Only a writer holding write_mutex calls this, and
// only at pos == WritePos().
//
// cand must have fewer than MaxEdges edges; callers are responsible for
// discarding oversized candidates before reaching this point.
func (r *Region) WriteSlot(pos int32, cand Candidate) {
	raw := &r.layout.Slots[pos]
	i := 0
	for ; i < len(cand.Edges) && i < MaxEdges; i++ {
		raw.Edges[i] = cand.Edges[i]
	}
	for ; i < MaxEdges; i++ {
		raw.Edges[i] = SentinelEdge
	}
}

// Publish writes cand at the current write position, advances the writer
// cursor, and returns the slot index that was published. Caller must
// hold write_mutex and have already reserved a slot via free_slots.
func (r *Region) Publish(cand Candidate) int32 {
	pos := r.WritePos()
	r.WriteSlot(pos, cand)
	r.advanceWritePos()
	return pos
}

// Take reads the slot at the current read position and advances the
// reader cursor. Caller must have already waited on used_slots and must
// post free_slots afterwards.
func (r *Region) Take() Candidate {
	pos := r.ReadPos()
	cand := r.ReadSlot(pos)
	r.AdvanceReadPos()
	return cand
}
