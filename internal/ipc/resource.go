package ipc

// Named resource suffixes: the Shared Region's name ends "SHM"; the
// three semaphores end "R_SEM" (used_slots), "W_SEM" (free_slots),
// "W_SEM_SYNC" (write_mutex).
const (
	shmSuffix        = "SHM"
	usedSlotsSuffix  = "R_SEM"
	freeSlotsSuffix  = "W_SEM"
	writeMutexSuffix = "W_SEM_SYNC"
)

// Names derives the four named-resource identifiers from a single
// deployment-specific prefix, recommended to be a token unique per
// deployment (e.g. a user id), so independent sessions don't collide.
type Names struct {
	Prefix string
}

// SHM is the Shared Region's name.
func (n Names) SHM() string { return n.Prefix + shmSuffix }

// UsedSlots is the used_slots semaphore's name.
func (n Names) UsedSlots() string { return n.Prefix + usedSlotsSuffix }

// FreeSlots is the free_slots semaphore's name.
func (n Names) FreeSlots() string { return n.Prefix + freeSlotsSuffix }

// WriteMutex is the write_mutex semaphore's name.
func (n Names) WriteMutex() string { return n.Prefix + writeMutexSuffix }

// Resources bundles a mapped Shared Region with its three named
// semaphores: the full set of shared substrate one process attaches to
// or creates.
type Resources struct {
	Names      Names
	Region     *Region
	UsedSlots  *Semaphore // used_slots: posted by writers, waited by the reader
	FreeSlots  *Semaphore // free_slots: waited by writers, posted by the reader
	WriteMutex *Semaphore // write_mutex: writer critical-section mutex
}

// cleanupStack records teardown actions in acquisition order and unwinds
// them in reverse, so a failure partway through initialization tears
// down only what was actually acquired, in the opposite order it was
// acquired.
type cleanupStack struct {
	actions []func() error
}

func (c *cleanupStack) push(action func() error) {
	c.actions = append(c.actions, action)
}

// unwind runs every pushed action in reverse order, continuing past
// individual failures, and returns the first error encountered (if any)
// purely for logging; it never stops early.
func (c *cleanupStack) unwind() error {
	var first error
	for i := len(c.actions) - 1; i >= 0; i-- {
		if err := c.actions[i](); err != nil && first == nil {
			first = err
		}
	}
	c.actions = nil
	return first
}

// CreateResources creates the Shared Region and all three semaphores
// with exclusive intent. If any step fails, every resource created so
// far in this call is torn down (both unmapped and unlinked, since
// creation implies ownership) before the error is returned.
func CreateResources(names Names) (*Resources, error) {
	var stack cleanupStack
	r := &Resources{Names: names}

	region, err := createSHM(names.SHM(), layoutSize)
	if err != nil {
		_ = stack.unwind()
		return nil, err
	}
	r.Region = region
	stack.push(func() error { return closeRegion(region) })
	stack.push(func() error { return unlinkSHM(names.SHM()) })

	region.initZero()

	used, err := CreateSemaphore(names.UsedSlots(), 0)
	if err != nil {
		_ = stack.unwind()
		return nil, err
	}
	r.UsedSlots = used
	stack.push(func() error { return used.Close() })
	stack.push(func() error { return used.Unlink() })

	free, err := CreateSemaphore(names.FreeSlots(), Capacity)
	if err != nil {
		_ = stack.unwind()
		return nil, err
	}
	r.FreeSlots = free
	stack.push(func() error { return free.Close() })
	stack.push(func() error { return free.Unlink() })

	mutex, err := CreateSemaphore(names.WriteMutex(), 1)
	if err != nil {
		_ = stack.unwind()
		return nil, err
	}
	r.WriteMutex = mutex
	stack.push(func() error { return mutex.Close() })
	stack.push(func() error { return mutex.Unlink() })

	return r, nil
}

// AttachResources attaches to an already-created Shared Region and all
// three semaphores. No resource is created, so on failure there is
// nothing to unlink; whatever was successfully attached during this
// call is merely closed.
func AttachResources(names Names) (*Resources, error) {
	var stack cleanupStack
	r := &Resources{Names: names}

	region, err := attachSHM(names.SHM(), layoutSize)
	if err != nil {
		_ = stack.unwind()
		return nil, err
	}
	r.Region = region
	stack.push(func() error { return closeRegion(region) })

	used, err := AttachSemaphore(names.UsedSlots())
	if err != nil {
		_ = stack.unwind()
		return nil, err
	}
	r.UsedSlots = used
	stack.push(func() error { return used.Close() })

	free, err := AttachSemaphore(names.FreeSlots())
	if err != nil {
		_ = stack.unwind()
		return nil, err
	}
	r.FreeSlots = free
	stack.push(func() error { return free.Close() })

	mutex, err := AttachSemaphore(names.WriteMutex())
	if err != nil {
		_ = stack.unwind()
		return nil, err
	}
	r.WriteMutex = mutex
	stack.push(func() error { return mutex.Close() })

	return r, nil
}

// Close unmaps the region and closes (but does not unlink) every
// semaphore. Generators call this on exit.
func (r *Resources) Close() error {
	var stack cleanupStack
	if r.WriteMutex != nil {
		stack.push(r.WriteMutex.Close)
	}
	if r.FreeSlots != nil {
		stack.push(r.FreeSlots.Close)
	}
	if r.UsedSlots != nil {
		stack.push(r.UsedSlots.Close)
	}
	if r.Region != nil {
		stack.push(func() error { return closeRegion(r.Region) })
	}
	return stack.unwind()
}

// Shutdown performs the supervisor-exclusive teardown: unmap the region
// and unlink its name; close and unlink each semaphore. It is safe to
// call more than once (idempotent): a second call simply finds nothing
// left and treats the resulting "not found" errors as benign, since
// unlinkSHM already does so.
func (r *Resources) Shutdown() error {
	var stack cleanupStack
	if r.WriteMutex != nil {
		stack.push(r.WriteMutex.Close)
		stack.push(r.WriteMutex.Unlink)
	}
	if r.FreeSlots != nil {
		stack.push(r.FreeSlots.Close)
		stack.push(r.FreeSlots.Unlink)
	}
	if r.UsedSlots != nil {
		stack.push(r.UsedSlots.Close)
		stack.push(r.UsedSlots.Unlink)
	}
	if r.Region != nil {
		region := r.Region
		stack.push(func() error { return closeRegion(region) })
		stack.push(func() error { return unlinkSHM(r.Names.SHM()) })
	}
	return stack.unwind()
}

// DrainWriters wakes any writer blocked waiting for a free slot: it sets
// stop_generators, then reposts free_slots until its observed value
// reaches Capacity, exploiting the invariant that at most Capacity
// writers can be simultaneously blocked on free_slots. It is idempotent:
// calling it again when Stop is already true and free_slots is already
// saturated is a no-op loop that exits immediately.
func (r *Resources) DrainWriters() {
	r.Region.RequestStop()
	for r.FreeSlots.Value() < Capacity {
		r.FreeSlots.Post()
	}
}
