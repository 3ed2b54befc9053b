package ecslab

// Entity is a safe, copyable reference to a position in a World. It combines
// a strictly monotonic ID (for ordering and debugging), a slot index into the
// entity arena (for O(1) lookup), and a generation (to detect stale handles
// across slot reuse). The generation's high bit doubles as the slot's alive
// flag.
type Entity struct {
	// ID is never reused for the lifetime of the World that issued it.
	ID uint64
	// Slot indexes the entity arena. It IS reused after destroy.
	Slot uint32
	// Generation increments on every destroy of this slot; its high bit is
	// set while the slot is alive.
	Generation uint32
}

// entityMeta is the arena-owned record for one entity slot. While the slot
// is on the arena's free list, entityID is reinterpreted as the index of the
// next free slot -- the same union discipline ecs_lab's C++ original uses,
// translated to a plain overloaded field since Go has no anonymous unions.
type entityMeta struct {
	entityID   uint64
	generation uint32
	sig        signature
	// idx holds one dense index per set bit of sig, ordered by ascending
	// ComponentID (i.e. idx[rank(c)] is the dense index for component c).
	idx   []uint32
	proxy weakProxy
}

func (m *entityMeta) alive() bool {
	return m.generation&genAliveBit != 0
}
