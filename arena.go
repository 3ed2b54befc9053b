package ecslab

// invalidSlot marks the end of the arena free list.
const invalidSlot uint32 = 0xFFFFFFFF

// entityArena is a block-allocated slot allocator for entityMeta. Addresses
// handed out by at() are stable across further alloc calls: growth appends
// fixed-size blocks, and existing blocks never move. Freed slots are pushed
// onto a free list threaded through entityMeta.entityID.
type entityArena struct {
	blocks   [][]entityMeta
	bump     uint32
	freeHead uint32
}

func newEntityArena() *entityArena {
	return &entityArena{freeHead: invalidSlot}
}

func (a *entityArena) ensureBlock(idx uint32) {
	block := idx / ArenaBlockSize
	for uint32(len(a.blocks)) <= block {
		a.blocks = append(a.blocks, make([]entityMeta, ArenaBlockSize))
	}
}

// reserve pre-allocates enough blocks to hold n slots without bumping the
// allocation frontier. It is a sizing hint only; it never changes observable
// behavior.
func (a *entityArena) reserve(n int) {
	if n <= 0 {
		return
	}
	a.ensureBlock(uint32(n - 1))
}

// alloc returns a fresh slot (bump pointer) or the head of the free list.
// In the reuse case the returned slot's generation is whatever it was left
// at by the previous occupant's destroy; the caller bumps it.
func (a *entityArena) alloc() uint32 {
	if a.freeHead != invalidSlot {
		idx := a.freeHead
		meta := a.at(idx)
		a.freeHead = uint32(meta.entityID)
		return idx
	}
	idx := a.bump
	a.ensureBlock(idx)
	a.bump++
	return idx
}

// free pushes idx onto the free list. It does not touch generation, sig, or
// idx -- callers are responsible for resetting those before reuse becomes
// externally visible.
func (a *entityArena) free(idx uint32) {
	meta := a.at(idx)
	meta.entityID = uint64(a.freeHead)
	a.freeHead = idx
}

// at returns an unchecked reference into the arena. Callers must have
// already validated the slot index.
func (a *entityArena) at(idx uint32) *entityMeta {
	block, offset := idx/ArenaBlockSize, idx%ArenaBlockSize
	return &a.blocks[block][offset]
}

// size is the bump frontier -- the max index ever allocated plus one -- not
// the count of live entities.
func (a *entityArena) size() int {
	return int(a.bump)
}

// clone deep-copies every allocated slot, including its idx list, into a
// fresh arena. The free list and bump frontier are preserved so reuse order
// after a restore matches the snapshot exactly.
func (a *entityArena) clone() *entityArena {
	out := newEntityArena()
	out.freeHead = a.freeHead
	out.bump = a.bump
	if a.bump > 0 {
		out.ensureBlock(a.bump - 1)
	}
	for i := uint32(0); i < a.bump; i++ {
		src := a.at(i)
		dst := out.at(i)
		dst.entityID = src.entityID
		dst.generation = src.generation
		dst.sig = src.sig
		if src.idx != nil {
			dst.idx = append([]uint32(nil), src.idx...)
		}
		// dst.proxy stays zero: proxies are never carried across a clone.
	}
	return out
}
