package ecslab

import "unsafe"

// DenseIndex is the position of a component record inside its pool.
type DenseIndex = uint32

// poolRecord pairs a component value with the slot/generation of the entity
// that owns it, so a pool can identify which entity a moved-during-swap-
// erase record now belongs to without consulting the arena first.
type poolRecord[T any] struct {
	ownerSlot uint32
	ownerGen  uint32
	Data      T
}

// pool is the type-erased capability set World needs from a component pool:
// swap-erase, clone-one-record (for AddMissingComponents),
// borrow a stable pointer to a record (for proxy caching), and deep clone
// the whole pool (for snapshot/restore). Implementers may choose any dynamic
// dispatch idiom; this package uses an interface satisfied by a generic
// Pool[T], the idiomatic Go equivalent of a closed virtual-dispatch set.
type pool interface {
	eraseDense(di DenseIndex, w *World, cid ComponentID)
	cloneRecord(dstSlot, dstGen uint32, srcDi DenseIndex) DenseIndex
	recordPtr(di DenseIndex) unsafe.Pointer
	clone() pool
	length() int
}

// Pool owns every live instance of component type T, densely packed with
// swap-erase deletion.
type Pool[T any] struct {
	items denseArray[poolRecord[T]]
}

// Emplace appends a new record and returns its dense index.
func (p *Pool[T]) Emplace(ownerSlot, ownerGen uint32, value T) DenseIndex {
	return DenseIndex(p.items.emplaceBack(poolRecord[T]{ownerSlot: ownerSlot, ownerGen: ownerGen, Data: value}))
}

// Len returns the number of live records.
func (p *Pool[T]) Len() int {
	return p.items.len()
}

// Record returns a stable pointer to the record at di.
func (p *Pool[T]) Record(di DenseIndex) *poolRecord[T] {
	return p.items.at(int(di))
}

// eraseDense removes the record at di in O(1) by moving the last record
// into its place, then popping the last slot. If a record moved, the
// world is notified so it can rewrite the moved entity's idx[] entry and
// proxy cache; this happens after the move, so the new record is already
// visible at pool[di] when the callback runs.
func (p *Pool[T]) eraseDense(di DenseIndex, w *World, cid ComponentID) {
	last := uint32(p.items.len() - 1)
	if di != last {
		*p.items.at(int(di)) = *p.items.at(int(last))
		moved := p.items.at(int(di))
		w.notifyMoved(cid, di, moved.ownerSlot, moved.ownerGen)
	}
	p.items.popBack()
}

// cloneRecord copies the data of srcDi under a new owner, appending a new
// record and returning its dense index.
func (p *Pool[T]) cloneRecord(dstSlot, dstGen uint32, srcDi DenseIndex) DenseIndex {
	src := p.items.at(int(srcDi))
	return p.Emplace(dstSlot, dstGen, src.Data)
}

func (p *Pool[T]) recordPtr(di DenseIndex) unsafe.Pointer {
	return unsafe.Pointer(&p.items.at(int(di)).Data)
}

// clone deep-copies every live record into a fresh pool of the same type.
func (p *Pool[T]) clone() pool {
	out := &Pool[T]{items: p.items.clone()}
	return out
}

func (p *Pool[T]) length() int {
	return p.items.len()
}

func getPool[T any](w *World) *Pool[T] {
	cid := ComponentIDOf[T]()
	if w.pools[cid] == nil {
		w.pools[cid] = &Pool[T]{}
	}
	return w.pools[cid].(*Pool[T])
}

// getPoolIfExists returns T's pool without creating one, or nil if T has
// never been added to any entity in this world.
func getPoolIfExists[T any](w *World) *Pool[T] {
	cid := ComponentIDOf[T]()
	if int(cid) >= len(w.pools) || w.pools[cid] == nil {
		return nil
	}
	return w.pools[cid].(*Pool[T])
}
