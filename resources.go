package ecslab

import "reflect"

// resourceSlot holds one stored resource. While a slot is free, next is the
// free list link to the next free slot (1-based; 0 means end of list) and
// value is nil -- the same free-list-threaded-through-the-slot discipline
// entityArena uses for entity slots, adapted here to a growable store of
// arbitrary typed values instead of fixed-layout entity metadata.
type resourceSlot struct {
	value any
	next  int
}

// Resources is a type-keyed singleton store for global data that doesn't
// belong to any one entity -- configuration, RNG state, frame clocks, and
// the like. It guarantees no two resources of the same type coexist.
// Storage is a denseArray, so ids handed out by Add stay valid addresses
// even as the store grows, and freed ids are recycled via freeHead exactly
// as entityArena recycles entity slots.
type Resources struct {
	items    denseArray[resourceSlot]
	types    map[reflect.Type]int
	freeHead int // 1-based index of the first free slot; 0 means none
}

// Add stores res and returns its id. Panics if res is nil or a resource of
// the same type is already present.
func (r *Resources) Add(res any) int {
	assertf(res != nil, "cannot add nil resource")
	t := reflect.TypeOf(res)
	if r.types == nil {
		r.types = make(map[reflect.Type]int)
	}
	_, exists := r.types[t]
	assertf(!exists, "resource of type %s already exists", t)

	var id int
	if r.freeHead != 0 {
		id = r.freeHead - 1
		slot := r.items.at(id)
		r.freeHead = slot.next
		slot.value = res
	} else {
		id = r.items.emplaceBack(resourceSlot{value: res})
	}
	r.types[t] = id
	return id
}

// Has reports whether a resource with the given id is present.
func (r *Resources) Has(id int) bool {
	return id >= 0 && id < r.items.len() && r.items.at(id).value != nil
}

// Get returns the resource stored at id, or nil if absent.
func (r *Resources) Get(id int) any {
	if !r.Has(id) {
		return nil
	}
	return r.items.at(id).value
}

// Remove deletes the resource at id, if present, freeing id for reuse.
func (r *Resources) Remove(id int) {
	if !r.Has(id) {
		return
	}
	slot := r.items.at(id)
	delete(r.types, reflect.TypeOf(slot.value))
	slot.value = nil
	slot.next = r.freeHead
	r.freeHead = id + 1
}

// Clear removes every resource.
func (r *Resources) Clear() {
	r.items = denseArray[resourceSlot]{}
	clear(r.types)
	r.freeHead = 0
}

// HasResource reports whether a resource of type T exists, returning its id.
func HasResource[T any](r *Resources) (bool, int) {
	t := reflect.TypeOf((*T)(nil))
	if id, ok := r.types[t]; ok {
		return true, id
	}
	return false, -1
}

// GetResource returns the resource of type T, if present, and its id.
func GetResource[T any](r *Resources) (*T, int) {
	t := reflect.TypeOf((*T)(nil))
	if id, ok := r.types[t]; ok {
		res := r.items.at(id).value.(*T)
		return res, id
	}
	return nil, -1
}
