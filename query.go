package ecslab

// Each visits every live entity carrying a T component, in the pool's dense
// iteration order. Structurally mutating T's pool (add/remove of T records)
// during iteration is undefined; mutating other component types is fine.
func Each[T any](w *World, fn func(Entity, *T)) {
	p := getPoolIfExists[T](w)
	if p == nil {
		return
	}
	n := p.Len()
	for i := 0; i < n; i++ {
		rec := p.Record(DenseIndex(i))
		meta := w.arena.at(rec.ownerSlot)
		if !meta.alive() || meta.generation != rec.ownerGen {
			continue
		}
		e := Entity{ID: meta.entityID, Slot: rec.ownerSlot, Generation: rec.ownerGen}
		fn(e, &rec.Data)
	}
}

// Query2 drives iteration over pool<T0>: for each live record it checks
// that the owner's signature also carries T1, then fetches T1 by its own
// rank lookup before invoking fn. If either pool doesn't exist yet, it
// returns immediately with no calls.
func Query2[T0, T1 any](w *World, fn func(Entity, *T0, *T1)) {
	p0 := getPoolIfExists[T0](w)
	p1 := getPoolIfExists[T1](w)
	if p0 == nil || p1 == nil {
		return
	}
	c1 := ComponentIDOf[T1]()
	var required signature
	required.set(c1)

	n := p0.Len()
	for i := 0; i < n; i++ {
		rec := p0.Record(DenseIndex(i))
		meta := w.arena.at(rec.ownerSlot)
		if !meta.alive() || meta.generation != rec.ownerGen {
			continue
		}
		if !meta.sig.containsAll(required) {
			continue
		}
		d1 := p1.Record(meta.idx[meta.sig.rank(c1)])
		e := Entity{ID: meta.entityID, Slot: rec.ownerSlot, Generation: rec.ownerGen}
		fn(e, &rec.Data, &d1.Data)
	}
}

// Query3 drives iteration over pool<T0>, requiring T1 and T2 also be
// present, exactly as Query2 generalizes to three component types.
func Query3[T0, T1, T2 any](w *World, fn func(Entity, *T0, *T1, *T2)) {
	p0 := getPoolIfExists[T0](w)
	p1 := getPoolIfExists[T1](w)
	p2 := getPoolIfExists[T2](w)
	if p0 == nil || p1 == nil || p2 == nil {
		return
	}
	c1, c2 := ComponentIDOf[T1](), ComponentIDOf[T2]()
	var required signature
	required.set(c1)
	required.set(c2)

	n := p0.Len()
	for i := 0; i < n; i++ {
		rec := p0.Record(DenseIndex(i))
		meta := w.arena.at(rec.ownerSlot)
		if !meta.alive() || meta.generation != rec.ownerGen {
			continue
		}
		if !meta.sig.containsAll(required) {
			continue
		}
		d1 := p1.Record(meta.idx[meta.sig.rank(c1)])
		d2 := p2.Record(meta.idx[meta.sig.rank(c2)])
		e := Entity{ID: meta.entityID, Slot: rec.ownerSlot, Generation: rec.ownerGen}
		fn(e, &rec.Data, &d1.Data, &d2.Data)
	}
}

// Query4 drives iteration over pool<T0>, requiring T1, T2, and T3 also be
// present.
func Query4[T0, T1, T2, T3 any](w *World, fn func(Entity, *T0, *T1, *T2, *T3)) {
	p0 := getPoolIfExists[T0](w)
	p1 := getPoolIfExists[T1](w)
	p2 := getPoolIfExists[T2](w)
	p3 := getPoolIfExists[T3](w)
	if p0 == nil || p1 == nil || p2 == nil || p3 == nil {
		return
	}
	c1, c2, c3 := ComponentIDOf[T1](), ComponentIDOf[T2](), ComponentIDOf[T3]()
	var required signature
	required.set(c1)
	required.set(c2)
	required.set(c3)

	n := p0.Len()
	for i := 0; i < n; i++ {
		rec := p0.Record(DenseIndex(i))
		meta := w.arena.at(rec.ownerSlot)
		if !meta.alive() || meta.generation != rec.ownerGen {
			continue
		}
		if !meta.sig.containsAll(required) {
			continue
		}
		d1 := p1.Record(meta.idx[meta.sig.rank(c1)])
		d2 := p2.Record(meta.idx[meta.sig.rank(c2)])
		d3 := p3.Record(meta.idx[meta.sig.rank(c3)])
		e := Entity{ID: meta.entityID, Slot: rec.ownerSlot, Generation: rec.ownerGen}
		fn(e, &rec.Data, &d1.Data, &d2.Data, &d3.Data)
	}
}
