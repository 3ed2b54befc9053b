package ecslab

import "unsafe"

// Has reports whether e currently carries a component of type T. A stale or
// invalid handle reports false.
func Has[T any](w *World, e Entity) bool {
	meta := w.validate(e)
	if meta == nil {
		return false
	}
	return meta.sig.test(ComponentIDOf[T]())
}

// tryGetRecord resolves the pool record backing e's T component, if any.
func tryGetRecord[T any](w *World, e Entity) (*poolRecord[T], bool) {
	meta := w.validate(e)
	if meta == nil {
		return nil, false
	}
	cid := ComponentIDOf[T]()
	if !meta.sig.test(cid) {
		return nil, false
	}
	pos := meta.sig.rank(cid)
	di := meta.idx[pos]
	return getPool[T](w).Record(di), true
}

// TryGet returns a pointer to e's T component, or (nil, false) if the
// handle is invalid or the component is absent.
func TryGet[T any](w *World, e Entity) (*T, bool) {
	rec, ok := tryGetRecord[T](w, e)
	if !ok {
		return nil, false
	}
	return &rec.Data, true
}

// Get returns a pointer to e's T component. It is a programmer error to call
// this when the component is absent; it panics rather than returning nil.
func Get[T any](w *World, e Entity) *T {
	ptr, ok := TryGet[T](w, e)
	assertf(ok, "Get[%T] called on entity without the component", *new(T))
	return ptr
}

// Add attaches a T component to e, initialized to value. If e already
// carries a T, Add leaves it unchanged and returns the existing component --
// it does not overwrite. The handle must be valid; Add panics otherwise,
// since unlike the read/remove paths there is no sensible zero-effort
// outcome for "add to an entity that doesn't exist".
func Add[T any](w *World, e Entity, value T) *T {
	meta := w.validate(e)
	assertf(meta != nil, "Add[%T] called on an invalid entity handle", value)

	cid := ComponentIDOf[T]()
	if meta.sig.test(cid) {
		return Get[T](w, e)
	}

	pos := meta.sig.rank(cid)
	meta.sig.set(cid)
	p := getPool[T](w)
	di := p.Emplace(e.Slot, e.Generation, value)
	meta.idx = insertIdxAt(meta.idx, pos, di)
	rec := p.Record(di)
	w.notifyProxyPresent(meta, cid, unsafe.Pointer(&rec.Data))
	if w.events != nil {
		Publish(w.events, ComponentAdded[T]{Entity: e})
	}
	return &rec.Data
}

// Remove detaches e's T component, if present. It is a no-op if the handle
// is invalid or the component is already absent.
func Remove[T any](w *World, e Entity) {
	meta := w.validate(e)
	if meta == nil {
		return
	}
	cid := ComponentIDOf[T]()
	if !meta.sig.test(cid) {
		return
	}

	pos := meta.sig.rank(cid)
	di := meta.idx[pos]
	if int(cid) < len(w.pools) && w.pools[cid] != nil {
		w.pools[cid].eraseDense(di, w, cid)
	}
	meta.idx = removeIdxAt(meta.idx, pos)
	meta.sig.reset(cid)
	w.notifyProxyMissing(meta, cid)
	if w.events != nil {
		Publish(w.events, ComponentRemoved[T]{Entity: e})
	}
}

// AddMissingComponents copies every component src has that dst lacks,
// cloning each record under dst's ownership. Components whose pool no
// longer exists (never added to any live entity) are skipped silently, as
// are components dst already has. Both handles must be valid or the call is
// a no-op.
func (w *World) AddMissingComponents(dst, src Entity) {
	dstMeta := w.validate(dst)
	srcMeta := w.validate(src)
	if dstMeta == nil || srcMeta == nil {
		return
	}

	i := 0
	srcMeta.sig.forEachSetBit(func(cid ComponentID) {
		srcDi := srcMeta.idx[i]
		i++
		if dstMeta.sig.test(cid) {
			return
		}
		if int(cid) >= len(w.pools) || w.pools[cid] == nil {
			return
		}
		pos := dstMeta.sig.rank(cid)
		dstMeta.sig.set(cid)
		di := w.pools[cid].cloneRecord(dst.Slot, dst.Generation, srcDi)
		dstMeta.idx = insertIdxAt(dstMeta.idx, pos, di)
		w.notifyProxyPresent(dstMeta, cid, w.pools[cid].recordPtr(di))
	})
}
