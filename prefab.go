package ecslab

import "sort"

// prefabEntry is one component slot awaiting emplacement into a freshly
// created entity: its ComponentID (for sort order) and a closure that
// performs the actual pool emplace and returns the dense index assigned.
type prefabEntry struct {
	cid     ComponentID
	emplace func(w *World, slot, gen uint32) DenseIndex
}

func componentEntry[T any](value T) prefabEntry {
	return prefabEntry{
		cid: ComponentIDOf[T](),
		emplace: func(w *World, slot, gen uint32) DenseIndex {
			return getPool[T](w).Emplace(slot, gen, value)
		},
	}
}

// Prefab1 is a static, heterogeneous template for entities carrying exactly
// one component type.
type Prefab1[T0 any] struct {
	c0 T0
}

// MakePrefab1 builds a Prefab1 from concrete component values.
func MakePrefab1[T0 any](c0 T0) Prefab1[T0] {
	return Prefab1[T0]{c0: c0}
}

// Instantiate1 creates a new entity and attaches every component named by p
// in one pass.
func Instantiate1[T0 any](w *World, p Prefab1[T0]) Entity {
	return instantiate(w, componentEntry(p.c0))
}

// Prefab2 is a static, heterogeneous template for entities carrying exactly
// two component types.
type Prefab2[T0, T1 any] struct {
	c0 T0
	c1 T1
}

// MakePrefab2 builds a Prefab2 from concrete component values.
func MakePrefab2[T0, T1 any](c0 T0, c1 T1) Prefab2[T0, T1] {
	return Prefab2[T0, T1]{c0: c0, c1: c1}
}

// Instantiate2 creates a new entity and attaches every component named by p
// in one pass.
func Instantiate2[T0, T1 any](w *World, p Prefab2[T0, T1]) Entity {
	return instantiate(w, componentEntry(p.c0), componentEntry(p.c1))
}

// Prefab3 is a static, heterogeneous template for entities carrying exactly
// three component types.
type Prefab3[T0, T1, T2 any] struct {
	c0 T0
	c1 T1
	c2 T2
}

// MakePrefab3 builds a Prefab3 from concrete component values.
func MakePrefab3[T0, T1, T2 any](c0 T0, c1 T1, c2 T2) Prefab3[T0, T1, T2] {
	return Prefab3[T0, T1, T2]{c0: c0, c1: c1, c2: c2}
}

// Instantiate3 creates a new entity and attaches every component named by p
// in one pass.
func Instantiate3[T0, T1, T2 any](w *World, p Prefab3[T0, T1, T2]) Entity {
	return instantiate(w, componentEntry(p.c0), componentEntry(p.c1), componentEntry(p.c2))
}

// Prefab4 is a static, heterogeneous template for entities carrying exactly
// four component types.
type Prefab4[T0, T1, T2, T3 any] struct {
	c0 T0
	c1 T1
	c2 T2
	c3 T3
}

// MakePrefab4 builds a Prefab4 from concrete component values.
func MakePrefab4[T0, T1, T2, T3 any](c0 T0, c1 T1, c2 T2, c3 T3) Prefab4[T0, T1, T2, T3] {
	return Prefab4[T0, T1, T2, T3]{c0: c0, c1: c1, c2: c2, c3: c3}
}

// Instantiate4 creates a new entity and attaches every component named by p
// in one pass.
func Instantiate4[T0, T1, T2, T3 any](w *World, p Prefab4[T0, T1, T2, T3]) Entity {
	return instantiate(w, componentEntry(p.c0), componentEntry(p.c1), componentEntry(p.c2), componentEntry(p.c3))
}

// instantiate creates an entity and emplaces every entry into its owner's
// pools in one pass: it sorts by ComponentID, sets every signature bit
// together, resizes idx[] once to its final length, then emplaces in
// ascending cid order so idx[] lands already in rank order. This avoids the
// O(k^2) cost of k separate Add calls, each of which would otherwise shift
// idx[] on every insert. A duplicate component type across entries is a
// programmer error.
func instantiate(w *World, entries ...prefabEntry) Entity {
	sort.Slice(entries, func(i, j int) bool { return entries[i].cid < entries[j].cid })
	for i := 1; i < len(entries); i++ {
		assertf(entries[i].cid != entries[i-1].cid, "duplicate component type %d in prefab", entries[i].cid)
	}

	e := w.Create()
	meta := w.arena.at(e.Slot)
	meta.idx = make([]uint32, len(entries))
	for _, entry := range entries {
		meta.sig.set(entry.cid)
	}
	for i, entry := range entries {
		meta.idx[i] = uint32(entry.emplace(w, e.Slot, e.Generation))
	}
	return e
}
