// Package ecslab provides a small, single-threaded entity-component store.
//
// Entities are composed of strongly-typed components at runtime. Lookups,
// adds and removes run in O(popcount) time against a per-entity signature
// bitset, backed by dense, swap-erase component pools so that iterating all
// instances of one component type never touches dead space. Handles remain
// safe to hold across slot reuse via a generation counter.
package ecslab

import "fmt"

// MaxComponents is the upper bound on distinct component types a process may
// register. It sizes every Signature and every EntityProxy's cache array.
// Changing it is a rebuild, not a runtime option.
const MaxComponents = 128

// ArenaBlockSize is the number of entity slots allocated per growth block in
// the entity arena. Existing blocks never move, so addresses into the arena
// stay stable across further allocations.
const ArenaBlockSize = 4096

// PoolBlockSize is the number of records allocated per growth block in a
// component pool's backing dense array.
const PoolBlockSize = 4096

const (
	genAliveBit uint32 = 0x8000_0000
	genMask     uint32 = 0x7FFF_FFFF
)

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("ecslab: "+format, args...))
	}
}
