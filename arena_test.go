package ecslab

import "testing"

func TestEntityArenaAllocBumps(t *testing.T) {
	a := newEntityArena()
	s0 := a.alloc()
	s1 := a.alloc()
	if s0 != 0 || s1 != 1 {
		t.Fatalf("alloc sequence = %d, %d, want 0, 1", s0, s1)
	}
	if a.size() != 2 {
		t.Fatalf("size = %d, want 2", a.size())
	}
}

func TestEntityArenaFreeListReuse(t *testing.T) {
	a := newEntityArena()
	s0 := a.alloc()
	a.alloc()
	a.free(s0)

	reused := a.alloc()
	if reused != s0 {
		t.Fatalf("expected free slot %d reused, got %d", s0, reused)
	}
	if a.size() != 2 {
		t.Fatalf("size after reuse = %d, want 2 (no new bump)", a.size())
	}
}

func TestEntityArenaFreeListOrderLIFO(t *testing.T) {
	a := newEntityArena()
	s0 := a.alloc()
	s1 := a.alloc()
	a.free(s0)
	a.free(s1)

	if got := a.alloc(); got != s1 {
		t.Fatalf("first reuse = %d, want %d (LIFO)", got, s1)
	}
	if got := a.alloc(); got != s0 {
		t.Fatalf("second reuse = %d, want %d (LIFO)", got, s0)
	}
}

func TestEntityArenaGrowsAcrossBlocks(t *testing.T) {
	a := newEntityArena()
	var last uint32
	for i := 0; i < ArenaBlockSize+5; i++ {
		last = a.alloc()
	}
	meta := a.at(last)
	meta.entityID = 123
	if a.at(last).entityID != 123 {
		t.Fatal("write across a block boundary did not persist")
	}
}

func TestEntityArenaClone(t *testing.T) {
	a := newEntityArena()
	s := a.alloc()
	meta := a.at(s)
	meta.entityID = 7
	meta.generation = genAliveBit
	meta.idx = []uint32{1, 2, 3}

	clone := a.clone()
	clone.at(s).idx[0] = 999

	if a.at(s).idx[0] != 1 {
		t.Fatalf("clone mutation leaked into source: got %d, want 1", a.at(s).idx[0])
	}
	if clone.at(s).entityID != 7 {
		t.Fatalf("clone entityID = %d, want 7", clone.at(s).entityID)
	}
	if clone.size() != a.size() || clone.freeHead != a.freeHead {
		t.Fatal("clone did not preserve bump frontier / free list")
	}
}
