package ecslab_test

import (
	"testing"

	"github.com/edwinsyarief/ecslab"
)

// S6 from the design notes: query<Position, Health> visits only the
// entities carrying both, in pool<Position>'s iteration order.
func TestQuery2FiltersBySignature(t *testing.T) {
	ecslab.ResetComponentRegistry()
	w := ecslab.NewWorld(8)

	onlyP := w.Create()
	ecslab.Add(w, onlyP, cPos{X: 1})

	both := w.Create()
	ecslab.Add(w, both, cPos{X: 2})
	ecslab.Add(w, both, cHealth{Current: 9})

	onlyH := w.Create()
	ecslab.Add(w, onlyH, cHealth{Current: 5})

	bothAndMore := w.Create()
	ecslab.Add(w, bothAndMore, cPos{X: 3})
	ecslab.Add(w, bothAndMore, cHealth{Current: 1})
	ecslab.Add(w, bothAndMore, cVel{X: 1})

	var visited []ecslab.Entity
	ecslab.Query2(w, func(e ecslab.Entity, p *cPos, h *cHealth) {
		visited = append(visited, e)
	})

	if len(visited) != 2 {
		t.Fatalf("visited %d entities, want 2: %+v", len(visited), visited)
	}
	if visited[0] != both || visited[1] != bothAndMore {
		t.Fatalf("visit order = %+v, want [%+v %+v] (pool<Position> order)", visited, both, bothAndMore)
	}
}

func TestQuery2ReturnsImmediatelyIfPoolMissing(t *testing.T) {
	ecslab.ResetComponentRegistry()
	w := ecslab.NewWorld(8)
	e := w.Create()
	ecslab.Add(w, e, cPos{})

	calls := 0
	ecslab.Query2(w, func(ecslab.Entity, *cPos, *cHealth) { calls++ })
	if calls != 0 {
		t.Fatalf("expected 0 calls when cHealth pool doesn't exist, got %d", calls)
	}
}

func TestQuery3RequiresAllComponents(t *testing.T) {
	ecslab.ResetComponentRegistry()
	w := ecslab.NewWorld(8)

	full := w.Create()
	ecslab.Add(w, full, cPos{X: 1})
	ecslab.Add(w, full, cVel{X: 2})
	ecslab.Add(w, full, cHealth{Current: 3})

	partial := w.Create()
	ecslab.Add(w, partial, cPos{X: 9})
	ecslab.Add(w, partial, cVel{X: 9})

	count := 0
	ecslab.Query3(w, func(e ecslab.Entity, p *cPos, v *cVel, h *cHealth) {
		count++
		if e != full {
			t.Fatalf("Query3 visited %+v, want only %+v", e, full)
		}
	})
	if count != 1 {
		t.Fatalf("Query3 visited %d entities, want 1", count)
	}
}

func TestEachVisitsAllLiveOwners(t *testing.T) {
	ecslab.ResetComponentRegistry()
	w := ecslab.NewWorld(8)
	a := w.Create()
	b := w.Create()
	ecslab.Add(w, a, cPos{X: 1})
	ecslab.Add(w, b, cPos{X: 2})
	w.Destroy(a)

	var seen []ecslab.Entity
	ecslab.Each(w, func(e ecslab.Entity, p *cPos) { seen = append(seen, e) })

	if len(seen) != 1 || seen[0] != b {
		t.Fatalf("Each after destroy = %+v, want only %+v", seen, b)
	}
}
