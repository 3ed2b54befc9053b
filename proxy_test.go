package ecslab_test

import (
	"testing"

	"github.com/edwinsyarief/ecslab"
)

func TestGetProxyReusesSameInstance(t *testing.T) {
	ecslab.ResetComponentRegistry()
	w := ecslab.NewWorld(8)
	e := w.Create()

	p1 := ecslab.GetProxy(w, e)
	p2 := ecslab.GetProxy(w, e)
	if p1 != p2 {
		t.Fatal("expected GetProxy to reuse the same proxy while it's still reachable")
	}
}

func TestGetProxyOnInvalidHandleIsNil(t *testing.T) {
	ecslab.ResetComponentRegistry()
	w := ecslab.NewWorld(8)
	e := w.Create()
	w.Destroy(e)

	if ecslab.GetProxy(w, e) != nil {
		t.Fatal("expected GetProxy on a destroyed handle to return nil")
	}
}

func TestProxyTryGetCachesAndMisses(t *testing.T) {
	ecslab.ResetComponentRegistry()
	w := ecslab.NewWorld(8)
	e := w.Create()
	ecslab.Add(w, e, cPos{X: 1, Y: 2})

	p := ecslab.GetProxy(w, e)
	if !ecslab.ProxyHas[cPos](p) {
		t.Fatal("expected proxy to resolve present cPos")
	}
	if ecslab.ProxyHas[cVel](p) {
		t.Fatal("expected proxy to resolve absent cVel as missing")
	}
}

// S5 from the design notes: a proxy created for one entity keeps returning
// a valid, current pointer to its component even after a swap-erase moves
// the record it's backed by.
func TestProxySurvivesSwapEraseMove(t *testing.T) {
	ecslab.ResetComponentRegistry()
	w := ecslab.NewWorld(8)
	a := w.Create()
	b := w.Create()
	ecslab.Add(w, a, cHealth{Current: 10})
	ecslab.Add(w, b, cHealth{Current: 20})

	p := ecslab.GetProxy(w, b)
	before, ok := ecslab.ProxyTryGet[cHealth](p)
	if !ok {
		t.Fatal("expected proxy to resolve cHealth before the move")
	}
	if before.Current != 20 {
		t.Fatalf("before move: Current = %d, want 20", before.Current)
	}

	ecslab.Remove[cHealth](w, a) // swap-erase moves b's record into a's old slot

	after, ok := ecslab.ProxyTryGet[cHealth](p)
	if !ok {
		t.Fatal("expected proxy to resolve cHealth after the move")
	}
	if after.Current != 20 {
		t.Fatalf("after move: Current = %d, want 20", after.Current)
	}
}

func TestProxyIsDeadAfterDestroy(t *testing.T) {
	ecslab.ResetComponentRegistry()
	w := ecslab.NewWorld(8)
	e := w.Create()
	ecslab.Add(w, e, cPos{X: 1})
	p := ecslab.GetProxy(w, e)

	w.Destroy(e)

	if ecslab.ProxyIsAlive(p) {
		t.Fatal("expected proxy to observe dead after Destroy")
	}
	if _, ok := ecslab.ProxyTryGet[cPos](p); ok {
		t.Fatal("expected proxy to stop serving components after Destroy")
	}
}
