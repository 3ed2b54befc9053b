package ecslab

// Snapshot is a deep, independent copy of a World's entity population: its
// arena, every component pool, and its entity-id counter. It never carries
// proxy back-references -- restoring from a Snapshot always leaves every
// proxy issued before the restore observing a dead entity.
type Snapshot struct {
	arena        *entityArena
	pools        []pool
	nextEntityID uint64
}

// Snapshot deep-copies the world's current state.
func (w *World) Snapshot() *Snapshot {
	pools := make([]pool, len(w.pools))
	for i, p := range w.pools {
		if p != nil {
			pools[i] = p.clone()
		}
	}
	return &Snapshot{
		arena:        w.arena.clone(),
		pools:        pools,
		nextEntityID: w.nextEntityID,
	}
}

// Restore replaces the world's arena, pools, and entity-id counter with a
// deep copy of snap, leaving snap itself untouched so it can be restored
// from again later. Every proxy issued by this world before the call --
// regardless of whether its owning slot is still reachable from the new
// arena -- observes its entity as dead afterward, since the arena it was
// watching has been entirely replaced.
func (w *World) Restore(snap *Snapshot) {
	for _, wp := range w.issuedProxies {
		if p := wp.Value(); p != nil {
			p.world = nil
			for i := range p.state {
				p.state[i] = proxyMissing
				p.cache[i] = nil
			}
		}
	}
	w.issuedProxies = w.issuedProxies[:0]

	w.arena = snap.arena.clone()
	pools := make([]pool, len(snap.pools))
	for i, p := range snap.pools {
		if p != nil {
			pools[i] = p.clone()
		}
	}
	w.pools = pools
	w.nextEntityID = snap.nextEntityID
}
