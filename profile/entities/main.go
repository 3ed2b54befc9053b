// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/ecslab"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := ecslab.NewWorld(numEntities)

		for range iters {
			batch := make([]ecslab.Entity, 0, numEntities)
			for range numEntities {
				e := w.Create()
				ecslab.Add(w, e, comp1{})
				ecslab.Add(w, e, comp2{})
				batch = append(batch, e)
			}

			ecslab.Query2(w, func(_ ecslab.Entity, c1 *comp1, c2 *comp2) {
				c1.V += c2.V
				c1.W += c2.W
			})

			for _, e := range batch {
				w.Destroy(e)
			}
		}
	}
}
