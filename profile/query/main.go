// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query mem.prof

package main

import (
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/edwinsyarief/ecslab"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

type comp5 struct {
	V int64
	W int64
}

type comp6 struct {
	V int64
	W int64
}

func main() {
	// CPU Profiling
	f, err := os.Create("cpu.prof")
	if err != nil {
		log.Fatal(err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		log.Fatal(err)
	}
	defer pprof.StopCPUProfile()

	count := 50
	iters := 10000
	entities := 100000
	run(count, iters, entities)

	// Memory Profiling
	memFile, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer memFile.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(memFile); err != nil {
		log.Fatal(err)
	}
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := ecslab.NewWorld(numEntities)
		for range numEntities {
			e := ecslab.Instantiate4(w, ecslab.MakePrefab4(comp1{}, comp2{}, comp3{}, comp4{}))
			ecslab.Add(w, e, comp5{})
			ecslab.Add(w, e, comp6{})
		}

		for range iters {
			ecslab.Query4(w, func(_ ecslab.Entity, c1 *comp1, c2 *comp2, _ *comp3, _ *comp4) {
				c1.V += c2.V
				c1.W += c2.W
			})
		}
	}
}
