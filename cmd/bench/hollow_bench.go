package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/INLOpen/hollow"
)

func main() {
	const (
		N        = 200000
		Capacity = hollow.MaxTreasureWeight
	)

	// prepare treasures
	gen := hollow.NewGenerator(42)
	treasures := make([]hollow.Treasure, 0, N)
	for len(treasures) < N {
		treasures = append(treasures, gen.Treasures()...)
	}
	treasures = treasures[:N]

	configs := []struct {
		name  string
		build func() hollow.Hollow
	}{
		{"Spooky-insert", func() hollow.Hollow { return hollow.NewSpooky(treasures) }},
		{"Spooky-balanced", func() hollow.Hollow { return hollow.NewSpooky(treasures, hollow.WithBalancedIndex()) }},
		{"Mystical", func() hollow.Hollow { return hollow.NewMystical(hollow.NewVault(), treasures) }},
	}

	fmt.Printf("Running lightweight hollow restructure/drain microbench (N=%d)\n", N)

	for _, cfg := range configs {
		runtime.GC()
		time.Sleep(50 * time.Millisecond)
		fmt.Printf("\nConfig: %s\n", cfg.name)

		var msBefore, msAfter runtime.MemStats
		runtime.ReadMemStats(&msBefore)
		start := time.Now()

		h := cfg.build()

		buildDur := time.Since(start)
		runtime.ReadMemStats(&msAfter)
		allocDiff := int64(msAfter.TotalAlloc) - int64(msBefore.TotalAlloc)

		height := -1
		if s, ok := h.(*hollow.Spooky); ok {
			height = s.Height()
		}
		fmt.Printf("Build: %s, ns/op: %.1f, TotalAlloc diff: %d bytes, Len: %d, Height: %d\n",
			buildDur, float64(buildDur.Nanoseconds())/float64(N), allocDiff, h.Len(), height)

		if s, ok := h.(*hollow.Spooky); ok {
			ranked := s.Treasures()
			for i := 1; i < len(ranked); i++ {
				if ranked[i].Ratio() > ranked[i-1].Ratio() {
					fmt.Printf("Index out of order at %d\n", i)
					break
				}
			}
		}

		size := h.Len()
		start = time.Now()
		taken := 0
		for {
			if _, ok := h.ExtractBest(Capacity); !ok {
				break
			}
			taken++
		}
		drainDur := time.Since(start)
		if taken == 0 {
			taken = 1
		}
		fmt.Printf("Drain: %s, ns/op: %.1f, Taken: %d of %d\n", drainDur,
			float64(drainDur.Nanoseconds())/float64(taken), taken, size)
	}
}
