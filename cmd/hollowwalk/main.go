// hollowwalk loads a maze, finds a way out and collects the best treasures
// that fit a backpack from the hollows along the way.
package main

import (
	"fmt"
	"os"

	"github.com/INLOpen/hollow"
	"github.com/INLOpen/hollow/maze"
)

// walkMain is the real main function for hollowwalk.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func walkMain() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setLogLevels(cfg.DebugLevel)

	opts := []maze.Option{
		maze.WithTreasureSource(hollow.NewGenerator(cfg.Seed).Treasures),
	}
	if cfg.Balanced {
		opts = append(opts, maze.WithSpookyOptions(hollow.WithBalancedIndex()))
	}

	m, err := maze.LoadFile(cfg.MazeFile, opts...)
	if err != nil {
		walkLog.Errorf("Unable to load maze: %v", err)
		return err
	}

	if cfg.ShowTree {
		for _, c := range m.Hollows() {
			if s, ok := c.Hollow.(*hollow.Spooky); ok {
				fmt.Printf("Spooky hollow at %v (%d treasures):\n%s\n",
					c.Position, s.Len(), s.Dump())
				if best := s.Treasures(); len(best) > 0 {
					fmt.Println("Best treasure:", best[0])
				}
			}
		}
		if v := m.Vault(); v != nil {
			fmt.Printf("Mystical vault (%d treasures):\n", v.Len())
			for _, t := range v.Treasures() {
				fmt.Printf(" %5d %v\n", hollow.QuantizeRatio(t), t)
			}
		}
	}

	path, ok := m.FindWayOut()
	if !ok {
		fmt.Println(render(m, nil, !cfg.NoColor))
		walkLog.Warnf("No way out of %s", cfg.MazeFile)
		return nil
	}
	fmt.Println(render(m, path, !cfg.NoColor))
	walkLog.Infof("Way out is %d steps long", len(path)-1)

	taken, ok := maze.TakeTreasures(m.CellsAlong(path), cfg.Capacity)
	if !ok {
		fmt.Println("No treasures taken")
		return nil
	}

	var weight, value int
	for _, t := range taken {
		fmt.Println(" -", t)
		weight += t.Weight
		value += t.Value
	}
	fmt.Printf("Took %d treasures: weight %d of %d, value %d\n", len(taken),
		weight, cfg.Capacity, value)
	return nil
}

func main() {
	if err := walkMain(); err != nil {
		os.Exit(1)
	}
}
