package main

import (
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultCapacity   = 50
	defaultDebugLevel = "info"
)

// config defines the configuration options for hollowwalk.
type config struct {
	MazeFile   string `short:"m" long:"maze" description:"Path to the maze file" required:"true"`
	Capacity   int    `short:"c" long:"capacity" description:"Backpack capacity"`
	Seed       int64  `long:"seed" description:"Seed for treasure generation; 0 picks a random seed"`
	Balanced   bool   `long:"balanced" description:"Index spooky hollows with the balanced tree builder"`
	ShowTree   bool   `long:"showtree" description:"Print the index tree of every spooky hollow before walking"`
	NoColor    bool   `long:"nocolor" description:"Draw the maze without colours"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
}

// loadConfig parses the command line into a config, filling in defaults and
// validating the values.
func loadConfig() (*config, error) {
	cfg := config{
		Capacity:   defaultCapacity,
		DebugLevel: defaultDebugLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, "Use hollowwalk -h to show usage")
		}
		return nil, err
	}

	if cfg.Capacity < 0 {
		err := fmt.Errorf("capacity must not be negative, got %d", cfg.Capacity)
		fmt.Fprintln(os.Stderr, err)
		return nil, err
	}
	if _, ok := btclog.LevelFromString(cfg.DebugLevel); !ok {
		err := fmt.Errorf("the specified debug level [%v] is invalid", cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		return nil, err
	}

	return &cfg, nil
}
