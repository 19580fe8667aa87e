package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/INLOpen/hollow"
)

// Option configures how a maze is loaded.
type Option func(*loadConfig)

type loadConfig struct {
	treasures  func() []hollow.Treasure
	vault      *hollow.Vault
	spookyOpts []hollow.SpookyOption
}

// WithTreasureSource sets the function called once per hollow to produce its
// initial treasures. By default treasures are generated randomly.
func WithTreasureSource(source func() []hollow.Treasure) Option {
	return func(c *loadConfig) {
		c.treasures = source
	}
}

// WithVault makes the maze's mystical hollows share vault. The vault is reset
// before the maze is populated. By default every load gets a new vault.
func WithVault(vault *hollow.Vault) Option {
	return func(c *loadConfig) {
		c.vault = vault
	}
}

// WithSpookyOptions passes opts to every spooky hollow the loader creates.
func WithSpookyOptions(opts ...hollow.SpookyOption) Option {
	return func(c *loadConfig) {
		c.spookyOpts = append(c.spookyOpts, opts...)
	}
}

// LoadFile reads and validates the maze stored at path.
func LoadFile(path string, opts ...Option) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, makeError(ErrReadFailed, fmt.Sprintf("cannot open maze %s", path), err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// Load reads a maze, one row per line, validates it and populates its hollows.
// Every mystical hollow of the maze shares one vault; each spooky hollow gets
// its own treasures.
func Load(r io.Reader, opts ...Option) (*Maze, error) {
	cfg := loadConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.treasures == nil {
		cfg.treasures = hollow.NewGenerator(0).Treasures
	}
	if cfg.vault == nil {
		cfg.vault = hollow.NewVault()
	}

	lines, err := readLines(r)
	if err != nil {
		return nil, makeError(ErrReadFailed, "cannot read maze", err)
	}
	if err := validate(lines); err != nil {
		return nil, err
	}

	cfg.vault.Reset()

	var (
		start   Position
		exits   []Position
		walls   []Position
		hollows []PlacedHollow
	)
	for i, line := range lines {
		j := 0
		for _, tile := range line {
			p := Position{i, j}
			switch tile {
			case TileStart:
				start = p
			case TileExit:
				exits = append(exits, p)
			case TileWall:
				walls = append(walls, p)
			case TileSpooky:
				h := hollow.NewSpooky(cfg.treasures(), cfg.spookyOpts...)
				hollows = append(hollows, PlacedHollow{h, p})
			case TileMystical:
				h := hollow.NewMystical(cfg.vault, cfg.treasures())
				hollows = append(hollows, PlacedHollow{h, p})
			}
			j++
		}
	}

	m := New(start, exits, walls, hollows, len(lines), utf8.RuneCountInString(lines[0]))
	m.vault = cfg.vault
	log.Infof("Loaded %dx%d maze with %d hollows and %d exits", m.Rows, m.Cols,
		len(hollows), len(exits))
	return m, nil
}

// readLines returns the rows of the maze without line terminators. Trailing
// blank lines are dropped.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

func isTile(r rune) bool {
	switch r {
	case TileWall, TileEmpty, TileBlank, TileStart, TileExit, TileMystical, TileSpooky:
		return true
	}
	return false
}

// validate checks that every row has the same width, that there is exactly
// one start, at least one exit and at least one hollow, and that only known
// tiles are used.
func validate(lines []string) error {
	if len(lines) == 0 {
		return makeError(ErrEmptyMaze, "maze has no rows", nil)
	}

	cols := utf8.RuneCountInString(lines[0])
	counts := make(map[rune]int)
	var invalid []string
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != cols {
			str := fmt.Sprintf("row %d has %d columns, expected %d", i, n, cols)
			return makeError(ErrUnevenRows, str, nil)
		}
		for _, r := range line {
			if counts[r] == 0 && !isTile(r) {
				invalid = append(invalid, fmt.Sprintf("%q", r))
			}
			counts[r]++
		}
	}

	switch {
	case counts[TileStart] == 0:
		return makeError(ErrMissingStart, "maze has no start position", nil)
	case counts[TileExit] == 0:
		return makeError(ErrMissingExit, "maze has no exit", nil)
	case counts[TileStart] > 1:
		str := fmt.Sprintf("maze has %d start positions", counts[TileStart])
		return makeError(ErrMultipleStarts, str, nil)
	case counts[TileSpooky]+counts[TileMystical] == 0:
		return makeError(ErrNoHollows, "maze has no hollows", nil)
	case len(invalid) > 0:
		str := fmt.Sprintf("maze has invalid tiles %s", strings.Join(invalid, ", "))
		return makeError(ErrInvalidTile, str, nil)
	}
	return nil
}
