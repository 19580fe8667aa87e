// Package maze places hollows on a grid, finds a way from the start to an
// exit and collects treasures from the hollows along that way.
package maze

import (
	"fmt"
	"strings"

	"github.com/INLOpen/hollow"
)

// Tile symbols understood by the loader.
const (
	TileWall     = '#'
	TileEmpty    = '.'
	TileBlank    = ' '
	TileStart    = 'P'
	TileExit     = 'E'
	TileMystical = hollow.MysticalTile
	TileSpooky   = hollow.SpookyTile
)

// Position is a row/column coordinate on the grid.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Direction is a unit step on the grid.
type Direction struct {
	Name     string
	DeltaRow int
	DeltaCol int
}

// Directions lists the moves in the order the exit search tries them.
var Directions = [...]Direction{
	{"up", -1, 0},
	{"down", 1, 0},
	{"left", 0, -1},
	{"right", 0, 1},
}

// Cell is a single square of the maze. Hollow is nil unless the cell holds
// one.
type Cell struct {
	Tile     rune
	Hollow   hollow.Hollow
	Position Position
	Visited  bool
}

func (c *Cell) String() string {
	if c.Hollow != nil {
		return string(c.Hollow.Tile())
	}
	return string(c.Tile)
}

// PlacedHollow pairs a hollow with the position it occupies.
type PlacedHollow struct {
	Hollow   hollow.Hollow
	Position Position
}

// Maze is a rectangular grid with one start and any number of exits.
type Maze struct {
	Start Position
	Exits []Position
	Rows  int
	Cols  int

	grid  [][]*Cell
	vault *hollow.Vault
}

// New builds a maze of rows x cols cells. Positions outside the grid panic.
func New(start Position, exits, walls []Position, hollows []PlacedHollow, rows, cols int) *Maze {
	m := &Maze{
		Start: start,
		Exits: exits,
		Rows:  rows,
		Cols:  cols,
	}

	m.grid = make([][]*Cell, rows)
	for i := range m.grid {
		m.grid[i] = make([]*Cell, cols)
		for j := range m.grid[i] {
			m.grid[i][j] = &Cell{Tile: TileBlank, Position: Position{i, j}}
		}
	}

	m.grid[start.Row][start.Col].Tile = TileStart
	for _, w := range walls {
		m.grid[w.Row][w.Col].Tile = TileWall
	}
	for _, h := range hollows {
		c := m.grid[h.Position.Row][h.Position.Col]
		c.Tile = h.Hollow.Tile()
		c.Hollow = h.Hollow
	}
	for _, e := range exits {
		m.grid[e.Row][e.Col].Tile = TileExit
	}
	return m
}

// Cell returns the cell at p. p must be inside the grid.
func (m *Maze) Cell(p Position) *Cell {
	return m.grid[p.Row][p.Col]
}

// Vault returns the state shared by the maze's mystical hollows, or nil when
// the maze was not built by the loader.
func (m *Maze) Vault() *hollow.Vault {
	return m.vault
}

// Hollows returns every cell holding a hollow in row-major order.
func (m *Maze) Hollows() []*Cell {
	var cells []*Cell
	for _, row := range m.grid {
		for _, c := range row {
			if c.Hollow != nil {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// IsValidPosition reports whether p is inside the grid and not a wall.
func (m *Maze) IsValidPosition(p Position) bool {
	if p.Row < 0 || p.Row >= m.Rows || p.Col < 0 || p.Col >= m.Cols {
		return false
	}
	return m.grid[p.Row][p.Col].Tile != TileWall
}

// AvailablePositions returns the neighbours of p that can be moved to.
func (m *Maze) AvailablePositions(p Position) []Position {
	var positions []Position
	for _, d := range Directions {
		next := Position{p.Row + d.DeltaRow, p.Col + d.DeltaCol}
		if m.IsValidPosition(next) {
			positions = append(positions, next)
		}
	}
	return positions
}

// ResetVisited clears the visited mark of every cell.
func (m *Maze) ResetVisited() {
	for _, row := range m.grid {
		for _, c := range row {
			c.Visited = false
		}
	}
}

// Render draws the grid row by row using draw for every cell.
func (m *Maze) Render(draw func(c *Cell) string) string {
	var sb strings.Builder
	for i, row := range m.grid {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteString(draw(c))
		}
	}
	return sb.String()
}

func (m *Maze) String() string {
	return m.Render((*Cell).String)
}
