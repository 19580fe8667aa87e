package maze

import (
	"github.com/INLOpen/hollow"
)

// FindWayOut searches depth first from the start for an exit, trying moves
// up, down, left, right in that order. The returned path runs from the start
// to the exit inclusive. It returns false when no exit is reachable.
func (m *Maze) FindWayOut() ([]Position, bool) {
	m.ResetVisited()

	var path []Position
	if m.dfs(m.Start, &path) {
		log.Debugf("Found a way out in %d steps", len(path)-1)
		return path, true
	}
	log.Debugf("No way out from %v", m.Start)
	return nil, false
}

func (m *Maze) isExit(p Position) bool {
	for _, e := range m.Exits {
		if e == p {
			return true
		}
	}
	return false
}

func (m *Maze) dfs(p Position, path *[]Position) bool {
	if m.isExit(p) {
		*path = append(*path, p)
		return true
	}

	c := m.Cell(p)
	if c.Visited {
		return false
	}
	c.Visited = true
	*path = append(*path, p)

	for _, d := range Directions {
		next := Position{p.Row + d.DeltaRow, p.Col + d.DeltaCol}
		if m.IsValidPosition(next) && !m.Cell(next).Visited {
			if m.dfs(next, path) {
				return true
			}
		}
	}

	// Backtrack.
	*path = (*path)[:len(*path)-1]
	return false
}

// CellsAlong returns the cells at the given positions, in order.
func (m *Maze) CellsAlong(path []Position) []*Cell {
	cells := make([]*Cell, len(path))
	for i, p := range path {
		cells[i] = m.Cell(p)
	}
	return cells
}

// TakeTreasures visits path in order and asks every hollow on it for its best
// treasure that fits the capacity still left, deducting the weight of each
// treasure taken. It returns false when nothing at all was taken.
func TakeTreasures(path []*Cell, capacity int) ([]hollow.Treasure, bool) {
	var taken []hollow.Treasure
	remaining := capacity
	for _, c := range path {
		if c.Hollow == nil {
			continue
		}
		t, ok := c.Hollow.ExtractBest(remaining)
		if !ok {
			continue
		}
		taken = append(taken, t)
		remaining -= t.Weight
		log.Debugf("Took %v at %v, %d capacity left", t, c.Position, remaining)
	}

	if len(taken) == 0 {
		return nil, false
	}
	return taken, true
}
