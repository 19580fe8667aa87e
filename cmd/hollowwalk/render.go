package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/INLOpen/hollow/maze"
)

const pathMark = "*"

var (
	wallStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	startStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	exitStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	spookyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	mysticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// render draws m, marking the blank cells of path. Colours are applied only
// when color is set.
func render(m *maze.Maze, path []maze.Position, color bool) string {
	onPath := make(map[maze.Position]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	return m.Render(func(c *maze.Cell) string {
		text := c.String()
		if c.Tile == maze.TileBlank && onPath[c.Position] {
			text = pathMark
		}
		if !color {
			return text
		}

		switch {
		case text == pathMark:
			return pathStyle.Render(text)
		case c.Tile == maze.TileWall:
			return wallStyle.Render(text)
		case c.Tile == maze.TileStart:
			return startStyle.Render(text)
		case c.Tile == maze.TileExit:
			return exitStyle.Render(text)
		case c.Tile == maze.TileSpooky:
			return spookyStyle.Render(text)
		case c.Tile == maze.TileMystical:
			return mysticalStyle.Render(text)
		}
		return text
	})
}
