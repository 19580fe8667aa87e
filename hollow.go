// Package hollow implements treasure containers that hand out, on request,
// the treasure with the best value-to-weight ratio that still fits a given
// capacity.
//
// Two variants exist. A Spooky hollow owns its treasures outright and indexes
// them in a private binary search tree keyed by ratio. Mystical hollows are
// all connected: every Mystical hollow created over the same Vault reads and
// mutates that one shared index, so a treasure taken from one of them is gone
// from all of them.
//
// Hollows are meant to be driven by a single walker. Spooky hollows are not
// safe for concurrent use; a Vault serialises access to its shared state.
package hollow

import (
	"fmt"
)

// Tiles used to draw hollows on a maze.
const (
	SpookyTile   = 'S'
	MysticalTile = 'M'
)

// Treasure is an immutable record held by a hollow. Weight is always positive.
// Treasure คือสมบัติแต่ละชิ้นที่อยู่ใน hollow
type Treasure struct {
	Name   string
	Weight int
	Value  int
}

// Ratio returns the value-to-weight ratio used to rank treasures.
func (t Treasure) Ratio() float64 {
	return float64(t.Value) / float64(t.Weight)
}

func (t Treasure) String() string {
	return fmt.Sprintf("%s (weight %d, value %d)", t.Name, t.Weight, t.Value)
}

// Hollow is a container of treasures supporting greedy best-fit extraction.
// Hollow คือที่เก็บสมบัติซึ่งคืนสมบัติที่คุ้มค่าที่สุดที่ยังใส่กระเป๋าได้
type Hollow interface {
	// Restructure indexes a flat list of treasures. Constructors call it once.
	Restructure(treasures []Treasure)

	// ExtractBest removes and returns the treasure with the greatest ratio
	// among those whose weight does not exceed capacity. It returns false,
	// leaving the hollow untouched, when nothing fits or the hollow is empty.
	ExtractBest(capacity int) (Treasure, bool)

	// Len returns the number of treasures currently held.
	Len() int

	// Tile returns the symbol the hollow is drawn with.
	Tile() rune
}
