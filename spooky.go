package hollow

import (
	"fmt"

	"github.com/INLOpen/hollow/bst"
)

// Spooky is a hollow whose treasures can be found nowhere else. It indexes
// them in a private tree keyed by ratio. The tree is never rebalanced, so
// repeated extraction may leave it lopsided. The zero value is an empty
// hollow; NewSpooky or Restructure fill it.
// Spooky คือ hollow ที่มีสมบัติเฉพาะของตัวเอง
type Spooky struct {
	index    *bst.Tree[float64, Treasure]
	balanced bool
}

// SpookyOption configures a Spooky hollow.
type SpookyOption func(*Spooky)

// WithBalancedIndex builds the index with bst.NewBalanced instead of
// inserting treasures one at a time in input order, which avoids the
// quadratic worst case on adversarially ordered input.
func WithBalancedIndex() SpookyOption {
	return func(s *Spooky) {
		s.balanced = true
	}
}

// NewSpooky creates a Spooky hollow holding treasures.
func NewSpooky(treasures []Treasure, opts ...SpookyOption) *Spooky {
	s := &Spooky{}
	for _, opt := range opts {
		opt(s)
	}
	s.Restructure(treasures)
	return s
}

// Restructure replaces the index with one built from treasures. By default
// each treasure is inserted keyed by its ratio in input order: O(n log n)
// expected, O(n^2) when the input is already sorted by ratio.
func (s *Spooky) Restructure(treasures []Treasure) {
	if s.balanced && len(treasures) > 0 {
		pairs := make([]bst.Pair[float64, Treasure], len(treasures))
		for i, t := range treasures {
			pairs[i] = bst.Pair[float64, Treasure]{Key: t.Ratio(), Value: t}
		}
		s.index = bst.NewBalanced(pairs)
	} else {
		s.index = bst.New[float64, Treasure]()
		for _, t := range treasures {
			s.index.Insert(t.Ratio(), t)
		}
	}
	log.Debugf("Spooky hollow indexed %d treasures (height %d)", s.index.Len(),
		s.index.Height())
}

// tree returns the index, creating an empty one for a zero-value hollow.
func (s *Spooky) tree() *bst.Tree[float64, Treasure] {
	if s.index == nil {
		s.index = bst.New[float64, Treasure]()
	}
	return s.index
}

// ExtractBest walks the index from the largest ratio downwards using an
// explicit stack of ancestors and removes the first treasure that fits.
// Because nodes are visited in non-increasing ratio order the first fit is
// the best one. Best case O(log n), worst case O(n).
func (s *Spooky) ExtractBest(capacity int) (Treasure, bool) {
	var stack []*bst.Node[float64, Treasure]
	for n := s.tree().Root(); n != nil; n = n.Right() {
		stack = append(stack, n)
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t := n.Value()
		if t.Weight <= capacity {
			s.index.DeleteNode(n)
			log.Tracef("Spooky hollow gave up %v", t)
			return t, true
		}

		// Everything in the left subtree ranks below n; its rightmost
		// spine holds the next candidates in order.
		for c := n.Left(); c != nil; c = c.Right() {
			stack = append(stack, c)
		}
	}

	log.Tracef("Spooky hollow has nothing within capacity %d", capacity)
	return Treasure{}, false
}

// Len returns the number of treasures left in the hollow.
func (s *Spooky) Len() int {
	return s.tree().Len()
}

// Tile returns SpookyTile.
func (s *Spooky) Tile() rune {
	return SpookyTile
}

// Height returns the current height of the index.
func (s *Spooky) Height() int {
	return s.tree().Height()
}

// Treasures returns the treasures left in the hollow, best ratio first. The
// hollow is not modified.
func (s *Spooky) Treasures() []Treasure {
	treasures := make([]Treasure, 0, s.Len())
	it := s.tree().NewReverseIterator()
	for it.Next() {
		treasures = append(treasures, it.Value())
	}
	return treasures
}

// Dump renders the index tree, labelling each node with its ratio and
// treasure name.
func (s *Spooky) Dump() string {
	return s.tree().Dump(func(ratio float64, t Treasure) string {
		return fmt.Sprintf("%.2f %s", ratio, t.Name)
	})
}
