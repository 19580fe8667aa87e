package bst

import (
	"cmp"
)

// Pair is a key/item pair handed to the balanced builder.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// NewBalanced builds a tree of minimal height from a known batch of pairs.
// See NewBalancedWithComparator.
// NewBalanced สร้าง tree ที่สมดุลจากชุดข้อมูลที่รู้ล่วงหน้า
func NewBalanced[K cmp.Ordered, V any](pairs []Pair[K, V], opts ...Option[K, V]) *Tree[K, V] {
	return NewBalancedWithComparator(cmp.Compare[K], pairs, opts...)
}

// NewBalancedWithComparator sorts pairs with MergeSort and then places the
// middle element of every index range at the root of that range's subtree.
// For n pairs the result has height ceil(log2(n+1)), the minimum for n nodes,
// and its in-order walk yields the keys in non-decreasing order. Duplicate
// keys are allowed. The balance is not maintained by later Insert or Delete
// calls.
//
// pairs must not be empty; an empty batch is a programming error and panics.
func NewBalancedWithComparator[K any, V any](compare Comparator[K], pairs []Pair[K, V], opts ...Option[K, V]) *Tree[K, V] {
	if len(pairs) == 0 {
		panic("bst: balanced build requires at least one pair")
	}

	t := NewWithComparator(compare, opts...)
	sorted := MergeSort(pairs, func(a, b Pair[K, V]) int {
		return compare(a.Key, b.Key)
	})
	t.root = t.buildRange(sorted, 0, len(sorted)-1)
	t.length = len(sorted)
	return t
}

// buildRange returns the subtree for sorted[lo..hi] rooted at its median.
// Recursion depth is bounded by the height of the result.
func (t *Tree[K, V]) buildRange(sorted []Pair[K, V], lo, hi int) *Node[K, V] {
	if lo > hi {
		return nil
	}
	mid := lo + (hi-lo)/2
	n := t.newNode(sorted[mid].Key, sorted[mid].Value)
	n.left = t.buildRange(sorted, lo, mid-1)
	n.right = t.buildRange(sorted, mid+1, hi)
	return n
}
