package bst

import (
	"sync"
)

// Node is a single entry of a Tree. The tree exposes its nodes so callers can
// walk the structure themselves (Root, Left, Right).
// Node คือโหนดแต่ละตัวใน tree ผู้เรียกสามารถเดินตามโครงสร้างเองได้
type Node[K any, V any] struct {
	key   K
	value V
	left  *Node[K, V]
	right *Node[K, V]
}

// Key returns the node's key.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the item stored in the node.
func (n *Node[K, V]) Value() V {
	return n.value
}

// Left returns the left child, or nil.
func (n *Node[K, V]) Left() *Node[K, V] {
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[K, V]) Right() *Node[K, V] {
	return n.right
}

// reset clears the node so it can be handed out again by an allocator.
// Pointers are cleared so recycled nodes do not keep subtrees alive.
// reset เคลียร์ข้อมูลในโหนดเพื่อให้ allocator นำกลับมาใช้ใหม่ได้อย่างปลอดภัย
func (n *Node[K, V]) reset() {
	var zeroK K
	var zeroV V
	n.key, n.value = zeroK, zeroV
	n.left, n.right = nil, nil
}

// --- Node Allocator Abstraction ---

// nodeAllocator defines how the tree obtains and releases nodes.
type nodeAllocator[K any, V any] interface {
	Get() *Node[K, V]
	Put(*Node[K, V])
}

// poolAllocator recycles removed nodes through a sync.Pool.
type poolAllocator[K any, V any] struct {
	pool sync.Pool
}

func newPoolAllocator[K any, V any]() *poolAllocator[K, V] {
	return &poolAllocator[K, V]{
		pool: sync.Pool{
			New: func() any { return &Node[K, V]{} },
		},
	}
}

func (p *poolAllocator[K, V]) Get() *Node[K, V] {
	return p.pool.Get().(*Node[K, V])
}

func (p *poolAllocator[K, V]) Put(n *Node[K, V]) {
	n.reset()
	p.pool.Put(n)
}

// heapAllocator allocates every node with new and leaves removed nodes to the
// garbage collector. Nodes handed out earlier stay intact after removal.
type heapAllocator[K any, V any] struct{}

func (heapAllocator[K, V]) Get() *Node[K, V] {
	return &Node[K, V]{}
}

func (heapAllocator[K, V]) Put(*Node[K, V]) {}
