// Package bst implements a generic, unbalanced binary search tree together
// with a one-shot balanced builder. The tree keeps no balance information:
// Insert and Delete run in time proportional to the current height, which is
// logarithmic for a tree produced by NewBalanced and may degrade towards
// linear as the caller mutates it.
//
// The tree exposes its nodes (Root, Left, Right) so that callers can run their
// own traversals. Read-only walks in either direction are also available
// through NewIterator and NewReverseIterator. A Tree is not safe for
// concurrent use.
package bst

import (
	"cmp"
)

// Comparator is a function that compares two keys.
// It should return:
//   - a negative value if a < b
//   - zero if a == b
//   - a positive value if a > b
//
// Comparator คือฟังก์ชันสำหรับเปรียบเทียบ key สองตัว
type Comparator[K any] func(a, b K) int

// Tree is a binary search tree keyed by K. Duplicate keys are allowed; an
// inserted key equal to an existing one is placed in that node's right
// subtree. The zero value is not ready to use; call New or NewWithComparator.
// Tree คือโครงสร้างหลักของ binary search tree
// ค่า zero value ของ Tree จะยังไม่พร้อมใช้งาน, ต้องสร้างผ่านฟังก์ชัน New... เท่านั้น
type Tree[K any, V any] struct {
	root      *Node[K, V]         // โหนดราก
	length    int                 // จำนวนโหนดทั้งหมดใน tree
	allocator nodeAllocator[K, V] // Abstraction สำหรับการจัดสรรหน่วยความจำ
	compare   Comparator[K]       // ฟังก์ชันสำหรับเปรียบเทียบ key
}

// Option is a function that configures a Tree.
// Option คือฟังก์ชันสำหรับกำหนดค่าของ Tree
type Option[K any, V any] func(*Tree[K, V])

// WithHeapAllocator disables node recycling. Removed nodes are left to the
// garbage collector, so a *Node obtained before its removal keeps its key and
// value. By default removed nodes are reset and returned to a sync.Pool.
func WithHeapAllocator[K any, V any]() Option[K, V] {
	return func(t *Tree[K, V]) {
		t.allocator = heapAllocator[K, V]{}
	}
}

// New creates an empty tree for key types that implement cmp.Ordered.
// It uses cmp.Compare as the comparator.
// New สร้าง tree ใหม่สำหรับ key type ที่รองรับ `cmp.Ordered`
func New[K cmp.Ordered, V any](opts ...Option[K, V]) *Tree[K, V] {
	return NewWithComparator(cmp.Compare[K], opts...)
}

// NewWithComparator creates an empty tree ordered by compare.
// The comparator function must not be nil.
// NewWithComparator สร้าง tree ใหม่พร้อมกับฟังก์ชันเปรียบเทียบที่กำหนดเอง
func NewWithComparator[K any, V any](compare Comparator[K], opts ...Option[K, V]) *Tree[K, V] {
	if compare == nil {
		panic("bst: comparator cannot be nil")
	}

	t := &Tree[K, V]{
		allocator: newPoolAllocator[K, V](), // Default to sync.Pool
		compare:   compare,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tree[K, V]) newNode(key K, value V) *Node[K, V] {
	n := t.allocator.Get()
	n.key = key
	n.value = value
	return n
}

// Root returns the root node, or nil when the tree is empty.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// Len returns the number of nodes in the tree.
// Len คืนค่าจำนวนโหนดทั้งหมดใน tree
func (t *Tree[K, V]) Len() int {
	return t.length
}

// Insert adds a new node holding key and value and returns it. An existing
// node with an equal key is left untouched; the new node goes to its right.
// Insert เพิ่มโหนดใหม่เสมอ แม้ว่าจะมี key ซ้ำอยู่แล้วก็ตาม
func (t *Tree[K, V]) Insert(key K, value V) *Node[K, V] {
	newNode := t.newNode(key, value)
	t.length++

	if t.root == nil {
		t.root = newNode
		return newNode
	}

	current := t.root
	for {
		if t.compare(key, current.key) < 0 {
			if current.left == nil {
				current.left = newNode
				return newNode
			}
			current = current.left
		} else {
			if current.right == nil {
				current.right = newNode
				return newNode
			}
			current = current.right
		}
	}
}

// Put stores value under key. If a node with an equal key exists its value is
// replaced and Put returns true; otherwise a new node is inserted and Put
// returns false.
// Put หาก key มีอยู่แล้ว จะทำการอัปเดต value และคืนค่า true
func (t *Tree[K, V]) Put(key K, value V) bool {
	if n, ok := t.Search(key); ok {
		n.value = value
		return true
	}
	t.Insert(key, value)
	return false
}

// Search returns the first node with an equal key found walking down from the
// root.
// Search ค้นหาโหนดจาก key ที่กำหนด
func (t *Tree[K, V]) Search(key K) (*Node[K, V], bool) {
	current := t.root
	for current != nil {
		c := t.compare(key, current.key)
		switch {
		case c < 0:
			current = current.left
		case c > 0:
			current = current.right
		default:
			return current, true
		}
	}
	return nil, false
}

// Get returns the value stored under key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	if n, ok := t.Search(key); ok {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Delete removes one node whose key equals key. When duplicates exist it
// removes the one Search would return. It reports whether a node was removed.
// Delete ลบ key ออกจาก tree คืนค่า true หากลบสำเร็จ, false หากไม่พบ key
func (t *Tree[K, V]) Delete(key K) bool {
	var parent *Node[K, V]
	current := t.root
	for current != nil {
		c := t.compare(key, current.key)
		if c == 0 {
			t.unlink(parent, current)
			return true
		}
		parent = current
		if c < 0 {
			current = current.left
		} else {
			current = current.right
		}
	}
	return false
}

// DeleteNode removes exactly the given node, which must belong to t. Unlike
// Delete it is unaffected by other nodes that share the same key. It reports
// whether the node was found.
func (t *Tree[K, V]) DeleteNode(target *Node[K, V]) bool {
	if target == nil || t.root == nil {
		return false
	}

	type frame struct {
		parent, node *Node[K, V]
	}
	// Equal keys may sit on either side after a balanced build, so both
	// subtrees are searched when the keys compare equal.
	stack := []frame{{nil, t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.node == target {
			t.unlink(f.parent, f.node)
			return true
		}
		c := t.compare(target.key, f.node.key)
		if c <= 0 && f.node.left != nil {
			stack = append(stack, frame{f.node, f.node.left})
		}
		if c >= 0 && f.node.right != nil {
			stack = append(stack, frame{f.node, f.node.right})
		}
	}
	return false
}

// unlink detaches n from parent (nil for the root) and hands it back to the
// allocator. A node with two children is replaced by its in-order successor,
// which is moved rather than copied so other nodes keep their identity.
func (t *Tree[K, V]) unlink(parent, n *Node[K, V]) {
	var replacement *Node[K, V]
	switch {
	case n.left == nil:
		replacement = n.right
	case n.right == nil:
		replacement = n.left
	default:
		succParent := n
		succ := n.right
		for succ.left != nil {
			succParent = succ
			succ = succ.left
		}
		if succParent != n {
			succParent.left = succ.right
			succ.right = n.right
		}
		succ.left = n.left
		replacement = succ
	}

	switch {
	case parent == nil:
		t.root = replacement
	case parent.left == n:
		parent.left = replacement
	default:
		parent.right = replacement
	}

	t.allocator.Put(n)
	t.length--
}

// Min returns the node with the smallest key.
// Min คืนค่าโหนดที่มี key น้อยที่สุด
func (t *Tree[K, V]) Min() (*Node[K, V], bool) {
	if t.root == nil {
		return nil, false
	}
	current := t.root
	for current.left != nil {
		current = current.left
	}
	return current, true
}

// Max returns the node with the largest key.
// Max คืนค่าโหนดที่มี key มากที่สุด
func (t *Tree[K, V]) Max() (*Node[K, V], bool) {
	if t.root == nil {
		return nil, false
	}
	current := t.root
	for current.right != nil {
		current = current.right
	}
	return current, true
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0 and a single node has height 1.
func (t *Tree[K, V]) Height() int {
	if t.root == nil {
		return 0
	}

	height := 0
	level := []*Node[K, V]{t.root}
	for len(level) > 0 {
		height++
		var next []*Node[K, V]
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

// Range calls f for every node in ascending key order. The iteration stops if
// f returns false. f must not mutate the tree.
// Range วนลูปไปตามรายการทั้งหมดใน tree ตามลำดับ key
// การวนลูปจะหยุดลงหากฟังก์ชัน f คืนค่า false
func (t *Tree[K, V]) Range(f func(key K, value V) bool) {
	var stack []*Node[K, V]
	current := t.root
	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, current)
			current = current.left
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(current.key, current.value) {
			return
		}
		current = current.right
	}
}

// Clear removes all nodes. The node pool is replaced so the old nodes can be
// reclaimed by the garbage collector.
// Clear ลบรายการทั้งหมดออกจาก tree และรีเซ็ตให้อยู่ในสถานะว่างเปล่า
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.length = 0
	if _, ok := t.allocator.(*poolAllocator[K, V]); ok {
		t.allocator = newPoolAllocator[K, V]()
	}
}
