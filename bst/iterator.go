package bst

// Iterator walks a Tree in key order without recursion, keeping the pending
// ancestors on an explicit stack. The typical use is:
//
//	it := t.NewIterator()
//	for it.Next() {
//		key := it.Key()
//		value := it.Value()
//		// ...
//	}
//
// The tree must not be modified while an iterator is in use.
// Iterator คือโครงสร้างที่ใช้สำหรับวนลูปผ่านรายการใน tree
type Iterator[K any, V any] struct {
	t       *Tree[K, V]
	stack   []*Node[K, V] // บรรพบุรุษที่ยังไม่ได้เยี่ยมชม
	current *Node[K, V]
	reverse bool // ถ้าเป็น true, จะเดินจาก key มากไปน้อย
}

// NewIterator creates an iterator in ascending key order. A call to Next()
// is required to advance to the first element.
// NewIterator สร้าง Iterator ใหม่ ต้องเรียก Next() เพื่อเลื่อนไปยังรายการแรก
func (t *Tree[K, V]) NewIterator() *Iterator[K, V] {
	it := &Iterator[K, V]{t: t}
	it.Reset()
	return it
}

// NewReverseIterator creates an iterator in descending key order: the right
// subtree of every node is visited before the node and its left subtree.
func (t *Tree[K, V]) NewReverseIterator() *Iterator[K, V] {
	it := &Iterator[K, V]{t: t, reverse: true}
	it.Reset()
	return it
}

// pushSpine pushes n and its chain of leading children (left children for an
// ascending walk, right children for a descending one).
func (it *Iterator[K, V]) pushSpine(n *Node[K, V]) {
	for n != nil {
		it.stack = append(it.stack, n)
		if it.reverse {
			n = n.right
		} else {
			n = n.left
		}
	}
}

// Next moves the iterator to the next element and returns true if the move
// was successful. It returns false if there are no more elements.
// Next เลื่อน Iterator ไปยังรายการถัดไป และคืนค่า true หากสำเร็จ
func (it *Iterator[K, V]) Next() bool {
	if len(it.stack) == 0 {
		it.current = nil
		return false
	}
	it.current = it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if it.reverse {
		it.pushSpine(it.current.left)
	} else {
		it.pushSpine(it.current.right)
	}
	return true
}

// Node returns the node at the current position.
// It should only be called after a call to Next() has returned true.
func (it *Iterator[K, V]) Node() *Node[K, V] {
	return it.current
}

// Key returns the key at the current position.
// It should only be called after a call to Next() has returned true.
// Key คืนค่า key ของรายการปัจจุบันที่ Iterator ชี้อยู่
func (it *Iterator[K, V]) Key() K {
	return it.current.key
}

// Value returns the value at the current position.
// It should only be called after a call to Next() has returned true.
// Value คืนค่า value ของรายการปัจจุบันที่ Iterator ชี้อยู่
func (it *Iterator[K, V]) Value() V {
	return it.current.value
}

// Reset moves the iterator back to its initial state, before the first element.
// Reset เลื่อน Iterator กลับไปยังสถานะเริ่มต้น (ก่อนรายการแรก)
func (it *Iterator[K, V]) Reset() {
	it.stack = it.stack[:0]
	it.current = nil
	it.pushSpine(it.t.root)
}
