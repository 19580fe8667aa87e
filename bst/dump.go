package bst

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the shape of the tree, one line per node, children prefixed
// with L or R. label formats a node; when nil the key is printed with %v.
func (t *Tree[K, V]) Dump(label func(key K, value V) string) string {
	if label == nil {
		label = func(key K, _ V) string { return fmt.Sprintf("%v", key) }
	}
	if t.root == nil {
		return treeprint.NewWithRoot("(empty)").String()
	}

	root := treeprint.NewWithRoot(label(t.root.key, t.root.value))
	dumpChildren(root, t.root, label)
	return root.String()
}

func dumpChildren[K any, V any](branch treeprint.Tree, n *Node[K, V], label func(K, V) string) {
	children := [...]struct {
		side string
		node *Node[K, V]
	}{
		{"L", n.left},
		{"R", n.right},
	}
	for _, c := range children {
		if c.node == nil {
			continue
		}
		text := c.side + " " + label(c.node.key, c.node.value)
		if c.node.left == nil && c.node.right == nil {
			branch.AddNode(text)
			continue
		}
		dumpChildren(branch.AddBranch(text), c.node, label)
	}
}
