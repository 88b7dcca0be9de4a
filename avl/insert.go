// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a key to the tree
// returns true if a new node was added, false if the key was already
// present (in which case the tree is left untouched)
func (tree *Tree) Insert(key Item) bool {

	// walk down to the empty slot that will own the new node
	parent := (*Node)(nil)
	slot := &tree.root
	for nil != *slot {
		parent = *slot
		switch parent.key.Compare(key) {
		case +1: // parent.key > key
			slot = &parent.left
		case -1: // parent.key < key
			slot = &parent.right
		default: // duplicate key
			return false
		}
	}

	delta := -1
	if nil != parent && slot == &parent.right {
		delta = +1
	}

	*slot = newNode(key, parent)
	tree.count += 1

	// the new leaf made one branch of its parent taller
	if nil != parent {
		rebalance(tree, parent, delta)
	}
	return true
}

// internal: propagate a height change upward from a node
// delta is +1 when the right branch has grown, -1 when the left one has
func rebalance(tree *Tree, node *Node, delta int) {
	if -1 != delta && +1 != delta {
		panic("avl: rebalance: invalid delta")
	}
	if node.balance < -1 || node.balance > +1 {
		panic("avl: rebalance: corrupt balance factor")
	}

	node.balance += delta

	switch node.balance * delta {
	case 0:
		// the branches are level again
		// total height of this sub-tree is unchanged, stop here

	case 1:
		// a level branch has grown, and the whole sub-tree with it
		// the parent sees the same growth on whichever side holds us
		if nil != node.up {
			rebalance(tree, node.up, sideOf(node))
		}

	case 2:
		// the taller branch has grown again, rotate it back
		// rotation removes exactly the height this insertion added,
		// so the parent's balance is unaffected and the walk stops
		rotate(slotOf(tree, node))

	default:
		panic("avl: rebalance: corrupt balance factor")
	}

	// whatever happened above, this node must be in balance again
	if !inRange(node.balance) {
		panic("avl: rebalance: balance factor out of range")
	}
}

// internal: the owning link currently holding a node
// either the tree's root link or one of the parent's branch links
func slotOf(tree *Tree, node *Node) **Node {
	if nil == node.up {
		return &tree.root
	}
	if node == node.up.left {
		return &node.up.left
	}
	return &node.up.right
}

// internal: which branch of its parent holds a node
// -1 for left, +1 for right, 0 for the root
func sideOf(node *Node) int {
	if nil == node.up {
		return 0
	}
	if node == node.up.left {
		return -1
	}
	return +1
}
