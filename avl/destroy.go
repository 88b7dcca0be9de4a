// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Destroy - tear down the whole tree and release every node
//
// children are released before their parent, so no node is ever freed
// while one of its branches is still live; only the owning links are
// followed, the parent pointers are observers and never release
// anything.  the tree is left empty and can be filled again.
// no-op on an already empty tree
func (tree *Tree) Destroy() {
	if nil != tree.root {
		destroy(tree.root)
		tree.root = nil
		tree.count = 0
	}
}

// internal: post-order release of a sub-tree
func destroy(p *Node) {
	if nil != p.left {
		destroy(p.left)
	}
	if nil != p.right {
		destroy(p.right)
	}
	freeNode(p)
}
