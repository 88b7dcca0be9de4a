// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// Item - a key must implement the Compare function
// result is the sign of receiver minus argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
//
// left and right are the owning links; up is an observer pointer for
// upward traversal only and must be ignored when releasing nodes
type Node struct {
	left    *Node // left sub-tree
	right   *Node // right sub-tree
	up      *Node // points to parent node
	key     Item  // key part for ordering
	balance int   // height(right) - height(left): -1, 0, +1
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new leaf node, reuses reclaimed nodes if any are available
func newNode(key Item, up *Node) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			panic("avl: pool corrupt")
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			key:     key,
			up:      up,
			balance: 0,
		}
	}
	p := pool
	pool = p.up
	p.key = key
	p.balance = 0
	p.left = nil
	p.right = nil
	p.up = up // clears the freelist pointer
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.up = pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = nil
	node.balance = 0
	freeNodes += 1

	pool = node
	m.Unlock()
}
