// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.key, p.up.key, up.key)
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckBalance - verify every balance factor against independently
// measured branch heights
func (tree *Tree) CheckBalance() bool {
	_, ok := checkbalance(tree.root)
	return ok
}

// internal: returns measured height of the sub-tree
func checkbalance(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, ok := checkbalance(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := checkbalance(p.right)
	if !ok {
		return 0, false
	}
	if p.balance != rh-lh || !inRange(p.balance) {
		fmt.Printf("fail at node: %v   factor: %d  measured: %d\n", p.key, p.balance, rh-lh)
		return 0, false
	}
	if rh > lh {
		return 1 + rh, true
	}
	return 1 + lh, true
}

// CheckOrder - verify the search tree ordering
// every key in a left branch below its node, every key in a right
// branch above it
func (tree *Tree) CheckOrder() bool {
	return checkorder(tree.root, nil, nil)
}

// internal: lo and hi are exclusive bounds, nil for unbounded
func checkorder(p *Node, lo Item, hi Item) bool {
	if nil == p {
		return true
	}
	if nil != lo && p.key.Compare(lo) <= 0 {
		fmt.Printf("fail at node: %v   not above: %v\n", p.key, lo)
		return false
	}
	if nil != hi && p.key.Compare(hi) >= 0 {
		fmt.Printf("fail at node: %v   not below: %v\n", p.key, hi)
		return false
	}
	if !checkorder(p.left, lo, p.key) {
		return false
	}
	return checkorder(p.right, p.key, hi)
}
