// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: restore the balance invariant at a node whose factor has
// reached ±2, given the owning link that holds the node
//
// a double rotation is needed when the inner branch of the taller
// child is the deep one; the first rotation straightens that shape
// into the case the second one resolves.  between the two rotations
// the middle node carries a factor of ±2, so the in-range
// postcondition only holds once the whole rotation is finished
func rotate(slot **Node) {
	switch (*slot).balance {
	case +2:
		if (*slot).right.balance < 0 {
			// right-left shape, straighten into right-right
			rightRotate(&(*slot).right)
		}
		leftRotate(slot)

	case -2:
		if (*slot).left.balance > 0 {
			// left-right shape, straighten into left-left
			leftRotate(&(*slot).left)
		}
		rightRotate(slot)

	default:
		panic("avl: rotate: node is not out of balance")
	}

	top := *slot
	if !inRange(top.balance) ||
		(nil != top.left && !inRange(top.left.balance)) ||
		(nil != top.right && !inRange(top.right.balance)) {
		panic("avl: rotate: balance factor out of range")
	}
}

// internal: the invariant range of a balance factor
func inRange(balance int) bool {
	return balance >= -1 && balance <= +1
}

// internal: left rotation
//
//	  p               p
//	  |               |
//	 (a)             (b)
//	 / \             / \
//	d  (b)   -->   (a)  e
//	   / \         / \
//	  c   e       d   c
//
// b is promoted into the owning link, a becomes its left child and
// b's old left branch c moves under a
func leftRotate(slot **Node) {
	a := *slot
	b := a.right
	c := b.left

	if a.balance <= 0 {
		panic("avl: left rotation on a node that is not right heavy")
	}

	*slot = b // slot is p.left, p.right or the root link
	b.up = a.up
	a.up = b
	b.left = a
	if nil != c {
		c.up = a
	}
	a.right = c

	// the new factors follow from the old ones, no height scan needed
	//   a old = 1 + max(height c, height e) - height d
	//   b old = height e - height c
	//   a new = height c - height d
	//   b new = height e - 1 - max(height d, height c)
	// b's update uses a's already updated value, the order matters
	if b.balance > 0 {
		a.balance -= 1 + b.balance
	} else {
		a.balance -= 1
	}
	if a.balance < 0 {
		b.balance += a.balance - 1
	} else {
		b.balance -= 1
	}
}

// internal: right rotation, mirror of leftRotate
//
//	    p               p
//	    |               |
//	   (a)             (b)
//	   / \             / \
//	 (b)  d    -->    e  (a)
//	 / \                 / \
//	e   c               c   d
func rightRotate(slot **Node) {
	a := *slot
	b := a.left
	c := b.right

	if a.balance >= 0 {
		panic("avl: right rotation on a node that is not left heavy")
	}

	*slot = b
	b.up = a.up
	a.up = b
	b.right = a
	if nil != c {
		c.up = a
	}
	a.left = c

	if b.balance < 0 {
		a.balance += 1 - b.balance
	} else {
		a.balance += 1
	}
	if a.balance > 0 {
		b.balance += 1 + a.balance
	} else {
		b.balance += 1
	}
}
