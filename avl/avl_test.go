// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IWonderWhatThisAPIDoes/aili/avl"
)

// integer key for the tests
type intItem int

// Compare - sign of receiver minus argument
func (i intItem) Compare(x interface{}) int {
	switch j := int(x.(intItem)); {
	case int(i) < j:
		return -1
	case int(i) > j:
		return +1
	default:
		return 0
	}
}

func (i intItem) String() string {
	return strconv.Itoa(int(i))
}

// node as seen by the verification walks
type flatNode struct {
	key     int
	balance int
}

// in-order key sequence
func traverse(p *avl.Node) []int {
	if nil == p {
		return []int{}
	}
	keys := traverse(p.Left())
	keys = append(keys, int(p.Key().(intItem)))
	return append(keys, traverse(p.Right())...)
}

// pre-order keys with balance factors, to pin exact tree shapes
func flatten(p *avl.Node) []flatNode {
	if nil == p {
		return []flatNode{}
	}
	nodes := []flatNode{{key: int(p.Key().(intItem)), balance: p.Balance()}}
	nodes = append(nodes, flatten(p.Left())...)
	return append(nodes, flatten(p.Right())...)
}

// run all three structural checks
func checkInvariants(t *testing.T, tree *avl.Tree) {
	if !tree.CheckUp() {
		t.Fatal("parent pointer check failed")
	}
	if !tree.CheckBalance() {
		t.Fatal("balance factor check failed")
	}
	if !tree.CheckOrder() {
		t.Fatal("key order check failed")
	}
}

// the canonical showcase sequence, duplicate "2" included
func TestShowcaseSequence(t *testing.T) {
	addList := []int{12, 4, 5, 6, 2, 8, 10, 2, 1}

	tree := avl.New()
	added := 0
	for _, key := range addList {
		if tree.Insert(intItem(key)) {
			added += 1
		}
		checkInvariants(t, tree)
	}

	assert.Equal(t, 8, added, "wrong number of insertions")
	assert.Equal(t, 8, tree.Count(), "wrong node count")
	assert.Equal(t, intItem(5), tree.Root().Key(), "wrong root key")
	assert.Equal(t, 4, tree.Height(), "wrong height")
	assert.Equal(t, []int{1, 2, 4, 5, 6, 8, 10, 12}, traverse(tree.Root()))

	expected := []flatNode{
		{5, +1},
		{2, 0}, {1, 0}, {4, 0},
		{8, +1}, {6, 0}, {12, -1}, {10, 0},
	}
	assert.Equal(t, expected, flatten(tree.Root()), "wrong tree shape")
}

// ascending insertion must rotate early and keep the tree shallow
func TestAscendingInsert(t *testing.T) {
	tree := avl.New()

	expectedRoots := []int{1, 1, 2, 2, 2, 4, 4}
	expectedHeights := []int{1, 2, 2, 3, 3, 3, 3}

	for i := 1; i <= 7; i += 1 {
		assert.True(t, tree.Insert(intItem(i)))
		checkInvariants(t, tree)
		assert.Equal(t, intItem(expectedRoots[i-1]), tree.Root().Key(), "root after %d insertions", i)
		assert.Equal(t, expectedHeights[i-1], tree.Height(), "height after %d insertions", i)
	}

	// the third insertion must already have rotated 1 off the root
	assert.Equal(t, intItem(4), tree.Root().Key())
	assert.Equal(t, 3, tree.Height())
}

func TestDescendingInsert(t *testing.T) {
	tree := avl.New()
	for i := 7; i >= 1; i -= 1 {
		assert.True(t, tree.Insert(intItem(i)))
		checkInvariants(t, tree)
	}
	assert.Equal(t, intItem(4), tree.Root().Key())
	assert.Equal(t, 3, tree.Height())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, traverse(tree.Root()))
}

// a right-left shape whose middle branch is already one level deep;
// the straightening rotation leaves the middle node out of range
// until the second rotation completes
func TestDoubleRotationDeep(t *testing.T) {
	addList := []int{15, 10, 25, 8, 20, 27, 18, 22, 28, 23}

	tree := avl.New()
	for _, key := range addList {
		assert.True(t, tree.Insert(intItem(key)))
		checkInvariants(t, tree)
	}

	expected := []flatNode{
		{20, 0},
		{15, -1}, {10, -1}, {8, 0}, {18, 0},
		{25, 0}, {22, +1}, {23, 0}, {27, +1}, {28, 0},
	}
	assert.Equal(t, expected, flatten(tree.Root()), "wrong tree shape")

	// and the mirror image of the same shape
	mirror := avl.New()
	for _, key := range addList {
		assert.True(t, mirror.Insert(intItem(-key)))
		checkInvariants(t, mirror)
	}
	assert.Equal(t, intItem(-20), mirror.Root().Key())
}

// inserting a key twice must not change anything at all
func TestDuplicateInsert(t *testing.T) {
	addList := []int{6, 3, 9, 1, 4, 8, 11}

	tree := avl.New()
	for _, key := range addList {
		assert.True(t, tree.Insert(intItem(key)))
	}

	rootBefore := tree.Root()
	shapeBefore := flatten(tree.Root())

	for _, key := range addList {
		assert.False(t, tree.Insert(intItem(key)), "duplicate %d was added", key)
	}

	assert.Equal(t, len(addList), tree.Count(), "count changed by duplicates")
	assert.True(t, rootBefore == tree.Root(), "root node was replaced")
	assert.Equal(t, shapeBefore, flatten(tree.Root()), "shape changed by duplicates")
	checkInvariants(t, tree)
}

// every invariant after every insertion of a large random work load,
// and the AVL height bound at the end of it
func TestRandomInsert(t *testing.T) {
	r := rand.New(rand.NewSource(0x1420))

	for trial := 0; trial < 20; trial += 1 {
		tree := avl.New()
		present := map[int]struct{}{}

		n := 50 + r.Intn(250)
		for i := 0; i < n; i += 1 {
			key := r.Intn(10000)
			_, duplicate := present[key]
			added := tree.Insert(intItem(key))
			assert.Equal(t, !duplicate, added, "wrong insert result for %d", key)
			present[key] = struct{}{}
			assert.Equal(t, len(present), tree.Count(), "wrong node count")
			checkInvariants(t, tree)
		}

		limit := 1.4405 * math.Log2(float64(tree.Count()+2))
		assert.LessOrEqual(t, float64(tree.Height()), limit, "height bound exceeded")

		tree.Destroy()
		assert.True(t, tree.IsEmpty())
	}
}

// the measured height of a big ascending load is fixed
func TestHeightBound(t *testing.T) {
	tree := avl.New()
	for i := 1; i <= 1024; i += 1 {
		tree.Insert(intItem(i))
	}
	assert.Equal(t, 1024, tree.Count())
	assert.Equal(t, 11, tree.Height())
	checkInvariants(t, tree)
}

func TestDestroy(t *testing.T) {
	tree := avl.New()

	// destroying an empty tree is a defined no-op
	tree.Destroy()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Count())

	for i := 1; i <= 100; i += 1 {
		tree.Insert(intItem(i))
	}
	assert.Equal(t, 100, tree.Count())

	tree.Destroy()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Count())
	assert.Nil(t, tree.Root())

	// the tree must be usable again after teardown
	assert.True(t, tree.Insert(intItem(42)))
	assert.Equal(t, 1, tree.Count())
	assert.Equal(t, intItem(42), tree.Root().Key())
	checkInvariants(t, tree)
}

func TestNodeAccessors(t *testing.T) {
	tree := avl.New()
	for _, key := range []int{2, 1, 3} {
		tree.Insert(intItem(key))
	}

	p := tree.Root()
	assert.Equal(t, intItem(2), p.Key())
	assert.Nil(t, p.Parent())
	assert.Equal(t, uint(0), p.Depth())
	assert.Equal(t, 0, p.Balance())

	l := p.Left()
	r := p.Right()
	assert.Equal(t, intItem(1), l.Key())
	assert.Equal(t, intItem(3), r.Key())
	assert.True(t, p == l.Parent())
	assert.True(t, p == r.Parent())
	assert.Equal(t, uint(1), l.Depth())

	level := p.GetChildrenByDepth(1)
	assert.Equal(t, 2, len(level))
	assert.Equal(t, intItem(1), level[0].Key())
	assert.Equal(t, intItem(3), level[1].Key())
}
