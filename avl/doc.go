// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with parent pointers, built to be
// walked by an out-of-process memory inspector
//
// Note: an individual tree is not thread safe, so either access only
//
//	in a single go routine or use mutex/rwmutex to restrict
//	access.
//
// Every node is a plain fixed-shape record: key, two owning child
// links, one non-owning parent link and a signed balance factor
// (height of the right branch minus height of the left branch, kept
// in -1..+1).  Nothing is boxed or relocated during normal operation,
// so an external tool attached to the running process can reconstruct
// the tree shape and read the balance factors without any cooperation
// from this code.
//
// Only three operations are meant for an embedding program: create an
// empty tree, insert one key at a time, and destroy the whole tree.
// Inserting a key that is already present is a successful no-op.
// There is no single-key delete and no iteration; the consistency
// checkers and the ASCII printer exist for verification and for
// following a session without the inspector attached.
package avl
