// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bstree

// default maximum number of reclaimed nodes kept by a tree
const defaultPoolLimit = 1024

// per tree allocator, a tree is single threaded so no lock is needed
type allocator[K, V any] struct {
	pool  *Node[K, V] // linked list of reclaimed nodes
	total int         // total nodes created
	free  int         // number of nodes in the pool
	limit int         // maximum size of the pool
}

// allocate a new node, reuses reclaimed nodes if any are available
func (a *allocator[K, V]) newNode(key K, value V) *Node[K, V] {
	if nil == a.pool {
		if 0 != a.free {
			panic("pool corrupt")
		}
		a.total += 1
		return &Node[K, V]{
			key:     key,
			value:   value,
			balance: 0,
			color:   Red,
		}
	}
	p := a.pool
	a.pool = p.up
	p.key = key
	p.value = value
	p.balance = 0
	p.color = Red
	p.phantom = false
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	a.free -= 1
	return p
}

// reclaim a node and keep it in a pool
func (a *allocator[K, V]) freeNode(node *Node[K, V]) {
	var zeroKey K
	var zeroValue V

	node.left = nil
	node.right = nil
	node.key = zeroKey
	node.value = zeroValue
	node.balance = 0
	node.color = Red
	node.phantom = false

	if a.free >= a.limit {
		node.up = nil
		a.total -= 1
		return
	}

	node.up = a.pool // use as free list pointer
	a.pool = node
	a.free += 1
}

// drop all reclaimed nodes
func (a *allocator[K, V]) reset() {
	a.pool = nil
	a.total = 0
	a.free = 0
}

// Allocated - number of nodes owned by the tree and how many of
// those are currently in the free pool
func (tree *Tree[K, V]) Allocated() (total int, free int) {
	return tree.pool.total, tree.pool.free
}

// SetPoolLimit - set the maximum number of reclaimed nodes retained,
// excess reclaimed nodes are discarded
func (tree *Tree[K, V]) SetPoolLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	tree.pool.limit = limit
	for tree.pool.free > limit {
		p := tree.pool.pool
		tree.pool.pool = p.up
		p.up = nil
		tree.pool.free -= 1
		tree.pool.total -= 1
	}
}
