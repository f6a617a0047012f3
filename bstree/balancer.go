// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bstree

// the operations that differ between strategies
type balancer[K, V any] interface {
	strategy() Strategy

	// called after a new leaf n has been linked into the tree
	afterInsert(tree *Tree[K, V], n *Node[K, V])

	// unlink n from the tree and restore the strategy invariants,
	// the node payload of n may be replaced by its successor's
	remove(tree *Tree[K, V], n *Node[K, V])
}

// plain binary search tree
type unbalanced[K, V any] struct{}

func (unbalanced[K, V]) strategy() Strategy {
	return Unbalanced
}

func (unbalanced[K, V]) afterInsert(tree *Tree[K, V], n *Node[K, V]) {
}

func (unbalanced[K, V]) remove(tree *Tree[K, V], n *Node[K, V]) {
	q := tree.detach(n)
	tree.spliceOut(q)
	tree.pool.freeNode(q)
}
