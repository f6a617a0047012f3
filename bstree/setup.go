// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bstree

import (
	"cmp"

	"github.com/bitmark-inc/bstrees/fault"
)

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root     *Node[K, V]
	count    int
	compare  func(a, b K) int
	balancer balancer[K, V]
	pool     allocator[K, V]
}

// New - create an initially empty tree for a naturally ordered key
func New[K cmp.Ordered, V any](strategy Strategy) *Tree[K, V] {
	return NewWithCompare[K, V](strategy, cmp.Compare[K])
}

// NewWithCompare - create an initially empty tree ordered by a
// comparison function returning -1, 0, +1 for a < b, a == b, a > b
func NewWithCompare[K, V any](strategy Strategy, compare func(a, b K) int) *Tree[K, V] {
	if nil == compare {
		fault.Panic("bstree: nil compare function")
	}

	tree := &Tree[K, V]{
		root:    nil,
		count:   0,
		compare: compare,
		pool:    allocator[K, V]{limit: defaultPoolLimit},
	}

	switch strategy {
	case AVL:
		tree.balancer = avlBalancer[K, V]{}
	case RedBlack:
		tree.balancer = redBlackBalancer[K, V]{}
	case Unbalanced:
		tree.balancer = unbalanced[K, V]{}
	default:
		fault.PanicWithError("bstree: new", fault.ErrInvalidStrategy)
	}
	return tree
}

// NewTree - create an initially empty tree selecting the strategy by name
func NewTree[K cmp.Ordered, V any](strategyName string) (*Tree[K, V], error) {
	strategy, err := ParseStrategy(strategyName)
	if nil != err {
		return nil, err
	}
	return New[K, V](strategy), nil
}

// Strategy - the balancing strategy fixed when the tree was created
func (tree *Tree[K, V]) Strategy() Strategy {
	return tree.balancer.strategy()
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// IsNotEmpty - true if tree contains some data
func (tree *Tree[K, V]) IsNotEmpty() bool {
	return nil != tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Clear - remove all nodes
//
// the nodes are simply dropped, the recycled node pool is also
// emptied so that nothing from the old tree is retained
func (tree *Tree[K, V]) Clear() {
	tree.root = nil
	tree.count = 0
	tree.pool.reset()
}
