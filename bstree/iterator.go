// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bstree

import (
	"iter"

	"github.com/bitmark-inc/bstrees/fault"
)

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Node[K, V]) Next() *Node[K, V] {
	if tree.right == nil {
		for {
			child := tree
			tree = tree.up
			if tree == nil {
				return nil
			}
			if tree.left == child { // came up from the left
				return tree
			}
		}
	}
	return tree.right.first()
}

// Prev - given a node, return the node with the lowest key value or
// nil if no more nodes
func (tree *Node[K, V]) Prev() *Node[K, V] {
	if tree.left == nil {
		for {
			child := tree
			tree = tree.up
			if tree == nil {
				return nil
			}
			if tree.right == child { // came up from the right
				return tree
			}
		}
	}
	return tree.left.last()
}

// Iterator - resumable in-order traversal driven by an explicit stack
//
// the tree must not be modified while an iterator is in use
type Iterator[K, V any] struct {
	cursor *Node[K, V]
	stack  []*Node[K, V]
}

// Iterator - create an iterator positioned before the lowest key
func (tree *Tree[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{
		cursor: tree.root,
		stack:  make([]*Node[K, V], 0, 16),
	}
}

// HasNext - true if Next will return another item
func (it *Iterator[K, V]) HasNext() bool {
	return nil != it.cursor || len(it.stack) > 0
}

// Next - return the next key and value in ascending order
//
// once all items have been returned fault.ErrIteratorExhausted is
// returned on every call
func (it *Iterator[K, V]) Next() (K, V, error) {
	for nil != it.cursor {
		it.stack = append(it.stack, it.cursor)
		it.cursor = it.cursor.left
	}

	n := len(it.stack)
	if 0 == n {
		var key K
		var value V
		return key, value, fault.ErrIteratorExhausted
	}

	p := it.stack[n-1]
	it.stack = it.stack[:n-1]
	it.cursor = p.right
	return p.key, p.value, nil
}

// All - ascending sequence of all key/value pairs
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := tree.Iterator()
		for it.HasNext() {
			key, value, err := it.Next()
			if nil != err {
				return
			}
			if !yield(key, value) {
				return
			}
		}
	}
}
