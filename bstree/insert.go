// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bstree

// Set - insert a new node into the tree, or overwrite the value of an
// existing key
//
// returns the previous value and true if the key was already present
func (tree *Tree[K, V]) Set(key K, value V) (V, bool) {
	n, previous, existed := tree.structuralInsert(key, value)
	if existed {
		return previous, true
	}
	tree.count += 1
	tree.balancer.afterInsert(tree, n)
	return previous, false
}

// SetIfAbsent - insert only if the key is not present
//
// returns true if the value was inserted
func (tree *Tree[K, V]) SetIfAbsent(key K, value V) bool {
	if nil != tree.findNode(key) {
		return false
	}
	tree.Set(key, value)
	return true
}

// GetOrSet - return the value for key if present, otherwise insert
// defaultValue and return it
//
// the boolean is true if the key was already present
func (tree *Tree[K, V]) GetOrSet(key K, defaultValue V) (V, bool) {
	if p := tree.findNode(key); nil != p {
		return p.value, true
	}
	tree.Set(key, defaultValue)
	return defaultValue, false
}
