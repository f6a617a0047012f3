// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bstree

// Get - value for a key
func (tree *Tree[K, V]) Get(key K) (V, bool) {
	if p := tree.findNode(key); nil != p {
		return p.value, true
	}
	var zero V
	return zero, false
}

// GetOrDefault - value for a key or defaultValue if it is not present
func (tree *Tree[K, V]) GetOrDefault(key K, defaultValue V) V {
	if p := tree.findNode(key); nil != p {
		return p.value
	}
	return defaultValue
}

// ContainsKey - true if the key is present
func (tree *Tree[K, V]) ContainsKey(key K) bool {
	return nil != tree.findNode(key)
}

// Search - find a specific item
func (tree *Tree[K, V]) Search(key K) *Node[K, V] {
	return tree.findNode(key)
}

// Min - lowest key and its value
func (tree *Tree[K, V]) Min() (K, V, bool) {
	return pair(tree.root.first())
}

// Max - highest key and its value
func (tree *Tree[K, V]) Max() (K, V, bool) {
	return pair(tree.root.last())
}

func pair[K, V any](p *Node[K, V]) (K, V, bool) {
	if nil == p {
		var key K
		var value V
		return key, value, false
	}
	return p.key, p.value, true
}
