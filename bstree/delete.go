// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bstree

// Remove - removes a specific item from the tree
//
// returns the removed value and true, or the zero value and false if
// the key was not present
func (tree *Tree[K, V]) Remove(key K) (V, bool) {
	p := tree.findNode(key)
	if nil == p {
		var zero V
		return zero, false
	}
	value := p.value // preserve the value part
	tree.balancer.remove(tree, p)
	tree.count -= 1
	return value, true
}
