// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bstree

// Traversal - visiting order for Walk and Values
type Traversal int

// the orders
const (
	InOrder   Traversal = iota
	PreOrder  Traversal = iota
	PostOrder Traversal = iota
)

// Walk - call visit for each node in the given order, stops early if
// visit returns false
//
// returns false if the walk was stopped
func (tree *Tree[K, V]) Walk(order Traversal, visit func(*Node[K, V]) bool) bool {
	return walk(tree.root, order, visit)
}

func walk[K, V any](p *Node[K, V], order Traversal, visit func(*Node[K, V]) bool) bool {
	if nil == p {
		return true
	}
	switch order {
	case PreOrder:
		return visit(p) && walk(p.left, order, visit) && walk(p.right, order, visit)
	case PostOrder:
		return walk(p.left, order, visit) && walk(p.right, order, visit) && visit(p)
	default:
		return walk(p.left, order, visit) && visit(p) && walk(p.right, order, visit)
	}
}

// Values - all values in the given order
func (tree *Tree[K, V]) Values(order Traversal) []V {
	values := make([]V, 0, tree.count)
	tree.Walk(order, func(p *Node[K, V]) bool {
		values = append(values, p.value)
		return true
	})
	return values
}

// Keys - all keys in ascending order
func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.count)
	for p := tree.First(); nil != p; p = p.Next() {
		keys = append(keys, p.key)
	}
	return keys
}
