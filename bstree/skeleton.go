// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bstree

import (
	"github.com/bitmark-inc/bstrees/fault"
)

// internal: iterative descent to the node holding key
func (tree *Tree[K, V]) findNode(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(p.key, key); {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// internal: link a new leaf for key, or overwrite the value of the
// existing node without any structural change
//
// returns the node, the previous value and whether the key existed
func (tree *Tree[K, V]) structuralInsert(key K, value V) (*Node[K, V], V, bool) {
	var previous V

	if nil == tree.root {
		tree.root = tree.pool.newNode(key, value)
		return tree.root, previous, false
	}

	p := tree.root
	for {
		switch c := tree.compare(p.key, key); {
		case c > 0: // p.key > key
			if nil == p.left {
				n := tree.pool.newNode(key, value)
				n.up = p
				p.left = n
				return n, previous, false
			}
			p = p.left
		case c < 0: // p.key < key
			if nil == p.right {
				n := tree.pool.newNode(key, value)
				n.up = p
				p.right = n
				return n, previous, false
			}
			p = p.right
		default:
			previous = p.value
			p.value = value
			return p, previous, true
		}
	}
}

// internal: put newChild in the slot of parent that holds oldChild,
// a nil parent means oldChild is the root
func (tree *Tree[K, V]) replaceChild(parent *Node[K, V], oldChild *Node[K, V], newChild *Node[K, V]) {
	switch {
	case nil == parent:
		if tree.root != oldChild {
			fault.PanicWithError("bstree: replace root", fault.ErrInconsistentParent)
		}
		tree.root = newChild
	case parent.left == oldChild:
		parent.left = newChild
	case parent.right == oldChild:
		parent.right = newChild
	default:
		fault.PanicWithError("bstree: replace child", fault.ErrInconsistentParent)
	}
	if nil != newChild {
		newChild.up = parent
	}
}

// internal: select the node to be physically removed in place of p
//
// a node with two children takes the key and value of its in-order
// successor and the successor, which has no left child, is returned
func (tree *Tree[K, V]) detach(p *Node[K, V]) *Node[K, V] {
	if nil == p.left || nil == p.right {
		return p
	}
	s := p.right.first()
	p.key = s.key
	p.value = s.value
	return s
}

// internal: unlink a node having at most one child by moving the
// child into its slot
//
// returns the parent of the removed node, from which any rebalancing
// starts, and whether the node was the left child of that parent
func (tree *Tree[K, V]) spliceOut(p *Node[K, V]) (*Node[K, V], bool) {
	if nil != p.left && nil != p.right {
		fault.PanicWithError("bstree: splice", fault.ErrTwoChildren)
	}
	child := p.left
	if nil == child {
		child = p.right
	}
	parent := p.up
	wasLeft := nil != parent && parent.left == p
	tree.replaceChild(parent, p, child)
	return parent, wasLeft
}
