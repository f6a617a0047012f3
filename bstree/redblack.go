// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bstree

import (
	"github.com/bitmark-inc/bstrees/fault"
)

// colour balanced tree
//
//	1. the root is black
//	2. a red node has no red child
//	3. every path from a node down to an absent child passes the
//	   same number of black nodes
type redBlackBalancer[K, V any] struct{}

func (redBlackBalancer[K, V]) strategy() Strategy {
	return RedBlack
}

// insert: n is a new red leaf
func (redBlackBalancer[K, V]) afterInsert(tree *Tree[K, V], n *Node[K, V]) {
	for {
		parent := n.up
		if nil == parent {
			n.color = Black // n is the root
			return
		}
		if Black == parent.color {
			return
		}

		grandparent := parent.up
		if nil == grandparent {
			parent.color = Black // red root
			return
		}

		uncle := grandparent.left
		if parent == grandparent.left {
			uncle = grandparent.right
		}

		if isRed(uncle) {
			// push blackness down from the grandparent, which
			// may now conflict with its own parent
			parent.color = Black
			uncle.color = Black
			grandparent.color = Red
			n = grandparent
			continue
		}

		if parent == grandparent.left {
			if n == parent.right {
				tree.rotateLeft(parent) // move inner node to the outside
				parent = n
			}
			tree.rotateRight(grandparent)
		} else {
			if n == parent.left {
				tree.rotateRight(parent)
				parent = n
			}
			tree.rotateLeft(grandparent)
		}
		parent.color = Black
		grandparent.color = Red
		return
	}
}

// delete: the physically removed node has at most one child
func (redBlackBalancer[K, V]) remove(tree *Tree[K, V], n *Node[K, V]) {
	q := tree.detach(n)

	child := q.left
	if nil == child {
		child = q.right
	}

	switch {
	case nil != child:
		tree.replaceChild(q.up, q, child)
		if Black == q.color {
			if Red == child.color {
				child.color = Black
			} else {
				tree.doubleBlack(child)
			}
		}

	case Red == q.color || nil == q.up:
		tree.replaceChild(q.up, q, nil)

	default:
		// removing a black leaf, hold its place with a phantom
		// so the fixup has a node to start from, the phantom is
		// not owned by the pool
		phantom := &Node[K, V]{
			color:   Black,
			phantom: true,
		}

		tree.replaceChild(q.up, q, phantom)
		tree.doubleBlack(phantom)

		if nil == phantom.up {
			fault.PanicWithError("bstree: phantom", fault.ErrInconsistentParent)
		}
		tree.replaceChild(phantom.up, phantom, nil)
		phantom.up = nil
	}

	tree.pool.freeNode(q)
	if nil != tree.root {
		tree.root.color = Black
	}
}

// internal: x is short of one black on every path through it
func (tree *Tree[K, V]) doubleBlack(x *Node[K, V]) {
	for x != tree.root {
		parent := x.up

		if x == parent.left {
			sibling := parent.right
			if nil == sibling {
				fault.PanicWithError("bstree: double black", fault.ErrMissingChild)
			}
			if Red == sibling.color {
				sibling.color = Black
				parent.color = Red
				tree.rotateLeft(parent)
				sibling = parent.right
			}
			if !isRed(sibling.left) && !isRed(sibling.right) {
				sibling.color = Red
				if Red == parent.color {
					parent.color = Black
					return
				}
				x = parent
				continue
			}
			if !isRed(sibling.right) {
				// near child is red, turn it into the far child
				sibling.left.color = Black
				sibling.color = Red
				tree.rotateRight(sibling)
				sibling = parent.right
			}
			sibling.color = parent.color
			parent.color = Black
			sibling.right.color = Black
			tree.rotateLeft(parent)
			return
		}

		sibling := parent.left
		if nil == sibling {
			fault.PanicWithError("bstree: double black", fault.ErrMissingChild)
		}
		if Red == sibling.color {
			sibling.color = Black
			parent.color = Red
			tree.rotateRight(parent)
			sibling = parent.left
		}
		if !isRed(sibling.left) && !isRed(sibling.right) {
			sibling.color = Red
			if Red == parent.color {
				parent.color = Black
				return
			}
			x = parent
			continue
		}
		if !isRed(sibling.left) {
			sibling.right.color = Black
			sibling.color = Red
			tree.rotateLeft(sibling)
			sibling = parent.left
		}
		sibling.color = parent.color
		parent.color = Black
		sibling.left.color = Black
		tree.rotateRight(parent)
		return
	}
	x.color = Black
}
