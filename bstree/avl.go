// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bstree

import (
	"github.com/bitmark-inc/bstrees/fault"
)

// height balanced tree, node.balance = height(left) - height(right)
type avlBalancer[K, V any] struct{}

func (avlBalancer[K, V]) strategy() Strategy {
	return AVL
}

// insert: climb from the new leaf while the sub-tree height grows
func (avlBalancer[K, V]) afterInsert(tree *Tree[K, V], n *Node[K, V]) {
	for child := n; nil != child.up; {
		p := child.up
		if p.left == child {
			p.balance += 1 // left branch has grown
		} else {
			p.balance -= 1 // right branch has grown
		}

		switch p.balance {
		case 0:
			return // height unchanged
		case -1, +1:
			child = p
		default:
			// a rotation after an insert always restores the
			// height the sub-tree had before the insert
			tree.avlRebalance(p)
			return
		}
	}
}

// delete: splice out and climb while the sub-tree height shrinks
func (avlBalancer[K, V]) remove(tree *Tree[K, V], n *Node[K, V]) {
	q := tree.detach(n)
	p, fromLeft := tree.spliceOut(q)
	tree.pool.freeNode(q)

	for nil != p {
		if fromLeft {
			p.balance -= 1 // left branch has shrunk
		} else {
			p.balance += 1 // right branch has shrunk
		}

		switch p.balance {
		case -1, +1:
			return // height unchanged
		case 0:
			// height shrunk by one, continue upwards
		default:
			p = tree.avlRebalance(p)
			if 0 != p.balance {
				return // rotation kept the original height
			}
		}

		up := p.up
		if nil == up {
			return
		}
		fromLeft = up.left == p
		p = up
	}
}

// internal: restore a node with balance ±2, returns the new sub-tree root
func (tree *Tree[K, V]) avlRebalance(p *Node[K, V]) *Node[K, V] {
	switch p.balance {
	case +2:
		if nil == p.left {
			fault.PanicWithError("bstree: avl rebalance", fault.ErrMissingChild)
		}
		if p.left.balance < 0 {
			// double LR rotation
			tree.avlRotateLeft(p.left)
		}
		return tree.avlRotateRight(p)

	case -2:
		if nil == p.right {
			fault.PanicWithError("bstree: avl rebalance", fault.ErrMissingChild)
		}
		if p.right.balance > 0 {
			// double RL rotation
			tree.avlRotateRight(p.right)
		}
		return tree.avlRotateLeft(p)

	default:
		fault.Panicf("bstree: avl rebalance: balance: %d out of range", p.balance)
		return p
	}
}

// internal: left rotation with balance update
func (tree *Tree[K, V]) avlRotateLeft(p *Node[K, V]) *Node[K, V] {
	r := tree.rotateLeft(p)
	p.balance, r.balance = rotateLeftBalance(p.balance, r.balance)
	return r
}

// internal: right rotation with balance update
func (tree *Tree[K, V]) avlRotateRight(p *Node[K, V]) *Node[K, V] {
	l := tree.rotateRight(p)
	p.balance, l.balance = rotateRightBalance(p.balance, l.balance)
	return l
}

// balances after rotating p left where its right child r moves up
//
// with the heights: a = left(p), b = left(r), c = right(r)
//
//	p' = a - b          = p + 1 - min(r, 0)
//	r' = 1 + max(a, b) - c = r + 1 + max(p', 0)
//
// valid for any input balances, including ±2
func rotateLeftBalance(p int, r int) (int, int) {
	p = p + 1 - min(r, 0)
	r = r + 1 + max(p, 0)
	return p, r
}

// mirror of rotateLeftBalance for p's left child l moving up
//
//	p' = p - 1 - max(l, 0)
//	l' = l - 1 + min(p', 0)
func rotateRightBalance(p int, l int) (int, int) {
	p = p - 1 - max(l, 0)
	l = l - 1 + min(p, 0)
	return p, l
}
