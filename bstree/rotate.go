// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bstree

import (
	"github.com/bitmark-inc/bstrees/fault"
)

// internal: rotate p down to the left, its right child takes its
// place; returns the new sub-tree root
//
//	  p              r
//	 / \            / \
//	a   r    →     p   c
//	   / \        / \
//	  b   c      a   b
func (tree *Tree[K, V]) rotateLeft(p *Node[K, V]) *Node[K, V] {
	r := p.right
	if nil == r {
		fault.PanicWithError("bstree: rotate left", fault.ErrMissingChild)
	}

	p.right = r.left
	if nil != r.left {
		r.left.up = p
	}
	tree.replaceChild(p.up, p, r)
	r.left = p
	p.up = r
	return r
}

// internal: rotate p down to the right, its left child takes its
// place; returns the new sub-tree root
//
//	    p          l
//	   / \        / \
//	  l   c  →   a   p
//	 / \            / \
//	a   b          b   c
func (tree *Tree[K, V]) rotateRight(p *Node[K, V]) *Node[K, V] {
	l := p.left
	if nil == l {
		fault.PanicWithError("bstree: rotate right", fault.ErrMissingChild)
	}

	p.left = l.right
	if nil != l.right {
		l.right.up = p
	}
	tree.replaceChild(p.up, p, l)
	l.right = p
	p.up = l
	return l
}
