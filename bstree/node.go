// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bstree

// Color - red-black tree node colour
type Color bool

// the two colours, a new node is always Red
const (
	Red   Color = false
	Black Color = true
)

// String - single word colour name
func (c Color) String() string {
	if Black == c {
		return "black"
	}
	return "red"
}

// Node - a node in the tree
type Node[K, V any] struct {
	left    *Node[K, V] // left sub-tree
	right   *Node[K, V] // right sub-tree
	up      *Node[K, V] // points to parent node
	key     K           // key part for ordering
	value   V           // value part for data storage
	balance int         // AVL only: height(left) - height(right)
	color   Color       // red-black only
	phantom bool        // red-black only: transient double-black marker
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Left - return the left child of a node
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return the right child of a node
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Balance - AVL height difference, always zero for other strategies
func (p *Node[K, V]) Balance() int {
	return p.balance
}

// Color - red-black colour, only meaningful for red-black trees
func (p *Node[K, V]) Color() Color {
	return p.color
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// ChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) ChildrenByDepth(depth uint) []*Node[K, V] {
	nodes := []*Node[K, V]{}

	if depth == 0 {
		nodes = []*Node[K, V]{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.ChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.ChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// internal: absent nodes count as black
func isRed[K, V any](p *Node[K, V]) bool {
	return nil != p && Red == p.color
}

// internal: lowest node in a sub-tree
func (tree *Node[K, V]) first() *Node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// internal: highest node in a sub-tree
func (tree *Node[K, V]) last() *Node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}
