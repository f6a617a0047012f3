// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bstree

import (
	"fmt"

	"github.com/bitmark-inc/bstrees/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() bool {
	return nil == checkUp(tree.root, nil)
}

// internal: consistency checker
func checkUp[K, V any](p *Node[K, V], up *Node[K, V]) error {
	if nil == p {
		return nil
	}
	if p.up != up {
		return fmt.Errorf("%w: at node: %v", fault.ErrInconsistentParent, p.key)
	}
	if err := checkUp(p.left, p); nil != err {
		return err
	}
	return checkUp(p.right, p)
}

// Check - verify all invariants that apply to the tree's strategy
func (tree *Tree[K, V]) Check() error {
	if err := checkUp(tree.root, nil); nil != err {
		return err
	}
	if err := tree.CheckOrder(); nil != err {
		return err
	}
	if err := tree.CheckCount(); nil != err {
		return err
	}
	switch tree.Strategy() {
	case AVL:
		return tree.CheckAVL()
	case RedBlack:
		return tree.CheckRedBlack()
	}
	return nil
}

// CheckOrder - keys strictly increase in order
func (tree *Tree[K, V]) CheckOrder() error {
	var previous *Node[K, V]
	var err error
	tree.Walk(InOrder, func(p *Node[K, V]) bool {
		if nil != previous && tree.compare(previous.key, p.key) >= 0 {
			err = fmt.Errorf("%w: %v is not before %v", fault.ErrKeyOrder, previous.key, p.key)
			return false
		}
		previous = p
		return true
	})
	return err
}

// CheckCount - the node count matches the number of reachable nodes
func (tree *Tree[K, V]) CheckCount() error {
	n := 0
	tree.Walk(PreOrder, func(*Node[K, V]) bool {
		n += 1
		return true
	})
	if n != tree.count {
		return fmt.Errorf("%w: reachable: %d  count: %d", fault.ErrCountMismatch, n, tree.count)
	}
	return nil
}

// Height - number of nodes on the longest path from the root
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

func height[K, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return 1 + max(height(p.left), height(p.right))
}

// CheckAVL - every stored balance equals the true height difference
// and is in the range -1..+1
func (tree *Tree[K, V]) CheckAVL() error {
	_, err := checkAVL(tree.root)
	return err
}

// internal: returns the sub-tree height
func checkAVL[K, V any](p *Node[K, V]) (int, error) {
	if nil == p {
		return 0, nil
	}
	lh, err := checkAVL(p.left)
	if nil != err {
		return 0, err
	}
	rh, err := checkAVL(p.right)
	if nil != err {
		return 0, err
	}
	if lh-rh != p.balance {
		return 0, fmt.Errorf("%w: key: %v  balance: %d  actual: %d", fault.ErrBalanceMismatch, p.key, p.balance, lh-rh)
	}
	if p.balance < -1 || p.balance > 1 {
		return 0, fmt.Errorf("%w: key: %v  balance: %d", fault.ErrUnbalancedNode, p.key, p.balance)
	}
	return 1 + max(lh, rh), nil
}

// CheckRedBlack - root is black, no red node has a red child, equal
// black height on all paths and no phantom node remains
func (tree *Tree[K, V]) CheckRedBlack() error {
	if nil == tree.root {
		return nil
	}
	if Black != tree.root.color {
		return fmt.Errorf("%w: key: %v", fault.ErrRedRoot, tree.root.key)
	}
	_, err := checkRedBlack(tree.root)
	return err
}

// internal: returns the black height below p
func checkRedBlack[K, V any](p *Node[K, V]) (int, error) {
	if nil == p {
		return 0, nil
	}
	if p.phantom {
		return 0, fault.ErrPhantomNode
	}
	if Red == p.color && (isRed(p.left) || isRed(p.right)) {
		return 0, fmt.Errorf("%w: key: %v", fault.ErrRedRed, p.key)
	}
	lh, err := checkRedBlack(p.left)
	if nil != err {
		return 0, err
	}
	rh, err := checkRedBlack(p.right)
	if nil != err {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("%w: key: %v  left: %d  right: %d", fault.ErrBlackHeight, p.key, lh, rh)
	}
	if Black == p.color {
		lh += 1
	}
	return lh, nil
}
