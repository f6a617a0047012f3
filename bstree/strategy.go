// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bstree

import (
	"strings"

	"github.com/bitmark-inc/bstrees/fault"
)

// Strategy - the balancing algorithm used by a tree
type Strategy int

// the available strategies
const (
	Unbalanced Strategy = iota
	AVL        Strategy = iota
	RedBlack   Strategy = iota
)

// names as accepted by ParseStrategy
const (
	UnbalancedName = "unbalanced"
	AVLName        = "avl"
	RedBlackName   = "red-black"
)

// String - name of the strategy
func (s Strategy) String() string {
	switch s {
	case Unbalanced:
		return UnbalancedName
	case AVL:
		return AVLName
	case RedBlack:
		return RedBlackName
	default:
		return "unknown"
	}
}

// Strategies - all strategies in a fixed order
func Strategies() []Strategy {
	return []Strategy{Unbalanced, AVL, RedBlack}
}

// ParseStrategy - convert a name to a strategy, case is ignored and
// a few common aliases are recognised
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case UnbalancedName, "bst", "simple":
		return Unbalanced, nil
	case AVLName:
		return AVL, nil
	case RedBlackName, "redblack", "rb":
		return RedBlack, nil
	default:
		return Unbalanced, fault.ErrInvalidStrategy
	}
}
