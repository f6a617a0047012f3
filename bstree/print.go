// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bstree

import (
	"fmt"
	"io"
	"os"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
func (tree *Tree[K, V]) Print(printData bool) int {
	return tree.Fprint(os.Stdout, func(p *Node[K, V]) string {
		return tree.Label(p, printData)
	})
}

// Fprint - write an ASCII graphic representation of the tree using
// label to describe each node, returns the maximum depth of the tree
func (tree *Tree[K, V]) Fprint(w io.Writer, label func(*Node[K, V]) string) int {
	return printTree(w, tree.root, "", root, label)
}

// Label - default node description: key, optional value, parent key
// and the balancing tag of the tree's strategy
func (tree *Tree[K, V]) Label(p *Node[K, V], printData bool) string {
	up := interface{}(nil)
	if nil != p.up {
		up = p.up.key
	}

	tag := ""
	switch tree.Strategy() {
	case AVL:
		tag = fmt.Sprintf(" %+2d", p.balance)
	case RedBlack:
		tag = " B"
		if Red == p.color {
			tag = " R"
		}
	}

	if printData {
		return fmt.Sprintf("%v → %v ^%v%s", p.key, p.value, up, tag)
	}
	return fmt.Sprintf("%v ^%v%s", p.key, up, tag)
}

// internal print - returns the maximum depth of the tree
func printTree[K, V any](w io.Writer, tree *Node[K, V], prefix string, br branch, label func(*Node[K, V]) string) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, label)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintln(w, label(tree))
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, label)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
