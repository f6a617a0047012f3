// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bstree - ordered key/value binary search trees with parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Three balancing strategies are available and one is selected when
// the tree is created:
//
//   Unbalanced - plain binary search tree, no rebalancing
//   AVL        - height balanced, |height(left) - height(right)| <= 1
//   RedBlack   - colour balanced, equal black height on every path
//
// Insert of an existing key overwrites the value in place.  Delete of
// a node with two children copies the in-order successor's key and
// value into that node and removes the successor instead, so a *Node
// obtained before a Remove may afterwards hold a different key.
//
// An Iterator must not be used after the tree has been modified, the
// result of doing so is undefined.
package bstree
