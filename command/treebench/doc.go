// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Workload and verification program for the bstree package
//
// This program reads a Lua workload description, builds a tree for
// each requested balancing strategy, applies the configured sets and
// removes, verifies the tree invariants and reports the resulting
// shape and timings.  The dump command draws the tree instead.
package main
