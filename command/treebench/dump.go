// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/bitmark-inc/bstrees/bstree"
)

// dump - build the tree for each strategy and draw it
//
// red nodes are shown in red when the output supports colour
func dump(w io.Writer, conf *Configuration, work *workload, printData bool) error {
	red := color.New(color.FgRed, color.Bold)

	for _, name := range conf.Strategies {
		strategy, err := bstree.ParseStrategy(name)
		if nil != err {
			return fmt.Errorf("%w: %q", err, name)
		}

		tree, _, err := work.build(strategy)
		if nil != err {
			return err
		}
		for _, key := range work.removes {
			tree.Remove(key)
		}

		fmt.Fprintf(w, "%s: count: %d\n", strategy, tree.Count())
		depth := tree.Fprint(w, func(p *bstree.Node[int, int]) string {
			label := tree.Label(p, printData)
			if bstree.RedBlack == strategy && bstree.Red == p.Color() {
				return red.Sprint(label)
			}
			return label
		})
		fmt.Fprintf(w, "%s: depth: %d\n\n", strategy, depth)
	}
	return nil
}
