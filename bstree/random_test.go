// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bstree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstrees/bstree"
)

// mixed random workload must agree with a map and keep all the
// structural checks valid after every operation
func TestRandomWorkload(t *testing.T) {
	const (
		operations = 4000
		keySpace   = 300
	)

	for _, strategy := range bstree.Strategies() {
		r := rand.New(rand.NewSource(7919))
		tree := bstree.New[int, int](strategy)
		reference := make(map[int]int)

	loop:
		for i := 0; i < operations; i += 1 {
			key := r.Intn(keySpace)
			if r.Intn(3) == 0 {
				value, ok := tree.Remove(key)
				expected, present := reference[key]
				if ok != present || value != expected {
					t.Errorf("%s: remove: %d  got: %d/%v  expected: %d/%v", strategy, key, value, ok, expected, present)
					break loop
				}
				delete(reference, key)
			} else {
				previous, existed := tree.Set(key, i)
				expected, present := reference[key]
				if existed != present || previous != expected {
					t.Errorf("%s: set: %d  got: %d/%v  expected: %d/%v", strategy, key, previous, existed, expected, present)
					break loop
				}
				reference[key] = i
			}

			if err := tree.Check(); nil != err {
				tree.Print(true)
				t.Fatalf("%s: after operation: %d: %s", strategy, i, err)
			}
			if tree.Count() != len(reference) {
				t.Fatalf("%s: count: %d  expected: %d", strategy, tree.Count(), len(reference))
			}
		}

		for key, value := range reference {
			actual, ok := tree.Get(key)
			assert.True(t, ok, "%s: key: %d", strategy, key)
			assert.Equal(t, value, actual, "%s: key: %d", strategy, key)
		}

		total, free := tree.Allocated()
		assert.Equal(t, tree.Count(), total-free, strategy.String())
	}
}

func TestHeightBounds(t *testing.T) {
	const n = 5000
	r := rand.New(rand.NewSource(104729))
	keys := r.Perm(n)

	avl := bstree.New[int, struct{}](bstree.AVL)
	rb := bstree.New[int, struct{}](bstree.RedBlack)
	for _, key := range keys {
		avl.Set(key, struct{}{})
		rb.Set(key, struct{}{})
	}

	// log2(5000) is about 12.3
	assert.LessOrEqual(t, avl.Height(), 18)
	assert.LessOrEqual(t, rb.Height(), 26)
	assert.NoError(t, avl.Check())
	assert.NoError(t, rb.Check())
}
