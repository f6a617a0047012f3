// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstrees/bstree"
	"github.com/bitmark-inc/bstrees/fault"
)

func testConfiguration() *Configuration {
	return &Configuration{
		Strategies: []string{"unbalanced", "avl", "red-black"},
		Keys:       200,
		Removes:    120,
		Seed:       5,
		Check:      true,
		PoolLimit:  16,
	}
}

func TestRunAll(t *testing.T) {
	conf := testConfiguration()
	conf.CheckEveryOperation = true

	results, err := runAll(conf, logger.New("workload"))
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, conf.Strategies[i], r.Strategy)
		assert.Equal(t, 200, r.Inserted)
		assert.Equal(t, 120, r.Removed)
		assert.Equal(t, 80, r.Count)
		assert.Equal(t, 80, r.Allocated-r.Free)
		assert.Equal(t, 16, r.Free)
		assert.Equal(t, 321, r.Checks, r.Strategy)
	}
	assert.LessOrEqual(t, results[1].Height, 10)
	assert.LessOrEqual(t, results[2].Height, 14)
}

func TestRunSequential(t *testing.T) {
	conf := testConfiguration()
	conf.Sequential = true
	conf.Keys = 127
	conf.Removes = 0

	results, err := runAll(conf, logger.New("workload"))
	require.NoError(t, err)

	assert.Equal(t, 127, results[0].Height)
	assert.Equal(t, 7, results[1].Height)
	assert.Equal(t, 2, results[0].Checks)
}

func TestNewWorkload(t *testing.T) {
	log := logger.New("workload")

	conf := testConfiguration()
	w1, err := newWorkload(conf, log)
	require.NoError(t, err)
	w2, err := newWorkload(conf, log)
	require.NoError(t, err)
	assert.Equal(t, w1.inserts, w2.inserts)
	assert.Equal(t, w1.removes, w2.removes)
	assert.Len(t, w1.inserts, 200)
	assert.Len(t, w1.removes, 120)

	conf.Sequential = true
	w3, err := newWorkload(conf, log)
	require.NoError(t, err)
	assert.Equal(t, 0, w3.inserts[0])
	assert.Equal(t, 199, w3.inserts[199])
	assert.Equal(t, w3.inserts[:120], w3.removes)

	conf.Removes = 201
	_, err = newWorkload(conf, log)
	assert.ErrorIs(t, err, fault.ErrTooManyRemoves)

	conf.Keys = 0
	_, err = newWorkload(conf, log)
	assert.ErrorIs(t, err, fault.ErrInvalidCount)
}

func TestBuild(t *testing.T) {
	conf := testConfiguration()
	w, err := newWorkload(conf, logger.New("workload"))
	require.NoError(t, err)

	tree, result, err := w.build(bstree.RedBlack)
	require.NoError(t, err)
	assert.Equal(t, 200, tree.Count())
	assert.Equal(t, 1, result.Checks)
	assert.NoError(t, tree.CheckRedBlack())

	for _, key := range w.inserts {
		value, ok := tree.Get(key)
		assert.True(t, ok)
		assert.Equal(t, valueOf(key), value)
	}
}

func TestWorkloadFailures(t *testing.T) {
	log := logger.New("workload")

	w := &workload{
		log:     log,
		inserts: []int{3, 1, 3},
		check:   true,
	}
	_, _, err := w.build(bstree.AVL)
	assert.ErrorIs(t, err, fault.ErrDuplicateKey)
	assert.True(t, fault.IsErrExists(err))

	w = &workload{
		log:     log,
		inserts: []int{1, 2, 3},
		removes: []int{2, 7},
		check:   true,
	}
	_, err = w.run(bstree.RedBlack)
	assert.ErrorIs(t, err, fault.ErrKeyMissing)
	assert.True(t, fault.IsErrNotFound(err))

	w.removes = []int{2}
	tree, _, err := w.build(bstree.Unbalanced)
	require.NoError(t, err)

	assert.ErrorIs(t, w.verifyContents(tree), fault.ErrKeyNotRemoved)

	tree.Remove(2)
	require.NoError(t, w.verifyContents(tree))

	tree.Set(3, 0)
	err = w.verifyContents(tree)
	assert.ErrorIs(t, err, fault.ErrValueMismatch)
	assert.True(t, fault.IsErrInvariant(err))

	tree.Remove(1)
	assert.ErrorIs(t, w.verifyContents(tree), fault.ErrKeyMissing)
}
