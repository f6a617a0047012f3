// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstrees/bstree"
	"github.com/bitmark-inc/bstrees/fault"
)

// Result - statistics from running the workload on one strategy
type Result struct {
	Strategy   string        `json:"strategy" yaml:"strategy"`
	Inserted   int           `json:"inserted" yaml:"inserted"`
	Removed    int           `json:"removed" yaml:"removed"`
	Count      int           `json:"count" yaml:"count"`
	Height     int           `json:"height" yaml:"height"`
	Allocated  int           `json:"allocated" yaml:"allocated"`
	Free       int           `json:"free" yaml:"free"`
	Checks     int           `json:"checks" yaml:"checks"`
	InsertTime time.Duration `json:"insert_time" yaml:"insert_time"`
	RemoveTime time.Duration `json:"remove_time" yaml:"remove_time"`
}

// the key sequences shared by every strategy so that their results
// are comparable
type workload struct {
	log        *logger.L
	inserts    []int
	removes    []int
	check      bool
	checkEvery bool
	poolLimit  int
}

// create the workload from the configuration
func newWorkload(conf *Configuration, log *logger.L) (*workload, error) {
	if conf.Keys <= 0 {
		return nil, fault.ErrInvalidCount
	}
	if conf.Removes < 0 || conf.Removes > conf.Keys {
		return nil, fault.ErrTooManyRemoves
	}

	w := &workload{
		log:        log,
		check:      conf.Check || conf.CheckEveryOperation,
		checkEvery: conf.CheckEveryOperation,
		poolLimit:  conf.PoolLimit,
	}

	if conf.Sequential {
		w.inserts = make([]int, conf.Keys)
		for i := range w.inserts {
			w.inserts[i] = i
		}
		w.removes = append([]int{}, w.inserts[:conf.Removes]...)
	} else {
		r := rand.New(rand.NewSource(conf.Seed))
		w.inserts = r.Perm(conf.Keys)
		w.removes = r.Perm(conf.Keys)[:conf.Removes]
	}

	log.Debugf("keys: %d  removes: %d  sequential: %v  seed: %d", conf.Keys, conf.Removes, conf.Sequential, conf.Seed)
	return w, nil
}

// build a tree for strategy containing all the inserted keys
func (w *workload) build(strategy bstree.Strategy) (*bstree.Tree[int, int], *Result, error) {
	tree := bstree.New[int, int](strategy)
	tree.SetPoolLimit(w.poolLimit)

	result := &Result{
		Strategy: strategy.String(),
	}

	start := time.Now()
	for i, key := range w.inserts {
		if _, existed := tree.Set(key, valueOf(key)); existed {
			return nil, nil, fmt.Errorf("%s: set: %d: %w", strategy, key, fault.ErrDuplicateKey)
		}
		result.Inserted += 1
		if w.checkEvery {
			if err := w.verify(tree, result); nil != err {
				return nil, nil, fmt.Errorf("%s: after set: %d  index: %d: %w", strategy, key, i, err)
			}
		}
	}
	result.InsertTime = time.Since(start)

	if w.check && !w.checkEvery {
		if err := w.verify(tree, result); nil != err {
			return nil, nil, fmt.Errorf("%s: after inserts: %w", strategy, err)
		}
	}
	return tree, result, nil
}

// run - apply the whole workload to a new tree
func (w *workload) run(strategy bstree.Strategy) (*Result, error) {
	log := w.log
	log.Infof("start: %s", strategy)

	tree, result, err := w.build(strategy)
	if nil != err {
		log.Errorf("build: %s", err)
		return nil, err
	}

	start := time.Now()
	for i, key := range w.removes {
		value, ok := tree.Remove(key)
		if !ok {
			return nil, fmt.Errorf("%s: remove: %d: %w", strategy, key, fault.ErrKeyMissing)
		}
		if valueOf(key) != value {
			return nil, fmt.Errorf("%s: remove: %d  value: %d: %w", strategy, key, value, fault.ErrValueMismatch)
		}
		result.Removed += 1
		if w.checkEvery {
			if err := w.verify(tree, result); nil != err {
				return nil, fmt.Errorf("%s: after remove: %d  index: %d: %w", strategy, key, i, err)
			}
		}
	}
	result.RemoveTime = time.Since(start)

	if w.check {
		if err := w.verify(tree, result); nil != err {
			return nil, fmt.Errorf("%s: after removes: %w", strategy, err)
		}
		if err := w.verifyContents(tree); nil != err {
			return nil, fmt.Errorf("%s: contents: %w", strategy, err)
		}
	}

	result.Count = tree.Count()
	result.Height = tree.Height()
	result.Allocated, result.Free = tree.Allocated()

	log.Infof("finish: %s  count: %d  height: %d  insert: %s  remove: %s", strategy, result.Count, result.Height, result.InsertTime, result.RemoveTime)
	return result, nil
}

// runAll - run the workload for each named strategy in order
func runAll(conf *Configuration, log *logger.L) ([]*Result, error) {
	w, err := newWorkload(conf, log)
	if nil != err {
		return nil, err
	}

	results := make([]*Result, 0, len(conf.Strategies))
	for _, name := range conf.Strategies {
		strategy, err := bstree.ParseStrategy(name)
		if nil != err {
			return nil, fmt.Errorf("%w: %q", err, name)
		}
		result, err := w.run(strategy)
		if nil != err {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (w *workload) verify(tree *bstree.Tree[int, int], result *Result) error {
	result.Checks += 1
	if err := tree.Check(); nil != err {
		return err
	}
	total, free := tree.Allocated()
	if total-free != tree.Count() {
		return fmt.Errorf("%w: live nodes: %d  count: %d", fault.ErrCountMismatch, total-free, tree.Count())
	}
	return nil
}

// removed keys must be absent and all others present with their
// original value
func (w *workload) verifyContents(tree *bstree.Tree[int, int]) error {
	removed := make(map[int]struct{}, len(w.removes))
	for _, key := range w.removes {
		removed[key] = struct{}{}
		if tree.ContainsKey(key) {
			return fmt.Errorf("%w: key: %d", fault.ErrKeyNotRemoved, key)
		}
	}
	for _, key := range w.inserts {
		if _, ok := removed[key]; ok {
			continue
		}
		value, ok := tree.Get(key)
		if !ok {
			return fmt.Errorf("%w: key: %d", fault.ErrKeyMissing, key)
		}
		if valueOf(key) != value {
			return fmt.Errorf("%w: key: %d  value: %d", fault.ErrValueMismatch, key, value)
		}
	}
	return nil
}

// stored value derived from the key so it can be verified
func valueOf(key int) int {
	return 3*key + 1
}
