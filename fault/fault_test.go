// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstrees/fault"
)

var (
	ErrBoundsOne    = fault.BoundsError("bounds one")
	ErrBoundsTwo    = fault.BoundsError("bounds two")
	ErrExistsOne    = fault.ExistsError("exists one ")
	ErrExistsTwo    = fault.ExistsError("exists two")
	ErrInvalidOne   = fault.InvalidError("invalid one")
	ErrInvalidTwo   = fault.InvalidError("invalid two")
	ErrInvariantOne = fault.InvariantError("invariant one")
	ErrInvariantTwo = fault.InvariantError("invariant two")
	ErrNotFoundOne  = fault.NotFoundError("not found one")
	ErrNotFoundTwo  = fault.NotFoundError("not found two")
	ErrProcessOne   = fault.ProcessError("process one")
	ErrProcessTwo   = fault.ProcessError("process two")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err       error
		bounds    bool
		exists    bool
		invalid   bool
		invariant bool
		notFound  bool
		process   bool
	}{
		{ErrBoundsOne, true, false, false, false, false, false},
		{ErrBoundsTwo, true, false, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false, false},
		{ErrExistsTwo, false, true, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false},
		{ErrInvariantOne, false, false, false, true, false, false},
		{ErrInvariantTwo, false, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, false, true},
		{fmt.Errorf("wrapped: %w", ErrInvariantOne), false, false, false, true, false, false},
		{fault.ErrIteratorExhausted, true, false, false, false, false, false},
		{fault.ErrInconsistentParent, false, false, false, true, false, false},
		{fault.ErrDuplicateKey, false, true, false, false, false, false},
		{fault.ErrKeyMissing, false, false, false, false, true, false},
		{fault.ErrKeyNotRemoved, false, false, false, true, false, false},
		{fault.ErrValueMismatch, false, false, false, true, false, false},
	}

	for i, e := range errorList {
		err := e.err
		assert.Equal(t, e.bounds, fault.IsErrBounds(err), "%d: 'bounds' for err = %v", i, err)
		assert.Equal(t, e.exists, fault.IsErrExists(err), "%d: 'exists' for err = %v", i, err)
		assert.Equal(t, e.invalid, fault.IsErrInvalid(err), "%d: 'invalid' for err = %v", i, err)
		assert.Equal(t, e.invariant, fault.IsErrInvariant(err), "%d: 'invariant' for err = %v", i, err)
		assert.Equal(t, e.notFound, fault.IsErrNotFound(err), "%d: 'not found' for err = %v", i, err)
		assert.Equal(t, e.process, fault.IsErrProcess(err), "%d: 'process' for err = %v", i, err)
	}
}

func TestPanicWithErrorKeepsClass(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if assert.True(t, ok, "panic value is not an error: %v", r) {
			assert.True(t, fault.IsErrInvariant(err))
			assert.ErrorIs(t, err, fault.ErrMissingChild)
			assert.Contains(t, err.Error(), "rotate")
		}
	}()
	fault.PanicWithError("rotate", fault.ErrMissingChild)
}

func TestPanicf(t *testing.T) {
	assert.PanicsWithValue(t, fault.InvariantError("balance: 3"), func() {
		fault.Panicf("balance: %d", 3)
	})
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() {
		fault.PanicIfError("nothing", nil)
	})
	assert.Panics(t, func() {
		fault.PanicIfError("something", ErrProcessOne)
	})
}
