// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type BoundsError GenericError
type ExistsError GenericError
type InvalidError GenericError
type InvariantError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ProcessError("already initialised")
	ErrBalanceMismatch       = InvariantError("stored balance differs from height difference")
	ErrBlackHeight           = InvariantError("black height differs between paths")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrCountMismatch         = InvariantError("node count differs from reachable nodes")
	ErrDuplicateKey          = ExistsError("key already exists")
	ErrInconsistentParent    = InvariantError("parent link is inconsistent")
	ErrInvalidCount          = InvalidError("count is invalid")
	ErrInvalidFormat         = InvalidError("output format is invalid")
	ErrInvalidLoggerChannel  = ProcessError("invalid logger channel")
	ErrInvalidStrategy       = InvalidError("balancing strategy is invalid")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrIteratorExhausted     = BoundsError("iterator is exhausted")
	ErrKeyMissing            = NotFoundError("key is not found")
	ErrKeyNotRemoved         = InvariantError("removed key is still present")
	ErrKeyOrder              = InvariantError("keys are out of order")
	ErrMissingChild          = InvariantError("required child node is missing")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrPhantomNode           = InvariantError("phantom node remains in tree")
	ErrRedRed                = InvariantError("red node has a red child")
	ErrRedRoot               = InvariantError("root node is red")
	ErrRequiredConfigFile    = InvalidError("config file is required")
	ErrTooManyRemoves        = InvalidError("removes exceed keys")
	ErrTwoChildren           = InvariantError("node to splice has two children")
	ErrUnbalancedNode        = InvariantError("balance is out of range")
	ErrValueMismatch         = InvariantError("stored value differs from expected")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e BoundsError) Error() string    { return string(e) }
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e InvariantError) Error() string { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrBounds(e error) bool    { var t BoundsError; return errors.As(e, &t) }
func IsErrExists(e error) bool    { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool   { var t InvalidError; return errors.As(e, &t) }
func IsErrInvariant(e error) bool { var t InvariantError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool  { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool   { var t ProcessError; return errors.As(e, &t) }
