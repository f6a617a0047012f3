// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Invariant violations are programming errors: they are logged and
// raised as a panic carrying an InvariantError so that a caller or a
// test can recover and classify them.
package fault
