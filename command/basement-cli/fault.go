// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/the-basement/basementd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidAmount = fault.InvalidError("amount must be a positive integer")
	ErrInvalidBin    = fault.InvalidError("bin must be TYPE:PERCENT:STEP:COUNT")
)

// ErrRequired - a missing required option
type ErrRequired string

func (e ErrRequired) Error() string { return "missing required option: " + string(e) }
