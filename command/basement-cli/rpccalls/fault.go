// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/the-basement/basementd/fault"
)

// errors - keep in alphabetic order
const (
	ErrMissingKey = fault.InvalidError("a private key is required to sign instructions")
)
