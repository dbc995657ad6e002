// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

// Listener - a configured server that can start accepting
type Listener interface {
	Serve() error
}
