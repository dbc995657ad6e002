// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring basementd services
//
// standard golang RPC services can be used on the client side to
// access these services; state changing calls carry an envelope
// signed by the caller's key
package rpc
