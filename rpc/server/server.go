// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/the-basement/basementd/counter"
	"github.com/the-basement/basementd/engine"
	"github.com/the-basement/basementd/rpc/envelope"
	"github.com/the-basement/basementd/rpc/farm"
	"github.com/the-basement/basementd/rpc/node"
	"github.com/the-basement/basementd/rpc/position"
	"github.com/the-basement/basementd/rpc/token"
)

// Create - an RPC server with every service registered
//
// all services share one replay guard so an envelope is accepted once
// whichever service receives it
func Create(log *logger.L, version string, rpcCount *counter.Counter, ops engine.Operations) *rpc.Server {
	start := time.Now().UTC()
	guard := envelope.NewReplayGuard()

	server := rpc.NewServer()

	_ = server.Register(farm.New(log, ops, guard))
	_ = server.Register(position.New(log, ops, guard))
	_ = server.Register(token.New(log, ops, guard))
	_ = server.Register(node.New(log, ops, start, version, rpcCount))

	return server
}
