// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/the-basement/basementd/counter"
	"github.com/the-basement/basementd/engine"
	"github.com/the-basement/basementd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// chain names reported to clients
const (
	ChainLive    = "live"
	ChainTesting = "testing"
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Engine  engine.Operations
	counter *counter.Counter
}

// New - create the node RPC service
func New(log *logger.L, ops engine.Operations, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Engine:  ops,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string `json:"chain"`
	RPCs    uint64 `json:"rpcs"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = ChainLive
	if node.Engine.IsTesting() {
		reply.Chain = ChainTesting
	}
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
