// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/engine"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/rpc/envelope"
	"github.com/the-basement/basementd/rpc/ratelimit"
)

const (
	rateLimitToken = 200
	rateBurstToken = 100

	// faucet is slower
	rateLimitMint = 1
	rateBurstMint = 5
)

// Token - type for the RPC
type Token struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	MintLimiter *rate.Limiter
	Engine      engine.Operations
	Guard       *envelope.ReplayGuard
	Clock       func() time.Time
}

// New - create the token RPC service
func New(log *logger.L, ops engine.Operations, guard *envelope.ReplayGuard) *Token {
	return &Token{
		Log:         log,
		Limiter:     rate.NewLimiter(rateLimitToken, rateBurstToken),
		MintLimiter: rate.NewLimiter(rateLimitMint, rateBurstMint),
		Engine:      ops,
		Guard:       guard,
		Clock:       time.Now,
	}
}

// MintArguments - a signed mint; the envelope farm field is the mint
type MintArguments struct {
	Envelope *envelope.Envelope `json:"envelope"`
}

// BalanceReply - a token account balance
type BalanceReply struct {
	Balance uint64 `json:"balance,string"`
}

// Mint - credit test tokens to the signer
func (t *Token) Mint(arguments *MintArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(t.MintLimiter); nil != err {
		return err
	}
	if !t.Engine.IsTesting() {
		return fault.NotTestingChain
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := t.Guard.Accept(arguments.Envelope, envelope.MintTag, t.Clock()); nil != err {
		return err
	}
	e := arguments.Envelope

	t.Log.Infof("Token.Mint: mint: %s  amount: %d  owner: %s", e.Farm, e.Amount, e.Signer)

	balance, err := t.Engine.MintTo(e.Signer, e.Farm, e.Amount)
	if nil != err {
		return err
	}
	reply.Balance = balance
	return nil
}

// BalanceArguments - identify a token account
type BalanceArguments struct {
	Owner *account.Account `json:"owner"`
	Mint  address.Address  `json:"mint"`
}

// Balance - balance of an owner's token account
func (t *Token) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	balance, err := t.Engine.TokenBalance(arguments.Owner.PublicKeyBytes(), arguments.Mint)
	if nil != err {
		return err
	}
	reply.Balance = balance
	return nil
}
