// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package position

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
	rateLimitPosition = 200
	rateBurstPosition = 100
)

// Position - type for the RPC
type Position struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  engine.Operations
	Guard   *envelope.ReplayGuard
	Clock   func() time.Time
}

// New - create the position RPC service
func New(log *logger.L, ops engine.Operations, guard *envelope.ReplayGuard) *Position {
	return &Position{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitPosition, rateBurstPosition),
		Engine:  ops,
		Guard:   guard,
		Clock:   time.Now,
	}
}

// InstructionArguments - a signed deposit or withdraw
type InstructionArguments struct {
	Envelope *envelope.Envelope `json:"envelope"`
}

// Deposit - add to the signer's position
func (p *Position) Deposit(arguments *InstructionArguments, reply *engine.PositionInfo) error {
	return p.change(arguments, envelope.DepositTag, p.Engine.Deposit, reply)
}

// Withdraw - take from the signer's position
func (p *Position) Withdraw(arguments *InstructionArguments, reply *engine.PositionInfo) error {
	return p.change(arguments, envelope.WithdrawTag, p.Engine.Withdraw, reply)
}

type changeFunc func(*account.Account, address.Address, uint64) (*engine.PositionInfo, error)

func (p *Position) change(arguments *InstructionArguments, tag envelope.Tag, f changeFunc, reply *engine.PositionInfo) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := p.Guard.Accept(arguments.Envelope, tag, p.Clock()); nil != err {
		return err
	}
	e := arguments.Envelope

	p.Log.Infof("Position: tag: %d  farm: %s  amount: %d  signer: %s", e.Tag, e.Farm, e.Amount, e.Signer)

	info, err := f(e.Signer, e.Farm, e.Amount)
	if nil != err {
		return err
	}
	*reply = *info
	return nil
}

// ---

// GetArguments - identify a position
type GetArguments struct {
	Owner *account.Account `json:"owner"`
	Farm  address.Address  `json:"farm"`
}

// Get - read a position with its current value
func (p *Position) Get(arguments *GetArguments, reply *engine.PositionInfo) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	info, err := p.Engine.Position(arguments.Owner, arguments.Farm)
	if nil != err {
		return err
	}
	*reply = *info
	return nil
}

// ListArguments - identify a farm
type ListArguments struct {
	Farm address.Address `json:"farm"`
}

// ListReply - every position of a farm
type ListReply struct {
	Positions []*engine.PositionInfo `json:"positions"`
}

// List - the positions of a farm
func (p *Position) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	positions, err := p.Engine.Positions(arguments.Farm)
	if nil != err {
		return err
	}
	reply.Positions = positions
	return nil
}
