// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package farm

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/compounder"
	"github.com/the-basement/basementd/engine"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/rpc/envelope"
	"github.com/the-basement/basementd/rpc/ratelimit"
)

const (
	rateLimitFarm = 100
	rateBurstFarm = 50
)

// Farm - type for the RPC
type Farm struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  engine.Operations
	Guard   *envelope.ReplayGuard
	Clock   func() time.Time
}

// New - create the farm RPC service
func New(log *logger.L, ops engine.Operations, guard *envelope.ReplayGuard) *Farm {
	return &Farm{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitFarm, rateBurstFarm),
		Engine:  ops,
		Guard:   guard,
		Clock:   time.Now,
	}
}

// InstructionArguments - a signed instruction
type InstructionArguments struct {
	Envelope *envelope.Envelope `json:"envelope"`
}

// FarmReply - the farm after an instruction
type FarmReply struct {
	Farm *engine.FarmInfo `json:"farm"`
}

func (f *Farm) accept(arguments *InstructionArguments, tag envelope.Tag) error {
	if err := ratelimit.Limit(f.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	return f.Guard.Accept(arguments.Envelope, tag, f.Clock())
}

// reply with the stored farm
func (f *Farm) fill(farmAddress address.Address, reply *FarmReply) error {
	info, err := f.Engine.Farm(farmAddress)
	if nil != err {
		return err
	}
	reply.Farm = info
	return nil
}

// Initialize - create a farm; the envelope farm field is the token mint
// and the amount is the number of bins
func (f *Farm) Initialize(arguments *InstructionArguments, reply *FarmReply) error {
	if err := f.accept(arguments, envelope.InitializeTag); nil != err {
		return err
	}
	e := arguments.Envelope
	if e.Amount > 255 {
		return fault.InvalidBinsCount
	}

	f.Log.Infof("Farm.Initialize: mint: %s  bins: %d  signer: %s", e.Farm, e.Amount, e.Signer)

	farmAddress, _, err := f.Engine.Initialize(e.Signer, e.Farm, int(e.Amount))
	if nil != err {
		return err
	}
	return f.fill(farmAddress, reply)
}

// CreateVault - open the farm vault
func (f *Farm) CreateVault(arguments *InstructionArguments, reply *FarmReply) error {
	if err := f.accept(arguments, envelope.CreateVaultTag); nil != err {
		return err
	}
	e := arguments.Envelope

	_, err := f.Engine.CreateVault(e.Signer, e.Farm)
	if nil != err {
		return err
	}
	return f.fill(e.Farm, reply)
}

// Rebalance - keeper moves bins to their targets
func (f *Farm) Rebalance(arguments *InstructionArguments, reply *FarmReply) error {
	if err := f.accept(arguments, envelope.RebalanceTag); nil != err {
		return err
	}
	e := arguments.Envelope

	_, err := f.Engine.Rebalance(e.Signer, e.Farm)
	if nil != err {
		return err
	}
	return f.fill(e.Farm, reply)
}

// CompoundReply - result of compounding
type CompoundReply struct {
	Accrued       uint64 `json:"accrued,string"`
	TotalDeposits uint64 `json:"totalDeposits,string"`
	GrowthIndex   string `json:"growthIndex"`
}

// Compound - keeper folds the accrual into the farm
func (f *Farm) Compound(arguments *InstructionArguments, reply *CompoundReply) error {
	if err := f.accept(arguments, envelope.CompoundTag); nil != err {
		return err
	}
	e := arguments.Envelope

	result, err := f.Engine.CompoundRewards(e.Signer, e.Farm)
	if nil != err {
		return err
	}
	fillCompound(result, reply)
	return nil
}

func fillCompound(result *compounder.Result, reply *CompoundReply) {
	reply.Accrued = result.Accrued
	reply.TotalDeposits = result.TotalDeposits
	reply.GrowthIndex = result.GrowthIndex.String()
}

// Harvest - keeper pays collected yield into the rewards account
func (f *Farm) Harvest(arguments *InstructionArguments, reply *FarmReply) error {
	if err := f.accept(arguments, envelope.HarvestTag); nil != err {
		return err
	}
	e := arguments.Envelope

	err := f.Engine.Harvest(e.Signer, e.Farm, e.Amount)
	if nil != err {
		return err
	}
	return f.fill(e.Farm, reply)
}

// SetKeeper - authority names a new keeper; the argument is the keeper
// account bytes
func (f *Farm) SetKeeper(arguments *InstructionArguments, reply *FarmReply) error {
	if err := f.accept(arguments, envelope.SetKeeperTag); nil != err {
		return err
	}
	e := arguments.Envelope

	keeper, err := account.AccountFromBytes(e.Argument)
	if nil != err {
		return err
	}
	err = f.Engine.SetKeeper(e.Signer, e.Farm, keeper)
	if nil != err {
		return err
	}
	return f.fill(e.Farm, reply)
}

// SetAllocations - authority replaces the allocation table
func (f *Farm) SetAllocations(arguments *InstructionArguments, reply *FarmReply) error {
	if err := f.accept(arguments, envelope.SetAllocationsTag); nil != err {
		return err
	}
	e := arguments.Envelope

	table, err := envelope.UnpackAllocations(e.Argument)
	if nil != err {
		return err
	}
	err = f.Engine.SetAllocations(e.Signer, e.Farm, table)
	if nil != err {
		return err
	}
	return f.fill(e.Farm, reply)
}

// ---

// GetArguments - identify a farm
type GetArguments struct {
	Farm address.Address `json:"farm"`
}

// GetReply - farm with its balances
type GetReply struct {
	Farm    *engine.FarmInfo `json:"farm"`
	Vault   uint64           `json:"vault,string"`
	Rewards uint64           `json:"rewards,string"`
}

// Get - read a farm
func (f *Farm) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(f.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	info, err := f.Engine.Farm(arguments.Farm)
	if nil != err {
		return err
	}
	vault, err := f.Engine.VaultBalance(arguments.Farm)
	if nil != err {
		return err
	}
	rewards, err := f.Engine.RewardsBalance(arguments.Farm)
	if nil != err {
		return err
	}

	reply.Farm = info
	reply.Vault = vault
	reply.Rewards = rewards
	return nil
}

// Audit - recompute farm totals
func (f *Farm) Audit(arguments *GetArguments, reply *engine.AuditReport) error {
	if err := ratelimit.Limit(f.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	report, err := f.Engine.Audit(arguments.Farm)
	if nil != err {
		return err
	}
	*reply = *report
	return nil
}
