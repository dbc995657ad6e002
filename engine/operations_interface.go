// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/compounder"
	"github.com/the-basement/basementd/farmrecord"
)

// Operations - the engine as seen by the RPC services and the keeper
type Operations interface {
	Initialize(authority *account.Account, mint address.Address, binsCount int) (address.Address, *farmrecord.Farm, error)
	CreateVault(caller *account.Account, farmAddress address.Address) (*farmrecord.Farm, error)
	Deposit(caller *account.Account, farmAddress address.Address, amount uint64) (*PositionInfo, error)
	Withdraw(caller *account.Account, farmAddress address.Address, amount uint64) (*PositionInfo, error)
	Rebalance(caller *account.Account, farmAddress address.Address) (*farmrecord.Farm, error)
	CompoundRewards(caller *account.Account, farmAddress address.Address) (*compounder.Result, error)
	Harvest(caller *account.Account, farmAddress address.Address, amount uint64) error
	SetKeeper(caller *account.Account, farmAddress address.Address, keeper *account.Account) error
	SetAllocations(caller *account.Account, farmAddress address.Address, table []farmrecord.BinAllocation) error
	MintTo(owner *account.Account, mint address.Address, amount uint64) (uint64, error)

	Farm(farmAddress address.Address) (*FarmInfo, error)
	Position(owner *account.Account, farmAddress address.Address) (*PositionInfo, error)
	Positions(farmAddress address.Address) ([]*PositionInfo, error)
	TokenBalance(owner []byte, mint address.Address) (uint64, error)
	VaultBalance(farmAddress address.Address) (uint64, error)
	RewardsBalance(farmAddress address.Address) (uint64, error)
	Audit(farmAddress address.Address) (*AuditReport, error)
	IsTesting() bool
}

var _ Operations = (*Engine)(nil)
