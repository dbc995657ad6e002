// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"math/big"
	"time"

	"github.com/the-basement/basementd/access"
	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/allocator"
	"github.com/the-basement/basementd/compounder"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/farmrecord"
	"github.com/the-basement/basementd/ledger"
	"github.com/the-basement/basementd/storage"
)

// Initialize - create the farm for a token mint with the default
// allocation table; the caller becomes authority and keeper
func (e *Engine) Initialize(authority *account.Account, mint address.Address, binsCount int) (address.Address, *farmrecord.Farm, error) {
	if nil == authority {
		return address.Zero, nil, fault.MissingParameters
	}
	if mint.IsZero() {
		return address.Zero, nil, fault.InvalidAddress
	}

	farmAddress, bump, err := address.FarmAddress(mint)
	if nil != err {
		return address.Zero, nil, err
	}

	table, err := allocator.DefaultAllocations(binsCount)
	if nil != err {
		return address.Zero, nil, err
	}

	now := e.now()
	farm := &farmrecord.Farm{
		Authority:        authority,
		Keeper:           authority,
		TokenMint:        mint,
		TotalDeposits:    0,
		BinsCount:        uint8(binsCount),
		BinAllocations:   table,
		GrowthIndex:      new(big.Int).Set(farmrecord.GrowthIndexBase),
		LastCompoundTime: now,
		Bump:             bump,
	}

	err = e.run("initialize", []address.Address{farmAddress}, func(trx storage.Transaction) error {
		if trx.Has(storage.Pool.Farms, farmAddress[:]) {
			return fault.FarmAlreadyExists
		}
		return e.storeFarm(trx, farmAddress, farm)
	})
	if nil != err {
		return address.Zero, nil, err
	}

	e.observe(farmAddress, farm)
	e.log.Infof("initialize: farm: %s  mint: %s  bins: %d  authority: %s", farmAddress, mint, binsCount, authority)
	return farmAddress, farm, nil
}

// CreateVault - open the vault and rewards token accounts of a farm
func (e *Engine) CreateVault(caller *account.Account, farmAddress address.Address) (*farmrecord.Farm, error) {
	vault, err := address.VaultAddress(farmAddress)
	if nil != err {
		return nil, err
	}
	rewards, err := address.RewardsAddress(farmAddress)
	if nil != err {
		return nil, err
	}

	var farm *farmrecord.Farm
	err = e.run("createVault", []address.Address{farmAddress, vault, rewards}, func(trx storage.Transaction) error {
		var err error
		farm, err = e.loadFarm(trx, farmAddress)
		if nil != err {
			return err
		}
		err = access.RequireAuthority(farm, caller)
		if nil != err {
			return err
		}
		if farm.HasVault() {
			return fault.VaultAlreadyExists
		}

		err = e.custody.Open(trx, vault, farmAddress, farm.TokenMint)
		if nil != err {
			return err
		}
		err = e.custody.Open(trx, rewards, farmAddress, farm.TokenMint)
		if nil != err {
			return err
		}

		farm.Vault = vault
		return e.storeFarm(trx, farmAddress, farm)
	})
	if nil != err {
		return nil, err
	}

	e.log.Infof("createVault: farm: %s  vault: %s  rewards: %s", farmAddress, vault, rewards)
	return farm, nil
}

// Deposit - move tokens from the caller's token account into the farm
func (e *Engine) Deposit(caller *account.Account, farmAddress address.Address, amount uint64) (*PositionInfo, error) {
	return e.changePosition("deposit", true, caller, farmAddress, amount, e.ledger.Deposit)
}

// Withdraw - return tokens from the farm to the caller's token account
func (e *Engine) Withdraw(caller *account.Account, farmAddress address.Address, amount uint64) (*PositionInfo, error) {
	return e.changePosition("withdraw", false, caller, farmAddress, amount, e.ledger.Withdraw)
}

type positionChange func(trx storage.Transaction, farm *farmrecord.Farm, position *farmrecord.Position, amount uint64, now time.Time) error

func (e *Engine) changePosition(operation string, create bool, caller *account.Account, farmAddress address.Address, amount uint64, change positionChange) (*PositionInfo, error) {
	if nil == caller {
		return nil, fault.MissingParameters
	}
	if 0 == amount {
		return nil, fault.InvalidAmount
	}

	positionAddress, err := address.PositionAddress(caller.PublicKeyBytes(), farmAddress)
	if nil != err {
		return nil, err
	}
	vault, err := address.VaultAddress(farmAddress)
	if nil != err {
		return nil, err
	}

	var farm *farmrecord.Farm
	var position *farmrecord.Position
	var value uint64
	err = e.view([]address.Address{farmAddress}, func(trx storage.Transaction) error {
		var err error
		farm, err = e.loadFarm(trx, farmAddress)
		return err
	})
	if nil != err {
		return nil, err
	}

	// the token account depends on the mint, read above; the mint of a
	// farm never changes
	tokenAccount, err := address.TokenAccountAddress(caller.PublicKeyBytes(), farm.TokenMint)
	if nil != err {
		return nil, err
	}

	now := e.now()
	err = e.run(operation, []address.Address{farmAddress, positionAddress, vault, tokenAccount}, func(trx storage.Transaction) error {
		var err error
		farm, err = e.loadFarm(trx, farmAddress)
		if nil != err {
			return err
		}
		position, err = e.loadPosition(trx, positionAddress)
		if nil != err {
			return err
		}
		if nil == position {
			if !create {
				return fault.InsufficientBalance
			}
			position = ledger.NewPosition(farmAddress, farm, caller)
		}
		err = access.RequireOwner(position, caller)
		if nil != err {
			return err
		}

		err = change(trx, farm, position, amount, now)
		if nil != err {
			return err
		}

		value = position.Amount
		err = e.storePosition(trx, positionAddress, position)
		if nil != err {
			return err
		}
		return e.storeFarm(trx, farmAddress, farm)
	})
	if nil != err {
		return nil, err
	}

	e.observe(farmAddress, farm)
	return &PositionInfo{
		Address:  positionAddress,
		Position: position,
		Value:    value,
	}, nil
}

// Rebalance - move every bin of the farm to its target allocation
func (e *Engine) Rebalance(caller *account.Account, farmAddress address.Address) (*farmrecord.Farm, error) {
	var farm *farmrecord.Farm
	err := e.run("rebalance", []address.Address{farmAddress}, func(trx storage.Transaction) error {
		var err error
		farm, err = e.loadFarm(trx, farmAddress)
		if nil != err {
			return err
		}
		err = access.RequireKeeper(farm, caller)
		if nil != err {
			return err
		}

		previous, err := allocator.Rebalance(farm, e.now())
		if nil != err {
			return err
		}
		e.log.Debugf("rebalance: farm: %s  previous: %v", farmAddress, previous)

		return e.storeFarm(trx, farmAddress, farm)
	})
	if nil != err {
		return nil, err
	}

	e.log.Infof("rebalance: farm: %s  total: %d", farmAddress, farm.TotalDeposits)
	return farm, nil
}

// CompoundRewards - fold the accrual since the last compound into the
// farm deposits
func (e *Engine) CompoundRewards(caller *account.Account, farmAddress address.Address) (*compounder.Result, error) {
	vault, err := address.VaultAddress(farmAddress)
	if nil != err {
		return nil, err
	}
	rewards, err := address.RewardsAddress(farmAddress)
	if nil != err {
		return nil, err
	}

	var farm *farmrecord.Farm
	var result *compounder.Result
	err = e.run("compoundRewards", []address.Address{farmAddress, vault, rewards}, func(trx storage.Transaction) error {
		var err error
		farm, err = e.loadFarm(trx, farmAddress)
		if nil != err {
			return err
		}
		err = access.RequireKeeper(farm, caller)
		if nil != err {
			return err
		}

		result, err = e.compounder.Compound(trx, farmAddress, farm, e.now())
		if nil != err {
			return err
		}
		return e.storeFarm(trx, farmAddress, farm)
	})
	if nil != err {
		return nil, err
	}

	e.observe(farmAddress, farm)
	e.metrics.accrued.WithLabelValues(farmAddress.String()).Add(float64(result.Accrued))
	return result, nil
}

// Harvest - keeper moves yield collected by the bins from its own token
// account into the farm rewards account
func (e *Engine) Harvest(caller *account.Account, farmAddress address.Address, amount uint64) error {
	if nil == caller {
		return fault.MissingParameters
	}
	if 0 == amount {
		return fault.InvalidAmount
	}
	rewards, err := address.RewardsAddress(farmAddress)
	if nil != err {
		return err
	}

	var mint address.Address
	err = e.view([]address.Address{farmAddress}, func(trx storage.Transaction) error {
		farm, err := e.loadFarm(trx, farmAddress)
		if nil != err {
			return err
		}
		mint = farm.TokenMint
		return nil
	})
	if nil != err {
		return err
	}
	tokenAccount, err := address.TokenAccountAddress(caller.PublicKeyBytes(), mint)
	if nil != err {
		return err
	}

	return e.run("harvest", []address.Address{farmAddress, rewards, tokenAccount}, func(trx storage.Transaction) error {
		farm, err := e.loadFarm(trx, farmAddress)
		if nil != err {
			return err
		}
		err = access.RequireKeeper(farm, caller)
		if nil != err {
			return err
		}
		if !farm.HasVault() {
			return fault.VaultNotInitialized
		}
		return e.custody.Transfer(trx, tokenAccount, rewards, farm.TokenMint, amount)
	})
}

// SetKeeper - authority names the identity allowed to rebalance and compound
func (e *Engine) SetKeeper(caller *account.Account, farmAddress address.Address, keeper *account.Account) error {
	if nil == keeper {
		return fault.MissingParameters
	}
	return e.run("setKeeper", []address.Address{farmAddress}, func(trx storage.Transaction) error {
		farm, err := e.loadFarm(trx, farmAddress)
		if nil != err {
			return err
		}
		err = access.RequireAuthority(farm, caller)
		if nil != err {
			return err
		}
		farm.Keeper = keeper
		e.log.Infof("setKeeper: farm: %s  keeper: %s", farmAddress, keeper)
		return e.storeFarm(trx, farmAddress, farm)
	})
}

// SetAllocations - authority replaces the allocation table
func (e *Engine) SetAllocations(caller *account.Account, farmAddress address.Address, table []farmrecord.BinAllocation) error {
	return e.run("setAllocations", []address.Address{farmAddress}, func(trx storage.Transaction) error {
		farm, err := e.loadFarm(trx, farmAddress)
		if nil != err {
			return err
		}
		err = access.RequireAuthority(farm, caller)
		if nil != err {
			return err
		}
		err = allocator.SetAllocations(farm, table)
		if nil != err {
			return err
		}
		return e.storeFarm(trx, farmAddress, farm)
	})
}

// MintTo - create test tokens in an owner's token account
func (e *Engine) MintTo(owner *account.Account, mint address.Address, amount uint64) (uint64, error) {
	if !e.testing {
		return 0, fault.NotTestingChain
	}
	if nil == owner {
		return 0, fault.MissingParameters
	}
	if mint.IsZero() {
		return 0, fault.InvalidAddress
	}

	ownerAddress, err := address.FromBytes(owner.PublicKeyBytes())
	if nil != err {
		return 0, err
	}
	tokenAccount, err := address.TokenAccountAddress(owner.PublicKeyBytes(), mint)
	if nil != err {
		return 0, err
	}

	balance := uint64(0)
	err = e.run("mintTo", []address.Address{tokenAccount}, func(trx storage.Transaction) error {
		err := e.custody.Mint(trx, tokenAccount, ownerAddress, mint, amount)
		if nil != err {
			return err
		}
		record, err := e.custody.Get(trx, tokenAccount)
		if nil != err {
			return err
		}
		balance = record.Balance
		return nil
	})
	return balance, err
}
