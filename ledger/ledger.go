// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - deposit and withdraw accounting
//
// operations mutate the farm and position passed in and move tokens
// through custody in the caller's transaction; the caller stores the
// records and commits, or aborts on any error
package ledger

import (
	"math/big"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/custody"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/farmrecord"
	"github.com/the-basement/basementd/storage"
)

// Ledger - deposit/withdraw against a farm vault
type Ledger struct {
	log     *logger.L
	custody custody.Custody
}

// New - create a ledger using the given custody primitives
func New(log *logger.L, c custody.Custody) *Ledger {
	return &Ledger{
		log:     log,
		custody: c,
	}
}

// NewPosition - the empty position of owner in a farm
func NewPosition(farmAddress address.Address, farm *farmrecord.Farm, owner *account.Account) *farmrecord.Position {
	return &farmrecord.Position{
		Owner:          owner,
		Farm:           farmAddress,
		Amount:         0,
		GrowthSnapshot: new(big.Int).Set(farm.GrowthIndex),
	}
}

// Deposit - move amount from the owner's token account into the vault
// and credit the position
func (l *Ledger) Deposit(trx storage.Transaction, farm *farmrecord.Farm, position *farmrecord.Position, amount uint64, now time.Time) error {
	if 0 == amount {
		return fault.InvalidAmount
	}
	if !farm.HasVault() {
		return fault.VaultNotInitialized
	}

	value, err := Value(farm, position)
	if nil != err {
		return err
	}
	if value+amount < value || farm.TotalDeposits+amount < farm.TotalDeposits {
		return fault.ArithmeticOverflow
	}

	ownerTokenAccount, err := address.TokenAccountAddress(position.Owner.PublicKeyBytes(), farm.TokenMint)
	if nil != err {
		return err
	}
	err = l.custody.Transfer(trx, ownerTokenAccount, farm.Vault, farm.TokenMint, amount)
	if nil != err {
		return err
	}

	// nothing accrues while the farm is empty
	if 0 == farm.TotalDeposits {
		farm.LastCompoundTime = now
	}

	position.Amount = value + amount
	position.GrowthSnapshot = new(big.Int).Set(farm.GrowthIndex)
	position.LastUpdateTime = now
	farm.TotalDeposits += amount

	l.log.Debugf("deposit: %d  owner: %s  value: %d  total: %d", amount, position.Owner, position.Amount, farm.TotalDeposits)
	return nil
}

// Withdraw - move amount from the vault to the owner's token account
// and debit the position
//
// funds come from the unallocated part of the vault first, then from
// the bins in reverse table order
func (l *Ledger) Withdraw(trx storage.Transaction, farm *farmrecord.Farm, position *farmrecord.Position, amount uint64, now time.Time) error {
	if 0 == amount {
		return fault.InvalidAmount
	}
	if !farm.HasVault() {
		return fault.VaultNotInitialized
	}
	if nil == position {
		return fault.InsufficientBalance
	}

	value, err := Value(farm, position)
	if nil != err {
		return err
	}
	if amount > value || amount > farm.TotalDeposits {
		return fault.InsufficientBalance
	}

	ownerKey := position.Owner.PublicKeyBytes()
	ownerTokenAccount, err := address.TokenAccountAddress(ownerKey, farm.TokenMint)
	if nil != err {
		return err
	}
	owner, err := address.FromBytes(ownerKey)
	if nil != err {
		return err
	}
	err = l.custody.Open(trx, ownerTokenAccount, owner, farm.TokenMint)
	if nil != err {
		return err
	}
	err = l.custody.Transfer(trx, farm.Vault, ownerTokenAccount, farm.TokenMint, amount)
	if nil != err {
		return err
	}

	drawDown(farm, amount)

	position.Amount = value - amount
	position.GrowthSnapshot = new(big.Int).Set(farm.GrowthIndex)
	position.LastUpdateTime = now
	farm.TotalDeposits -= amount

	l.log.Debugf("withdraw: %d  owner: %s  value: %d  total: %d", amount, position.Owner, position.Amount, farm.TotalDeposits)
	return nil
}

// reduce bin allocations so they still fit inside the deposits
// remaining after amount leaves the vault
func drawDown(farm *farmrecord.Farm, amount uint64) {
	unallocated := farm.Unallocated()
	if amount <= unallocated {
		return
	}
	remaining := amount - unallocated

	for i := len(farm.BinAllocations) - 1; i >= 0 && remaining > 0; i -= 1 {
		bin := &farm.BinAllocations[i]
		take := bin.CurrentAllocation
		if take > remaining {
			take = remaining
		}
		bin.CurrentAllocation -= take
		remaining -= take
	}
}
