// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package compounder - fold accrued yield into a farm's deposits
//
// positions are not rewritten: the farm growth index scales every
// position value in proportion to the increase in total deposits
package compounder

import (
	"math/big"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/custody"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/farmrecord"
	"github.com/the-basement/basementd/storage"
)

// Source - yield accrued by a farm's bins in the window (from, to]
type Source interface {
	Accrued(trx storage.Transaction, farmAddress address.Address, farm *farmrecord.Farm, from time.Time, to time.Time) (uint64, error)
}

// Compounder - moves accrued rewards into the vault
type Compounder struct {
	log     *logger.L
	custody custody.Custody
	source  Source
}

// Result - what a compound call did
type Result struct {
	Accrued       uint64
	TotalDeposits uint64
	GrowthIndex   *big.Int
}

// New - create a compounder over an accrual source
func New(log *logger.L, c custody.Custody, source Source) *Compounder {
	return &Compounder{
		log:     log,
		custody: c,
		source:  source,
	}
}

// Compound - add the accrual since the last compound to total deposits
//
// a farm with no deposits is left untouched and its accrual is not
// consumed; the accrual window restarts at the next deposit
func (c *Compounder) Compound(trx storage.Transaction, farmAddress address.Address, farm *farmrecord.Farm, now time.Time) (*Result, error) {
	if !farm.HasVault() {
		return nil, fault.VaultNotInitialized
	}

	result := &Result{
		TotalDeposits: farm.TotalDeposits,
		GrowthIndex:   new(big.Int).Set(farm.GrowthIndex),
	}

	if 0 == farm.TotalDeposits {
		c.log.Debugf("compound: farm: %s  no deposits", farmAddress)
		return result, nil
	}

	accrued, err := c.source.Accrued(trx, farmAddress, farm, farm.LastCompoundTime, now)
	if nil != err {
		return nil, err
	}

	if 0 == accrued {
		farm.LastCompoundTime = now
		return result, nil
	}

	total := farm.TotalDeposits + accrued
	if total < farm.TotalDeposits {
		return nil, fault.ArithmeticOverflow
	}

	rewards, err := address.RewardsAddress(farmAddress)
	if nil != err {
		return nil, err
	}
	err = c.custody.Transfer(trx, rewards, farm.Vault, farm.TokenMint, accrued)
	switch err {
	case nil:
	case fault.InsufficientBalance, fault.TokenAccountNotFound:
		return nil, fault.InsufficientRewards
	default:
		return nil, err
	}

	farm.GrowthIndex = Grow(farm.GrowthIndex, farm.TotalDeposits, total)
	farm.TotalDeposits = total
	farm.LastCompoundTime = now

	result.Accrued = accrued
	result.TotalDeposits = total
	result.GrowthIndex = new(big.Int).Set(farm.GrowthIndex)

	c.log.Infof("compound: farm: %s  accrued: %d  total: %d  index: %s", farmAddress, accrued, total, farm.GrowthIndex)
	return result, nil
}

// Grow - index * after / before, rounded down
func Grow(index *big.Int, before uint64, after uint64) *big.Int {
	g := new(big.Int).Mul(index, new(big.Int).SetUint64(after))
	return g.Quo(g, new(big.Int).SetUint64(before))
}
