// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package compounder

import (
	"math/big"
	"time"

	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/custody"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/farmrecord"
	"github.com/the-basement/basementd/storage"
)

// RewardsBalanceSource - everything harvested into the farm's rewards
// account is accrued
type RewardsBalanceSource struct {
	Custody custody.Custody
}

// Accrued - balance of the rewards account
func (s *RewardsBalanceSource) Accrued(trx storage.Transaction, farmAddress address.Address, farm *farmrecord.Farm, from time.Time, to time.Time) (uint64, error) {
	rewards, err := address.RewardsAddress(farmAddress)
	if nil != err {
		return 0, err
	}
	record, err := s.Custody.Get(trx, rewards)
	if fault.TokenAccountNotFound == err {
		return 0, nil
	}
	if nil != err {
		return 0, err
	}
	return record.Balance, nil
}

// seconds in the year used for annual rates
const secondsPerYear = 365 * 24 * 60 * 60

var rateDivisor = big.NewInt(10000 * secondsPerYear)

// RateSource - accrue each bin's allocation at a fixed annual rate
//
// rates are in basis points per bin type
type RateSource struct {
	Rates map[farmrecord.BinType]uint64
}

// Accrued - sum of allocation * rate * elapsed / (10000 * year), rounded down
func (s *RateSource) Accrued(trx storage.Transaction, farmAddress address.Address, farm *farmrecord.Farm, from time.Time, to time.Time) (uint64, error) {
	if from.IsZero() || !to.After(from) {
		return 0, nil
	}
	elapsed := big.NewInt(int64(to.Sub(from) / time.Second))

	total := new(big.Int)
	for _, bin := range farm.BinAllocations {
		rate := s.Rates[bin.BinType]
		if 0 == rate || 0 == bin.CurrentAllocation {
			continue
		}
		v := new(big.Int).SetUint64(bin.CurrentAllocation)
		v.Mul(v, new(big.Int).SetUint64(rate))
		v.Mul(v, elapsed)
		total.Add(total, v)
	}
	total.Quo(total, rateDivisor)

	if !total.IsUint64() {
		return 0, fault.ArithmeticOverflow
	}
	return total.Uint64(), nil
}
