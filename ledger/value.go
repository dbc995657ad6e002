// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math/big"

	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/farmrecord"
)

var maxUint64 = new(big.Int).SetUint64(^uint64(0))

// Value - the current worth of a position, rounded down
//
//   value = amount * growthIndex / growthSnapshot
func Value(farm *farmrecord.Farm, position *farmrecord.Position) (uint64, error) {
	if nil == position || 0 == position.Amount {
		return 0, nil
	}
	if nil == farm.GrowthIndex || nil == position.GrowthSnapshot || position.GrowthSnapshot.Sign() <= 0 {
		return 0, fault.MissingParameters
	}

	if 0 == farm.GrowthIndex.Cmp(position.GrowthSnapshot) {
		return position.Amount, nil
	}

	v := new(big.Int).SetUint64(position.Amount)
	v.Mul(v, farm.GrowthIndex)
	v.Quo(v, position.GrowthSnapshot)
	if v.Cmp(maxUint64) > 0 {
		return 0, fault.ArithmeticOverflow
	}
	return v.Uint64(), nil
}

// Settle - rewrite a position at the current growth index
//
// afterwards Amount is the position value and no accrual is pending
func Settle(farm *farmrecord.Farm, position *farmrecord.Position) error {
	value, err := Value(farm, position)
	if nil != err {
		return err
	}
	position.Amount = value
	position.GrowthSnapshot = new(big.Int).Set(farm.GrowthIndex)
	return nil
}
