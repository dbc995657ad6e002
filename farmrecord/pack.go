// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package farmrecord

import (
	"time"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/util"
)

// Pack - farm record
func (farm *Farm) Pack() (Packed, error) {
	if nil == farm.Authority || nil == farm.Keeper {
		return nil, fault.MissingParameters
	}
	if nil == farm.GrowthIndex || farm.GrowthIndex.Sign() <= 0 {
		return nil, fault.MissingParameters
	}
	if len(farm.BinAllocations) > maxBinAllocations {
		return nil, fault.InvalidBinsCount
	}

	record := appendUint64(nil, uint64(FarmTag))
	record = appendAccount(record, farm.Authority)
	record = appendAccount(record, farm.Keeper)
	record = append(record, farm.TokenMint[:]...)
	record = append(record, farm.Vault[:]...)
	record = appendUint64(record, farm.TotalDeposits)
	record = appendUint64(record, uint64(farm.BinsCount))

	record = appendUint64(record, uint64(len(farm.BinAllocations)))
	for _, bin := range farm.BinAllocations {
		if !bin.BinType.IsValid() {
			return nil, fault.InvalidBinType
		}
		record = appendUint64(record, uint64(bin.BinType))
		record = appendUint64(record, uint64(bin.AllocationPercentage))
		record = appendUint64(record, bin.CurrentAllocation)
		record = appendUint64(record, uint64(bin.StepSize))
		record = appendUint64(record, uint64(bin.BinCount))
	}

	record = appendBytes(record, farm.GrowthIndex.Bytes())
	record = appendTime(record, farm.LastRebalanceTime)
	record = appendTime(record, farm.LastCompoundTime)
	record = append(record, farm.Bump)
	return record, nil
}

// Pack - position record
func (position *Position) Pack() (Packed, error) {
	if nil == position.Owner {
		return nil, fault.MissingParameters
	}
	if nil == position.GrowthSnapshot || position.GrowthSnapshot.Sign() <= 0 {
		return nil, fault.MissingParameters
	}

	record := appendUint64(nil, uint64(PositionTag))
	record = appendAccount(record, position.Owner)
	record = append(record, position.Farm[:]...)
	record = appendUint64(record, position.Amount)
	record = appendBytes(record, position.GrowthSnapshot.Bytes())
	record = appendTime(record, position.LastUpdateTime)
	return record, nil
}

// Pack - token account record
func (tokenAccount *TokenAccount) Pack() (Packed, error) {
	record := appendUint64(nil, uint64(TokenAccountTag))
	record = append(record, tokenAccount.Owner[:]...)
	record = append(record, tokenAccount.Mint[:]...)
	record = appendUint64(record, tokenAccount.Balance)
	return record, nil
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, a *account.Account) Packed {
	return appendBytes(buffer, a.Bytes())
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := util.ToVarint64(value)
	buffer = append(buffer, valueBytes...)
	return buffer
}

// append a time as Varint64 unix seconds, zero time is stored as 0
func appendTime(buffer Packed, t time.Time) Packed {
	if t.IsZero() {
		return appendUint64(buffer, 0)
	}
	return appendUint64(buffer, uint64(t.Unix()))
}
