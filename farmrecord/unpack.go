// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package farmrecord

import (
	"math/big"
	"time"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/util"
)

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//   switch r := result.(type) {
//   case *farmrecord.Farm:
func (record Packed) Unpack() (r interface{}, n int, e error) {

	// slicing beyond the end of a truncated record panics
	defer func() {
		if p := recover(); nil != p {
			r = nil
			n = 0
			e = fault.RecordTruncated
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.RecordTruncated
	}

	switch TagType(recordType) {

	case FarmTag:
		farm := &Farm{}
		var err error

		farm.Authority, n, err = readAccount(record, n)
		if nil != err {
			return nil, 0, err
		}
		farm.Keeper, n, err = readAccount(record, n)
		if nil != err {
			return nil, 0, err
		}
		farm.TokenMint, n = readAddress(record, n)
		farm.Vault, n = readAddress(record, n)

		farm.TotalDeposits, n, err = readUint64(record, n)
		if nil != err {
			return nil, 0, err
		}

		var binsCount, allocationCount uint64
		binsCount, n, err = readUint64(record, n)
		if nil != err {
			return nil, 0, err
		}
		farm.BinsCount = uint8(binsCount)

		allocationCount, n, err = readUint64(record, n)
		if nil != err {
			return nil, 0, err
		}
		if allocationCount > maxBinAllocations {
			return nil, 0, fault.InvalidBinsCount
		}

		farm.BinAllocations = make([]BinAllocation, allocationCount)
		for i := range farm.BinAllocations {
			fields := [5]uint64{}
			for j := range fields {
				fields[j], n, err = readUint64(record, n)
				if nil != err {
					return nil, 0, err
				}
			}
			binType := BinType(fields[0])
			if !binType.IsValid() {
				return nil, 0, fault.InvalidBinType
			}
			farm.BinAllocations[i] = BinAllocation{
				BinType:              binType,
				AllocationPercentage: uint8(fields[1]),
				CurrentAllocation:    fields[2],
				StepSize:             uint16(fields[3]),
				BinCount:             uint8(fields[4]),
			}
		}

		farm.GrowthIndex, n, err = readBigInt(record, n)
		if nil != err {
			return nil, 0, err
		}
		farm.LastRebalanceTime, n, err = readTime(record, n)
		if nil != err {
			return nil, 0, err
		}
		farm.LastCompoundTime, n, err = readTime(record, n)
		if nil != err {
			return nil, 0, err
		}

		farm.Bump = record[n]
		n += 1
		return farm, n, nil

	case PositionTag:
		position := &Position{}
		var err error

		position.Owner, n, err = readAccount(record, n)
		if nil != err {
			return nil, 0, err
		}
		position.Farm, n = readAddress(record, n)

		position.Amount, n, err = readUint64(record, n)
		if nil != err {
			return nil, 0, err
		}
		position.GrowthSnapshot, n, err = readBigInt(record, n)
		if nil != err {
			return nil, 0, err
		}
		position.LastUpdateTime, n, err = readTime(record, n)
		if nil != err {
			return nil, 0, err
		}
		return position, n, nil

	case TokenAccountTag:
		tokenAccount := &TokenAccount{}
		var err error

		tokenAccount.Owner, n = readAddress(record, n)
		tokenAccount.Mint, n = readAddress(record, n)
		tokenAccount.Balance, n, err = readUint64(record, n)
		if nil != err {
			return nil, 0, err
		}
		return tokenAccount, n, nil

	default:
	}
	return nil, 0, fault.UnknownRecordType
}

// UnpackFarm - a complete farm record with no trailing bytes
func UnpackFarm(record []byte) (*Farm, error) {
	r, err := unpackExact(record)
	if nil != err {
		return nil, err
	}
	farm, ok := r.(*Farm)
	if !ok {
		return nil, fault.NotAFarmRecord
	}
	return farm, nil
}

// UnpackPosition - a complete position record with no trailing bytes
func UnpackPosition(record []byte) (*Position, error) {
	r, err := unpackExact(record)
	if nil != err {
		return nil, err
	}
	position, ok := r.(*Position)
	if !ok {
		return nil, fault.NotAPositionRecord
	}
	return position, nil
}

// UnpackTokenAccount - a complete token account record with no trailing bytes
func UnpackTokenAccount(record []byte) (*TokenAccount, error) {
	r, err := unpackExact(record)
	if nil != err {
		return nil, err
	}
	tokenAccount, ok := r.(*TokenAccount)
	if !ok {
		return nil, fault.NotATokenAccountRecord
	}
	return tokenAccount, nil
}

func unpackExact(record []byte) (interface{}, error) {
	r, n, err := Packed(record).Unpack()
	if nil != err {
		return nil, err
	}
	if n != len(record) {
		return nil, fault.RecordHasTrailingData
	}
	return r, nil
}

func readUint64(record []byte, n int) (uint64, int, error) {
	value, length := util.FromVarint64(record[n:])
	if 0 == length {
		return 0, 0, fault.RecordTruncated
	}
	return value, n + length, nil
}

func readAccount(record []byte, n int) (*account.Account, int, error) {
	length, offset := util.ClippedVarint64(record[n:], 1, maxAccountLength)
	if 0 == offset {
		return nil, 0, fault.RecordTruncated
	}
	n += offset
	a, err := account.AccountFromBytes(record[n : n+length])
	if nil != err {
		return nil, 0, err
	}
	return a, n + length, nil
}

func readAddress(record []byte, n int) (address.Address, int) {
	a := address.Address{}
	copy(a[:], record[n:n+address.Length])
	return a, n + address.Length
}

func readBigInt(record []byte, n int) (*big.Int, int, error) {
	length, offset := util.ClippedVarint64(record[n:], 1, maxIndexLength)
	if 0 == offset {
		return nil, 0, fault.RecordTruncated
	}
	n += offset
	value := new(big.Int).SetBytes(record[n : n+length])
	return value, n + length, nil
}

func readTime(record []byte, n int) (time.Time, int, error) {
	seconds, n, err := readUint64(record, n)
	if nil != err {
		return time.Time{}, 0, err
	}
	if 0 == seconds {
		return time.Time{}, n, nil
	}
	return time.Unix(int64(seconds), 0).UTC(), n, nil
}
