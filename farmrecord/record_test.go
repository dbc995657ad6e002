// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package farmrecord_test

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/farmrecord"
	"github.com/the-basement/basementd/fault"
)

func makeAccount(b byte) *account.Account {
	return &account.Account{
		Test:      true,
		PublicKey: bytes.Repeat([]byte{b}, 32),
	}
}

func makeAddress(b byte) address.Address {
	a := address.Address{}
	for i := range a {
		a[i] = b
	}
	return a
}

func sampleFarm() *farmrecord.Farm {
	return &farmrecord.Farm{
		Authority:     makeAccount(1),
		Keeper:        makeAccount(2),
		TokenMint:     makeAddress(3),
		Vault:         makeAddress(4),
		TotalDeposits: 100000000000,
		BinsCount:     3,
		BinAllocations: []farmrecord.BinAllocation{
			{BinType: farmrecord.Large, AllocationPercentage: 80, CurrentAllocation: 80000000000, StepSize: 657, BinCount: 20},
			{BinType: farmrecord.Medium, AllocationPercentage: 10, CurrentAllocation: 10000000000, StepSize: 135, BinCount: 4},
			{BinType: farmrecord.Small, AllocationPercentage: 10, CurrentAllocation: 10000000000, StepSize: 34, BinCount: 1},
		},
		GrowthIndex:       new(big.Int).Set(farmrecord.GrowthIndexBase),
		LastRebalanceTime: time.Unix(1700000000, 0).UTC(),
		Bump:              254,
	}
}

func TestFarmPackUnpack(t *testing.T) {
	farm := sampleFarm()

	packed, err := farm.Pack()
	assert.Nil(t, err, "pack")

	unpacked, err := farmrecord.UnpackFarm(packed)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, farm, unpacked, "round trip")
	assert.True(t, unpacked.LastCompoundTime.IsZero(), "zero time preserved")
	assert.Equal(t, uint64(0), unpacked.Unallocated(), "fully allocated")
}

func TestPositionPackUnpack(t *testing.T) {
	position := &farmrecord.Position{
		Owner:          makeAccount(5),
		Farm:           makeAddress(6),
		Amount:         50000000000,
		GrowthSnapshot: new(big.Int).Mul(farmrecord.GrowthIndexBase, big.NewInt(3)),
		LastUpdateTime: time.Unix(1700000100, 0).UTC(),
	}

	packed, err := position.Pack()
	assert.Nil(t, err, "pack")

	unpacked, err := farmrecord.UnpackPosition(packed)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, position, unpacked, "round trip")

	_, err = farmrecord.UnpackFarm(packed)
	assert.Equal(t, fault.NotAFarmRecord, err, "wrong record type")
}

func TestTokenAccountPackUnpack(t *testing.T) {
	tokenAccount := &farmrecord.TokenAccount{
		Owner:   makeAddress(7),
		Mint:    makeAddress(8),
		Balance: 12345,
	}

	packed, err := tokenAccount.Pack()
	assert.Nil(t, err, "pack")

	unpacked, err := farmrecord.UnpackTokenAccount(packed)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, tokenAccount, unpacked, "round trip")

	_, err = farmrecord.UnpackPosition(packed)
	assert.Equal(t, fault.NotAPositionRecord, err, "wrong record type")
}

func TestUnpackErrors(t *testing.T) {
	packed, err := sampleFarm().Pack()
	assert.Nil(t, err, "pack")

	for cut := 0; cut < len(packed); cut += 1 {
		_, err := farmrecord.UnpackFarm(packed[:cut])
		assert.NotNil(t, err, "truncated at %d", cut)
	}

	_, err = farmrecord.UnpackFarm(append(packed, 0x00))
	assert.Equal(t, fault.RecordHasTrailingData, err, "trailing data")

	_, err = farmrecord.UnpackFarm([]byte{0x7f})
	assert.Equal(t, fault.UnknownRecordType, err, "unknown tag")
}

func TestPackRequiresFields(t *testing.T) {
	farm := sampleFarm()
	farm.Keeper = nil
	_, err := farm.Pack()
	assert.Equal(t, fault.MissingParameters, err, "no keeper")

	farm = sampleFarm()
	farm.BinAllocations[1].BinType = farmrecord.BinType(9)
	_, err = farm.Pack()
	assert.Equal(t, fault.InvalidBinType, err, "bad bin type")

	position := &farmrecord.Position{Owner: makeAccount(1)}
	_, err = position.Pack()
	assert.Equal(t, fault.MissingParameters, err, "no snapshot")
}

func TestCloneIsDeep(t *testing.T) {
	farm := sampleFarm()
	c := farm.Clone()
	c.BinAllocations[0].CurrentAllocation = 0
	c.GrowthIndex.Add(c.GrowthIndex, big.NewInt(1))

	assert.Equal(t, uint64(80000000000), farm.BinAllocations[0].CurrentAllocation, "bins not shared")
	assert.Equal(t, 0, farm.GrowthIndex.Cmp(farmrecord.GrowthIndexBase), "index not shared")
	assert.Equal(t, uint64(80000000000), c.Unallocated(), "clone unallocated")
}

func TestBinTypeText(t *testing.T) {
	bt, err := farmrecord.BinTypeFromString("Medium")
	assert.Nil(t, err, "parse")
	assert.Equal(t, farmrecord.Medium, bt, "medium")

	_, err = farmrecord.BinTypeFromString("huge")
	assert.Equal(t, fault.InvalidBinType, err, "unknown name")

	buffer, err := json.Marshal(farmrecord.BinAllocation{BinType: farmrecord.Small, AllocationPercentage: 10})
	assert.Nil(t, err, "marshal")
	assert.Contains(t, string(buffer), `"binType":"small"`, "bin type name")

	var decoded farmrecord.BinAllocation
	assert.Nil(t, json.Unmarshal(buffer, &decoded), "unmarshal")
	assert.Equal(t, farmrecord.Small, decoded.BinType, "decoded type")
}
