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
)

// TagType - type code for stored records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	FarmTag         = TagType(iota) // farm configuration and totals
	PositionTag     = TagType(iota) // one depositor's claim on a farm
	TokenAccountTag = TagType(iota) // custody balance

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// GrowthIndexBase - the growth index of a farm that has never compounded
var GrowthIndexBase = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// byte sizes for various fields
const (
	maxAccountLength  = 64
	maxIndexLength    = 64
	maxBinAllocations = 3
)

// Farm - one per token mint
type Farm struct {
	Authority         *account.Account `json:"authority"`
	Keeper            *account.Account `json:"keeper"`
	TokenMint         address.Address  `json:"tokenMint"`
	Vault             address.Address  `json:"vault"`
	TotalDeposits     uint64           `json:"totalDeposits,string"`
	BinsCount         uint8            `json:"binsCount"`
	BinAllocations    []BinAllocation  `json:"binAllocations"`
	GrowthIndex       *big.Int         `json:"growthIndex"`
	LastRebalanceTime time.Time        `json:"lastRebalanceTime"`
	LastCompoundTime  time.Time        `json:"lastCompoundTime"`
	Bump              byte             `json:"bump"`
}

// Position - a depositor's claim on one farm
//
// Amount is the value at GrowthSnapshot; the current value scales
// with the farm growth index
type Position struct {
	Owner          *account.Account `json:"owner"`
	Farm           address.Address  `json:"farm"`
	Amount         uint64           `json:"amount,string"`
	GrowthSnapshot *big.Int         `json:"growthSnapshot"`
	LastUpdateTime time.Time        `json:"lastUpdateTime"`
}

// TokenAccount - a custody balance of one mint
//
// Owner is a public key for user accounts or a farm address for the
// vault and rewards accounts
type TokenAccount struct {
	Owner   address.Address `json:"owner"`
	Mint    address.Address `json:"mint"`
	Balance uint64          `json:"balance,string"`
}

// HasVault - true once createVault has run
func (farm *Farm) HasVault() bool {
	return !farm.Vault.IsZero()
}

// Allocated - the sum of current bin allocations
func (farm *Farm) Allocated() uint64 {
	total := uint64(0)
	for _, bin := range farm.BinAllocations {
		total += bin.CurrentAllocation
	}
	return total
}

// Unallocated - pooled funds not assigned to any bin
func (farm *Farm) Unallocated() uint64 {
	allocated := farm.Allocated()
	if allocated > farm.TotalDeposits {
		return 0
	}
	return farm.TotalDeposits - allocated
}

// Clone - deep copy so a caller can mutate without touching the original
func (farm *Farm) Clone() *Farm {
	c := *farm
	c.BinAllocations = make([]BinAllocation, len(farm.BinAllocations))
	copy(c.BinAllocations, farm.BinAllocations)
	if nil != farm.GrowthIndex {
		c.GrowthIndex = new(big.Int).Set(farm.GrowthIndex)
	}
	return &c
}

// Clone - deep copy of a position
func (position *Position) Clone() *Position {
	c := *position
	if nil != position.GrowthSnapshot {
		c.GrowthSnapshot = new(big.Int).Set(position.GrowthSnapshot)
	}
	return &c
}
