// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package allocator - bin allocation table and rebalancing
package allocator

import (
	"math/bits"
	"time"

	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/farmrecord"
)

// limits on the number of bins a farm may have
const (
	MinimumBins = 1
	MaximumBins = 3
)

// the full table, in order; smaller farms take a prefix of it
var defaultTable = []farmrecord.BinAllocation{
	{BinType: farmrecord.Large, AllocationPercentage: 80, StepSize: 657, BinCount: 20},
	{BinType: farmrecord.Medium, AllocationPercentage: 10, StepSize: 135, BinCount: 4},
	{BinType: farmrecord.Small, AllocationPercentage: 10, StepSize: 34, BinCount: 1},
}

// DefaultAllocations - the initial table for a farm with binsCount bins
//
// the percentage of omitted bins is folded into the first (large) bin
func DefaultAllocations(binsCount int) ([]farmrecord.BinAllocation, error) {
	if binsCount < MinimumBins || binsCount > MaximumBins {
		return nil, fault.InvalidBinsCount
	}

	table := make([]farmrecord.BinAllocation, binsCount)
	copy(table, defaultTable[:binsCount])

	omitted := uint8(0)
	for _, bin := range defaultTable[binsCount:] {
		omitted += bin.AllocationPercentage
	}
	table[0].AllocationPercentage += omitted

	return table, nil
}

// ValidateAllocations - a table must have exactly binsCount distinct
// bin types whose percentages sum to 100
func ValidateAllocations(binsCount uint8, table []farmrecord.BinAllocation) error {
	if len(table) != int(binsCount) {
		return fault.AllocationInvariantViolation
	}

	seen := make(map[farmrecord.BinType]struct{}, len(table))
	sum := 0
	for _, bin := range table {
		if !bin.BinType.IsValid() {
			return fault.InvalidBinType
		}
		if _, ok := seen[bin.BinType]; ok {
			return fault.DuplicateBinType
		}
		seen[bin.BinType] = struct{}{}
		sum += int(bin.AllocationPercentage)
	}
	if 100 != sum {
		return fault.AllocationInvariantViolation
	}
	return nil
}

// SetAllocations - replace the configuration columns of the table
//
// current allocations of surviving bin types are kept until the next
// rebalance; a bin type not present before starts at zero
func SetAllocations(farm *farmrecord.Farm, table []farmrecord.BinAllocation) error {
	err := ValidateAllocations(farm.BinsCount, table)
	if nil != err {
		return err
	}

	current := make(map[farmrecord.BinType]uint64, len(farm.BinAllocations))
	for _, bin := range farm.BinAllocations {
		current[bin.BinType] = bin.CurrentAllocation
	}

	replacement := make([]farmrecord.BinAllocation, len(table))
	for i, bin := range table {
		replacement[i] = farmrecord.BinAllocation{
			BinType:              bin.BinType,
			AllocationPercentage: bin.AllocationPercentage,
			CurrentAllocation:    current[bin.BinType],
			StepSize:             bin.StepSize,
			BinCount:             bin.BinCount,
		}
	}
	farm.BinAllocations = replacement
	return nil
}

// Targets - the amount each bin should hold for the current deposits
//
// each target is rounded down and the residual goes to the last bin
// so the targets always sum to totalDeposits
func Targets(farm *farmrecord.Farm) ([]uint64, error) {
	err := ValidateAllocations(farm.BinsCount, farm.BinAllocations)
	if nil != err {
		return nil, err
	}

	targets := make([]uint64, len(farm.BinAllocations))
	if 0 == farm.TotalDeposits {
		return targets, nil
	}

	assigned := uint64(0)
	for i, bin := range farm.BinAllocations {
		targets[i] = percentOf(farm.TotalDeposits, bin.AllocationPercentage)
		assigned += targets[i]
	}
	targets[len(targets)-1] += farm.TotalDeposits - assigned

	return targets, nil
}

// Rebalance - move every bin to its target allocation
//
// returns the previous allocations; a farm with no deposits is left
// untouched
func Rebalance(farm *farmrecord.Farm, now time.Time) ([]uint64, error) {
	targets, err := Targets(farm)
	if nil != err {
		return nil, err
	}

	previous := make([]uint64, len(farm.BinAllocations))
	for i := range farm.BinAllocations {
		previous[i] = farm.BinAllocations[i].CurrentAllocation
	}
	if 0 == farm.TotalDeposits {
		return previous, nil
	}

	for i := range farm.BinAllocations {
		farm.BinAllocations[i].CurrentAllocation = targets[i]
	}
	farm.LastRebalanceTime = now

	return previous, nil
}

// total * percent / 100 with a 128 bit intermediate
func percentOf(total uint64, percent uint8) uint64 {
	hi, lo := bits.Mul64(total, uint64(percent))
	q, _ := bits.Div64(hi, lo, 100)
	return q
}
