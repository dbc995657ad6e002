// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package allocator_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/the-basement/basementd/allocator"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/farmrecord"
)

func percentages(table []farmrecord.BinAllocation) []uint8 {
	p := make([]uint8, len(table))
	for i, bin := range table {
		p[i] = bin.AllocationPercentage
	}
	return p
}

func TestDefaultAllocations(t *testing.T) {
	tests := []struct {
		bins     int
		expected []uint8
	}{
		{1, []uint8{100}},
		{2, []uint8{90, 10}},
		{3, []uint8{80, 10, 10}},
	}
	for _, test := range tests {
		table, err := allocator.DefaultAllocations(test.bins)
		assert.Nil(t, err, "bins %d", test.bins)
		assert.Equal(t, test.expected, percentages(table), "bins %d", test.bins)
		assert.Nil(t, allocator.ValidateAllocations(uint8(test.bins), table), "valid %d", test.bins)
	}

	table, _ := allocator.DefaultAllocations(3)
	assert.Equal(t, farmrecord.BinAllocation{BinType: farmrecord.Large, AllocationPercentage: 80, StepSize: 657, BinCount: 20}, table[0], "large")
	assert.Equal(t, farmrecord.BinAllocation{BinType: farmrecord.Small, AllocationPercentage: 10, StepSize: 34, BinCount: 1}, table[2], "small")

	table[0].AllocationPercentage = 1
	again, _ := allocator.DefaultAllocations(3)
	assert.Equal(t, uint8(80), again[0].AllocationPercentage, "defaults not shared")

	for _, n := range []int{0, 4, -1} {
		_, err := allocator.DefaultAllocations(n)
		assert.Equal(t, fault.InvalidBinsCount, err, "bins %d", n)
	}
}

func farmWith(total uint64) *farmrecord.Farm {
	table, _ := allocator.DefaultAllocations(3)
	return &farmrecord.Farm{
		TotalDeposits:  total,
		BinsCount:      3,
		BinAllocations: table,
	}
}

func TestRebalance(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	farm := farmWith(100000000000)

	previous, err := allocator.Rebalance(farm, now)
	assert.Nil(t, err, "rebalance")
	assert.Equal(t, []uint64{0, 0, 0}, previous, "previous")
	assert.Equal(t, uint64(80000000000), farm.BinAllocations[0].CurrentAllocation, "large")
	assert.Equal(t, uint64(10000000000), farm.BinAllocations[1].CurrentAllocation, "medium")
	assert.Equal(t, uint64(10000000000), farm.BinAllocations[2].CurrentAllocation, "small")
	assert.Equal(t, now, farm.LastRebalanceTime, "rebalance time")
	assert.Equal(t, uint64(0), farm.Unallocated(), "all allocated")
}

func TestRebalanceResidual(t *testing.T) {
	for _, total := range []uint64{1, 7, 99, 101, 12345678901, math.MaxUint64} {
		farm := farmWith(total)
		_, err := allocator.Rebalance(farm, time.Now())
		assert.Nil(t, err, "rebalance %d", total)

		sum := uint64(0)
		for _, bin := range farm.BinAllocations {
			sum += bin.CurrentAllocation
		}
		assert.Equal(t, total, sum, "allocations sum to deposits %d", total)
		assert.True(t, farm.BinAllocations[0].CurrentAllocation <= total/100*80+80, "large bounded %d", total)
	}

	farm := farmWith(7)
	_, _ = allocator.Rebalance(farm, time.Now())
	assert.Equal(t, []uint64{5, 0, 2}, []uint64{
		farm.BinAllocations[0].CurrentAllocation,
		farm.BinAllocations[1].CurrentAllocation,
		farm.BinAllocations[2].CurrentAllocation,
	}, "residual to last bin")
}

func TestRebalanceEmpty(t *testing.T) {
	farm := farmWith(0)
	_, err := allocator.Rebalance(farm, time.Now())
	assert.Nil(t, err, "rebalance empty")
	assert.Equal(t, uint64(0), farm.Allocated(), "nothing allocated")
	assert.True(t, farm.LastRebalanceTime.IsZero(), "time not recorded")
}

func TestValidateAllocations(t *testing.T) {
	table, _ := allocator.DefaultAllocations(3)

	bad := append([]farmrecord.BinAllocation{}, table...)
	bad[0].AllocationPercentage = 70
	assert.Equal(t, fault.AllocationInvariantViolation, allocator.ValidateAllocations(3, bad), "sum 90")

	assert.Equal(t, fault.AllocationInvariantViolation, allocator.ValidateAllocations(2, table), "wrong count")

	dup := append([]farmrecord.BinAllocation{}, table...)
	dup[2].BinType = farmrecord.Medium
	assert.Equal(t, fault.DuplicateBinType, allocator.ValidateAllocations(3, dup), "duplicate")

	farm := farmWith(100)
	farm.BinAllocations[0].AllocationPercentage = 50
	_, err := allocator.Rebalance(farm, time.Now())
	assert.Equal(t, fault.AllocationInvariantViolation, err, "corrupt table refused")
	assert.Equal(t, uint64(0), farm.Allocated(), "nothing moved")
}

func TestSetAllocations(t *testing.T) {
	farm := farmWith(1000)
	_, err := allocator.Rebalance(farm, time.Now())
	assert.Nil(t, err, "rebalance")

	table := []farmrecord.BinAllocation{
		{BinType: farmrecord.Small, AllocationPercentage: 50, StepSize: 34, BinCount: 1},
		{BinType: farmrecord.Medium, AllocationPercentage: 30, StepSize: 135, BinCount: 4},
		{BinType: farmrecord.Large, AllocationPercentage: 20, StepSize: 657, BinCount: 20},
	}
	assert.Nil(t, allocator.SetAllocations(farm, table), "set")
	assert.Equal(t, []uint8{50, 30, 20}, percentages(farm.BinAllocations), "new percentages")
	assert.Equal(t, uint64(100), farm.BinAllocations[0].CurrentAllocation, "small keeps allocation")
	assert.Equal(t, uint64(800), farm.BinAllocations[2].CurrentAllocation, "large keeps allocation")

	table[0].AllocationPercentage = 51
	assert.Equal(t, fault.AllocationInvariantViolation, allocator.SetAllocations(farm, table), "sum 101")
	assert.Equal(t, []uint8{50, 30, 20}, percentages(farm.BinAllocations), "unchanged")
}
