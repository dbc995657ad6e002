// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/engine"
	"github.com/the-basement/basementd/fault"
)

// random deposits and withdrawals keep the totals in step
func TestTotalsFollowPositions(t *testing.T) {
	e, _ := setup(t, engineOptions())
	defer teardown()

	keeper := newAccount(t)
	farmAddress := readyFarm(t, e, keeper)

	owners := make([]*account.Account, 4)
	amounts := make([]uint64, len(owners))
	for i := range owners {
		owners[i] = newAccount(t)
		fund(t, e, owners[i], 1000000)
	}

	r := rand.New(rand.NewSource(20201))
	for i := 0; i < 200; i += 1 {
		n := r.Intn(len(owners))
		amount := uint64(r.Intn(5000) + 1)

		if 0 == r.Intn(3) {
			_, err := e.Withdraw(owners[n], farmAddress, amount)
			if amount > amounts[n] {
				assert.Equal(t, fault.InsufficientBalance, err, "step: %d  over-withdraw", i)
			} else {
				assert.Nil(t, err, "step: %d  withdraw", i)
				amounts[n] -= amount
			}
		} else {
			_, err := e.Deposit(owners[n], farmAddress, amount)
			assert.Nil(t, err, "step: %d  deposit", i)
			amounts[n] += amount
		}

		if 0 == i%20 {
			_, err := e.Rebalance(keeper, farmAddress)
			assert.Nil(t, err, "step: %d  rebalance", i)
		}

		sum := uint64(0)
		for _, a := range amounts {
			sum += a
		}

		farm, err := e.Farm(farmAddress)
		assert.Nil(t, err, "step: %d  farm", i)
		assert.Equal(t, sum, farm.TotalDeposits, "step: %d  total deposits", i)
		assert.True(t, farm.Allocated() <= farm.TotalDeposits, "step: %d  over-allocated", i)
	}

	for i, owner := range owners {
		position, err := e.Position(owner, farmAddress)
		if 0 == amounts[i] {
			if nil == err {
				assert.Equal(t, uint64(0), position.Value, "owner: %d  emptied", i)
			}
			continue
		}
		assert.Nil(t, err, "owner: %d  position", i)
		assert.Equal(t, amounts[i], position.Value, "owner: %d  value", i)
	}

	report, err := e.Audit(farmAddress)
	assert.Nil(t, err, "audit")
	assert.True(t, report.OK(), "audit problems: %v", report.Problems)
	assert.Equal(t, uint64(0), report.Dust, "no compounding means no dust")
}

// compounding never lowers a value and dust stays below one unit per position
func TestCompoundNeverDecreases(t *testing.T) {
	e, _ := setup(t, engineOptions())
	defer teardown()

	keeper := newAccount(t)
	farmAddress := readyFarm(t, e, keeper)
	fund(t, e, keeper, 1000000)

	owners := make([]*account.Account, 5)
	for i := range owners {
		owners[i] = newAccount(t)
		fund(t, e, owners[i], 100000)
		_, err := e.Deposit(owners[i], farmAddress, uint64(1000*(i+1)+i))
		assert.Nil(t, err, "deposit: %d", i)
	}

	previous := make([]uint64, len(owners))
	r := rand.New(rand.NewSource(77))
	for round := 0; round < 20; round += 1 {
		accrual := uint64(r.Intn(997) + 1)
		assert.Nil(t, e.Harvest(keeper, farmAddress, accrual), "round: %d  harvest", round)

		before, err := e.Farm(farmAddress)
		assert.Nil(t, err, "round: %d  farm", round)

		result, err := e.CompoundRewards(keeper, farmAddress)
		assert.Nil(t, err, "round: %d  compound", round)
		assert.Equal(t, accrual, result.Accrued, "round: %d  accrued", round)
		assert.Equal(t, before.TotalDeposits+accrual, result.TotalDeposits, "round: %d  exact increase", round)
		assert.True(t, result.GrowthIndex.Cmp(before.GrowthIndex) >= 0, "round: %d  index decreased", round)

		for i, owner := range owners {
			position, err := e.Position(owner, farmAddress)
			assert.Nil(t, err, "round: %d  owner: %d", round, i)
			assert.True(t, position.Value >= previous[i], "round: %d  owner: %d  value decreased", round, i)
			previous[i] = position.Value
		}

		report, err := e.Audit(farmAddress)
		assert.Nil(t, err, "round: %d  audit", round)
		assert.True(t, report.OK(), "round: %d  audit problems: %v", round, report.Problems)
		assert.True(t, report.Dust < uint64(report.Positions+1), "round: %d  dust: %d", round, report.Dust)
	}
}

func TestConcurrentDeposits(t *testing.T) {
	e, _ := setup(t, engineOptions())
	defer teardown()

	keeper := newAccount(t)
	farmAddress := readyFarm(t, e, keeper)

	const owners = 8
	const rounds = 10
	accounts := make([]*account.Account, owners)
	for i := range accounts {
		accounts[i] = newAccount(t)
		fund(t, e, accounts[i], 100*rounds)
	}

	var wg sync.WaitGroup
	errs := make(chan error, owners*rounds)
	for _, owner := range accounts {
		wg.Add(1)
		go func(owner *account.Account) {
			defer wg.Done()
			for j := 0; j < rounds; j += 1 {
				_, err := e.Deposit(owner, farmAddress, 100)
				if nil != err {
					errs <- err
				}
			}
		}(owner)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < rounds; j += 1 {
			_, err := e.Rebalance(keeper, farmAddress)
			if nil != err {
				errs <- err
			}
		}
	}()
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.Nil(t, err, "concurrent operation")
	}

	farm, err := e.Farm(farmAddress)
	assert.Nil(t, err, "farm")
	assert.Equal(t, uint64(owners*rounds*100), farm.TotalDeposits, "total deposits")

	report, err := e.Audit(farmAddress)
	assert.Nil(t, err, "audit")
	assert.True(t, report.OK(), "audit problems: %v", report.Problems)
	assert.Equal(t, owners, report.Positions, "positions")
}

func TestMintOutsideTesting(t *testing.T) {
	e, _ := setup(t, engine.Options{})
	defer teardown()

	assert.False(t, e.IsTesting(), "live engine")
	_, err := e.MintTo(newAccount(t), testMint(), 10)
	assert.Equal(t, fault.NotTestingChain, err, "mint")
}
