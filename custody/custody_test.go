// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custody_test

import (
	"math"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/custody"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/storage"
)

var (
	mint      = makeAddress(0x10)
	otherMint = makeAddress(0x11)
	alice     = makeAddress(0x20)
	bob       = makeAddress(0x21)
	aliceTA   = makeAddress(0x30)
	bobTA     = makeAddress(0x31)
)

func newCustody() custody.Custody {
	return custody.New(logger.New(logCategory), storage.Pool.TokenAccounts)
}

func balanceOf(t *testing.T, c custody.Custody, tokenAccount address.Address) uint64 {
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction")
	defer trx.Abort()

	record, err := c.Get(trx, tokenAccount)
	assert.Nil(t, err, "get token account")
	if nil == record {
		return 0
	}
	return record.Balance
}

func TestMintAndTransfer(t *testing.T) {
	setup(t)
	defer teardown()

	c := newCustody()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction")
	assert.Nil(t, c.Mint(trx, aliceTA, alice, mint, 1000), "mint")
	assert.Nil(t, c.Open(trx, bobTA, bob, mint), "open")
	assert.Nil(t, c.Transfer(trx, aliceTA, bobTA, mint, 400), "transfer")
	assert.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, uint64(600), balanceOf(t, c, aliceTA), "alice")
	assert.Equal(t, uint64(400), balanceOf(t, c, bobTA), "bob")
}

func TestTransferFailures(t *testing.T) {
	setup(t)
	defer teardown()

	c := newCustody()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction")
	assert.Nil(t, c.Mint(trx, aliceTA, alice, mint, 100), "mint")
	assert.Nil(t, c.Mint(trx, bobTA, bob, otherMint, 100), "mint other")

	assert.Equal(t, fault.InvalidAmount, c.Transfer(trx, aliceTA, bobTA, mint, 0), "zero")
	assert.Equal(t, fault.WrongMint, c.Transfer(trx, aliceTA, bobTA, mint, 10), "mint mismatch")
	assert.Equal(t, fault.TokenAccountNotFound, c.Transfer(trx, aliceTA, makeAddress(0x99), mint, 10), "missing destination")
	assert.Equal(t, fault.TokenAccountNotFound, c.Transfer(trx, makeAddress(0x98), aliceTA, mint, 10), "missing source")
	assert.Nil(t, trx.Commit(), "commit")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "transaction")
	assert.Nil(t, c.Open(trx, makeAddress(0x32), bob, mint), "open bob")
	assert.Equal(t, fault.InsufficientBalance, c.Transfer(trx, aliceTA, makeAddress(0x32), mint, 101), "too much")
	trx.Abort()

	assert.Equal(t, uint64(100), balanceOf(t, c, aliceTA), "unchanged")
}

func TestOverflow(t *testing.T) {
	setup(t)
	defer teardown()

	c := newCustody()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction")
	defer trx.Abort()

	assert.Nil(t, c.Mint(trx, aliceTA, alice, mint, math.MaxUint64), "mint max")
	assert.Equal(t, fault.ArithmeticOverflow, c.Mint(trx, aliceTA, alice, mint, 1), "mint overflow")

	assert.Nil(t, c.Mint(trx, bobTA, bob, mint, 1), "mint bob")
	assert.Equal(t, fault.ArithmeticOverflow, c.Transfer(trx, bobTA, aliceTA, mint, 1), "transfer overflow")
}

func TestOpenChecksOwnership(t *testing.T) {
	setup(t)
	defer teardown()

	c := newCustody()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction")
	defer trx.Abort()

	assert.Nil(t, c.Open(trx, aliceTA, alice, mint), "open")
	assert.Nil(t, c.Open(trx, aliceTA, alice, mint), "open again")
	assert.Equal(t, fault.WrongMint, c.Open(trx, aliceTA, bob, mint), "other owner")
	assert.Equal(t, fault.WrongMint, c.Open(trx, aliceTA, alice, otherMint), "other mint")

	record, err := c.Get(trx, aliceTA)
	assert.Nil(t, err, "get")
	assert.Equal(t, uint64(0), record.Balance, "empty")
}
