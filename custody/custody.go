// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package custody - token balances held for users, vaults and reward harvests
package custody

import (
	"github.com/bitmark-inc/logger"

	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/farmrecord"
	"github.com/the-basement/basementd/storage"
)

// Custody - token account primitives
//
// every call runs inside the caller's transaction so a failed
// operation leaves no balance changed
type Custody interface {
	Open(trx storage.Transaction, tokenAccount address.Address, owner address.Address, mint address.Address) error
	Get(trx storage.Transaction, tokenAccount address.Address) (*farmrecord.TokenAccount, error)
	Transfer(trx storage.Transaction, from address.Address, to address.Address, mint address.Address, amount uint64) error
	Mint(trx storage.Transaction, to address.Address, owner address.Address, mint address.Address, amount uint64) error
}

type tokenAccounts struct {
	log  *logger.L
	pool storage.Handle
}

// New - custody over a token account pool
func New(log *logger.L, pool storage.Handle) Custody {
	return &tokenAccounts{
		log:  log,
		pool: pool,
	}
}

// Open - create an empty token account if it does not exist
//
// an existing account must have the same owner and mint
func (c *tokenAccounts) Open(trx storage.Transaction, tokenAccount address.Address, owner address.Address, mint address.Address) error {
	existing, err := c.Get(trx, tokenAccount)
	if nil == err {
		if existing.Owner != owner || existing.Mint != mint {
			return fault.WrongMint
		}
		return nil
	}
	if fault.TokenAccountNotFound != err {
		return err
	}

	return c.put(trx, tokenAccount, &farmrecord.TokenAccount{
		Owner:   owner,
		Mint:    mint,
		Balance: 0,
	})
}

// Get - read a token account as seen by the transaction
func (c *tokenAccounts) Get(trx storage.Transaction, tokenAccount address.Address) (*farmrecord.TokenAccount, error) {
	packed := trx.Get(c.pool, tokenAccount[:])
	if nil == packed {
		return nil, fault.TokenAccountNotFound
	}
	record, err := farmrecord.UnpackTokenAccount(packed)
	if nil != err {
		logger.Panicf("custody: token account: %s  corrupt record: %s", tokenAccount, err)
	}
	return record, nil
}

// Transfer - move amount between two accounts of the same mint
func (c *tokenAccounts) Transfer(trx storage.Transaction, from address.Address, to address.Address, mint address.Address, amount uint64) error {
	if 0 == amount {
		return fault.InvalidAmount
	}

	source, err := c.Get(trx, from)
	if nil != err {
		return err
	}
	destination, err := c.Get(trx, to)
	if nil != err {
		return err
	}
	if source.Mint != mint || destination.Mint != mint {
		return fault.WrongMint
	}
	if source.Balance < amount {
		return fault.InsufficientBalance
	}
	if from == to {
		return nil
	}
	if destination.Balance+amount < destination.Balance {
		return fault.ArithmeticOverflow
	}

	source.Balance -= amount
	destination.Balance += amount

	err = c.put(trx, from, source)
	if nil != err {
		return err
	}
	err = c.put(trx, to, destination)
	if nil != err {
		return err
	}

	c.log.Debugf("transfer: %d  from: %s  to: %s", amount, from, to)
	return nil
}

// Mint - create new tokens in an account, opening it if necessary
func (c *tokenAccounts) Mint(trx storage.Transaction, to address.Address, owner address.Address, mint address.Address, amount uint64) error {
	if 0 == amount {
		return fault.InvalidAmount
	}

	err := c.Open(trx, to, owner, mint)
	if nil != err {
		return err
	}
	destination, err := c.Get(trx, to)
	if nil != err {
		return err
	}
	if destination.Balance+amount < destination.Balance {
		return fault.ArithmeticOverflow
	}
	destination.Balance += amount

	err = c.put(trx, to, destination)
	if nil != err {
		return err
	}

	c.log.Infof("mint: %d  to: %s", amount, to)
	return nil
}

func (c *tokenAccounts) put(trx storage.Transaction, tokenAccount address.Address, record *farmrecord.TokenAccount) error {
	packed, err := record.Pack()
	if nil != err {
		return err
	}
	trx.Put(c.pool, tokenAccount[:], packed)
	return nil
}
