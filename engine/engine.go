// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine - the farm state machine
//
// every operation locks the accounts it touches, runs in one storage
// transaction and either commits all of its changes or none
package engine

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/compounder"
	"github.com/the-basement/basementd/custody"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/farmrecord"
	"github.com/the-basement/basementd/ledger"
	"github.com/the-basement/basementd/storage"
)

// Options - collaborators of the engine
type Options struct {
	// time source, defaults to time.Now
	Clock func() time.Time

	// accrual for compounding, defaults to the rewards account balance
	Source compounder.Source

	// allow minting test tokens
	Testing bool
}

// Engine - hosts the farm operations over the account store
type Engine struct {
	log        *logger.L
	locks      *lockTable
	custody    custody.Custody
	ledger     *ledger.Ledger
	compounder *compounder.Compounder
	clock      func() time.Time
	testing    bool
	metrics    *metrics
}

// New - create an engine; storage must already be initialised
func New(log *logger.L, options Options) (*Engine, error) {
	if nil == log {
		return nil, fault.MissingParameters
	}
	if !storage.IsInitialised() {
		return nil, fault.DatabaseIsNotSet
	}

	clock := options.Clock
	if nil == clock {
		clock = time.Now
	}

	c := custody.New(log, storage.Pool.TokenAccounts)

	source := options.Source
	if nil == source {
		source = &compounder.RewardsBalanceSource{Custody: c}
	}

	e := &Engine{
		log:        log,
		locks:      newLockTable(),
		custody:    c,
		ledger:     ledger.New(log, c),
		compounder: compounder.New(log, c, source),
		clock:      clock,
		testing:    options.Testing,
		metrics:    newMetrics(),
	}
	return e, nil
}

// Registry - engine metrics for export
func (e *Engine) Registry() *prometheus.Registry {
	return e.metrics.registry
}

// IsTesting - true if test token minting is enabled
func (e *Engine) IsTesting() bool {
	return e.testing
}

// operation timestamps have whole second resolution
func (e *Engine) now() time.Time {
	return e.clock().UTC().Truncate(time.Second)
}

// run - execute f under the locks of addresses in a fresh transaction
func (e *Engine) run(operation string, addresses []address.Address, f func(trx storage.Transaction) error) (err error) {
	start := time.Now()
	defer func() {
		e.metrics.record(operation, start, err)
	}()

	unlock := e.locks.acquire(addresses...)
	defer unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		e.log.Warnf("%s: aborted: %s", operation, err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		e.log.Errorf("%s: commit error: %s", operation, err)
		return err
	}
	return nil
}

// read-only access under the same locks; nothing is committed
func (e *Engine) view(addresses []address.Address, f func(trx storage.Transaction) error) error {
	unlock := e.locks.acquire(addresses...)
	defer unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	defer trx.Abort()

	return f(trx)
}

func (e *Engine) loadFarm(trx storage.Transaction, farmAddress address.Address) (*farmrecord.Farm, error) {
	packed := trx.Get(storage.Pool.Farms, farmAddress[:])
	if nil == packed {
		return nil, fault.FarmNotFound
	}
	farm, err := farmrecord.UnpackFarm(packed)
	if nil != err {
		logger.Panicf("engine: farm: %s  corrupt record: %s", farmAddress, err)
	}
	return farm, nil
}

func (e *Engine) storeFarm(trx storage.Transaction, farmAddress address.Address, farm *farmrecord.Farm) error {
	packed, err := farm.Pack()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Farms, farmAddress[:], packed)
	return nil
}

// update gauges from a committed farm
func (e *Engine) observe(farmAddress address.Address, farm *farmrecord.Farm) {
	e.metrics.totalDeposits.WithLabelValues(farmAddress.String()).Set(float64(farm.TotalDeposits))
}

// returns nil, nil if the position does not exist
func (e *Engine) loadPosition(trx storage.Transaction, positionAddress address.Address) (*farmrecord.Position, error) {
	packed := trx.Get(storage.Pool.Positions, positionAddress[:])
	if nil == packed {
		return nil, nil
	}
	position, err := farmrecord.UnpackPosition(packed)
	if nil != err {
		logger.Panicf("engine: position: %s  corrupt record: %s", positionAddress, err)
	}
	return position, nil
}

func (e *Engine) storePosition(trx storage.Transaction, positionAddress address.Address, position *farmrecord.Position) error {
	packed, err := position.Pack()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Positions, positionAddress[:], packed)
	return nil
}
