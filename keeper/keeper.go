// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keeper - periodic compounding and rebalancing of farms
//
// each run fetches a market price, compounds every configured farm and
// rebalances when the price moved or small bins out-yield large bins
package keeper

import (
	"context"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/engine"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/farmrecord"
)

// FarmReport - what one run did to one farm
type FarmReport struct {
	Farm       address.Address
	Accrued    uint64
	Compounded bool
	Rebalanced bool
	Err        error
}

// Report - summary of one run
type Report struct {
	RunID     string
	Price     float64
	Source    string
	Movement  float64
	Spread    float64
	Rebalance bool
	Skipped   bool
	Farms     []FarmReport
}

// Keeper - drives compound and rebalance for a set of farms
type Keeper struct {
	sync.Mutex // one run at a time

	log       *logger.L
	ops       engine.Operations
	key       *account.PrivateKey
	farms     []address.Address
	schedule  cron.Schedule
	threshold float64
	spread    float64
	prices    []SourceConfiguration
	yields    []YieldConfiguration
	history   *priceHistory
	fetcher   *fetcher
}

// New - create a keeper from its configuration
func New(log *logger.L, configuration *Configuration, ops engine.Operations) (*Keeper, error) {
	if nil == log || nil == configuration || nil == ops {
		return nil, fault.MissingParameters
	}

	key, err := account.PrivateKeyFromBase58(configuration.PrivateKey)
	if nil != err {
		return nil, err
	}

	schedule, err := cron.ParseStandard(configuration.Schedule)
	if nil != err {
		log.Errorf("schedule: %q  error: %s", configuration.Schedule, err)
		return nil, fault.InvalidSchedule
	}

	farms := make([]address.Address, 0, len(configuration.Farms))
	for _, f := range configuration.Farms {
		farm, err := address.FromBase58(f)
		if nil != err {
			return nil, err
		}
		farms = append(farms, farm)
	}

	if 0 == len(configuration.Prices) {
		return nil, fault.MissingParameters
	}

	timeout := time.Duration(configuration.Timeout) * time.Second
	if timeout <= 0 {
		timeout = DefaultTimeout * time.Second
	}

	return &Keeper{
		log:       log,
		ops:       ops,
		key:       key,
		farms:     farms,
		schedule:  schedule,
		threshold: configuration.Threshold,
		spread:    float64(configuration.Spread) / 10000,
		prices:    configuration.Prices,
		yields:    configuration.Yields,
		history:   newPriceHistory(configuration.History),
		fetcher:   newFetcher(log, timeout),
	}, nil
}

// Account - identity the keeper signs as
func (k *Keeper) Account() *account.Account {
	return k.key.Account()
}

// Run - background process: run once, then on every scheduled tick
// until shutdown
func (k *Keeper) Run(args interface{}, shutdown <-chan struct{}) {
	log := k.log
	log.Infof("starting…  keeper: %s  farms: %d", k.Account(), len(k.farms))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	c.Schedule(k.schedule, cron.FuncJob(func() {
		k.Job(ctx)
	}))

	k.Job(ctx)
	c.Start()

	<-shutdown
	log.Info("shutting down…")
	cancel()
	<-c.Stop().Done()
	log.Info("stopped")
}

// Job - a single keeper run; failures are logged and reported, never
// returned
func (k *Keeper) Job(ctx context.Context) *Report {
	k.Lock()
	defer k.Unlock()

	report := &Report{
		RunID: uuid.New().String(),
	}
	log := k.log
	log.Infof("run: %s  start", report.RunID)

	price, source, err := k.fetcher.price(ctx, k.prices)
	if nil != err {
		log.Warnf("run: %s  skipped: %s", report.RunID, err)
		report.Skipped = true
		return report
	}
	report.Price = price
	report.Source = source
	report.Movement = k.history.add(price)
	log.Infof("run: %s  price movement: %.2f%% over %d samples", report.RunID, report.Movement, k.history.size())

	significant := report.Movement > k.threshold
	if significant {
		log.Warnf("run: %s  significant price movement: %.2f%%", report.RunID, report.Movement)
	}

	yields := k.fetcher.yields(ctx, k.yields)
	small, okSmall := yields[farmrecord.Small]
	large, okLarge := yields[farmrecord.Large]
	if okSmall && okLarge {
		report.Spread = small - large
	}
	spread := report.Spread > k.spread
	if spread {
		log.Infof("run: %s  rebalance triggered by yield spread: %.2f%%", report.RunID, report.Spread*100)
	}
	report.Rebalance = significant || spread

	caller := k.key.Account()
	for _, farm := range k.farms {
		if nil != ctx.Err() {
			break
		}
		report.Farms = append(report.Farms, k.maintain(report.RunID, caller, farm, report.Rebalance))
	}

	log.Infof("run: %s  finished", report.RunID)
	return report
}

// compound and optionally rebalance one farm
func (k *Keeper) maintain(runID string, caller *account.Account, farm address.Address, rebalance bool) FarmReport {
	log := k.log
	r := FarmReport{
		Farm: farm,
	}

	info, err := k.ops.Farm(farm)
	if nil != err {
		log.Warnf("run: %s  farm: %s  skipped: %s", runID, farm, err)
		r.Err = err
		return r
	}
	if !caller.Equal(info.Keeper) {
		log.Warnf("run: %s  farm: %s  keeper is: %s", runID, farm, info.Keeper)
		r.Err = fault.Unauthorized
		return r
	}

	result, err := k.ops.CompoundRewards(caller, farm)
	if nil != err {
		log.Warnf("run: %s  farm: %s  compound error: %s", runID, farm, err)
		r.Err = err
	} else {
		r.Compounded = true
		r.Accrued = result.Accrued
		log.Infof("run: %s  farm: %s  accrued: %d  total deposits: %d", runID, farm, result.Accrued, result.TotalDeposits)
	}

	if !rebalance {
		log.Infof("run: %s  farm: %s  rebalance not needed", runID, farm)
		return r
	}

	_, err = k.ops.Rebalance(caller, farm)
	if nil != err {
		log.Warnf("run: %s  farm: %s  rebalance error: %s", runID, farm, err)
		r.Err = err
		return r
	}
	r.Rebalanced = true
	log.Infof("run: %s  farm: %s  rebalanced", runID, farm)
	return r
}
