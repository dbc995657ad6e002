// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/engine"
	"github.com/the-basement/basementd/storage"
)

const (
	testingDirName = "testing"
	logCategory    = "testing"
)

// a clock the test can move forward
type testClock struct {
	sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.Lock()
	defer c.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.Lock()
	c.now = c.now.Add(d)
	c.Unlock()
}

// default collaborators
func engineOptions() engine.Options {
	return engine.Options{
		Testing: true,
	}
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func setup(t *testing.T, options engine.Options) (*engine.Engine, *testClock) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(filepath.Join(testingDirName, "engine.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	clock := &testClock{now: time.Unix(1700000000, 0).UTC()}
	options.Clock = clock.Now

	e, err := engine.New(logger.New(logCategory), options)
	if nil != err {
		t.Fatalf("engine create error: %s", err)
	}
	return e, clock
}

func teardown() {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func newAccount(t *testing.T) *account.Account {
	privateKey, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("key generation error: %s", err)
	}
	return privateKey.Account()
}

func testMint() address.Address {
	a := address.Address{}
	for i := range a {
		a[i] = 0x42
	}
	return a
}

// a farm with an open vault, authority is also keeper
func readyFarm(t *testing.T, e *engine.Engine, authority *account.Account) address.Address {
	farmAddress, _, err := e.Initialize(authority, testMint(), 3)
	assert.Nil(t, err, "initialize")
	_, err = e.CreateVault(authority, farmAddress)
	assert.Nil(t, err, "create vault")
	return farmAddress
}

// fund an owner's token account with test tokens
func fund(t *testing.T, e *engine.Engine, owner *account.Account, amount uint64) {
	_, err := e.MintTo(owner, testMint(), amount)
	assert.Nil(t, err, "mint")
}

// raw committed records, for comparing state across a failed call
type snapshot struct {
	farm     []byte
	position []byte
	vault    []byte
	rewards  []byte
}

func takeSnapshot(t *testing.T, farmAddress address.Address, owner *account.Account) snapshot {
	positionAddress, err := address.PositionAddress(owner.PublicKeyBytes(), farmAddress)
	assert.Nil(t, err, "position address")
	vault, _ := address.VaultAddress(farmAddress)
	rewards, _ := address.RewardsAddress(farmAddress)
	return snapshot{
		farm:     storage.Pool.Farms.Get(farmAddress[:]),
		position: storage.Pool.Positions.Get(positionAddress[:]),
		vault:    storage.Pool.TokenAccounts.Get(vault[:]),
		rewards:  storage.Pool.TokenAccounts.Get(rewards[:]),
	}
}
