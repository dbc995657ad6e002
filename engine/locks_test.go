// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/the-basement/basementd/address"
)

func lockAddress(b byte) address.Address {
	a := address.Address{}
	a[0] = b
	return a
}

func TestLockTableReleases(t *testing.T) {
	table := newLockTable()

	unlock := table.acquire(lockAddress(3), lockAddress(1), lockAddress(3), lockAddress(2))
	assert.Equal(t, 3, table.size(), "duplicates collapse")
	unlock()
	assert.Equal(t, 0, table.size(), "entries released")

	unlock = table.acquire()
	assert.Equal(t, 0, table.size(), "nothing locked")
	unlock()
}

func TestLockTableExcludes(t *testing.T) {
	table := newLockTable()

	unlock := table.acquire(lockAddress(1))

	acquired := make(chan struct{})
	go func() {
		release := table.acquire(lockAddress(2), lockAddress(1))
		close(acquired)
		release()
	}()

	select {
	case <-acquired:
		t.Fatal("second holder acquired a held lock")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(5 * time.Second):
		t.Fatal("waiter never acquired the lock")
	}
}

// opposite orders would deadlock without sorting
func TestLockTableOrdering(t *testing.T) {
	table := newLockTable()

	var wg sync.WaitGroup
	for i := 0; i < 50; i += 1 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			table.acquire(lockAddress(1), lockAddress(2), lockAddress(3))()
		}()
		go func() {
			defer wg.Done()
			table.acquire(lockAddress(3), lockAddress(2), lockAddress(1))()
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("lock acquisition deadlocked")
	}
	assert.Equal(t, 0, table.size(), "all released")
}

func TestMetricsRecord(t *testing.T) {
	m := newMetrics()

	m.record("deposit", time.Now(), nil)
	m.record("deposit", time.Now(), nil)
	m.record("deposit", time.Now(), errors.New("failed"))

	assert.Equal(t, float64(2), testutil.ToFloat64(m.operations.WithLabelValues("deposit", "ok")), "ok count")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.operations.WithLabelValues("deposit", "error")), "error count")

	m.totalDeposits.WithLabelValues("farm").Set(42)
	assert.Equal(t, float64(42), testutil.ToFloat64(m.totalDeposits.WithLabelValues("farm")), "gauge")

	families, err := m.registry.Gather()
	assert.Nil(t, err, "gather")
	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["basement_engine_operations_total"], "operations exported")
	assert.True(t, names["basement_farm_total_deposits"], "deposits exported")
}
