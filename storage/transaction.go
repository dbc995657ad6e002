// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/the-basement/basementd/fault"
)

// Transaction - the staged writes of a single operation
type Transaction interface {
	Put(Handle, []byte, []byte)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	Has(Handle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
	Size() int
}

type transaction struct {
	sync.Mutex
	inUse bool
	batch *leveldb.Batch
	cache *dbCache
}

func newTransaction() *transaction {
	return &transaction{
		inUse: true,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

// Put - stage a write
func (t *transaction) Put(handle Handle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()

	prefixedKey := handle.PrefixKey(key)
	stored := make([]byte, len(value))
	copy(stored, value)

	t.cache.Set(dbPut, string(prefixedKey), stored)
	t.batch.Put(prefixedKey, stored)
}

// Delete - stage a removal
func (t *transaction) Delete(handle Handle, key []byte) {
	t.Lock()
	defer t.Unlock()

	prefixedKey := handle.PrefixKey(key)
	t.cache.Set(dbDelete, string(prefixedKey), nil)
	t.batch.Delete(prefixedKey)
}

// Get - read through the staged writes to the committed data
func (t *transaction) Get(handle Handle, key []byte) []byte {
	t.Lock()
	value, touched, deleted := t.cache.Get(string(handle.PrefixKey(key)))
	t.Unlock()

	if deleted {
		return nil
	}
	if touched {
		result := make([]byte, len(value))
		copy(result, value)
		return result
	}
	return handle.Get(key)
}

// Has - check for a key in the staged writes then the committed data
func (t *transaction) Has(handle Handle, key []byte) bool {
	t.Lock()
	_, touched, deleted := t.cache.Get(string(handle.PrefixKey(key)))
	t.Unlock()

	if touched {
		return !deleted
	}
	return handle.Has(key)
}

// Commit - apply all staged writes in one atomic database write
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionAlreadyClosed
	}
	t.inUse = false

	defer t.cache.Clear()

	if 0 == t.batch.Len() {
		return nil
	}

	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.database {
		return fault.DatabaseIsNotSet
	}
	return poolData.database.Write(t.batch, nil)
}

// Abort - discard all staged writes
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}

// InUse - true until Commit or Abort
func (t *transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

// Size - number of staged writes
func (t *transaction) Size() int {
	t.Lock()
	defer t.Unlock()
	return t.batch.Len()
}
