// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
)

// Handle - the read side of a pool
//
// committed data only; writes are staged through a Transaction
type Handle interface {
	Get([]byte) []byte
	Has([]byte) bool
	NewFetchCursor() *FetchCursor
	PrefixKey([]byte) []byte
}

// PoolHandle - one prefix range of the database
type PoolHandle struct {
	prefix byte
	limit  []byte
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// PrefixKey - prepend the prefix onto the key
func (p *PoolHandle) PrefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a value for a given key
//
// returns nil if the key is absent
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return nil
	}
	value, err := poolData.database.Get(p.PrefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	return value
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return false
	}
	value, err := poolData.database.Has(p.PrefixKey(key), nil)
	logger.PanicIfError("pool.Has", err)
	return value
}
