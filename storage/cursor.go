// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"math/big"

	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/the-basement/basementd/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {

	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.PrefixKey(key)
	return cursor
}

// to increment the key
var one = big.NewInt(1)

// Fetch - return some elements starting from key
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	results := make([]Element, 0, count)
	n := 0
	err := cursor.iterate(func(key []byte, value []byte) bool {
		results = append(results, Element{
			Key:   key,
			Value: value,
		})
		n += 1
		return n < count
	})

	if n > 0 {
		keyLen := len(results[n-1].Key)
		start := make([]byte, keyLen+1)
		start[0] = cursor.pool.prefix
		b := big.Int{}
		next := b.SetBytes(results[n-1].Key).Add(&b, one).Bytes()
		// right align the incremented key; a carry out of the top byte ends the range
		if len(next) > keyLen {
			start = cursor.pool.limit
		} else {
			copy(start[1+keyLen-len(next):], next)
		}
		cursor.maxRange.Start = start
	}
	return results, err
}

// Map - run a function on all elements in the range
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}

	var err error
	iterErr := cursor.iterate(func(key []byte, value []byte) bool {
		err = f(key, value)
		return nil == err
	})
	if nil == err {
		err = iterErr
	}
	return err
}

// call f with copies of each key (prefix stripped) and value
// until it returns false
func (cursor *FetchCursor) iterate(f func(key []byte, value []byte) bool) error {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.database {
		return fault.DatabaseIsNotSet
	}

	iter := poolData.database.NewIterator(&cursor.maxRange, nil)

iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		if !f(dataKey, dataValue) {
			break iterating
		}
	}
	iter.Release()
	return iter.Error()
}
