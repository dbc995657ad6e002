// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/storage"
)

// this is the expected order
var expectedElements = makeElements(
	"key-five", "data-five",
	"key-four", "data-four",
	"key-one", "data-one",
	"key-seven", "data-seven",
	"key-six", "data-six",
	"key-three", "data-three",
	"key-two", "data-two",
)

func TestFetchCursor(t *testing.T) {
	setup(t)
	defer teardown()

	populate(t, expectedElements)

	// a record in another pool must not appear
	trx, _ := storage.NewDBTransaction()
	trx.Put(storage.Pool.Farms, []byte("key-zero"), []byte("farm"))
	assert.Nil(t, trx.Commit(), "commit")

	cursor := storage.Pool.TestData.NewFetchCursor()

	first, err := cursor.Fetch(3)
	assert.Nil(t, err, "first fetch")
	assert.Equal(t, expectedElements[:3], first, "first batch")

	second, err := cursor.Fetch(3)
	assert.Nil(t, err, "second fetch")
	assert.Equal(t, expectedElements[3:6], second, "second batch")

	third, err := cursor.Fetch(3)
	assert.Nil(t, err, "third fetch")
	assert.Equal(t, expectedElements[6:], third, "third batch")

	empty, err := cursor.Fetch(3)
	assert.Nil(t, err, "final fetch")
	assert.Equal(t, 0, len(empty), "no more")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")

	seeked, err := storage.Pool.TestData.NewFetchCursor().Seek([]byte("key-six")).Fetch(2)
	assert.Nil(t, err, "seek fetch")
	assert.Equal(t, expectedElements[4:6], seeked, "seek")
}

func TestMapCursor(t *testing.T) {
	setup(t)
	defer teardown()

	populate(t, expectedElements)

	seen := make([]storage.Element, 0, len(expectedElements))
	err := storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		seen = append(seen, storage.Element{Key: key, Value: value})
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, expectedElements, seen, "all elements in order")

	stop := errors.New("stop")
	count := 0
	err = storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		if 2 == count {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err, "error propagates")
	assert.Equal(t, 2, count, "stopped early")
}
