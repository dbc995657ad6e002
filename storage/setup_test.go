// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/the-basement/basementd/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = "test.leveldb"
)

// remove all files created by test
func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) {
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

	err := storage.Initialise(databasePath(), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown() {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func databasePath() string {
	return filepath.Join(testingDirName, databaseFileName)
}

// write some committed test data
func populate(t *testing.T, elements []storage.Element) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("new transaction error: %s", err)
	}
	for _, e := range elements {
		trx.Put(storage.Pool.TestData, e.Key, e.Value)
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func makeElements(kv ...string) []storage.Element {
	output := make([]storage.Element, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		output = append(output, storage.Element{
			Key:   []byte(kv[i]),
			Value: []byte(kv[i+1]),
		})
	}
	return output
}
