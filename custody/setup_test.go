// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custody_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/storage"
)

const (
	testingDirName = "testing"
	logCategory    = "testing"
)

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

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

	err := storage.Initialise(filepath.Join(testingDirName, "custody.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown() {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func makeAddress(b byte) address.Address {
	a := address.Address{}
	for i := range a {
		a[i] = b
	}
	return a
}
