// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/rpc/envelope"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - critical only logging to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

// CertificatePair - a fresh self-signed certificate and key in PEM form
func CertificatePair() (string, string, error) {
	cert, key, err := certgen.NewTLSCertPair("basementd test certificate", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		return "", "", err
	}
	return string(cert), string(key), nil
}

// NewKey - a testing chain key pair
func NewKey() *account.PrivateKey {
	privateKey, err := account.NewPrivateKey(true)
	if nil != err {
		logger.Panicf("fixtures: key generation error: %s", err)
	}
	return privateKey
}

var nonce uint64

// Signed - an envelope signed by key with a fresh nonce
func Signed(key *account.PrivateKey, tag envelope.Tag, farm address.Address, amount uint64, argument []byte) *envelope.Envelope {
	e := envelope.New(tag, farm, amount, argument, atomic.AddUint64(&nonce, 1), key.Account())
	err := e.Sign(key)
	if nil != err {
		logger.Panicf("fixtures: sign error: %s", err)
	}
	return e
}

// Address - an address filled with one byte
func Address(b byte) address.Address {
	a := address.Address{}
	for i := range a {
		a[i] = b
	}
	return a
}
