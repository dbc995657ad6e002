// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/the-basement/basementd/rpc/certificate"
	"github.com/the-basement/basementd/rpc/fixtures"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key, err := fixtures.CertificatePair()
	assert.Nil(t, err, "wrong certificate generation")

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair.Certificate, tlsConfig.Certificates[0].Certificate, "wrong config")
}

func TestGetInvalidPair(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "no certificate", "no key")
	assert.NotNil(t, err, "invalid pair accepted")
}
