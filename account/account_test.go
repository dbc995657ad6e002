// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/fault"
)

type accountTest struct {
	testnet       bool
	publicKey     []byte
	base58Account string
}

var testAccount = []accountTest{
	{
		testnet:       false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db"),
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
}

var testInvalidAccountFromBase58 = []struct {
	str string
	err error
}{
	{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.CannotDecodeAccount}, // invalid base58 string
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLDj", fault.ChecksumMismatch},    // checksum mismatch
	{"YqVxD4vazrrnxnLH2MzCHJedPPz1VKHnKbVfya39nF96ABAYes", fault.NotPublicKey},        // private key
}

func TestValidBase58(t *testing.T) {
	for index, test := range testAccount {
		acc, err := account.AccountFromBase58(test.base58Account)
		assert.Nil(t, err, "from base58 %d", index)
		assert.Equal(t, test.testnet, acc.IsTesting(), "testnet %d", index)
		assert.Equal(t, account.ED25519, acc.KeyType(), "key type %d", index)
		assert.Equal(t, test.publicKey, acc.PublicKeyBytes(), "public key %d", index)
		assert.Equal(t, test.base58Account, acc.String(), "to base58 %d", index)

		j := `"` + test.base58Account + `"`
		var a account.Account
		err = json.Unmarshal([]byte(j), &a)
		assert.Nil(t, err, "from JSON %d", index)
		assert.True(t, acc.Equal(&a), "JSON round trip %d", index)

		buffer, err := json.Marshal(a)
		assert.Nil(t, err, "to JSON %d", index)
		assert.Equal(t, j, string(buffer), "marshal JSON %d", index)
	}
}

func TestInvalidBase58(t *testing.T) {
	for index, test := range testInvalidAccountFromBase58 {
		_, err := account.AccountFromBase58(test.str)
		assert.Equal(t, test.err, err, "invalid base58 %d", index)
	}
}

func TestFromBytesWrongLength(t *testing.T) {
	_, err := account.AccountFromBytes([]byte{0x11, 0x01, 0x02})
	assert.Equal(t, fault.InvalidKeyLength, err, "short key")

	_, err = account.AccountFromBytes([]byte{0x10})
	assert.Equal(t, fault.NotPublicKey, err, "private variant")
}

func TestSignAndVerify(t *testing.T) {
	privateKey, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "generate")

	acc := privateKey.Account()
	assert.True(t, acc.IsTesting(), "testing flag")

	message := []byte("deposit 100000000000")
	signature := privateKey.Sign(message)
	assert.Nil(t, acc.CheckSignature(message, signature), "valid signature")

	message[0] ^= 0xff
	assert.Equal(t, fault.InvalidSignature, acc.CheckSignature(message, signature), "tampered message")
	assert.Equal(t, fault.InvalidSignature, acc.CheckSignature(message, signature[:10]), "short signature")
}

func TestPrivateKeyBase58(t *testing.T) {
	privateKey, err := account.NewPrivateKey(false)
	assert.Nil(t, err, "generate")

	restored, err := account.PrivateKeyFromBase58(privateKey.String())
	assert.Nil(t, err, "from base58")
	assert.Equal(t, privateKey.PrivateKey, restored.PrivateKey, "private key")
	assert.True(t, privateKey.Account().Equal(restored.Account()), "account")

	_, err = account.PrivateKeyFromBase58(privateKey.Account().String())
	assert.Equal(t, fault.NotPublicKey, err, "public key given")
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}
