// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/util"
)

// PrivateKey - ed25519 signing key for an account
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh random key
func NewPrivateKey(test bool) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: priv,
	}, nil
}

// PrivateKeyFromBase58 - converts a Base58 encoded string and returns a private key
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	decoded := util.FromBase58(privateKeyBase58Encoded)
	if len(decoded) <= checksumLength {
		return nil, fault.CannotDecodeAccount
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	keyVariant, keyVariantLength := util.FromVarint64(decoded)
	if 0 == keyVariantLength || keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.NotPublicKey
	}
	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.InvalidKeyType
	}
	if checksumStart-keyVariantLength != ed25519.PrivateKeySize {
		return nil, fault.InvalidKeyLength
	}

	key := make([]byte, ed25519.PrivateKeySize)
	copy(key, decoded[keyVariantLength:checksumStart])

	return &PrivateKey{
		Test:       0 != keyVariant&testKeyCode,
		PrivateKey: key,
	}, nil
}

// Account - the public identity for this key
func (privateKey *PrivateKey) Account() *Account {
	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, privateKey.PrivateKey.Public().(ed25519.PublicKey))
	return &Account{
		Test:      privateKey.Test,
		PublicKey: publicKey,
	}
}

// Sign - produce a signature for a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// Bytes - byte slice for encoded key
func (privateKey *PrivateKey) Bytes() []byte {
	keyVariant := byte(ED25519 << algorithmShift)
	if privateKey.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, privateKey.PrivateKey...)
}

// String - base58 encoding of encoded key with checksum
func (privateKey *PrivateKey) String() string {
	buffer := privateKey.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - convert a private key to its Base58 form
func (privateKey PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}
