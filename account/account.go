// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/util"
)

// enumeration of supported key algorithms
const (
	Nothing = iota // reserved, never valid for signing
	ED25519 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - an identity: farm authority, keeper or position owner
//
// only ed25519 public keys are supported; the Test flag separates
// keys used on the testing chain from live keys
type Account struct {
	Test      bool
	PublicKey []byte
}

// AccountFromBase58 - converts a Base58 encoded string and returns an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	if len(accountDecoded) <= checksumLength {
		return nil, fault.InvalidKeyLength
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return AccountFromBytes(accountDecoded[:checksumStart])
}

// AccountFromBytes - converts a byte encoded buffer and returns an account
func AccountFromBytes(accountBytes []byte) (*Account, error) {

	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if ED25519 != keyAlgorithm || keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	if len(accountBytes)-keyVariantLength != ed25519.PublicKeySize {
		return nil, fault.InvalidKeyLength
	}

	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, accountBytes[keyVariantLength:])

	return &Account{
		Test:      0 != keyVariant&testKeyCode,
		PublicKey: publicKey,
	}, nil
}

// KeyType - key type code (see enumeration above)
func (account *Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
//
// this is the 32 byte value used in address derivation seeds
func (account *Account) PublicKeyBytes() []byte {
	return account.PublicKey
}

// CheckSignature - check the signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) || ed25519.PublicKeySize != len(account.PublicKey) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(account.PublicKey, message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - base58 encoding of encoded key with checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// IsTesting - whether the public key is for the testing chain
func (account *Account) IsTesting() bool {
	return account.Test
}

// Equal - two accounts are the same identity
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return false
	}
	return account.Test == other.Test && bytes.Equal(account.PublicKey, other.PublicKey)
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a Base58 JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
