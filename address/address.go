// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/util"
)

// Length - number of bytes in an address
const Length = 32

// limits on derivation input
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

// prefixed to every derivation so addresses cannot collide with
// digests computed elsewhere from the same bytes
const domainTag = "basement:derived-address"

// the first byte of a derived address is never this value
const reservedPrefix = 0xff

// Address - a storage address or a token mint identity
//
// derived addresses come from FindAddress; mints and public keys are
// plain 32 byte values converted with FromBytes
type Address [Length]byte

// Zero - the unset address
var Zero Address

// FromBytes - convert a byte slice to an address
func FromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if Length != len(buffer) {
		return a, fault.InvalidAddress
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - convert the text form back to an address
func FromBase58(s string) (Address, error) {
	return FromBytes(util.FromBase58(s))
}

// IsZero - true if the address has never been set
func (a Address) IsZero() bool {
	return a == Zero
}

// Bytes - a copy of the address as a slice
func (a Address) Bytes() []byte {
	b := make([]byte, Length)
	copy(b, a[:])
	return b
}

// String - base58 text form (for %s)
func (a Address) String() string {
	return util.ToBase58(a[:])
}

// GoString - hex form for debugging (for %#v)
func (a Address) GoString() string {
	return "<address:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - convert address to base58 text
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 text to an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}

// CreateAddress - hash a seed tuple and bump into a candidate address
func CreateAddress(seeds [][]byte, bump byte) (Address, error) {
	if err := validateSeeds(seeds); nil != err {
		return Zero, err
	}

	h := sha3.New256()
	h.Write([]byte(domainTag))
	for _, seed := range seeds {
		h.Write(util.ToVarint64(uint64(len(seed))))
		h.Write(seed)
	}
	h.Write([]byte{bump})

	a := Address{}
	copy(a[:], h.Sum(nil))
	return a, nil
}

// FindAddress - search bump values downward from 255 for the first
// candidate outside the reserved prefix
func FindAddress(seeds ...[]byte) (Address, byte, error) {
	if err := validateSeeds(seeds); nil != err {
		return Zero, 0, err
	}

	for bump := 255; bump >= 0; bump -= 1 {
		a, err := CreateAddress(seeds, byte(bump))
		if nil != err {
			return Zero, 0, err
		}
		if reservedPrefix != a[0] {
			return a, byte(bump), nil
		}
	}
	return Zero, 0, fault.InvalidSeed
}

// Derive - the canonical address for a seed tuple
func Derive(seeds ...[]byte) (Address, error) {
	a, _, err := FindAddress(seeds...)
	return a, err
}

func validateSeeds(seeds [][]byte) error {
	if 0 == len(seeds) || len(seeds) > MaxSeeds {
		return fault.InvalidSeed
	}
	for _, seed := range seeds {
		if 0 == len(seed) || len(seed) > MaxSeedLength {
			return fault.InvalidSeed
		}
	}
	return nil
}
