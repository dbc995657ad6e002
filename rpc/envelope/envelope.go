// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package envelope - signed instructions submitted over RPC
//
// the signature covers the packed envelope without the signature
// field; the signer is part of the signed bytes
package envelope

import (
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/farmrecord"
	"github.com/the-basement/basementd/util"
)

// Tag - instruction code
type Tag uint64

// enumerate the instructions
const (
	NullTag           = Tag(iota)
	InitializeTag     = Tag(iota) // farm field holds the mint, amount the bins count
	CreateVaultTag    = Tag(iota)
	DepositTag        = Tag(iota)
	WithdrawTag       = Tag(iota)
	RebalanceTag      = Tag(iota)
	CompoundTag       = Tag(iota)
	SetKeeperTag      = Tag(iota) // argument holds the keeper account bytes
	SetAllocationsTag = Tag(iota) // argument holds the packed allocation table
	HarvestTag        = Tag(iota)
	MintTag           = Tag(iota) // farm field holds the mint

	// this item must be last
	InvalidTag = Tag(iota)
)

// Window - accepted clock difference between signer and node
const Window = 5 * time.Minute

const maxArgumentLength = 256

// Envelope - one signed instruction
type Envelope struct {
	Tag       Tag               `json:"tag"`
	Farm      address.Address   `json:"farm"`
	Amount    uint64            `json:"amount,string"`
	Argument  []byte            `json:"argument"`
	Nonce     uint64            `json:"nonce,string"`
	Timestamp int64             `json:"timestamp,string"`
	Signer    *account.Account  `json:"signer"`
	Signature account.Signature `json:"signature"`
}

// New - an unsigned envelope stamped with the current time
func New(tag Tag, farm address.Address, amount uint64, argument []byte, nonce uint64, signer *account.Account) *Envelope {
	return &Envelope{
		Tag:       tag,
		Farm:      farm,
		Amount:    amount,
		Argument:  argument,
		Nonce:     nonce,
		Timestamp: time.Now().Unix(),
		Signer:    signer,
	}
}

// Pack - the bytes covered by the signature
func (e *Envelope) Pack() ([]byte, error) {
	if e.Tag <= NullTag || e.Tag >= InvalidTag {
		return nil, fault.InvalidInstruction
	}
	if nil == e.Signer {
		return nil, fault.MissingParameters
	}
	if len(e.Argument) > maxArgumentLength {
		return nil, fault.InvalidInstruction
	}

	buffer := util.ToVarint64(uint64(e.Tag))
	buffer = append(buffer, e.Farm[:]...)
	buffer = append(buffer, util.ToVarint64(e.Amount)...)
	buffer = append(buffer, util.ToVarint64(uint64(len(e.Argument)))...)
	buffer = append(buffer, e.Argument...)
	buffer = append(buffer, util.ToVarint64(e.Nonce)...)
	buffer = append(buffer, util.ToVarint64(uint64(e.Timestamp))...)
	signer := e.Signer.Bytes()
	buffer = append(buffer, util.ToVarint64(uint64(len(signer)))...)
	buffer = append(buffer, signer...)
	return buffer, nil
}

// Sign - sign with the signer's private key
func (e *Envelope) Sign(privateKey *account.PrivateKey) error {
	if !privateKey.Account().Equal(e.Signer) {
		return fault.InvalidSignature
	}
	packed, err := e.Pack()
	if nil != err {
		return err
	}
	e.Signature = privateKey.Sign(packed)
	return nil
}

// Verify - check the signature and that the timestamp is within the
// window around now
func (e *Envelope) Verify(now time.Time) error {
	packed, err := e.Pack()
	if nil != err {
		return err
	}
	err = e.Signer.CheckSignature(packed, e.Signature)
	if nil != err {
		return err
	}

	stamp := time.Unix(e.Timestamp, 0)
	if stamp.Before(now.Add(-Window)) || stamp.After(now.Add(Window)) {
		return fault.InvalidTimestamp
	}
	return nil
}

// Digest - identity of a signed envelope for replay detection
func (e *Envelope) Digest() ([32]byte, error) {
	packed, err := e.Pack()
	if nil != err {
		return [32]byte{}, err
	}
	return sha3.Sum256(append(packed, e.Signature...)), nil
}

// PackAllocations - argument form of an allocation table
func PackAllocations(table []farmrecord.BinAllocation) []byte {
	buffer := util.ToVarint64(uint64(len(table)))
	for _, bin := range table {
		buffer = append(buffer, util.ToVarint64(uint64(bin.BinType))...)
		buffer = append(buffer, util.ToVarint64(uint64(bin.AllocationPercentage))...)
		buffer = append(buffer, util.ToVarint64(uint64(bin.StepSize))...)
		buffer = append(buffer, util.ToVarint64(uint64(bin.BinCount))...)
	}
	return buffer
}

// UnpackAllocations - inverse of PackAllocations
func UnpackAllocations(buffer []byte) ([]farmrecord.BinAllocation, error) {
	count, n := util.ClippedVarint64(buffer, 1, 3)
	if 0 == n {
		return nil, fault.InvalidBinsCount
	}

	table := make([]farmrecord.BinAllocation, count)
	for i := range table {
		fields := [4]uint64{}
		limits := [4]uint64{uint64(farmrecord.Small), 100, 65535, 255}
		for j := range fields {
			value, k := util.FromVarint64(buffer[n:])
			if 0 == k {
				return nil, fault.RecordTruncated
			}
			if value > limits[j] {
				return nil, fault.InvalidInstruction
			}
			fields[j] = value
			n += k
		}
		table[i] = farmrecord.BinAllocation{
			BinType:              farmrecord.BinType(fields[0]),
			AllocationPercentage: uint8(fields[1]),
			StepSize:             uint16(fields[2]),
			BinCount:             uint8(fields[3]),
		}
	}
	if n != len(buffer) {
		return nil, fault.RecordHasTrailingData
	}
	return table, nil
}
