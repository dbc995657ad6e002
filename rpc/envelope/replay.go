// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package envelope

import (
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/the-basement/basementd/fault"
)

// ReplayGuard - remembers envelope digests for twice the timestamp
// window; an envelope outside the window is rejected by Verify, so
// nothing older needs remembering
type ReplayGuard struct {
	seen *cache.Cache
}

// NewReplayGuard - create an empty guard
func NewReplayGuard() *ReplayGuard {
	return &ReplayGuard{
		seen: cache.New(2*Window, Window),
	}
}

// Check - verify the envelope at now and record its digest
//
// the same envelope is accepted at most once
func (g *ReplayGuard) Check(e *Envelope, now time.Time) error {
	err := e.Verify(now)
	if nil != err {
		return err
	}
	digest, err := e.Digest()
	if nil != err {
		return err
	}
	err = g.seen.Add(hex.EncodeToString(digest[:]), struct{}{}, cache.DefaultExpiration)
	if nil != err {
		return fault.ReplayedInstruction
	}
	return nil
}

// Size - number of remembered digests
func (g *ReplayGuard) Size() int {
	return g.seen.ItemCount()
}

// Accept - Check an envelope that must carry the given instruction
func (g *ReplayGuard) Accept(e *Envelope, tag Tag, now time.Time) error {
	if nil == e || nil == e.Signer {
		return fault.MissingParameters
	}
	if tag != e.Tag {
		return fault.InvalidInstruction
	}
	return g.Check(e, now)
}
