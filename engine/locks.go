// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"bytes"
	"sort"
	"sync"

	"github.com/the-basement/basementd/address"
)

// single writer per account
//
// an entry lives only while some operation holds or waits for it
type lockTable struct {
	sync.Mutex
	entries map[address.Address]*lockEntry
}

type lockEntry struct {
	sync.Mutex
	refs int
}

func newLockTable() *lockTable {
	return &lockTable{
		entries: make(map[address.Address]*lockEntry),
	}
}

// acquire - lock every address in ascending byte order and return the
// function that releases them
//
// a fixed order means two operations can never wait on each other
func (t *lockTable) acquire(addresses ...address.Address) func() {
	ordered := make([]address.Address, 0, len(addresses))
	seen := make(map[address.Address]struct{}, len(addresses))
	for _, a := range addresses {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		ordered = append(ordered, a)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return bytes.Compare(ordered[i][:], ordered[j][:]) < 0
	})

	held := make([]*lockEntry, len(ordered))
	for i, a := range ordered {
		t.Lock()
		e, ok := t.entries[a]
		if !ok {
			e = &lockEntry{}
			t.entries[a] = e
		}
		e.refs += 1
		t.Unlock()

		e.Lock()
		held[i] = e
	}

	return func() {
		for i := len(held) - 1; i >= 0; i -= 1 {
			held[i].Unlock()

			t.Lock()
			held[i].refs -= 1
			if 0 == held[i].refs {
				delete(t.entries, ordered[i])
			}
			t.Unlock()
		}
	}
}

// number of addresses currently held or waited for
func (t *lockTable) size() int {
	t.Lock()
	defer t.Unlock()
	return len(t.entries)
}
