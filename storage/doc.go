// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk account store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a Transaction: a LevelDB batch plus a read
// overlay so that a single operation sees its own writes.  Commit
// applies the batch with one atomic write; Abort drops it.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte derived address (see the address package)
// 4. *others*     = byte values of various length
//
// Farms:
//
//   F ++ farm address          - farm configuration and totals
//                                data: packed farm record
//
// Positions:
//
//   P ++ position address      - depositor claim on a farm
//                                data: packed position record
//
// Token accounts:
//
//   T ++ token account address - custody balance (user, vault or rewards account)
//                                data: packed token account record
//
// Testing:
//   Z ++ key                   - testing data
package storage
