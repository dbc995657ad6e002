// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package farmrecord

import (
	"strings"

	"github.com/the-basement/basementd/fault"
)

// BinType - strategy bucket discriminant
type BinType uint8

// the bin types in table order
const (
	Large BinType = iota
	Medium
	Small

	// this item must be last
	binTypeLimit
)

var binTypeNames = []string{"large", "medium", "small"}

// BinAllocation - one strategy bucket of a farm
type BinAllocation struct {
	BinType              BinType `json:"binType"`
	AllocationPercentage uint8   `json:"allocationPercentage"`
	CurrentAllocation    uint64  `json:"currentAllocation,string"`
	StepSize             uint16  `json:"stepSize"`
	BinCount             uint8   `json:"binCount"`
}

// IsValid - true for a known bin type
func (t BinType) IsValid() bool {
	return t < binTypeLimit
}

// String - lower case name
func (t BinType) String() string {
	if !t.IsValid() {
		return "unknown"
	}
	return binTypeNames[t]
}

// BinTypeFromString - parse a name such as "Large" or "small"
func BinTypeFromString(s string) (BinType, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	for i, name := range binTypeNames {
		if name == lower {
			return BinType(i), nil
		}
	}
	return binTypeLimit, fault.InvalidBinType
}

// MarshalText - bin type name for JSON
func (t BinType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fault.InvalidBinType
	}
	return []byte(t.String()), nil
}

// UnmarshalText - bin type from its JSON name
func (t *BinType) UnmarshalText(s []byte) error {
	bt, err := BinTypeFromString(string(s))
	if nil != err {
		return err
	}
	*t = bt
	return nil
}
