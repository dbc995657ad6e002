// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/command/basement-cli/rpccalls"
	"github.com/the-basement/basementd/farmrecord"
)

// the signing key from --key or --key-file, nil if neither is given
func privateKey(c *cli.Context) (*account.PrivateKey, error) {
	key := strings.TrimSpace(c.GlobalString("key"))
	if fileName := c.GlobalString("key-file"); "" != fileName {
		b, err := ioutil.ReadFile(fileName)
		if nil != err {
			return nil, err
		}
		key = strings.TrimSpace(string(b))
	}
	if "" == key {
		return nil, nil
	}
	return account.PrivateKeyFromBase58(key)
}

// connect with the key from the global options
func connect(c *cli.Context) (*rpccalls.Client, *metadata, error) {
	m := c.App.Metadata["config"].(*metadata)

	key, err := privateKey(c)
	if nil != err {
		return nil, nil, err
	}

	client, err := rpccalls.NewClient(m.connect, key, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return client, m, nil
}

func checkAddress(name string, s string) (address.Address, error) {
	if "" == s {
		return address.Address{}, ErrRequired(name)
	}
	return address.FromBase58(s)
}

func checkAmount(s string) (uint64, error) {
	if "" == s {
		return 0, ErrRequired("amount")
	}
	amount, err := strconv.ParseUint(s, 10, 64)
	if nil != err || 0 == amount {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}

// owner from the flag, or the account of the signing key
func checkOwner(c *cli.Context) (*account.Account, error) {
	if s := c.String("owner"); "" != s {
		return account.AccountFromBase58(s)
	}
	key, err := privateKey(c)
	if nil != err {
		return nil, err
	}
	if nil == key {
		return nil, ErrRequired("owner")
	}
	return key.Account(), nil
}

// parse TYPE:PERCENT:STEP:COUNT
func parseBin(s string) (farmrecord.BinAllocation, error) {
	fields := strings.Split(s, ":")
	if 4 != len(fields) {
		return farmrecord.BinAllocation{}, ErrInvalidBin
	}

	binType, err := farmrecord.BinTypeFromString(fields[0])
	if nil != err {
		return farmrecord.BinAllocation{}, err
	}
	percentage, err := strconv.ParseUint(fields[1], 10, 8)
	if nil != err || percentage > 100 {
		return farmrecord.BinAllocation{}, ErrInvalidBin
	}
	step, err := strconv.ParseUint(fields[2], 10, 16)
	if nil != err {
		return farmrecord.BinAllocation{}, ErrInvalidBin
	}
	count, err := strconv.ParseUint(fields[3], 10, 8)
	if nil != err {
		return farmrecord.BinAllocation{}, ErrInvalidBin
	}

	return farmrecord.BinAllocation{
		BinType:              binType,
		AllocationPercentage: uint8(percentage),
		StepSize:             uint16(step),
		BinCount:             uint8(count),
	}, nil
}

func parseBins(bins []string) ([]farmrecord.BinAllocation, error) {
	if 0 == len(bins) {
		return nil, ErrRequired("bin")
	}
	table := make([]farmrecord.BinAllocation, 0, len(bins))
	for _, s := range bins {
		bin, err := parseBin(s)
		if nil != err {
			return nil, err
		}
		table = append(table, bin)
	}
	return table, nil
}
