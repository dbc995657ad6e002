// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/command/basement-cli/rpccalls"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := account.NewPrivateKey(c.Bool("testnet"))
	if nil != err {
		return err
	}

	type KeyDisplay struct {
		Account    *account.Account    `json:"account"`
		PrivateKey *account.PrivateKey `json:"private_key"`
	}
	return rpccalls.PrintJSON(m.w, "", KeyDisplay{
		Account:    key.Account(),
		PrivateKey: key,
	})
}
