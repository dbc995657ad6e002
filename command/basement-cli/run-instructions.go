// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/command/basement-cli/rpccalls"
)

func runInitialize(c *cli.Context) error {
	mint, err := checkAddress("mint", c.String("mint"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "mint: %s\n", mint)
		fmt.Fprintf(m.e, "bins: %d\n", c.Int("bins"))
	}

	reply, err := client.Initialize(mint, c.Int("bins"))
	if nil != err {
		return err
	}
	return rpccalls.PrintJSON(m.w, "", reply)
}

func runCreateVault(c *cli.Context) error {
	farm, err := checkAddress("farm", c.String("farm"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateVault(farm)
	if nil != err {
		return err
	}
	return rpccalls.PrintJSON(m.w, "", reply)
}

func runDeposit(c *cli.Context) error {
	return runPositionChange(c, true)
}

func runWithdraw(c *cli.Context) error {
	return runPositionChange(c, false)
}

func runPositionChange(c *cli.Context, deposit bool) error {
	farm, err := checkAddress("farm", c.String("farm"))
	if nil != err {
		return err
	}
	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "farm: %s\n", farm)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	change := client.Withdraw
	if deposit {
		change = client.Deposit
	}
	reply, err := change(farm, amount)
	if nil != err {
		return err
	}
	return rpccalls.PrintJSON(m.w, "", reply)
}

func runRebalance(c *cli.Context) error {
	farm, err := checkAddress("farm", c.String("farm"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Rebalance(farm)
	if nil != err {
		return err
	}
	return rpccalls.PrintJSON(m.w, "", reply)
}

func runCompound(c *cli.Context) error {
	farm, err := checkAddress("farm", c.String("farm"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Compound(farm)
	if nil != err {
		return err
	}
	return rpccalls.PrintJSON(m.w, "", reply)
}

func runHarvest(c *cli.Context) error {
	farm, err := checkAddress("farm", c.String("farm"))
	if nil != err {
		return err
	}
	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Harvest(farm, amount)
	if nil != err {
		return err
	}
	return rpccalls.PrintJSON(m.w, "", reply)
}

func runSetKeeper(c *cli.Context) error {
	farm, err := checkAddress("farm", c.String("farm"))
	if nil != err {
		return err
	}
	if "" == c.String("keeper") {
		return ErrRequired("keeper")
	}
	keeper, err := account.AccountFromBase58(c.String("keeper"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.SetKeeper(farm, keeper)
	if nil != err {
		return err
	}
	return rpccalls.PrintJSON(m.w, "", reply)
}

func runSetAllocations(c *cli.Context) error {
	farm, err := checkAddress("farm", c.String("farm"))
	if nil != err {
		return err
	}
	table, err := parseBins(c.StringSlice("bin"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.SetAllocations(farm, table)
	if nil != err {
		return err
	}
	return rpccalls.PrintJSON(m.w, "", reply)
}

func runMint(c *cli.Context) error {
	mint, err := checkAddress("mint", c.String("mint"))
	if nil != err {
		return err
	}
	amount, err := checkAmount(c.String("amount"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Mint(mint, amount)
	if nil != err {
		return err
	}
	return rpccalls.PrintJSON(m.w, "", reply)
}
