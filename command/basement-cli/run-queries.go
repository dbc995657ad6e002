// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/the-basement/basementd/command/basement-cli/rpccalls"
)

func runInfo(c *cli.Context) error {
	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetInfo()
	if nil != err {
		return err
	}
	return rpccalls.PrintJSON(m.w, "", reply)
}

func runFarm(c *cli.Context) error {
	farm, err := checkAddress("farm", c.String("farm"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetFarm(farm)
	if nil != err {
		return err
	}
	return rpccalls.PrintJSON(m.w, "", reply)
}

func runAudit(c *cli.Context) error {
	farm, err := checkAddress("farm", c.String("farm"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Audit(farm)
	if nil != err {
		return err
	}
	err = rpccalls.PrintJSON(m.w, "", reply)
	if nil != err {
		return err
	}
	if !reply.OK() {
		return cli.NewExitError("audit failed", 2)
	}
	return nil
}

func runPosition(c *cli.Context) error {
	farm, err := checkAddress("farm", c.String("farm"))
	if nil != err {
		return err
	}
	owner, err := checkOwner(c)
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetPosition(owner, farm)
	if nil != err {
		return err
	}
	return rpccalls.PrintJSON(m.w, "", reply)
}

func runPositions(c *cli.Context) error {
	farm, err := checkAddress("farm", c.String("farm"))
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListPositions(farm)
	if nil != err {
		return err
	}
	return rpccalls.PrintJSON(m.w, "", reply)
}

func runBalance(c *cli.Context) error {
	mint, err := checkAddress("mint", c.String("mint"))
	if nil != err {
		return err
	}
	owner, err := checkOwner(c)
	if nil != err {
		return err
	}

	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Balance(owner, mint)
	if nil != err {
		return err
	}
	return rpccalls.PrintJSON(m.w, "", reply)
}
