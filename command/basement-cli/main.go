// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "basement-cli"
	app.Usage = "sign and send farm instructions to basementd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " basementd host/IP and port `HOST:PORT`",
			EnvVar: "BASEMENT_CONNECT",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " base58 private key used to sign `KEY`",
			EnvVar: "BASEMENT_KEY",
		},
		cli.StringFlag{
			Name:  "key-file, K",
			Value: "",
			Usage: " read the private key from `FILE`",
		},
	}

	farmFlag := cli.StringFlag{
		Name:  "farm, f",
		Value: "",
		Usage: "*farm address `FARM`",
	}
	mintFlag := cli.StringFlag{
		Name:  "mint, m",
		Value: "",
		Usage: "*token mint address `MINT`",
	}
	amountFlag := cli.StringFlag{
		Name:  "amount, a",
		Value: "",
		Usage: "*token amount in base units `AMOUNT`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a key pair",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "testnet, t",
					Usage: " create a testing chain key",
				},
			},
			Action: runGenerate,
		},
		{
			Name:   "info",
			Usage:  "display basementd status",
			Action: runInfo,
		},
		{
			Name:      "initialize",
			Usage:     "create a farm for a token mint",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				mintFlag,
				cli.IntFlag{
					Name:  "bins, b",
					Value: 3,
					Usage: " number of bins `COUNT`",
				},
			},
			Action: runInitialize,
		},
		{
			Name:      "create-vault",
			Usage:     "open the vault of a farm",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{farmFlag},
			Action:    runCreateVault,
		},
		{
			Name:      "deposit",
			Usage:     "deposit tokens into a farm",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{farmFlag, amountFlag},
			Action:    runDeposit,
		},
		{
			Name:      "withdraw",
			Usage:     "withdraw tokens from a farm",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{farmFlag, amountFlag},
			Action:    runWithdraw,
		},
		{
			Name:      "rebalance",
			Usage:     "keeper: move bins to their target allocation",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{farmFlag},
			Action:    runRebalance,
		},
		{
			Name:      "compound",
			Usage:     "keeper: fold accrued rewards into the farm",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{farmFlag},
			Action:    runCompound,
		},
		{
			Name:      "harvest",
			Usage:     "keeper: pay collected yield into the rewards account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{farmFlag, amountFlag},
			Action:    runHarvest,
		},
		{
			Name:      "set-keeper",
			Usage:     "authority: name the farm keeper",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				farmFlag,
				cli.StringFlag{
					Name:  "keeper, p",
					Value: "",
					Usage: "*keeper account `ACCOUNT`",
				},
			},
			Action: runSetKeeper,
		},
		{
			Name:      "set-allocations",
			Usage:     "authority: replace the allocation table",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				farmFlag,
				cli.StringSliceFlag{
					Name:  "bin, b",
					Usage: "*bin as `TYPE:PERCENT:STEP:COUNT` e.g. large:80:10:5, repeat for each bin",
				},
			},
			Action: runSetAllocations,
		},
		{
			Name:      "mint",
			Usage:     "testing chain: credit test tokens to the key",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{mintFlag, amountFlag},
			Action:    runMint,
		},
		{
			Name:      "farm",
			Usage:     "display a farm with its balances",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{farmFlag},
			Action:    runFarm,
		},
		{
			Name:      "audit",
			Usage:     "check a farm against its positions",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{farmFlag},
			Action:    runAudit,
		},
		{
			Name:      "position",
			Usage:     "display a position, default owner is the key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				farmFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner account `ACCOUNT`",
				},
			},
			Action: runPosition,
		},
		{
			Name:      "positions",
			Usage:     "list every position of a farm",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{farmFlag},
			Action:    runPositions,
		},
		{
			Name:      "balance",
			Usage:     "display a token balance, default owner is the key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				mintFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner account `ACCOUNT`",
				},
			},
			Action: runBalance,
		},
		{
			Name:  "version",
			Usage: "display basement-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: c.GlobalString("connect"),
				verbose: c.GlobalBool("verbose"),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
