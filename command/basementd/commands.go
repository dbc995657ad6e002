// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/engine"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/rpc/certificate"
	"github.com/the-basement/basementd/util"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	keeperPrivateKeyFilename = "keeper.private"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.Generate("rpc", certificateFilename, privateKeyFilename, addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-keeper-key", "keeper":
		privateKeyFilename := getFilenameWithDirectory(arguments, keeperPrivateKeyFilename)

		if util.EnsureFileExists(privateKeyFilename) {
			fmt.Printf("generate keeper key: %q error: %s\n", privateKeyFilename, fault.KeyFileAlreadyExists)
			exitwithstatus.Exit(1)
		}

		test := len(arguments) >= 2 && "test" == arguments[1]
		key, err := account.NewPrivateKey(test)
		if nil != err {
			fmt.Printf("generate keeper key: %q error: %s\n", privateKeyFilename, err)
			exitwithstatus.Exit(1)
		}

		if err := ioutil.WriteFile(privateKeyFilename, []byte(key.String()+"\n"), 0600); err != nil {
			os.Remove(privateKeyFilename)
			fmt.Printf("generate keeper key: %q error: %s\n", privateKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated keeper key: %q\n", privateKeyFilename)
		fmt.Printf("keeper account: %s\n", key.Account())

	case "start", "run":
		return false // continue processing

	case "farm", "audit":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-keeper-key [DIR [test]] (keeper) - create keeper private key in: %q\n", "DIR/"+keeperPrivateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  farm FARM                           - display a farm record as JSON\n")
		fmt.Printf("\n")

		fmt.Printf("  audit FARM                          - check the farm totals against its positions\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the storage and engine are started so these commands can read the
// farm records
func processDataCommand(log *logger.L, arguments []string, ops engine.Operations) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "farm":
		farm := farmArgument(command, arguments)
		info, err := ops.Farm(farm)
		if nil != err {
			exitwithstatus.Message("farm: %s  error: %s", farm, err)
		}
		printJSON(info)

	case "audit":
		farm := farmArgument(command, arguments)
		report, err := ops.Audit(farm)
		if nil != err {
			exitwithstatus.Message("audit: %s  error: %s", farm, err)
		}
		printJSON(report)
		if !report.OK() {
			log.Criticalf("audit: %s  failed: %v", farm, report.Problems)
			exitwithstatus.Exit(2)
		}

	case "start", "run":
		return false // continue processing

	default:
		return false
	}

	return true
}

func farmArgument(command string, arguments []string) address.Address {
	if len(arguments) < 1 {
		exitwithstatus.Message("%s: missing farm address", command)
	}
	farm, err := address.FromBase58(arguments[0])
	if nil != err {
		exitwithstatus.Message("%s: farm: %q  error: %s", command, arguments[0], err)
	}
	return farm
}

func printJSON(item interface{}) {
	b, err := json.Marshal(item)
	if err != nil {
		exitwithstatus.Message("error: %s", err)
	}
	var out bytes.Buffer
	json.Indent(&out, b, "", "  ")
	out.WriteTo(os.Stdout)
	os.Stdout.WriteString("\n")
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
