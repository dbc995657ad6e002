// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/counter"
	"github.com/the-basement/basementd/engine"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/rpc/envelope"
	"github.com/the-basement/basementd/rpc/farm"
	"github.com/the-basement/basementd/rpc/fixtures"
	"github.com/the-basement/basementd/rpc/node"
	"github.com/the-basement/basementd/rpc/position"
	"github.com/the-basement/basementd/rpc/server"
	"github.com/the-basement/basementd/rpc/token"
	"github.com/the-basement/basementd/storage"
)

// a JSON-RPC client connected to a server over a real engine
func setup(t *testing.T) *rpc.Client {
	fixtures.SetupTestLogger()

	err := storage.Initialise(filepath.Join("testing", "rpc.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	log := logger.New(fixtures.LogCategory)
	e, err := engine.New(log, engine.Options{Testing: true})
	if nil != err {
		t.Fatalf("engine error: %s", err)
	}

	c := counter.Counter(0)
	s := server.Create(log, "1.0", &c, e)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	return jsonrpc.NewClient(clientConn)
}

func teardown(client *rpc.Client) {
	_ = client.Close()
	storage.Finalise()
	fixtures.TeardownTestLogger()
}

func TestFarmLifecycle(t *testing.T) {
	client := setup(t)
	defer teardown(client)

	authority := fixtures.NewKey()
	user := fixtures.NewKey()
	mint := fixtures.Address(0x42)

	var balance token.BalanceReply
	err := client.Call("Token.Mint", &token.MintArguments{
		Envelope: fixtures.Signed(user, envelope.MintTag, mint, 200000000000, nil),
	}, &balance)
	assert.Nil(t, err, "wrong Token.Mint")
	assert.Equal(t, uint64(200000000000), balance.Balance, "wrong minted balance")

	var farmReply farm.FarmReply
	err = client.Call("Farm.Initialize", &farm.InstructionArguments{
		Envelope: fixtures.Signed(authority, envelope.InitializeTag, mint, 3, nil),
	}, &farmReply)
	assert.Nil(t, err, "wrong Farm.Initialize")
	if nil == farmReply.Farm {
		t.Fatal("no farm returned")
	}
	farmAddress := farmReply.Farm.Address
	expected, _, _ := address.FarmAddress(mint)
	assert.Equal(t, expected, farmAddress, "wrong farm address")
	assert.Equal(t, uint8(3), farmReply.Farm.BinsCount, "wrong bins count")
	assert.Equal(t, uint8(80), farmReply.Farm.BinAllocations[0].AllocationPercentage, "wrong large allocation")

	err = client.Call("Farm.CreateVault", &farm.InstructionArguments{
		Envelope: fixtures.Signed(authority, envelope.CreateVaultTag, farmAddress, 0, nil),
	}, &farmReply)
	assert.Nil(t, err, "wrong Farm.CreateVault")

	var positionReply engine.PositionInfo
	err = client.Call("Position.Deposit", &position.InstructionArguments{
		Envelope: fixtures.Signed(user, envelope.DepositTag, farmAddress, 100000000000, nil),
	}, &positionReply)
	assert.Nil(t, err, "wrong Position.Deposit")
	assert.Equal(t, uint64(100000000000), positionReply.Value, "wrong deposited value")

	err = client.Call("Position.Withdraw", &position.InstructionArguments{
		Envelope: fixtures.Signed(user, envelope.WithdrawTag, farmAddress, 50000000000, nil),
	}, &positionReply)
	assert.Nil(t, err, "wrong Position.Withdraw")
	assert.Equal(t, uint64(50000000000), positionReply.Value, "wrong remaining value")

	err = client.Call("Farm.Rebalance", &farm.InstructionArguments{
		Envelope: fixtures.Signed(user, envelope.RebalanceTag, farmAddress, 0, nil),
	}, &farmReply)
	assert.Equal(t, rpc.ServerError(fault.Unauthorized.Error()), err, "wrong Farm.Rebalance error")

	var get farm.GetReply
	err = client.Call("Farm.Get", &farm.GetArguments{Farm: farmAddress}, &get)
	assert.Nil(t, err, "wrong Farm.Get")
	assert.Equal(t, uint64(50000000000), get.Farm.TotalDeposits, "wrong total deposits")
	assert.Equal(t, uint64(50000000000), get.Vault, "wrong vault balance")

	var report engine.AuditReport
	err = client.Call("Farm.Audit", &farm.GetArguments{Farm: farmAddress}, &report)
	assert.Nil(t, err, "wrong Farm.Audit")
	assert.Equal(t, 0, len(report.Problems), "audit problems: %v", report.Problems)

	err = client.Call("Token.Balance", &token.BalanceArguments{Owner: user.Account(), Mint: mint}, &balance)
	assert.Nil(t, err, "wrong Token.Balance")
	assert.Equal(t, uint64(150000000000), balance.Balance, "wrong user balance")

	var info node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &info)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, node.ChainTesting, info.Chain, "wrong chain")
}

func TestEnvelopeAcceptedOnce(t *testing.T) {
	client := setup(t)
	defer teardown(client)

	user := fixtures.NewKey()
	arguments := &token.MintArguments{
		Envelope: fixtures.Signed(user, envelope.MintTag, fixtures.Address(0x42), 10, nil),
	}

	var balance token.BalanceReply
	err := client.Call("Token.Mint", arguments, &balance)
	assert.Nil(t, err, "wrong first Token.Mint")

	err = client.Call("Token.Mint", arguments, &balance)
	assert.Equal(t, rpc.ServerError(fault.ReplayedInstruction.Error()), err, "replay accepted")
}
