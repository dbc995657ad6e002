// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/engine"
	"github.com/the-basement/basementd/farmrecord"
	"github.com/the-basement/basementd/rpc/envelope"
	"github.com/the-basement/basementd/rpc/farm"
)

func (client *Client) farmInstruction(method string, tag envelope.Tag, farmAddress address.Address, amount uint64, argument []byte) (*farm.FarmReply, error) {
	e, err := client.sign(tag, farmAddress, amount, argument)
	if nil != err {
		return nil, err
	}

	reply := &farm.FarmReply{}
	err = client.call(method, &farm.InstructionArguments{Envelope: e}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Initialize - create a farm for a mint with the default allocation
func (client *Client) Initialize(mint address.Address, binsCount int) (*farm.FarmReply, error) {
	return client.farmInstruction("Farm.Initialize", envelope.InitializeTag, mint, uint64(binsCount), nil)
}

// CreateVault - create the vault token account of a farm
func (client *Client) CreateVault(farmAddress address.Address) (*farm.FarmReply, error) {
	return client.farmInstruction("Farm.CreateVault", envelope.CreateVaultTag, farmAddress, 0, nil)
}

// Rebalance - recompute the bin allocations
func (client *Client) Rebalance(farmAddress address.Address) (*farm.FarmReply, error) {
	return client.farmInstruction("Farm.Rebalance", envelope.RebalanceTag, farmAddress, 0, nil)
}

// Harvest - move collected yield into the farm rewards account
func (client *Client) Harvest(farmAddress address.Address, amount uint64) (*farm.FarmReply, error) {
	return client.farmInstruction("Farm.Harvest", envelope.HarvestTag, farmAddress, amount, nil)
}

// SetKeeper - replace the farm keeper
func (client *Client) SetKeeper(farmAddress address.Address, keeper *account.Account) (*farm.FarmReply, error) {
	return client.farmInstruction("Farm.SetKeeper", envelope.SetKeeperTag, farmAddress, 0, keeper.Bytes())
}

// SetAllocations - replace the allocation table
func (client *Client) SetAllocations(farmAddress address.Address, table []farmrecord.BinAllocation) (*farm.FarmReply, error) {
	return client.farmInstruction("Farm.SetAllocations", envelope.SetAllocationsTag, farmAddress, 0, envelope.PackAllocations(table))
}

// Compound - fold the accrual into the farm
func (client *Client) Compound(farmAddress address.Address) (*farm.CompoundReply, error) {
	e, err := client.sign(envelope.CompoundTag, farmAddress, 0, nil)
	if nil != err {
		return nil, err
	}

	reply := &farm.CompoundReply{}
	err = client.call("Farm.Compound", &farm.InstructionArguments{Envelope: e}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// GetFarm - read a farm with its balances
func (client *Client) GetFarm(farmAddress address.Address) (*farm.GetReply, error) {
	reply := &farm.GetReply{}
	err := client.call("Farm.Get", &farm.GetArguments{Farm: farmAddress}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Audit - check a farm against its positions
func (client *Client) Audit(farmAddress address.Address) (*engine.AuditReport, error) {
	reply := &engine.AuditReport{}
	err := client.call("Farm.Audit", &farm.GetArguments{Farm: farmAddress}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
