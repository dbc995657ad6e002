// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/engine"
	"github.com/the-basement/basementd/rpc/envelope"
	"github.com/the-basement/basementd/rpc/position"
)

func (client *Client) positionInstruction(method string, tag envelope.Tag, farmAddress address.Address, amount uint64) (*engine.PositionInfo, error) {
	e, err := client.sign(tag, farmAddress, amount, nil)
	if nil != err {
		return nil, err
	}

	reply := &engine.PositionInfo{}
	err = client.call(method, &position.InstructionArguments{Envelope: e}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Deposit - move tokens from the key's token account into the farm
func (client *Client) Deposit(farmAddress address.Address, amount uint64) (*engine.PositionInfo, error) {
	return client.positionInstruction("Position.Deposit", envelope.DepositTag, farmAddress, amount)
}

// Withdraw - move tokens from the farm back to the key's token account
func (client *Client) Withdraw(farmAddress address.Address, amount uint64) (*engine.PositionInfo, error) {
	return client.positionInstruction("Position.Withdraw", envelope.WithdrawTag, farmAddress, amount)
}

// GetPosition - read a position with its current value
func (client *Client) GetPosition(owner *account.Account, farmAddress address.Address) (*engine.PositionInfo, error) {
	reply := &engine.PositionInfo{}
	err := client.call("Position.Get", &position.GetArguments{Owner: owner, Farm: farmAddress}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// ListPositions - every position of a farm
func (client *Client) ListPositions(farmAddress address.Address) (*position.ListReply, error) {
	reply := &position.ListReply{}
	err := client.call("Position.List", &position.ListArguments{Farm: farmAddress}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
