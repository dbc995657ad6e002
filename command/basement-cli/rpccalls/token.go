// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/rpc/envelope"
	"github.com/the-basement/basementd/rpc/node"
	"github.com/the-basement/basementd/rpc/token"
)

// Mint - credit test tokens to the key's token account
func (client *Client) Mint(mint address.Address, amount uint64) (*token.BalanceReply, error) {
	e, err := client.sign(envelope.MintTag, mint, amount, nil)
	if nil != err {
		return nil, err
	}

	reply := &token.BalanceReply{}
	err = client.call("Token.Mint", &token.MintArguments{Envelope: e}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Balance - balance of an owner's token account
func (client *Client) Balance(owner *account.Account, mint address.Address) (*token.BalanceReply, error) {
	reply := &token.BalanceReply{}
	err := client.call("Token.Balance", &token.BalanceArguments{Owner: owner, Mint: mint}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// GetInfo - request status from basementd
func (client *Client) GetInfo() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	err := client.call("Node.Info", &node.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
