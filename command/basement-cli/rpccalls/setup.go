// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/rpc/envelope"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	key     *account.PrivateKey
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a basementd
//
// key may be nil when only queries are made
func NewClient(connect string, key *account.PrivateKey, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	return newClient(conn, key, verbose, handle), nil
}

func newClient(conn net.Conn, key *account.PrivateKey, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		key:     key,
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the basementd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// sign an instruction with the client key
func (client *Client) sign(tag envelope.Tag, farm address.Address, amount uint64, argument []byte) (*envelope.Envelope, error) {
	if nil == client.key {
		return nil, ErrMissingKey
	}
	e := envelope.New(tag, farm, amount, argument, uint64(time.Now().UnixNano()), client.key.Account())
	if err := e.Sign(client.key); nil != err {
		return nil, err
	}
	return e, nil
}

// call a method printing request and reply when verbose
func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	client.trace(method+" Request", arguments)

	if err := client.client.Call(method, arguments, reply); nil != err {
		return err
	}

	client.trace(method+" Reply", reply)
	return nil
}
