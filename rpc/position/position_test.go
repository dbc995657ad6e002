// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package position_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/the-basement/basementd/engine"
	"github.com/the-basement/basementd/engine/mocks"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/farmrecord"
	"github.com/the-basement/basementd/rpc/envelope"
	"github.com/the-basement/basementd/rpc/fixtures"
	"github.com/the-basement/basementd/rpc/position"
)

func TestPositionDeposit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	p := position.New(logger.New(fixtures.LogCategory), ops, envelope.NewReplayGuard())

	key := fixtures.NewKey()
	farmAddress := fixtures.Address(1)
	info := &engine.PositionInfo{
		Address: fixtures.Address(2),
		Position: &farmrecord.Position{
			Owner:  key.Account(),
			Farm:   farmAddress,
			Amount: 100000000000,
		},
		Value: 100000000000,
	}
	ops.EXPECT().Deposit(key.Account(), farmAddress, uint64(100000000000)).Return(info, nil).Times(1)

	arguments := position.InstructionArguments{
		Envelope: fixtures.Signed(key, envelope.DepositTag, farmAddress, 100000000000, nil),
	}
	var reply engine.PositionInfo
	err := p.Deposit(&arguments, &reply)
	assert.Nil(t, err, "wrong Deposit")
	assert.Equal(t, *info, reply, "wrong position")

	// a deposit envelope cannot be used to withdraw
	arguments = position.InstructionArguments{
		Envelope: fixtures.Signed(key, envelope.DepositTag, farmAddress, 1, nil),
	}
	err = p.Withdraw(&arguments, &reply)
	assert.Equal(t, fault.InvalidInstruction, err, "wrong tag accepted")
}

func TestPositionWithdrawInsufficient(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	p := position.New(logger.New(fixtures.LogCategory), ops, envelope.NewReplayGuard())

	key := fixtures.NewKey()
	farmAddress := fixtures.Address(1)
	ops.EXPECT().Withdraw(key.Account(), farmAddress, uint64(5)).Return(nil, fault.InsufficientBalance).Times(1)

	arguments := position.InstructionArguments{
		Envelope: fixtures.Signed(key, envelope.WithdrawTag, farmAddress, 5, nil),
	}
	var reply engine.PositionInfo
	err := p.Withdraw(&arguments, &reply)
	assert.Equal(t, fault.InsufficientBalance, err, "wrong error")
}

func TestPositionStaleEnvelope(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	p := position.New(logger.New(fixtures.LogCategory), ops, envelope.NewReplayGuard())
	p.Clock = func() time.Time {
		return time.Now().Add(time.Hour)
	}

	arguments := position.InstructionArguments{
		Envelope: fixtures.Signed(fixtures.NewKey(), envelope.DepositTag, fixtures.Address(1), 5, nil),
	}
	var reply engine.PositionInfo
	err := p.Deposit(&arguments, &reply)
	assert.Equal(t, fault.InvalidTimestamp, err, "stale envelope accepted")
}

func TestPositionGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ops := mocks.NewMockOperations(ctl)
	p := position.New(logger.New(fixtures.LogCategory), ops, envelope.NewReplayGuard())

	owner := fixtures.NewKey().Account()
	farmAddress := fixtures.Address(1)
	info := &engine.PositionInfo{
		Address:  fixtures.Address(2),
		Position: &farmrecord.Position{Owner: owner, Farm: farmAddress, Amount: 10},
		Value:    11,
	}
	ops.EXPECT().Position(owner, farmAddress).Return(info, nil).Times(1)

	var reply engine.PositionInfo
	err := p.Get(&position.GetArguments{Owner: owner, Farm: farmAddress}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, uint64(11), reply.Value, "wrong value")

	err = p.Get(&position.GetArguments{Farm: farmAddress}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "missing owner accepted")

	ops.EXPECT().Positions(farmAddress).Return([]*engine.PositionInfo{info}, nil).Times(1)
	var list position.ListReply
	err = p.List(&position.ListArguments{Farm: farmAddress}, &list)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, 1, len(list.Positions), "wrong count")
}
