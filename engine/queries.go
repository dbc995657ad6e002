// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"

	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/address"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/farmrecord"
	"github.com/the-basement/basementd/ledger"
	"github.com/the-basement/basementd/storage"
)

// FarmInfo - a farm record with derived fields
type FarmInfo struct {
	Address address.Address `json:"address"`
	*farmrecord.Farm
	Rewards     address.Address `json:"rewards"`
	Unallocated uint64          `json:"unallocated,string"`
}

// PositionInfo - a position record with its current value
type PositionInfo struct {
	Address address.Address `json:"address"`
	*farmrecord.Position
	Value uint64 `json:"value,string"`
}

// AuditReport - consistency of a farm with its positions and vault
type AuditReport struct {
	Farm          address.Address `json:"farm"`
	TotalDeposits uint64          `json:"totalDeposits,string"`
	VaultBalance  uint64          `json:"vaultBalance,string"`
	Allocated     uint64          `json:"allocated,string"`
	Unallocated   uint64          `json:"unallocated,string"`
	Positions     int             `json:"positions"`
	SumOfValues   uint64          `json:"sumOfValues,string"`
	Dust          uint64          `json:"dust,string"`
	Problems      []string        `json:"problems"`
}

// OK - true if no invariant was violated
func (r *AuditReport) OK() bool {
	return 0 == len(r.Problems)
}

// Farm - read a farm
func (e *Engine) Farm(farmAddress address.Address) (*FarmInfo, error) {
	rewards, err := address.RewardsAddress(farmAddress)
	if nil != err {
		return nil, err
	}

	var farm *farmrecord.Farm
	err = e.view([]address.Address{farmAddress}, func(trx storage.Transaction) error {
		var err error
		farm, err = e.loadFarm(trx, farmAddress)
		return err
	})
	if nil != err {
		return nil, err
	}

	return &FarmInfo{
		Address:     farmAddress,
		Farm:        farm,
		Rewards:     rewards,
		Unallocated: farm.Unallocated(),
	}, nil
}

// Position - read an owner's position in a farm
func (e *Engine) Position(owner *account.Account, farmAddress address.Address) (*PositionInfo, error) {
	if nil == owner {
		return nil, fault.MissingParameters
	}
	positionAddress, err := address.PositionAddress(owner.PublicKeyBytes(), farmAddress)
	if nil != err {
		return nil, err
	}

	info := &PositionInfo{
		Address: positionAddress,
	}
	err = e.view([]address.Address{farmAddress, positionAddress}, func(trx storage.Transaction) error {
		farm, err := e.loadFarm(trx, farmAddress)
		if nil != err {
			return err
		}
		position, err := e.loadPosition(trx, positionAddress)
		if nil != err {
			return err
		}
		if nil == position {
			return fault.PositionNotFound
		}
		info.Position = position
		info.Value, err = ledger.Value(farm, position)
		return err
	})
	if nil != err {
		return nil, err
	}
	return info, nil
}

// TokenBalance - balance of an owner's token account for a mint
//
// an account that was never opened has a zero balance
func (e *Engine) TokenBalance(owner []byte, mint address.Address) (uint64, error) {
	tokenAccount, err := address.TokenAccountAddress(owner, mint)
	if nil != err {
		return 0, err
	}
	return e.balanceOf(tokenAccount)
}

// VaultBalance - tokens held in a farm vault
func (e *Engine) VaultBalance(farmAddress address.Address) (uint64, error) {
	vault, err := address.VaultAddress(farmAddress)
	if nil != err {
		return 0, err
	}
	return e.balanceOf(vault)
}

// RewardsBalance - tokens waiting in a farm rewards account
func (e *Engine) RewardsBalance(farmAddress address.Address) (uint64, error) {
	rewards, err := address.RewardsAddress(farmAddress)
	if nil != err {
		return 0, err
	}
	return e.balanceOf(rewards)
}

func (e *Engine) balanceOf(tokenAccount address.Address) (uint64, error) {
	balance := uint64(0)
	err := e.view([]address.Address{tokenAccount}, func(trx storage.Transaction) error {
		record, err := e.custody.Get(trx, tokenAccount)
		if fault.TokenAccountNotFound == err {
			return nil
		}
		if nil != err {
			return err
		}
		balance = record.Balance
		return nil
	})
	return balance, err
}

// Positions - every position recorded for a farm
func (e *Engine) Positions(farmAddress address.Address) ([]*PositionInfo, error) {
	positions := make([]*PositionInfo, 0, 16)
	err := e.view([]address.Address{farmAddress}, func(trx storage.Transaction) error {
		farm, err := e.loadFarm(trx, farmAddress)
		if nil != err {
			return err
		}
		return e.eachPosition(farmAddress, func(positionAddress address.Address, position *farmrecord.Position) error {
			value, err := ledger.Value(farm, position)
			if nil != err {
				return err
			}
			positions = append(positions, &PositionInfo{
				Address:  positionAddress,
				Position: position,
				Value:    value,
			})
			return nil
		})
	})
	if nil != err {
		return nil, err
	}
	return positions, nil
}

// Audit - recompute the farm totals from its positions and vault
//
// the farm lock excludes every deposit, withdraw and compound on the
// farm while the positions are scanned
func (e *Engine) Audit(farmAddress address.Address) (*AuditReport, error) {
	vault, err := address.VaultAddress(farmAddress)
	if nil != err {
		return nil, err
	}

	report := &AuditReport{
		Farm:     farmAddress,
		Problems: []string{},
	}
	err = e.view([]address.Address{farmAddress, vault}, func(trx storage.Transaction) error {
		farm, err := e.loadFarm(trx, farmAddress)
		if nil != err {
			return err
		}
		report.TotalDeposits = farm.TotalDeposits
		report.Allocated = farm.Allocated()
		report.Unallocated = farm.Unallocated()

		if farm.HasVault() {
			record, err := e.custody.Get(trx, farm.Vault)
			if nil != err {
				return err
			}
			report.VaultBalance = record.Balance
		}

		sum := uint64(0)
		err = e.eachPosition(farmAddress, func(_ address.Address, position *farmrecord.Position) error {
			value, err := ledger.Value(farm, position)
			if nil != err {
				return err
			}
			if sum+value < sum {
				return fault.ArithmeticOverflow
			}
			sum += value
			report.Positions += 1
			return nil
		})
		if nil != err {
			return err
		}
		report.SumOfValues = sum

		if sum > farm.TotalDeposits {
			report.Problems = append(report.Problems, fmt.Sprintf("positions: %d exceed total deposits: %d", sum, farm.TotalDeposits))
		} else {
			report.Dust = farm.TotalDeposits - sum
		}
		if report.VaultBalance != farm.TotalDeposits {
			report.Problems = append(report.Problems, fmt.Sprintf("vault balance: %d  total deposits: %d", report.VaultBalance, farm.TotalDeposits))
		}
		if report.Allocated > farm.TotalDeposits {
			report.Problems = append(report.Problems, fmt.Sprintf("allocated: %d exceeds total deposits: %d", report.Allocated, farm.TotalDeposits))
		}
		percent := 0
		for _, bin := range farm.BinAllocations {
			percent += int(bin.AllocationPercentage)
		}
		if 100 != percent || len(farm.BinAllocations) != int(farm.BinsCount) {
			report.Problems = append(report.Problems, fmt.Sprintf("allocation table: %d bins summing to: %d%%", len(farm.BinAllocations), percent))
		}
		return nil
	})
	if nil != err {
		return nil, err
	}

	if !report.OK() {
		e.log.Criticalf("audit: farm: %s  problems: %v", farmAddress, report.Problems)
	}
	return report, nil
}

// scan the committed positions pool for one farm
func (e *Engine) eachPosition(farmAddress address.Address, f func(address.Address, *farmrecord.Position) error) error {
	return storage.Pool.Positions.NewFetchCursor().Map(func(key []byte, value []byte) error {
		position, err := farmrecord.UnpackPosition(value)
		if nil != err {
			return err
		}
		if position.Farm != farmAddress {
			return nil
		}
		positionAddress, err := address.FromBytes(key)
		if nil != err {
			return err
		}
		return f(positionAddress, position)
	})
}
