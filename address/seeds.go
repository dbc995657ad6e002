// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

// seed prefixes; changing any of these orphans every stored record
const (
	FarmSeed         = "yield_farm"
	PositionSeed     = "user_deposit"
	VaultSeed        = "vault"
	TokenAccountSeed = "token_account"
	RewardsSeed      = "rewards"
)

// FarmAddress - derive(["yield_farm", mint]) together with its bump
func FarmAddress(mint Address) (Address, byte, error) {
	return FindAddress([]byte(FarmSeed), mint[:])
}

// PositionAddress - derive(["user_deposit", owner, farm])
func PositionAddress(owner []byte, farm Address) (Address, error) {
	return Derive([]byte(PositionSeed), owner, farm[:])
}

// VaultAddress - derive(["vault", farm])
func VaultAddress(farm Address) (Address, error) {
	return Derive([]byte(VaultSeed), farm[:])
}

// TokenAccountAddress - derive(["token_account", owner, mint])
func TokenAccountAddress(owner []byte, mint Address) (Address, error) {
	return Derive([]byte(TokenAccountSeed), owner, mint[:])
}

// RewardsAddress - derive(["rewards", farm])
func RewardsAddress(farm Address) (Address, error) {
	return Derive([]byte(RewardsSeed), farm[:])
}
