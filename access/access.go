// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package access - role checks against stored farm identities
//
// each check must be the first statement of a privileged operation
package access

import (
	"github.com/the-basement/basementd/account"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/farmrecord"
)

// RequireAuthority - caller must be the farm authority
func RequireAuthority(farm *farmrecord.Farm, caller *account.Account) error {
	if nil == farm || !farm.Authority.Equal(caller) {
		return fault.Unauthorized
	}
	return nil
}

// RequireKeeper - caller must be the configured keeper
func RequireKeeper(farm *farmrecord.Farm, caller *account.Account) error {
	if nil == farm || !farm.Keeper.Equal(caller) {
		return fault.Unauthorized
	}
	return nil
}

// RequireOwner - caller must own the position
func RequireOwner(position *farmrecord.Position, caller *account.Account) error {
	if nil == position || !position.Owner.Equal(caller) {
		return fault.Unauthorized
	}
	return nil
}
