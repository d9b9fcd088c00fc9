// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package blacklist implements the deny-list consulted on every
// balance-affecting operation. Policy about who may be listed lives in
// the token layer; this package owns the flag and its idempotence rules.
package blacklist

import (
	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/reverts"
	"github.com/aurum-network/aurum/builtin/slot"
)

var slotFlags = aurum.BytesToBytes32([]byte("blacklist"))

// Blacklist the deny-list of accounts.
type Blacklist struct {
	flags *slot.Mapping[aurum.Address, bool]
}

// New creates the deny-list over the given storage context.
func New(ctx *slot.Context) *Blacklist {
	return &Blacklist{
		flags: slot.NewMapping[aurum.Address, bool](ctx, slotFlags),
	}
}

// IsBlacklisted returns whether the account is listed.
func (b *Blacklist) IsBlacklisted(account aurum.Address) (bool, error) {
	return b.flags.Get(account)
}

// Add lists the account. Fails with AlreadyBlacklisted if the flag is set.
func (b *Blacklist) Add(account aurum.Address) error {
	listed, err := b.flags.Get(account)
	if err != nil {
		return err
	}
	if listed {
		return reverts.New(reverts.AlreadyBlacklisted, "account %v", account)
	}
	return b.flags.Set(account, true)
}

// Remove unlists the account. Fails with NotBlacklisted if the flag is unset.
func (b *Blacklist) Remove(account aurum.Address) error {
	listed, err := b.flags.Get(account)
	if err != nil {
		return err
	}
	if !listed {
		return reverts.New(reverts.NotBlacklisted, "account %v", account)
	}
	return b.flags.Delete(account)
}
