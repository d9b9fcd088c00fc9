// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package roles implements the role registry gating all state-mutating
// entry points of the built-in contracts.
package roles

import (
	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/reverts"
	"github.com/aurum-network/aurum/builtin/slot"
)

// Role a capability required by gated entry points.
type Role uint8

const (
	Admin Role = iota
	Minter
	Pauser
	Blacklister
	Burner
)

// String returns the canonical role name.
func (r Role) String() string {
	switch r {
	case Admin:
		return "admin"
	case Minter:
		return "minter"
	case Pauser:
		return "pauser"
	case Blacklister:
		return "blacklister"
	case Burner:
		return "burner"
	}
	return "unknown"
}

var slotRoles = aurum.BytesToBytes32([]byte("roles"))

// Roles is the registry of role memberships.
type Roles struct {
	flags *slot.Mapping[slot.Bytes, bool]
}

// New creates the registry over the given storage context.
func New(ctx *slot.Context) *Roles {
	return &Roles{
		flags: slot.NewMapping[slot.Bytes, bool](ctx, slotRoles),
	}
}

func membershipKey(account aurum.Address, role Role) slot.Bytes {
	return slot.Bytes(append([]byte{byte(role)}, account.Bytes()...))
}

// Has returns whether the account holds the role.
func (r *Roles) Has(account aurum.Address, role Role) (bool, error) {
	return r.flags.Get(membershipKey(account, role))
}

// Require fails with PermissionDenied unless the account holds the role.
func (r *Roles) Require(account aurum.Address, role Role) error {
	has, err := r.Has(account, role)
	if err != nil {
		return err
	}
	if !has {
		return reverts.New(reverts.PermissionDenied, "account %v missing role %v", account, role)
	}
	return nil
}

// Add grants the role to the account.
// It returns false if the account already holds the role.
func (r *Roles) Add(account aurum.Address, role Role) (bool, error) {
	has, err := r.Has(account, role)
	if err != nil || has {
		return false, err
	}
	return true, r.flags.Set(membershipKey(account, role), true)
}

// Remove revokes the role from the account.
// It returns false if the account does not hold the role.
func (r *Roles) Remove(account aurum.Address, role Role) (bool, error) {
	has, err := r.Has(account, role)
	if err != nil || !has {
		return false, err
	}
	return true, r.flags.Delete(membershipKey(account, role))
}
