// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/reverts"
	"github.com/aurum-network/aurum/builtin/roles"
	"github.com/aurum-network/aurum/events"
)

// Pause engages the circuit breaker. Requires the pauser role.
func (t *Token) Pause(caller aurum.Address) error {
	return t.run(func() error {
		if err := t.roles.Require(caller, roles.Pauser); err != nil {
			return err
		}
		if err := t.pauser.Pause(); err != nil {
			return err
		}
		t.emitter.Emit(events.Paused{Actor: caller})
		logger.Info("paused", "caller", caller)
		return nil
	})
}

// Unpause releases the circuit breaker. Requires the pauser role.
func (t *Token) Unpause(caller aurum.Address) error {
	return t.run(func() error {
		if err := t.roles.Require(caller, roles.Pauser); err != nil {
			return err
		}
		if err := t.pauser.Unpause(); err != nil {
			return err
		}
		t.emitter.Emit(events.Unpaused{Actor: caller})
		logger.Info("unpaused", "caller", caller)
		return nil
	})
}

// Blacklist deny-lists the account. Requires the blacklister role.
// The zero address, the caller itself, admins and custodial accounts
// cannot be listed.
func (t *Token) Blacklist(caller, account aurum.Address) error {
	return t.run(func() error {
		if err := t.roles.Require(caller, roles.Blacklister); err != nil {
			return err
		}
		if account.IsZero() {
			return reverts.New(reverts.CannotBlacklist, "zero address")
		}
		if account == caller {
			return reverts.New(reverts.CannotBlacklist, "caller %v cannot list itself", caller)
		}
		if t.isCustodian(account) {
			return reverts.New(reverts.CannotBlacklist, "custodial account %v", account)
		}
		isAdmin, err := t.roles.Has(account, roles.Admin)
		if err != nil {
			return err
		}
		if isAdmin {
			return reverts.New(reverts.CannotBlacklist, "admin account %v", account)
		}
		if err := t.blacklist.Add(account); err != nil {
			return err
		}
		t.emitter.Emit(events.BlacklistUpdated{Account: account, Listed: true, Actor: caller})
		logger.Info("blacklisted", "account", account, "caller", caller)
		return nil
	})
}

// Unblacklist removes the account from the deny-list. Requires the
// blacklister role.
func (t *Token) Unblacklist(caller, account aurum.Address) error {
	return t.run(func() error {
		if err := t.roles.Require(caller, roles.Blacklister); err != nil {
			return err
		}
		if err := t.blacklist.Remove(account); err != nil {
			return err
		}
		t.emitter.Emit(events.BlacklistUpdated{Account: account, Listed: false, Actor: caller})
		logger.Info("unblacklisted", "account", account, "caller", caller)
		return nil
	})
}

// GrantRole grants role to account. Requires the admin role.
// Granting an already-held role is a no-op.
func (t *Token) GrantRole(caller, account aurum.Address, role roles.Role) error {
	return t.run(func() error {
		if err := t.roles.Require(caller, roles.Admin); err != nil {
			return err
		}
		changed, err := t.roles.Add(account, role)
		if err != nil {
			return err
		}
		if changed {
			t.emitter.Emit(events.RoleGranted{Role: role.String(), Account: account, Actor: caller})
			logger.Info("role granted", "role", role, "account", account, "caller", caller)
		}
		return nil
	})
}

// RevokeRole revokes role from account. Requires the admin role.
// Revoking a role the account does not hold is a no-op.
func (t *Token) RevokeRole(caller, account aurum.Address, role roles.Role) error {
	return t.run(func() error {
		if err := t.roles.Require(caller, roles.Admin); err != nil {
			return err
		}
		changed, err := t.roles.Remove(account, role)
		if err != nil {
			return err
		}
		if changed {
			t.emitter.Emit(events.RoleRevoked{Role: role.String(), Account: account, Actor: caller})
			logger.Info("role revoked", "role", role, "account", account, "caller", caller)
		}
		return nil
	})
}

// RenounceRole lets the caller drop one of its own roles.
func (t *Token) RenounceRole(caller aurum.Address, role roles.Role) error {
	return t.run(func() error {
		changed, err := t.roles.Remove(caller, role)
		if err != nil {
			return err
		}
		if changed {
			t.emitter.Emit(events.RoleRevoked{Role: role.String(), Account: caller, Actor: caller})
			logger.Info("role renounced", "role", role, "account", caller)
		}
		return nil
	})
}
