// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/roles"
	"github.com/aurum-network/aurum/events"
)

func validAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return errors.New("invalid amount")
	}
	return nil
}

// Mint creates amount new tokens for the recipient. The caller must hold
// the minter role and neither party may be blacklisted.
func (t *Token) Mint(caller, to aurum.Address, amount *big.Int) error {
	return t.run(func() error {
		if err := validAmount(amount); err != nil {
			return err
		}
		if err := t.roles.Require(caller, roles.Minter); err != nil {
			return err
		}
		if err := t.pauser.RequireNotPaused(); err != nil {
			return err
		}
		if err := t.requireNotBlacklisted(caller, to); err != nil {
			return err
		}
		if err := t.ledger.Mint(to, amount); err != nil {
			return err
		}
		t.emitter.Emit(events.Transfer{From: aurum.Address{}, To: to, Value: amount})
		metricMints.Add(1)
		logger.Debug("mint", "caller", caller, "to", to, "amount", amount)
		return nil
	})
}

// Burn destroys amount tokens from the caller's own balance. The caller
// must hold the burner role.
func (t *Token) Burn(caller aurum.Address, amount *big.Int) error {
	return t.run(func() error {
		if err := validAmount(amount); err != nil {
			return err
		}
		if err := t.roles.Require(caller, roles.Burner); err != nil {
			return err
		}
		if err := t.pauser.RequireNotPaused(); err != nil {
			return err
		}
		if err := t.requireNotBlacklisted(caller); err != nil {
			return err
		}
		if err := t.ledger.Burn(caller, amount); err != nil {
			return err
		}
		t.emitter.Emit(events.Transfer{From: caller, To: aurum.Address{}, Value: amount})
		metricBurns.Add(1)
		logger.Debug("burn", "caller", caller, "amount", amount)
		return nil
	})
}

// BurnFrom destroys amount tokens from another account, spending the
// caller's allowance unless the caller burns from itself.
func (t *Token) BurnFrom(caller, from aurum.Address, amount *big.Int) error {
	return t.run(func() error {
		if err := validAmount(amount); err != nil {
			return err
		}
		if err := t.roles.Require(caller, roles.Burner); err != nil {
			return err
		}
		if err := t.pauser.RequireNotPaused(); err != nil {
			return err
		}
		if err := t.requireNotBlacklisted(caller, from); err != nil {
			return err
		}
		if caller != from {
			if err := t.spendAllowance(from, caller, amount); err != nil {
				return err
			}
		}
		if err := t.ledger.Burn(from, amount); err != nil {
			return err
		}
		t.emitter.Emit(events.Transfer{From: from, To: aurum.Address{}, Value: amount})
		metricBurns.Add(1)
		logger.Debug("burnFrom", "caller", caller, "from", from, "amount", amount)
		return nil
	})
}

// Transfer moves amount tokens from the caller to the recipient.
func (t *Token) Transfer(caller, to aurum.Address, amount *big.Int) error {
	return t.run(func() error {
		if err := validAmount(amount); err != nil {
			return err
		}
		if err := t.pauser.RequireNotPaused(); err != nil {
			return err
		}
		if err := t.requireNotBlacklisted(caller, to); err != nil {
			return err
		}
		if err := t.ledger.Transfer(caller, to, amount); err != nil {
			return err
		}
		t.emitter.Emit(events.Transfer{From: caller, To: to, Value: amount})
		metricTransfers.Add(1)
		return nil
	})
}

// TransferFrom moves amount tokens from the source to the recipient,
// spending the caller's allowance unless the caller is the source.
func (t *Token) TransferFrom(caller, from, to aurum.Address, amount *big.Int) error {
	return t.run(func() error {
		if err := validAmount(amount); err != nil {
			return err
		}
		if err := t.pauser.RequireNotPaused(); err != nil {
			return err
		}
		if err := t.requireNotBlacklisted(caller, from, to); err != nil {
			return err
		}
		if caller != from {
			if err := t.spendAllowance(from, caller, amount); err != nil {
				return err
			}
		}
		if err := t.ledger.Transfer(from, to, amount); err != nil {
			return err
		}
		t.emitter.Emit(events.Transfer{From: from, To: to, Value: amount})
		metricTransfers.Add(1)
		return nil
	})
}
