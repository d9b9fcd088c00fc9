// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"math/big"

	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/reverts"
	"github.com/aurum-network/aurum/builtin/slot"
	"github.com/aurum-network/aurum/events"
)

func allowanceKey(owner, spender aurum.Address) slot.Bytes {
	return slot.Bytes(append(owner.Bytes(), spender.Bytes()...))
}

// Allowance returns the amount spender may move on behalf of owner.
// aurum.MaxUint256 is the unlimited sentinel.
func (t *Token) Allowance(owner, spender aurum.Address) (*big.Int, error) {
	return t.allowances.Get(allowanceKey(owner, spender))
}

// Approve sets the caller's allowance for spender to value.
//
// A non-zero allowance can only be replaced after resetting it to zero;
// setting to zero always succeeds, even for a blacklisted spender, so
// owners can revoke exposure to frozen accounts. Approvals stay
// available while the token is paused.
func (t *Token) Approve(caller, spender aurum.Address, value *big.Int) error {
	return t.run(func() error {
		if err := validAmount(value); err != nil {
			return err
		}
		if err := t.requireNotBlacklisted(caller); err != nil {
			return err
		}
		if value.Sign() != 0 {
			if err := t.requireNotBlacklisted(spender); err != nil {
				return err
			}
		}
		return t.setApproval(caller, spender, value)
	})
}

// setApproval applies the allowance-mutation rules shared by Approve and
// Permit. Gate checks run in the callers.
func (t *Token) setApproval(owner, spender aurum.Address, value *big.Int) error {
	if spender.IsZero() {
		return reverts.New(reverts.ZeroAddressAllowance, "")
	}
	if owner == spender {
		return reverts.New(reverts.SelfAllowance, "owner %v", owner)
	}

	key := allowanceKey(owner, spender)
	current, err := t.allowances.Get(key)
	if err != nil {
		return err
	}
	if current.Sign() != 0 && value.Sign() != 0 {
		return reverts.New(reverts.MustResetToZeroFirst, "owner %v spender %v has %v", owner, spender, current)
	}

	if value.Sign() == 0 {
		if err := t.allowances.Delete(key); err != nil {
			return err
		}
	} else if err := t.allowances.Set(key, value); err != nil {
		return err
	}

	t.emitter.Emit(events.Approval{Owner: owner, Spender: spender, Value: value})
	if value.Cmp(aurum.MaxUint256) == 0 {
		t.emitter.Emit(events.UnlimitedAllowanceWarning{Owner: owner, Spender: spender})
		logger.Warn("unlimited allowance granted", "owner", owner, "spender", spender)
	}
	return nil
}

// spendAllowance consumes amount of spender's allowance from owner.
// The unlimited sentinel is never decremented.
func (t *Token) spendAllowance(owner, spender aurum.Address, amount *big.Int) error {
	key := allowanceKey(owner, spender)
	current, err := t.allowances.Get(key)
	if err != nil {
		return err
	}
	if current.Cmp(aurum.MaxUint256) == 0 {
		return nil
	}
	if current.Cmp(amount) < 0 {
		return reverts.New(reverts.InsufficientAllowance, "owner %v spender %v has %v, needs %v", owner, spender, current, amount)
	}
	remaining := new(big.Int).Sub(current, amount)
	if remaining.Sign() == 0 {
		return t.allowances.Delete(key)
	}
	return t.allowances.Set(key, remaining)
}
