// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package ledger owns balances and the supply counters of the token.
// It knows nothing about authorization, pausing or blacklisting; those
// gates run before any of its mutators are reached.
package ledger

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/reverts"
	"github.com/aurum-network/aurum/builtin/slot"
)

var (
	slotHardCap     = aurum.BytesToBytes32([]byte("hard-cap"))
	slotTotalMinted = aurum.BytesToBytes32([]byte("total-minted"))
	slotTotalBurned = aurum.BytesToBytes32([]byte("total-burned"))
	slotBalances    = aurum.BytesToBytes32([]byte("balances"))
)

// Ledger implements the supply-accounting core.
//
// Invariants maintained:
//   - effectiveCap = hardCap - totalBurned
//   - netSupply + mintAmount <= hardCap on every mint admission
//   - totalBurned only increases
type Ledger struct {
	hardCap     *slot.Value[*big.Int]
	totalMinted *slot.Value[*big.Int]
	totalBurned *slot.Value[*big.Int]
	balances    *slot.Mapping[aurum.Address, *big.Int]
}

// New create a ledger instance over the given storage context.
func New(ctx *slot.Context) *Ledger {
	return &Ledger{
		hardCap:     slot.NewValue[*big.Int](ctx, slotHardCap),
		totalMinted: slot.NewValue[*big.Int](ctx, slotTotalMinted),
		totalBurned: slot.NewValue[*big.Int](ctx, slotTotalBurned),
		balances:    slot.NewMapping[aurum.Address, *big.Int](ctx, slotBalances),
	}
}

// Initialize sets the immutable hard cap. Single configuration attempt only.
func (l *Ledger) Initialize(hardCap *big.Int) error {
	if hardCap.Sign() <= 0 {
		return errors.New("hard cap must be positive")
	}
	current, err := l.hardCap.Get()
	if err != nil {
		return err
	}
	if current.Sign() != 0 {
		return errors.New("hard cap already initialized")
	}
	return l.hardCap.Set(hardCap)
}

// HardCap returns the immutable hard cap.
func (l *Ledger) HardCap() (*big.Int, error) {
	return l.hardCap.Get()
}

// TotalMinted returns the cumulative minted amount.
func (l *Ledger) TotalMinted() (*big.Int, error) {
	return l.totalMinted.Get()
}

// TotalBurned returns the cumulative burned amount.
func (l *Ledger) TotalBurned() (*big.Int, error) {
	return l.totalBurned.Get()
}

// EffectiveCap returns hardCap - totalBurned, the mutable ceiling on
// net outstanding supply.
func (l *Ledger) EffectiveCap() (*big.Int, error) {
	cap_, err := l.hardCap.Get()
	if err != nil {
		return nil, err
	}
	burned, err := l.totalBurned.Get()
	if err != nil {
		return nil, err
	}
	return new(big.Int).Sub(cap_, burned), nil
}

// TotalSupply returns the net outstanding supply, totalMinted - totalBurned.
func (l *Ledger) TotalSupply() (*big.Int, error) {
	minted, err := l.totalMinted.Get()
	if err != nil {
		return nil, err
	}
	burned, err := l.totalBurned.Get()
	if err != nil {
		return nil, err
	}
	return new(big.Int).Sub(minted, burned), nil
}

// Balance returns the balance of the account.
func (l *Ledger) Balance(addr aurum.Address) (*big.Int, error) {
	return l.balances.Get(addr)
}

func (l *Ledger) setBalance(addr aurum.Address, bal *big.Int) error {
	if bal.Sign() == 0 {
		return l.balances.Delete(addr)
	}
	return l.balances.Set(addr, bal)
}

// Mint creates amount new tokens for the account.
//
// The admission rule is netSupply - totalBurned + amount <= effectiveCap,
// where netSupply already nets out burns. Both sides subtract totalBurned,
// so the check reduces to netSupply + amount <= hardCap: burning lowers
// the ceiling and the outstanding supply by the same amount, leaving the
// mintable headroom unchanged.
func (l *Ledger) Mint(to aurum.Address, amount *big.Int) error {
	minted, err := l.totalMinted.Get()
	if err != nil {
		return err
	}
	burned, err := l.totalBurned.Get()
	if err != nil {
		return err
	}
	hardCap, err := l.hardCap.Get()
	if err != nil {
		return err
	}

	supply := new(big.Int).Sub(minted, burned)
	supply.Add(supply, amount)
	if supply.Cmp(hardCap) > 0 {
		return reverts.New(reverts.CapExceeded, "supply %v exceeds cap %v", supply, hardCap)
	}

	bal, err := l.balances.Get(to)
	if err != nil {
		return err
	}
	if err := l.setBalance(to, new(big.Int).Add(bal, amount)); err != nil {
		return err
	}
	return l.totalMinted.Set(new(big.Int).Add(minted, amount))
}

// Burn destroys amount tokens of the account. Burning shrinks the
// effective cap by exactly the burned amount.
func (l *Ledger) Burn(from aurum.Address, amount *big.Int) error {
	bal, err := l.balances.Get(from)
	if err != nil {
		return err
	}
	if bal.Cmp(amount) < 0 {
		return reverts.New(reverts.InsufficientBalance, "account %v has %v, needs %v", from, bal, amount)
	}
	if err := l.setBalance(from, new(big.Int).Sub(bal, amount)); err != nil {
		return err
	}
	burned, err := l.totalBurned.Get()
	if err != nil {
		return err
	}
	return l.totalBurned.Set(new(big.Int).Add(burned, amount))
}

// Transfer moves amount tokens between accounts, conserving supply.
func (l *Ledger) Transfer(from, to aurum.Address, amount *big.Int) error {
	fromBal, err := l.balances.Get(from)
	if err != nil {
		return err
	}
	if fromBal.Cmp(amount) < 0 {
		return reverts.New(reverts.InsufficientBalance, "account %v has %v, needs %v", from, fromBal, amount)
	}
	if from == to || amount.Sign() == 0 {
		return nil
	}
	if err := l.setBalance(from, new(big.Int).Sub(fromBal, amount)); err != nil {
		return err
	}
	toBal, err := l.balances.Get(to)
	if err != nil {
		return err
	}
	return l.setBalance(to, new(big.Int).Add(toBal, amount))
}
