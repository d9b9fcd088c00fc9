// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package token composes the ledger with the access-control, pause,
// blacklist and allowance gates into the public token contract.
//
// Every entry point runs the gates in a fixed order before touching
// balances: Access Control -> Pause -> Blacklist -> Allowance -> Ledger.
// Entry points are all-or-nothing: a checkpoint is taken on entry and
// the state reverts to it on any failure.
package token

import (
	"math/big"
	"sync"

	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/blacklist"
	"github.com/aurum-network/aurum/builtin/ledger"
	"github.com/aurum-network/aurum/builtin/pauser"
	"github.com/aurum-network/aurum/builtin/reverts"
	"github.com/aurum-network/aurum/builtin/roles"
	"github.com/aurum-network/aurum/builtin/slot"
	"github.com/aurum-network/aurum/events"
	"github.com/aurum-network/aurum/log"
	"github.com/aurum-network/aurum/metrics"
	"github.com/aurum-network/aurum/state"
)

var (
	logger = log.WithContext("pkg", "token")

	metricMints     = metrics.Counter("token_mint_count")
	metricBurns     = metrics.Counter("token_burn_count")
	metricTransfers = metrics.Counter("token_transfer_count")

	slotAllowances = aurum.BytesToBytes32([]byte("allowances"))
	slotNonces     = aurum.BytesToBytes32([]byte("nonces"))
)

// Token implements the capped, role-gated, permit-enabled token.
type Token struct {
	addr    aurum.Address
	state   *state.State
	emitter events.Emitter

	roles      *roles.Roles
	ledger     *ledger.Ledger
	blacklist  *blacklist.Blacklist
	pauser     *pauser.Pauser
	allowances *slot.Mapping[slot.Bytes, *big.Int]
	nonces     *slot.Mapping[aurum.Address, uint64]

	// custodial accounts that must never be blacklisted
	custodians []aurum.Address

	mu sync.Mutex
}

// New create a token instance at the given contract address.
// custodians are builtin accounts holding tokens on behalf of others
// (e.g. the staking pool); they can never be blacklisted.
func New(addr aurum.Address, st *state.State, emitter events.Emitter, custodians ...aurum.Address) *Token {
	ctx := slot.NewContext(addr, st)
	return &Token{
		addr:       addr,
		state:      st,
		emitter:    emitter,
		roles:      roles.New(ctx),
		ledger:     ledger.New(ctx),
		blacklist:  blacklist.New(ctx),
		pauser:     pauser.New(ctx),
		allowances: slot.NewMapping[slot.Bytes, *big.Int](ctx, slotAllowances),
		nonces:     slot.NewMapping[aurum.Address, uint64](ctx, slotNonces),
		custodians: append([]aurum.Address{addr}, custodians...),
	}
}

// Initialize sets the immutable hard cap and grants all roles to the
// deployer. Constructor-equivalent, to be called once at genesis.
func (t *Token) Initialize(deployer aurum.Address, hardCap *big.Int) error {
	if err := t.ledger.Initialize(hardCap); err != nil {
		return err
	}
	for _, role := range []roles.Role{roles.Admin, roles.Minter, roles.Pauser, roles.Blacklister, roles.Burner} {
		if _, err := t.roles.Add(deployer, role); err != nil {
			return err
		}
		t.emitter.Emit(events.RoleGranted{Role: role.String(), Account: deployer, Actor: deployer})
	}
	logger.Info("token initialized", "deployer", deployer, "hardCap", hardCap)
	return nil
}

// Address returns the contract address.
func (t *Token) Address() aurum.Address {
	return t.addr
}

// BalanceOf returns the balance of the account.
func (t *Token) BalanceOf(account aurum.Address) (*big.Int, error) {
	return t.ledger.Balance(account)
}

// TotalSupply returns the net outstanding supply.
func (t *Token) TotalSupply() (*big.Int, error) {
	return t.ledger.TotalSupply()
}

// TotalMinted returns the cumulative minted amount.
func (t *Token) TotalMinted() (*big.Int, error) {
	return t.ledger.TotalMinted()
}

// TotalBurned returns the cumulative burned amount.
func (t *Token) TotalBurned() (*big.Int, error) {
	return t.ledger.TotalBurned()
}

// HardCap returns the immutable hard cap.
func (t *Token) HardCap() (*big.Int, error) {
	return t.ledger.HardCap()
}

// EffectiveCap returns hardCap - totalBurned.
func (t *Token) EffectiveCap() (*big.Int, error) {
	return t.ledger.EffectiveCap()
}

// IsPaused returns whether the pause breaker is engaged.
func (t *Token) IsPaused() (bool, error) {
	return t.pauser.IsPaused()
}

// IsBlacklisted returns whether the account is deny-listed.
func (t *Token) IsBlacklisted(account aurum.Address) (bool, error) {
	return t.blacklist.IsBlacklisted(account)
}

// HasRole returns whether the account holds the role.
func (t *Token) HasRole(account aurum.Address, role roles.Role) (bool, error) {
	return t.roles.Has(account, role)
}

// Nonce returns the current permit nonce of the account.
func (t *Token) Nonce(account aurum.Address) (uint64, error) {
	return t.nonces.Get(account)
}

// run executes fn as an all-or-nothing entry point.
func (t *Token) run(fn func() error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cp := t.state.NewCheckpoint()
	if err := fn(); err != nil {
		t.state.RevertTo(cp)
		return err
	}
	return nil
}

// requireNotBlacklisted checks accounts against the deny-list in the
// given order: direct caller first, then logical source, then
// destination/spender.
func (t *Token) requireNotBlacklisted(accounts ...aurum.Address) error {
	for _, account := range accounts {
		listed, err := t.blacklist.IsBlacklisted(account)
		if err != nil {
			return err
		}
		if listed {
			return reverts.New(reverts.Blacklisted, "account %v", account)
		}
	}
	return nil
}

func (t *Token) isCustodian(account aurum.Address) bool {
	for _, c := range t.custodians {
		if c == account {
			return true
		}
	}
	return false
}
