// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package stakepool implements the fixed-term staking pool. Stakers lock
// principal for a tier-dependent duration; the reward is computed once at
// creation time from the pool's age and minted into pool custody, then
// paid out together with the principal on settlement.
//
// The pool lifecycle is unconfigured -> open -> expired. Opening happens
// once; the pool stops admitting stakes sixty months later. Settlement of
// existing stakes is not bound to the pool window.
//
// All time-dependent operations take the current timestamp explicitly, so
// callers control the clock and tests need no sleeping.
package stakepool

import (
	"encoding/binary"
	"math/big"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/reverts"
	"github.com/aurum-network/aurum/builtin/roles"
	"github.com/aurum-network/aurum/builtin/slot"
	"github.com/aurum-network/aurum/builtin/token"
	"github.com/aurum-network/aurum/events"
	"github.com/aurum-network/aurum/log"
	"github.com/aurum-network/aurum/metrics"
	"github.com/aurum-network/aurum/state"
)

var (
	logger = log.WithContext("pkg", "stakepool")

	metricStakes   = metrics.Counter("stakepool_stake_count")
	metricUnstakes = metrics.Counter("stakepool_unstake_count")

	slotOpened       = aurum.BytesToBytes32([]byte("timestamp-opened"))
	slotTotalStaked  = aurum.BytesToBytes32([]byte("total-staked"))
	slotNonce        = aurum.BytesToBytes32([]byte("stake-nonce"))
	slotAccountTotal = aurum.BytesToBytes32([]byte("account-total"))
	slotAccountCount = aurum.BytesToBytes32([]byte("account-count"))
	slotAccountIndex = aurum.BytesToBytes32([]byte("account-index"))
	slotStakes       = aurum.BytesToBytes32([]byte("stakes"))
)

// Stake is one locked position.
type Stake struct {
	ID             aurum.Bytes32
	Owner          aurum.Address
	Amount         *big.Int
	Rewards        *big.Int
	StartTimestamp uint64
	DurationMonths uint32
}

// storedStake is the persisted form; owner and ID live in the storage key.
type storedStake struct {
	Amount         *big.Int
	Rewards        *big.Int
	StartTimestamp uint64
	DurationMonths uint32
}

func (s *storedStake) exists() bool {
	return s.Amount != nil && s.Amount.Sign() > 0
}

// Pool holds custody of staked tokens and mints rewards through the
// token's mint entry point; it must be granted the minter role.
type Pool struct {
	addr    aurum.Address
	state   *state.State
	token   *token.Token
	emitter events.Emitter

	opened       *slot.Value[uint64]
	totalStaked  *slot.Value[*big.Int]
	nonce        *slot.Value[uint64]
	accountTotal *slot.Mapping[aurum.Address, *big.Int]
	accountCount *slot.Mapping[aurum.Address, uint64]
	accountIndex *slot.Mapping[slot.Bytes, aurum.Bytes32]
	stakes       *slot.Mapping[slot.Bytes, storedStake]

	// entry-point exclusion flag, doubles as the reentrancy guard
	entered atomic.Bool
}

// New creates a pool instance at the given contract address, bound to
// the token it takes custody of.
func New(addr aurum.Address, st *state.State, tok *token.Token, emitter events.Emitter) *Pool {
	ctx := slot.NewContext(addr, st)
	return &Pool{
		addr:         addr,
		state:        st,
		token:        tok,
		emitter:      emitter,
		opened:       slot.NewValue[uint64](ctx, slotOpened),
		totalStaked:  slot.NewValue[*big.Int](ctx, slotTotalStaked),
		nonce:        slot.NewValue[uint64](ctx, slotNonce),
		accountTotal: slot.NewMapping[aurum.Address, *big.Int](ctx, slotAccountTotal),
		accountCount: slot.NewMapping[aurum.Address, uint64](ctx, slotAccountCount),
		accountIndex: slot.NewMapping[slot.Bytes, aurum.Bytes32](ctx, slotAccountIndex),
		stakes:       slot.NewMapping[slot.Bytes, storedStake](ctx, slotStakes),
	}
}

// Address returns the pool's custodial address.
func (p *Pool) Address() aurum.Address {
	return p.addr
}

// run executes fn as an all-or-nothing entry point. A call arriving
// while another is in flight is rejected instead of queued, which also
// stops reentrant calls out of token hooks.
func (p *Pool) run(fn func() error) error {
	if !p.entered.CompareAndSwap(false, true) {
		return errors.New("reentrant call")
	}
	defer p.entered.Store(false)

	cp := p.state.NewCheckpoint()
	if err := fn(); err != nil {
		p.state.RevertTo(cp)
		return err
	}
	return nil
}

// Open configures the pool's opening timestamp. Single configuration
// attempt only; requires the admin role on the token. A past timestamp
// is clamped up to now, a future one may lead by at most thirteen weeks.
func (p *Pool) Open(caller aurum.Address, timestamp, now uint64) error {
	return p.run(func() error {
		isAdmin, err := p.token.HasRole(caller, roles.Admin)
		if err != nil {
			return err
		}
		if !isAdmin {
			return reverts.New(reverts.PermissionDenied, "account %v missing role admin", caller)
		}

		opened, err := p.opened.Get()
		if err != nil {
			return err
		}
		if opened != 0 {
			return reverts.New(reverts.AlreadyConfigured, "opened at %d", opened)
		}
		if timestamp < now {
			timestamp = now
		}
		if timestamp > now+MaxOpenLeadTime {
			return reverts.New(reverts.TooFarInFuture, "timestamp %d, now %d", timestamp, now)
		}
		if err := p.opened.Set(timestamp); err != nil {
			return err
		}
		p.emitter.Emit(events.PoolOpened{Timestamp: timestamp, Actor: caller})
		logger.Info("pool opened", "timestamp", timestamp, "caller", caller)
		return nil
	})
}

// TimestampOpened returns the opening timestamp, zero while unconfigured.
func (p *Pool) TimestampOpened() (uint64, error) {
	return p.opened.Get()
}

// IsOpen returns whether the pool currently admits stakes.
func (p *Pool) IsOpen(now uint64) (bool, error) {
	opened, err := p.opened.Get()
	if err != nil {
		return false, err
	}
	return opened != 0 && opened <= now && now < opened+PoolWindowMonths*aurum.AvgSecondsPerMonth, nil
}

// MonthsOpen returns the whole months elapsed since opening. Fails with
// PoolClosed unless the pool is currently open.
func (p *Pool) MonthsOpen(now uint64) (uint64, error) {
	open, err := p.IsOpen(now)
	if err != nil {
		return 0, err
	}
	if !open {
		return 0, reverts.New(reverts.PoolClosed, "")
	}
	opened, err := p.opened.Get()
	if err != nil {
		return 0, err
	}
	return (now - opened) / aurum.AvgSecondsPerMonth, nil
}

// TotalStaked returns the pool-wide sum of active principals.
// Rewards held in custody are excluded.
func (p *Pool) TotalStaked() (*big.Int, error) {
	return p.totalStaked.Get()
}

// TotalStakedBy returns the account's active principal.
func (p *Pool) TotalStakedBy(account aurum.Address) (*big.Int, error) {
	return p.accountTotal.Get(account)
}

// StakesOf returns the account's active stakes in creation order.
// Settled positions are excluded.
func (p *Pool) StakesOf(account aurum.Address) ([]*Stake, error) {
	count, err := p.accountCount.Get(account)
	if err != nil {
		return nil, err
	}
	var result []*Stake
	for i := uint64(0); i < count; i++ {
		id, err := p.accountIndex.Get(indexKey(account, i))
		if err != nil {
			return nil, err
		}
		rec, err := p.stakes.Get(stakeKey(account, id))
		if err != nil {
			return nil, err
		}
		if !rec.exists() {
			continue
		}
		result = append(result, &Stake{
			ID:             id,
			Owner:          account,
			Amount:         rec.Amount,
			Rewards:        rec.Rewards,
			StartTimestamp: rec.StartTimestamp,
			DurationMonths: rec.DurationMonths,
		})
	}
	return result, nil
}

// GetStake returns the account's stake with the given ID, or nil if it
// never existed or is already settled.
func (p *Pool) GetStake(account aurum.Address, id aurum.Bytes32) (*Stake, error) {
	rec, err := p.stakes.Get(stakeKey(account, id))
	if err != nil {
		return nil, err
	}
	if !rec.exists() {
		return nil, nil
	}
	return &Stake{
		ID:             id,
		Owner:          account,
		Amount:         rec.Amount,
		Rewards:        rec.Rewards,
		StartTimestamp: rec.StartTimestamp,
		DurationMonths: rec.DurationMonths,
	}, nil
}

func stakeKey(owner aurum.Address, id aurum.Bytes32) slot.Bytes {
	return slot.Bytes(append(owner.Bytes(), id.Bytes()...))
}

func indexKey(owner aurum.Address, i uint64) slot.Bytes {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], i)
	return slot.Bytes(append(owner.Bytes(), buf[:]...))
}
