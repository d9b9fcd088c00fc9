// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

import (
	"encoding/binary"
	"math/big"

	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/reverts"
	"github.com/aurum-network/aurum/events"
)

// CreateStake locks amount of the caller's tokens for the tier's
// duration and mints the reward into pool custody. The caller must have
// approved the pool to pull the principal.
//
// The reward is fixed at creation from the tier's rate and the pool's
// age bracket; later rate-bracket transitions never affect it.
func (p *Pool) CreateStake(caller aurum.Address, amount *big.Int, tier Tier, now uint64) (aurum.Bytes32, error) {
	var id aurum.Bytes32
	err := p.run(func() error {
		if amount == nil || amount.Sign() <= 0 {
			return reverts.New(reverts.BelowMinimum, "amount must be positive")
		}
		open, err := p.IsOpen(now)
		if err != nil {
			return err
		}
		if !open {
			return reverts.New(reverts.PoolNotOpen, "")
		}
		if amount.Cmp(MinStakeAmount) < 0 {
			return reverts.New(reverts.BelowMinimum, "amount %v, minimum %v", amount, MinStakeAmount)
		}

		accountTotal, err := p.accountTotal.Get(caller)
		if err != nil {
			return err
		}
		newAccountTotal := new(big.Int).Add(accountTotal, amount)
		if newAccountTotal.Cmp(MaxStakePerAccount) > 0 {
			return reverts.New(reverts.ExceedsUserLimit, "account %v would hold %v, limit %v", caller, newAccountTotal, MaxStakePerAccount)
		}

		poolTotal, err := p.totalStaked.Get()
		if err != nil {
			return err
		}
		newPoolTotal := new(big.Int).Add(poolTotal, amount)
		if newPoolTotal.Cmp(MaxStakePool) > 0 {
			return reverts.New(reverts.ExceedsPoolLimit, "pool would hold %v, limit %v", newPoolTotal, MaxStakePool)
		}

		// explicit prechecks against the token, for specific errors
		// instead of the transfer's own failure
		allowance, err := p.token.Allowance(caller, p.addr)
		if err != nil {
			return err
		}
		if allowance.Cmp(aurum.MaxUint256) != 0 && allowance.Cmp(amount) < 0 {
			return reverts.New(reverts.InsufficientAllowance, "pool allowance %v, needs %v", allowance, amount)
		}
		balance, err := p.token.BalanceOf(caller)
		if err != nil {
			return err
		}
		if balance.Cmp(amount) < 0 {
			return reverts.New(reverts.InsufficientBalance, "account %v has %v, needs %v", caller, balance, amount)
		}

		duration, err := tier.DurationMonths()
		if err != nil {
			return err
		}
		startMonth, err := p.MonthsOpen(now)
		if err != nil {
			return err
		}
		bracket, err := ageBracket(startMonth)
		if err != nil {
			return err
		}
		reward := rewardFor(amount, rateTable[duration][bracket], duration)

		if id, err = p.nextStakeID(caller, amount, now); err != nil {
			return err
		}
		if err := p.stakes.Set(stakeKey(caller, id), storedStake{
			Amount:         amount,
			Rewards:        reward,
			StartTimestamp: now,
			DurationMonths: duration,
		}); err != nil {
			return err
		}
		count, err := p.accountCount.Get(caller)
		if err != nil {
			return err
		}
		if err := p.accountIndex.Set(indexKey(caller, count), id); err != nil {
			return err
		}
		if err := p.accountCount.Set(caller, count+1); err != nil {
			return err
		}
		if err := p.accountTotal.Set(caller, newAccountTotal); err != nil {
			return err
		}
		if err := p.totalStaked.Set(newPoolTotal); err != nil {
			return err
		}

		// pull the principal into custody, then mint the reward to it
		if err := p.token.TransferFrom(p.addr, caller, p.addr, amount); err != nil {
			return err
		}
		if err := p.token.Mint(p.addr, p.addr, reward); err != nil {
			return err
		}

		p.emitter.Emit(events.StakeCreated{
			ID:             id,
			Owner:          caller,
			Amount:         amount,
			Rewards:        reward,
			StartTimestamp: now,
			DurationMonths: duration,
		})
		metricStakes.Add(1)
		logger.Debug("stake created", "id", id, "owner", caller, "amount", amount, "reward", reward, "months", duration)
		return nil
	})
	if err != nil {
		return aurum.Bytes32{}, err
	}
	return id, nil
}

// Unstake settles the caller's stake: the record is deleted and
// principal plus reward move from custody to the caller. Exactly one
// settlement per stake; the pool window does not bound settlement.
func (p *Pool) Unstake(caller aurum.Address, id aurum.Bytes32, now uint64) error {
	return p.run(func() error {
		key := stakeKey(caller, id)
		rec, err := p.stakes.Get(key)
		if err != nil {
			return err
		}
		if !rec.exists() {
			return reverts.New(reverts.StakeNotFound, "id %v", id)
		}
		unlockAt := rec.StartTimestamp + uint64(rec.DurationMonths)*aurum.AvgSecondsPerMonth
		if now < unlockAt {
			return reverts.New(reverts.StillLocked, "started %d, locked %d months, unlocks %d", rec.StartTimestamp, rec.DurationMonths, unlockAt)
		}

		if err := p.stakes.Delete(key); err != nil {
			return err
		}
		accountTotal, err := p.accountTotal.Get(caller)
		if err != nil {
			return err
		}
		remaining := new(big.Int).Sub(accountTotal, rec.Amount)
		if remaining.Sign() == 0 {
			err = p.accountTotal.Delete(caller)
		} else {
			err = p.accountTotal.Set(caller, remaining)
		}
		if err != nil {
			return err
		}
		poolTotal, err := p.totalStaked.Get()
		if err != nil {
			return err
		}
		if err := p.totalStaked.Set(new(big.Int).Sub(poolTotal, rec.Amount)); err != nil {
			return err
		}

		payout := new(big.Int).Add(rec.Amount, rec.Rewards)
		if err := p.token.Transfer(p.addr, caller, payout); err != nil {
			return err
		}

		p.emitter.Emit(events.Unstaked{ID: id, Owner: caller, Amount: rec.Amount, Payout: payout})
		metricUnstakes.Add(1)
		logger.Debug("unstaked", "id", id, "owner", caller, "payout", payout)
		return nil
	})
}

// nextStakeID derives an unpredictable identifier from the time, owner,
// amount and a pre-incremented pool nonce. Uniqueness is probabilistic;
// on the off chance of a collision with a live stake of the same owner
// the nonce advances and the derivation retries.
func (p *Pool) nextStakeID(owner aurum.Address, amount *big.Int, now uint64) (aurum.Bytes32, error) {
	var nowBuf [8]byte
	binary.BigEndian.PutUint64(nowBuf[:], now)

	for {
		nonce, err := p.nonce.Get()
		if err != nil {
			return aurum.Bytes32{}, err
		}
		nonce++
		if err := p.nonce.Set(nonce); err != nil {
			return aurum.Bytes32{}, err
		}

		var nonceBuf [8]byte
		binary.BigEndian.PutUint64(nonceBuf[:], nonce)
		id := aurum.Keccak256(nowBuf[:], owner.Bytes(), amount.Bytes(), nonceBuf[:])

		existing, err := p.stakes.Get(stakeKey(owner, id))
		if err != nil {
			return aurum.Bytes32{}, err
		}
		if !existing.exists() {
			return id, nil
		}
	}
}
