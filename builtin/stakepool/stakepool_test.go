// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/reverts"
	"github.com/aurum-network/aurum/builtin/roles"
	"github.com/aurum-network/aurum/builtin/token"
	"github.com/aurum-network/aurum/events"
	"github.com/aurum-network/aurum/lvldb"
	"github.com/aurum-network/aurum/state"
)

var (
	tokenAddr = aurum.BytesToAddress([]byte("token"))
	poolAddr  = aurum.BytesToAddress([]byte("stakepool"))
	deployer  = aurum.BytesToAddress([]byte("deployer"))
	alice     = aurum.BytesToAddress([]byte("alice"))
	bob       = aurum.BytesToAddress([]byte("bob"))
)

const t0 uint64 = 1_700_000_000

func newTestPool(t *testing.T) (*Pool, *token.Token, *events.Recorder) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	st := state.New(db)

	rec := &events.Recorder{}
	tok := token.New(tokenAddr, st, rec, poolAddr)
	require.NoError(t, tok.Initialize(deployer, aurum.ToBaseUnits(20_000_000)))
	require.NoError(t, tok.GrantRole(deployer, poolAddr, roles.Minter))

	pool := New(poolAddr, st, tok, rec)
	rec.Reset()
	return pool, tok, rec
}

// fund mints tokens to the account and approves the pool for them.
func fund(t *testing.T, tok *token.Token, account aurum.Address, amount *big.Int) {
	require.NoError(t, tok.Mint(deployer, account, amount))
	require.NoError(t, tok.Approve(account, poolAddr, amount))
}

func TestOpen(t *testing.T) {
	pool, _, rec := newTestPool(t)

	err := pool.Open(alice, t0, t0)
	assert.True(t, reverts.Is(err, reverts.PermissionDenied))

	err = pool.Open(deployer, t0+MaxOpenLeadTime+1, t0)
	assert.True(t, reverts.Is(err, reverts.TooFarInFuture))

	// past timestamps clamp up to now
	require.NoError(t, pool.Open(deployer, t0-5000, t0))
	opened, err := pool.TimestampOpened()
	require.NoError(t, err)
	assert.Equal(t, t0, opened)
	assert.Equal(t, events.PoolOpened{Timestamp: t0, Actor: deployer}, rec.Last())

	err = pool.Open(deployer, t0, t0)
	assert.True(t, reverts.Is(err, reverts.AlreadyConfigured))
}

func TestOpenInFuture(t *testing.T) {
	pool, _, _ := newTestPool(t)

	require.NoError(t, pool.Open(deployer, t0+1000, t0))

	open, err := pool.IsOpen(t0)
	require.NoError(t, err)
	assert.False(t, open)

	open, err = pool.IsOpen(t0 + 1000)
	require.NoError(t, err)
	assert.True(t, open)
}

func TestStakeLifecycle(t *testing.T) {
	pool, tok, rec := newTestPool(t)

	require.NoError(t, pool.Open(deployer, t0, t0))
	fund(t, tok, alice, aurum.ToBaseUnits(2_000))
	rec.Reset()

	principal := aurum.ToBaseUnits(1_000)
	id, err := pool.CreateStake(alice, principal, Silver, t0)
	require.NoError(t, err)

	// 1000e18 * 5% * 3/12
	wantReward := new(big.Int).Mul(big.NewInt(125), big.NewInt(1e17))
	assert.Equal(t, events.StakeCreated{
		ID:             id,
		Owner:          alice,
		Amount:         principal,
		Rewards:        wantReward,
		StartTimestamp: t0,
		DurationMonths: 3,
	}, rec.Last())

	// principal in custody, reward minted on top of it
	poolBal, _ := tok.BalanceOf(poolAddr)
	assert.Equal(t, new(big.Int).Add(principal, wantReward), poolBal)
	total, _ := pool.TotalStaked()
	assert.Equal(t, principal, total)

	err = pool.Unstake(alice, id, t0)
	assert.True(t, reverts.Is(err, reverts.StillLocked))
	err = pool.Unstake(alice, id, t0+3*aurum.AvgSecondsPerMonth-1)
	assert.True(t, reverts.Is(err, reverts.StillLocked))

	require.NoError(t, pool.Unstake(alice, id, t0+3*aurum.AvgSecondsPerMonth))
	assert.Equal(t, events.Unstaked{
		ID:     id,
		Owner:  alice,
		Amount: principal,
		Payout: new(big.Int).Add(principal, wantReward),
	}, rec.Last())

	aliceBal, _ := tok.BalanceOf(alice)
	assert.Equal(t, new(big.Int).Add(aurum.ToBaseUnits(2_000), wantReward), aliceBal)

	total, _ = pool.TotalStaked()
	assert.Equal(t, 0, total.Sign())
	accountTotal, _ := pool.TotalStakedBy(alice)
	assert.Equal(t, 0, accountTotal.Sign())

	// exactly one settlement
	err = pool.Unstake(alice, id, t0+4*aurum.AvgSecondsPerMonth)
	assert.True(t, reverts.Is(err, reverts.StakeNotFound))
}

func TestCreateStakeAdmission(t *testing.T) {
	pool, tok, _ := newTestPool(t)

	amount := aurum.ToBaseUnits(1_000)
	_, err := pool.CreateStake(alice, amount, Silver, t0)
	assert.True(t, reverts.Is(err, reverts.PoolNotOpen))

	require.NoError(t, pool.Open(deployer, t0, t0))

	_, err = pool.CreateStake(alice, aurum.ToBaseUnits(999), Silver, t0)
	assert.True(t, reverts.Is(err, reverts.BelowMinimum))

	fund(t, tok, alice, aurum.ToBaseUnits(300_000))
	_, err = pool.CreateStake(alice, aurum.ToBaseUnits(200_001), Silver, t0)
	assert.True(t, reverts.Is(err, reverts.ExceedsUserLimit))

	// allowance precheck surfaces before the transfer
	require.NoError(t, tok.Mint(deployer, bob, amount))
	_, err = pool.CreateStake(bob, amount, Silver, t0)
	assert.True(t, reverts.Is(err, reverts.InsufficientAllowance))

	// balance precheck
	require.NoError(t, tok.Approve(bob, poolAddr, aurum.ToBaseUnits(2_000)))
	_, err = pool.CreateStake(bob, aurum.ToBaseUnits(2_000), Silver, t0)
	assert.True(t, reverts.Is(err, reverts.InsufficientBalance))

	_, err = pool.CreateStake(alice, amount, Tier(9), t0)
	assert.True(t, reverts.Is(err, reverts.InvalidTier))

	// failed admissions must leave no trace
	total, _ := pool.TotalStaked()
	assert.Equal(t, 0, total.Sign())
	stakes, err := pool.StakesOf(alice)
	require.NoError(t, err)
	assert.Empty(t, stakes)
}

func TestUnlimitedAllowanceAdmission(t *testing.T) {
	pool, tok, _ := newTestPool(t)

	require.NoError(t, pool.Open(deployer, t0, t0))
	require.NoError(t, tok.Mint(deployer, alice, aurum.ToBaseUnits(5_000)))
	require.NoError(t, tok.Approve(alice, poolAddr, aurum.MaxUint256))

	_, err := pool.CreateStake(alice, aurum.ToBaseUnits(5_000), Silver, t0)
	require.NoError(t, err)

	// the sentinel survives the pull
	allowance, err := tok.Allowance(alice, poolAddr)
	require.NoError(t, err)
	assert.Equal(t, 0, allowance.Cmp(aurum.MaxUint256))
}

func TestPoolCapacity(t *testing.T) {
	pool, tok, _ := newTestPool(t)

	require.NoError(t, pool.Open(deployer, t0, t0))

	// fill to exactly the pool-wide ceiling across 50 accounts
	per := aurum.ToBaseUnits(200_000)
	for i := 0; i < 50; i++ {
		account := aurum.BytesToAddress([]byte(fmt.Sprintf("staker-%d", i)))
		fund(t, tok, account, per)
		_, err := pool.CreateStake(account, per, Silver, t0)
		require.NoError(t, err, "account %d", i)
	}

	total, err := pool.TotalStaked()
	require.NoError(t, err)
	assert.Equal(t, MaxStakePool, total)

	fund(t, tok, alice, aurum.ToBaseUnits(1_000))
	_, err = pool.CreateStake(alice, aurum.ToBaseUnits(1_000), Silver, t0)
	assert.True(t, reverts.Is(err, reverts.ExceedsPoolLimit))
}

func TestPoolExpiry(t *testing.T) {
	pool, tok, _ := newTestPool(t)

	require.NoError(t, pool.Open(deployer, t0, t0))
	fund(t, tok, alice, aurum.ToBaseUnits(1_000))
	id, err := pool.CreateStake(alice, aurum.ToBaseUnits(1_000), Platinum, t0)
	require.NoError(t, err)

	// past the sixty-month window the pool stops admitting
	expired := t0 + PoolWindowMonths*aurum.AvgSecondsPerMonth
	open, err := pool.IsOpen(expired)
	require.NoError(t, err)
	assert.False(t, open)

	_, err = pool.MonthsOpen(expired)
	assert.True(t, reverts.Is(err, reverts.PoolClosed))

	fund(t, tok, bob, aurum.ToBaseUnits(1_000))
	_, err = pool.CreateStake(bob, aurum.ToBaseUnits(1_000), Silver, expired)
	assert.True(t, reverts.Is(err, reverts.PoolNotOpen))

	// every lock has elapsed by then, settlement still works
	require.NoError(t, pool.Unstake(alice, id, expired))
}

func TestStakesOf(t *testing.T) {
	pool, tok, _ := newTestPool(t)

	require.NoError(t, pool.Open(deployer, t0, t0))
	fund(t, tok, alice, aurum.ToBaseUnits(10_000))

	first, err := pool.CreateStake(alice, aurum.ToBaseUnits(1_000), Silver, t0)
	require.NoError(t, err)
	second, err := pool.CreateStake(alice, aurum.ToBaseUnits(2_000), Gold, t0+10)
	require.NoError(t, err)
	third, err := pool.CreateStake(alice, aurum.ToBaseUnits(3_000), Platinum, t0+20)
	require.NoError(t, err)

	stakes, err := pool.StakesOf(alice)
	require.NoError(t, err)
	require.Len(t, stakes, 3)
	assert.Equal(t, []aurum.Bytes32{first, second, third}, []aurum.Bytes32{stakes[0].ID, stakes[1].ID, stakes[2].ID})
	assert.Equal(t, uint32(6), stakes[1].DurationMonths)

	// settling the middle stake keeps the others ordered
	require.NoError(t, pool.Unstake(alice, second, t0+6*aurum.AvgSecondsPerMonth+10))
	stakes, err = pool.StakesOf(alice)
	require.NoError(t, err)
	require.Len(t, stakes, 2)
	assert.Equal(t, first, stakes[0].ID)
	assert.Equal(t, third, stakes[1].ID)

	got, err := pool.GetStake(alice, second)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRewardBracketFollowsPoolAge(t *testing.T) {
	pool, tok, rec := newTestPool(t)

	require.NoError(t, pool.Open(deployer, t0, t0))
	fund(t, tok, alice, aurum.ToBaseUnits(10_000))

	// at month 30 the silver rate drops to the 48-month bracket, 4%
	now := t0 + 30*aurum.AvgSecondsPerMonth
	rec.Reset()
	_, err := pool.CreateStake(alice, aurum.ToBaseUnits(1_000), Silver, now)
	require.NoError(t, err)

	created := rec.Last().(events.StakeCreated)
	assert.Equal(t, rewardFor(aurum.ToBaseUnits(1_000), 4, 3), created.Rewards)
}
