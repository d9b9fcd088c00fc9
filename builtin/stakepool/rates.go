// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakepool

import (
	"math/big"

	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/reverts"
)

// Tier selects the lock duration and reward curve of a stake.
type Tier uint8

const (
	Silver Tier = iota
	Gold
	Platinum
)

// String returns the canonical tier name.
func (t Tier) String() string {
	switch t {
	case Silver:
		return "silver"
	case Gold:
		return "gold"
	case Platinum:
		return "platinum"
	}
	return "unknown"
}

// DurationMonths returns the lock duration of the tier.
func (t Tier) DurationMonths() (uint32, error) {
	switch t {
	case Silver:
		return 3, nil
	case Gold:
		return 6, nil
	case Platinum:
		return 12, nil
	}
	return 0, reverts.New(reverts.InvalidTier, "tier %d", t)
}

// Capacity and lifecycle limits of the pool.
var (
	// MinStakeAmount the smallest admissible principal.
	MinStakeAmount = aurum.ToBaseUnits(1_000)

	// MaxStakePerAccount ceiling on one account's active principal.
	MaxStakePerAccount = aurum.ToBaseUnits(200_000)

	// MaxStakePool pool-wide ceiling on active principal.
	MaxStakePool = aurum.ToBaseUnits(10_000_000)
)

const (
	// PoolWindowMonths months the pool accepts stakes after opening.
	PoolWindowMonths = 60

	// MaxOpenLeadTime how far in the future the opening timestamp may be
	// set, 13 weeks in seconds.
	MaxOpenLeadTime uint64 = 13 * 7 * 24 * 3600
)

// rateTable maps lock duration (months) and pool age bracket to APY %.
// Configuration data, reproduced exactly; off-chain reward projections
// depend on these values.
var rateTable = map[uint32]map[uint64]uint64{
	3:  {24: 5, 48: 4, 60: 3},
	6:  {24: 7, 48: 6, 60: 5},
	12: {24: 9, 48: 8, 60: 7},
}

// ageBracket buckets the pool age at stake time into the smallest of
// {24, 48, 60} months that is >= startMonth.
func ageBracket(startMonth uint64) (uint64, error) {
	switch {
	case startMonth <= 24:
		return 24, nil
	case startMonth <= 48:
		return 48, nil
	case startMonth <= 60:
		return 60, nil
	}
	return 0, reverts.New(reverts.PoolClosed, "pool age %d months", startMonth)
}

// rewardFor computes amount * apy/100 * duration/12, truncating.
// Multiplications run before the division so no precision is lost
// until the single final truncation.
func rewardFor(amount *big.Int, apy uint64, durationMonths uint32) *big.Int {
	reward := new(big.Int).Mul(amount, new(big.Int).SetUint64(apy))
	reward.Mul(reward, big.NewInt(int64(durationMonths)))
	return reward.Div(reward, big.NewInt(100*12))
}
