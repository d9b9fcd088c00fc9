// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"

	"github.com/aurum-network/aurum/aurum"
)

// HexBig marshals big integers as 0x-prefixed hex strings.
type HexBig big.Int

// MarshalJSON implements json.Marshaler.
func (b *HexBig) MarshalJSON() ([]byte, error) {
	return json.Marshal((*math.HexOrDecimal256)(b))
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *HexBig) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return (*math.HexOrDecimal256)(b).UnmarshalText([]byte(s))
}

// ToBig returns the underlying big integer.
func (b *HexBig) ToBig() *big.Int {
	return (*big.Int)(b)
}

// PoolResponse pool-wide state.
type PoolResponse struct {
	TimestampOpened uint64  `json:"timestampOpened"`
	Open            bool    `json:"open"`
	TotalStaked     *HexBig `json:"totalStaked"`
	MonthsOpen      *uint64 `json:"monthsOpen,omitempty"`
}

// StakeResponse one active stake.
type StakeResponse struct {
	ID             aurum.Bytes32 `json:"id"`
	Amount         *HexBig       `json:"amount"`
	Rewards        *HexBig       `json:"rewards"`
	StartTimestamp uint64        `json:"startTimestamp"`
	DurationMonths uint32        `json:"durationMonths"`
	UnlocksAt      uint64        `json:"unlocksAt"`
	Claimable      bool          `json:"claimable"`
}

// StakesResponse all active stakes of one account.
type StakesResponse struct {
	TotalStaked *HexBig          `json:"totalStaked"`
	Stakes      []*StakeResponse `json:"stakes"`
}
