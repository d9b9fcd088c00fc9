// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
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

// SupplyResponse supply counters of the token.
type SupplyResponse struct {
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	Decimals     int     `json:"decimals"`
	HardCap      *HexBig `json:"hardCap"`
	EffectiveCap *HexBig `json:"effectiveCap"`
	TotalMinted  *HexBig `json:"totalMinted"`
	TotalBurned  *HexBig `json:"totalBurned"`
	TotalSupply  *HexBig `json:"totalSupply"`
	Paused       bool    `json:"paused"`
}

// AccountResponse per-account token state.
type AccountResponse struct {
	Balance     *HexBig `json:"balance"`
	Blacklisted bool    `json:"blacklisted"`
	Nonce       uint64  `json:"nonce"`
}

// AllowanceResponse one owner/spender allowance.
type AllowanceResponse struct {
	Allowance *HexBig `json:"allowance"`
	Unlimited bool    `json:"unlimited"`
}
