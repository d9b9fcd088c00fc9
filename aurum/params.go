// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package aurum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
)

// Constants of the token.
const (
	TokenName     = "Aurum"
	TokenSymbol   = "AUR"
	TokenDecimals = 18

	// AvgSecondsPerMonth average month length (30.44 days), used for all
	// duration arithmetic of the staking pool.
	AvgSecondsPerMonth uint64 = 2_630_016
)

var (
	// E18 the base unit of token amounts.
	E18 = big.NewInt(1e18)

	// MaxUint256 the unlimited-allowance sentinel. An allowance set to this
	// value is never decremented on spend.
	MaxUint256 = math.MaxBig256
)

// ToBaseUnits scales a whole-token count into base units (n * 1e18).
func ToBaseUnits(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), E18)
}
