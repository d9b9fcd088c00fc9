// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/reverts"
	"github.com/aurum-network/aurum/builtin/slot"
	"github.com/aurum-network/aurum/lvldb"
	"github.com/aurum-network/aurum/state"
)

func newTestLedger(hardCap *big.Int) *Ledger {
	db, _ := lvldb.NewMem()
	st := state.New(db)
	l := New(slot.NewContext(aurum.BytesToAddress([]byte("token")), st))
	if err := l.Initialize(hardCap); err != nil {
		panic(err)
	}
	return l
}

func TestInitializeOnce(t *testing.T) {
	l := newTestLedger(big.NewInt(1000))
	assert.Error(t, l.Initialize(big.NewInt(2000)))

	cap_, err := l.HardCap()
	assert.Nil(t, err)
	assert.Equal(t, big.NewInt(1000), cap_)
}

func TestMintTransferBurn(t *testing.T) {
	l := newTestLedger(big.NewInt(1000))
	a := aurum.BytesToAddress([]byte("a"))
	b := aurum.BytesToAddress([]byte("b"))

	assert.Nil(t, l.Mint(a, big.NewInt(600)))
	bal, _ := l.Balance(a)
	assert.Equal(t, big.NewInt(600), bal)

	assert.Nil(t, l.Transfer(a, b, big.NewInt(200)))
	bal, _ = l.Balance(a)
	assert.Equal(t, big.NewInt(400), bal)
	bal, _ = l.Balance(b)
	assert.Equal(t, big.NewInt(200), bal)

	err := l.Transfer(a, b, big.NewInt(500))
	assert.True(t, reverts.Is(err, reverts.InsufficientBalance))

	assert.Nil(t, l.Burn(b, big.NewInt(50)))
	bal, _ = l.Balance(b)
	assert.Equal(t, big.NewInt(150), bal)

	supply, _ := l.TotalSupply()
	assert.Equal(t, big.NewInt(550), supply)
}

// Mint to the cap, burn, then the headroom equals exactly the burned
// amount: burning shrinks ceiling and outstanding supply in lockstep.
func TestCapAdmission(t *testing.T) {
	hardCap := aurum.ToBaseUnits(20_000_000)
	l := newTestLedger(hardCap)
	x := aurum.BytesToAddress([]byte("x"))

	assert.Nil(t, l.Mint(x, hardCap))

	err := l.Mint(x, big.NewInt(1))
	assert.True(t, reverts.Is(err, reverts.CapExceeded))

	assert.Nil(t, l.Burn(x, big.NewInt(10)))

	effCap, _ := l.EffectiveCap()
	assert.Equal(t, new(big.Int).Sub(hardCap, big.NewInt(10)), effCap)

	assert.Nil(t, l.Mint(x, big.NewInt(10)))

	err = l.Mint(x, big.NewInt(1))
	assert.True(t, reverts.Is(err, reverts.CapExceeded))
}

func TestEffectiveCapDecreasesExactlyByBurn(t *testing.T) {
	l := newTestLedger(big.NewInt(1000))
	a := aurum.BytesToAddress([]byte("a"))
	assert.Nil(t, l.Mint(a, big.NewInt(500)))

	before, _ := l.EffectiveCap()
	assert.Nil(t, l.Mint(a, big.NewInt(100)))
	assert.Nil(t, l.Transfer(a, aurum.BytesToAddress([]byte("b")), big.NewInt(100)))
	after, _ := l.EffectiveCap()
	// mint and transfer leave the effective cap untouched
	assert.Equal(t, before, after)

	assert.Nil(t, l.Burn(a, big.NewInt(42)))
	after, _ = l.EffectiveCap()
	assert.Equal(t, new(big.Int).Sub(before, big.NewInt(42)), after)
}

func TestSelfTransfer(t *testing.T) {
	l := newTestLedger(big.NewInt(1000))
	a := aurum.BytesToAddress([]byte("a"))
	assert.Nil(t, l.Mint(a, big.NewInt(100)))

	assert.Nil(t, l.Transfer(a, a, big.NewInt(60)))
	bal, _ := l.Balance(a)
	assert.Equal(t, big.NewInt(100), bal)
}
