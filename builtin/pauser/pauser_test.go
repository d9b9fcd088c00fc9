// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package pauser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/reverts"
	"github.com/aurum-network/aurum/builtin/slot"
	"github.com/aurum-network/aurum/lvldb"
	"github.com/aurum-network/aurum/state"
)

func TestPauser(t *testing.T) {
	db, _ := lvldb.NewMem()
	st := state.New(db)
	p := New(slot.NewContext(aurum.BytesToAddress([]byte("token")), st))

	paused, err := p.IsPaused()
	assert.Nil(t, err)
	assert.False(t, paused)
	assert.Nil(t, p.RequireNotPaused())

	err = p.Unpause()
	assert.True(t, reverts.Is(err, reverts.NotPaused))

	assert.Nil(t, p.Pause())
	err = p.Pause()
	assert.True(t, reverts.Is(err, reverts.AlreadyPaused))

	err = p.RequireNotPaused()
	assert.True(t, reverts.Is(err, reverts.ContractPaused))

	assert.Nil(t, p.Unpause())
	assert.Nil(t, p.RequireNotPaused())
}
