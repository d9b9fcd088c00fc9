// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package blacklist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/reverts"
	"github.com/aurum-network/aurum/builtin/slot"
	"github.com/aurum-network/aurum/lvldb"
	"github.com/aurum-network/aurum/state"
)

func TestBlacklist(t *testing.T) {
	db, _ := lvldb.NewMem()
	st := state.New(db)
	bl := New(slot.NewContext(aurum.BytesToAddress([]byte("token")), st))

	acc := aurum.BytesToAddress([]byte("a1"))

	listed, err := bl.IsBlacklisted(acc)
	assert.Nil(t, err)
	assert.False(t, listed)

	// unlisting a non-listed account fails without state change
	err = bl.Remove(acc)
	assert.True(t, reverts.Is(err, reverts.NotBlacklisted))

	assert.Nil(t, bl.Add(acc))
	listed, _ = bl.IsBlacklisted(acc)
	assert.True(t, listed)

	// listing twice fails without state change
	err = bl.Add(acc)
	assert.True(t, reverts.Is(err, reverts.AlreadyBlacklisted))
	listed, _ = bl.IsBlacklisted(acc)
	assert.True(t, listed)

	assert.Nil(t, bl.Remove(acc))
	listed, _ = bl.IsBlacklisted(acc)
	assert.False(t, listed)
}
