// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/reverts"
	"github.com/aurum-network/aurum/builtin/slot"
	"github.com/aurum-network/aurum/lvldb"
	"github.com/aurum-network/aurum/state"
)

func newTestRoles() *Roles {
	db, _ := lvldb.NewMem()
	st := state.New(db)
	return New(slot.NewContext(aurum.BytesToAddress([]byte("token")), st))
}

func TestGrantRevoke(t *testing.T) {
	r := newTestRoles()
	acc := aurum.BytesToAddress([]byte("a1"))

	has, err := r.Has(acc, Minter)
	assert.Nil(t, err)
	assert.False(t, has)

	added, err := r.Add(acc, Minter)
	assert.Nil(t, err)
	assert.True(t, added)

	// second grant is a no-op
	added, err = r.Add(acc, Minter)
	assert.Nil(t, err)
	assert.False(t, added)

	has, _ = r.Has(acc, Minter)
	assert.True(t, has)

	// other roles unaffected
	has, _ = r.Has(acc, Pauser)
	assert.False(t, has)

	removed, err := r.Remove(acc, Minter)
	assert.Nil(t, err)
	assert.True(t, removed)

	removed, err = r.Remove(acc, Minter)
	assert.Nil(t, err)
	assert.False(t, removed)
}

func TestRequire(t *testing.T) {
	r := newTestRoles()
	acc := aurum.BytesToAddress([]byte("a1"))

	err := r.Require(acc, Admin)
	assert.True(t, reverts.Is(err, reverts.PermissionDenied))

	r.Add(acc, Admin)
	assert.Nil(t, r.Require(acc, Admin))
}

func TestRoleNames(t *testing.T) {
	assert.Equal(t, "admin", Admin.String())
	assert.Equal(t, "burner", Burner.String())
	assert.Equal(t, "unknown", Role(99).String())
}
