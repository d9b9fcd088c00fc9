// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/lvldb"
)

func TestStorage(t *testing.T) {
	db, _ := lvldb.NewMem()
	st := New(db)

	addr := aurum.BytesToAddress([]byte("addr"))
	key := aurum.BytesToBytes32([]byte("key"))

	raw, err := st.GetRawStorage(addr, key)
	assert.Nil(t, err)
	assert.Empty(t, raw)

	st.SetRawStorage(addr, key, []byte("value"))
	raw, err = st.GetRawStorage(addr, key)
	assert.Nil(t, err)
	assert.Equal(t, []byte("value"), raw)
}

func TestRevert(t *testing.T) {
	db, _ := lvldb.NewMem()
	st := New(db)

	addr := aurum.BytesToAddress([]byte("addr"))
	key := aurum.BytesToBytes32([]byte("key"))

	st.SetRawStorage(addr, key, []byte("v1"))

	cp := st.NewCheckpoint()
	st.SetRawStorage(addr, key, []byte("v2"))
	raw, _ := st.GetRawStorage(addr, key)
	assert.Equal(t, []byte("v2"), raw)

	st.RevertTo(cp)
	raw, _ = st.GetRawStorage(addr, key)
	assert.Equal(t, []byte("v1"), raw)
}

func TestCommit(t *testing.T) {
	db, _ := lvldb.NewMem()

	addr := aurum.BytesToAddress([]byte("addr"))
	k1 := aurum.BytesToBytes32([]byte("k1"))
	k2 := aurum.BytesToBytes32([]byte("k2"))

	st := New(db)
	st.SetRawStorage(addr, k1, []byte("v1"))
	st.SetRawStorage(addr, k2, []byte("v2"))
	st.SetRawStorage(addr, k2, nil) // deleted before commit
	assert.Nil(t, st.Stage().Commit())

	// a fresh state sees committed values only
	st = New(db)
	raw, _ := st.GetRawStorage(addr, k1)
	assert.Equal(t, []byte("v1"), raw)
	raw, _ = st.GetRawStorage(addr, k2)
	assert.Empty(t, raw)
}

func TestRevertedChangesNotCommitted(t *testing.T) {
	db, _ := lvldb.NewMem()

	addr := aurum.BytesToAddress([]byte("addr"))
	key := aurum.BytesToBytes32([]byte("key"))

	st := New(db)
	cp := st.NewCheckpoint()
	st.SetRawStorage(addr, key, []byte("v"))
	st.RevertTo(cp)
	assert.Nil(t, st.Stage().Commit())

	st = New(db)
	raw, _ := st.GetRawStorage(addr, key)
	assert.Empty(t, raw)
}
