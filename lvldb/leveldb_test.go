// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lvldb

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aurum-network/aurum/kv"
)

func TestMemDB(t *testing.T) {
	db, err := NewMem()
	assert.Nil(t, err)
	defer db.Close()

	key := []byte("key")
	value := []byte("value")

	_, err = db.Get(key)
	assert.True(t, db.IsNotFound(err))

	assert.Nil(t, db.Put(key, value))

	v, err := db.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, value, v)

	has, err := db.Has(key)
	assert.Nil(t, err)
	assert.True(t, has)

	assert.Nil(t, db.Delete(key))
	has, err = db.Has(key)
	assert.Nil(t, err)
	assert.False(t, has)
}

func TestBatch(t *testing.T) {
	db, err := NewMem()
	assert.Nil(t, err)
	defer db.Close()

	batch := db.NewBatch()
	assert.Nil(t, batch.Put([]byte("k1"), []byte("v1")))
	assert.Nil(t, batch.Put([]byte("k2"), []byte("v2")))
	assert.Equal(t, 2, batch.Len())
	assert.Nil(t, batch.Write())

	v, err := db.Get([]byte("k2"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v2"), v)
}

func TestIterator(t *testing.T) {
	db, err := NewMem()
	assert.Nil(t, err)
	defer db.Close()

	assert.Nil(t, db.Put([]byte("a1"), []byte("1")))
	assert.Nil(t, db.Put([]byte("a2"), []byte("2")))
	assert.Nil(t, db.Put([]byte("b1"), []byte("3")))

	it := db.NewIterator(kv.Range{From: []byte("a"), To: []byte("b")})
	defer it.Release()

	var keys []string
	for it.Next() {
		keys = append(keys, string(it.Key()))
	}
	assert.Nil(t, it.Error())
	assert.Equal(t, []string{"a1", "a2"}, keys)
}
