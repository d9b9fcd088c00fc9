// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package slot

import (
	"reflect"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/aurum-network/aurum/aurum"
)

// Key is anything addressable as bytes.
type Key interface {
	Bytes() []byte
}

// Bytes adapts a raw byte slice into a Key.
type Bytes []byte

// Bytes implements Key.
func (b Bytes) Bytes() []byte { return b }

// CompositeKey joins multiple byte strings into a single Key.
func CompositeKey(parts ...[]byte) Key {
	var joined []byte
	for _, p := range parts {
		joined = append(joined, p...)
	}
	return Bytes(joined)
}

// Mapping is a key/value storage abstraction for built-in contracts,
// similar to the mapping in Solidity. Values are RLP encoded at
// positions derived from the base position and the key.
type Mapping[K Key, V any] struct {
	context *Context
	basePos aurum.Bytes32
}

// NewMapping creates a mapping rooted at the given position.
func NewMapping[K Key, V any](context *Context, pos aurum.Bytes32) *Mapping[K, V] {
	return &Mapping[K, V]{context: context, basePos: pos}
}

func (m *Mapping[K, V]) position(key K) aurum.Bytes32 {
	return aurum.Blake2b(key.Bytes(), m.basePos.Bytes())
}

// Get returns the value stored for key, or the zero value if absent.
func (m *Mapping[K, V]) Get(key K) (value V, err error) {
	err = m.context.state.DecodeStorage(m.context.address, m.position(key), func(raw []byte) error {
		if reflect.ValueOf(&value).Elem().Kind() == reflect.Ptr {
			value = reflect.New(reflect.TypeOf(value).Elem()).Interface().(V)
		}
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, &value)
	})
	return
}

// Set stores the value for key.
func (m *Mapping[K, V]) Set(key K, value V) error {
	return m.context.state.EncodeStorage(m.context.address, m.position(key), func() ([]byte, error) {
		return rlp.EncodeToBytes(value)
	})
}

// Delete removes the entry for key.
func (m *Mapping[K, V]) Delete(key K) error {
	return m.context.state.EncodeStorage(m.context.address, m.position(key), func() ([]byte, error) {
		return nil, nil
	})
}
