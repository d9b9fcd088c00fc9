// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"fmt"

	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/kv"
	"github.com/aurum-network/aurum/stackedmap"
)

// storagePrefix prefixes all persisted storage entries.
var storagePrefix = []byte("s")

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.cause
}

type storageKey struct {
	addr aurum.Address
	key  aurum.Bytes32
}

// State manages contract storage with checkpoint/revert support.
// All values are raw byte slices; an empty value means "not existing"
// and translates into a delete on commit.
type State struct {
	kv kv.GetPutter
	sm *stackedmap.StackedMap
}

// New create a state object bound to the given key/value store.
func New(store kv.GetPutter) *State {
	st := &State{kv: store}
	st.sm = stackedmap.New(func(k any) (any, bool, error) {
		return st.loadStorage(k.(storageKey))
	})
	// the bottom level holds committed-in-memory values
	st.sm.Push()
	return st
}

func persistentKey(k storageKey) []byte {
	pk := make([]byte, 0, len(storagePrefix)+aurum.AddressLength+32)
	pk = append(pk, storagePrefix...)
	pk = append(pk, k.addr.Bytes()...)
	return append(pk, k.key.Bytes()...)
}

func (s *State) loadStorage(k storageKey) (any, bool, error) {
	raw, err := s.kv.Get(persistentKey(k))
	if err != nil {
		if s.kv.IsNotFound(err) {
			return []byte(nil), true, nil
		}
		return nil, false, &Error{err}
	}
	return raw, true, nil
}

// GetRawStorage returns raw storage value for the given address and key.
func (s *State) GetRawStorage(addr aurum.Address, key aurum.Bytes32) ([]byte, error) {
	v, _, err := s.sm.Get(storageKey{addr, key})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// SetRawStorage sets raw storage value for the given address and key.
// Passing an empty value removes the entry.
func (s *State) SetRawStorage(addr aurum.Address, key aurum.Bytes32, raw []byte) {
	s.sm.Put(storageKey{addr, key}, raw)
}

// DecodeStorage decodes raw storage value via the given decoder.
func (s *State) DecodeStorage(addr aurum.Address, key aurum.Bytes32, dec func([]byte) error) error {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return err
	}
	return dec(raw)
}

// EncodeStorage encodes a value via the given encoder and stores it.
// The encoder returning nil bytes removes the entry.
func (s *State) EncodeStorage(addr aurum.Address, key aurum.Bytes32, enc func() ([]byte, error)) error {
	raw, err := enc()
	if err != nil {
		return err
	}
	s.SetRawStorage(addr, key, raw)
	return nil
}

// NewCheckpoint makes a checkpoint of current state.
// It returns the checkpoint to be passed to RevertTo.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo reverts the state to the given checkpoint.
// All changes made after the checkpoint are dropped.
func (s *State) RevertTo(checkpoint int) {
	s.sm.PopTo(checkpoint)
}

// Stage produces a stage to commit buffered changes to the underlying store.
func (s *State) Stage() *Stage {
	changes := make(map[storageKey][]byte)
	s.sm.Journal(func(k, v any) bool {
		changes[k.(storageKey)] = v.([]byte)
		return true
	})
	return &Stage{kv: s.kv, changes: changes}
}

// Stage abstracts the changes to be committed.
type Stage struct {
	kv      kv.GetPutter
	changes map[storageKey][]byte
}

// Commit commits all changes into the underlying store atomically.
func (s *Stage) Commit() error {
	batch := s.kv.NewBatch()
	for k, raw := range s.changes {
		pk := persistentKey(k)
		if len(raw) == 0 {
			if err := batch.Delete(pk); err != nil {
				return &Error{err}
			}
		} else {
			if err := batch.Put(pk, raw); err != nil {
				return &Error{err}
			}
		}
	}
	if err := batch.Write(); err != nil {
		return &Error{err}
	}
	return nil
}
