// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stackedmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aurum-network/aurum/stackedmap"
)

func TestStackedMap(t *testing.T) {
	assert := assert.New(t)

	src := make(map[string]string)
	src["foo"] = "bar"

	sm := stackedmap.New(func(key any) (any, bool, error) {
		v, ok := src[key.(string)]
		return v, ok, nil
	})

	tests := []struct {
		f         func()
		depth     int
		putKey    string
		putValue  string
		getKey    string
		getReturn []any
	}{
		{func() { sm.Push() }, 1, "", "", "", nil},
		{nil, 1, "qux", "baz", "qux", []any{"baz", true}},
		{nil, 1, "", "", "foo", []any{"bar", true}},
		{func() { sm.Push() }, 2, "", "", "", nil},
		{nil, 2, "qux", "baz2", "qux", []any{"baz2", true}},
		{func() { sm.Pop() }, 1, "", "", "qux", []any{"baz", true}},
		{func() { sm.Push(); sm.Push() }, 3, "", "", "", nil},
		{func() { sm.PopTo(1) }, 1, "", "", "qux", []any{"baz", true}},
		{func() { sm.Pop() }, 0, "", "", "qux", []any{"", false}},
		{nil, 0, "", "", "foo", []any{"bar", true}},
	}

	for _, tt := range tests {
		if tt.f != nil {
			tt.f()
		}
		assert.Equal(tt.depth, sm.Depth())
		if tt.putKey != "" {
			sm.Put(tt.putKey, tt.putValue)
		}
		if tt.getKey != "" {
			v, ok, err := sm.Get(tt.getKey)
			assert.Nil(err)
			assert.Equal(tt.getReturn, []any{v, ok})
		}
	}
}

func TestJournal(t *testing.T) {
	sm := stackedmap.New(func(_ any) (any, bool, error) {
		return nil, false, nil
	})

	sm.Push()
	sm.Put("a", "1")
	sm.Push()
	sm.Put("b", "2")
	sm.Put("a", "3")

	var kvs [][2]string
	sm.Journal(func(k, v any) bool {
		kvs = append(kvs, [2]string{k.(string), v.(string)})
		return true
	})
	assert.Equal(t, [][2]string{{"a", "1"}, {"b", "2"}, {"a", "3"}}, kvs)

	// revert drops journal entries of popped levels
	sm.Pop()
	kvs = kvs[:0]
	sm.Journal(func(k, v any) bool {
		kvs = append(kvs, [2]string{k.(string), v.(string)})
		return true
	})
	assert.Equal(t, [][2]string{{"a", "1"}}, kvs)
}
