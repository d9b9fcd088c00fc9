// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package builtin wires the built-in contracts to their well-known
// addresses over a shared state.
package builtin

import (
	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/stakepool"
	"github.com/aurum-network/aurum/builtin/token"
	"github.com/aurum-network/aurum/events"
	"github.com/aurum-network/aurum/state"
)

// Well-known contract addresses.
var (
	TokenAddress = aurum.BytesToAddress([]byte("aurum-token"))
	PoolAddress  = aurum.BytesToAddress([]byte("aurum-stakepool"))
)

// Contracts bundles the built-in contract instances bound to one state.
type Contracts struct {
	Token *token.Token
	Pool  *stakepool.Pool
}

// Bind binds the built-in contracts to the given state.
func Bind(st *state.State, emitter events.Emitter) *Contracts {
	tok := token.New(TokenAddress, st, emitter, PoolAddress)
	pool := stakepool.New(PoolAddress, st, tok, emitter)
	return &Contracts{Token: tok, Pool: pool}
}
