// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package slot provides storage abstractions for built-in contracts,
// modeled after contract storage slots.
package slot

import (
	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/state"
)

// Context binds a built-in contract address to a state.
type Context struct {
	address aurum.Address
	state   *state.State
}

// NewContext creates a storage context for the contract at the given address.
func NewContext(address aurum.Address, st *state.State) *Context {
	return &Context{
		address: address,
		state:   st,
	}
}

// Address returns the contract address the context is bound to.
func (c *Context) Address() aurum.Address {
	return c.address
}

// State returns the underlying state.
func (c *Context) State() *state.State {
	return c.state
}
