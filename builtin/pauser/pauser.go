// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package pauser implements the two-state switch short-circuiting all
// balance mutations while engaged.
package pauser

import (
	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/reverts"
	"github.com/aurum-network/aurum/builtin/slot"
)

var slotPaused = aurum.BytesToBytes32([]byte("paused"))

// Pauser the pause breaker.
type Pauser struct {
	paused *slot.Value[bool]
}

// New creates the breaker over the given storage context.
func New(ctx *slot.Context) *Pauser {
	return &Pauser{
		paused: slot.NewValue[bool](ctx, slotPaused),
	}
}

// IsPaused returns whether the breaker is engaged.
func (p *Pauser) IsPaused() (bool, error) {
	return p.paused.Get()
}

// Pause engages the breaker. Fails with AlreadyPaused when engaged.
func (p *Pauser) Pause() error {
	paused, err := p.paused.Get()
	if err != nil {
		return err
	}
	if paused {
		return reverts.New(reverts.AlreadyPaused, "")
	}
	return p.paused.Set(true)
}

// Unpause releases the breaker. Fails with NotPaused when not engaged.
func (p *Pauser) Unpause() error {
	paused, err := p.paused.Get()
	if err != nil {
		return err
	}
	if !paused {
		return reverts.New(reverts.NotPaused, "")
	}
	return p.paused.Set(false)
}

// RequireNotPaused fails with ContractPaused while the breaker is engaged.
func (p *Pauser) RequireNotPaused() error {
	paused, err := p.paused.Get()
	if err != nil {
		return err
	}
	if paused {
		return reverts.New(reverts.ContractPaused, "")
	}
	return nil
}
