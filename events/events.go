// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package events defines the structured notification records emitted on
// every state transition, and the emitter boundary consumed by external
// observers. Field order of each record is part of the wire contract
// with off-chain indexers; do not reorder.
package events

import (
	"math/big"

	"github.com/aurum-network/aurum/aurum"
)

// Event is a structured notification record.
type Event interface {
	// Name returns the canonical event name.
	Name() string
}

// Emitter consumes events produced by the built-in contracts.
type Emitter interface {
	Emit(ev Event)
}

// Transfer emitted on every balance movement. Mints are transfers from
// the zero address, burns are transfers to the zero address.
type Transfer struct {
	From  aurum.Address
	To    aurum.Address
	Value *big.Int
}

func (Transfer) Name() string { return "Transfer" }

// Approval emitted when an allowance is set.
type Approval struct {
	Owner   aurum.Address
	Spender aurum.Address
	Value   *big.Int
}

func (Approval) Name() string { return "Approval" }

// UnlimitedAllowanceWarning advisory signal emitted alongside Approval
// when the allowance is set to the unlimited sentinel.
type UnlimitedAllowanceWarning struct {
	Owner   aurum.Address
	Spender aurum.Address
}

func (UnlimitedAllowanceWarning) Name() string { return "UnlimitedAllowanceWarning" }

// RoleGranted emitted when a role is granted.
type RoleGranted struct {
	Role    string
	Account aurum.Address
	Actor   aurum.Address
}

func (RoleGranted) Name() string { return "RoleGranted" }

// RoleRevoked emitted when a role is revoked or renounced.
type RoleRevoked struct {
	Role    string
	Account aurum.Address
	Actor   aurum.Address
}

func (RoleRevoked) Name() string { return "RoleRevoked" }

// Paused emitted when the pause breaker engages.
type Paused struct {
	Actor aurum.Address
}

func (Paused) Name() string { return "Paused" }

// Unpaused emitted when the pause breaker releases.
type Unpaused struct {
	Actor aurum.Address
}

func (Unpaused) Name() string { return "Unpaused" }

// BlacklistUpdated emitted when an account is listed or unlisted.
type BlacklistUpdated struct {
	Account aurum.Address
	Listed  bool
	Actor   aurum.Address
}

func (BlacklistUpdated) Name() string { return "BlacklistUpdated" }

// PoolOpened emitted when the staking pool is configured.
type PoolOpened struct {
	Timestamp uint64
	Actor     aurum.Address
}

func (PoolOpened) Name() string { return "PoolOpened" }

// StakeCreated emitted when a stake is admitted.
type StakeCreated struct {
	ID             aurum.Bytes32
	Owner          aurum.Address
	Amount         *big.Int
	Rewards        *big.Int
	StartTimestamp uint64
	DurationMonths uint32
}

func (StakeCreated) Name() string { return "StakeCreated" }

// Unstaked emitted when a stake is settled.
type Unstaked struct {
	ID     aurum.Bytes32
	Owner  aurum.Address
	Amount *big.Int
	Payout *big.Int
}

func (Unstaked) Name() string { return "Unstaked" }
