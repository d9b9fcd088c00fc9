// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package reverts defines the typed rejection errors surfaced by built-in
// contract entry points. Every revert is deterministic given the same
// state and inputs; callers must treat them as permanent until state
// changes.
package reverts

import (
	"errors"
	"fmt"
)

// Code classifies a revert.
type Code int

const (
	// authorization
	PermissionDenied Code = iota + 1
	Blacklisted

	// state-machine violations
	AlreadyPaused
	NotPaused
	AlreadyConfigured
	PoolNotOpen
	PoolClosed
	StillLocked
	StakeNotFound
	AlreadyBlacklisted
	NotBlacklisted

	// invariant violations
	CapExceeded
	InsufficientBalance
	InsufficientAllowance

	// input validation
	SelfAllowance
	ZeroAddressAllowance
	MustResetToZeroFirst
	CannotBlacklist
	ContractPaused
	InvalidTier
	BelowMinimum
	ExceedsUserLimit
	ExceedsPoolLimit
	TooFarInFuture

	// replay/signature
	ExpiredDeadline
	InvalidSigner
)

var codeNames = map[Code]string{
	PermissionDenied:      "permission denied",
	Blacklisted:           "account blacklisted",
	AlreadyPaused:         "already paused",
	NotPaused:             "not paused",
	AlreadyConfigured:     "already configured",
	PoolNotOpen:           "pool not open",
	PoolClosed:            "pool closed",
	StillLocked:           "still locked",
	StakeNotFound:         "stake not found",
	AlreadyBlacklisted:    "already blacklisted",
	NotBlacklisted:        "not blacklisted",
	CapExceeded:           "cap exceeded",
	InsufficientBalance:   "insufficient balance",
	InsufficientAllowance: "insufficient allowance",
	SelfAllowance:         "self allowance",
	ZeroAddressAllowance:  "zero address allowance",
	MustResetToZeroFirst:  "must reset allowance to zero first",
	CannotBlacklist:       "cannot blacklist",
	ContractPaused:        "contract paused",
	InvalidTier:           "invalid tier",
	BelowMinimum:          "below minimum stake",
	ExceedsUserLimit:      "exceeds user stake limit",
	ExceedsPoolLimit:      "exceeds pool stake limit",
	TooFarInFuture:        "too far in future",
	ExpiredDeadline:       "expired deadline",
	InvalidSigner:         "invalid signer",
}

// String returns the canonical name of the code.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("revert code %d", int(c))
}

// ErrRevert is a typed rejection of a contract entry point.
type ErrRevert struct {
	code    Code
	message string
}

// New creates a revert error carrying the given code.
// The format args are appended to the code's canonical name.
func New(code Code, format string, args ...any) *ErrRevert {
	msg := code.String()
	if format != "" {
		msg += ": " + fmt.Sprintf(format, args...)
	}
	return &ErrRevert{code: code, message: msg}
}

// Error implements the error interface.
func (e *ErrRevert) Error() string {
	return e.message
}

// Code returns the revert code.
func (e *ErrRevert) Code() Code {
	return e.code
}

// Is reports whether err is a revert with the given code.
func Is(err error, code Code) bool {
	var rev *ErrRevert
	if errors.As(err, &rev) {
		return rev.code == code
	}
	return false
}

// IsRevert reports whether err is any revert.
func IsRevert(err error) bool {
	var rev *ErrRevert
	return errors.As(err, &rev)
}
