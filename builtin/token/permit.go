// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"encoding/binary"
	"math/big"

	ethmath "github.com/ethereum/go-ethereum/common/math"

	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin/reverts"
	"github.com/aurum-network/aurum/cry"
	"github.com/aurum-network/aurum/metrics"
)

var metricPermits = metrics.Counter("token_permit_count")

// PermitDigest computes the message hash an owner signs to authorize a
// gasless approval. The token address binds the signature to one
// deployment; the owner's nonce makes it single-use.
func PermitDigest(token, owner, spender aurum.Address, value *big.Int, nonce uint64, deadline uint64) aurum.Bytes32 {
	domain := aurum.Keccak256([]byte(aurum.TokenName), token.Bytes())

	var nonceBuf, deadlineBuf [8]byte
	binary.BigEndian.PutUint64(nonceBuf[:], nonce)
	binary.BigEndian.PutUint64(deadlineBuf[:], deadline)

	return aurum.Keccak256(
		domain.Bytes(),
		owner.Bytes(),
		spender.Bytes(),
		ethmath.PaddedBigBytes(value, 32),
		nonceBuf[:],
		deadlineBuf[:],
	)
}

// Permit sets owner's allowance for spender to value, authorized by the
// owner's signature instead of a direct call. Anyone may relay a permit;
// the relayer's identity does not matter beyond the deny-list.
//
// The signature covers the owner's current nonce, which is consumed on
// success, so each permit applies at most once. now is the current
// timestamp checked against deadline.
func (t *Token) Permit(caller, owner, spender aurum.Address, value *big.Int, deadline uint64, sig []byte, now uint64) error {
	return t.run(func() error {
		if err := validAmount(value); err != nil {
			return err
		}
		if err := t.requireNotBlacklisted(caller, owner); err != nil {
			return err
		}
		if value.Sign() != 0 {
			if err := t.requireNotBlacklisted(spender); err != nil {
				return err
			}
		}
		if now > deadline {
			return reverts.New(reverts.ExpiredDeadline, "deadline %d, now %d", deadline, now)
		}

		nonce, err := t.nonces.Get(owner)
		if err != nil {
			return err
		}
		digest := PermitDigest(t.addr, owner, spender, value, nonce, deadline)
		signer, err := cry.Signer(digest, sig)
		if err != nil {
			return reverts.New(reverts.InvalidSigner, "%v", err)
		}
		if signer != owner {
			return reverts.New(reverts.InvalidSigner, "recovered %v, want %v", signer, owner)
		}

		if err := t.nonces.Set(owner, nonce+1); err != nil {
			return err
		}
		if err := t.setApproval(owner, spender, value); err != nil {
			return err
		}
		metricPermits.Add(1)
		logger.Debug("permit", "owner", owner, "spender", spender, "value", value, "relayer", caller)
		return nil
	})
}
