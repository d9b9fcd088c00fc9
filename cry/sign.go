// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package cry wraps the signing primitives used for gasless approvals.
// Signature verification itself is delegated to the secp256k1
// implementation; the core never reimplements it.
package cry

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/aurum-network/aurum/aurum"
)

// SignatureLength length of a recoverable signature, [R || S || V].
const SignatureLength = 65

// Sign signs the 32-byte message hash with the private key.
// The produced signature is in the [R || S || V] format where V is 0 or 1.
func Sign(msgHash aurum.Bytes32, priv *ecdsa.PrivateKey) ([]byte, error) {
	sig, err := crypto.Sign(msgHash.Bytes(), priv)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}
	return sig, nil
}

// Signer recovers the signer address from the message hash and signature.
func Signer(msgHash aurum.Bytes32, sig []byte) (aurum.Address, error) {
	if len(sig) != SignatureLength {
		return aurum.Address{}, errors.New("invalid signature length")
	}
	pub, err := crypto.SigToPub(msgHash.Bytes(), sig)
	if err != nil {
		return aurum.Address{}, errors.Wrap(err, "recover signer")
	}
	return aurum.Address(crypto.PubkeyToAddress(*pub)), nil
}

// DeriveAddress derives the account address of the private key.
func DeriveAddress(priv *ecdsa.PrivateKey) aurum.Address {
	return aurum.Address(crypto.PubkeyToAddress(priv.PublicKey))
}
