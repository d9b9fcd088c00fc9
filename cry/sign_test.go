// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cry

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurum-network/aurum/aurum"
)

func TestSignAndRecover(t *testing.T) {
	priv, err := crypto.GenerateKey()
	require.Nil(t, err)

	msg := aurum.Blake2b([]byte("message"))
	sig, err := Sign(msg, priv)
	require.Nil(t, err)
	assert.Len(t, sig, SignatureLength)

	signer, err := Signer(msg, sig)
	require.Nil(t, err)
	assert.Equal(t, DeriveAddress(priv), signer)
}

func TestRecoverMismatch(t *testing.T) {
	priv, _ := crypto.GenerateKey()
	msg := aurum.Blake2b([]byte("message"))
	sig, _ := Sign(msg, priv)

	other := aurum.Blake2b([]byte("other"))
	signer, err := Signer(other, sig)
	if err == nil {
		assert.NotEqual(t, DeriveAddress(priv), signer)
	}
}

func TestBadSignatureLength(t *testing.T) {
	_, err := Signer(aurum.Bytes32{}, []byte{1, 2, 3})
	assert.Error(t, err)
}
