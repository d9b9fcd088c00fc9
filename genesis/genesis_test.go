// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin"
	"github.com/aurum-network/aurum/builtin/roles"
	"github.com/aurum-network/aurum/events"
	"github.com/aurum-network/aurum/lvldb"
	"github.com/aurum-network/aurum/state"
)

var deployer = aurum.BytesToAddress([]byte("deployer"))

func TestBuild(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	st := state.New(db)

	investor := aurum.BytesToAddress([]byte("investor"))
	contracts, err := Build(&Config{
		Deployer: deployer,
		HardCap:  20_000_000,
		Premine:  []Allocation{{To: investor, Amount: 5_000}},
	}, st, events.Discard)
	require.NoError(t, err)

	cap_, err := contracts.Token.HardCap()
	require.NoError(t, err)
	assert.Equal(t, aurum.ToBaseUnits(20_000_000), cap_)

	for _, role := range []roles.Role{roles.Admin, roles.Minter, roles.Pauser, roles.Blacklister, roles.Burner} {
		has, err := contracts.Token.HasRole(deployer, role)
		require.NoError(t, err)
		assert.True(t, has, role.String())
	}
	poolIsMinter, err := contracts.Token.HasRole(builtin.PoolAddress, roles.Minter)
	require.NoError(t, err)
	assert.True(t, poolIsMinter)

	bal, err := contracts.Token.BalanceOf(investor)
	require.NoError(t, err)
	assert.Equal(t, aurum.ToBaseUnits(5_000), bal)
}

func TestBuildValidation(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	st := state.New(db)

	_, err = Build(&Config{HardCap: 100}, st, events.Discard)
	assert.EqualError(t, err, "deployer address required")

	_, err = Build(&Config{Deployer: deployer}, st, events.Discard)
	assert.EqualError(t, err, "hard cap must be positive")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis.yaml")
	content := `
deployer: "0x00000000000000000000006465706c6f796572ff"
hardCap: 20000000
premine:
  - to: "0x0000000000000000000000696e766573746f72ff"
    amount: 5000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(20_000_000), cfg.HardCap)
	assert.Equal(t, aurum.MustParseAddress("0x00000000000000000000006465706c6f796572ff"), cfg.Deployer)
	require.Len(t, cfg.Premine, 1)
	assert.Equal(t, int64(5_000), cfg.Premine[0].Amount)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
