// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package genesis builds the initial contract state: the hard cap, the
// deployer's roles, the pool's minter role and any premined balances.
package genesis

import (
	"math/big"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/aurum-network/aurum/aurum"
	"github.com/aurum-network/aurum/builtin"
	"github.com/aurum-network/aurum/builtin/roles"
	"github.com/aurum-network/aurum/events"
	"github.com/aurum-network/aurum/log"
	"github.com/aurum-network/aurum/state"
)

var logger = log.WithContext("pkg", "genesis")

// Allocation premines a balance at genesis.
type Allocation struct {
	To aurum.Address `yaml:"to"`
	// Amount in whole tokens.
	Amount int64 `yaml:"amount"`
}

// Config describes the genesis state.
type Config struct {
	Deployer aurum.Address `yaml:"deployer"`
	// HardCap in whole tokens, immutable after genesis.
	HardCap int64 `yaml:"hardCap"`

	Premine []Allocation `yaml:"premine,omitempty"`
}

// LoadConfig reads a genesis config from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read genesis config")
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse genesis config")
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Deployer.IsZero() {
		return errors.New("deployer address required")
	}
	if c.HardCap <= 0 {
		return errors.New("hard cap must be positive")
	}
	return nil
}

// Build binds the built-in contracts to the state and applies the
// genesis config: the deployer receives all roles, the pool receives
// the minter role and premined balances are minted to their owners.
func Build(cfg *Config, st *state.State, emitter events.Emitter) (*builtin.Contracts, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	contracts := builtin.Bind(st, emitter)
	hardCap := new(big.Int).Mul(big.NewInt(cfg.HardCap), aurum.E18)
	if err := contracts.Token.Initialize(cfg.Deployer, hardCap); err != nil {
		return nil, errors.Wrap(err, "initialize token")
	}
	if err := contracts.Token.GrantRole(cfg.Deployer, builtin.PoolAddress, roles.Minter); err != nil {
		return nil, errors.Wrap(err, "grant pool minter role")
	}
	for _, alloc := range cfg.Premine {
		if err := contracts.Token.Mint(cfg.Deployer, alloc.To, aurum.ToBaseUnits(alloc.Amount)); err != nil {
			return nil, errors.Wrapf(err, "premine %v", alloc.To)
		}
	}
	logger.Info("genesis built", "deployer", cfg.Deployer, "hardCap", hardCap, "premines", len(cfg.Premine))
	return contracts, nil
}
