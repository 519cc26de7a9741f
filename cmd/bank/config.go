// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"math/big"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/wizard-labs/wizard/builtin/bank"
	"github.com/wizard-labs/wizard/wizard"
)

// deployConfig is the deployment file. Amounts are in WIZ.
type deployConfig struct {
	Admin         wizard.Address `yaml:"admin"`
	Reward        string         `yaml:"reward"`
	Interval      time.Duration  `yaml:"interval"`
	InitialSupply string         `yaml:"initialSupply"`
}

func defaultDeployConfig() *deployConfig {
	return &deployConfig{
		Reward:        "10000",
		Interval:      24 * time.Hour,
		InitialSupply: "100000",
	}
}

func loadDeployConfig(path string) (*deployConfig, error) {
	cfg := defaultDeployConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read deployment file")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse deployment file %s", path)
	}
	return cfg, nil
}

func (c *deployConfig) params() (bank.Params, *big.Int, error) {
	reward, err := wizard.ParseEther(c.Reward)
	if err != nil {
		return bank.Params{}, nil, errors.Wrap(err, "reward")
	}
	supply, err := wizard.ParseEther(c.InitialSupply)
	if err != nil {
		return bank.Params{}, nil, errors.Wrap(err, "initialSupply")
	}
	if supply.Cmp(reward) < 0 {
		return bank.Params{}, nil, errors.New("initialSupply cannot fund the reward")
	}
	return bank.Params{Admin: c.Admin, Reward: reward, Interval: c.Interval}, supply, nil
}
