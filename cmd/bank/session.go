// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/wizard-labs/wizard/builtin/bank"
	"github.com/wizard-labs/wizard/builtin/token"
	"github.com/wizard-labs/wizard/clock"
	"github.com/wizard-labs/wizard/kv"
	"github.com/wizard-labs/wizard/lvldb"
	"github.com/wizard-labs/wizard/state"
	"github.com/wizard-labs/wizard/wizard"
)

var deploymentKey = []byte("deployment")

// deployment records where the token and the bank live.
type deployment struct {
	Admin wizard.Address
	Token wizard.Address
	Bank  wizard.Address
}

func newDeployment(admin wizard.Address) *deployment {
	return &deployment{
		Admin: admin,
		Token: wizard.CreateContractAddress(admin, token.Name),
		Bank:  wizard.CreateContractAddress(admin, "Bank"),
	}
}

// session is one CLI operation against the database.
type session struct {
	db    *lvldb.LevelDB
	state *state.State
	clock clock.Clock

	deployment *deployment
	token      *token.Token
	bank       *bank.Bank
}

func openStore(ctx *cli.Context) (*lvldb.LevelDB, error) {
	dir := ctx.String(dataDirFlag.Name)
	if dir == "" {
		return nil, errors.New("unable to infer default data dir, use --data-dir")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "create data dir")
	}
	return lvldb.New(filepath.Join(dir, "bank.db"), lvldb.Options{})
}

func newSession(ctx *cli.Context) (*session, error) {
	clk, err := newClock(ctx)
	if err != nil {
		return nil, err
	}
	db, err := openStore(ctx)
	if err != nil {
		return nil, err
	}
	return &session{db: db, state: state.New(db), clock: clk}, nil
}

// openSession opens the database and loads the deployed token and bank.
func openSession(ctx *cli.Context) (*session, error) {
	s, err := newSession(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.load(); err != nil {
		s.close()
		return nil, err
	}
	return s, nil
}

func (s *session) load() error {
	raw, err := s.db.Get(deploymentKey)
	if err != nil {
		if s.db.IsNotFound(err) {
			return errors.New("nothing deployed yet, run deploy first")
		}
		return err
	}
	var d deployment
	if err := rlp.DecodeBytes(raw, &d); err != nil {
		return errors.Wrap(err, "decode deployment")
	}
	tok, err := token.Open(d.Token, s.state)
	if err != nil {
		return err
	}
	b, err := bank.Open(d.Bank, s.state, token.NewCustody(tok, d.Bank), s.clock)
	if err != nil {
		return err
	}
	s.deployment = &d
	s.token = tok
	s.bank = b
	return nil
}

// saveDeployment writes the deployment record in the same batch as the contract state.
func (s *session) saveDeployment(d *deployment) error {
	raw, err := rlp.EncodeToBytes(d)
	if err != nil {
		return err
	}
	if err := s.state.CommitWith(func(p kv.Putter) error {
		return p.Put(deploymentKey, raw)
	}); err != nil {
		return err
	}
	s.deployment = d
	return nil
}

func (s *session) commit() error {
	return s.state.Commit()
}

func (s *session) close() {
	s.db.Close()
}
