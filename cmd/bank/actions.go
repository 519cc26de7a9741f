// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/wizard-labs/wizard/builtin/bank"
	"github.com/wizard-labs/wizard/builtin/bank/phase"
	"github.com/wizard-labs/wizard/builtin/token"
	"github.com/wizard-labs/wizard/wizard"
)

func deployAction(ctx *cli.Context) error {
	initLogger(ctx)

	cfg, err := loadDeployConfig(ctx.String(configFlag.Name))
	if err != nil {
		return err
	}
	if ctx.IsSet(fromFlag.Name) {
		if cfg.Admin, err = addressFlag(ctx, fromFlag); err != nil {
			return err
		}
	}
	params, supply, err := cfg.params()
	if err != nil {
		return err
	}

	s, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	if has, err := s.db.Has(deploymentKey); err != nil {
		return err
	} else if has {
		return errors.New("already deployed")
	}

	d := newDeployment(params.Admin)
	tok, err := token.Deploy(d.Token, s.state, d.Admin, supply)
	if err != nil {
		return errors.Wrap(err, "deploy token")
	}
	if err := tok.Approve(d.Admin, d.Bank, params.Reward); err != nil {
		return errors.Wrap(err, "approve reward")
	}
	b, err := bank.Deploy(d.Bank, s.state, token.NewCustody(tok, d.Bank), s.clock, params)
	if err != nil {
		return errors.Wrap(err, "deploy bank")
	}
	if err := s.saveDeployment(d); err != nil {
		return err
	}

	w := ctx.App.Writer
	fmt.Fprintf(w, "token %v\n", d.Token)
	fmt.Fprintf(w, "bank  %v\n", d.Bank)
	fmt.Fprintf(w, "reward %s WIZ, deposit window closes %v\n",
		wizard.FormatEther(b.Reward()), b.Gate().Begins(phase.Locked).Format(time.RFC3339))
	return nil
}

func mintAction(ctx *cli.Context) error {
	initLogger(ctx)

	from, err := addressFlag(ctx, fromFlag)
	if err != nil {
		return err
	}
	to, err := addressFlag(ctx, toFlag)
	if err != nil {
		return err
	}
	amount, err := amountFlagValue(ctx)
	if err != nil {
		return err
	}

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	owner, err := s.token.Owner()
	if err != nil {
		return err
	}
	if from != owner {
		return errors.Errorf("only the token owner %v can mint", owner)
	}
	if err := s.token.Mint(to, amount); err != nil {
		return err
	}
	if err := s.commit(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "minted %s WIZ to %v\n", wizard.FormatEther(amount), to)
	return nil
}

func balanceAction(ctx *cli.Context) error {
	initLogger(ctx)

	account, err := addressFlag(ctx, accountFlag)
	if err != nil {
		return err
	}
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	held, err := s.token.BalanceOf(account)
	if err != nil {
		return err
	}
	staked, err := s.bank.BalanceOf(account)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "%v balance %s WIZ, staked %s WIZ\n", account, wizard.FormatEther(held), wizard.FormatEther(staked))
	return nil
}

func depositAction(ctx *cli.Context) error {
	initLogger(ctx)

	from, err := addressFlag(ctx, fromFlag)
	if err != nil {
		return err
	}
	amount, err := amountFlagValue(ctx)
	if err != nil {
		return err
	}
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.token.Approve(from, s.deployment.Bank, amount); err != nil {
		return err
	}
	if err := s.bank.Deposit(from, amount); err != nil {
		return err
	}
	if err := s.commit(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "deposited %s WIZ from %v\n", wizard.FormatEther(amount), from)
	return nil
}

func withdrawAction(ctx *cli.Context) error {
	initLogger(ctx)

	from, err := addressFlag(ctx, fromFlag)
	if err != nil {
		return err
	}
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	w, err := s.bank.Withdraw(from)
	if err != nil {
		return err
	}
	if err := s.commit(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "withdrew %s WIZ principal and %s WIZ yield to %v\n",
		wizard.FormatEther(w.Principal), wizard.FormatEther(w.Yield), from)
	return nil
}

func recallAction(ctx *cli.Context) error {
	initLogger(ctx)

	from, err := addressFlag(ctx, fromFlag)
	if err != nil {
		return err
	}
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	r, err := s.bank.Recall(from)
	if err != nil {
		return err
	}
	if err := s.commit(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "recalled %s WIZ\n", wizard.FormatEther(r.Amount))
	return nil
}

func statusAction(ctx *cli.Context) error {
	initLogger(ctx)

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	st, err := readStatus(s)
	if err != nil {
		return err
	}
	st.print(ctx.App.Writer)
	return nil
}
