// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/wizard-labs/wizard/builtin/bank/phase"
	"github.com/wizard-labs/wizard/builtin/bank/rewards"
	"github.com/wizard-labs/wizard/wizard"
)

// status is a read only snapshot of the bank. Tranches due but not yet touched by
// an operation still show as locked.
type status struct {
	bank     wizard.Address
	admin    wizard.Address
	phase    phase.Phase
	next     time.Time
	reward   *big.Int
	staked   *big.Int
	custody  *big.Int
	tranches *rewards.Tranches
	totals   *rewards.Totals
}

func readStatus(s *session) (*status, error) {
	st := &status{
		bank:   s.deployment.Bank,
		admin:  s.bank.Admin(),
		phase:  s.bank.Phase(),
		reward: s.bank.Reward(),
	}
	if st.phase < phase.Unlock3 {
		st.next = s.bank.Gate().Begins(st.phase + 1)
	}

	var err error
	if st.staked, err = s.bank.TotalStaked(); err != nil {
		return nil, err
	}
	if st.custody, err = s.token.BalanceOf(s.deployment.Bank); err != nil {
		return nil, err
	}
	if st.tranches, err = s.bank.Tranches(); err != nil {
		return nil, err
	}
	if st.totals, err = s.bank.Totals(); err != nil {
		return nil, err
	}
	return st, nil
}

func (st *status) print(w io.Writer) {
	fmt.Fprintf(w, "bank        %v\n", st.bank)
	fmt.Fprintf(w, "admin       %v\n", st.admin)
	if st.next.IsZero() {
		fmt.Fprintf(w, "phase       %v\n", st.phase)
	} else {
		fmt.Fprintf(w, "phase       %v (until %s)\n", st.phase, st.next.Format(time.RFC3339))
	}
	fmt.Fprintf(w, "reward      %s WIZ\n", wizard.FormatEther(st.reward))
	fmt.Fprintf(w, "tranches    %s / %s / %s WIZ\n",
		wizard.FormatEther(st.tranches.R1), wizard.FormatEther(st.tranches.R2), wizard.FormatEther(st.tranches.R3))
	fmt.Fprintf(w, "pool        %s WIZ\n", wizard.FormatEther(st.tranches.Pool))
	fmt.Fprintf(w, "staked      %s WIZ\n", wizard.FormatEther(st.staked))
	fmt.Fprintf(w, "paid        %s WIZ\n", wizard.FormatEther(st.totals.Paid))
	fmt.Fprintf(w, "recalled    %s WIZ\n", wizard.FormatEther(st.totals.Recalled))
	fmt.Fprintf(w, "custody     %s WIZ\n", wizard.FormatEther(st.custody))
}
