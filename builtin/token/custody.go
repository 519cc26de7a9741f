// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"math/big"

	"github.com/wizard-labs/wizard/wizard"
)

// Custody holds tokens for holder. Deposits are pulled with TransferFrom, so
// the depositor must approve holder beforehand.
type Custody struct {
	token  *Token
	holder wizard.Address
}

func NewCustody(token *Token, holder wizard.Address) *Custody {
	return &Custody{token: token, holder: holder}
}

func (c *Custody) Holder() wizard.Address { return c.holder }

func (c *Custody) TransferIn(from wizard.Address, amount *big.Int) error {
	return c.token.TransferFrom(c.holder, from, c.holder, amount)
}

func (c *Custody) TransferOut(to wizard.Address, amount *big.Int) error {
	return c.token.Transfer(c.holder, to, amount)
}

func (c *Custody) BalanceOf(who wizard.Address) (*big.Int, error) {
	return c.token.BalanceOf(who)
}
