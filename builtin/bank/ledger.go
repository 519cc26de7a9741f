// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bank

import (
	"math/big"

	"github.com/wizard-labs/wizard/wizard"
)

// AssetLedger moves the staked asset in and out of the bank's custody.
type AssetLedger interface {
	// TransferIn pulls amount from an account into custody.
	TransferIn(from wizard.Address, amount *big.Int) error
	// TransferOut pays amount from custody to an account.
	TransferOut(to wizard.Address, amount *big.Int) error
	BalanceOf(who wizard.Address) (*big.Int, error)
}
