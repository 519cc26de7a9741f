// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bank

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/wizard-labs/wizard/builtin/bank/reverts"
	"github.com/wizard-labs/wizard/builtin/bank/stakes"
	"github.com/wizard-labs/wizard/wizard"
)

// Rejections. All of them satisfy reverts.IsRevertErr and leave the bank untouched.
var (
	ErrDepositWindowClosed       = reverts.New("deposit window closed")
	ErrWithdrawalNotYetAvailable = reverts.New("withdrawal not yet available")
	ErrRecallNotYetAvailable     = reverts.New("recall not yet available")
	ErrTokensStillStaked         = reverts.New("tokens still staked")
	ErrUnauthorizedCaller        = reverts.New("unauthorized caller")
	ErrZeroAmount                = stakes.ErrZeroAmount
	ErrNoStakedBalance           = stakes.ErrNoStakedBalance
)

var (
	ErrNotDeployed     = errors.New("bank not deployed")
	ErrAlreadyDeployed = errors.New("bank already deployed")
)

// Direction of a ledger transfer.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// TransferError reports a failed ledger transfer. The operation that issued it was rolled back.
type TransferError struct {
	Direction Direction
	Account   wizard.Address
	Amount    *big.Int
	Err       error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer %s of %v for %v failed: %v", e.Direction, e.Amount, e.Account, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// IsTransferFailed reports whether err is caused by a failed ledger transfer.
func IsTransferFailed(err error) bool {
	var te *TransferError
	return errors.As(err, &te)
}
