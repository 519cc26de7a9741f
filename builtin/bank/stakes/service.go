// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package stakes

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/wizard-labs/wizard/builtin/bank/reverts"
	"github.com/wizard-labs/wizard/builtin/solidity"
	"github.com/wizard-labs/wizard/wizard"
)

var (
	slotBalances    = wizard.BytesToBytes32([]byte("stake-balances"))
	slotTotalStaked = wizard.BytesToBytes32([]byte("total-staked"))
)

var (
	ErrZeroAmount      = reverts.New("amount must be greater than zero")
	ErrNoStakedBalance = reverts.New("no staked balance")
)

// Service keeps per depositor stake and the aggregate total.
// The total always equals the sum of all balances.
type Service struct {
	balances    *solidity.Mapping[wizard.Address]
	totalStaked *solidity.Uint256
}

func New(sctx *solidity.Context) *Service {
	return &Service{
		balances:    solidity.NewMapping[wizard.Address](sctx, slotBalances),
		totalStaked: solidity.NewUint256(sctx, slotTotalStaked),
	}
}

// Balance returns the stake of depositor.
func (s *Service) Balance(depositor wizard.Address) (*big.Int, error) {
	balance, err := s.balances.Get(depositor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get stake balance")
	}
	return balance, nil
}

// TotalStaked returns the sum of all balances.
func (s *Service) TotalStaked() (*big.Int, error) {
	total, err := s.totalStaked.Get()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get total stake")
	}
	return total, nil
}

// Deposit adds amount to the stake of depositor.
func (s *Service) Deposit(depositor wizard.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrZeroAmount
	}
	balance, err := s.Balance(depositor)
	if err != nil {
		return err
	}
	if err := s.balances.Set(depositor, balance.Add(balance, amount)); err != nil {
		return errors.Wrap(err, "failed to set stake balance")
	}
	if err := s.totalStaked.Add(amount); err != nil {
		return errors.Wrap(err, "failed to add total stake")
	}
	return nil
}

// Withdraw clears the stake of depositor and returns it as principal.
func (s *Service) Withdraw(depositor wizard.Address) (*big.Int, error) {
	principal, err := s.Balance(depositor)
	if err != nil {
		return nil, err
	}
	if principal.Sign() == 0 {
		return nil, ErrNoStakedBalance
	}
	if err := s.balances.Set(depositor, new(big.Int)); err != nil {
		return nil, errors.Wrap(err, "failed to clear stake balance")
	}
	if err := s.totalStaked.Sub(principal); err != nil {
		return nil, errors.Wrap(err, "failed to sub total stake")
	}
	return principal, nil
}

// Share returns floor(pool * balance / totalStaked) for depositor, using the current totals.
// It must be read before Withdraw changes them.
func (s *Service) Share(depositor wizard.Address, pool *big.Int) (*big.Int, error) {
	balance, err := s.Balance(depositor)
	if err != nil {
		return nil, err
	}
	total, err := s.TotalStaked()
	if err != nil {
		return nil, err
	}
	if total.Sign() == 0 {
		return nil, errors.New("share of empty stake")
	}
	share := new(big.Int).Mul(pool, balance)
	return share.Quo(share, total), nil
}
