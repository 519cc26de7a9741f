// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package token implements the Wizard fungible token kept in contract storage.
package token

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/wizard-labs/wizard/builtin/bank/reverts"
	"github.com/wizard-labs/wizard/builtin/solidity"
	"github.com/wizard-labs/wizard/log"
	"github.com/wizard-labs/wizard/state"
	"github.com/wizard-labs/wizard/wizard"
)

const (
	Name     = "Wizard"
	Symbol   = "WIZ"
	Decimals = wizard.Decimals
)

// InitialSupply is minted to the deployer.
var InitialSupply = new(big.Int).Mul(big.NewInt(100000), wizard.Ether)

var (
	ErrInsufficientBalance   = reverts.New("transfer amount exceeds balance")
	ErrInsufficientAllowance = reverts.New("insufficient allowance")
	ErrOverflow              = reverts.New("amount overflows uint256")
	ErrNegativeAmount        = reverts.New("amount must not be negative")
	ErrZeroAddress           = reverts.New("zero address")
	ErrNotDeployed           = errors.New("token not deployed")
)

var (
	slotOwner       = wizard.BytesToBytes32([]byte("token-owner"))
	slotTotalSupply = wizard.BytesToBytes32([]byte("token-total-supply"))
	slotBalances    = wizard.BytesToBytes32([]byte("token-balances"))
	slotAllowances  = wizard.BytesToBytes32([]byte("token-allowances"))

	logger = log.WithContext("pkg", "token")
)

// Token is a minimal fungible token. Balances fit in uint256.
type Token struct {
	address     wizard.Address
	owner       *solidity.Address
	totalSupply *solidity.Uint256
	balances    *solidity.Mapping[wizard.Address]
	allowances  *solidity.Mapping[wizard.Bytes32]
}

func newToken(addr wizard.Address, st *state.State) *Token {
	sctx := solidity.NewContext(addr, st)
	return &Token{
		address:     addr,
		owner:       solidity.NewAddress(sctx, slotOwner),
		totalSupply: solidity.NewUint256(sctx, slotTotalSupply),
		balances:    solidity.NewMapping[wizard.Address](sctx, slotBalances),
		allowances:  solidity.NewMapping[wizard.Bytes32](sctx, slotAllowances),
	}
}

// Deploy creates the token under addr and mints supply to owner.
func Deploy(addr wizard.Address, st *state.State, owner wizard.Address, supply *big.Int) (*Token, error) {
	if owner.IsZero() {
		return nil, ErrZeroAddress
	}
	t := newToken(addr, st)
	current, err := t.owner.Get()
	if err != nil {
		return nil, err
	}
	if !current.IsZero() {
		return nil, errors.New("token already deployed")
	}
	t.owner.Set(owner)
	if err := t.Mint(owner, supply); err != nil {
		return nil, err
	}
	logger.Info("token deployed", "address", addr, "owner", owner, "supply", supply)
	return t, nil
}

// Open loads a deployed token.
func Open(addr wizard.Address, st *state.State) (*Token, error) {
	t := newToken(addr, st)
	owner, err := t.owner.Get()
	if err != nil {
		return nil, err
	}
	if owner.IsZero() {
		return nil, ErrNotDeployed
	}
	return t, nil
}

func (t *Token) Address() wizard.Address { return t.address }

func (t *Token) Owner() (wizard.Address, error) { return t.owner.Get() }

func (t *Token) TotalSupply() (*big.Int, error) { return t.totalSupply.Get() }

func (t *Token) BalanceOf(who wizard.Address) (*big.Int, error) { return t.balances.Get(who) }

func (t *Token) Allowance(owner, spender wizard.Address) (*big.Int, error) {
	return t.allowances.Get(allowanceKey(owner, spender))
}

func allowanceKey(owner, spender wizard.Address) wizard.Bytes32 {
	return wizard.Keccak256(owner.Bytes(), spender.Bytes())
}

// add returns a+b, failing when either side or the sum leaves the uint256 range.
func add(a, b *big.Int) (*big.Int, error) {
	x, overflow := uint256.FromBig(a)
	if overflow {
		return nil, ErrOverflow
	}
	y, overflow := uint256.FromBig(b)
	if overflow {
		return nil, ErrOverflow
	}
	if _, overflow := x.AddOverflow(x, y); overflow {
		return nil, ErrOverflow
	}
	return x.ToBig(), nil
}

func checkAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// Mint creates amount new tokens for to.
func (t *Token) Mint(to wizard.Address, amount *big.Int) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if to.IsZero() {
		return ErrZeroAddress
	}
	supply, err := t.totalSupply.Get()
	if err != nil {
		return err
	}
	newSupply, err := add(supply, amount)
	if err != nil {
		return err
	}
	balance, err := t.balances.Get(to)
	if err != nil {
		return err
	}
	if err := t.totalSupply.Set(newSupply); err != nil {
		return err
	}
	// balance <= supply, so the sum cannot overflow either.
	return t.balances.Set(to, balance.Add(balance, amount))
}

// Transfer moves amount from one account to another.
func (t *Token) Transfer(from, to wizard.Address, amount *big.Int) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if to.IsZero() {
		return ErrZeroAddress
	}
	fromBalance, err := t.balances.Get(from)
	if err != nil {
		return err
	}
	if fromBalance.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	if err := t.balances.Set(from, fromBalance.Sub(fromBalance, amount)); err != nil {
		return err
	}
	toBalance, err := t.balances.Get(to)
	if err != nil {
		return err
	}
	newBalance, err := add(toBalance, amount)
	if err != nil {
		return err
	}
	return t.balances.Set(to, newBalance)
}

// Approve sets the amount spender may move out of owner's account.
func (t *Token) Approve(owner, spender wizard.Address, amount *big.Int) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if spender.IsZero() {
		return ErrZeroAddress
	}
	if _, overflow := uint256.FromBig(amount); overflow {
		return ErrOverflow
	}
	return t.allowances.Set(allowanceKey(owner, spender), amount)
}

// TransferFrom moves amount from owner to to on behalf of spender, consuming allowance.
func (t *Token) TransferFrom(spender, owner, to wizard.Address, amount *big.Int) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	key := allowanceKey(owner, spender)
	allowance, err := t.allowances.Get(key)
	if err != nil {
		return err
	}
	if allowance.Cmp(amount) < 0 {
		return ErrInsufficientAllowance
	}
	if err := t.Transfer(owner, to, amount); err != nil {
		return err
	}
	return t.allowances.Set(key, allowance.Sub(allowance, amount))
}
