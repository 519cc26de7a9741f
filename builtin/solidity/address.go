// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solidity

import (
	"github.com/wizard-labs/wizard/wizard"
)

// Address is a wrapper for storage and retrieval of an address. Similar to storing an address in a smart contract.
type Address struct {
	context *Context
	pos     wizard.Bytes32
}

func NewAddress(context *Context, pos wizard.Bytes32) *Address {
	return &Address{context: context, pos: pos}
}

func (a *Address) Get() (wizard.Address, error) {
	raw, err := a.context.state.GetRawStorage(a.context.address, a.pos)
	if err != nil {
		return wizard.Address{}, err
	}
	return wizard.BytesToAddress(raw), nil
}

func (a *Address) Set(addr wizard.Address) {
	if addr.IsZero() {
		a.context.state.SetRawStorage(a.context.address, a.pos, nil)
		return
	}
	a.context.state.SetRawStorage(a.context.address, a.pos, addr.Bytes())
}
