// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solidity

import (
	"github.com/wizard-labs/wizard/state"
	"github.com/wizard-labs/wizard/wizard"
)

// Context binds storage handles to one contract address within a state.
type Context struct {
	address wizard.Address
	state   *state.State
}

func NewContext(address wizard.Address, state *state.State) *Context {
	return &Context{
		address: address,
		state:   state,
	}
}

func (c *Context) Address() wizard.Address {
	return c.address
}

func (c *Context) State() *state.State {
	return c.state
}
