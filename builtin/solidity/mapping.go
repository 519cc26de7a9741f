// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package solidity

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/wizard-labs/wizard/wizard"
)

type Key interface {
	Bytes() []byte
}

// Mapping is a key to amount storage abstraction, similar to a mapping(address => uint256) in Solidity.
// Absent keys read as zero.
type Mapping[K Key] struct {
	context *Context
	basePos wizard.Bytes32
}

func NewMapping[K Key](context *Context, pos wizard.Bytes32) *Mapping[K] {
	return &Mapping[K]{context: context, basePos: pos}
}

func (m *Mapping[K]) position(key K) wizard.Bytes32 {
	return wizard.Keccak256(key.Bytes(), m.basePos.Bytes())
}

func (m *Mapping[K]) Get(key K) (*big.Int, error) {
	value := new(big.Int)
	err := m.context.state.DecodeStorage(m.context.address, m.position(key), func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, value)
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (m *Mapping[K]) Set(key K, value *big.Int) error {
	if value.Sign() < 0 {
		return ErrUnderflow
	}
	return m.context.state.EncodeStorage(m.context.address, m.position(key), func() ([]byte, error) {
		if value.Sign() == 0 {
			return nil, nil
		}
		return rlp.EncodeToBytes(value)
	})
}
