// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package datagen generates random values for tests.
package datagen

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"

	"github.com/wizard-labs/wizard/wizard"
)

func RandomHash() wizard.Bytes32 {
	var b32 wizard.Bytes32
	rand.Read(b32[:])
	return b32
}

func RandAddress() (addr wizard.Address) {
	rand.Read(addr[:])
	return
}

func RandInt() int {
	return mathrand.Int() //#nosec G404
}

func RandIntN(n int) int {
	return mathrand.N(n) //#nosec G404
}

// RandAmount returns an amount in [1, limit].
func RandAmount(limit int64) *big.Int {
	return big.NewInt(mathrand.Int64N(limit) + 1) //#nosec G404
}
