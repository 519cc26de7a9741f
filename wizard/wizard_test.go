// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package wizard

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("0x1C14F806244C1E96e5611548ed7961511fE91076")
	assert.NoError(t, err)
	assert.Equal(t, "0x1c14f806244c1e96e5611548ed7961511fe91076", addr.String())

	addr, err = ParseAddress("1c14f806244c1e96e5611548ed7961511fe91076")
	assert.NoError(t, err)
	assert.False(t, addr.IsZero())

	_, err = ParseAddress("0x1234")
	assert.EqualError(t, err, "invalid length")

	_, err = ParseAddress("1x1c14f806244c1e96e5611548ed7961511fe91076")
	assert.EqualError(t, err, "invalid prefix")

	_, err = ParseAddress("0xzz14f806244c1e96e5611548ed7961511fe91076")
	assert.Error(t, err)

	assert.Panics(t, func() { MustParseAddress("nope") })
}

func TestAddressYAML(t *testing.T) {
	var cfg struct {
		Admin Address `yaml:"admin"`
	}
	err := yaml.Unmarshal([]byte("admin: 0x19db9fadcae1f7b06d266a370babdca669828de4\n"), &cfg)
	assert.NoError(t, err)
	assert.Equal(t, MustParseAddress("0x19db9fadcae1f7b06d266a370babdca669828de4"), cfg.Admin)

	out, err := yaml.Marshal(cfg)
	assert.NoError(t, err)
	assert.Contains(t, string(out), "0x19db9fadcae1f7b06d266a370babdca669828de4")
}

func TestCreateContractAddress(t *testing.T) {
	deployer := BytesToAddress([]byte("deployer"))
	a := CreateContractAddress(deployer, "Bank")
	b := CreateContractAddress(deployer, "Wizard")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, CreateContractAddress(deployer, "Bank"))
}

func TestBytes32(t *testing.T) {
	b := BytesToBytes32([]byte("total-staked"))
	assert.False(t, b.IsZero())
	assert.True(t, Bytes32{}.IsZero())
	assert.Len(t, b.Bytes(), 32)
	assert.NotEqual(t, Keccak256([]byte("a")), Keccak256([]byte("b")))
	assert.Equal(t, Keccak256([]byte("a"), []byte("b")), Keccak256([]byte("ab")))
}

func TestParseEther(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  bool
	}{
		{"10000", "10000000000000000000000", false},
		{"1.5", "1500000000000000000", false},
		{".25", "250000000000000000", false},
		{"0.000000000000000001", "1", false},
		{"0.0000000000000000001", "", true},
		{"", "", true},
		{"1e18", "", true},
		{"-1", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseEther(tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestFormatEther(t *testing.T) {
	assert.Equal(t, "10000", FormatEther(MustParseEther("10000")))
	assert.Equal(t, "2100.5", FormatEther(MustParseEther("2100.5")))
	assert.Equal(t, "0.000000000000000001", FormatEther(big.NewInt(1)))
	assert.Equal(t, "-1", FormatEther(new(big.Int).Neg(Ether)))
	assert.Equal(t, "0", FormatEther(nil))
}
