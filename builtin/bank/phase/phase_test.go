// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package phase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 86400 * time.Second

func TestGateAt(t *testing.T) {
	t0 := time.Unix(1_700_000_000, 0)
	gate, err := NewGate(t0, day)
	require.NoError(t, err)

	tests := []struct {
		name string
		now  time.Time
		want Phase
	}{
		{"before start", t0.Add(-time.Second), Deposit},
		{"start", t0, Deposit},
		{"deposit window end", t0.Add(day - time.Nanosecond), Deposit},
		{"locked", t0.Add(day), Locked},
		{"unlock1", t0.Add(2 * day), Unlock1},
		{"unlock1 + 1s", t0.Add(2*day + time.Second), Unlock1},
		{"unlock2", t0.Add(3 * day), Unlock2},
		{"unlock3", t0.Add(4 * day), Unlock3},
		{"far future", t0.Add(365 * day), Unlock3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.At(tt.now))
		})
	}
}

func TestGateBegins(t *testing.T) {
	t0 := time.Unix(1_700_000_000, 0)
	gate, err := NewGate(t0, 100*time.Second)
	require.NoError(t, err)

	assert.Equal(t, t0, gate.Begins(Deposit))
	assert.Equal(t, t0.Add(200*time.Second), gate.Begins(Unlock1))
	assert.Equal(t, t0.Add(400*time.Second), gate.Begins(Unlock3))
	assert.Equal(t, t0.Add(400*time.Second), gate.Begins(Phase(9)))

	for p := Deposit; p <= Unlock3; p++ {
		assert.Equal(t, p, gate.At(gate.Begins(p)))
	}
	assert.Equal(t, t0, gate.Start())
	assert.Equal(t, 100*time.Second, gate.Interval())
}

func TestNewGateInvalid(t *testing.T) {
	_, err := NewGate(time.Now(), 0)
	assert.Error(t, err)
	_, err = NewGate(time.Now(), -time.Second)
	assert.Error(t, err)
}

func TestPhaseOrderAndString(t *testing.T) {
	assert.True(t, Deposit < Locked)
	assert.True(t, Locked < Unlock1)
	assert.True(t, Unlock2 < Unlock3)

	assert.Equal(t, "deposit", Deposit.String())
	assert.Equal(t, "locked", Locked.String())
	assert.Equal(t, "unlock1", Unlock1.String())
	assert.Equal(t, "unlock2", Unlock2.String())
	assert.Equal(t, "unlock3", Unlock3.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
