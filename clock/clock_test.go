// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package clock

import (
	"errors"
	"testing"
	"time"

	"github.com/beevik/ntp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem(t *testing.T) {
	before := time.Now()
	now := System{}.Now()
	assert.False(t, now.Before(before))
}

func TestManual(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	c := NewManual(start)
	assert.Equal(t, start, c.Now())

	c.Advance(86400 * time.Second)
	assert.Equal(t, start.Add(24*time.Hour), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}

func TestNTPSync(t *testing.T) {
	c := NewNTP("pool.example")
	c.query = func(host string) (*ntp.Response, error) {
		assert.Equal(t, "pool.example", host)
		now := time.Now()
		return &ntp.Response{
			Time:          now,
			ReferenceTime: now.Add(-time.Minute),
			ClockOffset:   time.Hour,
			Stratum:       2,
			RTT:           10 * time.Millisecond,
			Leap:          ntp.LeapNoWarning,
		}, nil
	}
	assert.Equal(t, time.Duration(0), c.Offset())

	require.NoError(t, c.Sync())
	assert.Equal(t, time.Hour, c.Offset())
	assert.WithinDuration(t, time.Now().Add(time.Hour), c.Now(), time.Minute)
}

func TestNTPSyncFailure(t *testing.T) {
	c := NewNTP("pool.example")
	c.query = func(string) (*ntp.Response, error) {
		return nil, errors.New("timeout")
	}
	err := c.Sync()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
	assert.Equal(t, time.Duration(0), c.Offset())

	c.query = func(string) (*ntp.Response, error) {
		return &ntp.Response{Stratum: 0, Leap: ntp.LeapNotInSync}, nil
	}
	assert.Error(t, c.Sync())
}
