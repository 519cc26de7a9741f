// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package clock supplies the current instant to the bank.
package clock

import (
	"sync"
	"time"

	"github.com/beevik/ntp"
	"github.com/pkg/errors"

	"github.com/wizard-labs/wizard/log"
)

var logger = log.WithContext("pkg", "clock")

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// System is the local wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// NTP is the local clock corrected by the offset measured against an NTP server.
type NTP struct {
	server string
	query  func(host string) (*ntp.Response, error)

	mu     sync.RWMutex
	offset time.Duration
}

// NewNTP creates a clock that is corrected against server once Sync succeeds.
func NewNTP(server string) *NTP {
	return &NTP{server: server, query: ntp.Query}
}

// Sync queries the server and stores the measured clock offset.
func (c *NTP) Sync() error {
	resp, err := c.query(c.server)
	if err != nil {
		return errors.Wrapf(err, "query ntp server %s", c.server)
	}
	if err := resp.Validate(); err != nil {
		return errors.Wrapf(err, "invalid ntp response from %s", c.server)
	}

	c.mu.Lock()
	c.offset = resp.ClockOffset
	c.mu.Unlock()

	logger.Debug("clock synced", "server", c.server, "offset", resp.ClockOffset)
	return nil
}

// Offset returns the last measured offset.
func (c *NTP) Offset() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offset
}

func (c *NTP) Now() time.Time {
	return time.Now().Add(c.Offset())
}

// Manual is a clock that only moves when told to.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a manual clock starting at now.
func NewManual(now time.Time) *Manual {
	return &Manual{now: now}
}

func (c *Manual) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *Manual) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d.
func (c *Manual) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
