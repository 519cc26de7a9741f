// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package phase derives the lifecycle stage of a bank from elapsed time.
package phase

import (
	"errors"
	"time"
)

// Phase is the time derived stage of the bank lifecycle. Phases are ordered.
type Phase uint8

const (
	Deposit Phase = iota // [t0, t0+T)
	Locked               // [t0+T, t0+2T)
	Unlock1              // [t0+2T, t0+3T)
	Unlock2              // [t0+3T, t0+4T)
	Unlock3              // [t0+4T, ∞)
)

func (p Phase) String() string {
	switch p {
	case Deposit:
		return "deposit"
	case Locked:
		return "locked"
	case Unlock1:
		return "unlock1"
	case Unlock2:
		return "unlock2"
	case Unlock3:
		return "unlock3"
	default:
		return "unknown"
	}
}

// Gate maps instants to phases for a bank deployed at start with the given interval.
type Gate struct {
	start    time.Time
	interval time.Duration
}

// NewGate creates a gate. The interval must be positive.
func NewGate(start time.Time, interval time.Duration) (Gate, error) {
	if interval <= 0 {
		return Gate{}, errors.New("interval must be positive")
	}
	return Gate{start: start, interval: interval}, nil
}

func (g Gate) Start() time.Time {
	return g.start
}

func (g Gate) Interval() time.Duration {
	return g.interval
}

// At returns the phase at now. Instants before start are in the deposit window.
func (g Gate) At(now time.Time) Phase {
	elapsed := now.Sub(g.start)
	if elapsed < 0 {
		return Deposit
	}
	k := elapsed / g.interval
	if k >= time.Duration(Unlock3) {
		return Unlock3
	}
	return Phase(k)
}

// Begins returns the instant phase p starts.
func (g Gate) Begins(p Phase) time.Time {
	if p > Unlock3 {
		p = Unlock3
	}
	return g.start.Add(time.Duration(p) * g.interval)
}
