// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bank

import (
	"math/big"
	"sync"

	"github.com/wizard-labs/wizard/wizard"
)

// Event is a record emitted by a successful bank operation.
type Event interface {
	Name() string
	logContext() []any
}

// Deposit is emitted when stake is accepted.
type Deposit struct {
	Depositor wizard.Address
	Amount    *big.Int
}

func (e *Deposit) Name() string { return "Deposit" }

func (e *Deposit) logContext() []any {
	return []any{"depositor", e.Depositor, "amount", e.Amount}
}

// Withdrawal is emitted when a depositor takes out principal and yield.
type Withdrawal struct {
	Depositor wizard.Address
	Principal *big.Int
	Yield     *big.Int
}

func (e *Withdrawal) Name() string { return "Withdrawal" }

func (e *Withdrawal) logContext() []any {
	return []any{"depositor", e.Depositor, "principal", e.Principal, "yield", e.Yield}
}

// Total is principal plus yield.
func (e *Withdrawal) Total() *big.Int {
	return new(big.Int).Add(e.Principal, e.Yield)
}

// Recall is emitted when the administrator reclaims the undistributed reward.
type Recall struct {
	Amount *big.Int
}

func (e *Recall) Name() string { return "Recall" }

func (e *Recall) logContext() []any {
	return []any{"amount", e.Amount}
}

// EventSink receives events while the bank lock is held.
// Implementations must not call back into the bank.
type EventSink interface {
	Emit(Event)
}

// EventRecorder is an EventSink keeping every event in memory.
type EventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *EventRecorder) Emit(ev Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

// Events returns the recorded events in emission order.
func (r *EventRecorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}
