// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bank

import (
	"math/big"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/wizard-labs/wizard/builtin/bank/phase"
	"github.com/wizard-labs/wizard/builtin/bank/rewards"
	"github.com/wizard-labs/wizard/builtin/bank/stakes"
	"github.com/wizard-labs/wizard/builtin/solidity"
	"github.com/wizard-labs/wizard/clock"
	"github.com/wizard-labs/wizard/log"
	"github.com/wizard-labs/wizard/state"
	"github.com/wizard-labs/wizard/wizard"
)

var (
	slotAdmin    = wizard.BytesToBytes32([]byte("bank-admin"))
	slotReward   = wizard.BytesToBytes32([]byte("bank-reward"))
	slotStart    = wizard.BytesToBytes32([]byte("bank-start"))
	slotInterval = wizard.BytesToBytes32([]byte("bank-interval"))

	logger = log.WithContext("pkg", "bank")
)

// Params configures a new bank.
type Params struct {
	Admin    wizard.Address
	Reward   *big.Int
	Interval time.Duration
}

func (p *Params) validate() error {
	if p.Admin.IsZero() {
		return errors.New("admin address is required")
	}
	if p.Reward == nil || p.Reward.Sign() < 0 {
		return errors.New("reward must be non-negative")
	}
	if p.Interval < time.Second || p.Interval%time.Second != 0 {
		return errors.Errorf("interval must be a whole number of seconds, got %v", p.Interval)
	}
	return nil
}

// Option customizes a bank.
type Option func(*Bank)

// WithSink delivers every event to sink.
func WithSink(sink EventSink) Option {
	return func(b *Bank) {
		b.sink = sink
	}
}

// Bank is the staking engine. All operations are serialized by an internal lock and
// are atomic: a failed operation leaves state untouched. Operations must not be
// invoked from an EventSink or AssetLedger callback.
type Bank struct {
	mu sync.Mutex

	address wizard.Address
	state   *state.State
	ledger  AssetLedger
	clock   clock.Clock
	sink    EventSink

	admin  wizard.Address
	reward *big.Int
	gate   phase.Gate

	rewards *rewards.Service
	stakes  *stakes.Service
}

func newBank(addr wizard.Address, st *state.State, ledger AssetLedger, clk clock.Clock, opts []Option) *Bank {
	sctx := solidity.NewContext(addr, st)
	b := &Bank{
		address: addr,
		state:   st,
		ledger:  ledger,
		clock:   clk,
		rewards: rewards.New(sctx),
		stakes:  stakes.New(sctx),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Deploy creates a bank stored under addr. The phase clock starts now, and the reward
// is pulled from the administrator into custody. If the pull fails nothing is recorded.
func Deploy(addr wizard.Address, st *state.State, ledger AssetLedger, clk clock.Clock, params Params, opts ...Option) (*Bank, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	sctx := solidity.NewContext(addr, st)
	admin, err := solidity.NewAddress(sctx, slotAdmin).Get()
	if err != nil {
		return nil, err
	}
	if !admin.IsZero() {
		return nil, ErrAlreadyDeployed
	}

	b := newBank(addr, st, ledger, clk, opts)
	start := clk.Now().Truncate(time.Second)
	gate, err := phase.NewGate(start, params.Interval)
	if err != nil {
		return nil, err
	}
	b.admin = params.Admin
	b.reward = new(big.Int).Set(params.Reward)
	b.gate = gate

	checkpoint := st.NewCheckpoint()
	if err := b.store(); err != nil {
		st.RevertTo(checkpoint)
		return nil, err
	}
	if err := b.rewards.Init(b.reward); err != nil {
		st.RevertTo(checkpoint)
		return nil, err
	}
	if b.reward.Sign() > 0 {
		if err := ledger.TransferIn(b.admin, b.reward); err != nil {
			st.RevertTo(checkpoint)
			return nil, &TransferError{Direction: DirectionIn, Account: b.admin, Amount: b.reward, Err: err}
		}
	}

	logger.Info("bank deployed", "address", addr, "admin", b.admin, "reward", b.reward, "start", start, "interval", params.Interval)
	return b, nil
}

// Open loads a bank previously deployed under addr.
func Open(addr wizard.Address, st *state.State, ledger AssetLedger, clk clock.Clock, opts ...Option) (*Bank, error) {
	b := newBank(addr, st, ledger, clk, opts)
	if err := b.load(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bank) store() error {
	sctx := solidity.NewContext(b.address, b.state)
	solidity.NewAddress(sctx, slotAdmin).Set(b.admin)
	if err := solidity.NewUint256(sctx, slotReward).Set(b.reward); err != nil {
		return err
	}
	if err := solidity.NewUint256(sctx, slotStart).Set(big.NewInt(b.gate.Start().Unix())); err != nil {
		return err
	}
	return solidity.NewUint256(sctx, slotInterval).Set(big.NewInt(int64(b.gate.Interval() / time.Second)))
}

func (b *Bank) load() error {
	sctx := solidity.NewContext(b.address, b.state)
	admin, err := solidity.NewAddress(sctx, slotAdmin).Get()
	if err != nil {
		return err
	}
	if admin.IsZero() {
		return ErrNotDeployed
	}
	reward, err := solidity.NewUint256(sctx, slotReward).Get()
	if err != nil {
		return err
	}
	start, err := solidity.NewUint256(sctx, slotStart).Get()
	if err != nil {
		return err
	}
	interval, err := solidity.NewUint256(sctx, slotInterval).Get()
	if err != nil {
		return err
	}
	if !start.IsInt64() || !interval.IsInt64() {
		return errors.New("corrupted phase parameters")
	}
	gate, err := phase.NewGate(time.Unix(start.Int64(), 0), time.Duration(interval.Int64())*time.Second)
	if err != nil {
		return errors.Wrap(err, "corrupted phase parameters")
	}
	b.admin = admin
	b.reward = reward
	b.gate = gate
	return nil
}

// execute runs fn under the lock with a single clock sample. Any error rolls state
// back to the checkpoint taken before fn ran.
func (b *Bank) execute(op string, fn func(now time.Time, current phase.Phase) error) (err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	started := time.Now()
	now := b.clock.Now()
	current := b.gate.At(now)
	metricPhase().Set(int64(current))

	checkpoint := b.state.NewCheckpoint()
	err = fn(now, current)
	if err != nil {
		b.state.RevertTo(checkpoint)
		if errors.Is(err, rewards.ErrInsufficientPool) {
			logger.Error("reward accounting violated", "op", op, "err", err)
			panic("bank: " + op + ": " + err.Error())
		}
		logger.Debug("operation rejected", "op", op, "phase", current, "err", err)
	}
	observe(op, started, err)
	return err
}

func (b *Bank) emit(ev Event) {
	logger.Info(ev.Name(), ev.logContext()...)
	if b.sink != nil {
		b.sink.Emit(ev)
	}
}

// Deposit stakes amount from depositor. Only allowed during the deposit window.
func (b *Bank) Deposit(depositor wizard.Address, amount *big.Int) error {
	return b.execute("deposit", func(_ time.Time, current phase.Phase) error {
		if current != phase.Deposit {
			return ErrDepositWindowClosed
		}
		if amount == nil || amount.Sign() <= 0 {
			return ErrZeroAmount
		}
		amount = new(big.Int).Set(amount)
		if err := b.ledger.TransferIn(depositor, amount); err != nil {
			return &TransferError{Direction: DirectionIn, Account: depositor, Amount: amount, Err: err}
		}
		if err := b.stakes.Deposit(depositor, amount); err != nil {
			return err
		}
		b.emit(&Deposit{Depositor: depositor, Amount: amount})
		return nil
	})
}

// Withdraw returns the depositor's whole principal plus a pro-rata share of the
// reward released so far.
func (b *Bank) Withdraw(depositor wizard.Address) (*Withdrawal, error) {
	var w *Withdrawal
	err := b.execute("withdraw", func(_ time.Time, current phase.Phase) error {
		if current < phase.Unlock1 {
			return ErrWithdrawalNotYetAvailable
		}
		balance, err := b.stakes.Balance(depositor)
		if err != nil {
			return err
		}
		if balance.Sign() == 0 {
			return ErrNoStakedBalance
		}

		pool, err := b.rewards.Current(current)
		if err != nil {
			return err
		}
		yield, err := b.stakes.Share(depositor, pool)
		if err != nil {
			return err
		}
		principal, err := b.stakes.Withdraw(depositor)
		if err != nil {
			return err
		}
		if err := b.rewards.Pay(yield); err != nil {
			return err
		}

		w = &Withdrawal{Depositor: depositor, Principal: principal, Yield: yield}
		if err := b.ledger.TransferOut(depositor, w.Total()); err != nil {
			return &TransferError{Direction: DirectionOut, Account: depositor, Amount: w.Total(), Err: err}
		}
		b.emit(w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Recall hands the undistributed reward back to the administrator once every
// tranche is released and no stake remains.
func (b *Bank) Recall(caller wizard.Address) (*Recall, error) {
	var r *Recall
	err := b.execute("recall", func(_ time.Time, current phase.Phase) error {
		if caller != b.admin {
			return ErrUnauthorizedCaller
		}
		total, err := b.stakes.TotalStaked()
		if err != nil {
			return err
		}
		if total.Sign() > 0 {
			return ErrTokensStillStaked
		}
		if current != phase.Unlock3 {
			return ErrRecallNotYetAvailable
		}

		amount, err := b.rewards.Current(current)
		if err != nil {
			return err
		}
		if err := b.rewards.Recall(amount); err != nil {
			return err
		}
		r = &Recall{Amount: amount}
		if amount.Sign() > 0 {
			if err := b.ledger.TransferOut(b.admin, amount); err != nil {
				return &TransferError{Direction: DirectionOut, Account: b.admin, Amount: amount, Err: err}
			}
		}
		b.emit(r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// CurrentReward releases every tranche due by now and returns the distributable pool.
// Unlike the other accessors it may write state.
func (b *Bank) CurrentReward() (*big.Int, error) {
	var pool *big.Int
	err := b.execute("current-reward", func(_ time.Time, current phase.Phase) (err error) {
		pool, err = b.rewards.Current(current)
		return
	})
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// Phase returns the phase at the current clock reading.
func (b *Bank) Phase() phase.Phase {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gate.At(b.clock.Now())
}

// Tranches returns the locked tranches and the distributable pool without releasing anything.
func (b *Bank) Tranches() (*rewards.Tranches, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rewards.Tranches()
}

// Distributable returns the pool as last recorded, without releasing due tranches.
func (b *Bank) Distributable() (*big.Int, error) {
	tranches, err := b.Tranches()
	if err != nil {
		return nil, err
	}
	return tranches.Pool, nil
}

// Totals returns the yield paid and the reward recalled so far.
func (b *Bank) Totals() (*rewards.Totals, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rewards.Totals()
}

func (b *Bank) TotalStaked() (*big.Int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stakes.TotalStaked()
}

func (b *Bank) BalanceOf(depositor wizard.Address) (*big.Int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stakes.Balance(depositor)
}

func (b *Bank) Address() wizard.Address { return b.address }

func (b *Bank) Admin() wizard.Address { return b.admin }

// Reward returns the budget the bank was deployed with.
func (b *Bank) Reward() *big.Int { return new(big.Int).Set(b.reward) }

func (b *Bank) Gate() phase.Gate { return b.gate }
