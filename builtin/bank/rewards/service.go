// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package rewards

import (
	"errors"
	"math/big"

	"github.com/wizard-labs/wizard/builtin/bank/phase"
	"github.com/wizard-labs/wizard/builtin/solidity"
	"github.com/wizard-labs/wizard/log"
	"github.com/wizard-labs/wizard/wizard"
)

var (
	slotTranche1 = wizard.BytesToBytes32([]byte("reward-tranche-1"))
	slotTranche2 = wizard.BytesToBytes32([]byte("reward-tranche-2"))
	slotTranche3 = wizard.BytesToBytes32([]byte("reward-tranche-3"))
	slotPool     = wizard.BytesToBytes32([]byte("reward-pool"))
	slotPaid     = wizard.BytesToBytes32([]byte("reward-paid"))
	slotRecalled = wizard.BytesToBytes32([]byte("reward-recalled"))

	logger = log.WithContext("pkg", "rewards")
)

// Shares of the reward budget per tranche, in basis points. The last tranche takes the remainder.
const (
	Tranche1Bps = 2000
	Tranche2Bps = 3000

	bpsDenominator = 10000
)

// ErrInsufficientPool means a debit exceeds the distributable pool. Yield is always a
// fraction of the pool, so this is an accounting invariant violation.
var ErrInsufficientPool = errors.New("insufficient reward pool")

// Tranches is a snapshot of the locked tranches and the distributable pool.
type Tranches struct {
	R1   *big.Int
	R2   *big.Int
	R3   *big.Int
	Pool *big.Int
}

// Totals is what has left the pool so far.
type Totals struct {
	Paid     *big.Int
	Recalled *big.Int
}

type tranche struct {
	slot     *solidity.Uint256
	unlockAt phase.Phase
}

// Service holds the three reward tranches and the distributable pool. Tranches move into
// the pool lazily, the first time the pool is read at or after their unlock phase.
type Service struct {
	tranches [3]tranche
	pool     *solidity.Uint256
	paid     *solidity.Uint256
	recalled *solidity.Uint256
}

func New(sctx *solidity.Context) *Service {
	return &Service{
		tranches: [3]tranche{
			{solidity.NewUint256(sctx, slotTranche1), phase.Unlock1},
			{solidity.NewUint256(sctx, slotTranche2), phase.Unlock2},
			{solidity.NewUint256(sctx, slotTranche3), phase.Unlock3},
		},
		pool:     solidity.NewUint256(sctx, slotPool),
		paid:     solidity.NewUint256(sctx, slotPaid),
		recalled: solidity.NewUint256(sctx, slotRecalled),
	}
}

// Split divides the reward budget into the three tranches. The parts always sum to reward.
func Split(reward *big.Int) (r1, r2, r3 *big.Int) {
	denominator := big.NewInt(bpsDenominator)
	r1 = new(big.Int).Mul(reward, big.NewInt(Tranche1Bps))
	r1.Quo(r1, denominator)
	r2 = new(big.Int).Mul(reward, big.NewInt(Tranche2Bps))
	r2.Quo(r2, denominator)
	r3 = new(big.Int).Sub(reward, r1)
	r3.Sub(r3, r2)
	return
}

// Init locks the reward budget into the tranches.
func (s *Service) Init(reward *big.Int) error {
	r1, r2, r3 := Split(reward)
	for i, amount := range []*big.Int{r1, r2, r3} {
		if err := s.tranches[i].slot.Set(amount); err != nil {
			return err
		}
	}
	return nil
}

// Release moves every tranche whose unlock phase has been reached into the pool.
// A released tranche stays at zero, so calling it again in the same phase changes nothing.
func (s *Service) Release(current phase.Phase) error {
	for i, t := range s.tranches {
		if current < t.unlockAt {
			break
		}
		amount, err := t.slot.Get()
		if err != nil {
			return err
		}
		if amount.Sign() == 0 {
			continue
		}
		if err := s.pool.Add(amount); err != nil {
			return err
		}
		if err := t.slot.Set(new(big.Int)); err != nil {
			return err
		}
		logger.Debug("tranche released", "tranche", i+1, "amount", amount, "phase", current)
	}
	return nil
}

// Current releases due tranches and returns the distributable pool.
func (s *Service) Current(current phase.Phase) (*big.Int, error) {
	if err := s.Release(current); err != nil {
		return nil, err
	}
	return s.pool.Get()
}

// Debit takes amount out of the distributable pool.
func (s *Service) Debit(amount *big.Int) error {
	pool, err := s.pool.Get()
	if err != nil {
		return err
	}
	if amount.Cmp(pool) > 0 {
		return ErrInsufficientPool
	}
	return s.pool.Set(pool.Sub(pool, amount))
}

// Pay debits yield paid to a depositor.
func (s *Service) Pay(amount *big.Int) error {
	if err := s.Debit(amount); err != nil {
		return err
	}
	return s.paid.Add(amount)
}

// Recall debits the amount reclaimed by the administrator.
func (s *Service) Recall(amount *big.Int) error {
	if err := s.Debit(amount); err != nil {
		return err
	}
	return s.recalled.Add(amount)
}

// Tranches returns the stored tranches and pool without releasing anything.
func (s *Service) Tranches() (*Tranches, error) {
	var values [3]*big.Int
	for i, t := range s.tranches {
		v, err := t.slot.Get()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	pool, err := s.pool.Get()
	if err != nil {
		return nil, err
	}
	return &Tranches{R1: values[0], R2: values[1], R3: values[2], Pool: pool}, nil
}

// Totals returns the yield paid and the amount recalled so far.
func (s *Service) Totals() (*Totals, error) {
	paid, err := s.paid.Get()
	if err != nil {
		return nil, err
	}
	recalled, err := s.recalled.Get()
	if err != nil {
		return nil, err
	}
	return &Totals{Paid: paid, Recalled: recalled}, nil
}
