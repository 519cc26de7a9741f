// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"fmt"

	"github.com/wizard-labs/wizard/kv"
	"github.com/wizard-labs/wizard/stackedmap"
	"github.com/wizard-labs/wizard/wizard"
)

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

type storageKey struct {
	contract wizard.Address
	key      wizard.Bytes32
}

func (k storageKey) dbKey() []byte {
	b := make([]byte, 0, wizard.AddressLength+32)
	b = append(b, k.contract[:]...)
	return append(b, k.key[:]...)
}

// State manages contract storage. Values are raw rlp, an empty value means unset.
// Changes live in memory until Commit. State is not safe for concurrent use.
type State struct {
	db kv.Store
	sm *stackedmap.StackedMap[storageKey, []byte]
}

// New create state object backed by db.
func New(db kv.Store) *State {
	s := &State{db: db}
	s.reset()
	return s
}

func (s *State) reset() {
	s.sm = stackedmap.New(func(key storageKey) ([]byte, bool, error) {
		val, err := s.db.Get(key.dbKey())
		if err != nil {
			if s.db.IsNotFound(err) {
				return nil, false, nil
			}
			return nil, false, err
		}
		return val, true, nil
	})
}

// GetRawStorage returns storage value in rlp raw for given contract and key.
func (s *State) GetRawStorage(contract wizard.Address, key wizard.Bytes32) ([]byte, error) {
	data, _, err := s.sm.Get(storageKey{contract, key})
	if err != nil {
		return nil, &Error{err}
	}
	return data, nil
}

// SetRawStorage set storage value in rlp raw.
func (s *State) SetRawStorage(contract wizard.Address, key wizard.Bytes32, raw []byte) {
	s.sm.Put(storageKey{contract, key}, raw)
}

// EncodeStorage set storage value encoded by given enc method.
func (s *State) EncodeStorage(contract wizard.Address, key wizard.Bytes32, enc func() ([]byte, error)) error {
	data, err := enc()
	if err != nil {
		return &Error{err}
	}
	s.SetRawStorage(contract, key, data)
	return nil
}

// DecodeStorage get and decode storage value.
// Error returned by dec will be passed through.
func (s *State) DecodeStorage(contract wizard.Address, key wizard.Bytes32, dec func([]byte) error) error {
	data, err := s.GetRawStorage(contract, key)
	if err != nil {
		return err
	}
	return dec(data)
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo revert to checkpoint specified by revision.
func (s *State) RevertTo(revision int) {
	// the base level always stays
	if revision < 1 {
		revision = 1
	}
	s.sm.PopTo(revision)
}

// Commit writes all changes into the underlying store in one batch and drops checkpoints.
func (s *State) Commit() error {
	return s.CommitWith(nil)
}

// CommitWith is like Commit, and also writes whatever extra puts, in the same batch.
func (s *State) CommitWith(extra func(kv.Putter) error) error {
	journal := s.sm.Journal()
	if len(journal) == 0 && extra == nil {
		return nil
	}

	latest := make(map[storageKey][]byte, len(journal))
	order := make([]storageKey, 0, len(journal))
	for _, entry := range journal {
		if _, seen := latest[entry.Key]; !seen {
			order = append(order, entry.Key)
		}
		latest[entry.Key] = entry.Value
	}

	batch := s.db.NewBatch()
	for _, key := range order {
		var err error
		if val := latest[key]; len(val) == 0 {
			err = batch.Delete(key.dbKey())
		} else {
			err = batch.Put(key.dbKey(), val)
		}
		if err != nil {
			return &Error{err}
		}
	}
	if extra != nil {
		if err := extra(batch); err != nil {
			return &Error{err}
		}
	}
	if err := batch.Write(); err != nil {
		return &Error{err}
	}
	s.reset()
	return nil
}
