// Package memory is an in-process implementation of the ledger stores and unit of
// work. It gives the same guarantees as the database implementation: locking reads
// hold a per-account lock until the scope ends, and writes become visible only when
// the scope commits.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/shopspring/decimal"
)

// WriteHook is called before every write issued inside a scope. op is
// "update_balance", "save_statement" or "create_account"; n counts writes in the
// current scope starting at 1. A non-nil error fails that write.
type WriteHook func(op string, n int) error

// Store holds committed balances and statement entries.
type Store struct {
	mu       sync.Mutex
	balances map[string]decimal.Decimal
	entries  []account.StatementEntry
	seq      int64
	locks    map[string]chan struct{}
	hook     WriteHook
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		balances: make(map[string]decimal.Decimal),
		locks:    make(map[string]chan struct{}),
	}
}

// SetWriteHook installs h for subsequent scopes. Pass nil to remove it.
func (s *Store) SetWriteHook(h WriteHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hook = h
}

// Seed sets an opening balance directly, bypassing the unit of work.
func (s *Store) Seed(accountNumber string, balance decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[accountNumber] = balance
}

// Balance returns the committed balance.
func (s *Store) Balance(accountNumber string) (decimal.Decimal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.balances[accountNumber]
	return b, ok
}

// Entries returns a copy of the committed entries of one account in insertion order.
func (s *Store) Entries(accountNumber string) []account.StatementEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []account.StatementEntry
	for _, e := range s.entries {
		if e.AccountNumber == accountNumber {
			out = append(out, e)
		}
	}
	return out
}

// lockFor returns the lock of a committed account. Absent accounts have no lock,
// the way a row lock cannot be taken on a missing row.
func (s *Store) lockFor(accountNumber string) (chan struct{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.balances[accountNumber]; !ok {
		return nil, false
	}
	l, ok := s.locks[accountNumber]
	if !ok {
		l = make(chan struct{}, 1)
		s.locks[accountNumber] = l
	}
	return l, true
}

// scope is the state of one open unit of work.
type scope struct {
	held     map[string]chan struct{}
	balances map[string]decimal.Decimal
	created  map[string]bool
	entries  []account.StatementEntry
	writes   int
	hook     WriteHook
}

func newScope(hook WriteHook) *scope {
	return &scope{
		held:     make(map[string]chan struct{}),
		balances: make(map[string]decimal.Decimal),
		created:  make(map[string]bool),
		hook:     hook,
	}
}

func (sc *scope) write(op string) error {
	sc.writes++
	if sc.hook == nil {
		return nil
	}
	return sc.hook(op, sc.writes)
}

// acquire takes the account lock for the rest of the scope. It gives up when ctx is
// done. Accounts created in this scope, or not existing at all, need no lock.
func (s *Store) acquire(ctx context.Context, sc *scope, accountNumber string) error {
	if _, ok := sc.held[accountNumber]; ok {
		return nil
	}
	if sc.created[accountNumber] {
		return nil
	}
	l, ok := s.lockFor(accountNumber)
	if !ok {
		return nil
	}
	select {
	case l <- struct{}{}:
		sc.held[accountNumber] = l
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release(sc *scope) {
	for n, l := range sc.held {
		<-l
		delete(sc.held, n)
	}
}

func (s *Store) commit(sc *scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for n, b := range sc.balances {
		s.balances[n] = b
	}
	for _, e := range sc.entries {
		s.seq++
		e.Sequence = s.seq
		s.entries = append(s.entries, e)
	}
}

func alreadyExists(accountNumber string) error {
	return errors.Join(domain.ErrAlreadyExists, errors.New("account "+accountNumber))
}
