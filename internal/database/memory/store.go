// Package memory is an in-process ledger store used by tests and STORE_DRIVER=memory.
// Transactions work on a private copy of the state and are serialized; Commit swaps the copy in.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/scrapworld/internal/domain"
	"github.com/osse101/scrapworld/internal/repository"
)

type pairKey struct {
	a, b string
}

type state struct {
	users      map[string]domain.User
	wallets    map[string]string
	items      map[string]domain.Item
	userItems  map[pairKey]int
	boosters   []domain.Booster // insertion order, oldest first
	quests     map[string]domain.Quest
	userQuests map[pairKey]domain.UserQuest
	tokens     map[string]domain.Token
	fusionLogs []domain.FusionLog
	stakings   []domain.Staking
}

func newState() *state {
	return &state{
		users:      make(map[string]domain.User),
		wallets:    make(map[string]string),
		items:      make(map[string]domain.Item),
		userItems:  make(map[pairKey]int),
		quests:     make(map[string]domain.Quest),
		userQuests: make(map[pairKey]domain.UserQuest),
		tokens:     make(map[string]domain.Token),
	}
}

// clone deep-copies everything a transaction may mutate. Items and quests are immutable and shared.
func (s *state) clone() *state {
	c := &state{
		users:      make(map[string]domain.User, len(s.users)),
		wallets:    make(map[string]string, len(s.wallets)),
		items:      s.items,
		userItems:  make(map[pairKey]int, len(s.userItems)),
		boosters:   append([]domain.Booster(nil), s.boosters...),
		quests:     s.quests,
		userQuests: make(map[pairKey]domain.UserQuest, len(s.userQuests)),
		tokens:     make(map[string]domain.Token, len(s.tokens)),
		fusionLogs: append([]domain.FusionLog(nil), s.fusionLogs...),
		stakings:   append([]domain.Staking(nil), s.stakings...),
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.wallets {
		c.wallets[k] = v
	}
	for k, v := range s.userItems {
		c.userItems[k] = v
	}
	for k, v := range s.userQuests {
		c.userQuests[k] = v
	}
	for k, v := range s.tokens {
		v.Attributes = v.Attributes.Clone()
		c.tokens[k] = v
	}
	return c
}

// Store implements every ledger repository in memory
type Store struct {
	mu  sync.RWMutex // guards st
	st  *state
	sem chan struct{} // one writer at a time
	now func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		st:  newState(),
		sem: make(chan struct{}, 1),
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.sem
}

// write runs fn against the committed state outside of a transaction
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.st)
}

func (s *Store) read(fn func(st *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.st)
}

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

// LedgerTx implements repository.LedgerTx over a private copy of the state
type LedgerTx struct {
	store  *Store
	st     *state
	closed bool
}

// BeginTx waits for any running transaction to finish, then snapshots the state
func (s *Store) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	if err := s.acquire(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	snapshot := s.st.clone()
	s.mu.RUnlock()
	return &LedgerTx{store: s, st: snapshot}, nil
}

// Commit publishes the transaction's state
func (t *LedgerTx) Commit(_ context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.closed = true
	t.store.mu.Lock()
	t.store.st = t.st
	t.store.mu.Unlock()
	t.store.release()
	return nil
}

// Rollback discards the transaction's state
func (t *LedgerTx) Rollback(_ context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.closed = true
	t.store.release()
	return nil
}

func (t *LedgerTx) check() error {
	if t.closed {
		return errTxClosed
	}
	return nil
}

var (
	_ repository.User    = (*Store)(nil)
	_ repository.Item    = (*Store)(nil)
	_ repository.Booster = (*Store)(nil)
	_ repository.Quest   = (*Store)(nil)
	_ repository.Token   = (*Store)(nil)
	_ repository.Fusion  = (*Store)(nil)
	_ repository.Staking = (*Store)(nil)
)
