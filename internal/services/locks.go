package services

import "sync"

// proposalLocks hands out one mutex per proposal id. Entries are dropped
// once nobody holds or waits for them.
type proposalLocks struct {
	mu    sync.Mutex
	locks map[uint64]*proposalLock
}

type proposalLock struct {
	mu   sync.Mutex
	refs int
}

func newProposalLocks() *proposalLocks {
	return &proposalLocks{locks: make(map[uint64]*proposalLock)}
}

func (l *proposalLocks) Lock(proposalID uint64) func() {
	l.mu.Lock()
	lock, ok := l.locks[proposalID]
	if !ok {
		lock = &proposalLock{}
		l.locks[proposalID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, proposalID)
		}
		l.mu.Unlock()
	}
}

func (l *proposalLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
