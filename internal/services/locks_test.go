package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProposalLocks_SerializesSameProposal(t *testing.T) {
	locks := newProposalLocks()

	var (
		wg      sync.WaitGroup
		counter int
	)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock(7)
			defer unlock()
			current := counter
			counter = current + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Equal(t, 0, locks.size())
}

func TestProposalLocks_IndependentProposals(t *testing.T) {
	locks := newProposalLocks()

	unlockFirst := locks.Lock(1)
	unlockSecond := locks.Lock(2)
	assert.Equal(t, 2, locks.size())

	unlockFirst()
	assert.Equal(t, 1, locks.size())
	unlockSecond()
	assert.Equal(t, 0, locks.size())
}
