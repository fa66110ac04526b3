package governance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestConfig() *DaoConfig {
	return NewDaoConfig(DaoConfigParams{
		Seed:            7,
		IssuePrice:      1_000,
		IssueAmount:     100,
		ProposalFee:     10,
		MaxSupply:       1_000_000,
		MinQuorum:       10,
		MinThreshold:    20,
		MaxExpiry:       1_000,
		MinStake:        5,
		PrevotingPeriod: 10,
	})
}

func TestNewDaoConfig_ZeroesProposalCount(t *testing.T) {
	config := newTestConfig()
	assert.Equal(t, uint64(0), config.ProposalCount)
	assert.Equal(t, uint64(7), config.Seed)
	assert.Equal(t, uint64(10), config.PrevotingPeriod)
}

func TestCheckMinStake(t *testing.T) {
	config := newTestConfig()
	assert.ErrorIs(t, config.CheckMinStake(4), ErrInvalidStakeAmount)
	assert.NoError(t, config.CheckMinStake(5))
	assert.NoError(t, config.CheckMinStake(6))
}

func TestCheckMinQuorum(t *testing.T) {
	config := newTestConfig()
	assert.ErrorIs(t, config.CheckMinQuorum(9), ErrInvalidQuorum)
	assert.NoError(t, config.CheckMinQuorum(10))
}

func TestCheckMinThreshold(t *testing.T) {
	config := newTestConfig()
	assert.ErrorIs(t, config.CheckMinThreshold(19), ErrInvalidThreshold)
	assert.NoError(t, config.CheckMinThreshold(20))
}

func TestCheckMaxExpiry(t *testing.T) {
	config := newTestConfig()
	assert.ErrorIs(t, config.CheckMaxExpiry(1_001), ErrInvalidExpiry)
	assert.NoError(t, config.CheckMaxExpiry(1_000))
}

func TestValidateProposalParams_ReportsFirstViolation(t *testing.T) {
	config := newTestConfig()
	assert.ErrorIs(t, config.ValidateProposalParams(1, 1, 5_000), ErrInvalidQuorum)
	assert.ErrorIs(t, config.ValidateProposalParams(50, 1, 5_000), ErrInvalidThreshold)
	assert.ErrorIs(t, config.ValidateProposalParams(50, 50, 5_000), ErrInvalidExpiry)
	assert.NoError(t, config.ValidateProposalParams(50, 50, 500))
}

func TestAddProposal_AcceptsOnlyNextID(t *testing.T) {
	config := newTestConfig()

	assert.NoError(t, config.AddProposal(1))
	assert.Equal(t, uint64(1), config.ProposalCount)

	assert.ErrorIs(t, config.AddProposal(1), ErrInvalidProposalSeed)
	assert.ErrorIs(t, config.AddProposal(3), ErrInvalidProposalSeed)
	assert.Equal(t, uint64(1), config.ProposalCount)

	assert.NoError(t, config.AddProposal(2))
	assert.Equal(t, uint64(2), config.ProposalCount)
}

func TestAddProposal_Overflow(t *testing.T) {
	config := newTestConfig()
	config.ProposalCount = math.MaxUint64

	assert.ErrorIs(t, config.AddProposal(0), ErrOverflow)
	assert.Equal(t, uint64(math.MaxUint64), config.ProposalCount)

	_, err := config.NextProposalID()
	assert.ErrorIs(t, err, ErrOverflow)
}
