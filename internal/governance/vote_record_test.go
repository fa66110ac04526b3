package governance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastVote_FirstVoteCreatesRecord(t *testing.T) {
	proposal := newTestProposal(t, 50, 1_000)

	record, err := CastVote(newTestConfig(), proposal, nil, "alice", 20, VoteChoiceFor, testOpenTime)
	require.NoError(t, err)
	assert.Equal(t, &VoteRecord{Voter: "alice", ProposalID: 1, Amount: 20, Choice: VoteChoiceFor}, record)
	assert.Equal(t, ProposalStatusOpen, proposal.Status)
	assert.Equal(t, uint64(20), proposal.ForVotes())
}

func TestCastVote_BelowMinStake(t *testing.T) {
	proposal := newTestProposal(t, 50, 1_000)
	before := *proposal

	_, err := CastVote(newTestConfig(), proposal, nil, "alice", 4, VoteChoiceFor, testOpenTime)
	assert.ErrorIs(t, err, ErrInvalidStakeAmount)
	assert.Equal(t, before, *proposal)
}

func TestCastVote_RevoteReplacesContribution(t *testing.T) {
	config := newTestConfig()
	proposal := newTestProposal(t, 50, 1_000)

	first, err := CastVote(config, proposal, nil, "alice", 20, VoteChoiceFor, testOpenTime)
	require.NoError(t, err)

	second, err := CastVote(config, proposal, first, "alice", 8, VoteChoiceFor, testOpenTime)
	require.NoError(t, err)

	assert.Equal(t, uint64(20), first.Amount)
	assert.Equal(t, uint64(8), second.Amount)
	assert.Equal(t, uint64(8), proposal.TotalVotes)
	assert.Equal(t, [3]uint64{8, 0, 0}, proposal.VoteCounts)
}

func TestCastVote_RevoteOnTerminalProposal(t *testing.T) {
	config := newTestConfig()
	proposal := newTestProposal(t, 50, 20)

	first, err := CastVote(config, proposal, nil, "alice", 20, VoteChoiceFor, testOpenTime)
	require.NoError(t, err)
	require.Equal(t, ProposalStatusSucceeded, proposal.Status)

	_, err = CastVote(config, proposal, first, "alice", 20, VoteChoiceAgainst, testOpenTime)
	assert.ErrorIs(t, err, ErrInvalidProposalStatus)
	assert.Equal(t, [3]uint64{20, 0, 0}, proposal.VoteCounts)
}

func TestRetractVote_RestoresTally(t *testing.T) {
	config := newTestConfig()
	proposal := newTestProposal(t, 50, 1_000)

	_, err := CastVote(config, proposal, nil, "bob", 6, VoteChoiceFor, testOpenTime)
	require.NoError(t, err)
	before := *proposal

	record, err := CastVote(config, proposal, nil, "alice", 5, VoteChoiceFor, testOpenTime)
	require.NoError(t, err)
	require.NoError(t, RetractVote(proposal, record))

	assert.Equal(t, before.TotalVotes, proposal.TotalVotes)
	assert.Equal(t, before.VoteCounts, proposal.VoteCounts)
}

func TestRetractVote_MismatchedRecord(t *testing.T) {
	proposal := newOpenProposal(t, 50, 1_000)

	err := RetractVote(proposal, NewVoteRecord("mallory", 1, 50, VoteChoiceAgainst))
	assert.ErrorIs(t, err, ErrUnderflow)
	assert.Equal(t, uint64(0), proposal.TotalVotes)
}
