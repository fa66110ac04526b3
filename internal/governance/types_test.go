package governance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVoteChoice(t *testing.T) {
	choice, err := ParseVoteChoice("for")
	assert.NoError(t, err)
	assert.Equal(t, VoteChoiceFor, choice)

	choice, err = ParseVoteChoice(" Against ")
	assert.NoError(t, err)
	assert.Equal(t, VoteChoiceAgainst, choice)

	choice, err = ParseVoteChoice("ABSTAIN")
	assert.NoError(t, err)
	assert.Equal(t, VoteChoiceAbstain, choice)

	_, err = ParseVoteChoice("maybe")
	assert.ErrorIs(t, err, ErrInvalidVoteChoice)
}

func TestVoteChoice_String(t *testing.T) {
	assert.Equal(t, "against", VoteChoiceAgainst.String())
	assert.Equal(t, "Abstain", VoteChoiceAbstain.CapitalizedString())
	assert.Equal(t, "unknown", VoteChoice(9).String())
	assert.False(t, VoteChoice(-1).Valid())
}

func TestProposalStatus_IsTerminal(t *testing.T) {
	assert.False(t, ProposalStatusPreVoting.IsTerminal())
	assert.False(t, ProposalStatusOpen.IsTerminal())
	assert.True(t, ProposalStatusSucceeded.IsTerminal())
	assert.True(t, ProposalStatusFailed.IsTerminal())
	assert.Equal(t, "Succeeded", ProposalStatusSucceeded.CapitalizedString())
}

func TestProposalKind_Names(t *testing.T) {
	assert.Equal(t, ProposalKindBounty, Bounty{Recipient: "alice", Amount: 5}.Name())
	assert.Equal(t, ProposalKindExecutable, Executable{}.Name())
	assert.Equal(t, ProposalKindInformationalVote, InformationalVote{}.Name())
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsValidationError(ErrInvalidGist))
	assert.False(t, IsValidationError(ErrOverflow))
	assert.True(t, IsStateError(ErrExpired))
	assert.True(t, IsStateError(ErrInvalidRequiredTime))
	assert.True(t, IsArithmeticError(ErrUnderflow))
	assert.False(t, IsArithmeticError(ErrInvalidProposalStatus))
}
