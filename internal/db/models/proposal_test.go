package models

import (
	"dao_governance_system/internal/governance"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalFromDomain_Bounty(t *testing.T) {
	proposal := &governance.Proposal{
		ID:         4,
		Name:       "pay auditor",
		Kind:       governance.Bounty{Recipient: "addr1", Amount: 900},
		VoteType:   governance.VoteTypeSingleChoice,
		Status:     governance.ProposalStatusOpen,
		Quorum:     30,
		TotalVotes: 15,
		VoteCounts: [3]uint64{10, 2, 3},
	}

	model := ProposalFromDomain(proposal)
	assert.Equal(t, governance.ProposalKindBounty, model.Kind)
	assert.Equal(t, "addr1", model.BountyRecipient)
	assert.Equal(t, uint64(900), model.BountyAmount)
	assert.Equal(t, uint64(10), model.ForVotes)
	assert.Equal(t, uint64(2), model.AgainstVotes)
	assert.Equal(t, uint64(3), model.AbstainVotes)

	restored, err := model.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, proposal, restored)
}

func TestProposalToDomain_Executable(t *testing.T) {
	model := &Proposal{
		ID:           2,
		Kind:         governance.ProposalKindExecutable,
		Instructions: []byte{0x01, 0x02},
		Status:       governance.ProposalStatusPreVoting,
	}

	proposal, err := model.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, governance.Executable{Instructions: []byte{0x01, 0x02}}, proposal.Kind)
}

func TestProposalToDomain_UnknownKind(t *testing.T) {
	_, err := (&Proposal{ID: 1, Kind: "lottery", Status: governance.ProposalStatusOpen}).ToDomain()
	assert.Error(t, err)
}

func TestProposalToDomain_UnknownStatus(t *testing.T) {
	_, err := (&Proposal{ID: 1, Kind: governance.ProposalKindInformationalVote, Status: "archived"}).ToDomain()
	assert.Error(t, err)
}

func TestProposalApply_CopiesTally(t *testing.T) {
	model := &Proposal{ID: 1, Name: "kept"}
	model.Apply(&governance.Proposal{
		Status:     governance.ProposalStatusFailed,
		TotalVotes: 9,
		VoteCounts: [3]uint64{1, 8, 0},
	})

	assert.Equal(t, "kept", model.Name)
	assert.Equal(t, governance.ProposalStatusFailed, model.Status)
	assert.Equal(t, uint64(9), model.TotalVotes)
	assert.Equal(t, uint64(8), model.AgainstVotes)
}

func TestVoteRecordToDomain_InvalidChoice(t *testing.T) {
	_, err := (&VoteRecord{Choice: "maybe"}).ToDomain()
	assert.ErrorIs(t, err, governance.ErrInvalidVoteChoice)
}

func TestMemberRole(t *testing.T) {
	assert.True(t, MemberRoleCouncil.CanCreateProposals())
	assert.False(t, MemberRoleMember.CanCreateProposals())
	assert.Equal(t, "Council", MemberRoleCouncil.CapitalizedString())
}
