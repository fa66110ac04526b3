package commands

import (
	"context"
	"dao_governance_system/internal/db/models"
	"dao_governance_system/internal/governance"
	"dao_governance_system/internal/services"
	mock_services "dao_governance_system/internal/services/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestParseVoteArguments(t *testing.T) {
	proposalID, choice, amount, err := parseVoteArguments("4 Against 25")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), proposalID)
	assert.Equal(t, governance.VoteChoiceAgainst, choice)
	assert.Equal(t, uint64(25), amount)
}

func TestParseVoteArguments_Invalid(t *testing.T) {
	for _, arguments := range []string{"", "4 for", "x for 1", "4 maybe 1", "4 for -1", "4 for 1 2"} {
		_, _, _, err := parseVoteArguments(arguments)
		assert.Error(t, err, arguments)
	}
}

func TestVoteCommand_RequiresAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	governanceService := mock_services.NewMockGovernanceService(ctrl)

	command := NewVoteCommand(governanceService, zap.NewNop().Sugar())

	text := messageText(t, command.Handle(context.Background(), voteCommandName, "1 for 10", &models.Member{ID: 1}, 1))
	assert.Contains(t, text, "/start <address>")
}

func TestVoteCommand_CastsVote(t *testing.T) {
	ctrl := gomock.NewController(t)
	governanceService := mock_services.NewMockGovernanceService(ctrl)

	governanceService.EXPECT().
		Vote(gomock.Any(), uint64(1), "addr1", uint64(10), governance.VoteChoiceFor).
		Return(&services.VoteResult{
			Proposal: &governance.Proposal{ID: 1, Status: governance.ProposalStatusOpen},
			Record:   &governance.VoteRecord{Voter: "addr1", ProposalID: 1, Amount: 10, Choice: governance.VoteChoiceFor},
		}, nil)

	command := NewVoteCommand(governanceService, zap.NewNop().Sugar())
	member := &models.Member{ID: 1, Address: "addr1"}

	text := messageText(t, command.Handle(context.Background(), voteCommandName, "1 for 10", member, 1))
	assert.Equal(t, "Recorded For with 10 on proposal #1. Status: Open.", text)
}

func TestVoteCommand_ClosingVote(t *testing.T) {
	ctrl := gomock.NewController(t)
	governanceService := mock_services.NewMockGovernanceService(ctrl)

	governanceService.EXPECT().
		Vote(gomock.Any(), uint64(2), "addr1", uint64(40), governance.VoteChoiceFor).
		Return(&services.VoteResult{
			Proposal:  &governance.Proposal{ID: 2, Status: governance.ProposalStatusSucceeded},
			Record:    &governance.VoteRecord{Voter: "addr1", ProposalID: 2, Amount: 40, Choice: governance.VoteChoiceFor},
			Finalized: true,
		}, nil)

	command := NewVoteCommand(governanceService, zap.NewNop().Sugar())
	member := &models.Member{ID: 1, Address: "addr1"}

	text := messageText(t, command.Handle(context.Background(), voteCommandName, "2 for 40", member, 1))
	assert.Equal(t, "Recorded For with 40 on proposal #2. Status: Succeeded. Your vote closed the proposal; the result will be announced shortly.", text)
}

func TestVoteCommand_InsufficientStake(t *testing.T) {
	ctrl := gomock.NewController(t)
	governanceService := mock_services.NewMockGovernanceService(ctrl)

	governanceService.EXPECT().
		Vote(gomock.Any(), uint64(1), "addr1", uint64(10), governance.VoteChoiceFor).
		Return(nil, services.ErrInsufficientStake)

	command := NewVoteCommand(governanceService, zap.NewNop().Sugar())
	member := &models.Member{ID: 1, Address: "addr1"}

	text := messageText(t, command.Handle(context.Background(), voteCommandName, "1 for 10", member, 1))
	assert.Equal(t, "Your stake does not cover that amount.", text)
}

func TestUnvoteCommand_RemovesVote(t *testing.T) {
	ctrl := gomock.NewController(t)
	governanceService := mock_services.NewMockGovernanceService(ctrl)

	governanceService.EXPECT().
		Unvote(gomock.Any(), uint64(2), "addr1").
		Return(&governance.Proposal{ID: 2, TotalVotes: 15}, nil)

	command := NewUnvoteCommand(governanceService, zap.NewNop().Sugar())
	member := &models.Member{ID: 1, Address: "addr1"}

	text := messageText(t, command.Handle(context.Background(), unvoteCommandName, "2", member, 1))
	assert.Equal(t, "Your vote on proposal #2 was removed. Total votes: 15.", text)
}

func TestFinalizeCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	governanceService := mock_services.NewMockGovernanceService(ctrl)

	governanceService.EXPECT().
		FinalizeIfExpired(gomock.Any(), uint64(3)).
		Return(&governance.Proposal{ID: 3, Status: governance.ProposalStatusFailed}, true, nil)
	governanceService.EXPECT().
		FinalizeIfExpired(gomock.Any(), uint64(4)).
		Return(&governance.Proposal{ID: 4, Status: governance.ProposalStatusOpen}, false, nil)

	command := NewFinalizeCommand(governanceService, zap.NewNop().Sugar())
	member := &models.Member{ID: 1}

	assert.Equal(t, "Proposal #3 has failed.", messageText(t, command.Handle(context.Background(), finalizeCommandName, "3", member, 1)))
	assert.Equal(t, "Proposal #4 is open and was left unchanged.", messageText(t, command.Handle(context.Background(), finalizeCommandName, "4", member, 1)))
}

func TestProposalCommand_ShowsOwnVote(t *testing.T) {
	ctrl := gomock.NewController(t)
	governanceService := mock_services.NewMockGovernanceService(ctrl)

	proposal := &governance.Proposal{
		ID:         6,
		Name:       "budget",
		Kind:       governance.InformationalVote{},
		Status:     governance.ProposalStatusOpen,
		TotalVotes: 10,
		VoteCounts: [3]uint64{0, 0, 10},
	}

	governanceService.EXPECT().GetProposal(gomock.Any(), uint64(6)).Return(proposal, nil)
	governanceService.EXPECT().GetConfig(gomock.Any()).Return(&governance.DaoConfig{}, nil)
	governanceService.EXPECT().
		ListVoteRecords(gomock.Any(), uint64(6)).
		Return([]*governance.VoteRecord{{Voter: "addr1", Amount: 10, Choice: governance.VoteChoiceAbstain}}, nil)
	governanceService.EXPECT().
		GetVoteRecord(gomock.Any(), uint64(6), "addr1").
		Return(&governance.VoteRecord{Amount: 10, Choice: governance.VoteChoiceAbstain}, nil)

	command := NewProposalCommand(governanceService, zap.NewNop().Sugar())
	member := &models.Member{ID: 1, Address: "addr1"}

	text := messageText(t, command.Handle(context.Background(), proposalCommandName, "6", member, 1))
	assert.Contains(t, text, "Abstain: 10")
	assert.Contains(t, text, "Voters: 1")
	assert.Contains(t, text, "Your vote: Abstain with 10")
}

func TestProposalCommand_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	governanceService := mock_services.NewMockGovernanceService(ctrl)

	governanceService.EXPECT().GetProposal(gomock.Any(), uint64(9)).Return(nil, services.ErrProposalNotFound)

	command := NewProposalCommand(governanceService, zap.NewNop().Sugar())

	text := messageText(t, command.Handle(context.Background(), proposalCommandName, "9", &models.Member{}, 1))
	assert.Equal(t, "Proposal not found.", text)
}

func TestProposalsCommand_DefaultsToRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	governanceService := mock_services.NewMockGovernanceService(ctrl)

	governanceService.EXPECT().
		ListProposals(gomock.Any(), governance.ProposalStatusPreVoting, governance.ProposalStatusOpen).
		Return([]*governance.Proposal{{ID: 1, Name: "a", Status: governance.ProposalStatusOpen}}, nil)
	governanceService.EXPECT().
		ListProposals(gomock.Any()).
		Return(nil, nil)

	command := NewProposalsCommand(governanceService, zap.NewNop().Sugar())

	assert.Contains(t, messageText(t, command.Handle(context.Background(), proposalsCommandName, "", &models.Member{}, 1)), "#1 a [Open]")
	assert.Equal(t, "No proposals yet.", messageText(t, command.Handle(context.Background(), proposalsCommandName, "all", &models.Member{}, 1)))
}
