package commands

import (
	"context"
	"dao_governance_system/internal/db/models"
	"dao_governance_system/internal/governance"
	"dao_governance_system/internal/services"
	mock_services "dao_governance_system/internal/services/mocks"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func messageText(t *testing.T, messages []tgbotapi.Chattable) string {
	t.Helper()
	require.Len(t, messages, 1)
	message, ok := messages[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	return message.Text
}

func TestParseCreateProposalArguments(t *testing.T) {
	request, err := parseCreateProposalArguments("bounty:addr1:300 40% 100 72h Pay the auditor | ipfs://audit")
	require.NoError(t, err)

	assert.Equal(t, "Pay the auditor", request.Name)
	assert.Equal(t, "ipfs://audit", request.Gist)
	assert.Equal(t, governance.Bounty{Recipient: "addr1", Amount: 300}, request.Kind)
	assert.Equal(t, uint64(40), request.Quorum)
	assert.Equal(t, uint64(100), request.Threshold)
	assert.Equal(t, uint64(72*3600), request.Duration)
}

func TestParseCreateProposalArguments_SecondsWithoutGist(t *testing.T) {
	request, err := parseCreateProposalArguments("informational 50 10 600 poll")
	require.NoError(t, err)

	assert.Equal(t, "poll", request.Name)
	assert.Empty(t, request.Gist)
	assert.Equal(t, uint64(600), request.Duration)
}

func TestParseCreateProposalArguments_Invalid(t *testing.T) {
	for _, arguments := range []string{
		"",
		"informational 50 10 600",
		"informational fifty 10 600 poll",
		"informational 50 ten 600 poll",
		"informational 50 10 soon poll",
		"informational 50 10 500ms poll",
	} {
		_, err := parseCreateProposalArguments(arguments)
		assert.Error(t, err, arguments)
	}
}

func TestCreateProposalCommand_RequiresCouncil(t *testing.T) {
	ctrl := gomock.NewController(t)
	governanceService := mock_services.NewMockGovernanceService(ctrl)

	command := NewCreateProposalCommand(governanceService, zap.NewNop().Sugar())
	member := &models.Member{ID: 1, Role: models.MemberRoleMember}

	text := messageText(t, command.Handle(context.Background(), createProposalCommandName, "informational 50 10 600 poll", member, 1))
	assert.Equal(t, "Only council members can create proposals.", text)
}

func TestCreateProposalCommand_CreatesProposal(t *testing.T) {
	ctrl := gomock.NewController(t)
	governanceService := mock_services.NewMockGovernanceService(ctrl)

	governanceService.EXPECT().
		CreateProposal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, request services.CreateProposalRequest) (*governance.Proposal, error) {
			assert.Equal(t, int64(3), request.CreatorID)
			assert.Equal(t, "poll", request.Name)
			return &governance.Proposal{
				ID:     8,
				Name:   request.Name,
				Kind:   request.Kind,
				Status: governance.ProposalStatusPreVoting,
				Quorum: 50,
			}, nil
		})

	command := NewCreateProposalCommand(governanceService, zap.NewNop().Sugar())
	member := &models.Member{ID: 3, Role: models.MemberRoleCouncil}

	text := messageText(t, command.Handle(context.Background(), createProposalCommandName, "informational 50 10 600 poll", member, 1))
	assert.Contains(t, text, "Proposal created.")
	assert.Contains(t, text, "Proposal #8: poll")
}

func TestCreateProposalCommand_ReportsDomainError(t *testing.T) {
	ctrl := gomock.NewController(t)
	governanceService := mock_services.NewMockGovernanceService(ctrl)

	governanceService.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).Return(nil, governance.ErrInvalidQuorum)

	command := NewCreateProposalCommand(governanceService, zap.NewNop().Sugar())
	member := &models.Member{ID: 3, Role: models.MemberRoleCouncil}

	text := messageText(t, command.Handle(context.Background(), createProposalCommandName, "informational 5 10 600 poll", member, 1))
	assert.Equal(t, "Quorum is outside the allowed range.", text)
}
