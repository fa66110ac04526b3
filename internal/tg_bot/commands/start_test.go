package commands

import (
	"context"
	"dao_governance_system/configs"
	"dao_governance_system/internal/db/models"
	"dao_governance_system/internal/db/repositories"
	mock_repositories "dao_governance_system/internal/db/repositories/mocks"
	mock_services "dao_governance_system/internal/services/mocks"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestStartCommand_LinksFirstAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	memberRepository := mock_repositories.NewMockMemberRepository(ctrl)
	governanceService := mock_services.NewMockGovernanceService(ctrl)

	memberRepository.EXPECT().Update(gomock.Any()).DoAndReturn(func(member *models.Member) (*models.Member, error) {
		assert.Equal(t, "addr1", member.Address)
		return member, nil
	})

	command := NewStartCommand(configs.App{}, memberRepository, governanceService, zap.NewNop().Sugar())
	member := &models.Member{ID: 1}

	text := messageText(t, command.Handle(context.Background(), startCommandName, "addr1", member, 1))
	assert.Equal(t, "Your votes will now be backed by the stake of addr1.", text)
	assert.Equal(t, "addr1", member.Address)
}

func TestStartCommand_RefusesRelinkWithActiveVotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	memberRepository := mock_repositories.NewMockMemberRepository(ctrl)
	governanceService := mock_services.NewMockGovernanceService(ctrl)

	governanceService.EXPECT().HasActiveVotes(gomock.Any(), "addr1").Return(true, nil)

	command := NewStartCommand(configs.App{}, memberRepository, governanceService, zap.NewNop().Sugar())
	member := &models.Member{ID: 1, Address: "addr1"}

	text := messageText(t, command.Handle(context.Background(), startCommandName, "addr2", member, 1))
	assert.Contains(t, text, "/unvote")
	assert.Equal(t, "addr1", member.Address)
}

func TestStartCommand_RelinksWithoutActiveVotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	memberRepository := mock_repositories.NewMockMemberRepository(ctrl)
	governanceService := mock_services.NewMockGovernanceService(ctrl)

	governanceService.EXPECT().HasActiveVotes(gomock.Any(), "addr1").Return(false, nil)
	memberRepository.EXPECT().Update(gomock.Any()).DoAndReturn(func(member *models.Member) (*models.Member, error) {
		return member, nil
	})

	command := NewStartCommand(configs.App{}, memberRepository, governanceService, zap.NewNop().Sugar())
	member := &models.Member{ID: 1, Address: "addr1"}

	command.Handle(context.Background(), startCommandName, "addr2", member, 1)
	assert.Equal(t, "addr2", member.Address)
}

func TestStartCommand_AddressTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	memberRepository := mock_repositories.NewMockMemberRepository(ctrl)
	governanceService := mock_services.NewMockGovernanceService(ctrl)

	memberRepository.EXPECT().
		Update(gomock.Any()).
		Return(nil, fmt.Errorf("%w: duplicate key value violates unique constraint", repositories.ErrAlreadyExists))

	command := NewStartCommand(configs.App{}, memberRepository, governanceService, zap.NewNop().Sugar())
	member := &models.Member{ID: 1}

	text := messageText(t, command.Handle(context.Background(), startCommandName, "addr9", member, 1))
	assert.Equal(t, "That address is already linked to another member.", text)
	assert.Empty(t, member.Address)
}

func TestStartCommand_UpdateFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	memberRepository := mock_repositories.NewMockMemberRepository(ctrl)
	governanceService := mock_services.NewMockGovernanceService(ctrl)

	memberRepository.EXPECT().Update(gomock.Any()).Return(nil, errors.New("connection reset"))

	command := NewStartCommand(configs.App{}, memberRepository, governanceService, zap.NewNop().Sugar())

	text := messageText(t, command.Handle(context.Background(), startCommandName, "addr9", &models.Member{ID: 1}, 1))
	assert.Equal(t, "Something went wrong, please try again.", text)
}
