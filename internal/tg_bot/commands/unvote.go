package commands

import (
	"context"
	"dao_governance_system/internal/db/models"
	"dao_governance_system/internal/services"
	tgbot "dao_governance_system/internal/tg_bot/extension"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const unvoteCommandName = "unvote"

type unvoteCommand struct {
	governanceService services.GovernanceService
	logger            *zap.SugaredLogger
}

func NewUnvoteCommand(governanceService services.GovernanceService, logger *zap.SugaredLogger) Command {
	return &unvoteCommand{
		governanceService: governanceService,
		logger:            logger,
	}
}

func (c *unvoteCommand) CanHandle(command string) bool {
	return command == unvoteCommandName
}

func (c *unvoteCommand) Handle(ctx context.Context, command, arguments string, member *models.Member, chatID int64) []tgbotapi.Chattable {
	if member.Address == "" {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "Link your ledger address first with /start <address>.")}
	}

	proposalID, err := parseProposalID(arguments)
	if err != nil {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "Usage: /unvote <id>")}
	}

	proposal, err := c.governanceService.Unvote(ctx, proposalID, member.Address)
	if err != nil {
		c.logger.Warnw("failed to retract vote", "proposal_id", proposalID, "member_id", member.ID, "request_id", tgbot.RequestID(ctx), "error", err)
		return []tgbotapi.Chattable{tgbot.ErrorMessageFor(chatID, err)}
	}

	return []tgbotapi.Chattable{
		tgbotapi.NewMessage(chatID, fmt.Sprintf("Your vote on proposal #%d was removed. Total votes: %d.", proposal.ID, proposal.TotalVotes)),
	}
}
