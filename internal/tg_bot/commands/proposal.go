package commands

import (
	"context"
	"dao_governance_system/internal/db/models"
	"dao_governance_system/internal/services"
	tgbot "dao_governance_system/internal/tg_bot/extension"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const proposalCommandName = "proposal"

type proposalCommand struct {
	governanceService services.GovernanceService
	logger            *zap.SugaredLogger
}

func NewProposalCommand(governanceService services.GovernanceService, logger *zap.SugaredLogger) Command {
	return &proposalCommand{
		governanceService: governanceService,
		logger:            logger,
	}
}

func (c *proposalCommand) CanHandle(command string) bool {
	return command == proposalCommandName
}

func (c *proposalCommand) Handle(ctx context.Context, command, arguments string, member *models.Member, chatID int64) []tgbotapi.Chattable {
	proposalID, err := parseProposalID(arguments)
	if err != nil {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "Usage: /proposal <id>")}
	}

	proposal, err := c.governanceService.GetProposal(ctx, proposalID)
	if err != nil {
		if !errors.Is(err, services.ErrProposalNotFound) {
			c.logger.Errorw("failed to get proposal", "proposal_id", proposalID, "request_id", tgbot.RequestID(ctx), "error", err)
		}
		return []tgbotapi.Chattable{tgbot.ErrorMessageFor(chatID, err)}
	}

	config, err := c.governanceService.GetConfig(ctx)
	if err != nil {
		c.logger.Warnw("failed to get dao config", "request_id", tgbot.RequestID(ctx), "error", err)
	}

	text := proposalDetails(proposal, config)

	records, err := c.governanceService.ListVoteRecords(ctx, proposalID)
	if err != nil {
		c.logger.Warnw("failed to get vote records", "proposal_id", proposalID, "request_id", tgbot.RequestID(ctx), "error", err)
	} else {
		text += fmt.Sprintf("\nVoters: %d", len(records))
	}

	if member.Address != "" {
		record, err := c.governanceService.GetVoteRecord(ctx, proposalID, member.Address)
		switch {
		case err == nil:
			text += fmt.Sprintf("\n\nYour vote: %s with %d", record.Choice.CapitalizedString(), record.Amount)
		case !errors.Is(err, services.ErrVoteNotFound):
			c.logger.Warnw("failed to get vote record", "proposal_id", proposalID, "request_id", tgbot.RequestID(ctx), "error", err)
		}
	}

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, text)}
}
