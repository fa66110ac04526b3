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

const finalizeCommandName = "finalize"

type finalizeCommand struct {
	governanceService services.GovernanceService
	logger            *zap.SugaredLogger
}

func NewFinalizeCommand(governanceService services.GovernanceService, logger *zap.SugaredLogger) Command {
	return &finalizeCommand{
		governanceService: governanceService,
		logger:            logger,
	}
}

func (c *finalizeCommand) CanHandle(command string) bool {
	return command == finalizeCommandName
}

func (c *finalizeCommand) Handle(ctx context.Context, command, arguments string, member *models.Member, chatID int64) []tgbotapi.Chattable {
	proposalID, err := parseProposalID(arguments)
	if err != nil {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "Usage: /finalize <id>")}
	}

	proposal, changed, err := c.governanceService.FinalizeIfExpired(ctx, proposalID)
	if err != nil {
		c.logger.Errorw("failed to finalize proposal", "proposal_id", proposalID, "request_id", tgbot.RequestID(ctx), "error", err)
		return []tgbotapi.Chattable{tgbot.ErrorMessageFor(chatID, err)}
	}

	if !changed {
		return []tgbotapi.Chattable{
			tgbotapi.NewMessage(chatID, fmt.Sprintf("Proposal #%d is %s and was left unchanged.", proposal.ID, proposal.Status.String())),
		}
	}

	c.logger.Infow("proposal finalized on request", "proposal_id", proposalID, "member_id", member.ID, "status", proposal.Status.String())
	return []tgbotapi.Chattable{
		tgbotapi.NewMessage(chatID, fmt.Sprintf("Proposal #%d has %s.", proposal.ID, proposal.Status.String())),
	}
}
