package commands

import (
	"context"
	"dao_governance_system/internal/db/models"
	"dao_governance_system/internal/governance"
	"dao_governance_system/internal/services"
	tgbot "dao_governance_system/internal/tg_bot/extension"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const proposalsCommandName = "proposals"

type proposalsCommand struct {
	governanceService services.GovernanceService
	logger            *zap.SugaredLogger
}

func NewProposalsCommand(governanceService services.GovernanceService, logger *zap.SugaredLogger) Command {
	return &proposalsCommand{
		governanceService: governanceService,
		logger:            logger,
	}
}

func (c *proposalsCommand) CanHandle(command string) bool {
	return command == proposalsCommandName
}

func (c *proposalsCommand) Handle(ctx context.Context, command, arguments string, member *models.Member, chatID int64) []tgbotapi.Chattable {
	var status []governance.ProposalStatus
	if strings.TrimSpace(arguments) != "all" {
		status = []governance.ProposalStatus{governance.ProposalStatusPreVoting, governance.ProposalStatusOpen}
	}

	proposals, err := c.governanceService.ListProposals(ctx, status...)
	if err != nil {
		c.logger.Errorw("failed to get proposals", "request_id", tgbot.RequestID(ctx), "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}

	if len(proposals) == 0 {
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "No proposals yet.")}
	}

	lines := make([]string, 0, len(proposals))
	for _, proposal := range proposals {
		lines = append(lines, proposalSummary(proposal))
	}

	message := tgbotapi.NewMessage(chatID, strings.Join(lines, "\n"))
	message.DisableWebPagePreview = true
	return []tgbotapi.Chattable{message}
}
