package commands

import (
	"context"
	"dao_governance_system/internal/db/models"
	"dao_governance_system/internal/governance"
	"dao_governance_system/internal/services"
	tgbot "dao_governance_system/internal/tg_bot/extension"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	voteCommandName = "vote"

	voteUsage = "Usage: /vote <id> <for|against|abstain> <amount>"
)

type voteCommand struct {
	governanceService services.GovernanceService
	logger            *zap.SugaredLogger
}

func NewVoteCommand(governanceService services.GovernanceService, logger *zap.SugaredLogger) Command {
	return &voteCommand{
		governanceService: governanceService,
		logger:            logger,
	}
}

func (c *voteCommand) CanHandle(command string) bool {
	return command == voteCommandName
}

func (c *voteCommand) Handle(ctx context.Context, command, arguments string, member *models.Member, chatID int64) []tgbotapi.Chattable {
	if member.Address == "" {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "Link your ledger address first with /start <address>.")}
	}

	proposalID, choice, amount, err := parseVoteArguments(arguments)
	if err != nil {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, fmt.Sprintf("%s.\n\n%s", err, voteUsage))}
	}

	result, err := c.governanceService.Vote(ctx, proposalID, member.Address, amount, choice)
	if err != nil {
		c.logger.Warnw("failed to vote", "proposal_id", proposalID, "member_id", member.ID, "request_id", tgbot.RequestID(ctx), "error", err)
		return []tgbotapi.Chattable{tgbot.ErrorMessageFor(chatID, err)}
	}

	text := fmt.Sprintf(
		"Recorded %s with %d on proposal #%d. Status: %s.",
		result.Record.Choice.CapitalizedString(),
		result.Record.Amount,
		result.Proposal.ID,
		result.Proposal.Status.CapitalizedString(),
	)
	if result.Finalized {
		text += " Your vote closed the proposal; the result will be announced shortly."
	}

	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, text)}
}

func parseVoteArguments(arguments string) (uint64, governance.VoteChoice, uint64, error) {
	fields := strings.Fields(arguments)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 arguments, got %d", len(fields))
	}

	proposalID, err := parseProposalID(fields[0])
	if err != nil {
		return 0, 0, 0, err
	}

	choice, err := governance.ParseVoteChoice(fields[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid choice %q", fields[1])
	}

	amount, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid amount %q", fields[2])
	}

	return proposalID, choice, amount, nil
}
