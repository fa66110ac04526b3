package commands

import (
	"context"
	"dao_governance_system/internal/db/models"
	"dao_governance_system/internal/services"
	tgbot "dao_governance_system/internal/tg_bot/extension"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	createProposalCommandName = "create_proposal"

	createProposalUsage = "Usage: /create_proposal <kind> <quorum> <threshold> <duration> <name> | <gist>\n" +
		"kind: informational, bounty:<recipient>:<amount> or executable:<hex>\n" +
		"duration: seconds or a Go duration such as 72h"
)

type createProposalCommand struct {
	governanceService services.GovernanceService
	logger            *zap.SugaredLogger
}

func NewCreateProposalCommand(governanceService services.GovernanceService, logger *zap.SugaredLogger) Command {
	return &createProposalCommand{
		governanceService: governanceService,
		logger:            logger,
	}
}

func (c *createProposalCommand) CanHandle(command string) bool {
	return command == createProposalCommandName
}

func (c *createProposalCommand) Handle(ctx context.Context, command, arguments string, member *models.Member, chatID int64) []tgbotapi.Chattable {
	if !member.Role.CanCreateProposals() {
		c.logger.Warnw("member tried to create proposal", "member_id", member.ID, "role", member.Role, "request_id", tgbot.RequestID(ctx))
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "Only council members can create proposals.")}
	}

	request, err := parseCreateProposalArguments(arguments)
	if err != nil {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, fmt.Sprintf("%s.\n\n%s", err, createProposalUsage))}
	}
	request.CreatorID = member.ID

	proposal, err := c.governanceService.CreateProposal(ctx, request)
	if err != nil {
		c.logger.Errorw("failed to create proposal", "member_id", member.ID, "request_id", tgbot.RequestID(ctx), "error", err)
		return []tgbotapi.Chattable{tgbot.ErrorMessageFor(chatID, err)}
	}

	return []tgbotapi.Chattable{
		tgbotapi.NewMessage(chatID, fmt.Sprintf("Proposal created.\n\n%s", proposalDetails(proposal, nil))),
	}
}

func parseCreateProposalArguments(arguments string) (services.CreateProposalRequest, error) {
	head, gist, _ := strings.Cut(arguments, "|")

	fields := strings.Fields(head)
	if len(fields) < 5 {
		return services.CreateProposalRequest{}, fmt.Errorf("not enough arguments")
	}

	kind, err := parseProposalKind(fields[0])
	if err != nil {
		return services.CreateProposalRequest{}, err
	}

	quorum, err := strconv.ParseUint(strings.TrimSuffix(fields[1], "%"), 10, 64)
	if err != nil {
		return services.CreateProposalRequest{}, fmt.Errorf("invalid quorum %q", fields[1])
	}

	threshold, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return services.CreateProposalRequest{}, fmt.Errorf("invalid threshold %q", fields[2])
	}

	duration, err := parseDuration(fields[3])
	if err != nil {
		return services.CreateProposalRequest{}, err
	}

	return services.CreateProposalRequest{
		Name:      strings.Join(fields[4:], " "),
		Gist:      strings.TrimSpace(gist),
		Kind:      kind,
		Quorum:    quorum,
		Threshold: threshold,
		Duration:  duration,
	}, nil
}

// parseDuration accepts plain seconds or a Go duration string.
func parseDuration(s string) (uint64, error) {
	if seconds, err := strconv.ParseUint(s, 10, 64); err == nil {
		return seconds, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil || d < time.Second {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return uint64(d / time.Second), nil
}
