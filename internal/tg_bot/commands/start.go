package commands

import (
	"context"
	"dao_governance_system/configs"
	"dao_governance_system/internal/db/models"
	"dao_governance_system/internal/db/repositories"
	"dao_governance_system/internal/services"
	tgbot "dao_governance_system/internal/tg_bot/extension"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	startCommandName = "start"

	maxAddressLength = 128
)

type startCommand struct {
	appConfig         configs.App
	memberRepository  repositories.MemberRepository
	governanceService services.GovernanceService
	logger            *zap.SugaredLogger
}

func NewStartCommand(
	appConfig configs.App,
	memberRepository repositories.MemberRepository,
	governanceService services.GovernanceService,
	logger *zap.SugaredLogger,
) Command {
	return &startCommand{
		appConfig:         appConfig,
		memberRepository:  memberRepository,
		governanceService: governanceService,
		logger:            logger,
	}
}

func (c *startCommand) CanHandle(command string) bool {
	return command == startCommandName
}

func (c *startCommand) Handle(ctx context.Context, command, arguments string, member *models.Member, chatID int64) []tgbotapi.Chattable {
	address := strings.TrimSpace(arguments)
	if address == "" {
		return []tgbotapi.Chattable{c.helpMessage(member, chatID)}
	}

	if len(address) > maxAddressLength || strings.ContainsAny(address, " \t\n") {
		return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "That does not look like a ledger address.")}
	}

	// votes stay under the old address, so it cannot be released while they count
	if member.Address != "" && member.Address != address {
		active, err := c.governanceService.HasActiveVotes(ctx, member.Address)
		if err != nil {
			c.logger.Errorw("failed to check active votes", "member_id", member.ID, "request_id", tgbot.RequestID(ctx), "error", err)
			return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
		}

		if active {
			return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, fmt.Sprintf(
				"You still have votes on running proposals from %s. Take them back with /unvote before linking another address.",
				member.Address,
			))}
		}
	}

	updated := *member
	updated.Address = address
	if _, err := c.memberRepository.Update(&updated); err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			c.logger.Infow("address already linked", "member_id", member.ID, "request_id", tgbot.RequestID(ctx))
			return []tgbotapi.Chattable{tgbot.ErrorMessage(chatID, "That address is already linked to another member.")}
		}

		c.logger.Errorw("failed to update member address", "member_id", member.ID, "request_id", tgbot.RequestID(ctx), "error", err)
		return []tgbotapi.Chattable{tgbot.DefaultErrorMessage(chatID)}
	}
	member.Address = address

	c.logger.Infow("member address registered", "member_id", member.ID, "request_id", tgbot.RequestID(ctx))
	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, fmt.Sprintf("Your votes will now be backed by the stake of %s.", address))}
}

func (c *startCommand) helpMessage(member *models.Member, chatID int64) tgbotapi.Chattable {
	text := fmt.Sprintf(`Hi! I am the %s governance bot. Your role: %s.

/start <address> - link your ledger address, its stake backs your votes
/proposals [all] - list proposals that are still running
/proposal <id> - show a proposal and its tally
/vote <id> <for|against|abstain> <amount> - vote or change your vote
/unvote <id> - take your vote back
/finalize <id> - close a proposal whose voting window has passed
`, c.appConfig.CommunityName, member.Role.CapitalizedString())

	if member.Role.CanCreateProposals() {
		text += "/create_proposal <kind> <quorum> <threshold> <duration> <name> | <gist> - open a new proposal\n"
	}

	if member.Address == "" {
		text += "\nYou have not linked a ledger address yet, so you cannot vote."
	}

	return tgbotapi.NewMessage(chatID, text)
}
