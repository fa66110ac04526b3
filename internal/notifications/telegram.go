package notifications

import (
	"context"
	"dao_governance_system/internal/governance"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type telegramNotifier struct {
	bot           telegramSender
	chatID        int64
	communityName string
	logger        *zap.SugaredLogger
}

func NewTelegramNotifier(bot *tgbotapi.BotAPI, chatID int64, communityName string, logger *zap.SugaredLogger) Notifier {
	return newTelegramNotifier(bot, chatID, communityName, logger)
}

func newTelegramNotifier(bot telegramSender, chatID int64, communityName string, logger *zap.SugaredLogger) *telegramNotifier {
	return &telegramNotifier{
		bot:           bot,
		chatID:        chatID,
		communityName: communityName,
		logger:        logger,
	}
}

func (n *telegramNotifier) ProposalFinalized(ctx context.Context, proposal *governance.Proposal) error {
	message := tgbotapi.NewMessage(n.chatID, proposalFinalizedText(n.communityName, proposal))
	message.DisableWebPagePreview = true

	if _, err := n.bot.Send(message); err != nil {
		n.logger.Errorw("could not send telegram message", "proposal_id", proposal.ID, "error", err)
		return fmt.Errorf("failed to notify telegram: %w", err)
	}

	return nil
}
