package commands

import (
	"context"
	"dao_governance_system/internal/db/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Command interface {
	CanHandle(command string) bool
	Handle(ctx context.Context, command, arguments string, member *models.Member, chatID int64) []tgbotapi.Chattable
}
