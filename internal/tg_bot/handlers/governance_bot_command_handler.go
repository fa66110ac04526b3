package handlers

import (
	"context"
	"dao_governance_system/configs"
	"dao_governance_system/internal/db/models"
	"dao_governance_system/internal/db/repositories"
	"dao_governance_system/internal/tg_bot/commands"
	tgbot "dao_governance_system/internal/tg_bot/extension"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type governanceBotCommandHandler struct {
	appConfig        configs.App
	memberRepository repositories.MemberRepository
	logger           *zap.SugaredLogger

	commands []commands.Command
}

func NewGovernanceBotCommandHandler(
	appConfig configs.App,
	memberRepository repositories.MemberRepository,
	logger *zap.SugaredLogger,
	commands []commands.Command,
) CommandHandler {
	return &governanceBotCommandHandler{
		appConfig:        appConfig,
		memberRepository: memberRepository,
		logger:           logger,
		commands:         commands,
	}
}

func (h *governanceBotCommandHandler) Handle(ctx context.Context, update tgbotapi.Update) []tgbotapi.Chattable {
	logger := h.logger.With("request_id", tgbot.RequestID(ctx))

	message := update.Message
	if message == nil || message.From == nil {
		logger.Warn("received unknown updates")
		return []tgbotapi.Chattable{}
	}

	chatID := message.Chat.ID

	// commands are only served in private chats
	if message.From.ID != chatID {
		logger.Debugw("ignoring group message", "chat_id", chatID)
		return []tgbotapi.Chattable{}
	}

	member, errMessage := h.createMemberIfNeeded(message.From, chatID, logger)
	if errMessage != nil {
		return []tgbotapi.Chattable{errMessage}
	}

	if !message.IsCommand() {
		logger.Infow("received text message", "member_id", member.ID)
		return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Send /start to see what I can do.")}
	}

	command := message.Command()
	logger.Infow("received command", "command", command, "member_id", member.ID)

	for _, handler := range h.commands {
		if handler.CanHandle(command) {
			return handler.Handle(ctx, command, message.CommandArguments(), member, chatID)
		}
	}

	logger.Warnw("received unknown command", "command", command)
	return []tgbotapi.Chattable{tgbotapi.NewMessage(chatID, "Unknown command. Send /start to see what I can do.")}
}

func (h *governanceBotCommandHandler) createMemberIfNeeded(telegramUser *tgbotapi.User, chatID int64, logger *zap.SugaredLogger) (*models.Member, tgbotapi.Chattable) {
	member, err := h.memberRepository.GetOneByTelegramID(telegramUser.ID)
	if err != nil {
		logger.Errorw("failed to get member", "error", err)
		return nil, tgbot.DefaultErrorMessage(chatID)
	}

	if member != nil {
		return member, nil
	}

	role := models.MemberRoleMember
	for _, nickname := range h.appConfig.InitialCouncil {
		if strings.EqualFold(strings.TrimPrefix(nickname, "@"), telegramUser.UserName) {
			role = models.MemberRoleCouncil
			break
		}
	}

	member, err = h.memberRepository.Create(&models.Member{
		Name:             memberName(telegramUser),
		TelegramID:       telegramUser.ID,
		TelegramNickname: telegramUser.UserName,
		Role:             role,
	})
	if err != nil {
		logger.Errorw("failed to create member", "error", err)
		return nil, tgbot.DefaultErrorMessage(chatID)
	}

	logger.Infow("member registered", "member_id", member.ID, "role", member.Role)
	return member, nil
}

func memberName(telegramUser *tgbotapi.User) string {
	var parts []string

	if telegramUser.FirstName != "" {
		parts = append(parts, telegramUser.FirstName)
	}

	if telegramUser.LastName != "" {
		parts = append(parts, telegramUser.LastName)
	}

	if len(parts) == 0 {
		return telegramUser.UserName
	}

	return strings.Join(parts, " ")
}
