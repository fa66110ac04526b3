package tgbot

import (
	"context"
	"dao_governance_system/configs"
	tgbot "dao_governance_system/internal/tg_bot/extension"
	"dao_governance_system/internal/tg_bot/handlers"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type bot struct {
	handler handlers.CommandHandler
}

type Bot interface {
	Start(ctx context.Context, config configs.Bot, debug bool, logger *zap.SugaredLogger)
}

func NewBot(handler handlers.CommandHandler) Bot {
	return &bot{handler: handler}
}

// Start polls updates until ctx is cancelled.
func (b *bot) Start(ctx context.Context, config configs.Bot, debug bool, logger *zap.SugaredLogger) {
	logger.Info("creating bot")
	api, updates, err := b.createBot(config, debug)
	if err != nil {
		logger.Fatalf("failed to create bot: %v", err)
	}
	logger.Infow("bot created", "username", api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			api.StopReceivingUpdates()
			logger.Info("bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, api, update, logger)
		}
	}
}

func (b *bot) handleUpdate(ctx context.Context, api *tgbotapi.BotAPI, update tgbotapi.Update, logger *zap.SugaredLogger) {
	requestID := uuid.NewString()
	ctx = tgbot.WithRequestID(ctx, requestID)

	logger.Debugw("received update", "update_id", update.UpdateID, "request_id", requestID)

	for _, message := range b.handler.Handle(ctx, update) {
		if _, err := api.Send(message); err != nil {
			logger.Errorw("failed to send message", "request_id", requestID, "error", err)
		}
	}
}

func (b *bot) createBot(config configs.Bot, debug bool) (*tgbotapi.BotAPI, tgbotapi.UpdatesChannel, error) {
	api, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		return nil, nil, err
	}

	api.Debug = debug

	u := tgbotapi.NewUpdate(0)
	u.Timeout = config.UpdateTimeout

	return api, api.GetUpdatesChan(u), nil
}
