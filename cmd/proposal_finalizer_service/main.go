package main

import (
	"context"
	"dao_governance_system/configs"
	"dao_governance_system/internal/db"
	"dao_governance_system/internal/db/repositories"
	"dao_governance_system/internal/di"
	"dao_governance_system/internal/governance"
	"dao_governance_system/internal/notifications"
	"dao_governance_system/internal/services"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-co-op/gocron"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadProposalFinalizerServiceConfig()
	logger := di.NewLogger(config.Logger, config.App)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	// the finalizer never casts votes, so no stake lookups are needed
	governanceService := services.NewGovernanceService(
		config.Governance.Params(),
		repositories.NewRepositories(database),
		repositories.NewTransactor(database),
		nil,
		governance.SystemClock(),
		logger,
	)

	notifier := newNotifier(config, logger)

	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	_, err = s.Cron(config.Scheduler.Cron).Do(func() {
		runFinalizer(context.Background(), governanceService, notifier, logger)
	})
	if err != nil {
		logger.Fatalw("failed to schedule finalizer", "cron", config.Scheduler.Cron, "error", err)
	}

	logger.Infow("finalizer scheduled", "cron", config.Scheduler.Cron)
	s.StartBlocking()
}

func newNotifier(config configs.ProposalFinalizerServiceConfig, logger *zap.SugaredLogger) notifications.Notifier {
	var notifiers []notifications.Notifier

	if config.App.AnnouncementsChatID != 0 {
		bot, err := tgbotapi.NewBotAPI(config.Bot.Token)
		if err != nil {
			logger.Errorw("could not create bot", "error", err)
		} else {
			notifiers = append(notifiers, notifications.NewTelegramNotifier(
				bot,
				config.App.AnnouncementsChatID,
				config.App.CommunityName,
				logger,
			))
		}
	}

	if config.Discord.IsEnabled() {
		session, err := discordgo.New("Bot " + config.Discord.Token)
		if err != nil {
			logger.Errorw("failed to create discord session", "error", err)
		} else {
			notifiers = append(notifiers, notifications.NewDiscordNotifier(
				session,
				config.Discord.ChannelID,
				config.App.CommunityName,
				logger,
			))
		}
	}

	if len(notifiers) == 0 {
		logger.Warn("no notifiers configured")
	}

	return notifications.NewMultiNotifier(notifiers...)
}

func runFinalizer(
	ctx context.Context,
	governanceService services.GovernanceService,
	notifier notifications.Notifier,
	logger *zap.SugaredLogger,
) {
	finalizeExpiredProposals(ctx, governanceService, logger)
	announceProposals(ctx, governanceService, notifier, logger)
	cleanupProposals(ctx, governanceService, logger)
}

func finalizeExpiredProposals(ctx context.Context, governanceService services.GovernanceService, logger *zap.SugaredLogger) int {
	logger.Info("finalizing expired proposals")

	finalized, err := governanceService.FinalizeExpired(ctx)
	if err != nil {
		logger.Errorw("failed to finalize some proposals", "error", err)
	}

	if len(finalized) == 0 {
		logger.Info("no proposals to finalize")
		return 0
	}

	logger.Infow("proposals finalized", "count", len(finalized))
	return len(finalized)
}

// announceProposals covers proposals closed here and those closed by a vote
// in the bot. A proposal stays unannounced until every notifier succeeded.
func announceProposals(
	ctx context.Context,
	governanceService services.GovernanceService,
	notifier notifications.Notifier,
	logger *zap.SugaredLogger,
) int {
	proposals, err := governanceService.ListUnannounced(ctx)
	if err != nil {
		logger.Errorw("failed to get unannounced proposals", "error", err)
		return 0
	}

	announced := 0
	for _, proposal := range proposals {
		if err := notifier.ProposalFinalized(ctx, proposal); err != nil {
			logger.Errorw("could not announce proposal", "proposal_id", proposal.ID, "error", err)
			continue
		}

		if err := governanceService.MarkAnnounced(ctx, proposal.ID); err != nil {
			logger.Errorw("could not mark proposal announced", "proposal_id", proposal.ID, "error", err)
			continue
		}
		announced++
	}

	if announced > 0 {
		logger.Infow("proposals announced", "count", announced)
	}
	return announced
}

func cleanupProposals(ctx context.Context, governanceService services.GovernanceService, logger *zap.SugaredLogger) int {
	archived, err := governanceService.CleanupAnnounced(ctx)
	if err != nil {
		logger.Errorw("failed to clean up some proposals", "error", err)
	}

	if archived > 0 {
		logger.Infow("proposals cleaned up", "count", archived)
	}
	return archived
}
