package main

import (
	"context"
	"dao_governance_system/configs"
	"dao_governance_system/internal/db"
	"dao_governance_system/internal/db/repositories"
	"dao_governance_system/internal/di"
	"dao_governance_system/internal/governance"
	"dao_governance_system/internal/services"
	tgbot "dao_governance_system/internal/tg_bot"
	"dao_governance_system/internal/tg_bot/commands"
	"dao_governance_system/internal/tg_bot/handlers"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadGovernanceBotConfig()
	logger := di.NewLogger(config.Logger, config.App)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer database.Close()
	logger.Info("db started")

	logger.Info("initializing repositories and services")
	repos := repositories.NewRepositories(database)
	governanceService := services.NewGovernanceService(
		config.Governance.Params(),
		repos,
		repositories.NewTransactor(database),
		services.NewStakeService(config.StakeAPI.URL, config.StakeAPI.Timeout),
		governance.SystemClock(),
		logger,
	)

	daoConfig, err := governanceService.InitializeDao(ctx)
	if err != nil {
		logger.Fatalw("failed to initialize dao", "error", err)
	}
	logger.Infow("dao ready", "seed", daoConfig.Seed, "proposal_count", daoConfig.ProposalCount)

	go func() {
		logger.Info("setting up health check server")
		settingUpHealthCheckServer(ctx, config.HealthCheck.Addr, logger)
	}()

	logger.Info("starting bot")
	tgbot.NewBot(
		handlers.NewGovernanceBotCommandHandler(config.App, repos.Members, logger,
			[]commands.Command{
				commands.NewStartCommand(config.App, repos.Members, governanceService, logger),
				commands.NewCreateProposalCommand(governanceService, logger),
				commands.NewProposalsCommand(governanceService, logger),
				commands.NewProposalCommand(governanceService, logger),
				commands.NewVoteCommand(governanceService, logger),
				commands.NewUnvoteCommand(governanceService, logger),
				commands.NewFinalizeCommand(governanceService, logger),
			},
		),
	).Start(ctx, config.Bot, config.App.IsDevEnvironment(), logger)

	logger.Info("shutting down")
}

func settingUpHealthCheckServer(ctx context.Context, addr string, logger *zap.SugaredLogger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/governance-bot/healthcheck", healthCheckHandler)

	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorw("failed to shutdown http server", "error", err)
		}
	}()

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Errorw("failed to start http server", "error", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("I'm alive"))
}
