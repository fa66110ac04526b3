package di

import (
	"context"
	"dao_governance_system/configs"
	"time"

	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"
)

// NewLogger builds a production logger, shipping to Loki when a URL is set.
func NewLogger(config configs.Logger, app configs.App) *zap.SugaredLogger {
	zapConfig := zap.NewProductionConfig()
	if app.IsDevEnvironment() {
		zapConfig = zap.NewDevelopmentConfig()
	}

	if config.URL == "" {
		return zap.Must(zapConfig.Build()).Sugar().With("environment", app.Environment)
	}

	ctx := context.Background()
	lokiConfig := zaploki.Config{
		Url:          config.URL,
		BatchMaxSize: 1000,
		BatchMaxWait: 10 * time.Second,
		Labels:       map[string]string{"app": config.AppName, "environment": app.Environment},
	}
	return zap.Must(zaploki.New(ctx, lokiConfig).WithCreateLogger(zapConfig)).Sugar()
}
