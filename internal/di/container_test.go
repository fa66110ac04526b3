package di

import (
	"dao_governance_system/configs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger_WithoutLoki(t *testing.T) {
	logger := NewLogger(configs.Logger{AppName: "dao-governance"}, configs.App{Environment: "dev"})
	assert.NotNil(t, logger)
	logger.Infow("logger ready")
}

func TestNewLogger_ProductionWithoutLoki(t *testing.T) {
	logger := NewLogger(configs.Logger{AppName: "dao-governance"}, configs.App{Environment: "prod"})
	assert.NotNil(t, logger)
}
