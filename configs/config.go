package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type GovernanceBotConfig struct {
	App         App
	Bot         Bot
	DB          DB
	Logger      Logger
	Governance  Governance
	StakeAPI    StakeAPI
	HealthCheck HealthCheck
}

type ProposalFinalizerServiceConfig struct {
	App        App
	Bot        Bot
	Discord    Discord
	DB         DB
	Logger     Logger
	Governance Governance
	Scheduler  Scheduler
}

func LoadGovernanceBotConfig() (GovernanceBotConfig, error) {
	var config GovernanceBotConfig

	if err := env.Parse(&config); err != nil {
		return GovernanceBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

func LoadProposalFinalizerServiceConfig() (ProposalFinalizerServiceConfig, error) {
	var config ProposalFinalizerServiceConfig

	if err := env.Parse(&config); err != nil {
		return ProposalFinalizerServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
