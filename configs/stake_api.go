package configs

import "time"

type StakeAPI struct {
	URL     string        `env:"STAKE_API_URL,notEmpty"`
	Timeout time.Duration `env:"STAKE_API_TIMEOUT" envDefault:"10s"`
}
