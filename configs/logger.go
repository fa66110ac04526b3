package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"dao-governance"`
	URL     string `env:"LOGGER_URL"`
}
