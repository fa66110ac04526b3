package configs

type Scheduler struct {
	Cron string `env:"FINALIZER_CRON" envDefault:"*/5 * * * *"`
}
